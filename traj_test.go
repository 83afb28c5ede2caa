/*
 * traj_test.go, part of goKin.
 *
 * Copyright 2024 The goKin authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package kin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestNewTraj(Te *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{4, 5, 6, 7}
	z := []float64{8, 9, 10, 11}
	T, err := NewTraj(x, y, z)
	require.NoError(Te, err)
	assert.Equal(Te, 4, T.Len())
	assert.Equal(Te, 3, T.Dim())
	assert.Equal(Te, r3.Vec{X: 1, Y: 5, Z: 9}, T.Vec3(1))
	assert.Equal(Te, []float64{3, 7, 11}, T.Point(3))
	assert.Equal(Te, [][]float64{x, y, z}, T.Coords())
	//the data is copied
	x[0] = 100
	assert.Equal(Te, 0.0, T.At(0, 0))

	assert.Panics(Te, func() { T.Vec2(0) })
	assert.Panics(Te, func() { T.Point(4) })
	assert.Panics(Te, func() { T.Coord(3, nil) })
}

func TestNewTrajErrors(Te *testing.T) {
	s := []float64{0, 1}
	_, err := NewTraj(s)
	assert.ErrorIs(Te, err, ErrInvalidInput)
	_, err = NewTraj(s, s, s, s)
	assert.ErrorIs(Te, err, ErrInvalidInput)
	_, err = NewTraj(s, []float64{0})
	assert.ErrorIs(Te, err, ErrInvalidInput)
	_, err = NewTraj(nil, nil)
	assert.ErrorIs(Te, err, ErrInvalidInput)
}

func TestTrajFrom(Te *testing.T) {
	T, err := NewTraj([]float64{9, 9, 0, 1, 2}, []float64{9, 9, 0, 1, 0})
	require.NoError(Te, err)
	V := T.From(2)
	assert.Equal(Te, 3, V.Len())
	assert.Equal(Te, r2.Vec{}, V.Vec2(0))
	assert.Equal(Te, []float64{0, 1, 2}, V.Coord(0, nil))
	d, err := MaximumDeviation(V)
	require.NoError(Te, err)
	assert.InDelta(Te, 1.0, d.Value, 1e-12)
	//views share the data
	V.Set(0, 1, 3)
	assert.Equal(Te, 3.0, T.At(2, 1))
	assert.Contains(Te, V.String(), "1.0000")
}
