/*
 * traj.go, part of goKin.
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
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

//Traj is a sampled trajectory: a row-major Nx2 or Nx3 matrix where
//each row is the position at one sample. Row 0 is the initial sample
//and row N-1 the final one.
type Traj struct {
	*mat.Dense
}

//NewTraj builds a trajectory from 2 or 3 coordinate slices of the same length
//(x, y and, optionally, z). The data is copied.
func NewTraj(coords ...[]float64) (*Traj, error) {
	if err := checkCoords(coords, 1); err != nil {
		return nil, errDecorate(err, "NewTraj")
	}
	n := len(coords[0])
	dim := len(coords)
	data := make([]float64, n*dim)
	for i := 0; i < n; i++ {
		for j, c := range coords {
			data[i*dim+j] = c[i]
		}
	}
	return &Traj{mat.NewDense(n, dim, data)}, nil
}

//checkCoords verifies that coords has 2 or 3 slices, all of the same length,
//and at least min samples.
func checkCoords(coords [][]float64, min int) error {
	if len(coords) != 2 && len(coords) != 3 {
		return newError(ErrInvalidInput, fmt.Sprintf("%d coordinate sequences given, 2 or 3 expected", len(coords)), "checkCoords")
	}
	n := len(coords[0])
	for i, c := range coords[1:] {
		if len(c) != n {
			return newError(ErrInvalidInput, fmt.Sprintf("coordinate sequence %d has %d samples, sequence 0 has %d", i+1, len(c), n), "checkCoords")
		}
	}
	if n < min {
		return newError(ErrInvalidInput, fmt.Sprintf("%d samples given, at least %d needed", n, min), "checkCoords")
	}
	return nil
}

//checkTraj verifies that T is a non-nil trajectory with at least min samples.
func checkTraj(T *Traj, min int, caller string) error {
	if T == nil || T.Dense == nil {
		return newError(ErrInvalidInput, "nil trajectory", caller)
	}
	if T.Len() < min {
		return newError(ErrInvalidInput, fmt.Sprintf("%d samples given, at least %d needed", T.Len(), min), caller)
	}
	return nil
}

//Len returns the number of samples in the trajectory.
func (T *Traj) Len() int {
	r, _ := T.Dims()
	return r
}

//Dim returns the number of coordinates per sample, 2 or 3.
func (T *Traj) Dim() int {
	_, c := T.Dims()
	return c
}

//Vec2 returns the ith sample of a 2D trajectory.
func (T *Traj) Vec2(i int) r2.Vec {
	if T.Dim() != 2 {
		panic(ErrNot2D)
	}
	T.check(i)
	row := T.RawRowView(i)
	return r2.Vec{X: row[0], Y: row[1]}
}

//Vec3 returns the ith sample of a 3D trajectory.
func (T *Traj) Vec3(i int) r3.Vec {
	if T.Dim() != 3 {
		panic(ErrNot3D)
	}
	T.check(i)
	row := T.RawRowView(i)
	return r3.Vec{X: row[0], Y: row[1], Z: row[2]}
}

//Point returns a copy of the coordinates of the ith sample.
func (T *Traj) Point(i int) []float64 {
	T.check(i)
	return append([]float64(nil), T.RawRowView(i)...)
}

//Coord copies the jth coordinate of every sample (0 for x, 1 for y, 2 for z)
//into dst, which is allocated if nil, and returns it.
func (T *Traj) Coord(j int, dst []float64) []float64 {
	if j < 0 || j >= T.Dim() {
		panic(ErrIndexOutOfRange)
	}
	return mat.Col(dst, j, T.Dense)
}

//Coords returns copies of all the coordinate sequences of the trajectory.
func (T *Traj) Coords() [][]float64 {
	ret := make([][]float64, T.Dim())
	for j := range ret {
		ret[j] = T.Coord(j, nil)
	}
	return ret
}

//From returns a view of the trajectory starting at sample i. Changes in the
//view are reflected in T and vice-versa.
//It is meant to drop the samples before the movement onset.
func (T *Traj) From(i int) *Traj {
	T.check(i)
	n, dim := T.Dims()
	return &Traj{T.Dense.Slice(i, n, 0, dim).(*mat.Dense)}
}

func (T *Traj) check(i int) {
	if i < 0 || i >= T.Len() {
		panic(ErrIndexOutOfRange)
	}
}

//Returns a neat string representation of a Traj
func (T *Traj) String() string {
	n, dim := T.Dims()
	v := make([]string, 0, n)
	for i := 0; i < n; i++ {
		row := T.RawRowView(i)
		if dim == 2 {
			v = append(v, fmt.Sprintf("%8.4f %8.4f", row[0], row[1]))
		} else {
			v = append(v, fmt.Sprintf("%8.4f %8.4f %8.4f", row[0], row[1], row[2]))
		}
	}
	return "[" + strings.Join(v, "\n ") + "]"
}
