/*
 * deviation.go, part of goKin.
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
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

//Deviation is the result of a maximum perpendicular deviation calculation.
type Deviation struct {
	//Signed perpendicular distance from the extremal sample to the chord,
	//divided by Chord if normalization was requested.
	Value float64
	//Coordinates of the extremal interior sample.
	Point []float64
	//Index of the extremal sample among the interior samples, i.e.
	//the sample is number Index+1 in the trajectory.
	Index int
	//Length of the chord from the first to the last sample.
	Chord float64
	//Whether Value has been divided by Chord.
	Normalized bool
}

//Normalize returns the deviation divided by the chord length. If d is already
//normalized, its Value is returned unchanged.
func (d Deviation) Normalize() float64 {
	if d.Normalized {
		return d.Value
	}
	return d.Value / d.Chord
}

func (d Deviation) String() string {
	return fmt.Sprintf("deviation %.6f at interior sample %d %v", d.Value, d.Index, d.Point)
}

//MaximumDeviation2D returns the largest perpendicular distance from an interior sample
//of the trajectory given by x and y to the chord joining its first and last samples.
//The distance carries the sign of the angle between the sample and the chord (see SignedAngle2D).
//If normalize is given and true, the distance is divided by the chord length.
//The trajectory needs at least 3 samples.
func MaximumDeviation2D(x, y []float64, normalize ...bool) (Deviation, error) {
	T, err := newTrajMin("MaximumDeviation2D", 3, x, y)
	if err != nil {
		return Deviation{}, err
	}
	d, err := maximumDeviation(T, signedDistances2D, normalize...)
	return d, errDecorate(err, "MaximumDeviation2D")
}

//MaximumDeviation3D is the 3D version of MaximumDeviation2D. The sign of
//the distance is given by the side of the vertical plane containing the chord
//on which the extremal sample lies (see PlaneSign3D).
func MaximumDeviation3D(x, y, z []float64, normalize ...bool) (Deviation, error) {
	T, err := newTrajMin("MaximumDeviation3D", 3, x, y, z)
	if err != nil {
		return Deviation{}, err
	}
	d, err := maximumDeviation(T, signedDistances3D, normalize...)
	return d, errDecorate(err, "MaximumDeviation3D")
}

//MaximumDeviation calls MaximumDeviation2D or MaximumDeviation3D depending
//on the dimension of T.
func MaximumDeviation(T *Traj, normalize ...bool) (Deviation, error) {
	if err := checkTraj(T, 3, "MaximumDeviation"); err != nil {
		return Deviation{}, err
	}
	f := signedDistances2D
	if T.Dim() == 3 {
		f = signedDistances3D
	}
	d, err := maximumDeviation(T, f, normalize...)
	return d, errDecorate(err, "MaximumDeviation")
}

type distancer func(T *Traj) (dis, sgn []float64, err error)

func maximumDeviation(T *Traj, f distancer, normalize ...bool) (Deviation, error) {
	dis, sgn, err := f(T)
	if err != nil {
		return Deviation{}, errDecorate(err, "maximumDeviation")
	}
	idx := argmax(dis)
	ret := Deviation{
		Value: sgn[idx] * dis[idx],
		Point: T.Point(idx + 1),
		Index: idx,
		Chord: chord(T),
	}
	if len(normalize) > 0 && normalize[0] {
		ret.Value /= ret.Chord
		ret.Normalized = true
	}
	return ret, nil
}

//signedDistances2D returns, for each interior sample, the perpendicular distance
//to the chord and the sign of its angle to the chord.
func signedDistances2D(T *Traj) ([]float64, []float64, error) {
	n := T.Len()
	origin := T.Vec2(0)
	end := T.Vec2(n - 1)
	dis := make([]float64, n-2)
	sgn := make([]float64, n-2)
	for i := range dis {
		p := T.Vec2(i + 1)
		theta, err := SignedAngle2D(origin, p, end)
		if err != nil {
			return nil, nil, errDecorate(err, fmt.Sprintf("signedDistances2D: interior sample %d", i))
		}
		dis[i] = r2.Norm(r2.Sub(p, origin)) * math.Sin(math.Abs(theta))
		sgn[i] = sign(theta)
	}
	return dis, sgn, nil
}

//signedDistances3D is the 3D version of signedDistances2D. The sign is taken
//with respect to the plane containing the first sample, the last sample and
//the last sample projected to the height of the first one.
func signedDistances3D(T *Traj) ([]float64, []float64, error) {
	n := T.Len()
	origin := T.Vec3(0)
	end := T.Vec3(n - 1)
	anchor := r3.Vec{X: end.X, Y: end.Y, Z: origin.Z}
	dis := make([]float64, n-2)
	sgn := make([]float64, n-2)
	for i := range dis {
		p := T.Vec3(i + 1)
		theta, err := UnsignedAngle3D(origin, p, end)
		if err != nil {
			return nil, nil, errDecorate(err, fmt.Sprintf("signedDistances3D: interior sample %d", i))
		}
		s, err := PlaneSign3D(origin, anchor, end, p)
		if err != nil {
			return nil, nil, errDecorate(err, fmt.Sprintf("signedDistances3D: interior sample %d", i))
		}
		dis[i] = r3.Norm(r3.Sub(p, origin)) * math.Sin(theta)
		sgn[i] = s
	}
	return dis, sgn, nil
}

//chord returns the distance between the first and last samples of T.
func chord(T *Traj) float64 {
	n := T.Len()
	if T.Dim() == 2 {
		return r2.Norm(r2.Sub(T.Vec2(n-1), T.Vec2(0)))
	}
	return r3.Norm(r3.Sub(T.Vec3(n-1), T.Vec3(0)))
}

//argmax returns the index of the largest element of s. Ties go to the
//first occurrence. s must not be empty.
func argmax(s []float64) int {
	idx := 0
	best := s[0]
	for i, v := range s[1:] {
		if v > best {
			best = v
			idx = i + 1
		}
	}
	return idx
}

//newTrajMin builds a Traj from coords and checks it has at least min samples.
func newTrajMin(caller string, min int, coords ...[]float64) (*Traj, error) {
	if err := checkCoords(coords, min); err != nil {
		return nil, errDecorate(err, caller)
	}
	T, err := NewTraj(coords...)
	return T, errDecorate(err, caller)
}
