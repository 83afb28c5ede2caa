/*
 * curvature.go, part of goKin.
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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//TotalCurvature2D returns the mean signed perpendicular distance from the interior samples
//of the trajectory given by x and y to the chord joining its first and last samples.
//Signs are the same as in MaximumDeviation2D. The trajectory needs at least 3 samples.
func TotalCurvature2D(x, y []float64) (float64, error) {
	T, err := newTrajMin("TotalCurvature2D", 3, x, y)
	if err != nil {
		return 0, err
	}
	tc, err := totalCurvature(T, signedDistances2D)
	return tc, errDecorate(err, "TotalCurvature2D")
}

//TotalCurvature3D is the 3D version of TotalCurvature2D.
func TotalCurvature3D(x, y, z []float64) (float64, error) {
	T, err := newTrajMin("TotalCurvature3D", 3, x, y, z)
	if err != nil {
		return 0, err
	}
	tc, err := totalCurvature(T, signedDistances3D)
	return tc, errDecorate(err, "TotalCurvature3D")
}

//TotalCurvature calls TotalCurvature2D or TotalCurvature3D depending on the
//dimension of T.
func TotalCurvature(T *Traj) (float64, error) {
	if err := checkTraj(T, 3, "TotalCurvature"); err != nil {
		return 0, err
	}
	f := signedDistances2D
	if T.Dim() == 3 {
		f = signedDistances3D
	}
	tc, err := totalCurvature(T, f)
	return tc, errDecorate(err, "TotalCurvature")
}

func totalCurvature(T *Traj, f distancer) (float64, error) {
	dis, sgn, err := f(T)
	if err != nil {
		return 0, errDecorate(err, "totalCurvature")
	}
	floats.Mul(dis, sgn) //dis now holds the signed distances
	return stat.Mean(dis, nil), nil
}
