/*
 * vector.go, part of goKin.
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
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

//SignedAngle2D returns the signed angle, in radians and in (-pi, pi], between the
//vectors going from origin to sample and from origin to end.
//When end has a negative x coordinate the two vectors exchange roles, which
//flips the sign. This keeps the handedness consistent for targets placed at either
//side of the y axis. end.X == 0 counts as non-negative.
func SignedAngle2D(origin, sample, end r2.Vec) (float64, error) {
	v1 := r2.Sub(sample, origin)
	v2 := r2.Sub(end, origin)
	if end.X < 0 {
		v1, v2 = v2, v1
	}
	if r2.Norm(v1) == 0 || r2.Norm(v2) == 0 {
		return 0, newError(ErrDegenerateGeometry, "zero-length vector, sample or end coincides with origin", "SignedAngle2D")
	}
	//det([v2; v1])
	return math.Atan2(r2.Cross(v2, v1), r2.Dot(v1, v2)), nil
}

//UnsignedAngle3D returns the angle, in radians and in [0, pi], between the vectors
//going from origin to sample and from origin to end.
func UnsignedAngle3D(origin, sample, end r3.Vec) (float64, error) {
	v1 := r3.Sub(sample, origin)
	v2 := r3.Sub(end, origin)
	normproduct := r3.Norm(v1) * r3.Norm(v2)
	if normproduct == 0 {
		return 0, newError(ErrDegenerateGeometry, "zero-length vector, sample or end coincides with origin", "UnsignedAngle3D")
	}
	return math.Acos(clamp(r3.Dot(v1, v2) / normproduct)), nil
}

//PlaneSign3D tells on which side of a plane the point sample lies. The plane
//contains origin, normalRef and end. It returns 1, -1, or 0 if sample lies on the plane.
//The orientation of the plane normal follows the same end.X < 0 convention
//as SignedAngle2D, so the sign is the 3D analogue of the 2D angle's sign.
func PlaneSign3D(origin, normalRef, end, sample r3.Vec) (float64, error) {
	var va, vb r3.Vec
	if end.X < 0 {
		va = r3.Sub(normalRef, origin)
		vb = r3.Sub(end, origin)
	} else {
		va = r3.Sub(end, origin)
		vb = r3.Sub(normalRef, origin)
	}
	vt := r3.Sub(sample, origin)
	if r3.Norm(va) == 0 || r3.Norm(vb) == 0 || r3.Norm(vt) == 0 {
		return 0, newError(ErrDegenerateGeometry, "zero-length vector, a point coincides with origin", "PlaneSign3D")
	}
	axb := r3.Cross(r3.Unit(va), r3.Unit(vb))
	if r3.Norm(axb) == 0 {
		return 0, newError(ErrDegenerateGeometry, "reference points are colinear with origin, the plane is undefined", "PlaneSign3D")
	}
	theta := math.Asin(clamp(r3.Dot(r3.Unit(axb), r3.Unit(vt))))
	return sign(theta), nil
}

//clamp takes care of floating point math errors that put the argument of
//an inverse trigonometric function slightly outside [-1, 1].
func clamp(argument float64) float64 {
	return math.Max(-1, math.Min(1, argument))
}

//sign returns -1, 0 or 1 following the sign of f.
func sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}
