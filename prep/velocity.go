/*
 * velocity.go, part of goKin.
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

package prep

//Velocity returns the derivative of x, sampled every step time units.
//Interior samples use central differences, and the first and last samples
//use one-sided differences. The result has the same length as x.
func Velocity(step float64, x []float64) []float64 {
	n := len(x)
	v := make([]float64, n)
	if n < 2 {
		return v
	}
	v[0] = (x[1] - x[0]) / step
	v[n-1] = (x[n-1] - x[n-2]) / step
	for i := 1; i < n-1; i++ {
		v[i] = (x[i+1] - x[i-1]) / (2 * step)
	}
	return v
}
