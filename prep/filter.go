/*
 * filter.go, part of goKin.
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

import (
	"fmt"
	"math"
)

//biquad is one second order section of a digital filter. For first
//order sections b2 and a2 are zero.
type biquad struct {
	b0, b1, b2 float64
	a1, a2     float64
}

//butterworth returns the second order sections of a digital Butterworth low-pass
//filter of the given order, designed with the bilinear transform.
func butterworth(cutoff, rate float64, order int) []biquad {
	K := math.Tan(math.Pi * cutoff / rate) //prewarped cutoff
	K2 := K * K
	sections := make([]biquad, 0, (order+1)/2)
	for k := 0; k < order/2; k++ {
		//Q of each pole pair of the analog prototype
		Q := 1 / (2 * math.Cos(math.Pi*float64(2*k+1)/float64(2*order)))
		norm := 1 / (1 + K/Q + K2)
		b0 := K2 * norm
		sections = append(sections, biquad{
			b0: b0, b1: 2 * b0, b2: b0,
			a1: 2 * (K2 - 1) * norm,
			a2: (1 - K/Q + K2) * norm,
		})
	}
	if order%2 == 1 {
		norm := 1 / (1 + K)
		sections = append(sections, biquad{b0: K * norm, b1: K * norm, a1: (K - 1) * norm})
	}
	return sections
}

//run filters x in place, starting from the steady state for x[0].
func (s biquad) run(x []float64) {
	if len(x) == 0 {
		return
	}
	x1, x2 := x[0], x[0]
	//unit DC gain, so the steady state output equals the input
	y1, y2 := x[0], x[0]
	for i, v := range x {
		y := s.b0*v + s.b1*x1 + s.b2*x2 - s.a1*y1 - s.a2*y2
		x2, x1 = x1, v
		y2, y1 = y1, y
		x[i] = y
	}
}

//LowPass applies a Butterworth low-pass filter of the given order and cutoff frequency
//to x, sampled at rate, forwards and then backwards, so the result has no phase
//shift. The signal is extended at both ends by odd reflection to reduce edge effects.
//The returned slice has the same length as x; x is not modified.
func LowPass(x []float64, cutoff, rate float64, order int) ([]float64, error) {
	if order < 1 {
		return nil, fmt.Errorf("prep: invalid filter order %d", order)
	}
	if !(cutoff > 0 && cutoff < rate/2) {
		return nil, fmt.Errorf("prep: cutoff %g must be between 0 and the Nyquist frequency %g", cutoff, rate/2)
	}
	n := len(x)
	if n == 0 {
		return []float64{}, nil
	}
	pad := 3 * (order + 1)
	if pad > n-1 {
		pad = n - 1
	}
	ext := make([]float64, n+2*pad)
	for i := 0; i < pad; i++ {
		ext[i] = 2*x[0] - x[pad-i]
		ext[n+pad+i] = 2*x[n-1] - x[n-2-i]
	}
	copy(ext[pad:], x)
	sections := butterworth(cutoff, rate, order)
	for _, s := range sections {
		s.run(ext)
	}
	reverse(ext)
	for _, s := range sections {
		s.run(ext)
	}
	reverse(ext)
	ret := make([]float64, n)
	copy(ret, ext[pad:pad+n])
	return ret, nil
}

func reverse(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
