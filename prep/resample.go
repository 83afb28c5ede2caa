/*
 * resample.go, part of goKin.
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

//Package prep prepares raw tracker trajectories for the descriptors in package kin:
//resampling onto a uniform time grid, low-pass filtering, velocity estimation
//and detection of the movement onset.
package prep

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

var ErrTooFewSamples = errors.New("prep: too few samples")

//Resampler interpolates irregularly sampled coordinates onto a uniform time grid.
type Resampler struct {
	//Samples per time unit of the uniform grid.
	Rate float64
	//New returns the interpolator to be fitted to each coordinate. If nil, a natural
	//cubic spline is used.
	New func() interp.FittablePredictor
}

//Resample fits a spline to each column in cols, as a function of the times t,
//and evaluates it on a grid that starts at t[0] and advances 1/Rate per sample
//up to the last time. It returns the grid and the resampled columns.
//t must be strictly increasing and every column must be as long as t.
func (R Resampler) Resample(t []float64, cols ...[]float64) ([]float64, [][]float64, error) {
	if R.Rate <= 0 {
		return nil, nil, fmt.Errorf("prep: invalid resampling rate %g", R.Rate)
	}
	if len(t) < 3 {
		return nil, nil, fmt.Errorf("%w: %d samples, at least 3 needed for resampling", ErrTooFewSamples, len(t))
	}
	for i := 1; i < len(t); i++ {
		if !(t[i] > t[i-1]) {
			return nil, nil, fmt.Errorf("prep: times not strictly increasing at sample %d (%g after %g)", i, t[i], t[i-1])
		}
	}
	for i, c := range cols {
		if len(c) != len(t) {
			return nil, nil, fmt.Errorf("prep: column %d has %d samples, %d times given", i, len(c), len(t))
		}
	}
	newfp := R.New
	if newfp == nil {
		newfp = func() interp.FittablePredictor { return &interp.NaturalCubic{} }
	}
	t0, tf := t[0], t[len(t)-1]
	n := int(math.Floor((tf-t0)*R.Rate+1e-9)) + 1
	if n < 2 {
		return nil, nil, fmt.Errorf("%w: %g time units span less than one step at rate %g", ErrTooFewSamples, tf-t0, R.Rate)
	}
	grid := make([]float64, n)
	for k := range grid {
		grid[k] = math.Min(t0+float64(k)/R.Rate, tf)
	}
	ret := make([][]float64, len(cols))
	for i, c := range cols {
		fp := newfp()
		if err := fp.Fit(t, c); err != nil {
			return nil, nil, fmt.Errorf("prep: fitting column %d: %w", i, err)
		}
		ret[i] = make([]float64, n)
		for k, v := range grid {
			ret[i][k] = fp.Predict(v)
		}
	}
	return grid, ret, nil
}

//Resample is a shortcut for a natural cubic spline Resampler with the given rate.
func Resample(t []float64, rate float64, cols ...[]float64) ([]float64, [][]float64, error) {
	return Resampler{Rate: rate}.Resample(t, cols...)
}
