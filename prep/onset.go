/*
 * onset.go, part of goKin.
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
	"errors"
	"fmt"
	"math"
	"sort"
)

var ErrNoOnset = errors.New("prep: no movement onset found")

//OnsetOptions controls the movement onset detection.
type OnsetOptions struct {
	//Onsets before this time are not considered, e.g. the time at which
	//the participant was allowed to start moving.
	Threshold float64
	//Planar speed that must be exceeded.
	Speed float64
	//Number of consecutive samples the speed must stay above Speed.
	Window int
}

//Window returns the number of samples in a window of duration delta with
//sampling step step, minus one, with a minimum of 1.
func Window(delta, step float64) int {
	m := int(delta/step) - 1
	if m < 1 {
		m = 1
	}
	return m
}

//Onset returns the time of the movement onset: the first time, not earlier than
//opts.Threshold, from which the planar speed sqrt(vx^2+vz^2) stays above opts.Speed
//for opts.Window consecutive samples. It returns ErrNoOnset if there is no such time.
func Onset(t, vx, vz []float64, opts OnsetOptions) (float64, error) {
	if len(vx) != len(t) || len(vz) != len(t) {
		return 0, fmt.Errorf("prep: %d times, %d and %d velocities given", len(t), len(vx), len(vz))
	}
	window := opts.Window
	if window < 1 {
		window = 1
	}
	run := 0
	for i := range t {
		if t[i] < opts.Threshold || math.Hypot(vx[i], vz[i]) <= opts.Speed {
			run = 0
			continue
		}
		run++
		if run == window {
			return t[i-window+1], nil
		}
	}
	return 0, ErrNoOnset
}

//NearestIndex returns the index of the sample in the increasing times t that is closest to to.
//If to falls exactly between two samples, the later one is returned.
func NearestIndex(t []float64, to float64) int {
	ub := sort.SearchFloat64s(t, to) //first t[i] >= to
	switch {
	case ub == 0:
		return 0
	case ub == len(t):
		return len(t) - 1
	case t[ub] == to:
		return ub
	}
	lb := ub - 1
	if math.Abs(t[lb]-to) < math.Abs(t[ub]-to) {
		return lb
	}
	return ub
}
