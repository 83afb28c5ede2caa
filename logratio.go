/*
 * logratio.go, part of goKin.
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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

//LogRatio is the result of a maximal log ratio calculation.
type LogRatio struct {
	Value float64   //ln(distance to correct / distance to alternative) at the maximizing sample
	Point []float64 //coordinates of the maximizing sample
	Index int       //index of the maximizing sample in the trajectory
}

func (l LogRatio) String() string {
	return fmt.Sprintf("log ratio %.6f at sample %d %v", l.Value, l.Index, l.Point)
}

//MaximalLogRatio2D returns the sample of the trajectory given by x and y that
//maximizes ln(d_correct/d_alternative), where d_correct and d_alternative are the
//distances from the sample to the correct and alternative targets. Large values mean
//the movement went towards the alternative target.
//No sample may coincide with the alternative target.
func MaximalLogRatio2D(x, y []float64, alternative, correct r2.Vec) (LogRatio, error) {
	T, err := newTrajMin("MaximalLogRatio2D", 1, x, y)
	if err != nil {
		return LogRatio{}, err
	}
	l, err := maximalLogRatio(T, []float64{alternative.X, alternative.Y}, []float64{correct.X, correct.Y})
	return l, errDecorate(err, "MaximalLogRatio2D")
}

//MaximalLogRatio3D is the 3D version of MaximalLogRatio2D.
func MaximalLogRatio3D(x, y, z []float64, alternative, correct r3.Vec) (LogRatio, error) {
	T, err := newTrajMin("MaximalLogRatio3D", 1, x, y, z)
	if err != nil {
		return LogRatio{}, err
	}
	l, err := maximalLogRatio(T, []float64{alternative.X, alternative.Y, alternative.Z}, []float64{correct.X, correct.Y, correct.Z})
	return l, errDecorate(err, "MaximalLogRatio3D")
}

//MaximalLogRatio works as MaximalLogRatio2D or MaximalLogRatio3D depending on the
//dimension of T. Both targets must have as many coordinates as T.
func MaximalLogRatio(T *Traj, alternative, correct []float64) (LogRatio, error) {
	if err := checkTraj(T, 1, "MaximalLogRatio"); err != nil {
		return LogRatio{}, err
	}
	l, err := maximalLogRatio(T, alternative, correct)
	return l, errDecorate(err, "MaximalLogRatio")
}

//LogRatios2D returns ln(d_correct/d_alternative) for every sample of the trajectory
//given by x and y.
func LogRatios2D(x, y []float64, alternative, correct r2.Vec) ([]float64, error) {
	T, err := newTrajMin("LogRatios2D", 1, x, y)
	if err != nil {
		return nil, err
	}
	r, err := logRatios(T, []float64{alternative.X, alternative.Y}, []float64{correct.X, correct.Y})
	return r, errDecorate(err, "LogRatios2D")
}

//LogRatios3D is the 3D version of LogRatios2D.
func LogRatios3D(x, y, z []float64, alternative, correct r3.Vec) ([]float64, error) {
	T, err := newTrajMin("LogRatios3D", 1, x, y, z)
	if err != nil {
		return nil, err
	}
	r, err := logRatios(T, []float64{alternative.X, alternative.Y, alternative.Z}, []float64{correct.X, correct.Y, correct.Z})
	return r, errDecorate(err, "LogRatios3D")
}

func maximalLogRatio(T *Traj, alternative, correct []float64) (LogRatio, error) {
	ratios, err := logRatios(T, alternative, correct)
	if err != nil {
		return LogRatio{}, errDecorate(err, "maximalLogRatio")
	}
	idx := argmax(ratios)
	return LogRatio{Value: ratios[idx], Point: T.Point(idx), Index: idx}, nil
}

func logRatios(T *Traj, alternative, correct []float64) ([]float64, error) {
	dim := T.Dim()
	if len(alternative) != dim || len(correct) != dim {
		return nil, newError(ErrInvalidInput, fmt.Sprintf("targets with %d and %d coordinates given for a %dD trajectory", len(alternative), len(correct), dim), "logRatios")
	}
	ratios := make([]float64, T.Len())
	for i := range ratios {
		p := T.RawRowView(i)
		dalt := floats.Distance(p, alternative, 2)
		if dalt == 0 {
			return nil, newError(ErrDegenerateGeometry, fmt.Sprintf("sample %d coincides with the alternative target", i), "logRatios")
		}
		ratios[i] = math.Log(floats.Distance(p, correct, 2) / dalt)
	}
	return ratios, nil
}
