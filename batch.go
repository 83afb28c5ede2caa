/*
 * batch.go, part of goKin.
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
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

//Trial is one trajectory to be described, with its targets.
//Alternative and Correct can be nil, in which case the log ratio is not calculated.
type Trial struct {
	ID          string
	Traj        *Traj
	Alternative []float64
	Correct     []float64
}

//Descriptors holds all the descriptors for one trial.
type Descriptors struct {
	ID        string
	LogRatio  *LogRatio //nil if the trial had no targets
	Deviation Deviation
	Curvature float64
}

func (d Descriptors) String() string {
	mlr := "-"
	if d.LogRatio != nil {
		mlr = fmt.Sprintf("%.6f", d.LogRatio.Value)
	}
	return fmt.Sprintf("%s MPD: %.6f (sample %d) TC: %.6f MLR: %s", d.ID, d.Deviation.Value, d.Deviation.Index, d.Curvature, mlr)
}

//Describe calculates the maximum deviation, the total curvature and, if the trial
//has targets, the maximal log ratio for the trial.
func Describe(t Trial, normalize bool) (Descriptors, error) {
	ret := Descriptors{ID: t.ID}
	var err error
	ret.Deviation, err = MaximumDeviation(t.Traj, normalize)
	if err != nil {
		return ret, errDecorate(err, "Describe")
	}
	ret.Curvature, err = TotalCurvature(t.Traj)
	if err != nil {
		return ret, errDecorate(err, "Describe")
	}
	if t.Alternative != nil && t.Correct != nil {
		l, err := MaximalLogRatio(t.Traj, t.Alternative, t.Correct)
		if err != nil {
			return ret, errDecorate(err, "Describe")
		}
		ret.LogRatio = &l
	}
	return ret, nil
}

//DescribeAll describes all the trials concurrently, using up to workers goroutines
//(workers <= 0 means no limit). The results are in the same order as trials.
//The first failing trial cancels the rest, and its error is returned.
func DescribeAll(ctx context.Context, trials []Trial, workers int, normalize bool) ([]Descriptors, error) {
	ret := make([]Descriptors, len(trials))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, t := range trials {
		i, t := i, t
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := Describe(t, normalize)
			if err != nil {
				return fmt.Errorf("trial %s: %w", t.ID, err)
			}
			ret[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ret, nil
}
