/*
 * main.go, part of goKin.
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

//trajdesc reads the tracker files of a range of trials, preprocesses them
//(resampling, low-pass filtering and movement onset detection) and prints
//the maximum deviation, total curvature and, if targets are configured,
//the maximal log ratio of each trial from its onset on.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	kin "github.com/motorlab/gokin"
	"github.com/motorlab/gokin/prep"
	"github.com/motorlab/gokin/traj/tracker"
	"github.com/motorlab/gokin/trajplot"
	"gonum.org/v1/gonum/spatial/r2"
)

func main() {
	config := flag.String("config", "", "JSON (.json) or YAML (.yaml, .yml) file with the preprocessing parameters")
	dir := flag.String("dir", ".", "directory with the tracker files")
	results := flag.String("results", "", "trial results file with start_time and initial_time columns (default: dir/../trial_results.csv)")
	first := flag.Int("first", 1, "first trial")
	last := flag.Int("last", 1, "last trial")
	plotdir := flag.String("plot", "", "if given, write the plots of 2D trials to this directory")
	workers := flag.Int("workers", 0, "maximum number of trials described concurrently (0 means no limit)")
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("trajdesc: ")

	cfg := &Config{}
	if *config != "" {
		var err error
		cfg, err = LoadConfig(*config)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *first < 1 || *last < *first {
		log.Fatalf("invalid trial range %d-%d", *first, *last)
	}
	if *results == "" {
		*results = filepath.Join(*dir, "..", "trial_results.csv")
	}
	res, err := tracker.Read(*results, "start_time", "initial_time")
	if err != nil {
		log.Fatal(err)
	}
	thresholds, err := tracker.Thresholds(res)
	if err != nil {
		log.Fatal(err)
	}
	start := res.Col("start_time")
	if *last > len(start) {
		log.Fatalf("trial %d requested but %s has only %d trials", *last, *results, len(start))
	}
	trials := make([]kin.Trial, 0, *last-*first+1)
	for n := *first; n <= *last; n++ {
		name := tracker.FileName(*dir, n)
		D, err := tracker.Read(name, append([]string{"time"}, cfg.GetAxes()[:cfg.GetDims()]...)...)
		if err != nil {
			log.Fatal(err)
		}
		D.Shift("time", start[n-1])
		T, err := Preprocess(cfg, D, thresholds[n-1])
		if err != nil {
			log.Fatalf("trial %d: %v", n, err)
		}
		trials = append(trials, kin.Trial{ID: fmt.Sprintf("T%03d", n), Traj: T, Alternative: cfg.Alternative, Correct: cfg.Correct})
	}
	desc, err := kin.DescribeAll(context.Background(), trials, *workers, cfg.GetNormalize())
	if err != nil {
		log.Fatal(err)
	}
	for _, d := range desc {
		fmt.Println(d)
	}
	if *plotdir == "" {
		return
	}
	if cfg.GetDims() != 2 {
		log.Println("plots are only drawn for 2D trajectories")
		return
	}
	if err := os.MkdirAll(*plotdir, 0o755); err != nil {
		log.Fatal(err)
	}
	if err := plotAll(*plotdir, cfg, trials, desc); err != nil {
		log.Fatal(err)
	}
}

// Preprocess turns the raw tracker data in D, with time relative to the start of the trial,
// into the trajectory from the movement onset on. The onset is not searched before threshold.
func Preprocess(cfg *Config, D *tracker.Data, threshold float64) (*kin.Traj, error) {
	axes := cfg.GetAxes()[:cfg.GetDims()]
	raw := make([][]float64, len(axes))
	for i, v := range axes {
		raw[i] = D.Col(v)
	}
	t, cols, err := prep.Resample(D.Col("time"), cfg.GetRate(), raw...)
	if err != nil {
		return nil, err
	}
	if len(t) < 3 {
		return nil, fmt.Errorf("%w: trial spans %d samples at %g Hz", prep.ErrTooFewSamples, len(t), cfg.GetRate())
	}
	if cfg.GetFilter() {
		for i := range cols {
			cols[i], err = prep.LowPass(cols[i], cfg.GetCutoff(), cfg.GetRate(), cfg.GetOrder())
			if err != nil {
				return nil, err
			}
		}
	}
	step := t[1] - t[0]
	opts := prep.OnsetOptions{
		Threshold: threshold,
		Speed:     cfg.GetSpeed(),
		Window:    prep.Window(cfg.GetOnsetWindow(), step),
	}
	to, err := prep.Onset(t, prep.Velocity(step, cols[0]), prep.Velocity(step, cols[1]), opts)
	if err != nil {
		return nil, err
	}
	T, err := kin.NewTraj(cols...)
	if err != nil {
		return nil, err
	}
	idx := prep.NearestIndex(t, to)
	if T.Len()-idx < 3 {
		return nil, fmt.Errorf("only %d samples after the onset at %.3f s", T.Len()-idx, to)
	}
	return T.From(idx), nil
}

func plotAll(dir string, cfg *Config, trials []kin.Trial, desc []kin.Descriptors) error {
	axes := cfg.GetAxes()
	trajs := make([]*kin.Traj, len(trials))
	for i, tr := range trials {
		trajs[i] = tr.Traj
		x, y := tr.Traj.Coord(0, nil), tr.Traj.Coord(1, nil)
		name := filepath.Join(dir, tr.ID+"_deviation.png")
		if err := trajplot.Deviation2D(x, y, desc[i].Deviation, axes[0], axes[1], name); err != nil {
			return err
		}
		if desc[i].LogRatio == nil {
			continue
		}
		alt := r2.Vec{X: cfg.Alternative[0], Y: cfg.Alternative[1]}
		cor := r2.Vec{X: cfg.Correct[0], Y: cfg.Correct[1]}
		name = filepath.Join(dir, tr.ID+"_logratio.png")
		if err := trajplot.LogRatio2D(x, y, *desc[i].LogRatio, alt, cor, axes[0], axes[1], name); err != nil {
			return err
		}
	}
	return trajplot.Overlay(trajs, 0, 1, "all trials", filepath.Join(dir, "trials.png"))
}
