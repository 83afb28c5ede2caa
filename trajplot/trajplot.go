/*
 * trajplot.go, part of goKin.
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

//Package trajplot draws 2D trajectories together with the chord and
//the samples selected by the descriptors in package kin.
package trajplot

import (
	"fmt"
	"image/color"

	kin "github.com/motorlab/gokin"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	blue = color.RGBA{B: 255, A: 255}
	red  = color.RGBA{R: 255, A: 255}
	grey = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

func xys(x, y []float64) (plotter.XYs, error) {
	if len(x) != len(y) || len(x) == 0 {
		return nil, fmt.Errorf("trajplot: %d x and %d y values given", len(x), len(y))
	}
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts, nil
}

//trajectory adds to p the samples in pts and the dashed chord from the first to the last one.
func trajectory(p *plot.Plot, pts plotter.XYs) error {
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = blue
	s.GlyphStyle.Radius = vg.Points(1.5)
	chord, err := plotter.NewLine(plotter.XYs{pts[0], pts[len(pts)-1]})
	if err != nil {
		return err
	}
	chord.LineStyle.Color = grey
	chord.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(s, chord)
	p.Legend.Add("trajectory", s)
	p.Legend.Add("direct line", chord)
	return nil
}

//marker returns a scatter with a single, larger point.
func marker(x, y float64, c color.Color, shape draw.GlyphDrawer) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(plotter.XYs{{X: x, Y: y}})
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Shape = shape
	s.GlyphStyle.Radius = vg.Points(4)
	return s, nil
}

//Deviation2D plots the trajectory given by x and y, its chord, and the sample
//of maximum deviation, d, obtained from kin.MaximumDeviation2D for the same
//trajectory. The plot is saved to filename, whose extension sets the format.
func Deviation2D(x, y []float64, d kin.Deviation, xlabel, ylabel, filename string) error {
	pts, err := xys(x, y)
	if err != nil {
		return err
	}
	if len(d.Point) < 2 {
		return fmt.Errorf("trajplot: deviation without a sample")
	}
	p := basicPlot(fmt.Sprintf("Max Dis: %.4f", d.Value), xlabel, ylabel)
	if err := trajectory(p, pts); err != nil {
		return err
	}
	m, err := marker(d.Point[0], d.Point[1], red, draw.CircleGlyph{})
	if err != nil {
		return err
	}
	p.Add(m)
	p.Legend.Add("max per dev", m)
	return p.Save(6*vg.Inch, 6*vg.Inch, filename)
}

//LogRatio2D plots the trajectory given by x and y, both targets and the sample of
//maximal log ratio, l, obtained from kin.MaximalLogRatio2D. The plot is saved to filename.
func LogRatio2D(x, y []float64, l kin.LogRatio, alternative, correct r2.Vec, xlabel, ylabel, filename string) error {
	pts, err := xys(x, y)
	if err != nil {
		return err
	}
	if len(l.Point) < 2 {
		return fmt.Errorf("trajplot: log ratio without a sample")
	}
	p := basicPlot(fmt.Sprintf("Max Log Ratio: %.4f", l.Value), xlabel, ylabel)
	if err := trajectory(p, pts); err != nil {
		return err
	}
	alt, err := marker(alternative.X, alternative.Y, grey, draw.BoxGlyph{})
	if err != nil {
		return err
	}
	cor, err := marker(correct.X, correct.Y, color.RGBA{G: 160, A: 255}, draw.BoxGlyph{})
	if err != nil {
		return err
	}
	m, err := marker(l.Point[0], l.Point[1], red, draw.CircleGlyph{})
	if err != nil {
		return err
	}
	p.Add(alt, cor, m)
	p.Legend.Add("alternative", alt)
	p.Legend.Add("correct", cor)
	p.Legend.Add("max log ratio", m)
	return p.Save(6*vg.Inch, 6*vg.Inch, filename)
}

//Overlay plots the coordinates xcol and ycol of all the trajectories in trajs in the same
//figure, each with its own color, and saves it to filename.
func Overlay(trajs []*kin.Traj, xcol, ycol int, title, filename string) error {
	if len(trajs) == 0 {
		return fmt.Errorf("trajplot: no trajectories given")
	}
	p := basicPlot(title, "", "")
	for key, T := range trajs {
		pts, err := xys(T.Coord(xcol, nil), T.Coord(ycol, nil))
		if err != nil {
			return err
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		r, g, b := colors(key, len(trajs))
		l.LineStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		p.Add(l)
	}
	return p.Save(6*vg.Inch, 6*vg.Inch, filename)
}
