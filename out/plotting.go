// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gostap/fem"
	"github.com/cpmech/gostap/inp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// styles
var (
	UndeformedColor = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	DeformedColor   = color.RGBA{R: 0, G: 90, B: 200, A: 255}
	PlotSize        = 14 * vg.Centimeter
)

// planeAxes returns the indices of the horizontal and vertical axes of a projection plane
func planeAxes(plane string) (h, v int, err error) {
	switch plane {
	case "xy":
		return 0, 1, nil
	case "xz":
		return 0, 2, nil
	case "yz":
		return 1, 2, nil
	}
	return 0, 0, chk.Err("plot plane %q is invalid", plane)
}

// AutoScale returns a displacements multiplier such that the largest displacement
// is drawn with one tenth of the largest dimension of the structure
func AutoScale(analysis *fem.Main, lc int) float64 {
	dom := analysis.Dom
	var xmin, xmax [inp.Ndf]float64
	for i := 0; i < inp.Ndf; i++ {
		xmin[i], xmax[i] = math.Inf(1), math.Inf(-1)
	}
	umax := 0.0
	for _, nod := range dom.Nodes {
		u := dom.NodeDisp(nod.Id, lc)
		for i := 0; i < inp.Ndf; i++ {
			xmin[i] = math.Min(xmin[i], nod.X[i])
			xmax[i] = math.Max(xmax[i], nod.X[i])
			umax = math.Max(umax, math.Abs(u[i]))
		}
	}
	size := 0.0
	for i := 0; i < inp.Ndf; i++ {
		size = math.Max(size, xmax[i]-xmin[i])
	}
	if umax == 0 || size == 0 {
		return 1
	}
	return 0.1 * size / umax
}

// PlotShapes plots the undeformed and deformed shapes of one load case
//  lc    -- load case number (1-based)
//  scale -- displacements multiplier; 0 => automatic
func PlotShapes(analysis *fem.Main, lc int, plane string, scale float64) (p *plot.Plot, err error) {
	if !analysis.Solved {
		return nil, chk.Err("cannot plot load case %d: analysis is not solved", lc)
	}
	if lc < 1 || lc > len(analysis.Dom.Disp) {
		return nil, chk.Err("cannot plot load case %d: number of load cases is %d", lc, len(analysis.Dom.Disp))
	}
	h, v, err := planeAxes(plane)
	if err != nil {
		return
	}
	if scale == 0 {
		scale = AutoScale(analysis, lc)
	}

	// plot
	p = plot.New()
	p.Title.Text = io.Sf("%s: load case %d (scale = %g)", analysis.Model.Title, lc, scale)
	p.X.Label.Text = plane[:1]
	p.Y.Label.Text = plane[1:]

	// bars
	dom := analysis.Dom
	var undeformed, deformed *plotter.Line
	for _, g := range dom.Groups {
		for _, e := range g.Elems {
			nodes := e.Nodes()
			xy0 := make(plotter.XYs, len(nodes))
			xy1 := make(plotter.XYs, len(nodes))
			for i, nod := range nodes {
				u := dom.NodeDisp(nod.Id, lc)
				xy0[i].X, xy0[i].Y = nod.X[h], nod.X[v]
				xy1[i].X, xy1[i].Y = nod.X[h]+scale*u[h], nod.X[v]+scale*u[v]
			}
			if undeformed, err = plotter.NewLine(xy0); err != nil {
				return nil, err
			}
			undeformed.LineStyle.Color = UndeformedColor
			undeformed.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
			if deformed, err = plotter.NewLine(xy1); err != nil {
				return nil, err
			}
			deformed.LineStyle.Color = DeformedColor
			deformed.LineStyle.Width = vg.Points(1.5)
			p.Add(undeformed, deformed)
		}
	}

	// nodes
	pts := make(plotter.XYs, len(dom.Nodes))
	for i, nod := range dom.Nodes {
		u := dom.NodeDisp(nod.Id, lc)
		pts[i].X, pts[i].Y = nod.X[h]+scale*u[h], nod.X[v]+scale*u[v]
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Color = DeformedColor
	sc.GlyphStyle.Radius = vg.Points(2)
	p.Add(sc)
	if undeformed != nil {
		p.Legend.Add("undeformed", undeformed)
		p.Legend.Add("deformed", deformed)
	}
	p.Legend.Top = true
	return
}

// WritePlots saves the shapes of all load cases to <dirout>/<key>_lc<n><ext>
func WritePlots(analysis *fem.Main) (fnpaths []string, err error) {
	cfg := analysis.Cfg
	dirout := cfg.DirOut
	if dirout == "" {
		dirout = analysis.Model.Dir
	}
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return nil, &FileError{Path: dirout, Err: err}
	}
	for lc := 1; lc <= len(analysis.Dom.Disp); lc++ {
		p, err := PlotShapes(analysis, lc, cfg.PlotPlane, cfg.PlotScale)
		if err != nil {
			return nil, err
		}
		fnpath := filepath.Join(dirout, io.Sf("%s_lc%d%s", analysis.Model.Key, lc, cfg.PlotExt))
		if err = p.Save(PlotSize, PlotSize, fnpath); err != nil {
			return nil, &FileError{Path: fnpath, Err: err}
		}
		fnpaths = append(fnpaths, fnpath)
	}
	return
}
