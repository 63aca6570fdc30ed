// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_dat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dat01. read two bars in series")

	m, err := ReadDat("testdata/series.dat")
	require.NoError(tst, err)
	if chk.Verbose {
		io.Pforan("model = %+v\n", m)
	}

	chk.String(tst, m.Title, "Two bars in series along x")
	chk.String(tst, m.Dir, "testdata")
	chk.String(tst, m.Key, "series")
	chk.Ints(tst, "control", []int{m.Numnp, m.Numeg, m.Nlcase, m.Modex}, []int{3, 2, 2, ModeExecution})

	// nodes
	chk.Int(tst, "len(nodes)", len(m.Nodes), 3)
	chk.Int(tst, "node 3: id", m.Nodes[2].Id, 3)
	chk.Ints(tst, "node 1: bcode", m.Nodes[0].Bcode[:], []int{1, 1, 1})
	chk.Ints(tst, "node 2: bcode", m.Nodes[1].Bcode[:], []int{0, 1, 1})
	chk.Array(tst, "node 3: x", 1e-17, m.Nodes[2].X[:], []float64{3, 0, 0})

	// load cases
	chk.Int(tst, "len(loadcases)", len(m.LoadCases), 2)
	l := m.LoadCases[1].Loads[0]
	chk.Ints(tst, "load 2: node and dof", []int{l.Node, l.Dof}, []int{2, 1})
	chk.Float64(tst, "load 2: value (Fortran exponent)", 1e-17, l.Val, -20)

	// element groups
	chk.Int(tst, "len(groups)", len(m.Groups), 2)
	g := m.Groups[1]
	chk.Ints(tst, "group 2: control", []int{g.Type, g.Nume, g.Nummat}, []int{1, 1, 1})
	chk.Array(tst, "group 2: material", 1e-17, g.Mats[0].Vals, []float64{100, 2})
	chk.Ints(tst, "group 2: element verts", g.Elems[0].Verts, []int{2, 3})
	chk.Int(tst, "group 2: element mat", g.Elems[0].Mat, 1)
}

func Test_dat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dat02. records out of order")

	for _, c := range []struct {
		what string
		data string
		exp  int
		prv  int
	}{
		{"node", "t\n2 0 0 0\n1 0 0 0 0 0 0\n3 0 0 0 0 0 0\n", 2, 3},
		{"load case", "t\n1 0 1 1\n1 0 0 0 0 0 0\n2 0\n", 1, 2},
		{"material set", "t\n1 1 0 1\n1 0 0 0 0 0 0\n1 0 2\n1 1 1\n3 1 1\n", 2, 3},
		{"element", "t\n2 1 0 1\n1 0 0 0 0 0 0\n2 0 0 0 1 0 0\n1 2 1\n1 1 1\n2 1 2 1\n", 1, 2},
	} {
		_, err := ParseDat(strings.NewReader(c.data))
		var oerr *OrderError
		require.ErrorAs(tst, err, &oerr, c.what)
		chk.String(tst, oerr.What, c.what)
		chk.Int(tst, c.what+": expected", oerr.Expected, c.exp)
		chk.Int(tst, c.what+": provided", oerr.Provided, c.prv)
	}
}

func Test_dat03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dat03. malformed files")

	for _, c := range []struct {
		data string
		line int
	}{
		{"", 1},
		{"title\n1 0 0\n", 2},
		{"title\n1 0 0 1\n1 0 0 0 0.0 abc 0.0\n", 3},
		{"title\n1 0 0 1\n\n1 0 0 0 0 0\n", 4},
		{"title\n-1 0 0 1\n", 2},
		{"title\n1 0 1 1\n1 0 0 0 0 0 0\n1 1\n1 x 2.0\n", 5},
	} {
		_, err := ParseDat(strings.NewReader(c.data))
		var perr *ParseError
		require.ErrorAs(tst, err, &perr, c.data)
		chk.Int(tst, "line", perr.Line, c.line)
	}

	// missing file
	_, err := ReadDat("testdata/doesnotexist.dat")
	var ferr *FileError
	require.ErrorAs(tst, err, &ferr)
	chk.String(tst, ferr.Path, "testdata/doesnotexist.dat")
}

func Test_config01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config01. run configuration")

	// defaults
	cfg, err := ReadConfig("")
	require.NoError(tst, err)
	chk.String(tst, cfg.Solver, "ldlt")
	chk.String(tst, cfg.LogLevel, "info")
	chk.Float64(tst, "pivtol", 1e-320, cfg.PivTol, 0x1p-1022)
	if cfg.Echo || cfg.WriteSmat {
		tst.Errorf("echo and writesmat must be false by default\n")
		return
	}

	// from file
	cfg, err = ReadConfig("testdata/series.ini")
	require.NoError(tst, err)
	chk.String(tst, cfg.DirOut, "/tmp/gostap")
	chk.String(tst, cfg.LogLevel, "debug")
	chk.String(tst, cfg.LogFile, "")
	chk.Float64(tst, "pivtol", 1e-25, cfg.PivTol, 1e-12)
	if !cfg.Echo || !cfg.WriteSmat || !cfg.Plot {
		tst.Errorf("echo, writesmat and plot must be true\n")
		return
	}
	chk.String(tst, cfg.PlotPlane, "xz")
	chk.String(tst, cfg.PlotExt, ".svg")
	chk.Float64(tst, "plot scale", 1e-15, cfg.PlotScale, 50)

	// missing file
	_, err = ReadConfig("testdata/doesnotexist.ini")
	var ferr *FileError
	require.ErrorAs(tst, err, &ferr)

	// invalid values
	cfg.PlotPlane = "zx"
	require.Error(tst, cfg.PostProcess())
	cfg.PlotPlane = "xy"
	cfg.PlotExt = ".gif"
	require.Error(tst, cfg.PostProcess())
	cfg.PlotExt = ".png"
	cfg.PlotScale = -1
	require.Error(tst, cfg.PostProcess())
	cfg.PlotScale = 0
	require.NoError(tst, cfg.PostProcess())
	cfg.PivTol = -1
	require.Error(tst, cfg.PostProcess())
}
