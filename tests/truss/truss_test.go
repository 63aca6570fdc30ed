// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gostap/ana"
	"github.com/cpmech/gostap/fem"
	"github.com/cpmech/gostap/inp"
	"github.com/cpmech/gostap/skyline"
	"github.com/cpmech/gostap/tests"
	"github.com/stretchr/testify/require"
)

func Test_series01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("series01. two bars in series")

	tests.CompareResults(tst, "data/series.dat", "data/quiet.ini", "cmp/series.cmp", 1e-14, 1e-12, chk.Verbose)
}

func Test_vtruss01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("vtruss01. two-bar plane truss")

	tests.CompareResults(tst, "data/vtruss.dat", "data/quiet.ini", "cmp/vtruss.cmp", 1e-12, 1e-10, chk.Verbose)
}

func Test_chain01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("chain01. steel bars with different sections in series")

	// sections and material
	steel, err := ana.NewMaterial("steel", "kPa")
	require.NoError(tst, err)
	var sections []*ana.CrossSection
	for _, r := range []float64{0.02, 0.015, 0.01} {
		cs, err := ana.NewCrossSection("circle", 0, 0, 0, 0, r)
		require.NoError(tst, err)
		sections = append(sections, cs)
	}
	ibeam, err := ana.NewCrossSection("I-beam", 0.1, 0.2, 0.01, 0.008, 0)
	require.NoError(tst, err)
	sections = append(sections, ibeam)

	// model: one group per section; bars along x with lengths 1, 2, 3, 4
	nb := len(sections)
	model := &inp.Model{Title: "chain", Numnp: nb + 1, Numeg: nb, Nlcase: 1, Modex: inp.ModeExecution}
	x := 0.0
	L := make([]float64, nb)
	EA := make([]float64, nb)
	P := make([]float64, nb)
	for i := 0; i <= nb; i++ {
		nod := &inp.Node{Id: i + 1, Bcode: [3]int{0, 1, 1}, X: [3]float64{x, 0, 0}}
		if i == 0 {
			nod.Bcode[0] = 1
		}
		model.Nodes = append(model.Nodes, nod)
		if i < nb {
			L[i] = float64(i + 1)
			x += L[i]
		}
	}
	loads := []*inp.Load{{Node: 3, Dof: 1, Val: 50}, {Node: nb + 1, Dof: 1, Val: -20}}
	P[1], P[nb-1] = 50, -20
	model.LoadCases = []*inp.LoadCase{{Id: 1, Loads: loads}}
	for i, cs := range sections {
		prms := steel.BarPrms(cs)
		EA[i] = prms[0].V * prms[1].V
		model.Groups = append(model.Groups, &inp.GroupData{
			Type:   1,
			Nume:   1,
			Nummat: 1,
			Mats:   []*inp.MatData{{Set: 1, Vals: []float64{prms[0].V, prms[1].V}}},
			Elems:  []*inp.ElemData{{Id: 1, Verts: []int{i + 1, i + 2}, Mat: 1}},
		})
	}

	// numerical solution
	dom, err := fem.NewDomain(model)
	require.NoError(tst, err)
	nids, eqs := tests.GetNidsEqs(dom)
	chk.Ints(tst, "nids", nids, []int{1, 2, 3, 4, 5})
	chk.Ints(tst, "eqs", eqs, []int{0, 0, 0, 1, 0, 0, 2, 0, 0, 3, 0, 0, 4, 0, 0})
	dom.AllocMatrices()
	require.NoError(tst, dom.AssembleK())
	require.NoError(tst, dom.AssembleF(1))
	ls, err := fem.GetSolver("ldlt", skyline.MinNormal)
	require.NoError(tst, err)
	require.NoError(tst, ls.Init(dom.Kb))
	require.NoError(tst, ls.Fact())
	require.NoError(tst, ls.Solve(dom.Fb))
	res := dom.CalcResults(dom.Fb)

	// closed-form solution
	chain := ana.BarChain{L: L, EA: EA}
	u, N, err := chain.Solve(P)
	require.NoError(tst, err)
	if chk.Verbose {
		io.Pforan("u = %v\n", u)
		io.Pforan("N = %v\n", N)
	}
	chk.Array(tst, "u", 1e-15, dom.Fb, u[1:])
	for i := 0; i < nb; i++ {
		chk.Float64(tst, io.Sf("N%d", i+1), 1e-9, res[i][0][0], N[i])
		chk.Float64(tst, io.Sf("σ%d", i+1), 1e-4, res[i][0][1], N[i]/sections[i].A)
	}
}
