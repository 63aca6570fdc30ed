// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gostap/ana"
	"github.com/cpmech/gostap/inp"
	"github.com/cpmech/gostap/skyline"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// newTestMain runs an analysis with messages and logging turned off
func newTestMain(tst *testing.T, datfile string) *Main {
	analysis, err := NewMain("testdata/"+datfile, "testdata/quiet.ini", chk.Verbose)
	require.NoError(tst, err)
	tst.Cleanup(analysis.Close)
	return analysis
}

func Test_domain01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("domain01. tripod: K・u = f and equilibrium at apex")

	m, err := inp.ReadDat("testdata/tripod.dat")
	require.NoError(tst, err)
	dom, err := NewDomain(m)
	require.NoError(tst, err)
	chk.Int(tst, "neq", dom.Neq, 3)
	chk.Ints(tst, "eqs @ apex", dom.Nodes[3].Eqs[:], []int{1, 2, 3})

	dom.AllocMatrices()
	require.NoError(tst, dom.AssembleK())
	chk.Ints(tst, "heights", dom.Kb.Heights, []int{0, 1, 2})
	A := dom.Kb.ToDense()

	ls, err := GetSolver("ldlt", skyline.MinNormal)
	require.NoError(tst, err)
	require.NoError(tst, ls.Init(dom.Kb))
	require.NoError(tst, ls.Fact())

	require.NoError(tst, dom.AssembleF(1))
	f := append([]float64{}, dom.Fb...)
	chk.Array(tst, "f", 1e-17, f, []float64{10, 0, -50})
	require.NoError(tst, ls.Solve(dom.Fb))
	u := dom.Fb
	if chk.Verbose {
		io.Pforan("u = %v\n", u)
	}

	// residual
	var r mat.VecDense
	r.MulVec(A, mat.NewVecDense(3, u))
	chk.Array(tst, "K・u", 1e-10, r.RawVector().Data, f)

	// sum of bar forces acting on the apex balances the load
	res := dom.CalcResults(u)
	sum := []float64{10, 0, -50}
	for e, elem := range dom.Groups[0].Elems {
		nodes := elem.Nodes()
		var dx [3]float64
		var L float64
		for i := 0; i < 3; i++ {
			dx[i] = nodes[0].X[i] - nodes[1].X[i]
			L += dx[i] * dx[i]
		}
		L = math.Sqrt(L)
		for i := 0; i < 3; i++ {
			sum[i] += res[0][e][0] * dx[i] / L
		}
	}
	chk.Array(tst, "equilibrium", 1e-10, sum, []float64{0, 0, 0})

	// closed-form solution
	joint := ana.Joint{
		X:    [3]float64{0, 0, 4},
		Sups: [3][3]float64{{3, 0, 0}, {0, 3, 0}, {-3, -3, 0}},
		EA:   [3]float64{10, 10, 10},
	}
	require.NoError(tst, joint.Solve([3]float64{10, 0, -50}))
	chk.Array(tst, "u", 1e-10, u, joint.U[:])
	for e := 0; e < 3; e++ {
		chk.Float64(tst, io.Sf("N%d", e+1), 1e-10, res[0][e][0], joint.N[e])
	}
}

func Test_domain02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("domain02. loads")

	// load on a node that does not exist is caught before any solution
	m, err := inp.ReadDat("testdata/badload.dat")
	require.NoError(tst, err)
	_, err = NewDomain(m)
	require.Error(tst, err)

	// invalid direction
	m.LoadCases = m.LoadCases[:1]
	m.Nlcase = 1
	m.LoadCases[0].Loads[0].Dof = 4
	_, err = NewDomain(m)
	require.Error(tst, err)
	m.LoadCases[0].Loads[0].Dof = 1

	// valid loads
	dom, err := NewDomain(m)
	require.NoError(tst, err)
	dom.AllocMatrices()

	// load on constrained DOF is ignored
	require.NoError(tst, dom.AssembleF(1))
	chk.Array(tst, "Fb", 1e-17, dom.Fb, []float64{100})

	// unknown load case
	require.Error(tst, dom.AssembleF(2))

	// loads changed after allocation are checked again
	m.LoadCases[0].Loads[0].Node = 9
	require.Error(tst, dom.AssembleF(1))

	// unknown solver
	_, err = GetSolver("cholesky", 0)
	require.Error(tst, err)
}

func Test_main01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("main01. single bar: u = F・L / (E・A)")

	analysis := newTestMain(tst, "single.dat")
	require.NoError(tst, analysis.Run())
	if !analysis.Solved {
		tst.Errorf("analysis should be solved\n")
		return
	}
	chk.Int(tst, "neq", analysis.Dom.Neq, 1)
	chk.Int(tst, "nwk", analysis.Dom.Kb.Size(), 1)
	chk.Int(tst, "mk", analysis.Dom.Kb.MaxHalfBandwidth(), 1)
	chk.Float64(tst, "u", 1e-17, analysis.Dom.Disp[0][0], 100*2/(2e6*0.5))
	u := analysis.Dom.NodeDisp(2, 1)
	chk.Array(tst, "u @ node 2", 1e-17, u[:], []float64{2e-4, 0, 0})
	chk.Array(tst, "force and stress", 1e-10, analysis.Dom.Res[0][0][0], []float64{100, 200})

	// stiffness matrix file
	_, err := os.Stat("/tmp/gostap/fem/single_K.txt")
	require.NoError(tst, err)
}

func Test_main02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("main02. two bars in series; two groups and two load cases")

	analysis := newTestMain(tst, "series.dat")
	require.NoError(tst, analysis.Run())
	chk.Int(tst, "neq", analysis.Dom.Neq, 2)
	chk.Ints(tst, "heights", analysis.Dom.Kb.Heights, []int{0, 1})
	chk.Int(tst, "nwk", analysis.Dom.Kb.Size(), 3)
	chk.Int(tst, "mk", analysis.Dom.Kb.MaxHalfBandwidth(), 2)

	// load case 1: P = 10 @ node 3
	chk.Array(tst, "u (lc 1)", 1e-14, analysis.Dom.Disp[0], []float64{0.1, 0.2})
	chk.Array(tst, "bar 1 (lc 1)", 1e-12, analysis.Dom.Res[0][0][0], []float64{10, 10})
	chk.Array(tst, "bar 2 (lc 1)", 1e-12, analysis.Dom.Res[0][1][0], []float64{10, 5})

	// load case 2: P = -20 @ node 2
	chk.Array(tst, "u (lc 2)", 1e-14, analysis.Dom.Disp[1], []float64{-0.2, -0.2})
	chk.Array(tst, "bar 1 (lc 2)", 1e-12, analysis.Dom.Res[1][0][0], []float64{-20, -20})
	chk.Array(tst, "bar 2 (lc 2)", 1e-12, analysis.Dom.Res[1][1][0], []float64{0, 0})

	// solving again gives identical results
	for k := 0; k < 2; k++ {
		require.NoError(tst, analysis.Dom.AssembleF(1))
		require.NoError(tst, analysis.LinSol.Solve(analysis.Dom.Fb))
		chk.Array(tst, io.Sf("u (lc 1, again %d)", k), 1e-17, analysis.Dom.Fb, analysis.Dom.Disp[0])
	}
	if analysis.Times.Total() < analysis.Times.Solution {
		tst.Errorf("total time is incorrect\n")
	}
}

func Test_main03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("main03. rigid body mode and data check")

	// bar free to slide
	analysis := newTestMain(tst, "rigid.dat")
	err := analysis.Run()
	var perr *skyline.PivotError
	require.ErrorAs(tst, err, &perr)
	chk.Int(tst, "equation", perr.Eq, 2)
	if analysis.Solved {
		tst.Errorf("analysis must not be solved\n")
		return
	}

	// data check only
	analysis = newTestMain(tst, "check.dat")
	require.NoError(tst, analysis.Run())
	chk.Int(tst, "nwk", analysis.Dom.Kb.Size(), 3)
	if analysis.Solved || analysis.Dom.Kb.Allocated() {
		tst.Errorf("data check must not allocate or solve\n")
		return
	}

	// data check with a load on a node that does not exist
	_, err = NewMain("testdata/checkload.dat", "testdata/quiet.ini", false)
	require.Error(tst, err)

	// missing file
	_, err = NewMain("testdata/doesnotexist.dat", "", false)
	var ferr *inp.FileError
	require.ErrorAs(tst, err, &ferr)
}

func Test_main04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("main04. stiffness matrix cannot be written")

	analysis := newTestMain(tst, "single.dat")
	analysis.Cfg.DirOut = "/dev/null/gostap"
	err := analysis.Run()
	var ferr *inp.FileError
	require.ErrorAs(tst, err, &ferr)
	chk.String(tst, ferr.Path, "/dev/null/gostap/single_K.txt")
	if !ferr.Write || analysis.Solved {
		tst.Errorf("write failure must stop the analysis\n")
		return
	}
}
