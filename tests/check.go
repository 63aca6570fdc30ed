// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements structures and functions to compare complete analyses with reference results
package tests

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gostap/fem"
)

// Results holds reference results of one load case
type Results struct {
	Note     string        // description
	Disp     [][]float64   // [nnod][3] displacements at nodes
	Stresses [][][]float64 // [ngroup][nelem][nkeys] element results; e.g. bars: [force, stress]
}

// ResultsSet holds reference results of all load cases
type ResultsSet []*Results

// CompareResults runs an analysis and compares its results with the ones in a .cmp (json) file
//  Input:
//   datfile -- STAP90 input file
//   cfgfile -- configuration file; may be empty
//   cmpfile -- reference results; one entry per load case
//   tolu    -- tolerance for displacements
//   tols    -- tolerance for element results
func CompareResults(tst *testing.T, datfile, cfgfile, cmpfile string, tolu, tols float64, verbose bool) {

	// run analysis
	analysis, err := fem.NewMain(datfile, cfgfile, verbose)
	if err != nil {
		tst.Errorf("CompareResults: cannot allocate analysis:\n%v", err)
		return
	}
	defer analysis.Close()
	err = analysis.Run()
	if err != nil {
		tst.Errorf("CompareResults: analysis failed:\n%v", err)
		return
	}

	// read file with comparison results
	buf, err := os.ReadFile(cmpfile)
	if err != nil {
		tst.Errorf("CompareResults: ReadFile failed:%v\n", err)
		return
	}

	// unmarshal json
	var cmpSet ResultsSet
	err = json.Unmarshal(buf, &cmpSet)
	if err != nil {
		tst.Errorf("CompareResults: Unmarshal failed:\n%v", err)
		return
	}
	dom := analysis.Dom
	if len(cmpSet) != len(dom.Disp) {
		tst.Errorf("CompareResults: number of load cases is incorrect. %d != %d\n", len(cmpSet), len(dom.Disp))
		return
	}

	// run comparisons
	for idx, cmp := range cmpSet {
		lc := idx + 1
		if verbose {
			io.PfYel("\n\nload case = %d (%s) . . . . . . . . . . . . . . . . . . . . . . . .\n", lc, cmp.Note)
		}

		// check displacements
		if verbose {
			io.Pfgreen(". . . checking displacements . . .\n")
		}
		if len(cmp.Disp) != len(dom.Nodes) {
			tst.Errorf("CompareResults: number of nodes is incorrect. %d != %d\n", len(cmp.Disp), len(dom.Nodes))
			return
		}
		for i, usg := range cmp.Disp {
			u := dom.NodeDisp(i+1, lc)
			chk.Array(tst, io.Sf("u @ node %d", i+1), tolu, u[:], usg)
		}

		// check element results
		if verbose {
			io.Pfgreen(". . . checking element results . . .\n")
		}
		res := dom.Res[idx]
		if len(cmp.Stresses) != len(res) {
			tst.Errorf("CompareResults: number of groups is incorrect. %d != %d\n", len(cmp.Stresses), len(res))
			return
		}
		for g, vals := range cmp.Stresses {
			if len(vals) != len(res[g]) {
				tst.Errorf("CompareResults: number of elements in group %d is incorrect. %d != %d\n", g+1, len(vals), len(res[g]))
				return
			}
			keys := dom.Groups[g].Elems[0].OutKeys()
			for e, val := range vals {
				for k, key := range keys {
					chk.Float64(tst, io.Sf("%s @ group %d, element %d", key, g+1, e+1), tols, res[g][e][k], val[k])
				}
			}
		}
	}
}
