// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skyline

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func Test_matrix01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("matrix01. index and symmetric access")

	K := newTestMatrix()

	// positions in buffer
	for _, c := range []struct{ i, j, idx int }{
		{1, 1, 0}, {2, 2, 1}, {1, 2, 2}, {3, 3, 3}, {2, 3, 4},
		{4, 4, 5}, {3, 4, 6}, {2, 4, 7}, {1, 4, 8},
	} {
		idx, ok := K.Index(c.i, c.j)
		if !ok {
			tst.Errorf("K(%d,%d) should be inside the envelope\n", c.i, c.j)
			return
		}
		chk.Int(tst, io.Sf("Index(%d,%d)", c.i, c.j), idx, c.idx)
	}

	// symmetry of Index
	for j := 1; j <= K.Neq; j++ {
		for i := 1; i <= K.Neq; i++ {
			a, oka := K.Index(i, j)
			b, okb := K.Index(j, i)
			if a != b || oka != okb {
				tst.Errorf("Index(%d,%d) != Index(%d,%d)\n", i, j, j, i)
				return
			}
		}
	}

	// outside envelope
	if _, ok := K.Index(1, 3); ok {
		tst.Errorf("K(1,3) should be outside the envelope\n")
		return
	}
	chk.Float64(tst, "K(3,1)", 1e-17, K.Get(3, 1), 0)

	// symmetric get/set/add
	K.Set(4, 2, 7.5)
	chk.Float64(tst, "K(2,4)", 1e-17, K.Get(2, 4), 7.5)
	K.Add(2, 4, 0.5)
	chk.Float64(tst, "K(4,2)", 1e-17, K.Get(4, 2), 8.0)
	K.Set(1, 3, 0) // zero outside envelope is fine
}

func Test_matrix02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("matrix02. assembly of packed element matrices")

	// two 2-DOF "springs": k=[[a,-a],[-a,a]] packed as {a, a, -a}
	K := NewMatrix(3)
	K.AddElement([]int{1, 2})
	K.AddElement([]int{3, 2})
	K.CalcDiagAddresses()
	K.Alloc()
	require.NoError(tst, K.Assemble([]float64{2, 2, -2}, []int{1, 2}))
	require.NoError(tst, K.Assemble([]float64{3, 3, -3}, []int{3, 2}))
	require.NoError(tst, K.Assemble([]float64{1, 1, -1}, []int{0, 3})) // constrained DOF skipped

	D := K.ToDense()
	correct := mat.NewSymDense(3, []float64{
		+2, -2, +0,
		-2, +5, -3,
		+0, -3, +4,
	})
	if !mat.EqualApprox(D, correct, 1e-15) {
		tst.Errorf("assembled matrix is incorrect:\n%v\n", mat.Formatted(D))
		return
	}

	// packed indices
	chk.Int(tst, "PackedIndex(0,0)", PackedIndex(0, 0), 0)
	chk.Int(tst, "PackedIndex(1,1)", PackedIndex(1, 1), 1)
	chk.Int(tst, "PackedIndex(0,1)", PackedIndex(0, 1), 2)
	chk.Int(tst, "PackedIndex(0,5)", PackedIndex(0, 5), 20)
	chk.Int(tst, "PackedSize(6)", PackedSize(6), 21)

	// wrong size
	err := K.Assemble([]float64{1, 2}, []int{1, 2})
	require.Error(tst, err)
}

func Test_matrix03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("matrix03. allocation rules")

	K := NewMatrix(2)
	require.Panics(tst, func() { K.Alloc() }, "alloc before addresses")
	require.Panics(tst, func() { K.Get(1, 1) }, "get before alloc")
	require.Panics(tst, func() { K.Set(1, 1, 1) }, "set before alloc")
	require.Panics(tst, func() { K.Add(1, 1, 1) }, "add before alloc")
	require.Error(tst, K.Assemble([]float64{1}, []int{1}), "assembly before alloc")
	require.Error(tst, K.Factorize(), "factorisation before alloc")
	K.AddElement([]int{1, 2})
	K.CalcDiagAddresses()
	K.Alloc()
	require.Panics(tst, func() { K.Alloc() }, "second alloc")
	require.Panics(tst, func() { K.Get(0, 1) }, "index out of range")
	require.Panics(tst, func() { K.Get(1, 3) }, "index out of range")
}
