// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skyline

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Matrix implements a symmetric matrix stored in skyline format. Only the upper triangle is
// stored, column by column, from the diagonal up to the top of the column envelope; all columns
// are packed into a single buffer addressed through the Profile.
//
//  After Factorize, the same buffer holds the L factors (off-diagonal) and D (diagonal)
type Matrix struct {
	Profile           // column heights and diagonal addresses
	PivTol  float64   // pivots with |d| ≤ PivTol make the factorisation fail
	data    []float64 // [nwk] stored entries. nil until Alloc is called
	fact    bool      // data holds the factors
}

// NewMatrix returns a new skyline matrix with neq equations. The column heights must be set via
// AddElement and the addresses computed via CalcDiagAddresses before calling Alloc
func NewMatrix(neq int) (o *Matrix) {
	o = new(Matrix)
	o.Profile = *NewProfile(neq)
	o.PivTol = MinNormal
	return
}

// Alloc allocates (and zeroes) the buffer. It can only be called once and after the diagonal
// addresses have been computed
func (o *Matrix) Alloc() {
	if !o.final {
		chk.Panic("diagonal addresses must be computed before allocating skyline matrix")
	}
	if o.data != nil {
		chk.Panic("skyline matrix has been allocated already")
	}
	o.data = make([]float64, o.Size())
}

// checkAlloc panics if the buffer has not been allocated
func (o *Matrix) checkAlloc() {
	if o.data == nil {
		chk.Panic("skyline matrix must be allocated before accessing its entries")
	}
}

// Allocated tells whether the storage exists
func (o *Matrix) Allocated() bool { return o.data != nil }

// Factorized tells whether the buffer holds the LDLᵀ factors
func (o *Matrix) Factorized() bool { return o.fact }

// Dim returns the dimension of the matrix (NEQ)
func (o *Matrix) Dim() int { return o.Neq }

// MaxHalfBandwidth returns MK (diagnostic)
func (o *Matrix) MaxHalfBandwidth() int { return o.Mk }

// Data returns the underlying buffer
func (o *Matrix) Data() []float64 { return o.data }

// Index returns the 0-based position of K(i,j) in the buffer. i and j are 1-based.
// ok is false if (i,j) falls outside the stored envelope; i.e. K(i,j) is structurally zero
func (o *Matrix) Index(i, j int) (idx int, ok bool) {
	if i < 1 || j < 1 || i > o.Neq || j > o.Neq {
		chk.Panic("indices (%d,%d) are out of range [1, %d]", i, j, o.Neq)
	}
	r, c := i, j
	if r > c {
		r, c = c, r
	}
	if c-r > o.Heights[c-1] {
		return -1, false
	}
	return o.Daddr[c-1] + (c - r) - 1, true
}

// Get returns K(i,j) == K(j,i). Entries outside the envelope are zero
func (o *Matrix) Get(i, j int) float64 {
	o.checkAlloc()
	if idx, ok := o.Index(i, j); ok {
		return o.data[idx]
	}
	return 0
}

// Set sets K(i,j) == K(j,i)
func (o *Matrix) Set(i, j int, value float64) {
	o.checkAlloc()
	idx, ok := o.Index(i, j)
	if !ok {
		if value == 0 {
			return
		}
		chk.Panic("cannot set K(%d,%d) because it is outside the skyline envelope", i, j)
	}
	o.data[idx] = value
}

// Add adds value to K(i,j) == K(j,i)
func (o *Matrix) Add(i, j int, value float64) {
	o.checkAlloc()
	idx, ok := o.Index(i, j)
	if !ok {
		if value == 0 {
			return
		}
		chk.Panic("cannot add to K(%d,%d) because it is outside the skyline envelope", i, j)
	}
	o.data[idx] += value
}

// ToDense returns a dense copy of the stored matrix. Note that, after factorisation, the copy
// holds the factors instead of K
func (o *Matrix) ToDense() *mat.SymDense {
	if o.Neq == 0 {
		return &mat.SymDense{}
	}
	K := mat.NewSymDense(o.Neq, nil)
	if o.data == nil {
		return K
	}
	for j := 1; j <= o.Neq; j++ {
		for r := o.Top(j); r <= j; r++ {
			K.SetSym(r-1, j-1, o.data[o.Daddr[j-1]+(j-r)-1])
		}
	}
	return K
}
