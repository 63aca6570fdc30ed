// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skyline

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// PivotError reports a vanishing pivot found during factorisation
type PivotError struct {
	Eq    int     // equation number (1-based)
	Pivot float64 // offending diagonal value
}

// Error implements the error interface
func (o *PivotError) Error() string {
	return io.Sf("stiffness matrix is not positive definite: equation no = %d, pivot = %g", o.Eq, o.Pivot)
}

// Factorize performs the LDLᵀ factorisation (column reduction scheme) in place.
//
//  For j = 2...neq, with mj = j - Heights[j-1]:
//
//     U(i,j) = K(i,j) - Σ L(r,i)・U(r,j)     r = max(mi,mj)...i-1     i = mj+1...j-1
//     L(r,j) = U(r,j) / D(r)                                          r = mj...j-1
//     D(j)   = K(j,j) - Σ L(r,j)・U(r,j)                               r = mj...j-1
//
//  Entries outside the envelopes are zero and never visited. The factorisation fails at the
//  first equation with |D(j)| ≤ PivTol; the buffer is left partially reduced in this case
func (o *Matrix) Factorize() (err error) {
	if o.data == nil {
		return chk.Err("skyline matrix must be allocated before factorisation")
	}
	if o.fact {
		return chk.Err("skyline matrix has been factorised already")
	}
	n := o.Neq
	if n == 0 {
		o.fact = true
		return
	}

	// first column has no reduction
	if math.Abs(o.data[0]) <= o.PivTol {
		return &PivotError{Eq: 1, Pivot: o.data[0]}
	}

	// K(r,j) is at data[dj + j - r] with dj = Daddr[j-1] - 1
	for j := 2; j <= n; j++ {
		dj := o.Daddr[j-1] - 1
		mj := j - o.Heights[j-1]

		// U(i,j) for rows strictly between the envelope top and the diagonal
		for i := mj + 1; i < j; i++ {
			di := o.Daddr[i-1] - 1
			mi := i - o.Heights[i-1]
			var c float64
			for r := utl.Imax(mi, mj); r < i; r++ {
				c += o.data[di+i-r] * o.data[dj+j-r]
			}
			o.data[dj+j-i] -= c
		}

		// L(r,j) and D(j)
		for r := mj; r < j; r++ {
			dr := o.Daddr[r-1] - 1
			lrj := o.data[dj+j-r] / o.data[dr]
			o.data[dj] -= lrj * o.data[dj+j-r]
			o.data[dj+j-r] = lrj
		}

		// check pivot
		if math.Abs(o.data[dj]) <= o.PivTol {
			return &PivotError{Eq: j, Pivot: o.data[dj]}
		}
	}
	o.fact = true
	return
}

// BackSubstitute solves K・x = f using the factors computed by Factorize. f is replaced by x.
// The factors are not modified; thus this function can be called for any number of f vectors
func (o *Matrix) BackSubstitute(f []float64) (err error) {
	if !o.fact {
		return chk.Err("skyline matrix must be factorised before back-substitution")
	}
	n := o.Neq
	if len(f) != n {
		return chk.Err("length of right-hand side vector is incorrect. %d != %d", len(f), n)
	}

	// reduce right-hand side: L・v = f
	for i := 2; i <= n; i++ {
		di := o.Daddr[i-1] - 1
		mi := i - o.Heights[i-1]
		for j := mi; j < i; j++ {
			f[i-1] -= o.data[di+i-j] * f[j-1]
		}
	}

	// scale: v̄ = D⁻¹・v
	for i := 1; i <= n; i++ {
		f[i-1] /= o.data[o.Daddr[i-1]-1]
	}

	// back substitute: Lᵀ・x = v̄
	for j := n; j >= 2; j-- {
		dj := o.Daddr[j-1] - 1
		mj := j - o.Heights[j-1]
		for i := mj; i < j; i++ {
			f[i-1] -= o.data[dj+j-i] * f[j-1]
		}
	}
	return
}
