// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skyline

import "github.com/cpmech/gosl/chk"

// PackedSize returns the length of the packed upper triangle of a nd×nd matrix
func PackedSize(nd int) int {
	return nd * (nd + 1) / 2
}

// PackedIndex returns the position of entry (i,j), i ≤ j, in a matrix packed column by column
// starting from the diagonal. i and j are 0-based
//
//  column j:  k[j(j+1)/2] = K(j,j),  k[j(j+1)/2 + 1] = K(j-1,j), ...,  k[j(j+1)/2 + j] = K(0,j)
//
func PackedIndex(i, j int) int {
	return j*(j+1)/2 + (j - i)
}

// Assemble adds the (packed) element matrix k into the global matrix
//  k    -- upper triangle of element matrix, packed column by column starting from the diagonal
//  lmap -- location map: equation numbers (1-based) of local DOFs; 0 means constrained => skipped
func (o *Matrix) Assemble(k []float64, lmap []int) (err error) {
	if o.data == nil {
		return chk.Err("skyline matrix must be allocated before assembly")
	}
	if o.fact {
		return chk.Err("cannot assemble into a factorised matrix")
	}
	nd := len(lmap)
	if len(k) != PackedSize(nd) {
		return chk.Err("size of packed element matrix is incorrect. %d != %d", len(k), PackedSize(nd))
	}
	for j := 0; j < nd; j++ {
		J := lmap[j]
		if J == 0 {
			continue
		}
		dj := j * (j + 1) / 2
		for i := 0; i <= j; i++ {
			I := lmap[i]
			if I == 0 {
				continue
			}
			o.Add(I, J, k[dj+j-i])
		}
	}
	return
}
