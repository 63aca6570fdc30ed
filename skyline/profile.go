// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package skyline implements the variable-bandwidth (skyline) storage of symmetric matrices
// and an in-core LDLᵀ solver working over this storage
package skyline

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// MinNormal is the smallest positive normal float64 number. Pivots with magnitude at or
// below this value are considered zero
const MinNormal = 0x1p-1022

// Profile holds the column heights and the addresses of diagonal elements of a skyline matrix.
//
//  All indices are 1-based (equation numbers). Column j stores the rows
//  mj = j - Heights[j-1] ... j of the upper triangle; i.e. from its envelope top down to the diagonal.
//
//      Daddr[0] = 1
//      Daddr[c] = Daddr[c-1] + Heights[c-1] + 1    c = 1...neq
//
type Profile struct {
	Neq     int   // number of equations == dimension of matrix
	Mk      int   // maximum half bandwidth == max(Heights) + 1. for information only
	Heights []int // [neq] column heights; number of stored entries above the diagonal
	Daddr   []int // [neq+1] addresses of diagonal elements (1-based); Daddr[neq] is one past the end
	final   bool  // addresses have been computed => profile is immutable
}

// NewProfile returns a new profile with all heights set to zero
func NewProfile(neq int) (o *Profile) {
	if neq < 0 {
		chk.Panic("number of equations must be non-negative. neq = %d is invalid", neq)
	}
	o = new(Profile)
	o.Neq = neq
	o.Heights = make([]int, neq)
	o.Daddr = make([]int, neq+1)
	return
}

// AddElement updates the column heights with the contribution of one element
//  lmap -- location map: global equation number (1-based) of each local DOF; 0 means constrained
//  Note: all elements must be added before CalcDiagAddresses is called
func (o *Profile) AddElement(lmap []int) {
	if o.final {
		chk.Panic("cannot change column heights after diagonal addresses have been computed")
	}

	// row number of the first non-zero entry; i.e. the lowest active equation touched
	first := 0
	for _, eq := range lmap {
		if eq < 0 || eq > o.Neq {
			chk.Panic("equation number %d is out of range [0, %d]", eq, o.Neq)
		}
		if eq > 0 && (first == 0 || eq < first) {
			first = eq
		}
	}
	if first == 0 {
		return // fully constrained element
	}

	// heights contributed by this element
	for _, col := range lmap {
		if col == 0 {
			continue
		}
		if h := col - first; h > o.Heights[col-1] {
			o.Heights[col-1] = h
		}
	}
}

// CalcMaxHalfBandwidth computes Mk = max(Heights) + 1
func (o *Profile) CalcMaxHalfBandwidth() {
	o.Mk = 0
	for _, h := range o.Heights {
		o.Mk = utl.Imax(o.Mk, h+1)
	}
}

// CalcDiagAddresses computes the addresses of diagonal elements. After this call the profile
// cannot be modified anymore
func (o *Profile) CalcDiagAddresses() {
	o.Daddr[0] = 1
	for col := 1; col <= o.Neq; col++ {
		o.Daddr[col] = o.Daddr[col-1] + o.Heights[col-1] + 1
	}
	o.final = true
}

// Final tells whether the diagonal addresses have been computed already
func (o *Profile) Final() bool { return o.final }

// Size returns the number of stored entries (NWK)
func (o *Profile) Size() int {
	if !o.final {
		return 0
	}
	return o.Daddr[o.Neq] - o.Daddr[0]
}

// Top returns the row of the first stored entry in column j; i.e. mj = j - Heights[j-1]
func (o *Profile) Top(j int) int {
	return j - o.Heights[j-1]
}

// MeanHalfBandwidth returns NWK / NEQ
func (o *Profile) MeanHalfBandwidth() float64 {
	if o.Neq == 0 {
		return 0
	}
	return float64(o.Size()) / float64(o.Neq)
}
