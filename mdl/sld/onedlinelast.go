// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// OnedLinElast implements a linear elastic model for 1D elements
type OnedLinElast struct {
	E float64 // Young's modulus
	A float64 // cross-sectional area
}

// add model to factory
func init() {
	allocators["oned-elast"] = func() Model { return new(OnedLinElast) }
}

// Init initialises model
func (o *OnedLinElast) Init(prms dbf.Params) (err error) {
	var hasE, hasA bool
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E, hasE = p.V, true
		case "A":
			o.A, hasA = p.V, true
		default:
			return chk.Err("oned-elast: parameter named %q is invalid", p.N)
		}
	}
	if !hasE || !hasA {
		return chk.Err("oned-elast: both E and A must be given. E=%v A=%v", hasE, hasA)
	}
	if math.IsNaN(o.E) || math.IsNaN(o.A) {
		return chk.Err("oned-elast: E and A must be numbers. E=%g A=%g", o.E, o.A)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o OnedLinElast) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 2.0000e+08},
		&dbf.P{N: "A", V: 1.0000e-02},
	}
}

// Stiffness returns the axial rigidity
func (o OnedLinElast) Stiffness() float64 {
	return o.E * o.A
}

// Stress returns σ = E・ε
func (o OnedLinElast) Stress(ε float64) float64 {
	return o.E * ε
}

// Force returns N = σ・A
func (o OnedLinElast) Force(σ float64) float64 {
	return σ * o.A
}
