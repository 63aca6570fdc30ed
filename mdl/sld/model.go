// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sld implements linear elastic models for structural members
package sld

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for solid models
type Model interface {
	Init(prms dbf.Params) error // initialises model
	GetPrms() dbf.Params        // gets (an example) of parameters
}

// OneD specialises Model to 1D members
type OneD interface {
	Model
	Stiffness() float64       // axial rigidity E・A
	Stress(ε float64) float64 // axial stress for given strain
	Force(σ float64) float64  // axial force for given stress
}

// New returns a new model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'sld' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
