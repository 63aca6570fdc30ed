// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gostap/skyline"
)

// LinSol defines linear solvers for the global stiffness system
type LinSol interface {
	Init(K *skyline.Matrix) error // initialises solver with an assembled matrix
	Fact() error                  // factorises matrix
	Solve(fx []float64) error     // solves K・x = f; fx holds f on input and x on output
}

// GetSolver returns a new linear solver
func GetSolver(name string, pivtol float64) (ls LinSol, err error) {
	alloc, ok := lsAllocators[name]
	if !ok {
		return nil, chk.Err("cannot find linear solver named %q", name)
	}
	return alloc(pivtol), nil
}

// lsAllocators holds all available linear solvers
var lsAllocators = make(map[string]func(pivtol float64) LinSol)

// LinSolLDLT solves symmetric systems in skyline storage by in-place LDLᵀ factorisation
type LinSolLDLT struct {
	K      *skyline.Matrix // matrix: overwritten by its factors
	PivTol float64         // tolerance on the magnitude of pivots
}

// add solver to factory
func init() {
	lsAllocators["ldlt"] = func(pivtol float64) LinSol { return &LinSolLDLT{PivTol: pivtol} }
}

// Init initialises solver
func (o *LinSolLDLT) Init(K *skyline.Matrix) (err error) {
	if K == nil || !K.Allocated() {
		return chk.Err("ldlt: matrix must be allocated before initialisation")
	}
	o.K = K
	o.K.PivTol = o.PivTol
	return
}

// Fact factorises K = Lᵀ・D・L
func (o *LinSolLDLT) Fact() (err error) {
	if o.K == nil {
		return chk.Err("ldlt: solver must be initialised before factorisation")
	}
	return o.K.Factorize()
}

// Solve reduces and back-substitutes fx
func (o *LinSolLDLT) Solve(fx []float64) (err error) {
	if o.K == nil {
		return chk.Err("ldlt: solver must be initialised before solution")
	}
	return o.K.BackSubstitute(fx)
}
