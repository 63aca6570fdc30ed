// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements finite elements
package ele

import "github.com/cpmech/gosl/fun/dbf"

// Element defines what all elements must implement
type Element interface {

	// information and initialisation
	Id() int            // returns the element number (1-based) within its group
	Nodes() []*Node     // returns the element's nodes
	MatSet() int        // returns the material set number (1-based)
	SetEqs()            // builds the location map from the equation numbers of the nodes
	LocationMap() []int // global equation number of each local DOF; 0 => constrained

	// stiffness
	Nd() int           // number of local DOFs
	SizeK() int        // length of the packed upper triangle of K; i.e. Nd*(Nd+1)/2
	CalcK(k []float64) // computes the stiffness matrix packed column by column starting from the diagonal

	// output
	OutKeys() []string                // keys of element results; e.g. "force", "stress"
	OutVals(disp []float64) []float64 // element results corresponding to OutKeys for global displacements
}

// Material defines material/section property sets of element groups
type Material interface {
	Set() int         // set number (1-based)
	Prms() dbf.Params // parameters
}
