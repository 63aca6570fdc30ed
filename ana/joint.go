// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Joint solves a statically determinate space truss made of one free joint
// connected by three bars to fixed supports
//
//   equilibrium:    Σ N_i・d_i + P = 0
//   compatibility:  δ_i = -d_i・u = N_i・L_i / (E・A)_i
//
//   where d_i is the unit vector pointing from the joint to support i
//
type Joint struct {

	// input
	X    [3]float64    // coordinates of joint
	Sups [3][3]float64 // coordinates of supports
	EA   [3]float64    // axial rigidity of bars

	// derived
	L [3]float64 // lengths of bars
	N [3]float64 // axial forces (tension is positive)
	U [3]float64 // displacement of joint
}

// Solve computes the axial forces and the displacement of the joint due to load P
func (o *Joint) Solve(P [3]float64) (err error) {

	// unit vectors
	D := mat.NewDense(3, 3, nil)
	for i, s := range o.Sups {
		var l2 float64
		for k := 0; k < 3; k++ {
			l2 += (s[k] - o.X[k]) * (s[k] - o.X[k])
		}
		o.L[i] = math.Sqrt(l2)
		if o.L[i] == 0 || o.EA[i] <= 0 {
			return chk.Err("bar %d is invalid: L=%g, EA=%g", i, o.L[i], o.EA[i])
		}
		for k := 0; k < 3; k++ {
			D.Set(k, i, (s[k]-o.X[k])/o.L[i])
		}
	}

	// axial forces
	var n mat.VecDense
	err = n.SolveVec(D, mat.NewVecDense(3, []float64{-P[0], -P[1], -P[2]}))
	if err != nil {
		return chk.Err("bars are coplanar or collinear; joint is a mechanism:\n%v", err)
	}

	// displacement
	δ := make([]float64, 3)
	for i := 0; i < 3; i++ {
		o.N[i] = n.AtVec(i)
		δ[i] = -o.N[i] * o.L[i] / o.EA[i]
	}
	var u mat.VecDense
	err = u.SolveVec(D.T(), mat.NewVecDense(3, δ))
	if err != nil {
		return chk.Err("cannot compute displacement:\n%v", err)
	}
	for k := 0; k < 3; k++ {
		o.U[k] = u.AtVec(k)
	}
	return
}
