// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "github.com/cpmech/gosl/chk"

// BarChain solves bars connected in series along one axis with the first node fixed
//
//   fixed                                      free
//    |>o------[1]------o------[2]------o ... ---o--> P_n
//      0               1               2        n
//
type BarChain struct {
	L  []float64 // [nbars] lengths
	EA []float64 // [nbars] axial rigidity
}

// Solve computes the displacements of all nodes and the axial forces of all bars
//  P -- [nbars] loads applied at nodes 1..n
//  u -- [nbars+1] displacements; u[0] = 0
//  N -- [nbars] axial forces (tension is positive)
func (o *BarChain) Solve(P []float64) (u, N []float64, err error) {
	nb := len(o.L)
	if len(o.EA) != nb || len(P) != nb {
		return nil, nil, chk.Err("L, EA and P must have the same length. %d, %d, %d is invalid", nb, len(o.EA), len(P))
	}

	// the force in each bar equals the sum of loads beyond it
	N = make([]float64, nb)
	sum := 0.0
	for i := nb - 1; i >= 0; i-- {
		sum += P[i]
		N[i] = sum
	}

	// elongations accumulate from the support
	u = make([]float64, nb+1)
	for i := 0; i < nb; i++ {
		if o.EA[i] <= 0 {
			return nil, nil, chk.Err("EA of bar %d must be positive. %g is invalid", i+1, o.EA[i])
		}
		u[i+1] = u[i] + N[i]*o.L[i]/o.EA[i]
	}
	return
}
