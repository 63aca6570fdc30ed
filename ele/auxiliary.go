// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gostap/inp"

// BuildCoordsMatrix returns the coordinate matrix of a set of nodes
//  x[i][j] is the i-th coordinate of the j-th node
func BuildCoordsMatrix(verts []*Node) (x [][]float64) {
	x = make([][]float64, inp.Ndf)
	for i := 0; i < inp.Ndf; i++ {
		x[i] = make([]float64, len(verts))
		for j, v := range verts {
			x[i][j] = v.X[i]
		}
	}
	return
}

// BuildUmap returns the location map of a set of nodes; i.e. the global equation
// numbers of all DOFs, node by node
func BuildUmap(verts []*Node) (umap []int) {
	umap = make([]int, 0, inp.Ndf*len(verts))
	for _, v := range verts {
		umap = append(umap, v.Eqs[:]...)
	}
	return
}
