// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gostap/ele"
	"github.com/cpmech/gostap/inp"
)

// NumberEquations resolves boundary codes into equation numbers
//  Scanning nodes in order and then their x, y and z DOFs: a fixed DOF (code != 0) gets 0;
//  a free DOF gets the next equation number, starting from 1.
//  Output:
//   nodes -- [len(verts)] nodes with equation numbers
//   neq   -- number of equations
func NumberEquations(verts []*inp.Node) (nodes []*ele.Node, neq int) {
	nodes = make([]*ele.Node, len(verts))
	for i, v := range verts {
		nod := ele.NewNode(v)
		for dof := 0; dof < inp.Ndf; dof++ {
			if v.Bcode[dof] == 0 {
				neq++
				nod.Eqs[dof] = neq
			}
		}
		nodes[i] = nod
	}
	return
}
