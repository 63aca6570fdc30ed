// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gostap/inp"

// Node holds a nodal point with resolved equation numbers
type Node struct {
	Id  int              // node number (1-based)
	X   [inp.Ndf]float64 // coordinates
	Eqs [inp.Ndf]int     // equation number per DOF (1-based); 0 => constrained
}

// NewNode returns a node without equation numbers
func NewNode(vert *inp.Node) *Node {
	return &Node{Id: vert.Id, X: vert.X}
}

// Free returns whether the DOF (0, 1 or 2) of this node is free
func (o *Node) Free(dof int) bool {
	return o.Eqs[dof] > 0
}
