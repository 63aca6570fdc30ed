// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gostap/inp"
)

// Group holds the materials and elements of one element group
type Group struct {
	Type   int        // element type code
	Family *Family    // element family
	Mats   []Material // [nummat] material sets
	Elems  []Element  // [nume] elements
}

// NewGroup allocates the materials and then the elements of an element group
//  nodes -- all nodes; node with number n is nodes[n-1]
func NewGroup(gdat *inp.GroupData, nodes []*Node) (o *Group, err error) {

	// family
	o = new(Group)
	o.Type = gdat.Type
	o.Family, err = GetFamily(gdat.Type)
	if err != nil {
		return nil, err
	}

	// materials
	o.Mats = make([]Material, len(gdat.Mats))
	for i, mdat := range gdat.Mats {
		o.Mats[i], err = o.Family.NewMat(mdat)
		if err != nil {
			return nil, chk.Err("cannot allocate material set %d of %s elements:\n%v", mdat.Set, o.Family.Name, err)
		}
	}

	// elements
	o.Elems = make([]Element, len(gdat.Elems))
	for i, edat := range gdat.Elems {
		if len(edat.Verts) != o.Family.Nnodes {
			return nil, chk.Err("%s element %d must have %d nodes; %d were given", o.Family.Name, edat.Id, o.Family.Nnodes, len(edat.Verts))
		}
		verts := make([]*Node, len(edat.Verts))
		for j, n := range edat.Verts {
			if n < 1 || n > len(nodes) {
				return nil, chk.Err("%s element %d refers to node %d which does not exist. number of nodes = %d", o.Family.Name, edat.Id, n, len(nodes))
			}
			verts[j] = nodes[n-1]
		}
		if edat.Mat < 1 || edat.Mat > len(o.Mats) {
			return nil, chk.Err("%s element %d refers to material set %d which does not exist. number of sets = %d", o.Family.Name, edat.Id, edat.Mat, len(o.Mats))
		}
		o.Elems[i], err = o.Family.NewElem(edat.Id, verts, o.Mats[edat.Mat-1])
		if err != nil {
			return nil, chk.Err("cannot allocate %s element %d:\n%v", o.Family.Name, edat.Id, err)
		}
	}
	return
}

// SetEqs builds the location maps of all elements
func (o *Group) SetEqs() {
	for _, e := range o.Elems {
		e.SetEqs()
	}
}

// MaxSizeK returns the maximum packed stiffness length among the elements of this group
func (o *Group) MaxSizeK() (size int) {
	for _, e := range o.Elems {
		if s := e.SizeK(); s > size {
			size = s
		}
	}
	return
}
