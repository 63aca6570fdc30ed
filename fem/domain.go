// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gostap/ele"
	"github.com/cpmech/gostap/inp"
	"github.com/cpmech/gostap/skyline"
)

// Domain holds nodes, element groups and the global system of one analysis
type Domain struct {

	// init: input data
	Model *inp.Model // [from Main] input data

	// nodes and elements
	Nodes  []*ele.Node  // [numnp] nodes. node with number n is Nodes[n-1]
	Groups []*ele.Group // [numeg] element groups

	// global system
	Neq int             // number of equations
	Kb  *skyline.Matrix // global stiffness matrix; overwritten by its factors
	Fb  []float64       // [neq] load vector of current load case; overwritten by displacements

	// results
	Disp [][]float64     // [nlcase][neq] displacements per load case
	Res  [][][][]float64 // [nlcase][numeg][nume] element results per load case; see Element.OutKeys
}

// NewDomain numbers equations and allocates element groups
func NewDomain(model *inp.Model) (o *Domain, err error) {
	o = new(Domain)
	o.Model = model

	// nodes and equations
	o.Nodes, o.Neq = NumberEquations(model.Nodes)

	// element groups
	o.Groups = make([]*ele.Group, len(model.Groups))
	for i, gdat := range model.Groups {
		o.Groups[i], err = ele.NewGroup(gdat, o.Nodes)
		if err != nil {
			return nil, chk.Err("cannot allocate element group %d:\n%v", i+1, err)
		}
		o.Groups[i].SetEqs()
	}

	// loads
	for _, lcase := range model.LoadCases {
		for _, l := range lcase.Loads {
			if err = o.checkLoad(lcase.Id, l); err != nil {
				return nil, err
			}
		}
	}

	// results
	o.Disp = make([][]float64, len(model.LoadCases))
	o.Res = make([][][][]float64, len(model.LoadCases))
	return
}

// SetProfile computes the column heights and diagonal addresses of Kb from the location maps
// of all elements, group by group
func (o *Domain) SetProfile() {
	o.Kb = skyline.NewMatrix(o.Neq)
	for _, g := range o.Groups {
		for _, e := range g.Elems {
			o.Kb.AddElement(e.LocationMap())
		}
	}
	o.Kb.CalcMaxHalfBandwidth()
	o.Kb.CalcDiagAddresses()
}

// AllocMatrices allocates Kb and Fb; the profile is computed if not done yet
func (o *Domain) AllocMatrices() {
	if o.Kb == nil || !o.Kb.Final() {
		o.SetProfile()
	}
	o.Kb.Alloc()
	o.Fb = make([]float64, o.Neq)
}

// AssembleK assembles the stiffness matrices of all elements into Kb
func (o *Domain) AssembleK() (err error) {
	for i, g := range o.Groups {
		k := make([]float64, g.MaxSizeK())
		for _, e := range g.Elems {
			kk := k[:e.SizeK()]
			e.CalcK(kk)
			err = o.Kb.Assemble(kk, e.LocationMap())
			if err != nil {
				return chk.Err("cannot assemble element %d of group %d:\n%v", e.Id(), i+1, err)
			}
		}
	}
	return
}

// AssembleF zeroes Fb and assembles the concentrated loads of a load case
//  lc -- load case number (1-based)
//  Note: loads applied to constrained DOFs are ignored
func (o *Domain) AssembleF(lc int) (err error) {
	if lc < 1 || lc > len(o.Model.LoadCases) {
		return chk.Err("load case %d does not exist. number of load cases = %d", lc, len(o.Model.LoadCases))
	}
	for i := range o.Fb {
		o.Fb[i] = 0
	}
	for _, l := range o.Model.LoadCases[lc-1].Loads {
		if err = o.checkLoad(lc, l); err != nil {
			return
		}
		if eq := o.Nodes[l.Node-1].Eqs[l.Dof-1]; eq > 0 {
			o.Fb[eq-1] += l.Val
		}
	}
	return
}

// CalcResults computes the results of all elements for given displacements
func (o *Domain) CalcResults(disp []float64) (res [][][]float64) {
	res = make([][][]float64, len(o.Groups))
	for i, g := range o.Groups {
		res[i] = make([][]float64, len(g.Elems))
		for j, e := range g.Elems {
			res[i][j] = e.OutVals(disp)
		}
	}
	return
}

// NodeDisp returns the x, y and z displacements of a node for a load case
//  nid -- node number (1-based)
//  lc  -- load case number (1-based)
func (o *Domain) NodeDisp(nid, lc int) (u [inp.Ndf]float64) {
	disp := o.Disp[lc-1]
	for dof, eq := range o.Nodes[nid-1].Eqs {
		if eq > 0 {
			u[dof] = disp[eq-1]
		}
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// checkLoad checks that a load is applied to an existing node along x, y or z
func (o *Domain) checkLoad(lc int, l *inp.Load) error {
	if l.Node < 1 || l.Node > len(o.Nodes) {
		return chk.Err("load case %d: node %d does not exist. number of nodes = %d", lc, l.Node, len(o.Nodes))
	}
	if l.Dof < 1 || l.Dof > inp.Ndf {
		return chk.Err("load case %d: direction %d of node %d is invalid. it must be in [1, %d]", lc, l.Dof, l.Node, inp.Ndf)
	}
	return nil
}
