// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package truss implements pin-jointed members for 3D trusses
package truss

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gostap/ele"
	"github.com/cpmech/gostap/inp"
	"github.com/cpmech/gostap/mdl/sld"
	"github.com/cpmech/gostap/skyline"
)

// BarCode is the element type code of bars in input files
const BarCode = 1

// Material holds a set of bar material and section properties
type Material struct {
	Nset int        // set number
	Mdl  sld.OneD   // material model
	prms dbf.Params // parameters given to model
}

// Set returns the set number
func (o *Material) Set() int { return o.Nset }

// Prms returns the parameters of the set
func (o *Material) Prms() dbf.Params { return o.prms }

// Bar represents a 3D two-node bar (for axial loads only) with constant stiffness matrix
type Bar struct {

	// basic data
	Nid   int         // element number
	Verts []*ele.Node // the two nodes
	X     [][]float64 // matrix of nodal coordinates [3][2]

	// parameters and properties
	Mat *Material // material set
	L   float64   // length of bar

	// problem variables
	Umap []int // assembly map (location array/element equations)

	// geometry
	dx [3]float64 // x1 - x0
	l2 float64    // L²
}

// register element
func init() {
	ele.SetFamily(&ele.Family{
		Code:   BarCode,
		Name:   "bar",
		Nnodes: 2,

		// material allocator
		NewMat: func(mdat *inp.MatData) (ele.Material, error) {
			if len(mdat.Vals) < 2 {
				return nil, chk.Err("bar material set %d needs E and A; %d values were given", mdat.Set, len(mdat.Vals))
			}
			model, err := sld.New("oned-elast")
			if err != nil {
				return nil, err
			}
			prms := dbf.Params{
				&dbf.P{N: "E", V: mdat.Vals[0]},
				&dbf.P{N: "A", V: mdat.Vals[1]},
			}
			if err = model.Init(prms); err != nil {
				return nil, err
			}
			return &Material{Nset: mdat.Set, Mdl: model.(sld.OneD), prms: prms}, nil
		},

		// element allocator
		NewElem: func(id int, verts []*ele.Node, mat ele.Material) (ele.Element, error) {
			m, ok := mat.(*Material)
			if !ok {
				return nil, chk.Err("bar element %d needs a bar material set", id)
			}
			bar, err := NewBar(id, verts, m)
			if err != nil {
				return nil, err
			}
			return bar, nil
		},
	})
}

// NewBar returns a new bar element
func NewBar(id int, verts []*ele.Node, mat *Material) (o *Bar, err error) {
	if len(verts) != 2 {
		return nil, chk.Err("bar element %d must have 2 nodes; %d were given", id, len(verts))
	}
	o = &Bar{Nid: id, Verts: verts, Mat: mat}
	o.X = ele.BuildCoordsMatrix(verts)
	for i := 0; i < 3; i++ {
		o.dx[i] = o.X[i][1] - o.X[i][0]
		o.l2 += o.dx[i] * o.dx[i]
	}
	o.L = math.Sqrt(o.l2)
	if o.L == 0 {
		return nil, chk.Err("bar element %d has zero length: nodes %d and %d coincide", id, verts[0].Id, verts[1].Id)
	}
	return
}

// Id returns the element number
func (o *Bar) Id() int { return o.Nid }

// Nodes returns the nodes
func (o *Bar) Nodes() []*ele.Node { return o.Verts }

// MatSet returns the material set number
func (o *Bar) MatSet() int { return o.Mat.Nset }

// SetEqs builds the location map
func (o *Bar) SetEqs() {
	o.Umap = ele.BuildUmap(o.Verts)
}

// LocationMap returns the location map
func (o *Bar) LocationMap() []int { return o.Umap }

// Nd returns the number of local DOFs
func (o *Bar) Nd() int { return 6 }

// SizeK returns the length of the packed stiffness matrix
func (o *Bar) SizeK() int { return 21 }

// CalcK computes the upper triangle of K packed column by column
//
//           E・A  ┌  dd  -dd ┐
//   K = ─────── │          │    with  dd[i][j] = dx[i]・dx[j]
//          L³   └ -dd   dd ┘
//
func (o *Bar) CalcK(k []float64) {
	if len(k) < o.SizeK() {
		chk.Panic("bar element %d: stiffness buffer is too small. %d < %d", o.Nid, len(k), o.SizeK())
	}
	α := o.Mat.Mdl.Stiffness() / o.L / o.l2
	for j := 0; j < 6; j++ {
		for i := 0; i <= j; i++ {
			v := α * o.dx[i%3] * o.dx[j%3]
			if (i < 3) != (j < 3) {
				v = -v
			}
			k[skyline.PackedIndex(i, j)] = v
		}
	}
}

// OutKeys returns the keys of element results
func (o *Bar) OutKeys() []string { return []string{"force", "stress"} }

// OutVals returns the axial force and stress for given global displacements
//  disp -- [neq] displacements; constrained DOFs are zero
func (o *Bar) OutVals(disp []float64) []float64 {
	var b [6]float64
	for i := 0; i < 3; i++ {
		b[i] = -o.dx[i] / o.l2
		b[i+3] = -b[i]
	}
	var ε float64
	for i, eq := range o.Umap {
		if eq != 0 {
			ε += b[i] * disp[eq-1]
		}
	}
	σ := o.Mat.Mdl.Stress(ε)
	return []float64{o.Mat.Mdl.Force(σ), σ}
}
