// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form solutions of simple trusses used to check the numerical results
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// CrossSection computes the area of bar cross-sections
//
//   typ : rectangle
//         circle                             tw
//         I-beam                         -->| |<--
//                                    ___    | |     ___
//             +-------+            tf |   ########   |
//             |       |              ---  ########   |
//             |       |                      ##      |
//             |       | h = hei              ##      | h = hei
//             |       |                      ##      |
//             |       |              ---  ########   |
//             +-------+            tf_|_  ########  ---
//              b = wid                    b = wid
//
type CrossSection struct {
	Type string  // "rectangle", "I-beam" or "circle"
	Wid  float64 // width (b) if not circular
	Hei  float64 // height (h) if not circular
	Tf   float64 // flange thickness if I-beam
	Tw   float64 // web thickness if I-beam
	R    float64 // radius if circular
	A    float64 // cross-sectional area
}

// NewCrossSection computes the area of a rectangle, an I-beam or a circle
func NewCrossSection(typ string, wid, hei, tf, tw, rad float64) (o *CrossSection, err error) {
	o = &CrossSection{Type: typ, Wid: wid, Hei: hei, Tf: tf, Tw: tw, R: rad}
	switch typ {
	case "rectangle":
		if wid <= 0 || hei <= 0 {
			return nil, chk.Err("rectangle needs positive width and height. wid=%g, hei=%g is invalid", wid, hei)
		}
		o.A = wid * hei
	case "I-beam":
		l := hei - 2.0*tf
		if wid <= 0 || tf <= 0 || tw <= 0 || tw > wid || l <= 0 {
			return nil, chk.Err("I-beam dimensions are invalid: wid=%g, hei=%g, tf=%g, tw=%g", wid, hei, tf, tw)
		}
		o.A = wid*hei - l*(wid-tw)
	case "circle":
		if rad <= 0 {
			return nil, chk.Err("circle needs a positive radius. rad=%g is invalid", rad)
		}
		o.A = math.Pi * rad * rad
	default:
		return nil, chk.Err("cross-section type %q is unavailable", typ)
	}
	return
}

// Material holds the Young modulus of reference materials
type Material struct {
	Name string  // e.g. "steel"
	Unit string  // unit of pressure: "kPa", "MPa" or "GPa"
	E    float64 // Young modulus in Unit
}

// NewMaterial returns the data of a reference material
func NewMaterial(name, unitPres string) (o *Material, err error) {
	o = &Material{Name: name, Unit: unitPres}
	switch name { // values in MPa
	case "steel":
		o.E = 200000
	case "aluminium":
		o.E = 70000
	case "concrete":
		o.E = 30000
	case "timber":
		o.E = 12000
	default:
		return nil, chk.Err("material %q is unavailable", name)
	}
	switch unitPres {
	case "kPa":
		o.E *= 1e3
	case "MPa":
	case "GPa":
		o.E *= 1e-3
	default:
		return nil, chk.Err("unit of pressure %q is invalid", unitPres)
	}
	return
}

// BarPrms returns the parameters of the one-dimensional elastic model for a bar
// made of this material with the given cross-section
func (o *Material) BarPrms(section *CrossSection) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "E", V: o.E},
		&dbf.P{N: "A", V: section.A},
	}
}
