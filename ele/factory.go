// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gostap/inp"
)

// MatAllocatorType defines a function that allocates a material set of an element family
type MatAllocatorType func(mdat *inp.MatData) (Material, error)

// AllocatorType defines a function that allocates an element
type AllocatorType func(id int, verts []*Node, mat Material) (Element, error)

// Family holds information about an element type
type Family struct {
	Code    int              // type code in input files (NPAR1); e.g. 1 = bar
	Name    string           // name; e.g. "bar"
	Nnodes  int              // number of nodes per element
	NewMat  MatAllocatorType // allocates material sets
	NewElem AllocatorType    // allocates elements
}

// SetFamily registers a new element family
func SetFamily(f *Family) {
	if f == nil || f.NewMat == nil || f.NewElem == nil {
		chk.Panic("cannot set element family with nil allocators")
	}
	if f.Nnodes < 1 {
		chk.Panic("cannot set element family %q with %d nodes", f.Name, f.Nnodes)
	}
	if old, ok := families[f.Code]; ok {
		chk.Panic("cannot set element family %q because type code %d is already used by %q", f.Name, f.Code, old.Name)
	}
	families[f.Code] = f
}

// GetFamily returns the element family corresponding to a type code
func GetFamily(code int) (f *Family, err error) {
	f, ok := families[code]
	if !ok {
		return nil, chk.Err("element type %d has not been implemented. available types: %v", code, FamilyCodes())
	}
	return
}

// FamilyCodes returns the sorted type codes of all registered families
func FamilyCodes() (codes []int) {
	for code := range families {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return
}

// families holds all element families
var families = make(map[int]*Family)
