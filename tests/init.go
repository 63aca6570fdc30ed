// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gostap/fem"
)

func init() {
	io.Verbose = false
}

func Verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// GetNidsEqs returns the node numbers and the equation numbers of all nodes; zero means constrained
func GetNidsEqs(dom *fem.Domain) (nids, eqs []int) {
	for _, nod := range dom.Nodes {
		nids = append(nids, nod.Id)
		eqs = append(eqs, nod.Eqs[:]...)
	}
	return
}
