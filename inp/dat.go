// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from STAP90 (.dat) files and run configurations
package inp

import (
	"bufio"
	goio "io"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/io"
)

// Ndf is the number of degrees of freedom per node (x, y and z displacements)
const Ndf = 3

// Solution modes
const (
	ModeDataCheck = 0 // read and check data only
	ModeExecution = 1 // solve
)

// Node holds nodal point data as given in the input file
type Node struct {
	Id    int          // node number (1-based)
	Bcode [Ndf]int     // boundary flags: 0 = free, otherwise fixed
	X     [Ndf]float64 // coordinates
}

// Load holds one concentrated load
type Load struct {
	Node int     // node number (1-based)
	Dof  int     // local degree of freedom (1-based): 1=x, 2=y, 3=z
	Val  float64 // magnitude
}

// LoadCase holds all concentrated loads of one load case
type LoadCase struct {
	Id    int     // load case number (1-based)
	Loads []*Load // concentrated loads
}

// MatData holds one material/section property set
type MatData struct {
	Set  int       // set number (1-based) within element group
	Vals []float64 // values; e.g. E and A for bars
}

// ElemData holds element connectivity
type ElemData struct {
	Id    int   // element number (1-based) within element group
	Verts []int // node numbers (1-based)
	Mat   int   // material set number (1-based)
}

// GroupData holds data of an element group
type GroupData struct {
	Type   int         // element type code; e.g. 1 = bar
	Nume   int         // number of elements
	Nummat int         // number of material sets
	Mats   []*MatData  // [nummat] material sets
	Elems  []*ElemData // [nume] elements
}

// Model holds all data in a STAP90 input file
type Model struct {
	Title     string       // heading
	Numnp     int          // number of nodal points
	Numeg     int          // number of element groups
	Nlcase    int          // number of load cases
	Modex     int          // solution mode: 0 = data check, 1 = execution
	Nodes     []*Node      // [numnp] nodes
	LoadCases []*LoadCase  // [nlcase] load cases
	Groups    []*GroupData // [numeg] element groups

	// derived
	Dir string // directory of input file
	Key string // filename key; e.g. truss.dat => truss
}

// ReadDat reads a STAP90 input file
func ReadDat(fnpath string) (o *Model, err error) {
	f, err := os.Open(fnpath)
	if err != nil {
		return nil, &FileError{Path: fnpath, Err: err}
	}
	defer f.Close()
	o, err = ParseDat(f)
	if err != nil {
		return nil, err
	}
	o.Dir, o.Key = splitPath(fnpath)
	return
}

// ParseDat parses STAP90 data from reader
func ParseDat(r goio.Reader) (o *Model, err error) {
	s := newScanner(r)

	// heading
	o = new(Model)
	if !s.sc.Scan() {
		if err = s.sc.Err(); err != nil {
			return nil, err
		}
		return nil, &ParseError{Line: 1, Msg: "heading line is missing"}
	}
	s.line++
	o.Title = strings.TrimRight(s.sc.Text(), " \t\r")

	// control line
	v, err := s.ints("control line", 4)
	if err != nil {
		return nil, err
	}
	o.Numnp, o.Numeg, o.Nlcase, o.Modex = v[0], v[1], v[2], v[3]
	if o.Numnp < 0 || o.Numeg < 0 || o.Nlcase < 0 {
		return nil, &ParseError{Line: s.line, Msg: io.Sf("NUMNP, NUMEG and NLCASE must be non-negative. %d, %d, %d is invalid", o.Numnp, o.Numeg, o.Nlcase)}
	}

	// nodal points
	o.Nodes = make([]*Node, o.Numnp)
	for i := 0; i < o.Numnp; i++ {
		o.Nodes[i], err = s.node(i + 1)
		if err != nil {
			return nil, err
		}
	}

	// load cases
	o.LoadCases = make([]*LoadCase, o.Nlcase)
	for i := 0; i < o.Nlcase; i++ {
		o.LoadCases[i], err = s.loadCase(i + 1)
		if err != nil {
			return nil, err
		}
	}

	// element groups
	o.Groups = make([]*GroupData, o.Numeg)
	for i := 0; i < o.Numeg; i++ {
		o.Groups[i], err = s.group()
		if err != nil {
			return nil, err
		}
	}
	return
}

// scanner ///////////////////////////////////////////////////////////////////////////////////////

// scanner reads non-empty lines and keeps track of line numbers
type scanner struct {
	sc   *bufio.Scanner
	line int
}

func newScanner(r goio.Reader) *scanner {
	return &scanner{sc: bufio.NewScanner(r)}
}

// fields returns the fields of the next non-empty line
func (o *scanner) fields(what string) (res []string, err error) {
	for o.sc.Scan() {
		o.line++
		res = strings.Fields(o.sc.Text())
		if len(res) > 0 {
			return
		}
	}
	if err = o.sc.Err(); err != nil {
		return
	}
	return nil, &ParseError{Line: o.line + 1, Msg: io.Sf("unexpected end of file while reading %s", what)}
}

// ints reads a line with at least n integers
func (o *scanner) ints(what string, n int) (res []int, err error) {
	fields, err := o.fields(what)
	if err != nil {
		return
	}
	if len(fields) < n {
		return nil, &ParseError{Line: o.line, Msg: io.Sf("%s needs %d values; %d found", what, n, len(fields))}
	}
	res = make([]int, n)
	for i := 0; i < n; i++ {
		res[i], err = o.atoi(fields[i], what)
		if err != nil {
			return
		}
	}
	return
}

func (o *scanner) atoi(s, what string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Line: o.line, Msg: io.Sf("invalid integer %q in %s", s, what)}
	}
	return v, nil
}

func (o *scanner) atof(s, what string) (float64, error) {
	v, err := strconv.ParseFloat(strings.Replace(strings.Replace(s, "D", "E", 1), "d", "e", 1), 64)
	if err != nil {
		return 0, &ParseError{Line: o.line, Msg: io.Sf("invalid number %q in %s", s, what)}
	}
	return v, nil
}

// node reads: N  BCx BCy BCz  X Y Z
func (o *scanner) node(expected int) (nod *Node, err error) {
	fields, err := o.fields("nodal point data")
	if err != nil {
		return
	}
	if len(fields) < 1+2*Ndf {
		return nil, &ParseError{Line: o.line, Msg: io.Sf("nodal point data needs %d values; %d found", 1+2*Ndf, len(fields))}
	}
	nod = new(Node)
	if nod.Id, err = o.atoi(fields[0], "nodal point data"); err != nil {
		return nil, err
	}
	if nod.Id != expected {
		return nil, &OrderError{What: "node", Expected: expected, Provided: nod.Id}
	}
	for i := 0; i < Ndf; i++ {
		if nod.Bcode[i], err = o.atoi(fields[1+i], "boundary codes"); err != nil {
			return nil, err
		}
		if nod.X[i], err = o.atof(fields[1+Ndf+i], "coordinates"); err != nil {
			return nil, err
		}
	}
	return
}

// loadCase reads: LL NL and then NL lines with: NODE DOF LOAD
func (o *scanner) loadCase(expected int) (lc *LoadCase, err error) {
	v, err := o.ints("load case header", 2)
	if err != nil {
		return
	}
	if v[0] != expected {
		return nil, &OrderError{What: "load case", Expected: expected, Provided: v[0]}
	}
	if v[1] < 0 {
		return nil, &ParseError{Line: o.line, Msg: io.Sf("number of loads must be non-negative. %d is invalid", v[1])}
	}
	lc = &LoadCase{Id: v[0], Loads: make([]*Load, v[1])}
	for i := 0; i < v[1]; i++ {
		fields, err := o.fields("load data")
		if err != nil {
			return nil, err
		}
		if len(fields) < 3 {
			return nil, &ParseError{Line: o.line, Msg: io.Sf("load data needs 3 values; %d found", len(fields))}
		}
		var l Load
		if l.Node, err = o.atoi(fields[0], "load data"); err != nil {
			return nil, err
		}
		if l.Dof, err = o.atoi(fields[1], "load data"); err != nil {
			return nil, err
		}
		if l.Val, err = o.atof(fields[2], "load data"); err != nil {
			return nil, err
		}
		lc.Loads[i] = &l
	}
	return
}

// group reads: NPAR1 NUME NUMMAT, then NUMMAT material lines and NUME element lines
func (o *scanner) group() (g *GroupData, err error) {
	v, err := o.ints("element group control line", 3)
	if err != nil {
		return
	}
	g = &GroupData{Type: v[0], Nume: v[1], Nummat: v[2]}
	if g.Nume < 0 || g.Nummat < 0 {
		return nil, &ParseError{Line: o.line, Msg: io.Sf("NUME and NUMMAT must be non-negative. %d, %d is invalid", g.Nume, g.Nummat)}
	}

	// material sets: NSET v1 v2 ...
	g.Mats = make([]*MatData, g.Nummat)
	for i := 0; i < g.Nummat; i++ {
		fields, err := o.fields("material data")
		if err != nil {
			return nil, err
		}
		m := &MatData{Vals: make([]float64, len(fields)-1)}
		if m.Set, err = o.atoi(fields[0], "material data"); err != nil {
			return nil, err
		}
		if m.Set != i+1 {
			return nil, &OrderError{What: "material set", Expected: i + 1, Provided: m.Set}
		}
		for j := 1; j < len(fields); j++ {
			if m.Vals[j-1], err = o.atof(fields[j], "material data"); err != nil {
				return nil, err
			}
		}
		g.Mats[i] = m
	}

	// elements: N node1 ... nodeNen MSET
	g.Elems = make([]*ElemData, g.Nume)
	for i := 0; i < g.Nume; i++ {
		fields, err := o.fields("element data")
		if err != nil {
			return nil, err
		}
		if len(fields) < 3 {
			return nil, &ParseError{Line: o.line, Msg: io.Sf("element data needs at least 3 values; %d found", len(fields))}
		}
		ints := make([]int, len(fields))
		for j, f := range fields {
			if ints[j], err = o.atoi(f, "element data"); err != nil {
				return nil, err
			}
		}
		if ints[0] != i+1 {
			return nil, &OrderError{What: "element", Expected: i + 1, Provided: ints[0]}
		}
		g.Elems[i] = &ElemData{Id: ints[0], Verts: ints[1 : len(ints)-1], Mat: ints[len(ints)-1]}
	}
	return
}

// splitPath returns the directory and the filename key of fnpath
func splitPath(fnpath string) (dir, key string) {
	dir = "."
	fn := fnpath
	if idx := strings.LastIndexAny(fnpath, "/\\"); idx >= 0 {
		dir, fn = fnpath[:idx], fnpath[idx+1:]
		if dir == "" {
			dir = "/"
		}
	}
	key = io.FnKey(fn)
	return
}
