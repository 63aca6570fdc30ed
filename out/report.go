// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the STAP90 report of static analyses
package out

import (
	"bytes"
	goio "io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gostap/ele"
	"github.com/cpmech/gostap/ele/truss"
	"github.com/cpmech/gostap/fem"
)

// FileError reports report files that cannot be written
type FileError struct {
	Path string // file path
	Err  error  // underlying error
}

// Error implements the error interface
func (o *FileError) Error() string {
	return io.Sf("cannot write file %q: %v", o.Path, o.Err)
}

// Unwrap returns the underlying error
func (o *FileError) Unwrap() error { return o.Err }

// Report builds the STAP90 report of an analysis
type Report struct {
	Analysis *fem.Main    // the analysis
	Now      time.Time    // time stamp printed in heading
	buf      bytes.Buffer // text
}

// NewReport returns a new report
func NewReport(analysis *fem.Main) (o *Report) {
	return &Report{Analysis: analysis, Now: time.Now()}
}

// WriteReport writes the report to <dirout>/<key>.out
//  echo -- also write report to standard output
func WriteReport(analysis *fem.Main, echo bool) (fnpath string, err error) {
	dirout := analysis.Cfg.DirOut
	if dirout == "" {
		dirout = analysis.Model.Dir
	}
	fnpath = filepath.Join(dirout, analysis.Model.Key+".out")
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return "", &FileError{Path: fnpath, Err: err}
	}
	f, err := os.Create(fnpath)
	if err != nil {
		return "", &FileError{Path: fnpath, Err: err}
	}
	var w goio.Writer = f
	if echo {
		w = goio.MultiWriter(f, os.Stdout)
	}
	err = NewReport(analysis).Write(w)
	if e := f.Close(); err == nil && e != nil {
		err = e
	}
	if err != nil {
		return "", &FileError{Path: fnpath, Err: err}
	}
	return
}

// Write writes all sections
func (o *Report) Write(w goio.Writer) (err error) {
	_, err = w.Write(o.Bytes())
	return
}

// Bytes returns all sections
func (o *Report) Bytes() []byte {
	o.buf.Reset()
	o.Heading()
	o.ControlInfo()
	o.NodalPoints()
	o.EquationNumbers()
	o.LoadCases()
	o.ElementGroups()
	if o.Analysis.Dom.Kb != nil && o.Analysis.Dom.Kb.Final() {
		o.TotalSystem()
	}
	if o.Analysis.Solved {
		for lc := 1; lc <= len(o.Analysis.Model.LoadCases); lc++ {
			o.Displacements(lc)
			o.Stresses(lc)
		}
	}
	o.TimeLog()
	return o.buf.Bytes()
}

// sections ////////////////////////////////////////////////////////////////////////////////////

// Heading writes the title and time stamp
func (o *Report) Heading() {
	o.pf("TITLE : %s\n", o.Analysis.Model.Title)
	o.pf("        (%s on %s)\n\n", o.Now.Format("15:04:05"), o.Now.Format("January 2, 2006, Monday"))
}

// ControlInfo writes the control line data
func (o *Report) ControlInfo() {
	m := o.Analysis.Model
	o.pf("C O N T R O L   I N F O R M A T I O N\n\n")
	o.pf("\t  NUMBER OF NODAL POINTS . . . . . . . . . . (NUMNP)  =%6d\n", m.Numnp)
	o.pf("\t  NUMBER OF ELEMENT GROUPS . . . . . . . . . (NUMEG)  =%6d\n", m.Numeg)
	o.pf("\t  NUMBER OF LOAD CASES . . . . . . . . . . . (NLCASE) =%6d\n", m.Nlcase)
	o.pf("\t  SOLUTION MODE  . . . . . . . . . . . . . . (MODEX)  =%6d\n", m.Modex)
	o.pf("\t\t EQ.0, DATA CHECK\n")
	o.pf("\t\t EQ.1, EXECUTION\n\n")
}

// NodalPoints writes boundary codes and coordinates
func (o *Report) NodalPoints() {
	o.pf(" N O D A L   P O I N T   D A T A\n\n")
	o.pf("    NODE       BOUNDARY                         NODAL POINT\n")
	o.pf("   NUMBER  CONDITION  CODES                     COORDINATES\n")
	for _, n := range o.Analysis.Model.Nodes {
		o.pf("%9d%5d%5d%5d%18.6e%15.6e%15.6e\n", n.Id, n.Bcode[0], n.Bcode[1], n.Bcode[2], n.X[0], n.X[1], n.X[2])
	}
	o.pf("\n")
}

// EquationNumbers writes the equation numbers of all nodes
func (o *Report) EquationNumbers() {
	o.pf(" EQUATION NUMBERS\n\n")
	o.pf("   NODE NUMBER   DEGREES OF FREEDOM\n")
	o.pf("        N           X    Y    Z\n")
	for _, n := range o.Analysis.Dom.Nodes {
		o.pf("%9d       %5d%5d%5d\n", n.Id, n.Eqs[0], n.Eqs[1], n.Eqs[2])
	}
	o.pf("\n")
}

// LoadCases writes the concentrated loads of all load cases
func (o *Report) LoadCases() {
	for _, lc := range o.Analysis.Model.LoadCases {
		o.pf(" L O A D   C A S E   D A T A\n\n")
		o.pf("     LOAD CASE NUMBER . . . . . . . =%6d\n", lc.Id)
		o.pf("     NUMBER OF CONCENTRATED LOADS . =%6d\n\n", len(lc.Loads))
		o.pf("    NODE       DIRECTION      LOAD\n")
		o.pf("   NUMBER                   MAGNITUDE\n")
		for _, l := range lc.Loads {
			o.pf("%7d%13d%19.6e\n", l.Node, l.Dof, l.Val)
		}
		o.pf("\n")
	}
}

// ElementGroups writes the materials and connectivity of all element groups
func (o *Report) ElementGroups() {
	o.pf(" E L E M E N T   G R O U P   D A T A\n\n\n")
	for _, g := range o.Analysis.Dom.Groups {
		o.pf(" E L E M E N T   D E F I N I T I O N\n\n")
		o.pf(" ELEMENT TYPE  . . . . . . . . . . . . .( NPAR(1) ) . . =%5d\n", g.Type)
		o.pf("     EQ.1, TRUSS ELEMENTS\n")
		o.pf("     EQ.2, ELEMENTS CURRENTLY\n")
		o.pf("     EQ.3, NOT AVAILABLE\n\n")
		o.pf(" NUMBER OF ELEMENTS. . . . . . . . . . .( NPAR(2) ) . . =%5d\n\n", len(g.Elems))
		if g.Type == truss.BarCode {
			o.barGroup(g)
			continue
		}
		o.group(g)
	}
}

// TotalSystem writes the size of the global system
func (o *Report) TotalSystem() {
	d := o.Analysis.Dom
	var mm float64
	if d.Neq > 0 {
		mm = float64(d.Kb.Size()) / float64(d.Neq)
	}
	o.pf("\tTOTAL SYSTEM DATA\n\n")
	o.pf("     NUMBER OF EQUATIONS . . . . . . . . . . . . . .(NEQ) = %d\n", d.Neq)
	o.pf("     NUMBER OF MATRIX ELEMENTS . . . . . . . . . . .(NWK) = %d\n", d.Kb.Size())
	o.pf("     MAXIMUM HALF BANDWIDTH  . . . . . . . . . . . .(MK ) = %d\n", d.Kb.MaxHalfBandwidth())
	o.pf("     MEAN HALF BANDWIDTH . . . . . . . . . . . . . .(MM ) = %g\n\n\n", mm)
}

// Displacements writes the nodal displacements of a load case (1-based)
func (o *Report) Displacements(lc int) {
	o.pf(" LOAD CASE%5d\n\n\n", lc)
	o.pf(" D I S P L A C E M E N T S\n\n")
	o.pf("  NODE           X-DISPLACEMENT    Y-DISPLACEMENT    Z-DISPLACEMENT\n")
	for _, n := range o.Analysis.Dom.Nodes {
		u := o.Analysis.Dom.NodeDisp(n.Id, lc)
		o.pf("%5d        %18.6e%18.6e%18.6e\n", n.Id, u[0], u[1], u[2])
	}
	o.pf("\n")
}

// Stresses writes the element results of a load case (1-based)
func (o *Report) Stresses(lc int) {
	for i, g := range o.Analysis.Dom.Groups {
		o.pf(" S T R E S S  C A L C U L A T I O N S  F O R  E L E M E N T  G R O U P%5d\n\n", i+1)
		res := o.Analysis.Dom.Res[lc-1][i]
		if g.Type == truss.BarCode {
			o.pf("  ELEMENT             FORCE            STRESS\n")
			o.pf("  NUMBER\n")
			for j, e := range g.Elems {
				o.pf("%5d%22.6e%18.6e\n", e.Id(), res[j][0], res[j][1])
			}
			o.pf("\n")
			continue
		}
		if len(g.Elems) == 0 {
			continue
		}
		o.pf("  ELEMENT")
		for _, key := range g.Elems[0].OutKeys() {
			o.pf("%18s", strings.ToUpper(key))
		}
		o.pf("\n")
		for j, e := range g.Elems {
			o.pf("%9d", e.Id())
			for _, v := range res[j] {
				o.pf("%18.6e", v)
			}
			o.pf("\n")
		}
		o.pf("\n")
	}
}

// TimeLog writes the elapsed times in seconds
func (o *Report) TimeLog() {
	t := o.Analysis.Times
	o.pf("\n S O L U T I O N   T I M E   L O G   I N   S E C \n\n")
	o.pf("     TIME FOR INPUT PHASE = %g\n", t.Input.Seconds())
	o.pf("     TIME FOR CALCULATION OF STIFFNESS MATRIX = %g\n", t.Assembly.Seconds())
	o.pf("     TIME FOR FACTORIZATION AND LOAD CASE SOLUTIONS = %g\n", t.Solution.Seconds())
	o.pf("     T O T A L   S O L U T I O N   T I M E = %g\n", t.Total().Seconds())
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////

func (o *Report) pf(msg string, prm ...interface{}) {
	o.buf.WriteString(io.Sf(msg, prm...))
}

// barGroup writes the material and element tables of bars
func (o *Report) barGroup(g *ele.Group) {
	o.pf(" M A T E R I A L   D E F I N I T I O N\n\n")
	o.pf(" NUMBER OF DIFFERENT SETS OF MATERIAL\n")
	o.pf(" AND CROSS-SECTIONAL  CONSTANTS  . . . .( NPAR(3) ) . . =%5d\n\n", len(g.Mats))
	o.pf("  SET       YOUNG'S     CROSS-SECTIONAL\n")
	o.pf(" NUMBER     MODULUS          AREA\n")
	o.pf("               E              A\n")
	for _, m := range g.Mats {
		o.pf("%5d", m.Set())
		for _, p := range m.Prms() {
			o.pf("%16.6e", p.V)
		}
		o.pf("\n")
	}
	o.pf("\n\n E L E M E N T   I N F O R M A T I O N\n")
	o.pf(" ELEMENT     NODE     NODE       MATERIAL\n")
	o.pf(" NUMBER-N      I        J       SET NUMBER\n")
	for _, e := range g.Elems {
		nodes := e.Nodes()
		o.pf("%5d%11d%9d%12d\n", e.Id(), nodes[0].Id, nodes[1].Id, e.MatSet())
	}
	o.pf("\n")
}

// group writes the material and element tables of any family
func (o *Report) group(g *ele.Group) {
	o.pf(" M A T E R I A L   D E F I N I T I O N  (%s)\n\n", strings.ToUpper(g.Family.Name))
	o.pf(" NUMBER OF MATERIAL SETS . . . . . . . .( NPAR(3) ) . . =%5d\n\n", len(g.Mats))
	for _, m := range g.Mats {
		o.pf("%5d", m.Set())
		for _, p := range m.Prms() {
			o.pf("  %s =%14.6e", p.N, p.V)
		}
		o.pf("\n")
	}
	o.pf("\n\n E L E M E N T   I N F O R M A T I O N\n")
	o.pf(" ELEMENT      NODES ...      MATERIAL SET\n")
	for _, e := range g.Elems {
		o.pf("%5d ", e.Id())
		for _, n := range e.Nodes() {
			o.pf("%9d", n.Id)
		}
		o.pf("%12d\n", e.MatSet())
	}
	o.pf("\n")
}
