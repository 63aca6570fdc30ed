// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the static analysis of structures by the finite element method
package fem

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gostap/inp"
	"github.com/cpmech/gostap/skyline"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// Timings holds the elapsed times of the solution phases
type Timings struct {
	Input    time.Duration // reading data, numbering equations and allocating elements
	Assembly time.Duration // computing the profile and assembling the stiffness matrix
	Solution time.Duration // factorisation and load case solutions
	Stress   time.Duration // element results
}

// Total returns the total solution time
func (o Timings) Total() time.Duration {
	return o.Input + o.Assembly + o.Solution + o.Stress
}

// Main holds all data for a static analysis using the finite element method
type Main struct {
	Model   *inp.Model     // input data
	Cfg     *inp.Config    // run configuration
	Dom     *Domain        // domain
	LinSol  LinSol         // linear solver
	Log     *logrus.Logger // run log
	Times   Timings        // elapsed times
	ShowMsg bool           // show messages
	Solved  bool           // displacements and element results are available
	logfile func() error   // closes log file
}

// NewMain reads the input data and configuration and allocates the domain
//  Input:
//   datfilepath -- STAP90 input (.dat) filename including full path
//   cfgfilepath -- configuration (.ini) filename; may be empty
//   verbose     -- show messages
func NewMain(datfilepath, cfgfilepath string, verbose bool) (o *Main, err error) {

	// new Main object
	start := time.Now()
	o = new(Main)
	o.ShowMsg = verbose

	// configuration and log
	o.Cfg, err = inp.ReadConfig(cfgfilepath)
	if err != nil {
		return nil, err
	}
	o.Log, o.logfile, err = NewLogger(o.Cfg)
	if err != nil {
		return nil, err
	}

	// read input data
	o.Model, err = inp.ReadDat(datfilepath)
	if err != nil {
		o.Close()
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Input (.dat) file read\n")
	}
	o.Log.WithFields(logrus.Fields{
		"file":   datfilepath,
		"numnp":  o.Model.Numnp,
		"numeg":  o.Model.Numeg,
		"nlcase": o.Model.Nlcase,
		"modex":  o.Model.Modex,
	}).Info("input data read")

	// allocate domain
	o.Dom, err = NewDomain(o.Model)
	if err != nil {
		o.Close()
		return nil, err
	}
	o.Times.Input = time.Since(start)
	return
}

// Run computes the profile and, if MODEX == 1, assembles and solves all load cases
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// profile
	start := time.Now()
	o.Dom.SetProfile()
	o.Log.WithFields(logrus.Fields{
		"neq": o.Dom.Neq,
		"nwk": o.Dom.Kb.Size(),
		"mk":  o.Dom.Kb.MaxHalfBandwidth(),
	}).Info("skyline profile computed")

	// data check only
	if o.Model.Modex == inp.ModeDataCheck {
		o.Times.Assembly = time.Since(start)
		o.Log.Info("data check completed; MODEX = 0 => no solution")
		return
	}

	// assembly
	o.Dom.AllocMatrices()
	err = o.Dom.AssembleK()
	if err != nil {
		return
	}
	if o.Cfg.WriteSmat {
		err = o.WriteSmat()
		if err != nil {
			return
		}
	}
	o.Times.Assembly = time.Since(start)
	o.Log.WithField("elapsed", o.Times.Assembly).Debug("stiffness matrix assembled")
	if o.ShowMsg {
		io.Pf("> Stiffness matrix assembled\n")
	}

	// factorisation
	start = time.Now()
	o.LinSol, err = GetSolver(o.Cfg.Solver, o.Cfg.PivTol)
	if err != nil {
		return
	}
	err = o.LinSol.Init(o.Dom.Kb)
	if err != nil {
		return
	}
	err = o.LinSol.Fact()
	if err != nil {
		var perr *skyline.PivotError
		if errors.As(err, &perr) {
			o.Log.WithFields(logrus.Fields{"eq": perr.Eq, "pivot": perr.Pivot}).Error("factorisation failed")
		}
		return
	}

	// load cases
	for lc := 1; lc <= len(o.Model.LoadCases); lc++ {
		err = o.Dom.AssembleF(lc)
		if err != nil {
			return
		}
		err = o.LinSol.Solve(o.Dom.Fb)
		if err != nil {
			return
		}
		o.Dom.Disp[lc-1] = append([]float64{}, o.Dom.Fb...)
		o.Log.WithField("lcase", lc).Debug("load case solved")
	}
	o.Times.Solution = time.Since(start)
	if o.ShowMsg {
		io.Pf("> Load cases solved\n")
	}

	// element results
	start = time.Now()
	for lc := range o.Dom.Disp {
		o.Dom.Res[lc] = o.Dom.CalcResults(o.Dom.Disp[lc])
	}
	o.Times.Stress = time.Since(start)
	o.Solved = true
	return
}

// WriteSmat writes the assembled stiffness matrix to <dirout>/<key>_K.txt
//  Note: failures are returned as *inp.FileError
func (o *Main) WriteSmat() (err error) {
	dirout := o.Cfg.DirOut
	if dirout == "" {
		dirout = o.Model.Dir
	}
	fnpath := filepath.Join(dirout, o.Model.Key+"_K.txt")
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return &inp.FileError{Path: fnpath, Err: err, Write: true}
	}
	txt := io.Sf("%v\n", mat.Formatted(o.Dom.Kb.ToDense(), mat.Squeeze()))
	if err = os.WriteFile(fnpath, []byte(txt), 0644); err != nil {
		return &inp.FileError{Path: fnpath, Err: err, Write: true}
	}
	o.Log.WithField("file", fnpath).Info("stiffness matrix written")
	return
}

// Close closes the log file
func (o *Main) Close() {
	if o.logfile != nil {
		o.logfile()
		o.logfile = nil
	}
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit prints final message with cpu time and logs timings
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {

	// show final message
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}

	// log
	if prevErr != nil {
		o.Log.WithError(prevErr).Error("analysis failed")
		return prevErr
	}
	o.Log.WithFields(logrus.Fields{
		"input":    o.Times.Input,
		"assembly": o.Times.Assembly,
		"solution": o.Times.Solution,
		"stress":   o.Times.Stress,
		"total":    o.Times.Total(),
	}).Info("analysis completed")
	return
}
