// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gostap/fem"
	"github.com/cpmech/gostap/inp"
	"github.com/cpmech/gostap/out"
)

// exit codes
const (
	exitOk       = 0 // success
	exitData     = 1 // input data or numerical failure
	exitResource = 3 // input or output files cannot be opened
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(exitData)
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "", ".dat", false)
	if fnkey == "" {
		fnamepath = "" // no filename given
	}
	verbose := io.ArgToBool(1, false)
	cfgpath := io.ArgToString(2, "")

	// message
	if verbose {
		io.PfWhite("\nGostap -- static analysis of 3D trusses with skyline storage\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"input (.dat) filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"configuration (.ini) file", "cfgpath", cfgpath,
		))
	}
	os.Exit(run(fnamepath, cfgpath, verbose))
}

// run runs the analysis and writes the report; it returns the exit code
func run(fnamepath, cfgpath string, verbose bool) int {

	// check filename
	if fnamepath == "" {
		io.Pf("Usage:\n\tgostap InputFileName[.dat] [verbose] [config.ini]\n")
		return exitData
	}
	if ext := io.FnExt(fnamepath); ext != ".dat" {
		io.PfRed("*** Error *** Invalid file extension: %s\n", ext)
		return exitData
	}

	// analysis
	analysis, err := fem.NewMain(fnamepath, cfgpath, verbose)
	if err != nil {
		return failed("Data input failed", err)
	}
	defer analysis.Close()
	errRun := analysis.Run()

	// report: written even if the solution fails
	fnout, err := out.WriteReport(analysis, analysis.Cfg.Echo)
	if err != nil {
		return failed("Cannot write report", err)
	}
	if verbose {
		io.Pf("> Report written to %s\n", fnout)
	}
	if errRun != nil {
		return failed("Solution failed", errRun)
	}

	// plots
	if analysis.Cfg.Plot && analysis.Solved {
		fnames, err := out.WritePlots(analysis)
		if err != nil {
			return failed("Cannot plot results", err)
		}
		if verbose {
			io.Pf("> Plots written to %v\n", fnames)
		}
	}
	return exitOk
}

// failed prints error and returns the corresponding exit code
func failed(msg string, err error) int {
	io.PfRed("*** Error *** %s:\n%v\n", msg, err)
	var ferr *inp.FileError
	var oerr *out.FileError
	if errors.As(err, &ferr) || errors.As(err, &oerr) {
		return exitResource
	}
	return exitData
}
