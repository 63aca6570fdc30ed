// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gostap/skyline"
	"gopkg.in/ini.v1"
)

// Config holds run configuration
type Config struct {

	// output
	DirOut string // directory for the report; empty => same directory as input file
	Echo   bool   // echo report to standard output

	// log
	LogLevel string // logrus level: "panic", "fatal", "error", "warn", "info", "debug" or "trace"
	LogFile  string // log file; empty => standard error

	// solver
	Solver string  // linear solver name; e.g. "ldlt"
	PivTol float64 // tolerance on the magnitude of pivots

	// plot
	Plot      bool    // plot undeformed and deformed shapes of each load case
	PlotPlane string  // projection plane: "xy", "xz" or "yz"
	PlotScale float64 // displacements multiplier; 0 => automatic
	PlotExt   string  // file extension defining the format: ".png", ".svg", ".pdf" or ".eps"

	// debug
	WriteSmat bool // write the assembled stiffness matrix to <key>_K.txt
}

// DefaultConfig returns the default configuration
func DefaultConfig() (o *Config) {
	o = new(Config)
	o.SetDefault()
	return
}

// SetDefault sets default values
func (o *Config) SetDefault() {
	o.DirOut = ""
	o.Echo = false
	o.LogLevel = "info"
	o.LogFile = ""
	o.Solver = "ldlt"
	o.PivTol = skyline.MinNormal
	o.Plot = false
	o.PlotPlane = "xy"
	o.PlotScale = 0
	o.PlotExt = ".png"
	o.WriteSmat = false
}

// ReadConfig reads configuration from INI file
//  Note: empty fnpath => default configuration
func ReadConfig(fnpath string) (o *Config, err error) {
	o = DefaultConfig()
	if fnpath == "" {
		return
	}
	if _, err = os.Stat(fnpath); err != nil {
		return nil, &FileError{Path: fnpath, Err: err}
	}
	cfg, err := ini.Load(fnpath)
	if err != nil {
		return nil, chk.Err("cannot load configuration file %q:\n%v", fnpath, err)
	}
	sec := cfg.Section("output")
	o.DirOut = sec.Key("dir").MustString(o.DirOut)
	o.Echo = sec.Key("echo").MustBool(o.Echo)
	sec = cfg.Section("log")
	o.LogLevel = sec.Key("level").MustString(o.LogLevel)
	o.LogFile = sec.Key("file").MustString(o.LogFile)
	sec = cfg.Section("solver")
	o.Solver = sec.Key("name").MustString(o.Solver)
	o.PivTol = sec.Key("pivtol").MustFloat64(o.PivTol)
	sec = cfg.Section("plot")
	o.Plot = sec.Key("enabled").MustBool(o.Plot)
	o.PlotPlane = sec.Key("plane").MustString(o.PlotPlane)
	o.PlotScale = sec.Key("scale").MustFloat64(o.PlotScale)
	o.PlotExt = sec.Key("format").MustString(o.PlotExt)
	sec = cfg.Section("debug")
	o.WriteSmat = sec.Key("writesmat").MustBool(o.WriteSmat)
	if err = o.PostProcess(); err != nil {
		return nil, err
	}
	return
}

// PostProcess checks values
func (o *Config) PostProcess() (err error) {
	if o.Solver == "" {
		return chk.Err("solver name must not be empty")
	}
	if o.PivTol < 0 {
		return chk.Err("pivot tolerance must be non-negative. pivtol = %g is invalid", o.PivTol)
	}
	switch o.PlotPlane {
	case "xy", "xz", "yz":
	default:
		return chk.Err("plot plane must be \"xy\", \"xz\" or \"yz\". %q is invalid", o.PlotPlane)
	}
	switch o.PlotExt {
	case ".png", ".svg", ".pdf", ".eps":
	default:
		return chk.Err("plot format must be \".png\", \".svg\", \".pdf\" or \".eps\". %q is invalid", o.PlotExt)
	}
	if o.PlotScale < 0 {
		return chk.Err("plot scale must be non-negative. scale = %g is invalid", o.PlotScale)
	}
	return
}
