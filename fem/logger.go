// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gostap/inp"
	"github.com/sirupsen/logrus"
)

// NewLogger returns a logger configured by the [log] section of the run configuration
//  Output:
//   closefile -- closes the log file; nil if logging to standard error
func NewLogger(cfg *inp.Config) (l *logrus.Logger, closefile func() error, err error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, chk.Err("invalid log level:\n%v", err)
	}
	l = logrus.New()
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.LogFile != "" {
		f, e := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if e != nil {
			return nil, nil, &inp.FileError{Path: cfg.LogFile, Err: e}
		}
		l.SetOutput(f)
		closefile = f.Close
	}
	return
}
