// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/io"

// OrderError reports records given out of sequence; e.g. node 3 after node 1
type OrderError struct {
	What     string // "node", "load case", "material set", "element"
	Expected int    // expected (1-based) number
	Provided int    // number found in file
}

// Error implements the error interface
func (o *OrderError) Error() string {
	return io.Sf("%ss must be inputted in order: expected %s %d, provided %s %d", o.What, o.What, o.Expected, o.What, o.Provided)
}

// ParseError reports a malformed line in the input file
type ParseError struct {
	Line int    // line number (1-based)
	Msg  string // description
}

// Error implements the error interface
func (o *ParseError) Error() string {
	return io.Sf("line %d: %s", o.Line, o.Msg)
}

// FileError reports files that cannot be opened or written
type FileError struct {
	Path  string // file path
	Err   error  // underlying error
	Write bool   // failed while writing
}

// Error implements the error interface
func (o *FileError) Error() string {
	if o.Write {
		return io.Sf("cannot write file %q: %v", o.Path, o.Err)
	}
	return io.Sf("cannot open file %q: %v", o.Path, o.Err)
}

// Unwrap returns the underlying error
func (o *FileError) Unwrap() error { return o.Err }
