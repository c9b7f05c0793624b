// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"os"
)

// A Files reads result records from a sequence of input files.
//
// Each file yields exactly one Record. A file that cannot be parsed
// yields a *SyntaxError record and reading continues with the next
// file; a file that cannot be opened or read stops the sequence.
type Files struct {
	// Paths is the list of file names to read in. A path listed
	// more than once is read only the first time, since reading a
	// run twice would count it twice.
	Paths []string

	// Kind selects how every file is parsed. KindAuto chooses
	// per file using KindOf.
	Kind Kind

	// Format is the results table layout for KindRun files. If
	// nil, ThroughputFormat is used.
	Format *SeriesFormat

	// SummaryField is the summary member read from KindSummary
	// files. If "", DefaultSummaryField is used.
	SummaryField string

	// inputs is the sequence of remaining inputs, or nil if this
	// Files has not started yet. Note that this distinguishes nil
	// from length 0.
	inputs []string

	rec Record
	err error
}

// init does first-use initialization of f.
func (f *Files) init() {
	f.inputs = []string{}
	seen := make(map[string]bool)
	for _, path := range f.Paths {
		if seen[path] {
			continue
		}
		seen[path] = true
		f.inputs = append(f.inputs, path)
	}
}

// Scan advances to the next file in the sequence and reports whether
// a record was read. The caller should use the Result method to get
// the record. If Scan reaches the end of the file sequence, or if an
// I/O error occurs, it returns false. In this case, the caller should
// use the Err method to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}
	if f.inputs == nil {
		f.init()
	}
	if len(f.inputs) == 0 {
		f.rec = nil
		return false
	}
	path := f.inputs[0]
	f.inputs = f.inputs[1:]

	file, err := os.Open(path)
	if err != nil {
		f.err = err
		return false
	}
	defer file.Close()

	rec, err := f.read(file, path)
	if err != nil {
		if serr, ok := err.(*SyntaxError); ok {
			f.rec = serr
			return true
		}
		f.err = err
		return false
	}
	f.rec = rec
	return true
}

func (f *Files) read(file *os.File, path string) (Record, error) {
	kind := f.Kind
	if kind == KindAuto {
		kind = KindOf(path)
	}
	switch kind {
	case KindRun:
		format := ThroughputFormat
		if f.Format != nil {
			format = *f.Format
		}
		return ReadRun(file, path, format)
	case KindHistograms:
		return ReadHistograms(file, path)
	case KindSummary:
		return ReadSummary(file, path, f.SummaryField)
	case KindDstat:
		return ReadDstat(file, path)
	}
	return nil, &SyntaxError{path, 0, "unrecognized result file name"}
}

// Result returns the record that was just read by Scan.
func (f *Files) Result() Record {
	return f.rec
}

// Err returns the I/O error that stopped Scan, if any.
// If Scan stopped because it read each file to completion,
// or if Scan has not yet returned false, Err returns nil.
func (f *Files) Err() error {
	return f.err
}
