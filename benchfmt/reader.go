// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt reads the result files BenchBase writes for a
// single run: the per-second results table, the outcome histograms,
// the run summary, and the dstat resource log recorded next to them.
package benchfmt

import (
	"fmt"
	"strings"
)

// A Record is a single parsed result file. It is one of *Run,
// *Histograms, *Summary, *Dstat, or *SyntaxError.
type Record interface {
	// Pos returns the file name the record was read from and, for
	// errors, the line the error refers to (0 if unknown).
	Pos() (fileName string, line int)
}

// A SyntaxError represents a problem parsing a result file. It is
// not fatal to a sequence of files: the file it refers to is
// skipped and reading continues with the next one.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (s *SyntaxError) Error() string {
	if s.Line == 0 {
		return fmt.Sprintf("%s: %s", s.FileName, s.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", s.FileName, s.Line, s.Msg)
}

// A Kind identifies which BenchBase output a file holds.
type Kind int

const (
	// KindAuto selects the kind from the file name; see KindOf.
	KindAuto Kind = iota
	KindRun
	KindHistograms
	KindSummary
	KindDstat
)

var kindNames = []string{"auto", "run", "histograms", "summary", "dstat"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// KindOf guesses the kind of a result file from its name, following
// BenchBase's naming: "*histograms.json", "*summary.json", and CSV
// result tables. It returns KindAuto if the name is not recognized.
// dstat logs are also CSV and must be requested explicitly.
func KindOf(path string) Kind {
	switch {
	case strings.HasSuffix(path, "histograms.json"):
		return KindHistograms
	case strings.HasSuffix(path, "summary.json"):
		return KindSummary
	case strings.HasSuffix(path, ".csv"):
		return KindRun
	}
	return KindAuto
}
