// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Series is an ordered sequence of (time, value) samples from one
// run. Time is non-decreasing. Time and Values have the same length.
type Series struct {
	Time   []float64
	Values []float64
}

// Len returns the number of samples in s.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Values)
}

// Clone returns a deep copy of s.
func (s *Series) Clone() *Series {
	return &Series{
		Time:   append([]float64(nil), s.Time...),
		Values: append([]float64(nil), s.Values...),
	}
}

// A SeriesFormat describes the layout of a results table. The
// various BenchBase post-processing scripts disagree on where the
// columns are, so the layout is configuration rather than code.
type SeriesFormat struct {
	// HeaderRows is the number of leading rows to skip.
	HeaderRows int `yaml:"header_rows"`

	// TimeColumn and ValueColumn are the 0-based columns holding
	// the sample time and the throughput.
	TimeColumn  int `yaml:"time_column"`
	ValueColumn int `yaml:"value_column"`

	// LatencyColumn is the 0-based column holding a percentile
	// latency, or -1 if the table has none of interest.
	LatencyColumn int `yaml:"latency_column"`
}

// ThroughputFormat reads the "results" table as the throughput
// charts do: time in column 0 and throughput in column 1.
var ThroughputFormat = SeriesFormat{HeaderRows: 1, TimeColumn: 0, ValueColumn: 1, LatencyColumn: -1}

// LatencyFormat reads the throughput in column 2 and the 95th
// percentile latency in column 9.
var LatencyFormat = SeriesFormat{HeaderRows: 1, TimeColumn: 0, ValueColumn: 2, LatencyColumn: 9}

// A Run is the time series content of one results table.
type Run struct {
	// Path is the file the run was read from.
	Path string

	Throughput *Series

	// Latency is nil if the format has no latency column.
	Latency *Series
}

func (r *Run) Pos() (string, int) { return r.Path, 0 }

// ReadRun parses a results table from r. fileName is used in error
// messages and recorded as the Run's Path.
func ReadRun(r io.Reader, fileName string, f SeriesFormat) (*Run, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	need := f.TimeColumn
	if f.ValueColumn > need {
		need = f.ValueColumn
	}
	if f.LatencyColumn > need {
		need = f.LatencyColumn
	}

	run := &Run{Path: fileName, Throughput: new(Series)}
	if f.LatencyColumn >= 0 {
		run.Latency = new(Series)
	}
	for rec := 1; ; rec++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, &SyntaxError{fileName, perr.Line, perr.Err.Error()}
			}
			return nil, err
		}
		if rec <= f.HeaderRows || isBlank(row) {
			continue
		}
		line, _ := cr.FieldPos(0)
		if len(row) <= need {
			return nil, &SyntaxError{fileName, line, fmt.Sprintf("row has %d columns, need %d", len(row), need+1)}
		}
		t, err := parseCell(row, f.TimeColumn)
		if err != nil {
			return nil, &SyntaxError{fileName, line, err.Error()}
		}
		v, err := parseCell(row, f.ValueColumn)
		if err != nil {
			return nil, &SyntaxError{fileName, line, err.Error()}
		}
		run.Throughput.Time = append(run.Throughput.Time, t)
		run.Throughput.Values = append(run.Throughput.Values, v)
		if run.Latency != nil {
			l, err := parseCell(row, f.LatencyColumn)
			if err != nil {
				return nil, &SyntaxError{fileName, line, err.Error()}
			}
			run.Latency.Time = append(run.Latency.Time, t)
			run.Latency.Values = append(run.Latency.Values, l)
		}
	}
	return run, nil
}

func parseCell(row []string, col int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
	if err != nil {
		return 0, fmt.Errorf("column %d: invalid number %q", col, row[col])
	}
	return v, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
