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

// Dstat is the resource usage recorded by dstat alongside a run.
// Both series are indexed by sample number: dstat samples once per
// second, so Time is the 0-based sample index.
type Dstat struct {
	// Path is the file the log was read from.
	Path string

	// CPU is the total CPU usage in percent (100 - idle).
	CPU *Series

	// DiskKB is the amount of data written to disk per sample, in
	// KiB.
	DiskKB *Series
}

func (d *Dstat) Pos() (string, int) { return d.Path, 0 }

// ReadDstat parses a dstat CSV log. dstat prefixes the table with a
// few metadata rows and a row of column groups; the header is the
// first row that names both the "idl" and "writ" columns.
func ReadDstat(r io.Reader, fileName string) (*Dstat, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	idl, writ := -1, -1
	d := &Dstat{Path: fileName, CPU: new(Series), DiskKB: new(Series)}
	for {
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
		line, _ := cr.FieldPos(0)
		if idl < 0 {
			idl, writ = index(row, "idl"), index(row, "writ")
			if idl < 0 || writ < 0 {
				idl, writ = -1, -1
			}
			continue
		}
		if isBlank(row) {
			continue
		}
		if len(row) <= idl || len(row) <= writ {
			return nil, &SyntaxError{fileName, line, fmt.Sprintf("row has %d columns, need %d", len(row), max(idl, writ)+1)}
		}
		idle, err := strconv.ParseFloat(strings.TrimSpace(row[idl]), 64)
		if err != nil {
			return nil, &SyntaxError{fileName, line, fmt.Sprintf("idl: invalid number %q", row[idl])}
		}
		written, err := strconv.ParseFloat(strings.TrimSpace(row[writ]), 64)
		if err != nil {
			return nil, &SyntaxError{fileName, line, fmt.Sprintf("writ: invalid number %q", row[writ])}
		}
		t := float64(d.CPU.Len())
		d.CPU.Time = append(d.CPU.Time, t)
		d.CPU.Values = append(d.CPU.Values, 100-idle)
		d.DiskKB.Time = append(d.DiskKB.Time, t)
		d.DiskKB.Values = append(d.DiskKB.Values, written/1024)
	}
	if idl < 0 {
		return nil, &SyntaxError{fileName, 0, `no header row with "idl" and "writ" columns`}
	}
	return d, nil
}

func index(row []string, name string) int {
	for i, c := range row {
		if strings.TrimSpace(c) == name {
			return i
		}
	}
	return -1
}
