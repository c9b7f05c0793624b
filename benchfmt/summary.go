// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"encoding/json"
	"fmt"
	"io"
)

// DefaultSummaryField is the run summary field holding the mean
// throughput of a run.
const DefaultSummaryField = "Throughput (requests/second)"

// A Summary is the scalar extracted from one run's summary file.
type Summary struct {
	// Path is the file the summary was read from.
	Path string

	// Field is the name of the summary member Value was read from.
	Field string
	Value float64
}

func (s *Summary) Pos() (string, int) { return s.Path, 0 }

// ReadSummary parses a run summary JSON document and extracts the
// numeric member field. If field is "", DefaultSummaryField is used.
func ReadSummary(r io.Reader, fileName, field string) (*Summary, error) {
	if field == "" {
		field = DefaultSummaryField
	}
	var doc map[string]json.RawMessage
	if err := decodeJSON(r, &doc); err != nil {
		return nil, &SyntaxError{fileName, 0, err.Error()}
	}
	raw, ok := doc[field]
	if !ok {
		return nil, &SyntaxError{fileName, 0, fmt.Sprintf("missing field %q", field)}
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, &SyntaxError{fileName, 0, fmt.Sprintf("field %q: %s is not a number", field, raw)}
	}
	return &Summary{Path: fileName, Field: field, Value: v}, nil
}
