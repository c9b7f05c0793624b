// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// OutcomeCategories lists, in presentation order, the outcome
// categories a histograms file reports.
var OutcomeCategories = []string{"completed", "aborted", "rejected", "unexpected"}

func isOutcomeCategory(name string) bool {
	for _, c := range OutcomeCategories {
		if c == name {
			return true
		}
	}
	return false
}

// A LabelCount is one entry of an outcome histogram. Label is the raw
// transaction label BenchBase writes, of the form "<name>/<index>"
// where index is the 1-based position of the transaction type in its
// workload's catalog.
type LabelCount struct {
	Label string
	Count int64
}

// Histograms is the content of one run's histograms file.
type Histograms struct {
	// Path is the file the histograms were read from.
	Path string

	// Counts maps each outcome category present in the file to its
	// entries, sorted by label. Categories absent from the file
	// have no entry.
	Counts map[string][]LabelCount

	// Ignored lists categories in the file that are not outcome
	// categories, sorted.
	Ignored []string
}

func (h *Histograms) Pos() (string, int) { return h.Path, 0 }

// ReadHistograms parses a histograms JSON document. Each outcome
// category maps either to an object with a "HISTOGRAM" member, as
// BenchBase writes it, or directly to a label → count object.
func ReadHistograms(r io.Reader, fileName string) (*Histograms, error) {
	var doc map[string]json.RawMessage
	if err := decodeJSON(r, &doc); err != nil {
		return nil, &SyntaxError{fileName, 0, err.Error()}
	}

	h := &Histograms{Path: fileName, Counts: make(map[string][]LabelCount)}
	for cat, raw := range doc {
		if !isOutcomeCategory(cat) {
			h.Ignored = append(h.Ignored, cat)
			continue
		}
		table, err := histogramTable(raw)
		if err != nil {
			return nil, &SyntaxError{fileName, 0, fmt.Sprintf("category %q: %v", cat, err)}
		}
		entries := make([]LabelCount, 0, len(table))
		for label, n := range table {
			entries = append(entries, LabelCount{label, n})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Label < entries[j].Label })
		h.Counts[cat] = entries
	}
	sort.Strings(h.Ignored)
	return h, nil
}

func histogramTable(raw json.RawMessage) (map[string]int64, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}
	if inner, ok := obj["HISTOGRAM"]; ok {
		raw = inner
	}
	var table map[string]int64
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, err
	}
	for label, n := range table {
		if n < 0 {
			return nil, fmt.Errorf("negative count %d for %q", n, label)
		}
	}
	return table, nil
}

func decodeJSON(r io.Reader, v interface{}) error {
	return json.NewDecoder(r).Decode(v)
}
