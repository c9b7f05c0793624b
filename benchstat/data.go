// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchstat averages the scalar throughput reported by the
// summary file of every run in a result folder.
package benchstat

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Adri029/geoc-perf/benchfmt"
	"github.com/Adri029/geoc-perf/benchmath"
	"github.com/Adri029/geoc-perf/benchproc"
)

// A Collection is a collection of run summaries, grouped by the
// result folder they were read from.
//
// A Collection is not safe for concurrent use.
type Collection struct {
	// Keys lists the keys in Metrics in the order they were first
	// declared or accumulated.
	Keys []benchproc.Key

	// Metrics holds the accumulated metrics for each key.
	Metrics map[benchproc.Key]*Metrics

	// Warn reports skipped files. If nil, warnings are printed
	// to stderr.
	Warn func(format string, args ...interface{})
}

// A Metrics holds the summary values of all runs of one experiment.
type Metrics struct {
	Sum    float64
	Count  int
	Values []float64 // in the order they were accumulated
}

// Mean returns the mean of the accumulated values. It returns a
// *benchmath.EmptyGroupError if nothing was accumulated.
func (m *Metrics) Mean(key benchproc.Key) (float64, error) {
	if m == nil || m.Count == 0 {
		return 0, &benchmath.EmptyGroupError{Key: string(key)}
	}
	return benchmath.Mean(m.Sum, m.Count), nil
}

// Summarize returns the descriptive statistics of the accumulated
// values.
func (m *Metrics) Summarize() benchmath.Summary {
	return benchmath.NewSample(append([]float64(nil), m.Values...)).Summarize()
}

// Format returns a textual formatting of "Mean ±StdDev%" using scaler.
// The percentage is right-aligned in four columns so that rows line
// up; a mean without a spread is padded to the same width.
func (m *Metrics) Format(scaler Scaler) string {
	s := m.Summarize()
	var mean string
	if scaler != nil {
		mean = scaler(s.Mean)
	} else {
		mean = fmt.Sprint(s.Mean)
	}
	diff := s.PctStdDevString()
	if diff == "" {
		return mean + "      "
	}
	return fmt.Sprintf("%s ±%4s", mean, diff)
}

// metrics returns the metrics with the given key from c, creating a
// new one if needed.
func (c *Collection) metrics(key benchproc.Key) *Metrics {
	if c.Metrics == nil {
		c.Metrics = make(map[benchproc.Key]*Metrics)
	}
	if m, ok := c.Metrics[key]; ok {
		return m
	}
	m := new(Metrics)
	c.Metrics[key] = m
	c.Keys = append(c.Keys, key)
	return m
}

func (c *Collection) warn(format string, args ...interface{}) {
	if c.Warn != nil {
		c.Warn(format, args...)
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

// Declare registers key without adding a value, so that a folder
// without any run is reported by Empty instead of being forgotten.
func (c *Collection) Declare(key benchproc.Key) {
	c.metrics(key)
}

// Accumulate adds value v to key.
func (c *Collection) Accumulate(key benchproc.Key, v float64) {
	m := c.metrics(key)
	m.Sum += v
	m.Count++
	m.Values = append(m.Values, v)
}

// AddSummary adds the value of run summary s to key.
func (c *Collection) AddSummary(key benchproc.Key, s *benchfmt.Summary) {
	c.Accumulate(key, s.Value)
}

// AddFiles reads every record from files and adds each run summary to
// the key given by its path. Other records and unparseable files are
// reported through Warn and skipped, and files whose key is not
// selected by keys are ignored. AddFiles returns the first I/O error
// from files, if any.
func (c *Collection) AddFiles(files *benchfmt.Files, keys *benchproc.Extractor) error {
	for files.Scan() {
		rec := files.Result()
		if err, ok := rec.(*benchfmt.SyntaxError); ok {
			c.warn("%v\n", err)
			continue
		}
		s, ok := rec.(*benchfmt.Summary)
		if !ok {
			path, _ := rec.Pos()
			c.warn("%s: not a summary file\n", path)
			continue
		}
		key, err := keys.Extract(s.Path)
		if err != nil {
			c.warn("%v\n", err)
			continue
		}
		if !keys.Selects(key) {
			continue
		}
		c.AddSummary(key, s)
	}
	return files.Err()
}

// AddDirs declares the key of every result folder in dirs and adds
// the run summaries ("*.summary.json") found directly in it. field
// selects the summary member to read, or DefaultSummaryField if "".
// Folders whose key is not selected by keys are not declared.
func (c *Collection) AddDirs(dirs []string, keys *benchproc.Extractor, field string) error {
	var paths []string
	for _, dir := range dirs {
		key, err := keys.ExtractDir(dir)
		if err != nil {
			return err
		}
		if !keys.Selects(key) {
			continue
		}
		c.Declare(key)
		matches, err := filepath.Glob(filepath.Join(dir, "*.summary.json"))
		if err != nil {
			return err
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	files := &benchfmt.Files{Paths: paths, Kind: benchfmt.KindSummary, SummaryField: field}
	return c.AddFiles(files, keys)
}

// Mean returns the mean summary value of key. It returns a
// *benchmath.EmptyGroupError if key has no values, either because it
// was only declared or because it was never seen.
func (c *Collection) Mean(key benchproc.Key) (float64, error) {
	return c.Metrics[key].Mean(key)
}

// Empty returns the declared keys that have no values, in
// declaration order.
func (c *Collection) Empty() []benchproc.Key {
	var empty []benchproc.Key
	for _, key := range c.Keys {
		if c.Metrics[key].Count == 0 {
			empty = append(empty, key)
		}
	}
	return empty
}
