// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchseries averages the time series of repeated runs of
// the same experiment into one representative series.
package benchseries

import (
	"fmt"
	"os"

	"github.com/Adri029/geoc-perf/benchfmt"
	"github.com/Adri029/geoc-perf/benchmath"
	"github.com/Adri029/geoc-perf/benchproc"
)

// A Bucket accumulates the runs of one experiment.
//
// Runs are aligned by sample index, not by time: runs of the same
// experiment share their sampling cadence and start, so sample i of
// every run covers the same interval. Runs occasionally differ in
// length by a trailing partial interval; the bucket keeps only the
// prefix common to every run merged so far, so len(Sum) never exceeds
// the length of the shortest contributing run.
type Bucket struct {
	// Count is the number of runs merged into the bucket. It is at
	// least 1.
	Count int

	// Time is the time axis of the first run, truncated to len(Sum).
	Time []float64

	// Sum is the elementwise sum of the values of all runs.
	Sum []float64
}

// Len returns the number of samples in the bucket.
func (b *Bucket) Len() int {
	return len(b.Sum)
}

// Mean returns the elementwise mean of the runs in b.
func (b *Bucket) Mean() *benchfmt.Series {
	return &benchfmt.Series{
		Time:   append([]float64(nil), b.Time...),
		Values: benchmath.MeanVec(b.Sum, b.Count),
	}
}

// Options configures an Aggregator.
type Options struct {
	// Warn reports conditions that don't stop aggregation, such as
	// a run truncated to match a shorter one or a result file that
	// could not be parsed. If nil, warnings are printed to stderr.
	Warn func(format string, args ...interface{})
}

// An Aggregator merges time series into per-experiment buckets.
//
// An Aggregator is not safe for concurrent use.
type Aggregator struct {
	buckets map[benchproc.Key]*Bucket
	keys    []benchproc.Key // first-seen order

	warn func(format string, args ...interface{})
}

// NewAggregator returns an empty Aggregator. opts may be nil.
func NewAggregator(opts *Options) *Aggregator {
	a := &Aggregator{
		buckets: make(map[benchproc.Key]*Bucket),
		warn: func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format, args...)
		},
	}
	if opts != nil && opts.Warn != nil {
		a.warn = opts.Warn
	}
	return a
}

// Merge adds series s to the bucket for key.
//
// The first series merged under a key is copied into a new bucket.
// Each following series is added elementwise to the bucket after
// truncating both to the shorter of the two. Truncation discards
// trailing samples; it is reported as a warning, not an error. A
// first series whose time axis and values differ in length is
// truncated to the shorter of the two.
func (a *Aggregator) Merge(key benchproc.Key, s *benchfmt.Series) {
	b := a.buckets[key]
	if b == nil {
		n := min(len(s.Time), len(s.Values))
		if len(s.Time) != len(s.Values) {
			a.warn("%s: run has %d times for %d samples; truncating to %d\n", key, len(s.Time), len(s.Values), n)
		}
		b = &Bucket{Count: 1, Time: append([]float64(nil), s.Time[:n]...), Sum: append([]float64(nil), s.Values[:n]...)}
		a.buckets[key] = b
		a.keys = append(a.keys, key)
		return
	}

	n := len(b.Sum)
	if len(s.Values) != n {
		if len(s.Values) < n {
			n = len(s.Values)
		}
		a.warn("%s: run has %d samples, bucket has %d; truncating to %d\n", key, len(s.Values), len(b.Sum), n)
	}
	b.Time = b.Time[:n]
	b.Sum = b.Sum[:n]
	for i, v := range s.Values[:n] {
		b.Sum[i] += v
	}
	b.Count++
}

// Mean returns the elementwise mean series of the runs merged under
// key. It returns a *benchmath.EmptyGroupError if nothing was merged
// under key.
func (a *Aggregator) Mean(key benchproc.Key) (*benchfmt.Series, error) {
	b := a.buckets[key]
	if b == nil {
		return nil, &benchmath.EmptyGroupError{Key: string(key)}
	}
	return b.Mean(), nil
}

// Bucket returns the bucket for key. The caller must not modify it.
func (a *Aggregator) Bucket(key benchproc.Key) (*Bucket, bool) {
	b, ok := a.buckets[key]
	return b, ok
}

// Keys returns the keys of all buckets in the order they were first
// merged.
func (a *Aggregator) Keys() []benchproc.Key {
	return append([]benchproc.Key(nil), a.keys...)
}

// Len returns the number of buckets.
func (a *Aggregator) Len() int {
	return len(a.keys)
}

// AddFiles reads every record from files and merges metric m of each
// into the bucket given by its path. Files that cannot be parsed,
// whose path has no key, or that don't carry metric m are reported
// through the warning function and skipped. Files whose key is not
// selected by keys are skipped silently. AddFiles returns the first
// I/O error from files, if any.
func (a *Aggregator) AddFiles(files *benchfmt.Files, keys *benchproc.Extractor, m Metric) error {
	for files.Scan() {
		rec := files.Result()
		if err, ok := rec.(*benchfmt.SyntaxError); ok {
			// Non-fatal result parse error. Warn
			// but keep going.
			a.warn("%v\n", err)
			continue
		}
		path, _ := rec.Pos()
		key, err := keys.Extract(path)
		if err != nil {
			a.warn("%v\n", err)
			continue
		}
		if !keys.Selects(key) {
			continue
		}
		s, err := m.Series(rec)
		if err != nil {
			a.warn("%s: %v\n", path, err)
			continue
		}
		a.Merge(key, s)
	}
	return files.Err()
}
