// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchhist accumulates BenchBase outcome histograms into
// per-transaction counts and turns them into percentage breakdowns
// of how each transaction type's attempts ended.
package benchhist

import (
	"fmt"
	"os"

	"github.com/Adri029/geoc-perf/benchfmt"
	"github.com/Adri029/geoc-perf/benchmath"
	"github.com/Adri029/geoc-perf/benchproc"
)

// An UnknownWorkloadError reports a key whose workload has no
// transaction catalog.
type UnknownWorkloadError struct {
	Key benchproc.Key
}

func (e *UnknownWorkloadError) Error() string {
	return fmt.Sprintf("%s: no transaction catalog for workload %q", e.Key, e.Key.Workload())
}

// Counts holds the outcome counts accumulated for one key.
type Counts struct {
	Catalog *Catalog

	// Files is the number of histograms files merged.
	Files int

	// ByCategory[c][i] is the number of attempts of transaction
	// type i with outcome c, summed over all files.
	ByCategory [4][]int64
}

// Of returns the count vector of category c.
func (c *Counts) Of(cat Category) []int64 {
	return c.ByCategory[cat]
}

// Total returns the number of attempts of transaction type i.
func (c *Counts) Total(i int) int64 {
	var n int64
	for _, v := range c.ByCategory {
		n += v[i]
	}
	return n
}

// A Breakdown is the outcome percentages of one key.
type Breakdown struct {
	Catalog *Catalog

	// Pct[c][i] is the percentage of attempts of transaction type
	// i that ended with outcome c. For each i the percentages sum
	// to 100, unless i is in Zero.
	Pct [4][]float64

	// Zero lists the transaction types with no attempts at all.
	// Their percentages are all 0.
	Zero []int
}

// Options configures an Aggregator.
type Options struct {
	// Warn reports skipped files and transaction types without
	// any outcomes. If nil, warnings are printed to stderr.
	Warn func(format string, args ...interface{})
}

// An Aggregator sums outcome histograms per key.
//
// The counts of a key don't depend on the order in which its files
// are added. An Aggregator is not safe for concurrent use.
type Aggregator struct {
	catalogs map[string]*Catalog
	counts   map[benchproc.Key]*Counts
	keys     []benchproc.Key

	warn func(format string, args ...interface{})
}

// NewAggregator returns an Aggregator that resolves the transaction
// labels of each key using the catalog of the key's workload. If no
// catalogs are given, DefaultCatalogs is used. opts may be nil.
func NewAggregator(opts *Options, catalogs ...*Catalog) *Aggregator {
	if len(catalogs) == 0 {
		catalogs = DefaultCatalogs()
	}
	a := &Aggregator{
		catalogs: make(map[string]*Catalog),
		counts:   make(map[benchproc.Key]*Counts),
		warn: func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format, args...)
		},
	}
	for _, c := range catalogs {
		a.catalogs[c.Workload()] = c
	}
	if opts != nil && opts.Warn != nil {
		a.warn = opts.Warn
	}
	return a
}

// Catalog returns the catalog used for key.
func (a *Aggregator) Catalog(key benchproc.Key) (*Catalog, error) {
	c, ok := a.catalogs[key.Workload()]
	if !ok {
		return nil, &UnknownWorkloadError{key}
	}
	return c, nil
}

// entry returns the counts of key, creating zeroed counts if needed.
func (a *Aggregator) entry(key benchproc.Key) (*Counts, error) {
	if c, ok := a.counts[key]; ok {
		return c, nil
	}
	cat, err := a.Catalog(key)
	if err != nil {
		return nil, err
	}
	c := &Counts{Catalog: cat}
	for i := range c.ByCategory {
		c.ByCategory[i] = make([]int64, cat.Len())
	}
	a.counts[key] = c
	a.keys = append(a.keys, key)
	return c, nil
}

// Merge adds counts, indexed by transaction type, to the outcome
// category cat of key. counts must have one entry per transaction
// type of key's catalog, and none may be negative. On error the
// counts of key are unchanged.
func (a *Aggregator) Merge(key benchproc.Key, cat Category, counts []int64) error {
	if cat < 0 || int(cat) >= len(Categories) {
		return fmt.Errorf("%s: unknown outcome %s", key, cat)
	}
	c, err := a.Catalog(key)
	if err != nil {
		return err
	}
	if len(counts) != c.Len() {
		return fmt.Errorf("%s: %d counts for %d transaction types", key, len(counts), c.Len())
	}
	for i, v := range counts {
		if v < 0 {
			return fmt.Errorf("%s: %s: negative count %d for %s", key, cat, v, c.Name(i))
		}
	}
	e, err := a.entry(key)
	if err != nil {
		return err
	}
	add(e.ByCategory[cat], counts)
	return nil
}

func add(dst, src []int64) {
	for i, v := range src {
		dst[i] += v
	}
}

// AddHistograms merges every category of h into key. All labels are
// resolved before anything is merged, so a file with a malformed
// label leaves the counts unchanged. Categories missing from h count
// as empty.
func (a *Aggregator) AddHistograms(key benchproc.Key, h *benchfmt.Histograms) error {
	cat, err := a.Catalog(key)
	if err != nil {
		return err
	}
	var vecs [4][]int64
	for _, c := range Categories {
		vec := make([]int64, cat.Len())
		for _, lc := range h.Counts[c.String()] {
			i, err := cat.IndexOf(lc.Label)
			if err != nil {
				return fmt.Errorf("%s: %s: %w", h.Path, c, err)
			}
			if lc.Count < 0 {
				return fmt.Errorf("%s: %s: negative count %d for %s", h.Path, c, lc.Count, lc.Label)
			}
			vec[i] += lc.Count
		}
		vecs[c] = vec
	}

	e, err := a.entry(key)
	if err != nil {
		return err
	}
	for c, vec := range vecs {
		add(e.ByCategory[c], vec)
	}
	e.Files++
	return nil
}

// AddFiles reads every record from files and merges each histograms
// record into the key given by its path. Other records, unparseable
// files, and files with malformed labels are reported through the
// warning function and skipped. Files whose key is not selected by
// keys are skipped silently. AddFiles returns the first I/O error
// from files, if any.
func (a *Aggregator) AddFiles(files *benchfmt.Files, keys *benchproc.Extractor) error {
	for files.Scan() {
		rec := files.Result()
		if err, ok := rec.(*benchfmt.SyntaxError); ok {
			a.warn("%v\n", err)
			continue
		}
		h, ok := rec.(*benchfmt.Histograms)
		if !ok {
			path, _ := rec.Pos()
			a.warn("%s: not a histograms file\n", path)
			continue
		}
		key, err := keys.Extract(h.Path)
		if err != nil {
			a.warn("%v\n", err)
			continue
		}
		if !keys.Selects(key) {
			continue
		}
		if err := a.AddHistograms(key, h); err != nil {
			a.warn("%v\n", err)
		}
	}
	return files.Err()
}

// Counts returns the counts accumulated for key. The caller must not
// modify them.
func (a *Aggregator) Counts(key benchproc.Key) (*Counts, bool) {
	c, ok := a.counts[key]
	return c, ok
}

// Keys returns every key with counts, in the order they were first
// merged.
func (a *Aggregator) Keys() []benchproc.Key {
	return append([]benchproc.Key(nil), a.keys...)
}

// Percentages returns the outcome breakdown of key. Transaction types
// with no attempts are reported through the warning function. It
// returns a *benchmath.EmptyGroupError if nothing was merged into
// key.
func (a *Aggregator) Percentages(key benchproc.Key) (*Breakdown, error) {
	c, ok := a.counts[key]
	if !ok {
		return nil, &benchmath.EmptyGroupError{Key: string(key)}
	}
	pcts, zero := benchmath.Percentages(c.ByCategory[:]...)
	b := &Breakdown{Catalog: c.Catalog, Zero: zero}
	copy(b.Pct[:], pcts)
	for _, i := range zero {
		a.warn("%s: %s has no outcomes\n", key, c.Catalog.Name(i))
	}
	return b, nil
}
