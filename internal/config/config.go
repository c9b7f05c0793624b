// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the optional experiment description shared by
// the commands: how deep result keys go, where the columns of a
// results table are, which summary field to read, and the
// transaction catalogs of each workload.
package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/Adri029/geoc-perf/benchfmt"
	"github.com/Adri029/geoc-perf/benchhist"
	"github.com/Adri029/geoc-perf/benchproc"
	"gopkg.in/yaml.v3"
)

// Config is an experiment description. Fields absent from the file
// keep their defaults.
type Config struct {
	// Depth is the number of directory levels in a result key.
	Depth int `yaml:"depth"`

	// SummaryField is the run summary member to average.
	SummaryField string `yaml:"summary_field"`

	// Throughput and Latency are the results table layouts used
	// for the throughput and latency metrics.
	Throughput benchfmt.SeriesFormat `yaml:"throughput"`
	Latency    benchfmt.SeriesFormat `yaml:"latency"`

	// Catalogs maps a workload name to its transaction names, in
	// label order. Entries replace or extend the built-in tpcc
	// and geoc catalogs.
	Catalogs map[string][]string `yaml:"catalogs"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Depth:        benchproc.DefaultDepth,
		SummaryField: benchfmt.DefaultSummaryField,
		Throughput:   benchfmt.ThroughputFormat,
		Latency:      benchfmt.LatencyFormat,
	}
}

// Load reads the configuration file at path. If path is "", Load
// returns Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse parses a YAML configuration on top of Default().
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.Depth < 1 {
		return fmt.Errorf("depth must be at least 1, got %d", c.Depth)
	}
	if c.SummaryField == "" {
		return fmt.Errorf("summary_field must not be empty")
	}
	for name, f := range map[string]benchfmt.SeriesFormat{"throughput": c.Throughput, "latency": c.Latency} {
		if f.HeaderRows < 0 || f.TimeColumn < 0 || f.ValueColumn < 0 {
			return fmt.Errorf("%s: negative row or column", name)
		}
	}
	for workload, names := range c.Catalogs {
		if len(names) == 0 {
			return fmt.Errorf("catalog %q has no transaction types", workload)
		}
	}
	return nil
}

// Extractor returns the key extractor for c.
func (c *Config) Extractor() *benchproc.Extractor {
	return &benchproc.Extractor{Depth: c.Depth}
}

// Keys is like Extractor, but the extractor selects only keys matching
// the filter expression query. "" and "*" select every key.
func (c *Config) Keys(query string) (*benchproc.Extractor, error) {
	x := c.Extractor()
	if query == "" || query == "*" {
		return x, nil
	}
	f, err := benchproc.NewFilter(query)
	if err != nil {
		return nil, err
	}
	x.Filter = f
	return x, nil
}

// CatalogList returns the built-in catalogs, overridden and extended
// by c.Catalogs, ordered by workload name.
func (c *Config) CatalogList() []*benchhist.Catalog {
	byName := make(map[string]*benchhist.Catalog)
	for _, cat := range benchhist.DefaultCatalogs() {
		byName[cat.Workload()] = cat
	}
	for workload, names := range c.Catalogs {
		byName[workload] = benchhist.NewCatalog(workload, names...)
	}
	var out []*benchhist.Catalog
	for _, cat := range byName {
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Workload() < out[j].Workload() })
	return out
}
