// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Adri029/geoc-perf/benchfmt"
	"github.com/Adri029/geoc-perf/benchhist"
	"github.com/Adri029/geoc-perf/benchproc"
	"github.com/google/go-cmp/cmp"
)

func TestLoadDefault(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), c); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	var workloads []string
	for _, cat := range c.CatalogList() {
		workloads = append(workloads, cat.Workload())
	}
	if diff := cmp.Diff([]string{"geoc", "tpcc"}, workloads); diff != "" {
		t.Errorf("catalogs mismatch (-want +got):\n%s", diff)
	}
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
depth: 2
latency:
  latency_column: 7
catalogs:
  ycsb: [ReadRecord, UpdateRecord]
  tpcc: [NewOrder]
`))
	if err != nil {
		t.Fatal(err)
	}
	if c.Depth != 2 || c.Extractor().Depth != 2 {
		t.Errorf("depth = %d, want 2", c.Depth)
	}
	if c.SummaryField != benchfmt.DefaultSummaryField {
		t.Errorf("summary field = %q, want default", c.SummaryField)
	}
	want := benchfmt.LatencyFormat
	want.LatencyColumn = 7
	if diff := cmp.Diff(want, c.Latency); diff != "" {
		t.Errorf("latency format mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(benchfmt.ThroughputFormat, c.Throughput); diff != "" {
		t.Errorf("throughput format mismatch (-want +got):\n%s", diff)
	}

	cats := c.CatalogList()
	got := make(map[string][]string)
	for _, cat := range cats {
		got[cat.Workload()] = cat.Names()
	}
	if diff := cmp.Diff([]string{"NewOrder"}, got["tpcc"]); diff != "" {
		t.Errorf("tpcc catalog mismatch (-want +got):\n%s", diff)
	}
	if len(got["geoc"]) != 9 || len(got["ycsb"]) != 2 {
		t.Errorf("catalogs = %v", got)
	}
}

func TestParseErrors(t *testing.T) {
	for _, data := range []string{
		"depth: 0",
		"depth: [1]",
		"summary_field: ''",
		"throughput: {value_column: -1}",
		"catalogs: {ycsb: []}",
	} {
		if _, err := Parse([]byte(data)); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", data)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	if err := os.WriteFile(path, []byte("summary_field: Goodput (requests/second)\n"), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.SummaryField != "Goodput (requests/second)" {
		t.Errorf("summary field = %q", c.SummaryField)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of missing file succeeded, want error")
	}
}

func TestDepthCatalog(t *testing.T) {
	c, err := Parse([]byte("depth: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	key, err := c.Extractor().Extract(filepath.Join("results", "postgres", "tpcc", "1wh-10term", "run1-histograms.json"))
	if err != nil {
		t.Fatal(err)
	}
	a := benchhist.NewAggregator(nil, c.CatalogList()...)
	if cat, err := a.Catalog(key); err != nil || cat.Workload() != "tpcc" {
		t.Errorf("Catalog(%s): got %v, want the tpcc catalog", key, err)
	}
}

func TestKeys(t *testing.T) {
	c := Default()
	for _, q := range []string{"", "*"} {
		x, err := c.Keys(q)
		if err != nil || x.Filter != nil {
			t.Errorf("Keys(%q) = %v, %v, want an unfiltered extractor", q, x, err)
		}
	}
	x, err := c.Keys("workload:geoc")
	if err != nil {
		t.Fatal(err)
	}
	if x.Selects(benchproc.KeyOf("postgres", "tpcc", "1wh-10term")) || !x.Selects(benchproc.KeyOf("postgres", "geoc", "1wh-10term")) {
		t.Errorf("Keys(workload:geoc) selects the wrong keys")
	}
	if _, err := c.Keys("workload:(tpcc"); err == nil {
		t.Error("Keys with malformed filter succeeded, want error")
	}
}
