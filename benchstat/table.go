// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"github.com/Adri029/geoc-perf/benchmath"
	"github.com/Adri029/geoc-perf/benchproc"
	"github.com/aclements/go-gg/table"
)

// A Table is a table of per-folder results for one metric.
type Table struct {
	Metric string
	Unit   string
	Rows   []*Row
}

// A Row is a table row for a single result folder.
type Row struct {
	Key     benchproc.Key
	Metrics *Metrics
	Summary benchmath.Summary
	Scaler  Scaler
}

// Table returns a table of the non-empty keys of c, in the order they
// were first seen. metric names the summary field and unit is its
// unit, as understood by NewScaler.
func (c *Collection) Table(metric, unit string) *Table {
	t := &Table{Metric: metric, Unit: unit}
	for _, key := range c.Keys {
		m := c.Metrics[key]
		if m.Count == 0 {
			continue
		}
		s := m.Summarize()
		t.Rows = append(t.Rows, &Row{
			Key:     key,
			Metrics: m,
			Summary: s,
			Scaler:  NewScaler(s.Mean, unit),
		})
	}
	return t
}

// Grouping returns t as a single-group go-gg Grouping with columns
// "key", "database", "workload", "variant", "runs", "mean", and
// "stddev".
func (t *Table) Grouping() table.Grouping {
	var keys, dbs, workloads, variants []string
	var runs []int
	var means, stddevs []float64
	for _, row := range t.Rows {
		keys = append(keys, string(row.Key))
		dbs = append(dbs, row.Key.Database())
		workloads = append(workloads, row.Key.Workload())
		variants = append(variants, row.Key.Variant())
		runs = append(runs, row.Summary.N)
		means = append(means, row.Summary.Mean)
		stddevs = append(stddevs, row.Summary.StdDev)
	}
	if len(t.Rows) == 0 {
		return new(table.Table)
	}
	var tb table.Builder
	tb.Add("key", keys)
	tb.Add("database", dbs)
	tb.Add("workload", workloads)
	tb.Add("variant", variants)
	tb.Add("runs", runs)
	tb.Add("mean", means)
	tb.Add("stddev", stddevs)
	return tb.Done()
}
