// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchhist

import (
	"github.com/Adri029/geoc-perf/benchmath"
	"github.com/aclements/go-gg/table"
)

// Table returns the breakdown of every key as a long-form go-gg
// Grouping with one group per key, in first-seen order. Each group
// has one row per transaction type and category, with columns "key",
// "database", "workload", "variant", "transaction", "category",
// "count", and "percent".
func (a *Aggregator) Table() table.Grouping {
	var gb table.GroupingBuilder
	for _, key := range a.keys {
		c := a.counts[key]
		pct, _ := benchmath.Percentages(c.ByCategory[:]...)

		var keys, dbs, workloads, variants, txns, cats []string
		var counts []int64
		var pcts []float64
		for i, name := range c.Catalog.names {
			for _, cat := range Categories {
				keys = append(keys, string(key))
				dbs = append(dbs, key.Database())
				workloads = append(workloads, key.Workload())
				variants = append(variants, key.Variant())
				txns = append(txns, name)
				cats = append(cats, cat.String())
				counts = append(counts, c.ByCategory[cat][i])
				pcts = append(pcts, pct[cat][i])
			}
		}

		var tb table.Builder
		tb.Add("key", keys)
		tb.Add("database", dbs)
		tb.Add("workload", workloads)
		tb.Add("variant", variants)
		tb.Add("transaction", txns)
		tb.Add("category", cats)
		tb.Add("count", counts)
		tb.Add("percent", pcts)
		gb.Add(table.RootGroupID.Extend(string(key)), tb.Done())
	}
	return gb.Done()
}

// WideTable is like Table, but has one row per transaction type with
// a percentage column for each category, named after it, instead of
// the "category", "count", and "percent" columns.
func (a *Aggregator) WideTable() table.Grouping {
	g := a.Table()
	if len(g.Tables()) == 0 {
		return g
	}
	return table.Pivot(table.Remove(g, "count"), "category", "percent")
}
