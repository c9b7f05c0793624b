// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// Table returns the mean series of every bucket as a go-gg Grouping
// with one group per key, in first-seen order. Each group has
// columns "key", "time", "mean", and "runs", with one row per
// sample.
func (a *Aggregator) Table() table.Grouping {
	var gb table.GroupingBuilder
	for _, key := range a.keys {
		b := a.buckets[key]
		mean := b.Mean()
		n := mean.Len()
		var tb table.Builder
		tb.Add("key", slice.Repeat(string(key), n))
		tb.Add("time", mean.Time)
		tb.Add("mean", mean.Values)
		tb.Add("runs", slice.Repeat(b.Count, n))
		gb.Add(table.RootGroupID.Extend(string(key)), tb.Done())
	}
	return gb.Done()
}

// WriteCSV writes the mean series of every bucket to w as long-form
// CSV with the header "key,time,mean".
func (a *Aggregator) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"key", "time", "mean"})
	for _, key := range a.keys {
		mean := a.buckets[key].Mean()
		for i, t := range mean.Time {
			cw.Write([]string{string(key), strof(t), strof(mean.Values[i])})
		}
	}
	cw.Flush()
	return cw.Error()
}

func strof(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
