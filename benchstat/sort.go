// Copyright 2018 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"sort"
)

// A SortFunc abstracts the sorting interface to compare two rows of a Table
type SortFunc func(*Table, int, int) bool

// ByKey sorts tables by key, comparing numeric key segments such as
// "10term" numerically.
func ByKey(t *Table, i, j int) bool {
	return t.Rows[i].Key.Less(t.Rows[j].Key)
}

// ByMean sorts tables by the mean summary value.
func ByMean(t *Table, i, j int) bool {
	return t.Rows[i].Summary.Mean < t.Rows[j].Summary.Mean
}

// ByRuns sorts tables by the number of runs.
func ByRuns(t *Table, i, j int) bool {
	return t.Rows[i].Summary.N < t.Rows[j].Summary.N
}

// SortReverse returns a SortFunc that is the reverse of the input SortFunc
func SortReverse(sortFunc SortFunc) SortFunc {
	return func(t *Table, i, j int) bool { return sortFunc(t, j, i) }
}

// SortTable sorts a Table t (in place) by the given SortFunc
func SortTable(t *Table, sortFunc SortFunc) {
	sort.SliceStable(t.Rows, func(i, j int) bool { return sortFunc(t, i, j) })
}
