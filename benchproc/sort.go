// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Less reports whether k comes before o. Keys are compared segment by
// segment; segments that start with a number (like "2wh-20term") are
// compared numerically so that "10wh" sorts after "2wh".
func (k Key) Less(o Key) bool {
	return less(k.Fields(), o.Fields())
}

func less(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] == b[i] {
			continue
		}
		if cmp := compareSegment(a[i], b[i]); cmp != 0 {
			return cmp < 0
		}
		// Numerically equal but textually different, as in
		// "1wh" and "01wh". Fall back to the strings so the
		// order is total.
		return a[i] < b[i]
	}
	return len(a) < len(b)
}

// SortKeys sorts a slice of Keys using Key.Less.
func SortKeys(keys []Key) {
	fields := make(map[Key][]string, len(keys))
	for _, k := range keys {
		fields[k] = k.Fields()
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return less(fields[keys[i]], fields[keys[j]])
	})
}

func compareSegment(a, b string) int {
	aa, erra := parseNum(a)
	bb, errb := parseNum(b)
	if erra == nil && errb == nil {
		// Sort numerically, and put NaNs after other values.
		if aa < bb || (!math.IsNaN(aa) && math.IsNaN(bb)) {
			return -1
		}
		if aa > bb || (math.IsNaN(aa) && !math.IsNaN(bb)) {
			return 1
		}
		return 0
	}
	if erra != nil && errb != nil {
		return strings.Compare(a, b)
	}
	// Put numbers before non-numbers.
	if erra == nil {
		return -1
	}
	return 1
}

const numPrefixes = `KMGTPEZY`

var numRe = regexp.MustCompile(`^([0-9.]+)([k` + numPrefixes + `]i?)?`)

// parseNum is a fuzzy number parser for the leading number of a
// segment. It supports SI prefixes, so "1k-clients" parses as 1000.
func parseNum(x string) (float64, error) {
	v, err := strconv.ParseFloat(x, 64)
	if err == nil {
		return v, nil
	}

	subs := numRe.FindStringSubmatch(x)
	if subs != nil {
		v, err := strconv.ParseFloat(subs[1], 64)
		if err == nil {
			exp := 0
			if len(subs[2]) > 0 {
				pre := subs[2][0]
				if pre == 'k' {
					pre = 'K'
				}
				exp = 1 + strings.IndexByte(numPrefixes, pre)
			}
			if strings.HasSuffix(subs[2], "i") {
				return v * math.Pow(1024, float64(exp)), nil
			}
			return v * math.Pow(1000, float64(exp)), nil
		}
	}

	return 0, strconv.ErrSyntax
}
