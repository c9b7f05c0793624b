// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchhist

import "fmt"

// A Category is the outcome of a transaction attempt.
type Category int

const (
	Completed Category = iota
	Aborted
	Rejected
	Unexpected
)

// Categories lists every Category in presentation order.
var Categories = []Category{Completed, Aborted, Rejected, Unexpected}

var categoryNames = []string{"completed", "aborted", "rejected", "unexpected"}

// String returns the name of c as it appears in histograms files.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory returns the Category named s.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if name == s {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown outcome category %q", s)
}
