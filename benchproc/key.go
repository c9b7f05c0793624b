// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import "strings"

// Separator joins the path segments of a Key.
const Separator = ", "

// A Key is an immutable grouping identity derived from the trailing
// directory segments of a result file's path. Two Keys are == if
// they were built from the same segments in the same order, so Keys
// can be used directly as map keys.
type Key string

// KeyOf returns the Key made of fields, in order.
func KeyOf(fields ...string) Key {
	return Key(strings.Join(fields, Separator))
}

// IsZero reports whether k is the empty Key.
func (k Key) IsZero() bool {
	return k == ""
}

// Fields returns the segments that make up k, in left-to-right order.
func (k Key) Fields() []string {
	if k.IsZero() {
		return nil
	}
	return strings.Split(string(k), Separator)
}

// Keys name the trailing directories of a result path, so the roles
// of their segments are counted from the end: the last segment is the
// variant, the one before it the workload, and the one before that
// the database. A key built with a smaller depth lacks the leading
// roles.

// Database returns the third-to-last segment of k, or "" if k has
// fewer than three segments.
func (k Key) Database() string {
	return k.fromEnd(3)
}

// Workload returns the second-to-last segment of k, such as "tpcc"
// or "geoc", or "" if k has fewer than two segments.
func (k Key) Workload() string {
	return k.fromEnd(2)
}

// Variant returns the last segment of k, such as "1wh-10term".
func (k Key) Variant() string {
	return k.fromEnd(1)
}

// fromEnd returns the n'th segment of k counting from the end, or ""
// if k has fewer than n segments.
func (k Key) fromEnd(n int) string {
	fs := k.Fields()
	if len(fs) < n {
		return ""
	}
	return fs[len(fs)-n]
}

func (k Key) String() string {
	if k.IsZero() {
		return "<zero>"
	}
	return string(k)
}
