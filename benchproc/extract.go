// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultDepth is the number of directory levels in a result Key:
// database, workload, and test variant.
const DefaultDepth = 3

// A MalformedPathError reports a result path that does not have
// enough directory segments to form a Key.
type MalformedPathError struct {
	Path  string
	Depth int // required number of directory segments
	Msg   string
}

func (e *MalformedPathError) Error() string {
	return fmt.Sprintf("%s: %s (need %d directory levels)", e.Path, e.Msg, e.Depth)
}

// An Extractor computes Keys from result paths.
//
// The zero value is ready to use and extracts DefaultDepth segments.
type Extractor struct {
	// Depth is the number of trailing directory segments that form
	// a Key. If zero, DefaultDepth is used.
	Depth int

	// Filter, if non-nil, restricts the Keys that consumers of the
	// Extractor aggregate. See Selects.
	Filter *Filter
}

// Selects reports whether results under k should be aggregated.
func (x *Extractor) Selects(k Key) bool {
	return x == nil || x.Filter.Match(k)
}

func (x *Extractor) depth() int {
	if x == nil || x.Depth <= 0 {
		return DefaultDepth
	}
	return x.Depth
}

// Extract returns the Key of the result file at path: its last Depth
// directory segments, joined in left-to-right order. The file name
// itself is not part of the Key, so every run stored in the same
// directory maps to the same Key.
func (x *Extractor) Extract(path string) (Key, error) {
	segs := splitPath(path)
	if len(segs) > 0 {
		// Drop the file name.
		segs = segs[:len(segs)-1]
	}
	return x.key(path, segs)
}

// ExtractDir is like Extract, but path names a directory whose own
// name is the last segment of the Key.
func (x *Extractor) ExtractDir(path string) (Key, error) {
	return x.key(path, splitPath(path))
}

func (x *Extractor) key(path string, dirs []string) (Key, error) {
	depth := x.depth()
	if len(dirs) < depth {
		return "", &MalformedPathError{path, depth, fmt.Sprintf("found %d directory levels", len(dirs))}
	}
	dirs = dirs[len(dirs)-depth:]
	for _, d := range dirs {
		if d == "." || d == ".." {
			return "", &MalformedPathError{path, depth, fmt.Sprintf("relative segment %q cannot be part of a key", d)}
		}
		if strings.Contains(d, Separator) {
			return "", &MalformedPathError{path, depth, fmt.Sprintf("segment %q contains key separator", d)}
		}
	}
	return KeyOf(dirs...), nil
}

// splitPath returns the non-empty segments of the cleaned path.
func splitPath(path string) []string {
	path = filepath.ToSlash(filepath.Clean(path))
	var segs []string
	for _, s := range strings.Split(path, "/") {
		if s == "" || s == "." {
			continue
		}
		segs = append(segs, s)
	}
	return segs
}
