// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse implements the parser for key filter expressions
// described in github.com/Adri029/geoc-perf/benchproc/syntax.
package parse
