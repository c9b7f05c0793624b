// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package syntax documents the syntax of the key filter expressions
// accepted by the -filter flag of benchseries, benchhist, and
// benchstat.
//
// A result key names the directories a result file was found in,
// such as "postgres, tpcc, 1wh-10term" for
// results/postgres/tpcc/1wh-10term/run1.results.csv.
//
// # Keys
//
// Filters test these roles of a result key:
//
// - "database" is the third-to-last key segment, such as "postgres".
//
// - "workload" is the second-to-last key segment, such as "tpcc" or
// "geoc".
//
// - "variant" is the last key segment, such as "1wh-10term".
//
// - "key" is the whole key as printed.
//
// A role that a shallow key lacks has the value "".
//
// # Filters
//
// Filters are built from key-value terms:
//
//	key:value     - Match if key's value is exactly "value".
//	key:"value"   - Same, but value is a double-quoted Go string that
//	                may contain spaces or other special characters.
//	key:/regexp/  - Match if key's value matches a regular expression.
//	key:(val1 OR val2 OR ...)
//	              - Short-hand for key:val1 OR key:val2. Values may be
//	                double-quoted strings or regexps.
//	*             - Match everything.
//
// These terms can be combined into larger expressions as follows:
//
//	x y ...       - Match if x, y, etc. all match.
//	x AND y       - Same as x y.
//	x OR y        - Match if x or y match.
//	-x            - Match if x does not match.
//	(...)         - Subexpression.
//
// For example, the filter
//
//	workload:tpcc database:(postgres OR cockroachdb) -variant:/^8wh-/
//
// selects the TPC-C results of both databases except the 8 warehouse
// variants.
//
// Precise syntax:
//
//	expr     = andExpr {"OR" andExpr}
//	andExpr  = match {"AND"? match}
//	match    = "(" expr ")"
//	         | "-" match
//	         | "*"
//	         | key ":" value
//	         | key ":" "(" value {"OR" value} ")"
//	key      = word
//	value    = word
//	         | "/" regexp "/"
//	word     = bareWord
//	         | double-quoted Go string
//	bareWord = [^-*"():][^ ():]*
package syntax
