// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// A Filter is a node of a parsed filter expression: either a
// *FilterOp or a *FilterMatch.
type Filter interface {
	isFilter()
	String() string
}

// A FilterMatch is a leaf that tests the value of one key.
type FilterMatch struct {
	Key string

	// Regexp, if non-nil, must match the value. Otherwise the
	// value must equal Lit.
	Regexp *regexp.Regexp
	Lit    string

	// Off is the byte offset of Key in the query.
	Off int
}

func (*FilterMatch) isFilter() {}

func (q *FilterMatch) String() string {
	if q.Regexp != nil {
		return quoteWord(q.Key) + ":/" + q.Regexp.String() + "/"
	}
	return quoteWord(q.Key) + ":" + quoteWord(q.Lit)
}

// MatchString reports whether value satisfies q.
func (q *FilterMatch) MatchString(value string) bool {
	if q.Regexp != nil {
		return q.Regexp.MatchString(value)
	}
	return q.Lit == value
}

// A FilterOp combines filters with a boolean operator. OpNot has
// exactly one operand. An OpAnd with no operands matches everything;
// an OpOr with no operands matches nothing.
type FilterOp struct {
	Op    Op
	Exprs []Filter
}

func (*FilterOp) isFilter() {}

func (q *FilterOp) String() string {
	var sep string
	switch q.Op {
	case OpNot:
		return "-" + q.Exprs[0].String()
	case OpAnd:
		if len(q.Exprs) == 0 {
			return "*"
		}
		sep = " AND "
	case OpOr:
		if len(q.Exprs) == 0 {
			return "-*"
		}
		sep = " OR "
	}
	parts := make([]string, len(q.Exprs))
	for i, e := range q.Exprs {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, sep) + ")"
}

// Op is a boolean operator.
type Op int

const (
	OpAnd Op = 1 + iota
	OpOr
	OpNot
)

// quoteWord returns s quoted if it would not lex as a single bare
// word.
func quoteWord(s string) string {
	if s == "" {
		return `""`
	}
	for i, r := range s {
		if r == '"' || isOp(r) || !unicode.IsPrint(r) || unicode.IsSpace(r) || (i == 0 && isStartOnlyOp(r)) {
			return strconv.Quote(s)
		}
	}
	return s
}
