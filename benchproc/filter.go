// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import (
	"fmt"

	"github.com/Adri029/geoc-perf/benchproc/internal/parse"
)

// A Filter selects Keys by their database, workload, and variant.
type Filter struct {
	query string
	match func(Key) bool
}

// filterKeys are the Key roles a filter can test. "key" is the whole
// Key as printed, such as "postgres, tpcc, 1wh-10term".
var filterKeys = map[string]func(Key) string{
	"database": Key.Database,
	"workload": Key.Workload,
	"variant":  Key.Variant,
	"key":      func(k Key) string { return string(k) },
}

// NewFilter constructs a Key filter from a boolean filter expression,
// such as "workload:tpcc database:(postgres OR cockroachdb)". See
// "go doc github.com/Adri029/geoc-perf/benchproc/syntax" for the
// syntax.
//
// To create a filter that matches everything, pass "*" for query.
func NewFilter(query string) (*Filter, error) {
	q, err := parse.ParseFilter(query)
	if err != nil {
		return nil, err
	}

	var walk func(q parse.Filter) (func(Key) bool, error)
	walk = func(q parse.Filter) (func(Key) bool, error) {
		switch q := q.(type) {
		case *parse.FilterOp:
			subs := make([]func(Key) bool, len(q.Exprs))
			for i, sub := range q.Exprs {
				var err error
				if subs[i], err = walk(sub); err != nil {
					return nil, err
				}
			}
			return filterOp(q.Op, subs), nil

		case *parse.FilterMatch:
			field, ok := filterKeys[q.Key]
			if !ok {
				return nil, &parse.SyntaxError{Query: query, Off: q.Off, Msg: fmt.Sprintf("unknown key %q (want database, workload, variant, or key)", q.Key)}
			}
			return func(k Key) bool { return q.MatchString(field(k)) }, nil
		}
		panic(fmt.Sprintf("unknown query node type %T", q))
	}
	match, err := walk(q)
	if err != nil {
		return nil, err
	}
	return &Filter{query, match}, nil
}

func filterOp(op parse.Op, subs []func(Key) bool) func(Key) bool {
	switch op {
	case parse.OpNot:
		sub := subs[0]
		return func(k Key) bool { return !sub(k) }

	case parse.OpAnd:
		return func(k Key) bool {
			for _, sub := range subs {
				if !sub(k) {
					return false
				}
			}
			return true
		}

	case parse.OpOr:
		return func(k Key) bool {
			for _, sub := range subs {
				if sub(k) {
					return true
				}
			}
			return false
		}
	}
	panic(fmt.Sprintf("unknown query op %v", op))
}

// Match reports whether k satisfies f. A nil Filter matches every Key.
func (f *Filter) Match(k Key) bool {
	if f == nil {
		return true
	}
	return f.match(k)
}

func (f *Filter) String() string {
	if f == nil {
		return "*"
	}
	return f.query
}
