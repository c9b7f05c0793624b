// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import "strconv"

// ParseFilter parses a filter expression. Errors are *SyntaxError.
func ParseFilter(q string) (Filter, error) {
	f, l := orExpr(newLexer(q))
	l = l.end()
	if err := l.failed(); err != nil {
		return nil, err
	}
	return f, nil
}

func fail(l lexer, msg string) lexer {
	_, l = l.fail(msg)
	return l
}

// orExpr parses andExpr {"OR" andExpr}.
func orExpr(l lexer) (Filter, lexer) {
	var terms []Filter
	for {
		var f Filter
		f, l = andExpr(l)
		terms = append(terms, f)
		op, next := l.key()
		if op.Kind != 'O' {
			break
		}
		l = next
	}
	if len(terms) == 1 {
		return terms[0], l
	}
	return &FilterOp{OpOr, terms}, l
}

// andExpr parses match {["AND"] match}.
func andExpr(l lexer) (Filter, lexer) {
	var terms []Filter
	f, l := match(l)
	terms = append(terms, f)
	for {
		op, next := l.key()
		switch op.Kind {
		case 'A':
			l = next
			continue
		case '(', '-', '*', 'w', 'q':
			f, l = match(l)
			terms = append(terms, f)
			continue
		case ')', 'O', 0:
		default:
			return nil, fail(l, "unexpected "+strconv.Quote(op.Tok))
		}
		break
	}
	if len(terms) == 1 {
		return terms[0], l
	}
	return &FilterOp{OpAnd, terms}, l
}

// match parses a single term.
func match(start lexer) (Filter, lexer) {
	t, l := start.key()
	switch t.Kind {
	case '(':
		f, l := orExpr(l)
		closer, next := l.key()
		if closer.Kind != ')' {
			return nil, fail(l, `missing ")"`)
		}
		return f, next
	case '-':
		f, l := match(l)
		return &FilterOp{OpNot, []Filter{f}}, l
	case '*':
		return &FilterOp{OpAnd, nil}, l
	case 'w', 'q':
		colon, next := l.key()
		if colon.Kind != ':' {
			return nil, fail(start, "expected key:value")
		}
		v, next := next.value()
		switch v.Kind {
		case 'w', 'q', 'r':
			return leaf(t, v), next
		case '(':
			return valueList(t, next)
		}
		return nil, fail(start, "expected key:value")
	}
	return nil, fail(start, "expected key:value or subexpression")
}

// valueList parses the rest of key:(v1 OR v2 ...) after the "(".
func valueList(key tok, l lexer) (Filter, lexer) {
	var terms []Filter
	for {
		v, next := l.value()
		switch v.Kind {
		case 'w', 'q', 'r':
			terms = append(terms, leaf(key, v))
		default:
			return nil, fail(l, "expected value")
		}
		l = next

		sep, next := l.value()
		switch sep.Kind {
		case ')':
			return &FilterOp{OpOr, terms}, next
		case 'O':
			l = next
		default:
			return nil, fail(l, "value list must be separated by OR")
		}
	}
}

func leaf(key, v tok) *FilterMatch {
	if v.Kind == 'r' {
		return &FilterMatch{Key: key.Tok, Regexp: v.Regexp, Off: key.Off}
	}
	return &FilterMatch{Key: key.Tok, Lit: v.Tok, Off: key.Off}
}
