// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A SyntaxError reports a malformed filter expression.
type SyntaxError struct {
	Query string // the query being parsed
	Off   int    // byte offset of the error in Query
	Msg   string
}

func (e *SyntaxError) Error() string {
	// Point the caret at the rune, not the byte.
	col := 0
	for i, r := range e.Query {
		if i >= e.Off {
			break
		}
		if unicode.IsGraphic(r) {
			col++
		}
	}
	return fmt.Sprintf("syntax error: %s\n\t%s\n\t%*s^", e.Msg, e.Query, col, "")
}

// A tok is one lexical token. Kind is 'w' for a bare word, 'q' for a
// quoted word, 'r' for a regexp, 'A' and 'O' for the AND and OR
// keywords, the operator character itself, or 0 at the end of input.
type tok struct {
	Kind   byte
	Off    int
	Tok    string // unescaped for quoted words
	Regexp *regexp.Regexp
}

// A lexer is an immutable position in a query. Reading a token
// returns the token and the lexer positioned after it, so the parser
// can look ahead by simply not keeping the new lexer.
type lexer struct {
	q    string
	orig string
	err  *SyntaxError // shared by every lexer of one query
}

func newLexer(q string) lexer {
	return lexer{q, q, new(SyntaxError)}
}

// failed returns the first error recorded while lexing or parsing,
// or nil.
func (l lexer) failed() error {
	if l.err.Msg == "" {
		return nil
	}
	return l.err
}

func isOp(r rune) bool {
	return r == '(' || r == ')' || r == ':'
}

// "-" and "*" are operators only at the start of a word, so that
// values like "1wh-10term" lex as one word.
func isStartOnlyOp(r rune) bool {
	return r == '-' || r == '*'
}

// key returns the next word or operator.
func (l lexer) key() (tok, lexer) {
	return l.next(false)
}

// value is like key, but also accepts a /regexp/.
func (l lexer) value() (tok, lexer) {
	return l.next(true)
}

// end records an error if l is not at the end of the query.
func (l lexer) end() lexer {
	if t, _ := l.key(); t.Kind != 0 {
		_, l = l.fail("unexpected " + strconv.Quote(t.Tok))
	}
	return l
}

func (l lexer) next(regexpOK bool) (tok, lexer) {
	for l.q != "" {
		r, size := utf8.DecodeRuneInString(l.q)
		switch {
		case isOp(r) || isStartOnlyOp(r):
			return l.emit(l.q[0], l.q[:1], l.q[1:])
		case unicode.IsSpace(r):
			l.q = l.q[size:]
		case regexpOK && r == '/':
			return l.regexp()
		case r == '"':
			return l.quoted()
		default:
			return l.bare()
		}
	}
	// An explicit end token gives the parser a position to report
	// errors at.
	return l.emit(0, "", "")
}

func (l lexer) emit(kind byte, text, rest string) (tok, lexer) {
	off := len(l.orig) - len(l.q)
	l2 := l
	l2.q = rest
	return tok{Kind: kind, Off: off, Tok: text}, l2
}

// fail records msg at the current position, unless an earlier error
// was recorded, and returns an end token.
func (l lexer) fail(msg string) (tok, lexer) {
	l.q = strings.TrimLeftFunc(l.q, unicode.IsSpace)
	if l.err.Msg == "" {
		*l.err = SyntaxError{l.orig, len(l.orig) - len(l.q), msg}
	}
	return l.emit(0, "", "")
}

func (l lexer) quoted() (tok, lexer) {
	i := 1
	for i < len(l.q) && (l.q[i] != '"' || l.q[i-1] == '\\') {
		i++
	}
	if i == len(l.q) {
		return l.fail("missing end quote")
	}
	word, err := strconv.Unquote(l.q[:i+1])
	if err != nil {
		return l.fail("bad escape sequence")
	}
	return l.emit('q', word, l.q[i+1:])
}

func (l lexer) bare() (tok, lexer) {
	end := strings.IndexFunc(l.q, func(r rune) bool {
		return unicode.IsSpace(r) || isOp(r)
	})
	if end < 0 {
		end = len(l.q)
	}
	word := l.q[:end]
	switch word {
	case "AND":
		return l.emit('A', word, l.q[end:])
	case "OR":
		return l.emit('O', word, l.q[end:])
	}
	return l.emit('w', word, l.q[end:])
}

func (l lexer) regexp() (tok, lexer) {
	expr, rest, err := splitRegexp(l.q[1:], '/')
	if err == errNoDelim {
		return l.fail(`missing close "/"`)
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return l.fail(err.Error())
	}
	// Require a separator after the close "/" so that an unescaped
	// "/" inside the regexp is reported rather than misread.
	after := rest[1:]
	if after != "" {
		r, _ := utf8.DecodeRuneInString(after)
		if !unicode.IsSpace(r) && !isOp(r) && !isStartOnlyOp(r) {
			l.q = after
			return l.fail(`regexp must be followed by space or an operator (unescaped "/"?)`)
		}
	}
	t, next := l.emit('r', expr, after)
	t.Regexp = re
	return t, next
}

var errNoDelim = errors.New("unterminated regexp")

// splitRegexp returns the prefix of s up to the first delim outside
// any character class or group, and the rest of s starting at delim.
func splitRegexp(s string, delim byte) (expr, rest string, err error) {
	class, group := 0, 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == delim && class == 0 && group == 0 {
			return s[:i], s[i:], nil
		}
		switch c {
		case '[':
			class++
		case ']':
			// An unmatched ']' is a literal.
			if class > 0 {
				class--
			}
		case '(':
			if class == 0 {
				group++
			}
		case ')':
			if class == 0 {
				group--
			}
		case '\\':
			i++
		}
	}
	return s, "", errNoDelim
}
