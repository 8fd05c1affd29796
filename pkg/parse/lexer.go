// Copyright 2026 The Grace Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package parse is grace's concrete syntax: a lexer and recursive-
// descent parser that produce pkg/ast.Expr trees. Lexing and parsing are
// explicitly "external collaborators" of the normalization core
// (spec.md §1) — the core only requires a well-formed pkg/ast.Expr, not
// any particular surface syntax — so this package is free to invent its
// own grammar rather than translate one from elsewhere. It exists so
// cmd/grace has something to feed evaluate.
package parse

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gracelang/grace/pkg/token"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokBuiltin // e.g. List/fold
	tokNatural
	tokInteger
	tokDouble
	tokText
	tokKeyword
	tokSymbol
)

type tok struct {
	kind tokenKind
	text string
	pos  token.Pos
}

var keywords = map[string]bool{
	"let": true, "in": true, "if": true, "then": true, "else": true,
	"merge": true, "import": true, "True": true, "False": true, "None": true,
}

var builtinNames = map[string]bool{
	"List/fold": true, "List/length": true, "List/map": true,
	"Integer/even": true, "Integer/odd": true,
	"Natural/fold": true, "Double/show": true,
}

type lexer struct {
	file   string
	src    string
	offset int
	line   int
	col    int
}

func newLexer(file, src string) *lexer {
	return &lexer{file: file, src: src, line: 1, col: 1}
}

func (l *lexer) peekRune() (rune, int) {
	if l.offset >= len(l.src) {
		return 0, 0
	}
	r, sz := utf8.DecodeRuneInString(l.src[l.offset:])
	return r, sz
}

func (l *lexer) advance() rune {
	r, sz := l.peekRune()
	l.offset += sz
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *lexer) pos() token.Pos {
	return token.Pos{File: l.file, Line: l.line, Column: l.col}
}

// isIdentStart excludes 'λ': unicode classes it as a letter, but grace
// lexes it as the lambda symbol.
func isIdentStart(r rune) bool {
	return r == '_' || (unicode.IsLetter(r) && r != 'λ')
}

func isIdentCont(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// next lexes and returns the next token.
func (l *lexer) next() (tok, error) {
	l.skipSpaceAndComments()
	start := l.pos()
	r, sz := l.peekRune()
	if sz == 0 {
		return tok{kind: tokEOF, pos: start}, nil
	}

	switch {
	case isIdentStart(r):
		return l.lexIdentOrBuiltin(start)
	case unicode.IsDigit(r):
		return l.lexNumber(start)
	case r == '+' || r == '-':
		// Only a number sign when immediately followed by a digit;
		// otherwise it's the arithmetic operator handled below.
		if nr, nsz := l.peekAt(sz); nsz != 0 && unicode.IsDigit(nr) {
			return l.lexNumber(start)
		}
	case r == '"':
		return l.lexText(start)
	}

	return l.lexSymbol(start)
}

func (l *lexer) peekAt(offset int) (rune, int) {
	if l.offset+offset >= len(l.src) {
		return 0, 0
	}
	r, sz := utf8.DecodeRuneInString(l.src[l.offset+offset:])
	return r, sz
}

func (l *lexer) skipSpaceAndComments() {
	for {
		r, sz := l.peekRune()
		if sz == 0 {
			return
		}
		if unicode.IsSpace(r) {
			l.advance()
			continue
		}
		if r == '#' {
			for {
				r, sz := l.peekRune()
				if sz == 0 || r == '\n' {
					break
				}
				l.advance()
			}
			continue
		}
		return
	}
}

func (l *lexer) lexIdentOrBuiltin(start token.Pos) (tok, error) {
	var b strings.Builder
	for {
		r, sz := l.peekRune()
		if sz == 0 || !isIdentCont(r) {
			break
		}
		b.WriteRune(l.advance())
	}
	name := b.String()

	// Builtins are spelled Namespace/name; greedily consume a single
	// slash-separated suffix and check membership.
	if r, sz := l.peekRune(); sz != 0 && r == '/' {
		save := *l
		l.advance()
		var suffix strings.Builder
		for {
			r, sz := l.peekRune()
			if sz == 0 || !isIdentCont(r) {
				break
			}
			suffix.WriteRune(l.advance())
		}
		full := name + "/" + suffix.String()
		if builtinNames[full] {
			return tok{kind: tokBuiltin, text: full, pos: start}, nil
		}
		*l = save
	}

	if keywords[name] {
		return tok{kind: tokKeyword, text: name, pos: start}, nil
	}
	return tok{kind: tokIdent, text: name, pos: start}, nil
}

func (l *lexer) lexNumber(start token.Pos) (tok, error) {
	var b strings.Builder
	sign := false
	if r, sz := l.peekRune(); sz != 0 && (r == '+' || r == '-') {
		sign = true
		b.WriteRune(l.advance())
	}
	isDouble := false
	for {
		r, sz := l.peekRune()
		if sz == 0 {
			break
		}
		if unicode.IsDigit(r) {
			b.WriteRune(l.advance())
			continue
		}
		if r == '.' {
			if nr, nsz := l.peekAt(sz); nsz != 0 && unicode.IsDigit(nr) {
				isDouble = true
				b.WriteRune(l.advance())
				continue
			}
		}
		break
	}
	kind := tokNatural
	switch {
	case isDouble:
		kind = tokDouble
	case sign:
		kind = tokInteger
	}
	return tok{kind: kind, text: b.String(), pos: start}, nil
}

func (l *lexer) lexText(start token.Pos) (tok, error) {
	l.advance() // opening quote
	var b strings.Builder
	for {
		r, sz := l.peekRune()
		if sz == 0 {
			return tok{}, fmt.Errorf("%s: unterminated string literal", start)
		}
		if r == '"' {
			l.advance()
			break
		}
		if r == '\\' {
			l.advance()
			e, esz := l.peekRune()
			if esz == 0 {
				return tok{}, fmt.Errorf("%s: unterminated escape", start)
			}
			l.advance()
			switch e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '"', '\\':
				b.WriteRune(e)
			default:
				b.WriteRune(e)
			}
			continue
		}
		b.WriteRune(l.advance())
	}
	return tok{kind: tokText, text: b.String(), pos: start}, nil
}

var symbols = []string{
	"&&", "||", "++", "->", "<-", "==",
	"(", ")", "{", "}", "[", "]", ",", ".", ":", "=", "+", "*", "\\", "λ", "@",
}

func (l *lexer) lexSymbol(start token.Pos) (tok, error) {
	for _, s := range symbols {
		if strings.HasPrefix(l.src[l.offset:], s) {
			for range []rune(s) {
				l.advance()
			}
			return tok{kind: tokSymbol, text: s, pos: start}, nil
		}
	}
	r := l.advance()
	return tok{}, fmt.Errorf("%s: unexpected character %q", start, r)
}
