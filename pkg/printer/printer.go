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

// Package printer renders a surface Expr (typically quote's output)
// back to grace source text. Pretty-printing is, like parsing, an
// external collaborator of the normalization core (spec.md §1); this
// package exists so the library is usable end to end, grounded on
// cuelang.org/go/internal/core/debug.NodeString's single recursive
// writer with a small precedence table for parenthesization.
package printer

import (
	"fmt"
	"strings"

	"golang.org/x/text/width"

	"github.com/gracelang/grace/internal/core/numeric"
	"github.com/gracelang/grace/pkg/ast"
	"github.com/gracelang/grace/pkg/embed"
)

// Print renders e as grace source text.
func Print(e ast.Expr) string {
	var b strings.Builder
	write(&b, e, 0)
	return b.String()
}

// precedence mirrors pkg/parse's grammar: higher binds tighter.
func precedence(e ast.Expr) int {
	switch x := e.(type) {
	case ast.Lambda, ast.Let, ast.If, ast.Embed:
		return 0
	case ast.Operator:
		switch x.Op {
		case ast.Or:
			return 1
		case ast.And:
			return 2
		case ast.Plus, ast.Append:
			return 3
		case ast.Times:
			return 4
		}
	case ast.Application, ast.Merge:
		return 5
	}
	return 6 // atoms: scalars, variables, records, lists, parens not needed
}

func write(b *strings.Builder, e ast.Expr, minPrec int) {
	prec := precedence(e)
	if prec < minPrec {
		b.WriteByte('(')
		writeBare(b, e)
		b.WriteByte(')')
		return
	}
	writeBare(b, e)
}

func writeBare(b *strings.Builder, e ast.Expr) {
	switch x := e.(type) {
	case ast.Variable:
		b.WriteString(x.Name)
		if x.Index > 0 {
			fmt.Fprintf(b, "@%d", x.Index)
		}

	case ast.Lambda:
		fmt.Fprintf(b, "λ%s. ", x.Param)
		write(b, x.Body, 0)

	case ast.Application:
		write(b, x.Func, precedence(x))
		b.WriteByte(' ')
		write(b, x.Arg, precedence(x)+1)

	case ast.Annotation:
		b.WriteByte('(')
		write(b, x.Expr, 0)
		b.WriteString(" : ")
		write(b, x.Type, 0)
		b.WriteByte(')')

	case ast.Let:
		for _, bind := range x.Bindings {
			fmt.Fprintf(b, "let %s = ", bind.Name)
			write(b, bind.Rhs, 0)
			b.WriteByte(' ')
		}
		b.WriteString("in ")
		write(b, x.Body, 0)

	case ast.List:
		b.WriteByte('[')
		for i, el := range x.Elements {
			if i > 0 {
				b.WriteString(", ")
			}
			write(b, el, 0)
		}
		b.WriteByte(']')

	case ast.Record:
		b.WriteByte('{')
		for i, f := range x.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%s = ", f.Name)
			write(b, f.Val, 0)
		}
		b.WriteByte('}')

	case ast.FieldAccess:
		write(b, x.Record, precedence(x))
		b.WriteByte('.')
		b.WriteString(x.Key)

	case ast.Alternative:
		b.WriteString(x.Name)

	case ast.Merge:
		b.WriteString("merge ")
		write(b, x.Record, precedence(ast.Application{})+1)

	case ast.If:
		b.WriteString("if ")
		write(b, x.Pred, 0)
		b.WriteString(" then ")
		write(b, x.Then, 0)
		b.WriteString(" else ")
		write(b, x.Else, 0)

	case ast.Scalar:
		writeScalar(b, x)

	case ast.Operator:
		write(b, x.Left, precedence(x))
		fmt.Fprintf(b, " %s ", x.Op)
		write(b, x.Right, precedence(x)+1)

	case ast.Builtin:
		b.WriteString(x.ID.String())

	case ast.Embed:
		if f, ok := x.Payload.(embed.File); ok {
			fmt.Fprintf(b, "import %q", f.Path)
		} else {
			b.WriteString("<embed>")
		}

	default:
		panic(fmt.Sprintf("printer: unknown expr node %T", e))
	}
}

func writeScalar(b *strings.Builder, s ast.Scalar) {
	switch s.Kind {
	case ast.KindNatural, ast.KindInteger, ast.KindDouble:
		b.WriteString(numeric.Show(s.Kind, s.Num))
	case ast.KindText:
		b.WriteByte('"')
		b.WriteString(escapeText(s.Text))
		b.WriteByte('"')
	case ast.KindBool:
		if s.Bool {
			b.WriteString("True")
		} else {
			b.WriteString("False")
		}
	case ast.KindNull:
		b.WriteString("None")
	}
}

func escapeText(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DisplayWidth returns s's terminal column width, accounting for
// East-Asian wide/fullwidth runes. cmd/grace's repl uses this to align
// the ":scope" table; nothing in the core needs it.
func DisplayWidth(s string) int {
	total := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			total += 2
		default:
			total++
		}
	}
	return total
}
