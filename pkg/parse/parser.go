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

package parse

import (
	"fmt"
	"path/filepath"

	"github.com/gracelang/grace/pkg/ast"
	"github.com/gracelang/grace/pkg/embed"
	"github.com/gracelang/grace/pkg/token"
)

// Parser is a recursive-descent parser over a pre-lexed token stream.
// Alternative tags are identifiers that start with an ASCII upper-case
// letter A-Z (Left, Right, Some, ...); every other identifier is a Variable. True,
// False, None, and the builtin spellings (List/fold, ...) are
// recognized by the lexer before this rule applies. This convention is
// a concrete-syntax choice local to pkg/parse, not part of the
// normalization core's contract.
type Parser struct {
	toks      []tok
	pos       int
	embedRoot string
}

// Option configures a Parse call. Currently only WithEmbedRoot exists.
type Option func(*Parser)

// WithEmbedRoot makes relative `import "..."` paths resolve against root
// instead of the directory of the file being parsed, per an optional
// .gracerc.yaml's embedRoot (pkg/config).
func WithEmbedRoot(root string) Option {
	return func(p *Parser) { p.embedRoot = root }
}

// Parse lexes and parses src (labelled file for error positions) into a
// surface Expr.
func Parse(file, src string, opts ...Option) (ast.Expr, error) {
	l := newLexer(file, src)
	var toks []tok
	for {
		t, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, t)
		if t.kind == tokEOF {
			break
		}
	}
	p := &Parser{toks: toks}
	for _, opt := range opts {
		opt(p)
	}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.at(tokEOF, "") {
		return nil, fmt.Errorf("%s: unexpected trailing input %q", p.cur().pos, p.cur().text)
	}
	return e, nil
}

func (p *Parser) cur() tok { return p.toks[p.pos] }

func (p *Parser) at(kind tokenKind, text string) bool {
	t := p.cur()
	if t.kind != kind {
		return false
	}
	return text == "" || t.text == text
}

func (p *Parser) advance() tok {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) expect(kind tokenKind, text string) (tok, error) {
	if !p.at(kind, text) {
		return tok{}, fmt.Errorf("%s: expected %q, got %q", p.cur().pos, text, p.cur().text)
	}
	return p.advance(), nil
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	switch {
	case p.at(tokKeyword, "let"):
		return p.parseLet()
	case p.at(tokKeyword, "if"):
		return p.parseIf()
	case p.at(tokKeyword, "import"):
		return p.parseImport()
	case p.at(tokSymbol, "\\") || p.at(tokSymbol, "λ"):
		return p.parseLambda()
	default:
		return p.parseOr()
	}
}

// parseImport reads `import "path.yaml"` as an Embed leaf (spec.md §6.3).
// A relative path is joined at parse time against the WithEmbedRoot root
// when one is set, else against the directory of the file being parsed;
// there is no search path, since grace has no module system. The file
// itself is read only when the Embed is evaluated (embed.File.Resolve).
func (p *Parser) parseImport() (ast.Expr, error) {
	loc := p.advance().pos
	lit, err := p.expect(tokText, "")
	if err != nil {
		return nil, err
	}
	path := lit.text
	if !filepath.IsAbs(path) {
		base := filepath.Dir(loc.File)
		if p.embedRoot != "" {
			base = p.embedRoot
		}
		path = filepath.Join(base, path)
	}
	return ast.Embed{Loc: loc, Payload: embed.File{Path: path}}, nil
}

func (p *Parser) parseLet() (ast.Expr, error) {
	loc := p.cur().pos
	var bindings []ast.Binding
	for p.at(tokKeyword, "let") {
		p.advance()
		name, err := p.expect(tokIdent, "")
		if err != nil {
			return nil, err
		}
		var typ ast.Expr
		if p.at(tokSymbol, ":") {
			p.advance()
			typ, err = p.parseOr()
			if err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(tokSymbol, "="); err != nil {
			return nil, err
		}
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, ast.Binding{
			Loc: name.pos, Name: name.text, OptionalType: typ, Rhs: rhs,
		})
	}
	if _, err := p.expect(tokKeyword, "in"); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return ast.Let{Loc: loc, Bindings: bindings, Body: body}, nil
}

func (p *Parser) parseIf() (ast.Expr, error) {
	loc := p.advance().pos
	pred, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokKeyword, "then"); err != nil {
		return nil, err
	}
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokKeyword, "else"); err != nil {
		return nil, err
	}
	els, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return ast.If{Loc: loc, Pred: pred, Then: then, Else: els}, nil
}

func (p *Parser) parseLambda() (ast.Expr, error) {
	loc := p.advance().pos
	param, err := p.expect(tokIdent, "")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokSymbol, "."); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return ast.Lambda{Loc: loc, Param: param.text, Body: body}, nil
}

// Operator precedence, lowest to highest: || , && , (+ ++) , * .
// Application (juxtaposition) and field access bind tighter than any
// operator.

func (p *Parser) parseOr() (ast.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.at(tokSymbol, "||") {
		loc := p.advance().pos
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = ast.Operator{Loc: loc, Left: left, Op: ast.Or, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Expr, error) {
	left, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	for p.at(tokSymbol, "&&") {
		loc := p.advance().pos
		right, err := p.parseAdd()
		if err != nil {
			return nil, err
		}
		left = ast.Operator{Loc: loc, Left: left, Op: ast.And, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAdd() (ast.Expr, error) {
	left, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	for p.at(tokSymbol, "+") || p.at(tokSymbol, "++") {
		op := ast.Plus
		if p.cur().text == "++" {
			op = ast.Append
		}
		loc := p.advance().pos
		right, err := p.parseMul()
		if err != nil {
			return nil, err
		}
		left = ast.Operator{Loc: loc, Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) parseMul() (ast.Expr, error) {
	left, err := p.parseApplication()
	if err != nil {
		return nil, err
	}
	for p.at(tokSymbol, "*") {
		loc := p.advance().pos
		right, err := p.parseApplication()
		if err != nil {
			return nil, err
		}
		left = ast.Operator{Loc: loc, Left: left, Op: ast.Times, Right: right}
	}
	return left, nil
}

func (p *Parser) parseApplication() (ast.Expr, error) {
	if p.at(tokKeyword, "merge") {
		loc := p.advance().pos
		rec, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		left := ast.Expr(ast.Merge{Loc: loc, Record: rec})
		return p.parseApplicationTail(left)
	}

	left, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	return p.parseApplicationTail(left)
}

func (p *Parser) parseApplicationTail(left ast.Expr) (ast.Expr, error) {
	for p.startsAtom() {
		arg, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		left = ast.Application{Loc: arg.Source(), Func: left, Arg: arg}
	}
	return left, nil
}

func (p *Parser) startsAtom() bool {
	t := p.cur()
	switch t.kind {
	case tokIdent, tokBuiltin, tokNatural, tokInteger, tokDouble, tokText:
		return true
	case tokKeyword:
		return t.text == "True" || t.text == "False" || t.text == "None"
	case tokSymbol:
		return t.text == "(" || t.text == "[" || t.text == "{"
	default:
		return false
	}
}

func (p *Parser) parsePostfix() (ast.Expr, error) {
	e, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.at(tokSymbol, ".") {
		p.advance()
		key, err := p.expect(tokIdent, "")
		if err != nil {
			return nil, err
		}
		e = ast.FieldAccess{Loc: key.pos, Record: e, Key: key.text}
	}
	return e, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	t := p.cur()
	switch t.kind {
	case tokBuiltin:
		p.advance()
		return ast.Builtin{Loc: t.pos, ID: builtinID(t.text)}, nil

	case tokNatural:
		p.advance()
		return ast.NewNatural(parseUint(t.text)).WithLoc(t.pos), nil

	case tokInteger:
		p.advance()
		return ast.NewInteger(parseInt(t.text)).WithLoc(t.pos), nil

	case tokDouble:
		p.advance()
		return ast.NewDouble(parseFloat(t.text)).WithLoc(t.pos), nil

	case tokText:
		p.advance()
		return ast.NewText(t.text).WithLoc(t.pos), nil

	case tokKeyword:
		switch t.text {
		case "True":
			p.advance()
			return ast.NewBool(true).WithLoc(t.pos), nil
		case "False":
			p.advance()
			return ast.NewBool(false).WithLoc(t.pos), nil
		case "None":
			p.advance()
			return ast.Null().WithLoc(t.pos), nil
		}
		return nil, fmt.Errorf("%s: unexpected keyword %q", t.pos, t.text)

	case tokIdent:
		p.advance()
		if isUpper(t.text) {
			return ast.Alternative{Loc: t.pos, Name: t.text}, nil
		}
		index := 0
		if p.at(tokSymbol, "@") {
			// occurrence selector: x@1 refers to the second-innermost x
			p.advance()
			n, err := p.expect(tokNatural, "")
			if err != nil {
				return nil, err
			}
			index = int(parseUint(n.text))
		}
		return ast.Variable{Loc: t.pos, Name: t.text, Index: index}, nil

	case tokSymbol:
		switch t.text {
		case "(":
			p.advance()
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if p.at(tokSymbol, ":") {
				p.advance()
				typ, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				e = ast.Annotation{Loc: t.pos, Expr: e, Type: typ}
			}
			if _, err := p.expect(tokSymbol, ")"); err != nil {
				return nil, err
			}
			return e, nil
		case "[":
			return p.parseList(t.pos)
		case "{":
			return p.parseRecord(t.pos)
		}
	}
	return nil, fmt.Errorf("%s: unexpected token %q", t.pos, t.text)
}

func (p *Parser) parseList(loc token.Pos) (ast.Expr, error) {
	p.advance()
	var elems []ast.Expr
	for !p.at(tokSymbol, "]") {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
		if p.at(tokSymbol, ",") {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(tokSymbol, "]"); err != nil {
		return nil, err
	}
	return ast.List{Loc: loc, Elements: elems}, nil
}

func (p *Parser) parseRecord(loc token.Pos) (ast.Expr, error) {
	p.advance()
	var fields []ast.Field
	for !p.at(tokSymbol, "}") {
		name, err := p.expect(tokIdent, "")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokSymbol, "="); err != nil {
			return nil, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		fields = append(fields, ast.Field{Loc: name.pos, Name: name.text, Val: val})
		if p.at(tokSymbol, ",") {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(tokSymbol, "}"); err != nil {
		return nil, err
	}
	return ast.Record{Loc: loc, Fields: fields}, nil
}

func isUpper(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)[0]
	return r >= 'A' && r <= 'Z'
}

func builtinID(name string) ast.BuiltinID {
	switch name {
	case "List/fold":
		return ast.ListFold
	case "List/length":
		return ast.ListLength
	case "List/map":
		return ast.ListMap
	case "Integer/even":
		return ast.IntegerEven
	case "Integer/odd":
		return ast.IntegerOdd
	case "Natural/fold":
		return ast.NaturalFold
	case "Double/show":
		return ast.DoubleShow
	default:
		panic("parse: unknown builtin " + name)
	}
}
