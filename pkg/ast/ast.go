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

// Package ast holds both grace's surface-expression tree (spec.md §3.1,
// the input to evaluate) and its residual Value tree (spec.md §3.2, the
// output of evaluate and input to quote), plus the Environment that links
// them. The two trees are kept in one package, rather than split across
// pkg/ast and pkg/value, because Embed carries a pre-evaluated Value and
// a Closure carries an unevaluated Expr body: either direction alone
// would need to import the other, so the types live together — the same
// choice cuelang.org/go makes by keeping its unevaluated Expr nodes and
// its evaluated Vertex/Value nodes both in package adt.
package ast

import "github.com/gracelang/grace/pkg/token"

// Expr is any node of the surface tree: the well-formed input to
// evaluate. Every variant of spec.md §3.1 implements it.
type Expr interface {
	Source() token.Pos
	exprNode()
}

// Variable is an occurrence of a name. Index follows the *surface*
// convention (spec.md §3.4): Index = k means "the (k+1)-th innermost
// binding of Name, counting the innermost as 0". Index is always >= 0.
type Variable struct {
	Loc   token.Pos
	Name  string
	Index int
}

func (x Variable) Source() token.Pos { return x.Loc }
func (Variable) exprNode()           {}

// Lambda introduces a single-parameter function.
type Lambda struct {
	Loc   token.Pos
	Param string
	Body  Expr
}

func (x Lambda) Source() token.Pos { return x.Loc }
func (Lambda) exprNode()           {}

// Application applies Func to Arg.
type Application struct {
	Loc  token.Pos
	Func Expr
	Arg  Expr
}

func (x Application) Source() token.Pos { return x.Loc }
func (Application) exprNode()           {}

// Annotation is a type ascription. The type is erased during evaluation
// (spec.md §4.4 "Annotation") — grace's type checker, which would give
// Type a real grammar, is an external collaborator (spec.md §1) and out
// of scope for this module; Type is carried only so a pretty-printer
// fed un-normalized source can round-trip it.
type Annotation struct {
	Loc  token.Pos
	Expr Expr
	Type Expr
}

func (x Annotation) Source() token.Pos { return x.Loc }
func (Annotation) exprNode()           {}

// Binding is one entry of a Let: name = rhs, with an optional type
// ascription that (like Annotation's) is erased during evaluation.
type Binding struct {
	Loc          token.Pos
	Name         string
	OptionalType Expr
	Rhs          Expr
}

// Let evaluates Bindings in order, each extending the environment for
// the bindings (and Body) that follow, then evaluates Body. Forward
// references between bindings are not supported (spec.md §4.4 "Let").
type Let struct {
	Loc      token.Pos
	Bindings []Binding
	Body     Expr
}

func (x Let) Source() token.Pos { return x.Loc }
func (Let) exprNode()           {}

// List is an ordered sequence of elements.
type List struct {
	Loc      token.Pos
	Elements []Expr
}

func (x List) Source() token.Pos { return x.Loc }
func (List) exprNode()           {}

// Field is one (name, expr) entry of a Record literal. Duplicate names
// are allowed at input; the first one wins on lookup (spec.md §4.5).
type Field struct {
	Loc  token.Pos
	Name string
	Val  Expr
}

// Record is an ordered list of fields.
type Record struct {
	Loc    token.Pos
	Fields []Field
}

func (x Record) Source() token.Pos { return x.Loc }
func (Record) exprNode()           {}

// FieldAccess projects Key out of Record.
type FieldAccess struct {
	Loc    token.Pos
	Record Expr
	Key    string
}

func (x FieldAccess) Source() token.Pos { return x.Loc }
func (FieldAccess) exprNode()           {}

// Merge is a tagged-sum eliminator: Record is expected to evaluate to a
// record of per-tag handlers (spec.md §4.4 rule 1).
type Merge struct {
	Loc    token.Pos
	Record Expr
}

func (x Merge) Source() token.Pos { return x.Loc }
func (Merge) exprNode()           {}

// If is a conditional.
type If struct {
	Loc              token.Pos
	Pred, Then, Else Expr
}

func (x If) Source() token.Pos { return x.Loc }
func (If) exprNode()           {}

// Operator is a binary operator application (spec.md §3.1).
type Operator struct {
	Loc   token.Pos
	Left  Expr
	Op    OperatorKind
	Right Expr
}

func (x Operator) Source() token.Pos { return x.Loc }
func (Operator) exprNode()           {}

// EmbedPayload is the hook by which a caller plugs in externally-resolved
// values (spec.md §6.3). Resolve must return an already-evaluated Value;
// evaluate uses only that and never re-derives it.
type EmbedPayload interface {
	Resolve() Value
}

// Embed is a leaf carrying an external payload. pkg/embed implements
// EmbedPayload for YAML-backed imports.
type Embed struct {
	Loc     token.Pos
	Payload EmbedPayload
}

func (x Embed) Source() token.Pos { return x.Loc }
func (Embed) exprNode()           {}
