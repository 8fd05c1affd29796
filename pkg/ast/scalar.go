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

package ast

import (
	"strconv"

	"github.com/cockroachdb/apd/v2"

	"github.com/gracelang/grace/pkg/token"
)

// ScalarKind discriminates the built-in scalar types of spec.md §3.1/3.2.
type ScalarKind int

const (
	KindDouble ScalarKind = iota
	KindInteger
	KindNatural
	KindText
	KindBool
	KindNull
)

func (k ScalarKind) String() string {
	switch k {
	case KindDouble:
		return "Double"
	case KindInteger:
		return "Integer"
	case KindNatural:
		return "Natural"
	case KindText:
		return "Text"
	case KindBool:
		return "Bool"
	case KindNull:
		return "Null"
	default:
		return "Unknown"
	}
}

// Scalar is a leaf literal. It implements both Expr and Value: scalars
// pass through evaluate unchanged (spec.md §4.4 "Scalar").
//
// Double/Integer/Natural are backed by apd.Decimal rather than
// float64/int64/uint64 so that Plus/Times δ-reduction and Double/show
// rendering go through a single, precision-controlled arithmetic path
// shared with pkg/printer (see SPEC_FULL.md §3, cockroachdb/apd wiring).
type Scalar struct {
	Loc  token.Pos
	Kind ScalarKind
	Num  apd.Decimal // meaningful when Kind is Double, Integer or Natural
	Text string      // meaningful when Kind is Text
	Bool bool        // meaningful when Kind is Bool
}

func (x Scalar) Source() token.Pos { return x.Loc }
func (Scalar) exprNode()           {}

// WithLoc returns a copy of s carrying loc, for parsers that build a
// Scalar via one of the New* constructors and then need to attach the
// token position they parsed it from.
func (s Scalar) WithLoc(loc token.Pos) Scalar {
	s.Loc = loc
	return s
}

// NewNatural builds a Natural scalar from a non-negative integer.
func NewNatural(n uint64) Scalar {
	var s Scalar
	s.Kind = KindNatural
	s.Num.SetFinite(int64(n), 0)
	return s
}

// NewInteger builds an Integer scalar.
func NewInteger(n int64) Scalar {
	var s Scalar
	s.Kind = KindInteger
	s.Num.SetFinite(n, 0)
	return s
}

// NewDouble builds a Double scalar from an IEEE-754 float64.
func NewDouble(f float64) Scalar {
	var s Scalar
	s.Kind = KindDouble
	d, _, err := apd.NewFromString(strconv.FormatFloat(f, 'g', -1, 64))
	if err != nil {
		// strconv's own round-trippable formatting is always valid
		// decimal syntax; apd rejecting it would be a library bug.
		panic("ast: invalid float literal: " + err.Error())
	}
	s.Num = *d
	return s
}

// NewText builds a Text scalar.
func NewText(text string) Scalar {
	return Scalar{Kind: KindText, Text: text}
}

// NewBool builds a Bool scalar.
func NewBool(b bool) Scalar {
	return Scalar{Kind: KindBool, Bool: b}
}

// Null is the unit scalar.
func Null() Scalar {
	return Scalar{Kind: KindNull}
}

// Alternative is a bare tag of an anonymous sum type, e.g. the Left in
// `Left 41`. It implements both Expr and Value.
type Alternative struct {
	Loc  token.Pos
	Name string
}

func (x Alternative) Source() token.Pos { return x.Loc }
func (Alternative) exprNode()           {}

// OperatorKind enumerates spec.md §3.1's binary operators.
type OperatorKind int

const (
	And OperatorKind = iota
	Or
	Plus
	Times
	Append
)

func (k OperatorKind) String() string {
	switch k {
	case And:
		return "&&"
	case Or:
		return "||"
	case Plus:
		return "+"
	case Times:
		return "*"
	case Append:
		return "++"
	default:
		return "?"
	}
}

// BuiltinID enumerates spec.md §3.1's built-in functions.
type BuiltinID int

const (
	DoubleShow BuiltinID = iota
	ListFold
	ListLength
	ListMap
	IntegerEven
	IntegerOdd
	NaturalFold
)

func (b BuiltinID) String() string {
	switch b {
	case DoubleShow:
		return "Double/show"
	case ListFold:
		return "List/fold"
	case ListLength:
		return "List/length"
	case ListMap:
		return "List/map"
	case IntegerEven:
		return "Integer/even"
	case IntegerOdd:
		return "Integer/odd"
	case NaturalFold:
		return "Natural/fold"
	default:
		return "?"
	}
}

// Builtin is a built-in function value. It implements both Expr and
// Value; it only reduces once fully applied, via the evaluator's
// Application δ-rules (spec.md §4.4).
type Builtin struct {
	Loc token.Pos
	ID  BuiltinID
}

func (x Builtin) Source() token.Pos { return x.Loc }
func (Builtin) exprNode()           {}
