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

package eval

import (
	"github.com/gracelang/grace/internal/core/numeric"
	"github.com/gracelang/grace/pkg/ast"
)

// tryBuiltin implements spec.md §4.4 rules 2-7: δ-reduction for a
// built-in once its operand spine is fully saturated. args is the
// builtin's arguments in call order, as produced by spine. ok is false
// whenever the arity or operand shapes don't match, meaning the caller
// must fall back to rule 8 (plain Apply) and leave the term stuck.
func tryBuiltin(id ast.BuiltinID, args []ast.Value) (ast.Value, bool) {
	switch id {
	case ast.ListFold:
		return tryListFold(args)
	case ast.ListLength:
		return tryListLength(args)
	case ast.ListMap:
		return tryListMap(args)
	case ast.NaturalFold:
		return tryNaturalFold(args)
	case ast.IntegerEven:
		return tryIntegerParity(args, true)
	case ast.IntegerOdd:
		return tryIntegerParity(args, false)
	case ast.DoubleShow:
		return tryDoubleShow(args)
	default:
		return nil, false
	}
}

// tryListFold is rule 2: List/fold list cons zero is a strict *left*
// fold despite the name — elements are consumed first-to-last, each
// folding into the accumulator via apply(apply(cons, e), a). The loop
// is iterative and the accumulator held strictly, per spec.md §9's
// "fold-as-loop" requirement.
func tryListFold(args []ast.Value) (ast.Value, bool) {
	if len(args) != 3 {
		return nil, false
	}
	list, ok := args[0].(ast.RList)
	if !ok {
		return nil, false
	}
	cons, zero := args[1], args[2]

	acc := zero
	for _, e := range list.Elements {
		acc = Apply(Apply(cons, e), acc)
	}
	return acc, true
}

// tryListLength is rule 3.
func tryListLength(args []ast.Value) (ast.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	list, ok := args[0].(ast.RList)
	if !ok {
		return nil, false
	}
	return ast.Scalar{Kind: ast.KindNatural, Num: numeric.FromUint64(uint64(len(list.Elements)))}, true
}

// tryListMap is rule 4.
func tryListMap(args []ast.Value) (ast.Value, bool) {
	if len(args) != 2 {
		return nil, false
	}
	g := args[0]
	list, ok := args[1].(ast.RList)
	if !ok {
		return nil, false
	}
	out := make([]ast.Value, len(list.Elements))
	for i, e := range list.Elements {
		out[i] = Apply(g, e)
	}
	return ast.RList{Elements: out}, true
}

// tryNaturalFold is rule 5: Natural/fold n succ zero applies succ to
// zero n times. Like List/fold, the driver loop is iterative.
func tryNaturalFold(args []ast.Value) (ast.Value, bool) {
	if len(args) != 3 {
		return nil, false
	}
	nScalar, ok := args[0].(ast.Scalar)
	if !ok || nScalar.Kind != ast.KindNatural {
		return nil, false
	}
	n, err := numeric.Int64(nScalar.Num)
	if err != nil || n < 0 {
		return nil, false
	}
	succ, zero := args[1], args[2]

	acc := zero
	for i := int64(0); i < n; i++ {
		acc = Apply(succ, acc)
	}
	return acc, true
}

// tryIntegerParity is rule 6: Integer/even and Integer/odd accept both
// Integer and Natural operand variants.
func tryIntegerParity(args []ast.Value, wantEven bool) (ast.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	s, ok := args[0].(ast.Scalar)
	if !ok || (s.Kind != ast.KindInteger && s.Kind != ast.KindNatural) {
		return nil, false
	}
	n, err := numeric.Int64(s.Num)
	if err != nil {
		return nil, false
	}
	isEven := n%2 == 0
	return ast.Scalar{Kind: ast.KindBool, Bool: isEven == wantEven}, true
}

// tryDoubleShow is rule 7: Double/show accepts Natural, Integer and
// Double operands, rendering through internal/core/numeric.Show so its
// output matches pkg/printer's own scalar rendering (spec.md §9).
func tryDoubleShow(args []ast.Value) (ast.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	s, ok := args[0].(ast.Scalar)
	if !ok {
		return nil, false
	}
	switch s.Kind {
	case ast.KindNatural, ast.KindInteger, ast.KindDouble:
		return ast.Scalar{Kind: ast.KindText, Text: numeric.Show(s.Kind, s.Num)}, true
	default:
		return nil, false
	}
}
