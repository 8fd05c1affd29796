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

// evalOperator implements spec.md §4.4's Operator case and the
// op-specific rewrite rules that follow it. Both operands are evaluated
// first; if no rule fires the result is a stuck ROperator.
func evalOperator(env *ast.Env, op ast.Operator) ast.Value {
	l := Eval(env, op.Left)
	r := Eval(env, op.Right)

	if v, ok := rewriteOperator(l, op.Op, r); ok {
		return v
	}
	return ast.ROperator{Left: l, Op: op.Op, Right: r}
}

func rewriteOperator(l ast.Value, op ast.OperatorKind, r ast.Value) (ast.Value, bool) {
	switch op {
	case ast.And:
		return rewriteAnd(l, r)
	case ast.Or:
		return rewriteOr(l, r)
	case ast.Plus:
		return rewritePlus(l, r)
	case ast.Times:
		return rewriteTimes(l, r)
	case ast.Append:
		return rewriteAppend(l, r)
	default:
		return nil, false
	}
}

func asBool(v ast.Value) (bool, bool) {
	s, ok := v.(ast.Scalar)
	if !ok || s.Kind != ast.KindBool {
		return false, false
	}
	return s.Bool, true
}

func asNatural(v ast.Value) (ast.Scalar, bool) {
	s, ok := v.(ast.Scalar)
	if !ok || s.Kind != ast.KindNatural {
		return ast.Scalar{}, false
	}
	return s, true
}

func asText(v ast.Value) (string, bool) {
	s, ok := v.(ast.Scalar)
	if !ok || s.Kind != ast.KindText {
		return "", false
	}
	return s.Text, true
}

// rewriteAnd: true && y => y; false && _ => false; _ && true => x;
// _ && false => false (spec.md §4.4 "And").
func rewriteAnd(l, r ast.Value) (ast.Value, bool) {
	if lb, ok := asBool(l); ok {
		if lb {
			return r, true
		}
		return ast.NewBool(false), true
	}
	if rb, ok := asBool(r); ok {
		if rb {
			return l, true
		}
		return ast.NewBool(false), true
	}
	return nil, false
}

// rewriteOr: true || _ => true; false || y => y; _ || true => true;
// _ || false => x (spec.md §4.4 "Or").
func rewriteOr(l, r ast.Value) (ast.Value, bool) {
	if lb, ok := asBool(l); ok {
		if lb {
			return ast.NewBool(true), true
		}
		return r, true
	}
	if rb, ok := asBool(r); ok {
		if rb {
			return ast.NewBool(true), true
		}
		return l, true
	}
	return nil, false
}

// rewritePlus: 0 + y => y; x + 0 => x; nat m + nat n => nat (m+n)
// (spec.md §4.4 "Plus"). Left-operand patterns are tried before
// right-operand ones, per spec.md's ordering note.
func rewritePlus(l, r ast.Value) (ast.Value, bool) {
	ln, lok := asNatural(l)
	rn, rok := asNatural(r)
	if lok && numeric.IsZero(ln.Num) {
		return r, true
	}
	if rok && numeric.IsZero(rn.Num) {
		return l, true
	}
	if lok && rok {
		return ast.Scalar{Kind: ast.KindNatural, Num: numeric.Add(ln.Num, rn.Num)}, true
	}
	return nil, false
}

// rewriteTimes: 1 * y => y; 0 * _ => 0; x * 1 => x; _ * 0 => 0;
// nat m * nat n => nat (m*n) (spec.md §4.4 "Times"). Zero-before-one
// ordering and left-before-right are both as specified.
func rewriteTimes(l, r ast.Value) (ast.Value, bool) {
	ln, lok := asNatural(l)
	rn, rok := asNatural(r)
	if lok && numeric.IsZero(ln.Num) {
		return ast.NewNatural(0), true
	}
	if lok && numeric.IsOne(ln.Num) {
		return r, true
	}
	if rok && numeric.IsZero(rn.Num) {
		return ast.NewNatural(0), true
	}
	if rok && numeric.IsOne(rn.Num) {
		return l, true
	}
	if lok && rok {
		return ast.Scalar{Kind: ast.KindNatural, Num: numeric.Mul(ln.Num, rn.Num)}, true
	}
	return nil, false
}

// rewriteAppend: "" ++ y => y; x ++ "" => x; text a ++ text b =>
// text (a++b) (spec.md §4.4 "Append").
func rewriteAppend(l, r ast.Value) (ast.Value, bool) {
	lt, lok := asText(l)
	rt, rok := asText(r)
	if lok && lt == "" {
		return r, true
	}
	if rok && rt == "" {
		return l, true
	}
	if lok && rok {
		return ast.NewText(lt + rt), true
	}
	return nil, false
}
