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

// Package eval is grace's normalization-by-evaluation core (spec.md §2,
// component C5 plus the applier C6 and closure instantiation C4). It is
// purely functional: Eval never blocks, never mutates its Env argument,
// and never returns a Go error — ill-typed input produces a stuck
// neutral Value, never a panic (spec.md §7), matching
// cuelang.org/go/internal/core/eval.Evaluate's total-evaluator contract.
package eval

import (
	"github.com/gracelang/grace/pkg/ast"
)

// Eval is the evaluator entry point (spec.md §6.1).
func Eval(env *ast.Env, expr ast.Expr) ast.Value {
	switch x := expr.(type) {
	case ast.Variable:
		return env.Lookup(x.Name, x.Index)

	case ast.Lambda:
		return ast.RLambda{Closure: &ast.Closure{
			Param: x.Param,
			Env:   env,
			Body:  x.Body,
		}}

	case ast.Application:
		return evalApplication(env, x)

	case ast.Annotation:
		return Eval(env, x.Expr)

	case ast.Let:
		cur := env
		for _, b := range x.Bindings {
			cur = cur.Extend(b.Name, Eval(cur, b.Rhs))
		}
		return Eval(cur, x.Body)

	case ast.List:
		elems := make([]ast.Value, len(x.Elements))
		for i, e := range x.Elements {
			elems[i] = Eval(env, e)
		}
		return ast.RList{Elements: elems}

	case ast.Record:
		fields := make([]ast.RField, len(x.Fields))
		for i, f := range x.Fields {
			fields[i] = ast.RField{Name: f.Name, Val: Eval(env, f.Val)}
		}
		return ast.RRecord{Fields: fields}

	case ast.FieldAccess:
		rec := Eval(env, x.Record)
		if r, ok := rec.(ast.RRecord); ok {
			if v, ok := r.Lookup(x.Key); ok {
				return v
			}
		}
		return ast.RFieldAccess{Record: rec, Key: x.Key}

	case ast.Alternative:
		return x

	case ast.Merge:
		return ast.RMerge{Handlers: Eval(env, x.Record)}

	case ast.If:
		p := Eval(env, x.Pred)
		if b, ok := p.(ast.Scalar); ok && b.Kind == ast.KindBool {
			if b.Bool {
				return Eval(env, x.Then)
			}
			return Eval(env, x.Else)
		}
		return ast.RIf{
			Pred: p,
			Then: Eval(env, x.Then),
			Else: Eval(env, x.Else),
		}

	case ast.Scalar:
		return x

	case ast.Builtin:
		return x

	case ast.Operator:
		return evalOperator(env, x)

	case ast.Embed:
		return x.Payload.Resolve()

	default:
		panic("eval: unknown surface expression node")
	}
}

// Instantiate applies a closure's body to arg by extending its captured
// environment and re-entering Eval (spec.md §4.2, component C4). It is
// the only way a lambda body is ever evaluated.
func Instantiate(c *ast.Closure, arg ast.Value) ast.Value {
	return Eval(c.Env.Extend(c.Param, arg), c.Body)
}

// Apply is the applier (spec.md §4.3, component C6): it reduces into a
// closure body, or else forms a stuck application node. δ-rules for
// built-ins do not live here; they live in evalApplication, which
// inspects the fully-saturated operand spine before falling back to
// Apply (spec.md §4.3's note, §4.4).
func Apply(f, x ast.Value) ast.Value {
	if lam, ok := f.(ast.RLambda); ok {
		return Instantiate(lam.Closure, x)
	}
	return ast.RApplication{Func: f, Arg: x}
}
