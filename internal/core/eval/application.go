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

import "github.com/gracelang/grace/pkg/ast"

// evalApplication implements spec.md §4.4's Application case: evaluate
// both sides, try the δ-rules in order, and fall back to Apply if none
// fires. Rule order matters only in that sum-elimination (rule 1) is
// checked before the general builtin spine (rules 2-7) — the two can
// never both match the same term, so in practice order is not
// observable, but the split mirrors the spec's own enumeration.
func evalApplication(env *ast.Env, app ast.Application) ast.Value {
	f := Eval(env, app.Func)
	x := Eval(env, app.Arg)

	if v, ok := evalSumElimination(f, x); ok {
		return v
	}

	head, args := spine(f)
	args = append(args, x)

	if b, ok := head.(ast.Builtin); ok {
		if v, ok := tryBuiltin(b.ID, args); ok {
			return v
		}
	}

	return Apply(f, x)
}

// evalSumElimination is rule 1: merge { tag1 = h1, ... } (tag payload)
// reduces to apply(h, payload) when tag is a handled key (spec.md §4.4
// rule 1).
func evalSumElimination(f, x ast.Value) (ast.Value, bool) {
	m, ok := f.(ast.RMerge)
	if !ok {
		return nil, false
	}
	inner, ok := x.(ast.RApplication)
	if !ok {
		return nil, false
	}
	tag, ok := inner.Func.(ast.Alternative)
	if !ok {
		return nil, false
	}
	handlers, ok := m.Handlers.(ast.RRecord)
	if !ok {
		return nil, false
	}
	handler, ok := handlers.Lookup(tag.Name)
	if !ok {
		return nil, false
	}
	return Apply(handler, inner.Arg), true
}
