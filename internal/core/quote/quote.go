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

// Package quote is grace's readback layer (spec.md §2 component C8, plus
// the fresh-name helper C7). It turns a residual Value back into a
// surface Expr with no annotations, no lets, no embeds and no meaningful
// source positions — the inverse direction of internal/core/eval,
// grounded on cuelang.org/go/internal/core/export's frame-based
// re-introduction of identifiers during readback.
package quote

import (
	"github.com/gracelang/grace/internal/core/eval"
	"github.com/gracelang/grace/pkg/ast"
	"github.com/gracelang/grace/pkg/token"
)

// Fresh produces a fresh indexed placeholder for name, given the names
// currently in scope (spec.md §4.6, component C7): the occurrence
// selector equal to the number of prior in-scope bindings of that same
// name. A name with no collisions yields index 0.
func Fresh(name string, inScope []string) ast.RVariable {
	return ast.RVariable{Name: name, Index: countOccurrences(inScope, name)}
}

// Quote is the quoter entry point (spec.md §6.2, component C8). inScope
// lists names currently in scope, newest first.
func Quote(inScope []string, v ast.Value) ast.Expr {
	switch x := v.(type) {
	case ast.RVariable:
		return ast.Variable{
			Loc:   token.NoPos,
			Name:  x.Name,
			Index: countOccurrences(inScope, x.Name) - x.Index - 1,
		}

	case ast.RLambda:
		return quoteLambda(inScope, x)

	case ast.RApplication:
		return ast.Application{
			Loc:  token.NoPos,
			Func: Quote(inScope, x.Func),
			Arg:  Quote(inScope, x.Arg),
		}

	case ast.RList:
		elems := make([]ast.Expr, len(x.Elements))
		for i, e := range x.Elements {
			elems[i] = Quote(inScope, e)
		}
		return ast.List{Loc: token.NoPos, Elements: elems}

	case ast.RRecord:
		fields := make([]ast.Field, len(x.Fields))
		for i, f := range x.Fields {
			fields[i] = ast.Field{Loc: token.NoPos, Name: f.Name, Val: Quote(inScope, f.Val)}
		}
		return ast.Record{Loc: token.NoPos, Fields: fields}

	case ast.RFieldAccess:
		return ast.FieldAccess{
			Loc:    token.NoPos,
			Record: Quote(inScope, x.Record),
			Key:    x.Key,
		}

	case ast.Alternative:
		return x

	case ast.RMerge:
		return ast.Merge{Loc: token.NoPos, Record: Quote(inScope, x.Handlers)}

	case ast.RIf:
		return ast.If{
			Loc:  token.NoPos,
			Pred: Quote(inScope, x.Pred),
			Then: Quote(inScope, x.Then),
			Else: Quote(inScope, x.Else),
		}

	case ast.Scalar:
		return x

	case ast.ROperator:
		return ast.Operator{
			Loc:   token.NoPos,
			Left:  Quote(inScope, x.Left),
			Op:    x.Op,
			Right: Quote(inScope, x.Right),
		}

	case ast.Builtin:
		return x

	default:
		panic("quote: unknown value node")
	}
}

func quoteLambda(inScope []string, lam ast.RLambda) ast.Expr {
	param := lam.Closure.Param
	v := Fresh(param, inScope)

	extended := make([]string, 0, len(inScope)+1)
	extended = append(extended, param)
	extended = append(extended, inScope...)

	body := Quote(extended, eval.Instantiate(lam.Closure, v))
	return ast.Lambda{Loc: token.NoPos, Param: param, Body: body}
}

func countOccurrences(inScope []string, name string) int {
	n := 0
	for _, s := range inScope {
		if s == name {
			n++
		}
	}
	return n
}
