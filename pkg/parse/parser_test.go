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

package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracelang/grace/pkg/ast"
	"github.com/gracelang/grace/pkg/parse"
)

func TestParsePrimitives(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want ast.Expr
	}{
		{"natural", "3", ast.NewNatural(3)},
		{"integer", "-3", ast.NewInteger(-3)},
		{"double", "3.5", ast.NewDouble(3.5)},
		{"text", `"hi"`, ast.NewText("hi")},
		{"true", "True", ast.NewBool(true)},
		{"false", "False", ast.NewBool(false)},
		{"null", "None", ast.Null()},
		{"alternative", "Left", ast.Alternative{Name: "Left"}},
		{"variable", "x", ast.Variable{Name: "x", Index: 0}},
		{"variable_with_selector", "x@2", ast.Variable{Name: "x", Index: 2}},
		{"builtin", "List/length", ast.Builtin{ID: ast.ListLength}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := parse.Parse("<test>", tc.in)
			require.NoError(t, err)
			assert.Equal(t, stripLoc(tc.want), stripLoc(got))
		})
	}
}

func TestParseLambdaAndApplication(t *testing.T) {
	got, err := parse.Parse("<test>", `λx. x y`)
	require.NoError(t, err)
	want := ast.Lambda{
		Param: "x",
		Body: ast.Application{
			Func: ast.Variable{Name: "x", Index: 0},
			Arg:  ast.Variable{Name: "y", Index: 0},
		},
	}
	assert.Equal(t, stripLoc(want), stripLoc(got))
}

func TestParseOperatorPrecedence(t *testing.T) {
	// "*" binds tighter than "+", so "1 + 2 * 3" parses as "1 + (2 * 3)".
	got, err := parse.Parse("<test>", "1 + 2 * 3")
	require.NoError(t, err)
	want := ast.Operator{
		Left: ast.NewNatural(1),
		Op:   ast.Plus,
		Right: ast.Operator{
			Left:  ast.NewNatural(2),
			Op:    ast.Times,
			Right: ast.NewNatural(3),
		},
	}
	assert.Equal(t, stripLoc(want), stripLoc(got))
}

func TestParseLetChain(t *testing.T) {
	got, err := parse.Parse("<test>", "let x = 1 let y = 2 in x")
	require.NoError(t, err)
	want := ast.Let{
		Bindings: []ast.Binding{
			{Name: "x", Rhs: ast.NewNatural(1)},
			{Name: "y", Rhs: ast.NewNatural(2)},
		},
		Body: ast.Variable{Name: "x", Index: 0},
	}
	assert.Equal(t, stripLoc(want), stripLoc(got))
}

func TestParseRecordAndList(t *testing.T) {
	got, err := parse.Parse("<test>", `{ a = 1, b = [2, 3] }`)
	require.NoError(t, err)
	want := ast.Record{Fields: []ast.Field{
		{Name: "a", Val: ast.NewNatural(1)},
		{Name: "b", Val: ast.List{Elements: []ast.Expr{ast.NewNatural(2), ast.NewNatural(3)}}},
	}}
	assert.Equal(t, stripLoc(want), stripLoc(got))
}

// stripLoc normalizes every node's source position to zero so structural
// tests don't have to predict exact line/column numbers.
func stripLoc(e ast.Expr) ast.Expr {
	switch x := e.(type) {
	case ast.Variable:
		x.Loc = ast.Variable{}.Loc
		return x
	case ast.Lambda:
		x.Loc = ast.Lambda{}.Loc
		x.Body = stripLoc(x.Body)
		return x
	case ast.Application:
		x.Loc = ast.Application{}.Loc
		x.Func = stripLoc(x.Func)
		x.Arg = stripLoc(x.Arg)
		return x
	case ast.Operator:
		x.Loc = ast.Operator{}.Loc
		x.Left = stripLoc(x.Left)
		x.Right = stripLoc(x.Right)
		return x
	case ast.Let:
		x.Loc = ast.Let{}.Loc
		for i := range x.Bindings {
			x.Bindings[i].Loc = ast.Binding{}.Loc
			x.Bindings[i].Rhs = stripLoc(x.Bindings[i].Rhs)
			if x.Bindings[i].OptionalType != nil {
				x.Bindings[i].OptionalType = stripLoc(x.Bindings[i].OptionalType)
			}
		}
		x.Body = stripLoc(x.Body)
		return x
	case ast.List:
		x.Loc = ast.List{}.Loc
		elems := make([]ast.Expr, len(x.Elements))
		for i, el := range x.Elements {
			elems[i] = stripLoc(el)
		}
		x.Elements = elems
		return x
	case ast.Record:
		x.Loc = ast.Record{}.Loc
		fields := make([]ast.Field, len(x.Fields))
		for i, f := range x.Fields {
			f.Loc = ast.Field{}.Loc
			f.Val = stripLoc(f.Val)
			fields[i] = f
		}
		x.Fields = fields
		return x
	case ast.Scalar:
		x.Loc = ast.Scalar{}.Loc
		return x
	case ast.Alternative:
		x.Loc = ast.Alternative{}.Loc
		return x
	case ast.Builtin:
		x.Loc = ast.Builtin{}.Loc
		return x
	default:
		return e
	}
}
