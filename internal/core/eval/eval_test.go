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

package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracelang/grace/internal/core/eval"
	"github.com/gracelang/grace/internal/core/quote"
	"github.com/gracelang/grace/pkg/ast"
	"github.com/gracelang/grace/pkg/parse"
	"github.com/gracelang/grace/pkg/printer"
)

// normalize is the parse -> evaluate -> quote -> print pipeline every
// scenario below drives, the same in/out string-comparison shape as
// cuelang.org/go/cue/ast_test.go's TestCompile table.
func normalize(t *testing.T, src string) string {
	t.Helper()
	expr, err := parse.Parse("<test>", src)
	require.NoError(t, err)
	v := eval.Eval(nil, expr)
	return printer.Print(quote.Quote(nil, v))
}

// TestScenarios covers spec.md §8's S1-S9 concrete end-to-end rows; S10
// and S11 have their own tests below.
func TestScenarios(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{"S1_beta_reduction", `(λx. x) 42`, "42"},
		{"S2_list_length", `List/length [1, 2, 3]`, "3"},
		{"S3_list_map", `List/map (λn. n + 1) [1, 2]`, "[2, 3]"},
		{"S4_list_fold", `List/fold [1, 2, 3] (λe. λa. e + a) 0`, "6"},
		{"S5_natural_fold", `Natural/fold 3 (λn. n + 1) 0`, "3"},
		{
			"S6_merge_sum_elimination",
			`merge { Left = λn. n + 1, Right = λb. if b then 1 else 0 } (Left 41)`,
			"42",
		},
		{"S7_integer_even", `Integer/even 4`, "True"},
		{"S7_integer_odd", `Integer/odd 7`, "True"},
		{"S8_field_access", `{ a = 1, b = 2 }.a`, "1"},
		{"S9_if_true_branch", `if True then "yes" else "no"`, `"yes"`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, normalize(t, tc.in))
		})
	}
}

// TestS10LambdaQuote checks that an unapplied lambda quotes back with its
// bound occurrence at index 0, matching spec.md §8 S10.
func TestS10LambdaQuote(t *testing.T) {
	got := normalize(t, `λx. x`)
	assert.Equal(t, `λx. x`, got)
}

// TestS11FreeVariableQuote checks that evaluating, then quoting, a free
// variable produces the same free occurrence at surface index 0, per
// spec.md §8 S11. There is no binder for y anywhere, so Eval immediately
// yields RVariable{"y", -1}, and Quote must turn that back into
// Variable{"y", 0} under the empty in-scope list.
func TestS11FreeVariableQuote(t *testing.T) {
	v := eval.Eval(nil, ast.Variable{Name: "y", Index: 0})
	got := quote.Quote(nil, v)
	assert.Equal(t, ast.Variable{Name: "y", Index: 0}, got)
}

// TestShadowing covers property 3: repeated let-bindings of the same
// name shadow, and @k reaches back to an outer one.
func TestShadowing(t *testing.T) {
	assert.Equal(t, "2", normalize(t, `let x = 1 let x = 2 in x`))
	assert.Equal(t, "1", normalize(t, `let x = 1 let x = 2 in x@1`))
}

// TestOperatorNeutralElements covers property 5.
func TestOperatorNeutralElements(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{"plus_right_zero", `5 + 0`, "5"},
		{"plus_left_zero", `0 + 5`, "5"},
		{"times_right_one", `5 * 1`, "5"},
		{"times_left_one", `1 * 5`, "5"},
		{"times_right_zero", `5 * 0`, "0"},
		{"times_left_zero", `0 * 5`, "0"},
		{"append_right_empty", `"hi" ++ ""`, `"hi"`},
		{"append_left_empty", `"" ++ "hi"`, `"hi"`},
		{"and_right_true", `False && True`, "False"},
		{"and_left_true", `True && False`, "False"},
		{"or_right_false", `True || False`, "True"},
		{"or_left_false", `False || True`, "True"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, normalize(t, tc.in))
		})
	}
}

// TestOperatorStuckFallback covers property 6: a free variable on one
// side of an operator leaves the whole node stuck, not erroring.
func TestOperatorStuckFallback(t *testing.T) {
	v := eval.Eval(nil, ast.Operator{
		Left:  ast.Variable{Name: "y", Index: 0},
		Op:    ast.Plus,
		Right: ast.NewNatural(1),
	})
	want := ast.ROperator{
		Left:  ast.RVariable{Name: "y", Index: -1},
		Op:    ast.Plus,
		Right: ast.NewNatural(1),
	}
	assert.Equal(t, want, v)
}

// TestScalarTransparency covers property 2: scalars pass through both
// evaluate and quote unchanged.
func TestScalarTransparency(t *testing.T) {
	scalars := []ast.Scalar{
		ast.NewNatural(7),
		ast.NewInteger(-3),
		ast.NewDouble(2.5),
		ast.NewText("hi"),
		ast.NewBool(true),
		ast.Null(),
	}
	for _, s := range scalars {
		v := eval.Eval(nil, s)
		assert.Equal(t, ast.Value(s), v)
		assert.Equal(t, ast.Expr(s), quote.Quote(nil, v))
	}
}

// TestBetaLaw covers property 4: applying a closed lambda to a closed
// argument agrees with evaluating the body under an environment already
// extended with the argument's value.
func TestBetaLaw(t *testing.T) {
	lambda, err := parse.Parse("<test>", `λx. x + 1`)
	require.NoError(t, err)
	arg, err := parse.Parse("<test>", `41`)
	require.NoError(t, err)

	viaApplication := eval.Eval(nil, ast.Application{Func: lambda, Arg: arg})

	lam := lambda.(ast.Lambda)
	argVal := eval.Eval(nil, arg)
	env := (*ast.Env)(nil).Extend(lam.Param, argVal)
	viaSubstitutedEnv := eval.Eval(env, lam.Body)

	assert.Equal(t, viaSubstitutedEnv, viaApplication)
	assert.Equal(t, ast.NewNatural(42), viaApplication)
}
