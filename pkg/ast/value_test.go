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

package ast_test

import (
	"testing"

	"github.com/cockroachdb/apd/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"

	"github.com/gracelang/grace/pkg/ast"
)

// decimalByText lets cmp compare an ast.Scalar's Num field without
// reflecting into apd.Decimal's Coeff, a math/big.Int-backed field with
// unexported internals and no Equal method; apd.Decimal.String() is
// already the canonical textual form Plus/Times/Show round-trip through,
// so comparing that is exactly as precise as comparing the decimal
// itself.
var decimalByText = cmp.Comparer(func(a, b apd.Decimal) bool {
	return a.String() == b.String()
})

// lambdaShape compares two RLambda values by Param and Body only. Env
// carries unexported fields and two closures captured at different points
// of a program legitimately point at unrelated environments even when
// they are otherwise interchangeable (same parameter, same body); a plain
// cmp.Equal would either panic on the unexported fields or, with
// cmpopts.IgnoreUnexported, silently treat Env as always-equal anyway, so
// a Comparer that names the intent is clearer than either.
var lambdaShape = cmp.Comparer(func(a, b ast.RLambda) bool {
	return a.Closure.Param == b.Closure.Param &&
		cmp.Equal(a.Closure.Body, b.Closure.Body, decimalByText)
})

func TestClosureShapeIgnoresCapturedEnv(t *testing.T) {
	body := ast.Operator{Left: ast.Variable{Name: "x", Index: 0}, Op: ast.Plus, Right: ast.NewNatural(1)}

	bare := ast.RLambda{Closure: &ast.Closure{Param: "x", Body: body, Env: nil}}
	withUnrelatedCapture := ast.RLambda{Closure: &ast.Closure{
		Param: "x",
		Body:  body,
		Env:   (*ast.Env)(nil).Extend("unrelated", ast.NewNatural(99)),
	}}

	assert.True(t, cmp.Equal(bare, withUnrelatedCapture, lambdaShape))
}

func TestClosureShapeDetectsBodyDifference(t *testing.T) {
	a := ast.RLambda{Closure: &ast.Closure{Param: "x", Body: ast.NewNatural(1)}}
	b := ast.RLambda{Closure: &ast.Closure{Param: "x", Body: ast.NewNatural(2)}}

	assert.False(t, cmp.Equal(a, b, lambdaShape))
}

// TestPrettyDiffOnMismatch exercises godebug/pretty the way a failing
// assertion's message would: a readable tree diff rather than a raw %#v
// dump, for the same class of failure a quoted-output mismatch produces.
func TestPrettyDiffOnMismatch(t *testing.T) {
	got := ast.Record{Fields: []ast.Field{{Name: "a", Val: ast.NewNatural(1)}}}
	want := ast.Record{Fields: []ast.Field{{Name: "a", Val: ast.NewNatural(2)}}}

	diff := pretty.Compare(want, got)
	assert.NotEmpty(t, diff, "expected a pretty-printed diff when records differ")

	assert.Empty(t, pretty.Compare(want, want), "identical trees must diff to nothing")
}
