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

// Package numeric centralizes the apd.Decimal arithmetic shared by the
// evaluator's Plus/Times δ-rules (spec.md §4.4) and Double/show
// rendering, so grace has exactly one place that decides how numeric
// scalars add, multiply and print — grounded on the same cockroachdb/apd
// dependency cuelang.org/go/internal/core/adt uses for its own Num type.
package numeric

import (
	"strings"

	"github.com/cockroachdb/apd/v2"

	"github.com/gracelang/grace/pkg/ast"
)

// context is shared, precision-bounded arithmetic context. 40 digits is
// comfortably beyond float64 precision and matches the headroom
// cockroachdb/apd's own BaseContext examples use for exact decimal work.
var context = apd.BaseContext.WithPrecision(40)

// Add returns the decimal a+b. Both operands must already be the
// values of Natural scalars (callers check Kind before calling; the δ-rule in spec.md §4.4
// "Plus" never fires for mixed numeric variants).
func Add(a, b apd.Decimal) apd.Decimal {
	var out apd.Decimal
	if _, err := context.Add(&out, &a, &b); err != nil {
		panic("numeric: add: " + err.Error())
	}
	return out
}

// Mul returns the decimal a*b, under the same conditions as Add.
func Mul(a, b apd.Decimal) apd.Decimal {
	var out apd.Decimal
	if _, err := context.Mul(&out, &a, &b); err != nil {
		panic("numeric: mul: " + err.Error())
	}
	return out
}

// IsZero reports whether d is the exact value 0.
func IsZero(d apd.Decimal) bool {
	return d.IsZero()
}

// IsOne reports whether d is the exact value 1.
func IsOne(d apd.Decimal) bool {
	var one apd.Decimal
	one.SetFinite(1, 0)
	return d.Cmp(&one) == 0
}

// Int64 returns d as an int64, for builtins that need a machine-sized
// integer: Natural/fold's loop bound and Integer/even/Integer/odd's
// parity test. d is expected to already be an integer (the value of a
// Natural or Integer scalar).
func Int64(d apd.Decimal) (int64, error) {
	return d.Int64()
}

// FromUint64 builds a Decimal from a machine-sized count, the mirror of
// Int64, used to turn List/length's result back into a Natural scalar.
func FromUint64(n uint64) apd.Decimal {
	var d apd.Decimal
	d.SetFinite(int64(n), 0)
	return d
}

// Show renders a numeric scalar the way Double/show (spec.md §4.4 rule 7
// and §9's open question) must: Natural and Integer operands print as
// plain decimal integers; Double operands always keep at least one
// fractional digit, so `3` prints as `3.0`. pkg/printer's own scalar
// rendering calls this same function, so Double/show's output is never
// distinguishable from how the pretty-printer would render that scalar.
func Show(kind ast.ScalarKind, d apd.Decimal) string {
	text := d.Text('f')
	if kind != ast.KindDouble {
		return text
	}
	if !strings.Contains(text, ".") {
		text += ".0"
	}
	return text
}
