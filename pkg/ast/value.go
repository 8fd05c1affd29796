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

// Value is any residual produced by evaluate and consumed by quote
// (spec.md §3.2). Scalar, Alternative and Builtin are leaves with no
// internal Expr/Value substructure, so the same Go type implements both
// Expr and Value — they pass through evaluate unchanged, exactly as
// spec.md describes. Every other variant needs a distinct "residual"
// type (prefixed R) because its children are Values, not Exprs.
type Value interface {
	isValue()
}

func (Scalar) isValue()      {}
func (Alternative) isValue() {}
func (Builtin) isValue()     {}

// RVariable is a residual reference the evaluator could not resolve.
// Index follows the *value* convention (spec.md §3.4): Index = -(k+1)
// for a free variable k bindings beyond the environment's end. This is
// the opposite sign convention from Variable, by design.
type RVariable struct {
	Name  string
	Index int
}

func (RVariable) isValue() {}

// Closure bundles a lambda's parameter name, body and the environment
// captured when the lambda itself was evaluated (spec.md §3.2, §4.2).
// Instantiating it (internal/core/eval.Instantiate) is the only way its
// Body is ever evaluated.
type Closure struct {
	Param string
	Env   *Env
	Body  Expr
}

// RLambda is a value-level function.
type RLambda struct {
	Closure *Closure
}

func (RLambda) isValue() {}

// RApplication is the stuck form of function application: present only
// when neither a δ-rule nor β-reduction fired (spec.md §4.3, §4.4 rule 8).
type RApplication struct {
	Func Value
	Arg  Value
}

func (RApplication) isValue() {}

// RList is an ordered, already-evaluated sequence.
type RList struct {
	Elements []Value
}

func (RList) isValue() {}

// RField is one (name, value) entry of an RRecord, preserving
// declaration order.
type RField struct {
	Name string
	Val  Value
}

// RRecord is an ordered list of fields. Lookup returns the first field
// named name; later duplicates remain for iteration but are unreachable
// via Lookup (spec.md §4.5).
type RRecord struct {
	Fields []RField
}

func (RRecord) isValue() {}

// Lookup returns the value of the first field named name, if any.
func (r RRecord) Lookup(name string) (Value, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Val, true
		}
	}
	return nil, false
}

// RFieldAccess is the stuck form of a record projection: present when
// Record did not evaluate to an RRecord containing Key.
type RFieldAccess struct {
	Record Value
	Key    string
}

func (RFieldAccess) isValue() {}

// RMerge wraps a record of per-tag handlers. It is stuck until consumed
// as the function side of an RApplication whose argument is
// RApplication{Alternative, payload} (spec.md §4.4 rule 1).
type RMerge struct {
	Handlers Value
}

func (RMerge) isValue() {}

// RIf is the stuck form of a conditional: present when Pred did not
// evaluate to a Bool Scalar.
type RIf struct {
	Pred, Then, Else Value
}

func (RIf) isValue() {}

// ROperator is the stuck form of a binary operator application: present
// when no rewrite rule fired for the (already-evaluated) operands.
type ROperator struct {
	Left  Value
	Op    OperatorKind
	Right Value
}

func (ROperator) isValue() {}
