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

// Env is an ordered name -> Value binding stack, newest first (spec.md
// §3.3). It is value-level: looking up a name returns an already
// evaluated Value, never a thunk. Env is immutable once constructed;
// Extend returns a new *Env that shares the tail with its parent, the
// same structural-sharing linked-environment shape as
// cuelang.org/go/internal/core/adt.Environment's Up-chained frames.
type Env struct {
	name  string
	value Value
	up    *Env
}

// Extend returns the environment obtained by prepending (name, value) to
// e. e itself is untouched, so closures that captured e remain valid.
func (e *Env) Extend(name string, value Value) *Env {
	return &Env{name: name, value: value, up: e}
}

// Lookup resolves name/index against e (spec.md §4.1, component C3).
// It scans newest-first: on each binding named name, index is
// decremented until it reaches zero, at which point that binding's
// value is returned. If e is exhausted with a non-negative index
// remaining, the result is a free-variable marker
// RVariable{name, -(remaining)-1} (spec.md §3.4).
func (e *Env) Lookup(name string, index int) Value {
	remaining := index
	for cur := e; cur != nil; cur = cur.up {
		if cur.name != name {
			continue
		}
		if remaining == 0 {
			return cur.value
		}
		remaining--
	}
	return RVariable{Name: name, Index: -remaining - 1}
}

// Names returns the in-scope names newest-first, for callers (notably
// cmd/grace's repl, which passes them to quote.Quote) that need the
// names, with every shadowed occurrence, without looking up values.
func (e *Env) Names() []string {
	var names []string
	for cur := e; cur != nil; cur = cur.up {
		names = append(names, cur.name)
	}
	return names
}
