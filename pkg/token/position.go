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

// Package token defines the source-location representation threaded
// unchanged through pkg/ast. It is opaque to the normalization core:
// evaluate and quote never inspect it beyond carrying it along or
// substituting NoPos.
package token

import "fmt"

// Pos identifies a line and column in a named source file.
type Pos struct {
	File   string
	Line   int
	Column int
}

// NoPos is the unit location: quote's output carries NoPos everywhere
// (spec.md §6.2 — the core's input/output AST has no meaningful position
// once it has passed through readback).
var NoPos = Pos{}

// IsValid reports whether p designates an actual source location.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}
