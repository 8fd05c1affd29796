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

// Package errors is grace's positional error type, for everything around
// the normalization core that can actually fail: parsing, embed
// resolution, the CLI. The core itself is total (spec.md §7) and never
// returns one of these — ill-typed input becomes a stuck Value, not an
// Error. Grounded on the *bottom/valueError split in
// cuelang.org/go/cue/errors.go: one concrete type that tracks a source
// position and supports being collected into a List.
package errors

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/xerrors"

	"github.com/gracelang/grace/pkg/token"
)

// Error is any grace error with a source position. InputPositions
// reports the positions of any other inputs the error implicates beyond
// Position itself (e.g. a wrapped cause's own position) — the same two-
// method contract as cue/errors.Error.
type Error interface {
	error
	Position() token.Pos
	InputPositions() []token.Pos
}

type posError struct {
	pos    token.Pos
	msg    string
	cause  error
	others []token.Pos
}

func (e *posError) Error() string {
	if e.pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.pos, e.msg)
	}
	return e.msg
}

func (e *posError) Position() token.Pos { return e.pos }

func (e *posError) InputPositions() []token.Pos { return e.others }

func (e *posError) Unwrap() error { return e.cause }

// New builds a positional error.
func New(pos token.Pos, format string, args ...interface{}) Error {
	return &posError{pos: pos, msg: fmt.Sprintf(format, args...)}
}

// Wrap builds a positional error around an existing cause, keeping the
// cause inspectable via errors.Is/errors.As. It goes through
// golang.org/x/xerrors rather than hand-rolling a cause chain, the same
// dependency the teacher's module graph already carries for pre-Go 1.13
// wrapping parity. If cause is itself an Error, its position and input
// positions carry over as this error's InputPositions, the way wrapping
// one cue/errors.Error in another keeps both positions reportable.
func Wrap(pos token.Pos, cause error, format string, args ...interface{}) Error {
	msg := fmt.Sprintf(format, args...)
	var others []token.Pos
	if ce, ok := cause.(Error); ok {
		others = append(others, ce.Position())
		others = append(others, ce.InputPositions()...)
	}
	return &posError{
		pos:    pos,
		msg:    msg,
		cause:  xerrors.Errorf("%s: %w", msg, cause),
		others: others,
	}
}

// List is an ordered collection of Errors, itself an error. Grounded on
// cue/errors.go's bottom.Msg()/Format() multi-error rendering.
type List []Error

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	default:
		var b strings.Builder
		for i, e := range l {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(e.Error())
		}
		return b.String()
	}
}

// Append adds err to errs, flattening a nested List rather than nesting
// it, so error lists never grow a tree.
func Append(errs List, err error) List {
	switch e := err.(type) {
	case nil:
		return errs
	case List:
		return append(errs, e...)
	case Error:
		return append(errs, e)
	default:
		return append(errs, New(token.NoPos, "%s", e.Error()))
	}
}

// Sanitize sorts errs by position and drops exact-duplicate messages at
// the same position, matching cue/errors' own sanitize-before-report
// step.
func Sanitize(errs List) List {
	sorted := append(List(nil), errs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		pi, pj := sorted[i].Position(), sorted[j].Position()
		if pi.File != pj.File {
			return pi.File < pj.File
		}
		if pi.Line != pj.Line {
			return pi.Line < pj.Line
		}
		return pi.Column < pj.Column
	})

	out := sorted[:0]
	var lastKey string
	for _, e := range sorted {
		key := e.Position().String() + "|" + e.Error()
		if key == lastKey {
			continue
		}
		lastKey = key
		out = append(out, e)
	}
	return out
}
