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

package printer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracelang/grace/pkg/parse"
	"github.com/gracelang/grace/pkg/printer"
)

// TestRoundTrip feeds source through parse then Print and checks the
// output reparses to a token-for-token-equivalent tree, the practical
// form of spec.md §8 property 1 (identity round-trip) once a concrete
// syntax sits in front of the core.
func TestRoundTrip(t *testing.T) {
	sources := []string{
		`42`,
		`-7`,
		`3.5`,
		`"hello"`,
		`True`,
		`None`,
		`λx. x`,
		`f x`,
		`1 + 2 * 3`,
		`{ a = 1, b = 2 }`,
		`[1, 2, 3]`,
		`merge { Left = λn. n, Right = λn. n }`,
	}
	for _, src := range sources {
		src := src
		t.Run(src, func(t *testing.T) {
			expr, err := parse.Parse("<test>", src)
			require.NoError(t, err)
			printed := printer.Print(expr)

			reparsed, err := parse.Parse("<test>", printed)
			require.NoError(t, err)
			reprinted := printer.Print(reparsed)

			assert.Equal(t, printed, reprinted)
		})
	}
}

func TestPrintPrecedenceParenthesization(t *testing.T) {
	expr, err := parse.Parse("<test>", `(1 + 2) * 3`)
	require.NoError(t, err)
	got := printer.Print(expr)
	assert.Equal(t, "(1 + 2) * 3", got)
}
