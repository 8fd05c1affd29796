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

	"github.com/stretchr/testify/require"

	"github.com/gracelang/grace/internal/core/eval"
	"github.com/gracelang/grace/internal/core/quote"
	"github.com/gracelang/grace/internal/gracetxtar"
	"github.com/gracelang/grace/pkg/parse"
	"github.com/gracelang/grace/pkg/printer"
)

// TestGolden drives the full parse -> evaluate -> quote -> print pipeline
// over every testdata/*.txtar case, the end-to-end counterpart to
// TestScenarios' direct in-process table.
func TestGolden(t *testing.T) {
	suite := gracetxtar.Suite{Root: "testdata"}
	suite.Run(t, func(t *testing.T, c *gracetxtar.Case) string {
		expr, err := parse.Parse(c.Name+".grace", c.File("in.grace"))
		require.NoError(t, err)
		v := eval.Eval(nil, expr)
		return printer.Print(quote.Quote(nil, v)) + "\n"
	})
}
