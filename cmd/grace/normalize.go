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
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gracelang/grace/internal/core/eval"
	"github.com/gracelang/grace/internal/core/quote"
	"github.com/gracelang/grace/pkg/config"
	"github.com/gracelang/grace/pkg/parse"
	"github.com/gracelang/grace/pkg/printer"
)

func newNormalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize <file>",
		Short: "evaluate and quote a grace source file",
		Long: `normalize reads a grace source file, evaluates it under the empty
environment, quotes the resulting value back into surface form, and
prints the normalized source.`,
		Args: cobra.ExactArgs(1),
		RunE: runNormalize,
	}
	cmd.Flags().Bool("raw", false, "print the unquoted residual value's Go representation instead of source")
	return cmd
}

func runNormalize(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.Load(filepath.Dir(args[0]))
	if err != nil {
		return err
	}

	expr, err := parse.Parse(args[0], string(src), parse.WithEmbedRoot(cfg.EmbedRoot))
	if err != nil {
		return err
	}

	v := eval.Eval(nil, expr)

	raw, _ := cmd.Flags().GetBool("raw")
	if raw {
		fmt.Fprintf(cmd.OutOrStdout(), "%#v\n", v)
		return nil
	}

	normal := quote.Quote(nil, v)
	fmt.Fprintln(cmd.OutOrStdout(), printer.Print(normal))
	return nil
}
