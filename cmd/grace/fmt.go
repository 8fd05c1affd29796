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

	"github.com/gracelang/grace/pkg/config"
	"github.com/gracelang/grace/pkg/parse"
	"github.com/gracelang/grace/pkg/printer"
)

func newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <file>",
		Short: "reformat a grace source file without evaluating it",
		Args:  cobra.ExactArgs(1),
		RunE:  runFmt,
	}
}

func runFmt(cmd *cobra.Command, args []string) error {
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
	fmt.Fprintln(cmd.OutOrStdout(), printer.Print(expr))
	return nil
}
