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
	"github.com/spf13/cobra"
)

// newRootCmd builds the base "grace" command. Subcommands own their own
// RunE rather than going through a shared runFunction indirection the
// way cmd/cue/cmd does for its user-defined-command machinery — grace
// has no equivalent of CUE's "_tool.cue" command discovery, so that
// indirection would have nothing to dispatch to.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grace",
		Short: "grace normalizes expressions of the Language by evaluation",
		Long: `grace parses, evaluates and quotes expressions of the Language,
a small statically-typed functional expression language, using
normalization by evaluation: source is evaluated to a residual value
under an environment, then read back ("quoted") into source again in
fully-normal form.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.AddCommand(
		newNormalizeCmd(),
		newFmtCmd(),
		newReplCmd(),
	)

	return cmd
}
