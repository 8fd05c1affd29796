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

// Command grace evaluates and normalizes grace source files: it is the
// thinnest possible shell over pkg/parse, internal/core/eval,
// internal/core/quote and pkg/printer, in the same spirit as cmd/cue
// shells over cuelang.org/go's evaluator.
package main

import "os"

func main() {
	os.Exit(Main())
}

// Main runs the grace CLI and returns the process exit code.
func Main() int {
	if err := newRootCmd().Execute(); err != nil {
		return 1
	}
	return 0
}
