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

package quote

import (
	"sort"

	"github.com/mpvl/unique"
)

// DistinctNames returns the sorted, deduplicated set of names appearing
// anywhere in inScope. It is not used by Quote itself — Quote's readback
// must see every occurrence, shadowed or not, to compute occurrence
// counts correctly — but cmd/grace's repl ":scope" command uses it to
// summarize a (possibly deeply shadowed) environment without repeating a
// name once per shadow, the same sorted-dedupe idiom
// cuelang.org/go uses internally for feature lists.
func DistinctNames(inScope []string) []string {
	names := append([]string(nil), inScope...)
	sort.Strings(names)
	unique.Strings(&names)
	return names
}
