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

package eval

import "github.com/gracelang/grace/pkg/ast"

// spine peels off nested RApplication layers and exposes a (head,
// arguments-in-order) view, the helper spec.md §9 recommends for
// languages (like Go) lacking deep structural pattern matching. A
// multi-argument builtin call such as `List/fold list cons zero` is
// represented internally as nested single-argument applications; spine
// turns that back into (Builtin(ListFold), [list, cons, zero]).
func spine(v ast.Value) (head ast.Value, args []ast.Value) {
	if app, ok := v.(ast.RApplication); ok {
		h, a := spine(app.Func)
		return h, append(a, app.Arg)
	}
	return v, nil
}
