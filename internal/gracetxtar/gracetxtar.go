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

// Package gracetxtar is a golden-file test harness for the evaluator
// and quoter, grounded on cuelang.org/go/internal/cuetxtar's txtar-test
// pattern as used from internal/core/adt/eval_test.go: every test case
// is a rogpeppe/go-internal/txtar archive of named sections under a
// testdata directory, one section holds the grace source under test
// and another (appended or compared with -update) holds the expected
// normalized output.
//
// The CUE original drives cue.Instance/validate.Validate; grace has no
// module system or type checker in scope, so a case here is just
// "source in, quoted result out" compared textually.
package gracetxtar

import (
	"flag"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/rogpeppe/go-internal/txtar"
)

// Update, when set via -update, makes Suite.Run rewrite each archive's
// "out" section with the function's actual output instead of comparing
// against it — the same flag name and semantics as cuetxtar.TxTarTest.
var Update = flag.Bool("update", false, "update golden txtar output sections")

// Case is one parsed .txtar test case.
type Case struct {
	Name    string // relative path under Root, without extension
	path    string // absolute path to the .txtar file, for -update
	archive *txtar.Archive
}

// File returns the contents of the named section (e.g. "in.grace"), or
// "" if absent.
func (c *Case) File(name string) string {
	for _, f := range c.archive.Files {
		if f.Name == name {
			return string(f.Data)
		}
	}
	return ""
}

// Suite loads every *.txtar file under root.
type Suite struct {
	Root string
}

// Load walks Root and returns one Case per *.txtar file found, sorted by
// name for deterministic test ordering.
func (s Suite) Load(t *testing.T) []*Case {
	t.Helper()
	var cases []*Case
	err := filepath.Walk(s.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".txtar" {
			return nil
		}
		rel, err := filepath.Rel(s.Root, path)
		if err != nil {
			return err
		}
		name := rel[:len(rel)-len(".txtar")]
		cases = append(cases, &Case{
			Name:    filepath.ToSlash(name),
			path:    path,
			archive: mustParse(path),
		})
		return nil
	})
	if err != nil {
		t.Fatalf("gracetxtar: walking %s: %v", s.Root, err)
	}
	sort.Slice(cases, func(i, j int) bool { return cases[i].Name < cases[j].Name })
	return cases
}

func mustParse(path string) *txtar.Archive {
	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	return txtar.Parse(data)
}

// Run executes fn for every case under s.Root as a subtest, comparing
// fn's return value against the case's "out" section. With -update, the
// "out" section is rewritten in place instead.
func (s Suite) Run(t *testing.T, fn func(t *testing.T, c *Case) string) {
	for _, c := range s.Load(t) {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			got := fn(t, c)
			want := c.File("out")
			if *Update {
				c.setOut(got)
				return
			}
			if got != want {
				t.Errorf("output mismatch for %s:\n got: %q\nwant: %q", c.Name, got, want)
			}
		})
	}
}

func (c *Case) setOut(got string) {
	found := false
	for i, f := range c.archive.Files {
		if f.Name == "out" {
			c.archive.Files[i].Data = []byte(got)
			found = true
		}
	}
	if !found {
		c.archive.Files = append(c.archive.Files, txtar.File{Name: "out", Data: []byte(got)})
	}
	if err := os.WriteFile(c.path, txtar.Format(c.archive), 0o644); err != nil {
		panic(err)
	}
}

// Parse builds an archive from an inline string, for tests that want
// txtar's section syntax for readability without a testdata file.
func Parse(s string) *txtar.Archive { return txtar.Parse([]byte(s)) }
