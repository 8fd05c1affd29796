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

package embed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gracelang/grace/pkg/ast"
	"github.com/gracelang/grace/pkg/embed"
)

func TestBytesResolveScalars(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want ast.Value
	}{
		{"null", "null", ast.Null()},
		{"bool", "true", ast.NewBool(true)},
		{"natural", "7", ast.NewNatural(7)},
		{"integer", "-7", ast.NewInteger(-7)},
		{"float", "2.5", ast.NewDouble(2.5)},
		{"text", "hello", ast.NewText("hello")},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := embed.Bytes{Name: tc.name, Data: []byte(tc.yaml)}.Resolve()
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBytesResolveSequence(t *testing.T) {
	got := embed.Bytes{Name: "seq", Data: []byte("- 1\n- 2\n- 3\n")}.Resolve()
	want := ast.RList{Elements: []ast.Value{
		ast.NewNatural(1), ast.NewNatural(2), ast.NewNatural(3),
	}}
	assert.Equal(t, want, got)
}

func TestBytesResolveMapping(t *testing.T) {
	got := embed.Bytes{Name: "map", Data: []byte("a: 1\nb: hi\n")}.Resolve()
	want := ast.RRecord{Fields: []ast.RField{
		{Name: "a", Val: ast.NewNatural(1)},
		{Name: "b", Val: ast.NewText("hi")},
	}}
	assert.Equal(t, want, got)
}

func TestFileResolveMissing(t *testing.T) {
	assert.Panics(t, func() {
		embed.File{Path: "/no/such/file.yaml"}.Resolve()
	})
}
