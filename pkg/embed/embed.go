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

// Package embed gives pkg/ast.Embed something concrete to carry.
// spec.md §6.3 only specifies the EmbedPayload contract ("Resolve must
// return an already-evaluated Value") and leaves what backs it to the
// embedding application; this package backs it with YAML files on disk,
// the way a grace program might `import "./config.yaml"`.
//
// Decoding follows gopkg.in/yaml.v3's node-walking style (the same
// library the teacher repo's own config loading pulls in transitively)
// rather than unmarshalling into interface{}, so floats, negative and
// non-negative integers map onto grace's Double/Integer/Natural three-
// way split instead of collapsing to a single numeric Go type.
package embed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gracelang/grace/pkg/ast"
	"github.com/gracelang/grace/pkg/errors"
	"github.com/gracelang/grace/pkg/token"
)

// File is an EmbedPayload backed by a YAML file on disk. Resolve reads
// and decodes Path on every call; nothing is cached between calls.
type File struct {
	Path string
}

var _ ast.EmbedPayload = File{}

// Resolve reads and decodes Path into an ast.Value. It panics on I/O or
// decode failure: EmbedPayload.Resolve (spec.md §6.3) has no error
// return, so a malformed or missing embed is a configuration error the
// caller should have caught before evaluate ever ran, not a condition
// evaluate is expected to recover from.
func (f File) Resolve() ast.Value {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		panic(errors.New(token.NoPos, "embed: reading %s: %v", f.Path, err))
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		panic(errors.New(token.NoPos, "embed: decoding %s: %v", f.Path, err))
	}
	if len(node.Content) == 0 {
		return ast.Null()
	}
	return decodeNode(node.Content[0])
}

// Bytes is an EmbedPayload over an in-memory YAML document, for embeds
// synthesized at runtime rather than read from disk.
type Bytes struct {
	Name string // used only in panic messages
	Data []byte
}

var _ ast.EmbedPayload = Bytes{}

func (b Bytes) Resolve() ast.Value {
	var node yaml.Node
	if err := yaml.Unmarshal(b.Data, &node); err != nil {
		panic(errors.New(token.NoPos, "embed: decoding %s: %v", b.Name, err))
	}
	if len(node.Content) == 0 {
		return ast.Null()
	}
	return decodeNode(node.Content[0])
}

func decodeNode(n *yaml.Node) ast.Value {
	switch n.Kind {
	case yaml.ScalarNode:
		return decodeScalar(n)
	case yaml.SequenceNode:
		elems := make([]ast.Value, len(n.Content))
		for i, c := range n.Content {
			elems[i] = decodeNode(c)
		}
		return ast.RList{Elements: elems}
	case yaml.MappingNode:
		var fields []ast.RField
		for i := 0; i+1 < len(n.Content); i += 2 {
			fields = append(fields, ast.RField{
				Name: n.Content[i].Value,
				Val:  decodeNode(n.Content[i+1]),
			})
		}
		return ast.RRecord{Fields: fields}
	case yaml.AliasNode:
		return decodeNode(n.Alias)
	default:
		panic(fmt.Sprintf("embed: unsupported yaml node kind %v", n.Kind))
	}
}

func decodeScalar(n *yaml.Node) ast.Value {
	switch n.Tag {
	case "!!null":
		return ast.Null()
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			panic(fmt.Sprintf("embed: decoding bool: %v", err))
		}
		return ast.NewBool(b)
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			panic(fmt.Sprintf("embed: decoding int: %v", err))
		}
		if i >= 0 {
			return ast.NewNatural(uint64(i))
		}
		return ast.NewInteger(i)
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			panic(fmt.Sprintf("embed: decoding float: %v", err))
		}
		return ast.NewDouble(f)
	default:
		return ast.NewText(n.Value)
	}
}
