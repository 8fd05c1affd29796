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

// Package config reads grace's one piece of project-level configuration,
// .gracerc.yaml, the way cuelang.org/go/cue/load.Config reads a
// directory's module root and cuelang.org/go's encoding layer leans on
// YAML for its own non-CUE-syntax config surfaces (SPEC_FULL.md §2.4).
// grace has no module system, so this is deliberately small: where to
// resolve bare `import "..."` paths from, and nothing else.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file grace looks for in a directory.
const FileName = ".gracerc.yaml"

// Config is grace's project configuration.
type Config struct {
	// EmbedRoot is the directory relative `import "..."` paths resolve
	// against. Empty means "relative to the importing source file".
	EmbedRoot string `yaml:"embedRoot"`
}

// Load reads dir/.gracerc.yaml. A missing file is not an error: it
// yields the zero Config, which preserves the file-relative default.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.EmbedRoot != "" && !filepath.IsAbs(cfg.EmbedRoot) {
		cfg.EmbedRoot = filepath.Join(dir, cfg.EmbedRoot)
	}
	return &cfg, nil
}
