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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracelang/grace/pkg/config"
)

func TestLoadMissingFileYieldsZeroConfig(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, &config.Config{}, cfg)
}

func TestLoadRelativeEmbedRootJoinsDir(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, config.FileName), []byte("embedRoot: data\n"), 0o644)
	require.NoError(t, err)

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data"), cfg.EmbedRoot)
}

func TestLoadAbsoluteEmbedRootUnchanged(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(t.TempDir(), "embeds")
	err := os.WriteFile(filepath.Join(dir, config.FileName), []byte("embedRoot: "+abs+"\n"), 0o644)
	require.NoError(t, err)

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, abs, cfg.EmbedRoot)
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, config.FileName), []byte("embedRoot: [unterminated\n"), 0o644)
	require.NoError(t, err)

	_, err = config.Load(dir)
	assert.Error(t, err)
}
