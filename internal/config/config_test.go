// Copyright 2026 The Autoannotate Authors
// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnhutchinson/autoannotatecelltype/internal/config"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &config.Config{}, cfg)
}

func TestLoad_ParsesFields(t *testing.T) {
	dir := t.TempDir()
	content := `model: gemini-2.0-flash
llm: gemini
species: mouse
output_dir: /tmp/results
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
	assert.Equal(t, "gemini", cfg.LLM)
	assert.Equal(t, "mouse", cfg.Species)
	assert.Equal(t, "/tmp/results", cfg.OutputDir)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("model: [unclosed"), 0o644))

	_, err := config.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.FileName)
}

func TestLoadGlobal_XDGPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "celltype")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte("llm: chatgpt\n"), 0o644))

	cfg, err := config.LoadGlobal()
	require.NoError(t, err)
	assert.Equal(t, "chatgpt", cfg.LLM)
}

func TestMerge_OverWins(t *testing.T) {
	base := &config.Config{Model: "base-model", LLM: "claude", Species: "human"}
	over := &config.Config{Model: "over-model", OutputDir: "/out"}

	got := config.Merge(base, over)

	assert.Equal(t, "over-model", got.Model)
	assert.Equal(t, "claude", got.LLM)
	assert.Equal(t, "human", got.Species)
	assert.Equal(t, "/out", got.OutputDir)

	// Inputs untouched.
	assert.Equal(t, "base-model", base.Model)
}
