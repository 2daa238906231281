// Copyright 2026 The Autoannotate Authors
// SPDX-License-Identifier: MIT

// Package config handles .celltype.yaml configuration files, which supply
// default query parameters for the CLI. Flags always win over file values.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the expected config file name in the working directory.
const FileName = ".celltype.yaml"

// Config represents the contents of a .celltype.yaml file. All fields are
// optional; zero values mean "use the built-in default".
type Config struct {
	// Model is the default model identifier.
	Model string `yaml:"model,omitempty"`

	// LLM is the default service (claude, gemini, chatgpt).
	LLM string `yaml:"llm,omitempty"`

	// Species is the default organism.
	Species string `yaml:"species,omitempty"`

	// OutputDir is where saved results land when no explicit output file
	// is given. The directory must already exist.
	OutputDir string `yaml:"output_dir,omitempty"`
}

// Load reads FileName from dir. A missing file is not an error; it yields
// a zero-value Config.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path) //nolint:gosec // user config path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// GlobalConfigPath returns the path of the global config file. It uses
// $XDG_CONFIG_HOME/celltype if set, otherwise ~/.config/celltype.
func GlobalConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "celltype", "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "celltype", "config.yaml")
}

// LoadGlobal loads the global config file, with the same missing-file
// behavior as Load.
func LoadGlobal() (*Config, error) {
	path := GlobalConfigPath()
	data, err := os.ReadFile(path) //nolint:gosec // user config path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// Merge overlays over on top of base, field by field. Non-zero fields in
// over win. Neither input is modified.
func Merge(base, over *Config) *Config {
	out := *base
	if over.Model != "" {
		out.Model = over.Model
	}
	if over.LLM != "" {
		out.LLM = over.LLM
	}
	if over.Species != "" {
		out.Species = over.Species
	}
	if over.OutputDir != "" {
		out.OutputDir = over.OutputDir
	}
	return &out
}
