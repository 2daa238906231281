// Copyright 2026 The Autoannotate Authors
// SPDX-License-Identifier: MIT

package celltype

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/jnhutchinson/autoannotatecelltype/llm"
)

// Result is the outcome of one identification query. It is immutable after
// construction and serializes whole to a single JSON file.
type Result struct {
	ID            string      `json:"id"`
	GenesQueried  []string    `json:"genes_queried"`
	ModelUsed     string      `json:"model_used"`
	ServiceUsed   llm.Service `json:"llm_used"`
	TissueContext string      `json:"tissue_context,omitempty"`
	Species       Species     `json:"species"`
	Response      string      `json:"response"`
	CreatedAt     time.Time   `json:"created_at"`
}

// DefaultFileName returns the synthesized output filename for a result
// created at t, e.g. "celltype_identification_20260830_141502.json".
func DefaultFileName(t time.Time) string {
	return fmt.Sprintf("celltype_identification_%s.json", t.Format("20060102_150405"))
}

// Save writes r to path as an indented JSON document in a single write.
// The parent directory must already exist; Save never creates directories.
func (r *Result) Save(path string) error {
	dir := filepath.Dir(path)
	fi, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &PersistenceError{Path: path, Err: fmt.Errorf("directory %s does not exist", dir)}
		}
		return &PersistenceError{Path: path, Err: err}
	}
	if !fi.IsDir() {
		return &PersistenceError{Path: path, Err: fmt.Errorf("%s is not a directory", dir)}
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return &PersistenceError{Path: path, Err: fmt.Errorf("marshal json: %w", err)}
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	return nil
}

// LoadResult reads a result file previously written by Save.
func LoadResult(path string) (*Result, error) {
	data, err := os.ReadFile(path) //nolint:gosec // caller-supplied result path
	if err != nil {
		return nil, &PersistenceError{Path: path, Err: err}
	}
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, &PersistenceError{Path: path, Err: fmt.Errorf("unmarshal json: %w", err)}
	}
	return &r, nil
}
