// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes a machine-readable YAML summary of a conversion run.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"
)

// FileOutcome records the result for one input file.
type FileOutcome struct {
	Path    string `yaml:"path"`
	Success bool   `yaml:"success"`
	Message string `yaml:"message,omitempty"`
}

// Report is the document written to the report file.
type Report struct {
	Root           string        `yaml:"root"`
	Recursive      bool          `yaml:"recursive"`
	Executable     string        `yaml:"executable"`
	StartedAt      time.Time     `yaml:"started_at"`
	ElapsedSeconds float64       `yaml:"elapsed_seconds"`
	Succeeded      int           `yaml:"succeeded"`
	Failed         int           `yaml:"failed"`
	Total          int           `yaml:"total"`
	Files          []FileOutcome `yaml:"files"`
}

// Add appends the outcome for path and updates the counters.
func (r *Report) Add(path string, success bool, msg string) {
	r.Files = append(r.Files, FileOutcome{Path: path, Success: success, Message: msg})
	if success {
		r.Succeeded++
	} else {
		r.Failed++
	}
	r.Total++
}

// Write marshals r to path, creating parent directories as needed.
func Write(r *Report, path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// Read loads a report written by Write.
func Read(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report %s: %w", path, err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report %s: %w", path, err)
	}
	return &r, nil
}
