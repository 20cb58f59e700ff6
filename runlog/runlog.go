// SPDX-License-Identifier: MIT

// Package runlog persists one YAML record per CLI run: what was asked, on
// which input, and what came out. Records are plain data; nothing in the
// library packages depends on them.
package runlog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrNoDir indicates a Writer without a target directory.
var ErrNoDir = errors.New("runlog: directory not set")

// Record is one run.
type Record struct {
	RunID     string         `yaml:"run_id"`
	Command   string         `yaml:"command"`
	Args      []string       `yaml:"args,omitempty"`
	StartedAt time.Time      `yaml:"started_at"`
	Finished  time.Time      `yaml:"finished_at"`
	Input     string         `yaml:"input,omitempty"`
	Vertices  int            `yaml:"vertices"`
	Edges     int            `yaml:"edges"`
	Result    map[string]any `yaml:"result,omitempty"`
	Error     string         `yaml:"error,omitempty"`
}

// NewRecord starts a record with a fresh run id.
func NewRecord(command, input string, args ...string) *Record {
	return &Record{
		RunID:     uuid.NewString(),
		Command:   command,
		Args:      args,
		StartedAt: time.Now().UTC(),
		Input:     input,
		Result:    map[string]any{},
	}
}

// Set stores one result field.
func (r *Record) Set(key string, value any) { r.Result[key] = value }

// Finish stamps the end time and the error, if any.
func (r *Record) Finish(err error) {
	r.Finished = time.Now().UTC()
	if err != nil {
		r.Error = err.Error()
	}
}

// Duration is Finished − StartedAt, or 0 before Finish.
func (r *Record) Duration() time.Duration {
	if r.Finished.IsZero() {
		return 0
	}
	return r.Finished.Sub(r.StartedAt)
}

// Writer stores records as <Dir>/<run_id>.yaml.
type Writer struct {
	Dir string
}

// NewWriter returns a Writer over dir.
func NewWriter(dir string) *Writer { return &Writer{Dir: dir} }

// Write persists rec and returns the file path. The directory is created if needed.
func (w *Writer) Write(rec *Record) (string, error) {
	if w == nil || w.Dir == "" {
		return "", ErrNoDir
	}
	if _, err := uuid.Parse(rec.RunID); err != nil {
		return "", fmt.Errorf("runlog: run id %q: %w", rec.RunID, err)
	}
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("runlog: create %s: %w", w.Dir, err)
	}
	data, err := yaml.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("runlog: marshal: %w", err)
	}
	path := filepath.Join(w.Dir, rec.RunID+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("runlog: write %s: %w", path, err)
	}
	return path, nil
}

// Read loads a record written by Writer.Write.
func Read(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("runlog: read %s: %w", path, err)
	}
	rec := &Record{}
	if err := yaml.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("runlog: decode %s: %w", path, err)
	}
	return rec, nil
}
