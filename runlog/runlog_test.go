// SPDX-License-Identifier: MIT

package runlog_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitgraph/runlog"
)

func TestWriteRead(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "runs")
	rec := runlog.NewRecord("chromatic", "moser.txt", "--max-k", "6")
	rec.Vertices, rec.Edges = 7, 11
	rec.Set("status", "determined")
	rec.Set("chromatic", 4)
	rec.Finish(nil)

	path, err := runlog.NewWriter(dir).Write(rec)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, rec.RunID+".yaml"), path)

	got, err := runlog.Read(path)
	require.NoError(t, err)
	assert.Equal(t, rec.RunID, got.RunID)
	assert.Equal(t, "chromatic", got.Command)
	assert.Equal(t, []string{"--max-k", "6"}, got.Args)
	assert.Equal(t, 7, got.Vertices)
	assert.Equal(t, 11, got.Edges)
	assert.Equal(t, "determined", got.Result["status"])
	assert.Equal(t, 4, got.Result["chromatic"])
	assert.True(t, rec.StartedAt.Equal(got.StartedAt))
	assert.Empty(t, got.Error)
	assert.GreaterOrEqual(t, rec.Duration().Nanoseconds(), int64(0))
}

func TestRecord_Finish(t *testing.T) {
	rec := runlog.NewRecord("check", "g.txt")
	_, err := uuid.Parse(rec.RunID)
	require.NoError(t, err)
	assert.Zero(t, rec.Duration())

	rec.Finish(errors.New("oracle timeout"))
	assert.Equal(t, "oracle timeout", rec.Error)
	assert.False(t, rec.Finished.IsZero())
}

func TestWrite_Errors(t *testing.T) {
	_, err := runlog.NewWriter("").Write(runlog.NewRecord("build", "x"))
	assert.ErrorIs(t, err, runlog.ErrNoDir)

	rec := runlog.NewRecord("build", "x")
	rec.RunID = "../escape"
	_, err = runlog.NewWriter(t.TempDir()).Write(rec)
	assert.Error(t, err)

	_, err = runlog.Read(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
