package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFile_InitSeedsEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "jobs.json")
	file := NewJSONFile(path)

	require.NoError(t, file.Init())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))

	// A second Init must not clobber existing content.
	type doc struct {
		Name string `json:"name"`
	}
	require.NoError(t, file.Save([]doc{{Name: "kept"}}))
	require.NoError(t, file.Init())

	var got []doc
	assert.True(t, file.Load(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "kept", got[0].Name)
}

func TestJSONFile_LoadFailuresLeaveValueUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	file := NewJSONFile(path)

	var v []int
	assert.False(t, file.Load(&v), "missing file")

	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))
	assert.False(t, file.Load(&v), "corrupt file")
	assert.Nil(t, v)
}

func TestJSONFile_SaveReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jobs.json")
	file := NewJSONFile(path)
	require.NoError(t, file.Init())

	require.NoError(t, file.Save([]int{1, 2, 3}))

	var got []int
	assert.True(t, file.Load(&got))
	assert.Equal(t, []int{1, 2, 3}, got)

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "jobs.json", entries[0].Name())
}
