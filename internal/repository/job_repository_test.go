package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal/internal/errors"
	"jobportal/internal/model"
	"jobportal/internal/storage"
)

func newTestRepo(t *testing.T) (JobRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.json")
	file := storage.NewJSONFile(path)
	require.NoError(t, file.Init())
	return NewFileJobRepository(file), path
}

func TestFileJobRepository_CRUD(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	first := &model.Job{ID: 1, Title: "Backend Engineer", Company: "Acme", Location: "Remote", CreatedAt: time.Now()}
	second := &model.Job{ID: 2, Title: "SRE", Company: "Globex", Location: "Berlin", CreatedAt: time.Now()}

	require.NoError(t, repo.Insert(ctx, first))
	require.NoError(t, repo.Insert(ctx, second))

	jobs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	// Insertion order is preserved across rewrites.
	assert.Equal(t, int64(1), jobs[0].ID)
	assert.Equal(t, int64(2), jobs[1].ID)

	found, err := repo.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "SRE", found.Title)

	found.Title = "Senior SRE"
	require.NoError(t, repo.Update(ctx, found))
	updated, err := repo.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Senior SRE", updated.Title)

	require.NoError(t, repo.Delete(ctx, 1))
	jobs, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, int64(2), jobs[0].ID)
}

func TestFileJobRepository_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.FindByID(ctx, 42)
	assert.ErrorIs(t, err, errors.ErrJobNotFound)

	err = repo.Update(ctx, &model.Job{ID: 42, Title: "X", Company: "Y", Location: "Z"})
	assert.ErrorIs(t, err, errors.ErrJobNotFound)

	err = repo.Delete(ctx, 42)
	assert.ErrorIs(t, err, errors.ErrJobNotFound)

	// A failed delete leaves the list unchanged.
	require.NoError(t, repo.Insert(ctx, &model.Job{ID: 1, Title: "X", Company: "Y", Location: "Z"}))
	assert.ErrorIs(t, repo.Delete(ctx, 42), errors.ErrJobNotFound)
	jobs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestFileJobRepository_CorruptFileReadsAsEmpty(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	jobs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, jobs)

	// The first successful write replaces the corrupt content.
	require.NoError(t, repo.Insert(ctx, &model.Job{ID: 1, Title: "X", Company: "Y", Location: "Z"}))
	jobs, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestFileJobRepository_MissingFileReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "jobs.json")
	repo := NewFileJobRepository(storage.NewJSONFile(path))

	jobs, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, jobs)
}
