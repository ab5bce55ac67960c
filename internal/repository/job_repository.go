package repository

import (
	"context"
	"sync"

	"jobportal/internal/errors"
	"jobportal/internal/model"
	"jobportal/internal/storage"
)

// JobRepository defines persistence operations for job postings.
type JobRepository interface {
	List(ctx context.Context) ([]model.Job, error)
	FindByID(ctx context.Context, id int64) (*model.Job, error)
	Insert(ctx context.Context, job *model.Job) error
	Update(ctx context.Context, job *model.Job) error
	Delete(ctx context.Context, id int64) error
}

// fileJobRepository keeps the whole job list in one JSON document.
// Every mutation loads the full list, rewrites it in memory and saves
// it back. Insertion order is preserved because the list is rewritten
// verbatim. The mutex keeps individual load/save pairs coherent; two
// overlapping requests can still lose an update, an accepted limitation
// of the whole-file design.
type fileJobRepository struct {
	file *storage.JSONFile
	mu   sync.Mutex
}

// NewFileJobRepository builds a repository backed by the given JSON file.
func NewFileJobRepository(file *storage.JSONFile) JobRepository {
	return &fileJobRepository{file: file}
}

func (r *fileJobRepository) load() []model.Job {
	jobs := []model.Job{}
	r.file.Load(&jobs)
	return jobs
}

func (r *fileJobRepository) List(ctx context.Context) ([]model.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(), nil
}

func (r *fileJobRepository) FindByID(ctx context.Context, id int64) (*model.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, job := range r.load() {
		if job.ID == id {
			j := job
			return &j, nil
		}
	}
	return nil, errors.ErrJobNotFound
}

func (r *fileJobRepository) Insert(ctx context.Context, job *model.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	jobs := append(r.load(), *job)
	return r.file.Save(jobs)
}

func (r *fileJobRepository) Update(ctx context.Context, job *model.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	jobs := r.load()
	for i := range jobs {
		if jobs[i].ID == job.ID {
			jobs[i] = *job
			return r.file.Save(jobs)
		}
	}
	return errors.ErrJobNotFound
}

func (r *fileJobRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	jobs := r.load()
	kept := jobs[:0:0]
	for _, job := range jobs {
		if job.ID != id {
			kept = append(kept, job)
		}
	}
	if len(kept) == len(jobs) {
		return errors.ErrJobNotFound
	}
	return r.file.Save(kept)
}
