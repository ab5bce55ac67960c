package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jobportal/internal/cache"
	"jobportal/internal/errors"
	"jobportal/internal/model"
	"jobportal/internal/repository"
)

const (
	// DefaultPageSize is used when the limit query parameter is absent or invalid.
	DefaultPageSize = 10

	jobsCacheKey = "jobs:list"
	jobsCacheTTL = time.Minute
)

// CreateJobInput carries the fields of a create request.
type CreateJobInput struct {
	Title       string
	Company     string
	Location    string
	Description string
	Link        string
	Contact     *string
}

// UpdateJobInput carries a partial update. Nil fields keep their
// previous value (merge semantics, not replace semantics).
type UpdateJobInput struct {
	Title       *string
	Company     *string
	Location    *string
	Description *string
	Link        *string
	Contact     *string
}

// JobService implements the job repository operations of the portal.
type JobService interface {
	List(ctx context.Context, page, limit int) (*model.JobPage, error)
	Create(ctx context.Context, in CreateJobInput) (*model.Job, error)
	Update(ctx context.Context, id int64, in UpdateJobInput) (*model.Job, error)
	Delete(ctx context.Context, id int64) error
}

type jobService struct {
	repo  repository.JobRepository
	cache *cache.Client
	now   func() time.Time
}

// NewJobService creates a new job service. cache may be nil.
func NewJobService(repo repository.JobRepository, cache *cache.Client) JobService {
	return &jobService{repo: repo, cache: cache, now: time.Now}
}

// loadJobs returns the full list, consulting the cache first. The file
// store stays the source of truth; cached copies expire or are dropped
// on every mutation.
func (s *jobService) loadJobs(ctx context.Context) ([]model.Job, error) {
	if data := s.cache.Get(ctx, jobsCacheKey); data != nil {
		var cached []model.Job
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	jobs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	if payload, err := json.Marshal(jobs); err == nil {
		s.cache.Set(ctx, jobsCacheKey, payload, jobsCacheTTL)
	}
	return jobs, nil
}

// List returns one page of the job list in storage order. Out-of-range
// pages yield an empty page, not an error.
func (s *jobService) List(ctx context.Context, page, limit int) (*model.JobPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}

	jobs, err := s.loadJobs(ctx)
	if err != nil {
		return nil, err
	}

	total := len(jobs)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	pageJobs := []model.Job{}
	if start < total {
		end := start + limit
		if end > total {
			end = total
		}
		pageJobs = jobs[start:end]
	}

	return &model.JobPage{
		Jobs:        pageJobs,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalJobs:   total,
	}, nil
}

// Create validates required fields, normalizes the link, assigns an
// identifier and appends the record.
func (s *jobService) Create(ctx context.Context, in CreateJobInput) (*model.Job, error) {
	if in.Title == "" || in.Company == "" || in.Location == "" {
		return nil, errors.ErrMissingRequiredFields
	}

	jobs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	job := &model.Job{
		ID:          s.nextID(jobs),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		Description: in.Description,
		Link:        NormalizeLink(in.Link),
		Contact:     in.Contact,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Insert(ctx, job); err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}
	s.cache.Delete(ctx, jobsCacheKey)
	return job, nil
}

// nextID assigns identifiers as creation timestamps in milliseconds.
// When a burst of creates lands in the same millisecond the candidate
// is bumped until it is distinct from every existing identifier.
func (s *jobService) nextID(jobs []model.Job) int64 {
	id := s.now().UnixMilli()
	taken := make(map[int64]struct{}, len(jobs))
	for _, job := range jobs {
		taken[job.ID] = struct{}{}
	}
	for {
		if _, ok := taken[id]; !ok {
			return id
		}
		id++
	}
}

// Update merges the given fields into an existing record. The update
// timestamp is refreshed even when no field actually changed.
func (s *jobService) Update(ctx context.Context, id int64, in UpdateJobInput) (*model.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		job.Title = *in.Title
	}
	if in.Company != nil {
		job.Company = *in.Company
	}
	if in.Location != nil {
		job.Location = *in.Location
	}
	if in.Description != nil {
		job.Description = *in.Description
	}
	if in.Link != nil {
		job.Link = NormalizeLink(*in.Link)
	}
	if in.Contact != nil {
		job.Contact = in.Contact
	}
	now := s.now()
	job.UpdatedAt = &now

	if err := s.repo.Update(ctx, job); err != nil {
		return nil, err
	}
	s.cache.Delete(ctx, jobsCacheKey)
	return job, nil
}

// Delete removes exactly one record.
func (s *jobService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(ctx, jobsCacheKey)
	return nil
}
