package model

import "time"

// Job represents a single job posting.
//
// Field names on the wire are camelCase to stay compatible with the
// browser client. Link and contact are nullable: an absent or rejected
// link is stored as null, never as an empty string.
type Job struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	Link        *string    `json:"link"`
	Contact     *string    `json:"contact"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// JobPage is one page of the job list.
type JobPage struct {
	Jobs        []Job `json:"jobs"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalJobs   int   `json:"totalJobs"`
}
