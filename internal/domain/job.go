package domain

import (
	"context"
	"time"
)

// Job post type and modality values.
const (
	JobTypeFullTime = "fullTime"
	JobTypePartTime = "partTime"

	ModalityOnsite = "onsite"
	ModalityRemote = "remote"
	ModalityHybrid = "hybrid"
)

// JobPost is a listing published by an employer account. EmployerID is
// always taken from the authenticated caller.
type JobPost struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	City         string    `json:"city"`
	EmployerID   string    `json:"employerId"`
	Type         string    `json:"type"`
	Modality     string    `json:"modality"`
	Requirements []string  `json:"requirements"`
	Obligations  []string  `json:"obligations"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type JobPostUpdate struct {
	Title        Optional[string]   `json:"title"`
	Description  Optional[string]   `json:"description"`
	City         Optional[string]   `json:"city"`
	Type         Optional[string]   `json:"type"`
	Modality     Optional[string]   `json:"modality"`
	Requirements Optional[[]string] `json:"requirements"`
	Obligations  Optional[[]string] `json:"obligations"`
}

// JobPostFilter narrows the listing, newest first.
type JobPostFilter struct {
	City       string
	Type       string
	Modality   string
	EmployerID string
}

type JobPostRepository interface {
	List(ctx context.Context, filter JobPostFilter) ([]JobPost, error)
	GetByID(ctx context.Context, id string) (*JobPost, error)
	GetEmployerID(ctx context.Context, id string) (string, error)
	Create(ctx context.Context, post *JobPost) error
	UpdateOwned(ctx context.Context, id, employerID string, upd *JobPostUpdate) error
	DeleteOwned(ctx context.Context, id, employerID string) error
}

type JobPostUsecase interface {
	List(ctx context.Context, filter JobPostFilter) ([]JobPost, error)
	GetByID(ctx context.Context, id string) (*JobPost, error)
	Create(ctx context.Context, employerID string, post *JobPost) (string, error)
	Update(ctx context.Context, id, callerID string, upd *JobPostUpdate) error
	Delete(ctx context.Context, id, callerID string) error
}
