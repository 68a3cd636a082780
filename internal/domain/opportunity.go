package domain

import (
	"context"
	"time"
)

// JobOpportunity is a formal employment offer imported from the
// departmental directory. Unlike job posts it has no owning account;
// any authenticated user can edit one.
type JobOpportunity struct {
	ID             string                 `json:"id"`
	Department     string                 `json:"department"`
	Sector         string                 `json:"sector"`
	CompanyName    string                 `json:"companyName"`
	Position       *string                `json:"position"`
	City           *string                `json:"city"`
	Address        *string                `json:"address"`
	Phone          *string                `json:"phone"`
	Email          *string                `json:"email"`
	Website        *string                `json:"website"`
	Description    *string                `json:"description"`
	Requirements   *string                `json:"requirements"`
	Salary         *string                `json:"salary"`
	Schedule       *string                `json:"schedule"`
	ContractType   *string                `json:"contractType"`
	Benefits       *string                `json:"benefits"`
	Experience     *string                `json:"experience"`
	ContactPerson  *string                `json:"contactPerson"`
	AdditionalData map[string]interface{} `json:"additionalData"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

type JobOpportunityUpdate struct {
	Department     Optional[string]                 `json:"department"`
	Sector         Optional[string]                 `json:"sector"`
	CompanyName    Optional[string]                 `json:"companyName"`
	Position       Optional[string]                 `json:"position"`
	City           Optional[string]                 `json:"city"`
	Address        Optional[string]                 `json:"address"`
	Phone          Optional[string]                 `json:"phone"`
	Email          Optional[string]                 `json:"email"`
	Website        Optional[string]                 `json:"website"`
	Description    Optional[string]                 `json:"description"`
	Requirements   Optional[string]                 `json:"requirements"`
	Salary         Optional[string]                 `json:"salary"`
	Schedule       Optional[string]                 `json:"schedule"`
	ContractType   Optional[string]                 `json:"contractType"`
	Benefits       Optional[string]                 `json:"benefits"`
	Experience     Optional[string]                 `json:"experience"`
	ContactPerson  Optional[string]                 `json:"contactPerson"`
	AdditionalData Optional[map[string]interface{}] `json:"additionalData"`
}

// JobOpportunityFilter narrows the listing, newest first.
type JobOpportunityFilter struct {
	Department string
	Sector     string
	City       string
	Search     string
}

type JobOpportunityRepository interface {
	List(ctx context.Context, filter JobOpportunityFilter) ([]JobOpportunity, error)
	GetByID(ctx context.Context, id string) (*JobOpportunity, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, opp *JobOpportunity) error
	Update(ctx context.Context, id string, upd *JobOpportunityUpdate) error
	Delete(ctx context.Context, id string) error
}

type JobOpportunityUsecase interface {
	List(ctx context.Context, filter JobOpportunityFilter) ([]JobOpportunity, error)
	GetByID(ctx context.Context, id string) (*JobOpportunity, error)
	Create(ctx context.Context, opp *JobOpportunity) (string, error)
	Update(ctx context.Context, id string, upd *JobOpportunityUpdate) error
	Delete(ctx context.Context, id string) error
}
