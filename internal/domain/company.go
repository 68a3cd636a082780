package domain

import (
	"context"
	"time"
)

// Company is a directory entry, not tied to an owning account.
type Company struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Region        *string   `json:"region"`
	Department    *string   `json:"department"`
	City          *string   `json:"city"`
	Address       *string   `json:"address"`
	Sector        *string   `json:"sector"`
	Phone         *string   `json:"phone"`
	Email         *string   `json:"email"`
	Website       *string   `json:"website"`
	Description   *string   `json:"description"`
	EmployeeCount *string   `json:"employeeCount"`
	FoundedYear   *string   `json:"foundedYear"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CompanyUpdate struct {
	Name          Optional[string] `json:"name"`
	Region        Optional[string] `json:"region"`
	Department    Optional[string] `json:"department"`
	City          Optional[string] `json:"city"`
	Address       Optional[string] `json:"address"`
	Sector        Optional[string] `json:"sector"`
	Phone         Optional[string] `json:"phone"`
	Email         Optional[string] `json:"email"`
	Website       Optional[string] `json:"website"`
	Description   Optional[string] `json:"description"`
	EmployeeCount Optional[string] `json:"employeeCount"`
	FoundedYear   Optional[string] `json:"foundedYear"`
}

// CompanyFilter narrows the company listing, ordered by name.
type CompanyFilter struct {
	Department string
	City       string
	Sector     string
	Region     string
	Search     string
}

type CompanyRepository interface {
	List(ctx context.Context, filter CompanyFilter) ([]Company, error)
	GetByID(ctx context.Context, id string) (*Company, error)
	Create(ctx context.Context, company *Company) error
	Update(ctx context.Context, id string, upd *CompanyUpdate) error
	Delete(ctx context.Context, id string) error
}

type CompanyUsecase interface {
	List(ctx context.Context, filter CompanyFilter) ([]Company, error)
	GetByID(ctx context.Context, id string) (*Company, error)
	Create(ctx context.Context, company *Company) (string, error)
	Update(ctx context.Context, id string, upd *CompanyUpdate) error
	Delete(ctx context.Context, id string) error
}
