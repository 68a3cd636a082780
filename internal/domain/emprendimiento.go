package domain

import (
	"context"
	"time"
)

// Emprendimiento is a small-business showcase owned by the account that
// created it.
type Emprendimiento struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	Products    []interface{} `json:"products"`
	Phone       *string       `json:"phone"`
	OwnerID     string        `json:"ownerId"`
	Image1URL   *string       `json:"image1Url"`
	Image2URL   *string       `json:"image2Url"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

type EmprendimientoUpdate struct {
	Name        Optional[string]        `json:"name"`
	Description Optional[string]        `json:"description"`
	Products    Optional[[]interface{}] `json:"products"`
	Phone       Optional[string]        `json:"phone"`
	Image1URL   Optional[string]        `json:"image1Url"`
	Image2URL   Optional[string]        `json:"image2Url"`
}

// EmprendimientoFilter narrows the listing, newest first.
type EmprendimientoFilter struct {
	OwnerID string
	Search  string
}

type EmprendimientoRepository interface {
	List(ctx context.Context, filter EmprendimientoFilter) ([]Emprendimiento, error)
	GetByID(ctx context.Context, id string) (*Emprendimiento, error)
	GetOwnerID(ctx context.Context, id string) (string, error)
	Create(ctx context.Context, emp *Emprendimiento) error
	UpdateOwned(ctx context.Context, id, ownerID string, upd *EmprendimientoUpdate) error
	DeleteOwned(ctx context.Context, id, ownerID string) error
}

type EmprendimientoUsecase interface {
	List(ctx context.Context, filter EmprendimientoFilter) ([]Emprendimiento, error)
	GetByID(ctx context.Context, id string) (*Emprendimiento, error)
	Create(ctx context.Context, ownerID string, emp *Emprendimiento) (string, error)
	Update(ctx context.Context, id, callerID string, upd *EmprendimientoUpdate) error
	Delete(ctx context.Context, id, callerID string) error
}
