package domain

import (
	"context"
	"time"
)

// Employee status values.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

// Memorandum severity values.
const (
	SeverityLeve     = "leve"
	SeverityGrave    = "grave"
	SeverityMuyGrave = "muy_grave"
)

// Employee is an HR roster record. Memorandums and Recognitions are
// populated only on the detail read.
type Employee struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Position     string        `json:"position"`
	Email        string        `json:"email"`
	Phone        *string       `json:"phone"`
	HireDate     time.Time     `json:"hireDate"`
	Department   string        `json:"department"`
	Salary       float64       `json:"salary"`
	Status       string        `json:"status"`
	PhotoURL     *string       `json:"photoUrl"`
	Address      *string       `json:"address"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
	Memorandums  []Memorandum  `json:"memorandums,omitempty"`
	Recognitions []Recognition `json:"recognitions,omitempty"`
}

type EmployeeUpdate struct {
	Name       Optional[string]  `json:"name"`
	Position   Optional[string]  `json:"position"`
	Email      Optional[string]  `json:"email"`
	Phone      Optional[string]  `json:"phone"`
	HireDate   Optional[string]  `json:"hireDate"`
	Department Optional[string]  `json:"department"`
	Salary     Optional[float64] `json:"salary"`
	Status     Optional[string]  `json:"status"`
	PhotoURL   Optional[string]  `json:"photoUrl"`
	Address    Optional[string]  `json:"address"`
}

// EmployeeFilter narrows the roster listing, ordered by name.
type EmployeeFilter struct {
	Department string
	Status     string
	Search     string
}

// Memorandum is a disciplinary note attached to an employee.
type Memorandum struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Severity    string    `json:"severity"`
	IssuedBy    string    `json:"issuedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Recognition is an award note attached to an employee.
type Recognition struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	IssuedBy    string    `json:"issuedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

type EmployeeRepository interface {
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	GetByID(ctx context.Context, id string) (*Employee, error)
	Create(ctx context.Context, employee *Employee) error
	Update(ctx context.Context, id string, upd *EmployeeUpdate) error
	Delete(ctx context.Context, id string) error

	ListMemorandums(ctx context.Context, employeeID string) ([]Memorandum, error)
	CreateMemorandum(ctx context.Context, memo *Memorandum) error
	DeleteMemorandum(ctx context.Context, id string) error

	ListRecognitions(ctx context.Context, employeeID string) ([]Recognition, error)
	CreateRecognition(ctx context.Context, rec *Recognition) error
	DeleteRecognition(ctx context.Context, id string) error
}

type EmployeeUsecase interface {
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	GetByID(ctx context.Context, id string) (*Employee, error)
	Create(ctx context.Context, employee *Employee) (string, error)
	Update(ctx context.Context, id string, upd *EmployeeUpdate) error
	Delete(ctx context.Context, id string) error

	ListMemorandums(ctx context.Context, employeeID string) ([]Memorandum, error)
	AddMemorandum(ctx context.Context, memo *Memorandum) (string, error)
	DeleteMemorandum(ctx context.Context, id string) error

	ListRecognitions(ctx context.Context, employeeID string) ([]Recognition, error)
	AddRecognition(ctx context.Context, rec *Recognition) (string, error)
	DeleteRecognition(ctx context.Context, id string) error
}
