package usecase

import (
	"context"
	"errors"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
	"go-jobmarket-backend/pkg/identifier"
	"go-jobmarket-backend/pkg/validation"
)

type employeeUsecase struct {
	employeeRepo domain.EmployeeRepository
}

func NewEmployeeUsecase(employeeRepo domain.EmployeeRepository) domain.EmployeeUsecase {
	return &employeeUsecase{employeeRepo: employeeRepo}
}

func (u *employeeUsecase) List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	return u.employeeRepo.List(ctx, filter)
}

// GetByID returns the employee with memorandums and recognitions
// attached, newest first.
func (u *employeeUsecase) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	employee, err := u.employeeRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Empleado no encontrado")
	}
	if err != nil {
		return nil, err
	}

	if employee.Memorandums, err = u.employeeRepo.ListMemorandums(ctx, id); err != nil {
		return nil, err
	}
	if employee.Recognitions, err = u.employeeRepo.ListRecognitions(ctx, id); err != nil {
		return nil, err
	}
	return employee, nil
}

func (u *employeeUsecase) Create(ctx context.Context, employee *domain.Employee) (string, error) {
	employee.ID = identifier.New()
	if employee.Status == "" {
		employee.Status = domain.StatusActive
	}
	if err := u.employeeRepo.Create(ctx, employee); err != nil {
		return "", err
	}
	return employee.ID, nil
}

func validateEmployeeUpdate(upd *domain.EmployeeUpdate) error {
	if upd.Status.Set {
		if upd.Status.Null || (upd.Status.Value != domain.StatusActive &&
			upd.Status.Value != domain.StatusInactive && upd.Status.Value != domain.StatusSuspended) {
			return apperror.BadRequest("El estado es inválido")
		}
	}
	if upd.Salary.Set && (upd.Salary.Null || upd.Salary.Value < 0) {
		return apperror.BadRequest("Salario inválido")
	}
	if upd.HireDate.Set {
		if upd.HireDate.Null || validation.ParseISODate(upd.HireDate.Value) == nil {
			return apperror.BadRequest("Fecha de contratación inválida")
		}
	}
	return nil
}

func (u *employeeUsecase) Update(ctx context.Context, id string, upd *domain.EmployeeUpdate) error {
	// Missing row wins over an empty or invalid payload.
	if _, err := u.employeeRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Empleado no encontrado")
		}
		return err
	}

	if err := validateEmployeeUpdate(upd); err != nil {
		return err
	}

	err := u.employeeRepo.Update(ctx, id, upd)
	switch {
	case errors.Is(err, domain.ErrNoFields):
		return apperror.BadRequest("No hay campos para actualizar")
	case errors.Is(err, domain.ErrNotFound):
		return apperror.NotFound("Empleado no encontrado")
	}
	return err
}

func (u *employeeUsecase) Delete(ctx context.Context, id string) error {
	return u.employeeRepo.Delete(ctx, id)
}

func (u *employeeUsecase) ListMemorandums(ctx context.Context, employeeID string) ([]domain.Memorandum, error) {
	return u.employeeRepo.ListMemorandums(ctx, employeeID)
}

func (u *employeeUsecase) AddMemorandum(ctx context.Context, memo *domain.Memorandum) (string, error) {
	memo.ID = identifier.New()
	if err := u.employeeRepo.CreateMemorandum(ctx, memo); err != nil {
		return "", err
	}
	return memo.ID, nil
}

func (u *employeeUsecase) DeleteMemorandum(ctx context.Context, id string) error {
	return u.employeeRepo.DeleteMemorandum(ctx, id)
}

func (u *employeeUsecase) ListRecognitions(ctx context.Context, employeeID string) ([]domain.Recognition, error) {
	return u.employeeRepo.ListRecognitions(ctx, employeeID)
}

func (u *employeeUsecase) AddRecognition(ctx context.Context, rec *domain.Recognition) (string, error) {
	rec.ID = identifier.New()
	if err := u.employeeRepo.CreateRecognition(ctx, rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (u *employeeUsecase) DeleteRecognition(ctx context.Context, id string) error {
	return u.employeeRepo.DeleteRecognition(ctx, id)
}
