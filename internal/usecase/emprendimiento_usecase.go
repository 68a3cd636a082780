package usecase

import (
	"context"
	"errors"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
	"go-jobmarket-backend/pkg/identifier"
)

type emprendimientoUsecase struct {
	empRepo domain.EmprendimientoRepository
}

func NewEmprendimientoUsecase(empRepo domain.EmprendimientoRepository) domain.EmprendimientoUsecase {
	return &emprendimientoUsecase{empRepo: empRepo}
}

func (u *emprendimientoUsecase) List(ctx context.Context, filter domain.EmprendimientoFilter) ([]domain.Emprendimiento, error) {
	return u.empRepo.List(ctx, filter)
}

func (u *emprendimientoUsecase) GetByID(ctx context.Context, id string) (*domain.Emprendimiento, error) {
	emp, err := u.empRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Emprendimiento no encontrado")
	}
	return emp, err
}

func (u *emprendimientoUsecase) Create(ctx context.Context, ownerID string, emp *domain.Emprendimiento) (string, error) {
	emp.ID = identifier.New()
	emp.OwnerID = ownerID
	if emp.Products == nil {
		emp.Products = []interface{}{}
	}
	if err := u.empRepo.Create(ctx, emp); err != nil {
		return "", err
	}
	return emp.ID, nil
}

// Update enforces ownership: only the account that created the
// emprendimiento may change it.
func (u *emprendimientoUsecase) Update(ctx context.Context, id, callerID string, upd *domain.EmprendimientoUpdate) error {
	ownerID, err := u.empRepo.GetOwnerID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Emprendimiento no encontrado")
	}
	if err != nil {
		return err
	}
	if ownerID != callerID {
		return apperror.Forbidden("No tienes permiso para editar este emprendimiento")
	}

	err = u.empRepo.UpdateOwned(ctx, id, callerID, upd)
	switch {
	case errors.Is(err, domain.ErrNoFields):
		return apperror.BadRequest("No hay campos para actualizar")
	case errors.Is(err, domain.ErrNotFound):
		return apperror.NotFound("Emprendimiento no encontrado")
	}
	return err
}

func (u *emprendimientoUsecase) Delete(ctx context.Context, id, callerID string) error {
	ownerID, err := u.empRepo.GetOwnerID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Emprendimiento no encontrado")
	}
	if err != nil {
		return err
	}
	if ownerID != callerID {
		return apperror.Forbidden("No tienes permiso para eliminar este emprendimiento")
	}

	err = u.empRepo.DeleteOwned(ctx, id, callerID)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Emprendimiento no encontrado")
	}
	return err
}
