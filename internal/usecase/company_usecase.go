package usecase

import (
	"context"
	"errors"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
	"go-jobmarket-backend/pkg/identifier"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository) domain.CompanyUsecase {
	return &companyUsecase{companyRepo: companyRepo}
}

func (u *companyUsecase) List(ctx context.Context, filter domain.CompanyFilter) ([]domain.Company, error) {
	return u.companyRepo.List(ctx, filter)
}

func (u *companyUsecase) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Empresa no encontrada")
	}
	return company, err
}

func (u *companyUsecase) Create(ctx context.Context, company *domain.Company) (string, error) {
	company.ID = identifier.New()
	if err := u.companyRepo.Create(ctx, company); err != nil {
		return "", err
	}
	return company.ID, nil
}

func (u *companyUsecase) Update(ctx context.Context, id string, upd *domain.CompanyUpdate) error {
	// Missing row wins over an empty payload.
	if _, err := u.companyRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Empresa no encontrada")
		}
		return err
	}

	err := u.companyRepo.Update(ctx, id, upd)
	switch {
	case errors.Is(err, domain.ErrNoFields):
		return apperror.BadRequest("No hay campos para actualizar")
	case errors.Is(err, domain.ErrNotFound):
		return apperror.NotFound("Empresa no encontrada")
	}
	return err
}

func (u *companyUsecase) Delete(ctx context.Context, id string) error {
	return u.companyRepo.Delete(ctx, id)
}
