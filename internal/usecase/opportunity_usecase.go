package usecase

import (
	"context"
	"errors"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
	"go-jobmarket-backend/pkg/identifier"
)

type opportunityUsecase struct {
	oppRepo domain.JobOpportunityRepository
}

func NewJobOpportunityUsecase(oppRepo domain.JobOpportunityRepository) domain.JobOpportunityUsecase {
	return &opportunityUsecase{oppRepo: oppRepo}
}

func (u *opportunityUsecase) List(ctx context.Context, filter domain.JobOpportunityFilter) ([]domain.JobOpportunity, error) {
	return u.oppRepo.List(ctx, filter)
}

func (u *opportunityUsecase) GetByID(ctx context.Context, id string) (*domain.JobOpportunity, error) {
	opp, err := u.oppRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Oportunidad no encontrada")
	}
	return opp, err
}

func (u *opportunityUsecase) Create(ctx context.Context, opp *domain.JobOpportunity) (string, error) {
	opp.ID = identifier.New()
	if opp.AdditionalData == nil {
		opp.AdditionalData = map[string]interface{}{}
	}
	if err := u.oppRepo.Create(ctx, opp); err != nil {
		return "", err
	}
	return opp.ID, nil
}

func (u *opportunityUsecase) Update(ctx context.Context, id string, upd *domain.JobOpportunityUpdate) error {
	// Missing row wins over an empty payload.
	exists, err := u.oppRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NotFound("Oportunidad no encontrada")
	}

	err = u.oppRepo.Update(ctx, id, upd)
	switch {
	case errors.Is(err, domain.ErrNoFields):
		return apperror.BadRequest("No hay campos para actualizar")
	case errors.Is(err, domain.ErrNotFound):
		return apperror.NotFound("Oportunidad no encontrada")
	}
	return err
}

func (u *opportunityUsecase) Delete(ctx context.Context, id string) error {
	return u.oppRepo.Delete(ctx, id)
}
