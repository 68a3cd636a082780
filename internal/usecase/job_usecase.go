package usecase

import (
	"context"
	"errors"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
	"go-jobmarket-backend/pkg/identifier"
)

type jobPostUsecase struct {
	postRepo domain.JobPostRepository
}

func NewJobPostUsecase(postRepo domain.JobPostRepository) domain.JobPostUsecase {
	return &jobPostUsecase{postRepo: postRepo}
}

func (u *jobPostUsecase) List(ctx context.Context, filter domain.JobPostFilter) ([]domain.JobPost, error) {
	return u.postRepo.List(ctx, filter)
}

func (u *jobPostUsecase) GetByID(ctx context.Context, id string) (*domain.JobPost, error) {
	post, err := u.postRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Publicación no encontrada")
	}
	return post, err
}

func (u *jobPostUsecase) Create(ctx context.Context, employerID string, post *domain.JobPost) (string, error) {
	post.ID = identifier.New()
	post.EmployerID = employerID
	if post.Requirements == nil {
		post.Requirements = []string{}
	}
	if post.Obligations == nil {
		post.Obligations = []string{}
	}
	if err := u.postRepo.Create(ctx, post); err != nil {
		return "", err
	}
	return post.ID, nil
}

func validateJobPostUpdate(upd *domain.JobPostUpdate) error {
	if upd.Type.Set {
		if upd.Type.Null || (upd.Type.Value != domain.JobTypeFullTime && upd.Type.Value != domain.JobTypePartTime) {
			return apperror.BadRequest("Tipo inválido")
		}
	}
	if upd.Modality.Set {
		if upd.Modality.Null || (upd.Modality.Value != domain.ModalityOnsite &&
			upd.Modality.Value != domain.ModalityRemote && upd.Modality.Value != domain.ModalityHybrid) {
			return apperror.BadRequest("Modalidad inválida")
		}
	}
	return nil
}

// Update enforces ownership: only the employer that published the post
// may change it. A vanished row is indistinguishable from one that never
// existed, so both report not found.
func (u *jobPostUsecase) Update(ctx context.Context, id, callerID string, upd *domain.JobPostUpdate) error {
	employerID, err := u.postRepo.GetEmployerID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Publicación no encontrada")
	}
	if err != nil {
		return err
	}
	if employerID != callerID {
		return apperror.Forbidden("No tienes permiso para editar esta publicación")
	}

	if err := validateJobPostUpdate(upd); err != nil {
		return err
	}

	err = u.postRepo.UpdateOwned(ctx, id, callerID, upd)
	switch {
	case errors.Is(err, domain.ErrNoFields):
		return apperror.BadRequest("No hay campos para actualizar")
	case errors.Is(err, domain.ErrNotFound):
		return apperror.NotFound("Publicación no encontrada")
	}
	return err
}

func (u *jobPostUsecase) Delete(ctx context.Context, id, callerID string) error {
	employerID, err := u.postRepo.GetEmployerID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Publicación no encontrada")
	}
	if err != nil {
		return err
	}
	if employerID != callerID {
		return apperror.Forbidden("No tienes permiso para eliminar esta publicación")
	}

	err = u.postRepo.DeleteOwned(ctx, id, callerID)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Publicación no encontrada")
	}
	return err
}
