package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
)

type userUsecase struct {
	userRepo domain.UserRepository
}

func NewUserUsecase(userRepo domain.UserRepository) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo}
}

func (u *userUsecase) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	return u.userRepo.List(ctx, filter)
}

func (u *userUsecase) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Usuario no encontrado")
	}
	return user, err
}

// UpdateProfile lets an account edit only itself.
func (u *userUsecase) UpdateProfile(ctx context.Context, callerID, targetID string, upd *domain.UserUpdate) error {
	if callerID != targetID {
		return apperror.Forbidden("No tienes permiso para editar este perfil")
	}

	err := u.userRepo.UpdateProfile(ctx, targetID, upd)
	switch {
	case errors.Is(err, domain.ErrNoFields):
		return apperror.BadRequest("No hay campos para actualizar")
	case errors.Is(err, domain.ErrNotFound):
		return apperror.NotFound("Usuario no encontrado")
	}
	return err
}

// AddReview appends a review to the target user and recomputes the
// stored average. The author name comes from the caller's own account,
// never from the payload.
func (u *userUsecase) AddReview(ctx context.Context, callerID, targetID string, rating float64, comment string) (float64, error) {
	target, err := u.userRepo.GetByID(ctx, targetID)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, apperror.NotFound("Usuario no encontrado")
	}
	if err != nil {
		return 0, err
	}

	author := "Anónimo"
	if caller, err := u.userRepo.GetByID(ctx, callerID); err == nil && caller.Name != "" {
		author = caller.Name
	}

	reviews := append(target.Reviews, domain.Review{
		Author:  author,
		Comment: comment,
		Rating:  strconv.FormatFloat(rating, 'f', -1, 64),
		Date:    time.Now().UTC().Format(time.RFC3339),
	})

	var total float64
	for _, r := range reviews {
		if v, err := strconv.ParseFloat(r.Rating, 64); err == nil {
			total += v
		}
	}
	avg := total / float64(len(reviews))

	if err := u.userRepo.UpdateReviews(ctx, targetID, reviews, avg); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, apperror.NotFound("Usuario no encontrado")
		}
		return 0, err
	}
	return avg, nil
}

// Delete lets an account remove only itself.
func (u *userUsecase) Delete(ctx context.Context, callerID, targetID string) error {
	if callerID != targetID {
		return apperror.Forbidden("No tienes permiso para eliminar este perfil")
	}
	return u.userRepo.Delete(ctx, targetID)
}
