package usecase

import (
	"context"
	"errors"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
	"go-jobmarket-backend/pkg/auth"
	"go-jobmarket-backend/pkg/identifier"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenManager) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

func (u *authUsecase) Register(ctx context.Context, in *domain.RegisterInput) (*domain.RegisterResult, error) {
	_, err := u.userRepo.GetByEmail(ctx, in.Email)
	if err == nil {
		return nil, apperror.Conflict("El email ya está registrado")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:        identifier.New(),
		Role:      in.Role,
		Name:      in.Name,
		Email:     in.Email,
		Password:  hashed,
		PhoneIntl: in.PhoneIntl,
		City:      in.City,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := u.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &domain.RegisterResult{ID: user.ID, Token: token}, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil, apperror.Unauthorized("Credenciales inválidas")
	}
	if err != nil {
		return "", nil, err
	}

	if !auth.CheckPasswordHash(password, user.Password) {
		return "", nil, apperror.Unauthorized("Credenciales inválidas")
	}

	token, err := u.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (u *authUsecase) Me(ctx context.Context, userID string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Usuario no encontrado")
	}
	return user, err
}

func (u *authUsecase) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Usuario no encontrado")
	}
	if err != nil {
		return err
	}

	if !auth.CheckPasswordHash(oldPassword, user.Password) {
		return apperror.Unauthorized("Contraseña actual incorrecta")
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return u.userRepo.UpdatePassword(ctx, userID, hashed)
}
