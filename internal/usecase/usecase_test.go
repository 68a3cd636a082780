package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/internal/usecase"
	"go-jobmarket-backend/pkg/apperror"
	"go-jobmarket-backend/pkg/auth"
	"go-jobmarket-backend/pkg/openai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) UpdateProfile(ctx context.Context, id string, upd *domain.UserUpdate) error {
	return m.Called(ctx, id, upd).Error(0)
}

func (m *MockUserRepo) UpdatePassword(ctx context.Context, id, hashed string) error {
	return m.Called(ctx, id, hashed).Error(0)
}

func (m *MockUserRepo) UpdateReviews(ctx context.Context, id string, reviews []domain.Review, avgRating float64) error {
	return m.Called(ctx, id, reviews, avgRating).Error(0)
}

func (m *MockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockJobPostRepo struct {
	mock.Mock
}

func (m *MockJobPostRepo) List(ctx context.Context, filter domain.JobPostFilter) ([]domain.JobPost, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPost), args.Error(1)
}

func (m *MockJobPostRepo) GetByID(ctx context.Context, id string) (*domain.JobPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPost), args.Error(1)
}

func (m *MockJobPostRepo) GetEmployerID(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockJobPostRepo) Create(ctx context.Context, post *domain.JobPost) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockJobPostRepo) UpdateOwned(ctx context.Context, id, employerID string, upd *domain.JobPostUpdate) error {
	return m.Called(ctx, id, employerID, upd).Error(0)
}

func (m *MockJobPostRepo) DeleteOwned(ctx context.Context, id, employerID string) error {
	return m.Called(ctx, id, employerID).Error(0)
}

type MockEmprendimientoRepo struct {
	mock.Mock
}

func (m *MockEmprendimientoRepo) List(ctx context.Context, filter domain.EmprendimientoFilter) ([]domain.Emprendimiento, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Emprendimiento), args.Error(1)
}

func (m *MockEmprendimientoRepo) GetByID(ctx context.Context, id string) (*domain.Emprendimiento, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Emprendimiento), args.Error(1)
}

func (m *MockEmprendimientoRepo) GetOwnerID(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockEmprendimientoRepo) Create(ctx context.Context, emp *domain.Emprendimiento) error {
	return m.Called(ctx, emp).Error(0)
}

func (m *MockEmprendimientoRepo) UpdateOwned(ctx context.Context, id, ownerID string, upd *domain.EmprendimientoUpdate) error {
	return m.Called(ctx, id, ownerID, upd).Error(0)
}

func (m *MockEmprendimientoRepo) DeleteOwned(ctx context.Context, id, ownerID string) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

type MockAIClient struct {
	mock.Mock
}

func (m *MockAIClient) Configured() bool {
	return m.Called().Bool(0)
}

func (m *MockAIClient) ChatCompletion(ctx context.Context, system, user string) (string, error) {
	args := m.Called(ctx, system, user)
	return args.String(0), args.Error(1)
}

func (m *MockAIClient) Respond(ctx context.Context, input string) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

// Auth

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(repo, auth.NewTokenManager("secret", 0))

	repo.On("GetByEmail", mock.Anything, "ana@example.com").
		Return(&domain.User{ID: "u-1", Email: "ana@example.com"}, nil)

	_, err := uc.Register(context.Background(), &domain.RegisterInput{
		Name: "Ana", Email: "ana@example.com", Password: "secret1", Role: domain.RoleSeeker,
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
	assert.Equal(t, "El email ya está registrado", appErr.Message)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLoginInvalidCredentials(t *testing.T) {
	repo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(repo, auth.NewTokenManager("secret", 0))

	t.Run("unknown email", func(t *testing.T) {
		repo.On("GetByEmail", mock.Anything, "nadie@example.com").
			Return(nil, domain.ErrNotFound).Once()

		_, _, err := uc.Login(context.Background(), "nadie@example.com", "whatever")
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 401, appErr.Code)
		assert.Equal(t, "Credenciales inválidas", appErr.Message)
	})

	t.Run("wrong password", func(t *testing.T) {
		hashed, errHash := auth.HashPassword("correcta")
		require.NoError(t, errHash)
		repo.On("GetByEmail", mock.Anything, "ana@example.com").
			Return(&domain.User{ID: "u-1", Email: "ana@example.com", Password: hashed}, nil).Once()

		_, _, err := uc.Login(context.Background(), "ana@example.com", "incorrecta")
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 401, appErr.Code)
		assert.Equal(t, "Credenciales inválidas", appErr.Message)
	})
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	repo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(repo, auth.NewTokenManager("secret", 0))

	hashed, err := auth.HashPassword("actual")
	require.NoError(t, err)
	repo.On("GetByID", mock.Anything, "u-1").
		Return(&domain.User{ID: "u-1", Password: hashed}, nil)

	err = uc.ChangePassword(context.Background(), "u-1", "equivocada", "nueva123")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Code)
	assert.Equal(t, "Contraseña actual incorrecta", appErr.Message)
	repo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

// Users

func TestUpdateProfileOnlySelf(t *testing.T) {
	repo := new(MockUserRepo)
	uc := usecase.NewUserUsecase(repo)

	err := uc.UpdateProfile(context.Background(), "u-1", "u-2", &domain.UserUpdate{})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Code)
	assert.Equal(t, "No tienes permiso para editar este perfil", appErr.Message)
	repo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateProfileNoFields(t *testing.T) {
	repo := new(MockUserRepo)
	uc := usecase.NewUserUsecase(repo)

	repo.On("UpdateProfile", mock.Anything, "u-1", mock.Anything).
		Return(domain.ErrNoFields)

	err := uc.UpdateProfile(context.Background(), "u-1", "u-1", &domain.UserUpdate{})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "No hay campos para actualizar", appErr.Message)
}

func TestAddReviewRecomputesAverage(t *testing.T) {
	repo := new(MockUserRepo)
	uc := usecase.NewUserUsecase(repo)

	repo.On("GetByID", mock.Anything, "target").Return(&domain.User{
		ID:      "target",
		Reviews: []domain.Review{{Author: "María", Comment: "Bien", Rating: "4"}},
	}, nil)
	repo.On("GetByID", mock.Anything, "caller").Return(&domain.User{
		ID: "caller", Name: "Juan García",
	}, nil)
	repo.On("UpdateReviews", mock.Anything, "target",
		mock.MatchedBy(func(reviews []domain.Review) bool {
			return len(reviews) == 2 &&
				reviews[1].Author == "Juan García" &&
				reviews[1].Rating == "5" &&
				reviews[1].Comment == "Excelente"
		}), 4.5).Return(nil)

	avg, err := uc.AddReview(context.Background(), "caller", "target", 5, "Excelente")
	require.NoError(t, err)
	assert.Equal(t, 4.5, avg)
	repo.AssertExpectations(t)
}

func TestAddReviewAnonymousAuthor(t *testing.T) {
	repo := new(MockUserRepo)
	uc := usecase.NewUserUsecase(repo)

	repo.On("GetByID", mock.Anything, "target").
		Return(&domain.User{ID: "target", Reviews: []domain.Review{}}, nil)
	repo.On("GetByID", mock.Anything, "ghost").
		Return(nil, domain.ErrNotFound)
	repo.On("UpdateReviews", mock.Anything, "target",
		mock.MatchedBy(func(reviews []domain.Review) bool {
			return len(reviews) == 1 && reviews[0].Author == "Anónimo"
		}), 3.0).Return(nil)

	avg, err := uc.AddReview(context.Background(), "ghost", "target", 3, "Normal")
	require.NoError(t, err)
	assert.Equal(t, 3.0, avg)
}

func TestDeleteOnlySelf(t *testing.T) {
	repo := new(MockUserRepo)
	uc := usecase.NewUserUsecase(repo)

	err := uc.Delete(context.Background(), "u-1", "u-2")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Code)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// Job posts

func TestJobPostUpdateOwnership(t *testing.T) {
	repo := new(MockJobPostRepo)
	uc := usecase.NewJobPostUsecase(repo)

	t.Run("missing post", func(t *testing.T) {
		repo.On("GetEmployerID", mock.Anything, "p-gone").
			Return("", domain.ErrNotFound).Once()

		err := uc.Update(context.Background(), "p-gone", "u-1", &domain.JobPostUpdate{})
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
		assert.Equal(t, "Publicación no encontrada", appErr.Message)
	})

	t.Run("not the owner", func(t *testing.T) {
		repo.On("GetEmployerID", mock.Anything, "p-1").
			Return("owner", nil).Once()

		err := uc.Update(context.Background(), "p-1", "intruso", &domain.JobPostUpdate{})
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
		assert.Equal(t, "No tienes permiso para editar esta publicación", appErr.Message)
		repo.AssertNotCalled(t, "UpdateOwned", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("owner deleted concurrently", func(t *testing.T) {
		repo.On("GetEmployerID", mock.Anything, "p-2").
			Return("u-1", nil).Once()
		repo.On("UpdateOwned", mock.Anything, "p-2", "u-1", mock.Anything).
			Return(domain.ErrNotFound).Once()

		var upd domain.JobPostUpdate
		upd.Title.Set = true
		upd.Title.Value = "Nuevo título"

		err := uc.Update(context.Background(), "p-2", "u-1", &upd)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestJobPostUpdateRejectsBadEnums(t *testing.T) {
	repo := new(MockJobPostRepo)
	uc := usecase.NewJobPostUsecase(repo)

	repo.On("GetEmployerID", mock.Anything, "p-1").Return("u-1", nil)

	var upd domain.JobPostUpdate
	upd.Type.Set = true
	upd.Type.Value = "freelance"

	err := uc.Update(context.Background(), "p-1", "u-1", &upd)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "Tipo inválido", appErr.Message)

	upd = domain.JobPostUpdate{}
	upd.Modality.Set = true
	upd.Modality.Null = true

	err = uc.Update(context.Background(), "p-1", "u-1", &upd)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Modalidad inválida", appErr.Message)
	repo.AssertNotCalled(t, "UpdateOwned", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestJobPostDeleteOwnership(t *testing.T) {
	repo := new(MockJobPostRepo)
	uc := usecase.NewJobPostUsecase(repo)

	repo.On("GetEmployerID", mock.Anything, "p-1").Return("owner", nil)

	err := uc.Delete(context.Background(), "p-1", "intruso")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Code)
	assert.Equal(t, "No tienes permiso para eliminar esta publicación", appErr.Message)
	repo.AssertNotCalled(t, "DeleteOwned", mock.Anything, mock.Anything, mock.Anything)
}

// Emprendimientos

func TestEmprendimientoDeleteOwnership(t *testing.T) {
	repo := new(MockEmprendimientoRepo)
	uc := usecase.NewEmprendimientoUsecase(repo)

	repo.On("GetOwnerID", mock.Anything, "e-1").Return("owner", nil)

	err := uc.Delete(context.Background(), "e-1", "intruso")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Code)
	assert.Equal(t, "No tienes permiso para eliminar este emprendimiento", appErr.Message)
	repo.AssertNotCalled(t, "DeleteOwned", mock.Anything, mock.Anything, mock.Anything)
}

// Chat

func TestChatAskNotConfigured(t *testing.T) {
	ai := new(MockAIClient)
	uc := usecase.NewChatUsecase(ai, "production")

	ai.On("Configured").Return(false)

	_, err := uc.Ask(context.Background(), "hola")
	assert.ErrorIs(t, err, usecase.ErrAINotConfigured)
}

func TestChatAskClassifiesFailure(t *testing.T) {
	ai := new(MockAIClient)
	uc := usecase.NewChatUsecase(ai, "production")

	ai.On("Configured").Return(true)
	ai.On("ChatCompletion", mock.Anything, mock.Anything, "hola").
		Return("", &openai.StatusError{StatusCode: 429, Body: "slow down"})

	_, err := uc.Ask(context.Background(), "hola")
	var callErr *openai.CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, "RATE_LIMIT", callErr.Code)
	assert.Equal(t, 429, callErr.Status)
	assert.Empty(t, callErr.Detail)
}

func TestChatAskKeepsDetailInDevelopment(t *testing.T) {
	ai := new(MockAIClient)
	uc := usecase.NewChatUsecase(ai, "development")

	ai.On("Configured").Return(true)
	ai.On("ChatCompletion", mock.Anything, mock.Anything, "hola").
		Return("", errors.New("dial tcp: lookup api.openai.com: no such host"))

	_, err := uc.Ask(context.Background(), "hola")
	var callErr *openai.CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, "NETWORK_ERROR", callErr.Code)
	assert.Contains(t, callErr.Detail, "no such host")
}

func TestChatHealth(t *testing.T) {
	ai := new(MockAIClient)
	ai.On("Configured").Return(true)

	uc := usecase.NewChatUsecase(ai, "production")
	health := uc.Health()
	assert.Equal(t, "OK", health.Status)
	assert.Equal(t, "Chat AI", health.Service)
	assert.True(t, health.APIKeyConfigured)
}
