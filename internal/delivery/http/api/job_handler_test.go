package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-jobmarket-backend/internal/delivery/http/api"
	"go-jobmarket-backend/internal/delivery/http/middleware"
	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/logger"
	"go-jobmarket-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockJobPostUC struct {
	mock.Mock
}

func (m *MockJobPostUC) List(ctx context.Context, filter domain.JobPostFilter) ([]domain.JobPost, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPost), args.Error(1)
}

func (m *MockJobPostUC) GetByID(ctx context.Context, id string) (*domain.JobPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPost), args.Error(1)
}

func (m *MockJobPostUC) Create(ctx context.Context, employerID string, post *domain.JobPost) (string, error) {
	args := m.Called(ctx, employerID, post)
	return args.String(0), args.Error(1)
}

func (m *MockJobPostUC) Update(ctx context.Context, id, callerID string, upd *domain.JobPostUpdate) error {
	args := m.Called(ctx, id, callerID, upd)
	return args.Error(0)
}

func (m *MockJobPostUC) Delete(ctx context.Context, id, callerID string) error {
	args := m.Called(ctx, id, callerID)
	return args.Error(0)
}

type MockOpportunityUC struct {
	mock.Mock
}

func (m *MockOpportunityUC) List(ctx context.Context, filter domain.JobOpportunityFilter) ([]domain.JobOpportunity, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobOpportunity), args.Error(1)
}

func (m *MockOpportunityUC) GetByID(ctx context.Context, id string) (*domain.JobOpportunity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobOpportunity), args.Error(1)
}

func (m *MockOpportunityUC) Create(ctx context.Context, opp *domain.JobOpportunity) (string, error) {
	args := m.Called(ctx, opp)
	return args.String(0), args.Error(1)
}

func (m *MockOpportunityUC) Update(ctx context.Context, id string, upd *domain.JobOpportunityUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}

func (m *MockOpportunityUC) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newJobRouter(jobUC domain.JobPostUsecase, oppUC domain.JobOpportunityUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	public := r.Group("/api")
	protected := r.Group("/api")
	api.NewJobHandler(public, protected, jobUC, oppUC)
	return r
}

func TestJobPostCreateRejectsUnknownType(t *testing.T) {
	jobUC := new(MockJobPostUC)
	oppUC := new(MockOpportunityUC)
	r := newJobRouter(jobUC, oppUC)

	body := `{"title":"Contador","description":"Medio tiempo","city":"La Paz","type":"contractor","modality":"onsite"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/jobs/posts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"errors"`)
	assert.Contains(t, w.Body.String(), "El tipo es inválido")
	jobUC.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestJobPostCreateRejectsUnknownModality(t *testing.T) {
	jobUC := new(MockJobPostUC)
	oppUC := new(MockOpportunityUC)
	r := newJobRouter(jobUC, oppUC)

	body := `{"title":"Contador","description":"Medio tiempo","city":"La Paz","type":"fullTime","modality":"freelance"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/jobs/posts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "La modalidad es inválido")
	jobUC.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestJobPostCreateAcceptsValidEnums(t *testing.T) {
	jobUC := new(MockJobPostUC)
	oppUC := new(MockOpportunityUC)
	r := newJobRouter(jobUC, oppUC)

	jobUC.On("Create", mock.Anything, "", mock.MatchedBy(func(post *domain.JobPost) bool {
		return post.Type == domain.JobTypeFullTime && post.Modality == domain.ModalityRemote
	})).Return("1700000000000-abc123def", nil).Once()

	body := `{"title":"Contador","description":"Tiempo completo","city":"La Paz","type":"fullTime","modality":"remote"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/jobs/posts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Publicación creada exitosamente")
	jobUC.AssertExpectations(t)
}
