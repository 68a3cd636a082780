package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-jobmarket-backend/internal/delivery/http/middleware"
	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedRouter(tokens *auth.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.Auth(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString(string(domain.KeyUserID))})
	})
	return r
}

func TestAuthMissingToken(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	r := newGuardedRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token de acceso requerido")
}

func TestAuthExpiredToken(t *testing.T) {
	expired := auth.NewTokenManager("test-secret", -time.Minute)
	token, err := expired.Generate("u-1", "ana@example.com", "seeker")
	require.NoError(t, err)

	r := newGuardedRouter(auth.NewTokenManager("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token inválido o expirado")
}

func TestAuthBadSignature(t *testing.T) {
	other := auth.NewTokenManager("another-secret", time.Hour)
	token, err := other.Generate("u-1", "ana@example.com", "seeker")
	require.NoError(t, err)

	r := newGuardedRouter(auth.NewTokenManager("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthValidTokenSetsIdentity(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	token, err := tokens.Generate("u-7", "ana@example.com", "employer")
	require.NoError(t, err)

	r := newGuardedRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u-7")
}
