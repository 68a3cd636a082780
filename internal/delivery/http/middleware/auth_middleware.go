package middleware

import (
	"net/http"
	"strings"

	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// Auth verifies the Bearer token and stores the caller's identity in
// the context. Identity comes only from verified claims; no database
// read happens here.
func Auth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Err(c, http.StatusUnauthorized, "Token de acceso requerido")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			// Auth failures are always 401; ownership checks answer 403.
			response.Err(c, http.StatusUnauthorized, "Token inválido o expirado")
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), claims.UserID)
		c.Set(string(domain.KeyUserEmail), claims.Email)
		c.Set(string(domain.KeyUserRole), claims.Role)

		c.Next()
	}
}
