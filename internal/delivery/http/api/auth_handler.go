package api

import (
	"net/http"

	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
	"go-jobmarket-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public, protected *gin.RouterGroup, authUC domain.AuthUsecase, loginLimiter gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", handler.Register)
		publicAuth.POST("/login", loginLimiter, handler.Login)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
		protectedAuth.PUT("/change-password", handler.ChangePassword)
	}
}

type RegisterRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=6"`
	Role      string  `json:"role" binding:"required,oneof=seeker serviceSeeker employer"`
	PhoneIntl *string `json:"phoneIntl"`
	City      *string `json:"city"`
}

// Register godoc
// @Summary      Registro de usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Datos de registro"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.Describe(err)))
		return
	}

	result, err := h.authUC.Register(c.Request.Context(), &domain.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		PhoneIntl: req.PhoneIntl,
		City:      req.City,
	})
	if err != nil {
		fail(c, err, "Error al registrar usuario")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Usuario registrado exitosamente",
		"token":   result.Token,
		"user": gin.H{
			"id":    result.ID,
			"name":  req.Name,
			"email": req.Email,
			"role":  req.Role,
		},
	})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary      Inicio de sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credenciales"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.Describe(err)))
		return
	}

	token, user, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err, "Error al iniciar sesión")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inicio de sesión exitoso",
		"token":   token,
		"user":    user,
	})
}

// Me godoc
// @Summary      Usuario autenticado
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]interface{}
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUC.Me(c.Request.Context(), callerID(c))
	if err != nil {
		fail(c, err, "Error al obtener usuario")
		return
	}
	c.JSON(http.StatusOK, user)
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// ChangePassword godoc
// @Summary      Cambiar contraseña
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        passwords  body      ChangePasswordRequest  true  "Contraseñas"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /auth/change-password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.Describe(err)))
		return
	}

	if err := h.authUC.ChangePassword(c.Request.Context(), callerID(c), req.OldPassword, req.NewPassword); err != nil {
		fail(c, err, "Error al cambiar contraseña")
		return
	}
	response.Message(c, "Contraseña actualizada exitosamente")
}
