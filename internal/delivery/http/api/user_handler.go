package api

import (
	"net/http"
	"strconv"

	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
	"go-jobmarket-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(public, protected *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	public.GET("/users", handler.List)
	public.GET("/users/:id", handler.GetByID)

	protected.PUT("/users/:id", handler.Update)
	protected.POST("/users/:id/reviews", handler.AddReview)
	protected.DELETE("/users/:id", handler.Delete)
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Produce      json
// @Param        role             query  string  false  "Filtrar por rol"
// @Param        city             query  string  false  "Filtrar por ciudad"
// @Param        isProfilePublic  query  bool    false  "Solo perfiles públicos"
// @Param        search           query  string  false  "Búsqueda por texto"
// @Success      200  {array}  domain.User
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	filter := domain.UserFilter{
		Role:   c.Query("role"),
		City:   c.Query("city"),
		Search: c.Query("search"),
	}
	if raw := c.Query("isProfilePublic"); raw != "" {
		public, err := strconv.ParseBool(raw)
		if err == nil {
			filter.IsProfilePublic = &public
		}
	}

	users, err := h.userUC.List(c.Request.Context(), filter)
	if err != nil {
		fail(c, err, "Error al obtener usuarios")
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetByID godoc
// @Summary      Obtener usuario
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "ID del usuario"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]interface{}
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.userUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Error al obtener usuario")
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update godoc
// @Summary      Actualizar perfil
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string             true  "ID del usuario"
// @Param        profile  body      domain.UserUpdate  true  "Campos a actualizar"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	var upd domain.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.Error(apperror.Validation(validation.Describe(err)))
		return
	}

	if err := h.userUC.UpdateProfile(c.Request.Context(), callerID(c), c.Param("id"), &upd); err != nil {
		fail(c, err, "Error al actualizar perfil")
		return
	}
	response.Message(c, "Perfil actualizado exitosamente")
}

type ReviewRequest struct {
	Comment string   `json:"comment" binding:"required"`
	Rating  *float64 `json:"rating" binding:"required,gte=0,lte=5"`
}

// AddReview godoc
// @Summary      Agregar reseña
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string         true  "ID del usuario reseñado"
// @Param        review  body      ReviewRequest  true  "Reseña"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /users/{id}/reviews [post]
func (h *UserHandler) AddReview(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.Describe(err)))
		return
	}

	avg, err := h.userUC.AddReview(c.Request.Context(), callerID(c), c.Param("id"), *req.Rating, req.Comment)
	if err != nil {
		fail(c, err, "Error al agregar reseña")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Reseña agregada exitosamente",
		"avgRating": avg,
	})
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID del usuario"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userUC.Delete(c.Request.Context(), callerID(c), c.Param("id")); err != nil {
		fail(c, err, "Error al eliminar usuario")
		return
	}
	response.Message(c, "Usuario eliminado exitosamente")
}
