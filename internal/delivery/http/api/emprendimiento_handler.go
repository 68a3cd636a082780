package api

import (
	"net/http"

	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
	"go-jobmarket-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type EmprendimientoHandler struct {
	empUC domain.EmprendimientoUsecase
}

func NewEmprendimientoHandler(public, protected *gin.RouterGroup, empUC domain.EmprendimientoUsecase) {
	handler := &EmprendimientoHandler{empUC: empUC}

	public.GET("/emprendimientos", handler.List)
	public.GET("/emprendimientos/:id", handler.GetByID)

	protected.POST("/emprendimientos", handler.Create)
	protected.PUT("/emprendimientos/:id", handler.Update)
	protected.DELETE("/emprendimientos/:id", handler.Delete)
}

// List godoc
// @Summary      Listar emprendimientos
// @Tags         emprendimientos
// @Produce      json
// @Param        ownerId  query  string  false  "Filtrar por dueño"
// @Param        search   query  string  false  "Búsqueda por texto"
// @Success      200  {array}  domain.Emprendimiento
// @Router       /emprendimientos [get]
func (h *EmprendimientoHandler) List(c *gin.Context) {
	emps, err := h.empUC.List(c.Request.Context(), domain.EmprendimientoFilter{
		OwnerID: c.Query("ownerId"),
		Search:  c.Query("search"),
	})
	if err != nil {
		fail(c, err, "Error al obtener emprendimientos")
		return
	}
	c.JSON(http.StatusOK, emps)
}

// GetByID godoc
// @Summary      Obtener emprendimiento
// @Tags         emprendimientos
// @Produce      json
// @Param        id   path      string  true  "ID del emprendimiento"
// @Success      200  {object}  domain.Emprendimiento
// @Failure      404  {object}  map[string]interface{}
// @Router       /emprendimientos/{id} [get]
func (h *EmprendimientoHandler) GetByID(c *gin.Context) {
	emp, err := h.empUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Error al obtener emprendimiento")
		return
	}
	c.JSON(http.StatusOK, emp)
}

type EmprendimientoRequest struct {
	Name        string        `json:"name" binding:"required"`
	Description *string       `json:"description"`
	Products    []interface{} `json:"products"`
	Phone       *string       `json:"phone"`
	Image1URL   *string       `json:"image1Url"`
	Image2URL   *string       `json:"image2Url"`
}

// Create godoc
// @Summary      Crear emprendimiento
// @Tags         emprendimientos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        emprendimiento  body      EmprendimientoRequest  true  "Datos del emprendimiento"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /emprendimientos [post]
func (h *EmprendimientoHandler) Create(c *gin.Context) {
	var req EmprendimientoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.Describe(err)))
		return
	}

	id, err := h.empUC.Create(c.Request.Context(), callerID(c), &domain.Emprendimiento{
		Name:        req.Name,
		Description: req.Description,
		Products:    req.Products,
		Phone:       req.Phone,
		Image1URL:   req.Image1URL,
		Image2URL:   req.Image2URL,
	})
	if err != nil {
		fail(c, err, "Error al crear emprendimiento")
		return
	}
	response.Created(c, "Emprendimiento creado exitosamente", id)
}

// Update godoc
// @Summary      Actualizar emprendimiento
// @Tags         emprendimientos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id              path      string                       true  "ID del emprendimiento"
// @Param        emprendimiento  body      domain.EmprendimientoUpdate  true  "Campos a actualizar"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /emprendimientos/{id} [put]
func (h *EmprendimientoHandler) Update(c *gin.Context) {
	var upd domain.EmprendimientoUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.Error(apperror.Validation(validation.Describe(err)))
		return
	}

	if err := h.empUC.Update(c.Request.Context(), c.Param("id"), callerID(c), &upd); err != nil {
		fail(c, err, "Error al actualizar emprendimiento")
		return
	}
	response.Message(c, "Emprendimiento actualizado exitosamente")
}

// Delete godoc
// @Summary      Eliminar emprendimiento
// @Tags         emprendimientos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID del emprendimiento"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Router       /emprendimientos/{id} [delete]
func (h *EmprendimientoHandler) Delete(c *gin.Context) {
	if err := h.empUC.Delete(c.Request.Context(), c.Param("id"), callerID(c)); err != nil {
		fail(c, err, "Error al eliminar emprendimiento")
		return
	}
	response.Message(c, "Emprendimiento eliminado exitosamente")
}
