package api

import (
	"net/http"

	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
	"go-jobmarket-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(public, protected *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	public.GET("/companies", handler.List)
	public.GET("/companies/:id", handler.GetByID)

	protected.POST("/companies", handler.Create)
	protected.PUT("/companies/:id", handler.Update)
	protected.DELETE("/companies/:id", handler.Delete)
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Produce      json
// @Param        department  query  string  false  "Filtrar por departamento"
// @Param        city        query  string  false  "Filtrar por ciudad"
// @Param        sector      query  string  false  "Filtrar por sector"
// @Param        region      query  string  false  "Filtrar por región"
// @Param        search      query  string  false  "Búsqueda por texto"
// @Success      200  {array}  domain.Company
// @Router       /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companyUC.List(c.Request.Context(), domain.CompanyFilter{
		Department: c.Query("department"),
		City:       c.Query("city"),
		Sector:     c.Query("sector"),
		Region:     c.Query("region"),
		Search:     c.Query("search"),
	})
	if err != nil {
		fail(c, err, "Error al obtener empresas")
		return
	}
	c.JSON(http.StatusOK, companies)
}

// GetByID godoc
// @Summary      Obtener empresa
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "ID de la empresa"
// @Success      200  {object}  domain.Company
// @Failure      404  {object}  map[string]interface{}
// @Router       /companies/{id} [get]
func (h *CompanyHandler) GetByID(c *gin.Context) {
	company, err := h.companyUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Error al obtener empresa")
		return
	}
	c.JSON(http.StatusOK, company)
}

type CompanyRequest struct {
	Name          string  `json:"name" binding:"required"`
	Region        *string `json:"region"`
	Department    *string `json:"department"`
	City          *string `json:"city"`
	Address       *string `json:"address"`
	Sector        *string `json:"sector"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	Website       *string `json:"website"`
	Description   *string `json:"description"`
	EmployeeCount *string `json:"employeeCount"`
	FoundedYear   *string `json:"foundedYear"`
}

// Create godoc
// @Summary      Crear empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        company  body      CompanyRequest  true  "Datos de la empresa"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.Describe(err)))
		return
	}

	id, err := h.companyUC.Create(c.Request.Context(), &domain.Company{
		Name:          req.Name,
		Region:        req.Region,
		Department:    req.Department,
		City:          req.City,
		Address:       req.Address,
		Sector:        req.Sector,
		Phone:         req.Phone,
		Email:         req.Email,
		Website:       req.Website,
		Description:   req.Description,
		EmployeeCount: req.EmployeeCount,
		FoundedYear:   req.FoundedYear,
	})
	if err != nil {
		fail(c, err, "Error al crear empresa")
		return
	}
	response.Created(c, "Empresa creada exitosamente", id)
}

// Update godoc
// @Summary      Actualizar empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                true  "ID de la empresa"
// @Param        company  body      domain.CompanyUpdate  true  "Campos a actualizar"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /companies/{id} [put]
func (h *CompanyHandler) Update(c *gin.Context) {
	var upd domain.CompanyUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.Error(apperror.Validation(validation.Describe(err)))
		return
	}

	if err := h.companyUC.Update(c.Request.Context(), c.Param("id"), &upd); err != nil {
		fail(c, err, "Error al actualizar empresa")
		return
	}
	response.Message(c, "Empresa actualizada exitosamente")
}

// Delete godoc
// @Summary      Eliminar empresa
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID de la empresa"
// @Success      200  {object}  map[string]interface{}
// @Router       /companies/{id} [delete]
func (h *CompanyHandler) Delete(c *gin.Context) {
	if err := h.companyUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err, "Error al eliminar empresa")
		return
	}
	response.Message(c, "Empresa eliminada exitosamente")
}
