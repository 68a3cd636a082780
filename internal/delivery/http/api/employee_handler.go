package api

import (
	"net/http"

	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
	"go-jobmarket-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	employeeUC domain.EmployeeUsecase
}

// NewEmployeeHandler mounts the HR roster routes. The whole group is
// protected, including reads.
func NewEmployeeHandler(protected *gin.RouterGroup, employeeUC domain.EmployeeUsecase) {
	handler := &EmployeeHandler{employeeUC: employeeUC}

	employees := protected.Group("/employees")
	{
		employees.GET("", handler.List)
		employees.GET("/:id", handler.GetByID)
		employees.POST("", handler.Create)
		employees.PUT("/:id", handler.Update)
		employees.DELETE("/:id", handler.Delete)

		employees.GET("/:id/memorandums", handler.ListMemorandums)
		employees.POST("/:id/memorandums", handler.AddMemorandum)
		employees.DELETE("/:id/memorandums/:memoId", handler.DeleteMemorandum)

		employees.GET("/:id/recognitions", handler.ListRecognitions)
		employees.POST("/:id/recognitions", handler.AddRecognition)
		employees.DELETE("/:id/recognitions/:recId", handler.DeleteRecognition)
	}
}

// List godoc
// @Summary      Listar empleados
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        department  query  string  false  "Filtrar por departamento"
// @Param        status      query  string  false  "active, inactive o suspended"
// @Param        search      query  string  false  "Búsqueda por texto"
// @Success      200  {array}  domain.Employee
// @Router       /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employeeUC.List(c.Request.Context(), domain.EmployeeFilter{
		Department: c.Query("department"),
		Status:     c.Query("status"),
		Search:     c.Query("search"),
	})
	if err != nil {
		fail(c, err, "Error al obtener empleados")
		return
	}
	c.JSON(http.StatusOK, employees)
}

// GetByID godoc
// @Summary      Obtener empleado con su historial
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID del empleado"
// @Success      200  {object}  domain.Employee
// @Failure      404  {object}  map[string]interface{}
// @Router       /employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	employee, err := h.employeeUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Error al obtener empleado")
		return
	}
	c.JSON(http.StatusOK, employee)
}

type EmployeeRequest struct {
	Name       string   `json:"name" binding:"required"`
	Position   string   `json:"position" binding:"required"`
	Email      string   `json:"email" binding:"required,email"`
	Phone      *string  `json:"phone"`
	HireDate   string   `json:"hireDate" binding:"required,iso8601"`
	Department string   `json:"department" binding:"required"`
	Salary     *float64 `json:"salary" binding:"required,gte=0"`
	Status     string   `json:"status" binding:"omitempty,oneof=active inactive suspended"`
	PhotoURL   *string  `json:"photoUrl"`
	Address    *string  `json:"address"`
}

// Create godoc
// @Summary      Registrar empleado
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        employee  body      EmployeeRequest  true  "Datos del empleado"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.Describe(err)))
		return
	}

	hireDate := validation.ParseISODate(req.HireDate)
	if hireDate == nil {
		c.Error(apperror.BadRequest("Fecha de contratación inválida"))
		return
	}

	id, err := h.employeeUC.Create(c.Request.Context(), &domain.Employee{
		Name:       req.Name,
		Position:   req.Position,
		Email:      req.Email,
		Phone:      req.Phone,
		HireDate:   *hireDate,
		Department: req.Department,
		Salary:     *req.Salary,
		Status:     req.Status,
		PhotoURL:   req.PhotoURL,
		Address:    req.Address,
	})
	if err != nil {
		fail(c, err, "Error al crear empleado")
		return
	}
	response.Created(c, "Empleado creado exitosamente", id)
}

// Update godoc
// @Summary      Actualizar empleado
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string                 true  "ID del empleado"
// @Param        employee  body      domain.EmployeeUpdate  true  "Campos a actualizar"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	var upd domain.EmployeeUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.Error(apperror.Validation(validation.Describe(err)))
		return
	}

	if err := h.employeeUC.Update(c.Request.Context(), c.Param("id"), &upd); err != nil {
		fail(c, err, "Error al actualizar empleado")
		return
	}
	response.Message(c, "Empleado actualizado exitosamente")
}

// Delete godoc
// @Summary      Eliminar empleado
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID del empleado"
// @Success      200  {object}  map[string]interface{}
// @Router       /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.employeeUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err, "Error al eliminar empleado")
		return
	}
	response.Message(c, "Empleado eliminado exitosamente")
}

// ListMemorandums godoc
// @Summary      Listar memorandums de un empleado
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID del empleado"
// @Success      200  {array}  domain.Memorandum
// @Router       /employees/{id}/memorandums [get]
func (h *EmployeeHandler) ListMemorandums(c *gin.Context) {
	memos, err := h.employeeUC.ListMemorandums(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Error al obtener memorandums")
		return
	}
	c.JSON(http.StatusOK, memos)
}

type MemorandumRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required,iso8601"`
	Severity    string `json:"severity" binding:"required,oneof=leve grave muy_grave"`
	IssuedBy    string `json:"issuedBy" binding:"required"`
}

// AddMemorandum godoc
// @Summary      Registrar memorandum
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id          path      string             true  "ID del empleado"
// @Param        memorandum  body      MemorandumRequest  true  "Datos del memorandum"
// @Success      201  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /employees/{id}/memorandums [post]
func (h *EmployeeHandler) AddMemorandum(c *gin.Context) {
	var req MemorandumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.Describe(err)))
		return
	}

	date := validation.ParseISODate(req.Date)
	if date == nil {
		c.Error(apperror.BadRequest("Fecha inválida"))
		return
	}

	id, err := h.employeeUC.AddMemorandum(c.Request.Context(), &domain.Memorandum{
		EmployeeID:  c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Date:        *date,
		Severity:    req.Severity,
		IssuedBy:    req.IssuedBy,
	})
	if err != nil {
		fail(c, err, "Error al crear memorandum")
		return
	}
	response.Created(c, "Memorandum creado exitosamente", id)
}

// DeleteMemorandum godoc
// @Summary      Eliminar memorandum
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string  true  "ID del empleado"
// @Param        memoId  path      string  true  "ID del memorandum"
// @Success      200  {object}  map[string]interface{}
// @Router       /employees/{id}/memorandums/{memoId} [delete]
func (h *EmployeeHandler) DeleteMemorandum(c *gin.Context) {
	if err := h.employeeUC.DeleteMemorandum(c.Request.Context(), c.Param("memoId")); err != nil {
		fail(c, err, "Error al eliminar memorandum")
		return
	}
	response.Message(c, "Memorandum eliminado exitosamente")
}

// ListRecognitions godoc
// @Summary      Listar reconocimientos de un empleado
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID del empleado"
// @Success      200  {array}  domain.Recognition
// @Router       /employees/{id}/recognitions [get]
func (h *EmployeeHandler) ListRecognitions(c *gin.Context) {
	recs, err := h.employeeUC.ListRecognitions(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Error al obtener reconocimientos")
		return
	}
	c.JSON(http.StatusOK, recs)
}

type RecognitionRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required,iso8601"`
	Type        string `json:"type" binding:"required"`
	IssuedBy    string `json:"issuedBy" binding:"required"`
}

// AddRecognition godoc
// @Summary      Registrar reconocimiento
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string              true  "ID del empleado"
// @Param        recognition  body      RecognitionRequest  true  "Datos del reconocimiento"
// @Success      201  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /employees/{id}/recognitions [post]
func (h *EmployeeHandler) AddRecognition(c *gin.Context) {
	var req RecognitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.Describe(err)))
		return
	}

	date := validation.ParseISODate(req.Date)
	if date == nil {
		c.Error(apperror.BadRequest("Fecha inválida"))
		return
	}

	id, err := h.employeeUC.AddRecognition(c.Request.Context(), &domain.Recognition{
		EmployeeID:  c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Date:        *date,
		Type:        req.Type,
		IssuedBy:    req.IssuedBy,
	})
	if err != nil {
		fail(c, err, "Error al crear reconocimiento")
		return
	}
	response.Created(c, "Reconocimiento creado exitosamente", id)
}

// DeleteRecognition godoc
// @Summary      Eliminar reconocimiento
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true  "ID del empleado"
// @Param        recId  path      string  true  "ID del reconocimiento"
// @Success      200  {object}  map[string]interface{}
// @Router       /employees/{id}/recognitions/{recId} [delete]
func (h *EmployeeHandler) DeleteRecognition(c *gin.Context) {
	if err := h.employeeUC.DeleteRecognition(c.Request.Context(), c.Param("recId")); err != nil {
		fail(c, err, "Error al eliminar reconocimiento")
		return
	}
	response.Message(c, "Reconocimiento eliminado exitosamente")
}
