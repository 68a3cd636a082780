package api

import (
	"net/http"

	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
	"go-jobmarket-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobPostUsecase
	oppUC domain.JobOpportunityUsecase
}

func NewJobHandler(public, protected *gin.RouterGroup, jobUC domain.JobPostUsecase, oppUC domain.JobOpportunityUsecase) {
	handler := &JobHandler{jobUC: jobUC, oppUC: oppUC}

	public.GET("/jobs/posts", handler.List)
	public.GET("/jobs/posts/:id", handler.GetByID)
	public.GET("/jobs/opportunities", handler.ListOpportunities)
	public.GET("/jobs/opportunities/:id", handler.GetOpportunityByID)

	protected.POST("/jobs/posts", handler.Create)
	protected.PUT("/jobs/posts/:id", handler.Update)
	protected.DELETE("/jobs/posts/:id", handler.Delete)

	protected.POST("/jobs/opportunities", handler.CreateOpportunity)
	protected.PUT("/jobs/opportunities/:id", handler.UpdateOpportunity)
	protected.DELETE("/jobs/opportunities/:id", handler.DeleteOpportunity)
}

// List godoc
// @Summary      Listar publicaciones de empleo
// @Tags         jobs
// @Produce      json
// @Param        city        query  string  false  "Filtrar por ciudad"
// @Param        type        query  string  false  "fullTime o partTime"
// @Param        modality    query  string  false  "onsite, remote o hybrid"
// @Param        employerId  query  string  false  "Filtrar por empleador"
// @Success      200  {array}  domain.JobPost
// @Router       /jobs/posts [get]
func (h *JobHandler) List(c *gin.Context) {
	posts, err := h.jobUC.List(c.Request.Context(), domain.JobPostFilter{
		City:       c.Query("city"),
		Type:       c.Query("type"),
		Modality:   c.Query("modality"),
		EmployerID: c.Query("employerId"),
	})
	if err != nil {
		fail(c, err, "Error al obtener publicaciones")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetByID godoc
// @Summary      Obtener publicación
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "ID de la publicación"
// @Success      200  {object}  domain.JobPost
// @Failure      404  {object}  map[string]interface{}
// @Router       /jobs/posts/{id} [get]
func (h *JobHandler) GetByID(c *gin.Context) {
	post, err := h.jobUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Error al obtener publicación")
		return
	}
	c.JSON(http.StatusOK, post)
}

type JobPostRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	City         string   `json:"city" binding:"required"`
	Type         string   `json:"type" binding:"required,oneof=fullTime partTime"`
	Modality     string   `json:"modality" binding:"required,oneof=onsite remote hybrid"`
	Requirements []string `json:"requirements"`
	Obligations  []string `json:"obligations"`
}

// Create godoc
// @Summary      Publicar empleo
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        job  body      JobPostRequest  true  "Datos de la publicación"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /jobs/posts [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req JobPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.Describe(err)))
		return
	}

	id, err := h.jobUC.Create(c.Request.Context(), callerID(c), &domain.JobPost{
		Title:        req.Title,
		Description:  req.Description,
		City:         req.City,
		Type:         req.Type,
		Modality:     req.Modality,
		Requirements: req.Requirements,
		Obligations:  req.Obligations,
	})
	if err != nil {
		fail(c, err, "Error al crear publicación")
		return
	}
	response.Created(c, "Publicación creada exitosamente", id)
}

// Update godoc
// @Summary      Actualizar publicación
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string                true  "ID de la publicación"
// @Param        job  body      domain.JobPostUpdate  true  "Campos a actualizar"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /jobs/posts/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	var upd domain.JobPostUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.Error(apperror.Validation(validation.Describe(err)))
		return
	}

	if err := h.jobUC.Update(c.Request.Context(), c.Param("id"), callerID(c), &upd); err != nil {
		fail(c, err, "Error al actualizar publicación")
		return
	}
	response.Message(c, "Publicación actualizada exitosamente")
}

// Delete godoc
// @Summary      Eliminar publicación
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID de la publicación"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Router       /jobs/posts/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobUC.Delete(c.Request.Context(), c.Param("id"), callerID(c)); err != nil {
		fail(c, err, "Error al eliminar publicación")
		return
	}
	response.Message(c, "Publicación eliminada exitosamente")
}

// ListOpportunities godoc
// @Summary      Listar oportunidades laborales
// @Tags         job-opportunities
// @Produce      json
// @Param        department  query  string  false  "Filtrar por departamento"
// @Param        sector      query  string  false  "Filtrar por sector"
// @Param        city        query  string  false  "Filtrar por ciudad"
// @Param        search      query  string  false  "Búsqueda por texto"
// @Success      200  {array}  domain.JobOpportunity
// @Router       /jobs/opportunities [get]
func (h *JobHandler) ListOpportunities(c *gin.Context) {
	opps, err := h.oppUC.List(c.Request.Context(), domain.JobOpportunityFilter{
		Department: c.Query("department"),
		Sector:     c.Query("sector"),
		City:       c.Query("city"),
		Search:     c.Query("search"),
	})
	if err != nil {
		fail(c, err, "Error al obtener oportunidades")
		return
	}
	c.JSON(http.StatusOK, opps)
}

// GetOpportunityByID godoc
// @Summary      Obtener oportunidad
// @Tags         job-opportunities
// @Produce      json
// @Param        id   path      string  true  "ID de la oportunidad"
// @Success      200  {object}  domain.JobOpportunity
// @Failure      404  {object}  map[string]interface{}
// @Router       /jobs/opportunities/{id} [get]
func (h *JobHandler) GetOpportunityByID(c *gin.Context) {
	opp, err := h.oppUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Error al obtener oportunidad")
		return
	}
	c.JSON(http.StatusOK, opp)
}

type JobOpportunityRequest struct {
	Department     string                 `json:"department" binding:"required"`
	Sector         string                 `json:"sector" binding:"required"`
	CompanyName    string                 `json:"companyName" binding:"required"`
	Position       *string                `json:"position"`
	City           *string                `json:"city"`
	Address        *string                `json:"address"`
	Phone          *string                `json:"phone"`
	Email          *string                `json:"email"`
	Website        *string                `json:"website"`
	Description    *string                `json:"description"`
	Requirements   *string                `json:"requirements"`
	Salary         *string                `json:"salary"`
	Schedule       *string                `json:"schedule"`
	ContractType   *string                `json:"contractType"`
	Benefits       *string                `json:"benefits"`
	Experience     *string                `json:"experience"`
	ContactPerson  *string                `json:"contactPerson"`
	AdditionalData map[string]interface{} `json:"additionalData"`
}

// CreateOpportunity godoc
// @Summary      Crear oportunidad
// @Tags         job-opportunities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        opportunity  body      JobOpportunityRequest  true  "Datos de la oportunidad"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /jobs/opportunities [post]
func (h *JobHandler) CreateOpportunity(c *gin.Context) {
	var req JobOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.Describe(err)))
		return
	}

	id, err := h.oppUC.Create(c.Request.Context(), &domain.JobOpportunity{
		Department:     req.Department,
		Sector:         req.Sector,
		CompanyName:    req.CompanyName,
		Position:       req.Position,
		City:           req.City,
		Address:        req.Address,
		Phone:          req.Phone,
		Email:          req.Email,
		Website:        req.Website,
		Description:    req.Description,
		Requirements:   req.Requirements,
		Salary:         req.Salary,
		Schedule:       req.Schedule,
		ContractType:   req.ContractType,
		Benefits:       req.Benefits,
		Experience:     req.Experience,
		ContactPerson:  req.ContactPerson,
		AdditionalData: req.AdditionalData,
	})
	if err != nil {
		fail(c, err, "Error al crear oportunidad")
		return
	}
	response.Created(c, "Oportunidad creada exitosamente", id)
}

// UpdateOpportunity godoc
// @Summary      Actualizar oportunidad
// @Tags         job-opportunities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string                       true  "ID de la oportunidad"
// @Param        opportunity  body      domain.JobOpportunityUpdate  true  "Campos a actualizar"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /jobs/opportunities/{id} [put]
func (h *JobHandler) UpdateOpportunity(c *gin.Context) {
	var upd domain.JobOpportunityUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.Error(apperror.Validation(validation.Describe(err)))
		return
	}

	if err := h.oppUC.Update(c.Request.Context(), c.Param("id"), &upd); err != nil {
		fail(c, err, "Error al actualizar oportunidad")
		return
	}
	response.Message(c, "Oportunidad actualizada exitosamente")
}

// DeleteOpportunity godoc
// @Summary      Eliminar oportunidad
// @Tags         job-opportunities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID de la oportunidad"
// @Success      200  {object}  map[string]interface{}
// @Router       /jobs/opportunities/{id} [delete]
func (h *JobHandler) DeleteOpportunity(c *gin.Context) {
	if err := h.oppUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err, "Error al eliminar oportunidad")
		return
	}
	response.Message(c, "Oportunidad eliminada exitosamente")
}
