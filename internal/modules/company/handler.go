package company

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joychandrauday/anycomp-backend/internal/domain/rbac"
	"github.com/joychandrauday/anycomp-backend/internal/middleware"
	"github.com/joychandrauday/anycomp-backend/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	companies := protected.Group("/companies")
	{
		companies.GET("", middleware.RequireAnyPermission(rbac.CompanyReadAny, rbac.CompanyReadOwn), h.List)
		companies.GET("/:id", middleware.RequireAnyPermission(rbac.CompanyReadAny, rbac.CompanyReadOwn), h.GetByID)
		companies.GET("/:id/compliance", middleware.RequireAnyPermission(rbac.CompanyReadAny, rbac.CompanyReadOwn), h.Compliance)
		companies.POST("", middleware.RequirePermission(rbac.CompanyCreate), h.Create)
		companies.PATCH("/:id", middleware.RequireAnyPermission(rbac.CompanyUpdateAny, rbac.CompanyUpdateOwn), h.Update)
		companies.DELETE("/:id", middleware.RequireAnyPermission(rbac.CompanyDeleteAny, rbac.CompanyDeleteOwn), h.Delete)
		companies.POST("/:id/directors", middleware.RequirePermission(rbac.CompanyManageCompliance), h.AddDirector)
		companies.POST("/:id/shareholders", middleware.RequirePermission(rbac.CompanyManageCompliance), h.AddShareholder)
	}
}

func (h *Handler) List(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	companies, total, err := h.service.List(c.Request.Context(), actor, q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list companies")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"companies": companies,
		"total":     total,
	})
}

func (h *Handler) GetByID(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	company, err := h.service.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, company)
}

func (h *Handler) Compliance(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	compliance, err := h.service.ComplianceOf(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, compliance)
}

func (h *Handler) Create(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	company, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, company)
}

func (h *Handler) Update(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	company, err := h.service.Update(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, company)
}

func (h *Handler) Delete(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	if err := h.service.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Company deleted")
}

func (h *Handler) AddDirector(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var req AddDirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	company, err := h.service.AddDirector(c.Request.Context(), actor, c.Param("id"), req.Director)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, company)
}

func (h *Handler) AddShareholder(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var req AddShareholderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	company, err := h.service.AddShareholder(c.Request.Context(), actor, c.Param("id"), req.Shareholder)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, company)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Company not found")
	case errors.Is(err, ErrOwnershipRequired):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this company")
	case errors.Is(err, ErrRegistrationTaken):
		response.Error(c, http.StatusConflict, "REGISTRATION_TAKEN", "Registration number already in use")
	case errors.Is(err, ErrInvalidEntityType):
		response.Error(c, http.StatusBadRequest, "INVALID_ENTITY_TYPE", "Unknown entity type")
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown company status")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}
