package secretary

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joychandrauday/anycomp-backend/internal/domain/rbac"
	"github.com/joychandrauday/anycomp-backend/internal/middleware"
	"github.com/joychandrauday/anycomp-backend/internal/pkg/response"
	"github.com/joychandrauday/anycomp-backend/internal/storage"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	secretaries := protected.Group("/secretaries")
	{
		secretaries.GET("", middleware.RequirePermission(rbac.SecretaryRead), h.List)
		secretaries.GET("/:id", middleware.RequirePermission(rbac.SecretaryRead), h.GetByID)
		secretaries.GET("/:id/stats", middleware.RequirePermission(rbac.SecretaryRead), h.Stats)
		secretaries.POST("", middleware.RequirePermission(rbac.SecretaryCreate), h.Create)
		secretaries.PATCH("/:id", middleware.RequirePermission(rbac.SecretaryUpdate), h.Update)
		secretaries.DELETE("/:id", middleware.RequirePermission(rbac.SecretaryDelete), h.Delete)

		secretaries.POST("/:id/companies/:companyId", middleware.RequirePermission(rbac.SecretaryManageClients), h.AssignCompany)
		secretaries.DELETE("/:id/companies/:companyId", middleware.RequirePermission(rbac.SecretaryManageClients), h.UnassignCompany)
		secretaries.POST("/:id/specialists/:specialistId", middleware.RequirePermission(rbac.SecretaryManageSpecialists), h.AssignSpecialist)
		secretaries.DELETE("/:id/specialists/:specialistId", middleware.RequirePermission(rbac.SecretaryManageSpecialists), h.UnassignSpecialist)
	}
}

// Create accepts multipart form data so the avatar and banner can be
// attached to the same request.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	avatar, _ := c.FormFile("avatar")
	banner, _ := c.FormFile("banner")

	sec, err := h.service.CreateWithUser(c.Request.Context(), req, avatar, banner)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
		case errors.Is(err, ErrRegistrationTaken):
			response.Error(c, http.StatusConflict, "REGISTRATION_TAKEN", "Registration number already in use")
		case errors.Is(err, storage.ErrInvalidMimeType), errors.Is(err, storage.ErrFileTooLarge), errors.Is(err, storage.ErrEmptyFile):
			response.Error(c, http.StatusBadRequest, "UPLOAD_FAILED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create secretary")
		}
		return
	}

	response.Success(c, http.StatusCreated, sec)
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	secretaries, total, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list secretaries")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"secretaries": secretaries,
		"total":       total,
	})
}

func (h *Handler) GetByID(c *gin.Context) {
	sec, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sec)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sec, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sec)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Secretary deleted")
}

func (h *Handler) AssignCompany(c *gin.Context) {
	sec, err := h.service.AssignCompany(c.Request.Context(), c.Param("id"), c.Param("companyId"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sec)
}

func (h *Handler) UnassignCompany(c *gin.Context) {
	sec, err := h.service.UnassignCompany(c.Request.Context(), c.Param("id"), c.Param("companyId"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sec)
}

func (h *Handler) AssignSpecialist(c *gin.Context) {
	sec, err := h.service.AssignSpecialist(c.Request.Context(), c.Param("id"), c.Param("specialistId"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sec)
}

func (h *Handler) UnassignSpecialist(c *gin.Context) {
	sec, err := h.service.UnassignSpecialist(c.Request.Context(), c.Param("id"), c.Param("specialistId"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sec)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Secretary not found")
	case errors.Is(err, ErrCompanyNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Company not found")
	case errors.Is(err, ErrSpecialistNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Specialist not found")
	case errors.Is(err, ErrNotAcceptingCompanies):
		response.Error(c, http.StatusConflict, "NOT_ACCEPTING", "Secretary is not accepting new companies")
	case errors.Is(err, ErrNotAcceptingSpecialist):
		response.Error(c, http.StatusConflict, "NOT_ACCEPTING", "Secretary is not accepting new specialists")
	case errors.Is(err, ErrAlreadyAssigned):
		response.Error(c, http.StatusConflict, "ALREADY_ASSIGNED", "Already assigned to a secretary")
	case errors.Is(err, ErrNotAssigned):
		response.Error(c, http.StatusConflict, "NOT_ASSIGNED", "Not assigned to this secretary")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}
