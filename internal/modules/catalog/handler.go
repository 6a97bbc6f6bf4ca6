package catalog

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

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/services", h.ListMasters)
	v1.GET("/services/:id", h.GetMaster)
	v1.GET("/specialists/:id/offerings", h.ListOfferings)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	services := protected.Group("/services")
	{
		services.POST("", middleware.RequirePermission(rbac.ServiceManage), h.CreateMaster)
		services.PATCH("/:id", middleware.RequirePermission(rbac.ServiceManage), h.UpdateMaster)
		services.DELETE("/:id", middleware.RequirePermission(rbac.ServiceManage), h.DeleteMaster)
	}

	protected.POST("/specialists/:id/offerings/:serviceId", h.AddOffering)
	protected.DELETE("/specialists/:id/offerings/:serviceId", h.RemoveOffering)
}

func (h *Handler) CreateMaster(c *gin.Context) {
	var req CreateMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	m, err := h.service.CreateMaster(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create service")
		return
	}
	response.Success(c, http.StatusCreated, m)
}

func (h *Handler) GetMaster(c *gin.Context) {
	m, err := h.service.GetMaster(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, m)
}

func (h *Handler) ListMasters(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	masters, total, err := h.service.ListMasters(c.Request.Context(), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list services")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"services": masters,
		"total":    total,
	})
}

func (h *Handler) UpdateMaster(c *gin.Context) {
	var req UpdateMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	m, err := h.service.UpdateMaster(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, m)
}

func (h *Handler) DeleteMaster(c *gin.Context) {
	if err := h.service.DeleteMaster(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Service deleted")
}

func (h *Handler) AddOffering(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	o, err := h.service.AddOffering(c.Request.Context(), actor, c.Param("id"), c.Param("serviceId"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, o)
}

func (h *Handler) ListOfferings(c *gin.Context) {
	offerings, err := h.service.ListOfferings(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"offerings": offerings})
}

func (h *Handler) RemoveOffering(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	if err := h.service.RemoveOffering(c.Request.Context(), actor, c.Param("id"), c.Param("serviceId")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Offering removed")
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMasterNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service not found")
	case errors.Is(err, ErrOfferingNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Offering not found")
	case errors.Is(err, ErrSpecialistNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Specialist not found")
	case errors.Is(err, ErrOwnershipRequired):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this specialist")
	case errors.Is(err, ErrDuplicateOffering):
		response.Error(c, http.StatusConflict, "DUPLICATE_OFFERING", "This offering already exists")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}
