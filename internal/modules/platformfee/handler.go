package platformfee

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
	v1.GET("/platform-fees/resolve", h.Resolve)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	fees := protected.Group("/platform-fees")
	{
		fees.GET("", middleware.RequirePermission(rbac.PlatformFeeRead), h.List)
		fees.POST("", middleware.RequirePermission(rbac.PlatformFeeManage), h.Create)
		fees.PATCH("/:tier", middleware.RequirePermission(rbac.PlatformFeeManage), h.Update)
	}
}

func (h *Handler) List(c *gin.Context) {
	tiers, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list fee tiers")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tiers": tiers})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	f, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, f)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	f, err := h.service.Update(c.Request.Context(), c.Param("tier"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, f)
}

func (h *Handler) Resolve(c *gin.Context) {
	var q ResolveQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Price is required")
		return
	}

	res, err := h.service.Resolve(c.Request.Context(), q.Price)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "RESOLVE_FAILED", "Failed to resolve fee")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Fee tier not found")
	case errors.Is(err, ErrTierTaken):
		response.Error(c, http.StatusConflict, "TIER_EXISTS", "Tier already exists")
	case errors.Is(err, ErrInvalidTier):
		response.Error(c, http.StatusBadRequest, "INVALID_TIER", "Unknown tier name")
	case errors.Is(err, ErrInvalidRange):
		response.Error(c, http.StatusBadRequest, "INVALID_RANGE", "min_value must be below max_value")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}
