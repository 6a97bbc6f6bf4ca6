package specialist

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

// Public routes must sit behind OptionalAuth so privileged callers see
// drafts on the same endpoints.
func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	specialists := v1.Group("/specialists")
	{
		specialists.GET("", h.List)
		specialists.GET("/:id", h.GetByID)
		specialists.GET("/slug/:slug", h.GetBySlug)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	specialists := protected.Group("/specialists")
	{
		specialists.GET("/mine", h.ListMine)
		specialists.GET("/stats", h.Stats)
		specialists.POST("", middleware.RequirePermission(rbac.SpecialistCreate), h.Create)
		specialists.PATCH("/:id", h.Update)
		specialists.DELETE("/:id", h.Delete)
		specialists.POST("/:id/publish", middleware.RequirePermission(rbac.SpecialistPublish), h.Publish)
		specialists.POST("/:id/unpublish", middleware.RequirePermission(rbac.SpecialistPublish), h.Unpublish)
		specialists.PATCH("/:id/verification", middleware.SuperAdminOnly(), h.UpdateVerification)
		specialists.POST("/:id/rate", h.Rate)
	}
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	var actorPtr *rbac.Actor
	if actor, ok := middleware.ActorFrom(c); ok {
		actorPtr = &actor
	}

	specialists, total, err := h.service.List(c.Request.Context(), actorPtr, q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list specialists")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"specialists": specialists,
		"total":       total,
	})
}

func (h *Handler) ListMine(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	specialists, total, err := h.service.ListMine(c.Request.Context(), actor, q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list specialists")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"specialists": specialists,
		"total":       total,
	})
}

func (h *Handler) GetByID(c *gin.Context) {
	var actorPtr *rbac.Actor
	if actor, ok := middleware.ActorFrom(c); ok {
		actorPtr = &actor
	}

	sp, err := h.service.GetByID(c.Request.Context(), actorPtr, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sp)
}

func (h *Handler) GetBySlug(c *gin.Context) {
	var actorPtr *rbac.Actor
	if actor, ok := middleware.ActorFrom(c); ok {
		actorPtr = &actor
	}

	sp, err := h.service.GetBySlug(c.Request.Context(), actorPtr, c.Param("slug"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sp)
}

func (h *Handler) Create(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sp, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, sp)
}

func (h *Handler) Update(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sp, err := h.service.Update(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sp)
}

func (h *Handler) Publish(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	sp, err := h.service.Publish(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sp)
}

func (h *Handler) Unpublish(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	sp, err := h.service.Unpublish(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sp)
}

func (h *Handler) UpdateVerification(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var req VerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sp, err := h.service.UpdateVerification(c.Request.Context(), actor, c.Param("id"), req.Status)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sp)
}

func (h *Handler) Rate(c *gin.Context) {
	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sp, err := h.service.Rate(c.Request.Context(), c.Param("id"), req.Rating)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sp)
}

func (h *Handler) Delete(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	if err := h.service.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Specialist deleted")
}

func (h *Handler) Stats(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	stats, err := h.service.Stats(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STATS_FAILED", "Failed to compute stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Specialist not found")
	case errors.Is(err, ErrSlugTaken):
		response.Error(c, http.StatusConflict, "SLUG_TAKEN", "A specialist with this title already exists")
	case errors.Is(err, ErrOwnershipRequired):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this specialist")
	case errors.Is(err, ErrVerificationForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only a super admin may change verification status")
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown verification status")
	case errors.Is(err, ErrInvalidRating):
		response.Error(c, http.StatusBadRequest, "INVALID_RATING", "Rating must be between 1 and 5")
	case errors.Is(err, ErrNotPublic):
		response.Error(c, http.StatusBadRequest, "NOT_PUBLIC", "Specialist is not publicly visible")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}
