package media

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

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/specialists/:id/media", h.ListBySpecialist)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/specialists/:id/media", middleware.RequirePermission(rbac.MediaUpload), h.Upload)
	mediaGroup := protected.Group("/media")
	{
		mediaGroup.PATCH("/:id", middleware.RequirePermission(rbac.MediaUpload), h.Update)
		mediaGroup.DELETE("/:id", middleware.RequirePermission(rbac.MediaDelete), h.Delete)
	}
}

func (h *Handler) Upload(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var form UploadForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid form data")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "File is required")
		return
	}

	m, err := h.service.Upload(c.Request.Context(), actor, c.Param("id"), file, form)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, m)
}

func (h *Handler) ListBySpecialist(c *gin.Context) {
	items, err := h.service.ListBySpecialist(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"media": items})
}

func (h *Handler) Update(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	m, err := h.service.Update(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, m)
}

func (h *Handler) Delete(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	if err := h.service.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Media deleted")
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Media not found")
	case errors.Is(err, ErrSpecialistNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Specialist not found")
	case errors.Is(err, ErrOwnershipRequired):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this specialist")
	case errors.Is(err, ErrInvalidMediaType):
		response.Error(c, http.StatusBadRequest, "INVALID_MEDIA_TYPE", "Unknown media type")
	case errors.Is(err, ErrMimeNotAllowed),
		errors.Is(err, storage.ErrInvalidMimeType),
		errors.Is(err, storage.ErrEmptyFile),
		errors.Is(err, storage.ErrFileTooLarge):
		response.Error(c, http.StatusBadRequest, "UPLOAD_FAILED", err.Error())
	case errors.Is(err, storage.ErrUploadFailed):
		response.Error(c, http.StatusBadGateway, "UPLOAD_FAILED", "Failed to store file")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}
