package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
	"github.com/joychandrauday/anycomp-backend/internal/domain/rbac"
	"github.com/joychandrauday/anycomp-backend/internal/middleware"
	"github.com/joychandrauday/anycomp-backend/internal/pkg/response"
)

const refreshCookieName = "refresh_token"

// Handler manages all HTTP interactions for authentication.
type Handler struct {
	service      *Service
	cookiePath   string
	cookieSecure bool
	cookieMaxAge int
	devMode      bool
}

func NewHandler(service *Service, cookiePath string, cookieSecure bool, cookieMaxAge int, devMode bool) *Handler {
	return &Handler{
		service:      service,
		cookiePath:   cookiePath,
		cookieSecure: cookieSecure,
		cookieMaxAge: cookieMaxAge,
		devMode:      devMode,
	}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/logout", h.Logout)
		authGroup.POST("/forgot-password", h.ForgotPassword)
		authGroup.POST("/reset-password", h.ResetPassword)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	authGroup := protected.Group("/auth")
	{
		authGroup.GET("/me", h.GetMe)
		authGroup.POST("/change-password", h.ChangePassword)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
		case errors.Is(err, ErrRoleNotAllowed):
			response.Error(c, http.StatusBadRequest, "ROLE_NOT_ALLOWED", "Requested role cannot be self-assigned")
		default:
			response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register user")
		}
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)
	response.Success(c, http.StatusCreated, gin.H{
		"user":         toPublic(result.User),
		"access_token": result.AccessToken,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect")
		case errors.Is(err, ErrAccountNotActive):
			response.Error(c, http.StatusForbidden, "ACCOUNT_NOT_ACTIVE", "Account is not active")
		default:
			response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to log in")
		}
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)
	response.Success(c, http.StatusOK, gin.H{
		"user":         toPublic(result.User),
		"access_token": result.AccessToken,
	})
}

// Refresh rotates the session. The refresh token travels only in the
// HTTP-only cookie, never in a body.
func (h *Handler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie(refreshCookieName)
	if err != nil || refresh == "" {
		response.Error(c, http.StatusUnauthorized, "INVALID_REFRESH_TOKEN", "Refresh token missing")
		return
	}

	result, err := h.service.RefreshSession(c.Request.Context(), refresh)
	if err != nil {
		h.clearRefreshCookie(c)
		switch {
		case errors.Is(err, ErrInvalidRefreshToken):
			response.Error(c, http.StatusUnauthorized, "INVALID_REFRESH_TOKEN", "Refresh token is invalid or expired")
		case errors.Is(err, ErrAccountNotActive):
			response.Error(c, http.StatusForbidden, "ACCOUNT_NOT_ACTIVE", "Account is not active")
		default:
			response.Error(c, http.StatusInternalServerError, "REFRESH_FAILED", "Failed to refresh session")
		}
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)
	response.Success(c, http.StatusOK, gin.H{
		"access_token": result.AccessToken,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	h.clearRefreshCookie(c)
	response.Message(c, http.StatusOK, "Logged out")
}

func (h *Handler) GetMe(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	user, err := h.service.GetCurrentUser(c.Request.Context(), actor.ID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}

	response.Success(c, http.StatusOK, toPublic(user))
}

func (h *Handler) ChangePassword(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), actor.ID, req); err != nil {
		if errors.Is(err, ErrWrongCurrentPassword) {
			response.Error(c, http.StatusUnauthorized, "WRONG_PASSWORD", "Current password is incorrect")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CHANGE_PASSWORD_FAILED", "Failed to change password")
		return
	}

	response.Message(c, http.StatusOK, "Password changed")
}

// ForgotPassword answers the same message whether or not the account
// exists.
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	token, err := h.service.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FORGOT_PASSWORD_FAILED", "Failed to process request")
		return
	}

	// No mail transport is wired; surface the token in dev only.
	if token != "" && h.devMode {
		log.Printf("password_reset_token email=%s token=%s", req.Email, token)
	}

	response.Message(c, http.StatusOK, "If the email exists, a reset link has been sent")
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), req); err != nil {
		if errors.Is(err, ErrInvalidResetToken) {
			response.Error(c, http.StatusBadRequest, "INVALID_RESET_TOKEN", "Reset token is invalid or expired")
			return
		}
		response.Error(c, http.StatusInternalServerError, "RESET_PASSWORD_FAILED", "Failed to reset password")
		return
	}

	response.Message(c, http.StatusOK, "Password has been reset")
}

func (h *Handler) setRefreshCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(refreshCookieName, token, h.cookieMaxAge, h.cookiePath, "", h.cookieSecure, true)
}

func (h *Handler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(refreshCookieName, "", -1, h.cookiePath, "", h.cookieSecure, true)
}

func toPublic(u *domain.User) UserPublic {
	return UserPublic{
		ID:           u.ID,
		Email:        u.Email,
		FullName:     u.FullName,
		PhoneNumber:  u.PhoneNumber,
		Role:         string(u.Role),
		Status:       string(u.Status),
		ProfileImage: u.ProfileImage,
		Permissions:  rbac.EffectivePermissions(u),
	}
}
