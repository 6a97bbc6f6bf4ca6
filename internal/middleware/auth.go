package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
	"github.com/joychandrauday/anycomp-backend/internal/domain/rbac"
	"github.com/joychandrauday/anycomp-backend/internal/pkg/jwt"
	"github.com/joychandrauday/anycomp-backend/internal/pkg/response"
)

const actorKey = "actor"

// Auth validates the Bearer access token and stores the resulting actor
// in the request context.
func Auth(tokens *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authorization header must be Bearer token")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(parts[1], jwt.KindAccess)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				response.Error(c, http.StatusUnauthorized, "TOKEN_EXPIRED", "Access token has expired")
			} else {
				response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid access token")
			}
			c.Abort()
			return
		}

		c.Set(actorKey, rbac.Actor{
			ID:          claims.Subject,
			Email:       claims.Email,
			Role:        domain.UserRole(claims.Role),
			Permissions: claims.Permissions,
		})
		c.Next()
	}
}

// ActorFrom returns the authenticated actor, or false when the request
// did not pass the Auth middleware.
func ActorFrom(c *gin.Context) (rbac.Actor, bool) {
	v, exists := c.Get(actorKey)
	if !exists {
		return rbac.Actor{}, false
	}
	actor, ok := v.(rbac.Actor)
	return actor, ok
}

// OptionalAuth resolves an actor when a valid Bearer token is present
// but lets anonymous requests through. Public listings use it to decide
// visibility.
func OptionalAuth(tokens *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.Next()
			return
		}

		claims, err := tokens.Verify(parts[1], jwt.KindAccess)
		if err != nil {
			c.Next()
			return
		}

		c.Set(actorKey, rbac.Actor{
			ID:          claims.Subject,
			Email:       claims.Email,
			Role:        domain.UserRole(claims.Role),
			Permissions: claims.Permissions,
		})
		c.Next()
	}
}
