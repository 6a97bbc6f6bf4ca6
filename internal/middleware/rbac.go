package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
	"github.com/joychandrauday/anycomp-backend/internal/pkg/response"
)

// RequirePermission rejects requests whose actor lacks the permission.
// Must run after Auth.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}

		if !actor.HasPermission(permission) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAnyPermission passes when the actor holds at least one of the
// listed permissions.
func RequireAnyPermission(permissions ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}

		for _, p := range permissions {
			if actor.HasPermission(p) {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
		c.Abort()
	}
}

// RequireRole restricts a route to the listed roles.
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}

		if !actor.HasAnyRole(roles...) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: role not permitted")
			c.Abort()
			return
		}

		c.Next()
	}
}

// SuperAdminOnly restricts a route to super admins.
func SuperAdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleSuperAdmin)
}

// AdminOnly restricts a route to admins and super admins.
func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleSuperAdmin, domain.RoleAdmin)
}
