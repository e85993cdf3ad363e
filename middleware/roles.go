package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelier-verne/ecommerce-api/permissions"
)

// RequireRoles gates a route on exact role membership.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := CurrentPrincipal(c)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"message": "No user context found"})
			c.Abort()
			return
		}
		for _, role := range allowed {
			if p.Role == role {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied: insufficient role"})
		c.Abort()
	}
}

// RequirePermission gates a route on a named permission. A superadmin
// bypasses permission checks entirely.
func RequirePermission(perm permissions.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := CurrentPrincipal(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}
		if p.Role == "superadmin" {
			c.Next()
			return
		}
		if p.Admin != nil && permissions.Granted(p.Admin, perm) {
			c.Next()
			return
		}
		c.JSON(http.StatusForbidden, gin.H{"message": "Permission denied"})
		c.Abort()
	}
}
