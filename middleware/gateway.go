// Package middleware is the auth gateway: credential extraction, principal
// resolution, and role/permission gates for the route groups.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atelier-verne/ecommerce-api/models"
	"github.com/atelier-verne/ecommerce-api/token"
)

const principalKey = "principal"

// Principal is the resolved staff identity placed on the request context.
// Admin is nil for superadmins.
type Principal struct {
	ID    uint
	Role  string
	Email string
	Admin *models.Admin
}

// ExtractToken pulls the credential from the request: a cookie-carried
// token wins over the Authorization header.
func ExtractToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// RequireStaff authenticates the admin tier. The decoded subject id is
// probed against the SuperAdmin collection first, then Admin.
func RequireStaff(db *gorm.DB, tokens *token.Manager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := ExtractToken(c, cookieName)
		if raw == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			c.Abort()
			return
		}

		claims, err := tokens.VerifyAccess(raw)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			c.Abort()
			return
		}

		var super models.SuperAdmin
		err = db.Where("id = ? AND is_active = ?", claims.PrincipalID, true).First(&super).Error
		if err == nil {
			c.Set(principalKey, Principal{ID: super.ID, Role: "superadmin", Email: super.Email})
			c.Next()
			return
		}

		var admin models.Admin
		err = db.Where("id = ? AND is_active = ?", claims.PrincipalID, true).First(&admin).Error
		if err == nil {
			c.Set(principalKey, Principal{ID: admin.ID, Role: admin.Role, Email: admin.Email, Admin: &admin})
			c.Next()
			return
		}

		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
		c.Abort()
	}
}

// CurrentPrincipal returns the staff principal set by RequireStaff.
func CurrentPrincipal(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
