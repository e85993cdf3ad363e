package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atelier-verne/ecommerce-api/models"
	"github.com/atelier-verne/ecommerce-api/token"
)

const customerKey = "customer"

// RequireCustomer authenticates the storefront tier with the same hybrid
// extraction: session cookie first, bearer header as fallback for older
// clients.
func RequireCustomer(db *gorm.DB, tokens *token.Manager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := ExtractToken(c, cookieName)
		if raw == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			c.Abort()
			return
		}

		claims, err := tokens.VerifyAccess(raw)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			c.Abort()
			return
		}

		var customer models.Customer
		err = db.Where("id = ? AND is_active = ?", claims.PrincipalID, true).First(&customer).Error
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
			c.Abort()
			return
		}

		c.Set(customerKey, customer)
		c.Next()
	}
}

// CurrentCustomer returns the customer set by RequireCustomer.
func CurrentCustomer(c *gin.Context) (models.Customer, bool) {
	v, ok := c.Get(customerKey)
	if !ok {
		return models.Customer{}, false
	}
	customer, ok := v.(models.Customer)
	return customer, ok
}
