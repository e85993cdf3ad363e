package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atelier-verne/ecommerce-api/models"
)

// GetProducts lists products, optionally filtered by category or stock
// availability (?category=...&in_stock=true).
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Variants").Order("created_at DESC")

		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}
		if c.Query("in_stock") == "true" {
			query = query.Where("in_stock = ?", true)
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
