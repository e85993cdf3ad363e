package productcontroller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atelier-verne/ecommerce-api/models"
)

type VariantInput struct {
	Size     string  `json:"size"`
	Color    string  `json:"color"`
	Material string  `json:"material"`
	Barcode  string  `json:"barcode"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
}

type CreateProductRequest struct {
	Name          string         `json:"name" binding:"required"`
	Description   string         `json:"description"`
	Category      string         `json:"category" binding:"required"`
	Price         float64        `json:"price" binding:"required"`
	DiscountPrice float64        `json:"discount_price"`
	ImageURL      string         `json:"image_url" binding:"required"`
	Vendor        string         `json:"vendor"`
	SKU           string         `json:"sku"`
	StockQuantity int            `json:"stock_quantity"`
	Variants      []VariantInput `json:"variants"`
}

// CreateProduct creates a product with optional variants. Derived stock and
// valuation fields are recomputed on save.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		sku := req.SKU
		if sku == "" {
			sku = generateSKU()
		}

		product := models.Product{
			Name:          req.Name,
			Description:   req.Description,
			Category:      req.Category,
			Price:         req.Price,
			DiscountPrice: req.DiscountPrice,
			ImageURL:      req.ImageURL,
			Vendor:        req.Vendor,
			SKU:           sku,
			StockQuantity: req.StockQuantity,
		}
		for _, v := range req.Variants {
			product.Variants = append(product.Variants, models.Variant{
				Size:     v.Size,
				Color:    v.Color,
				Material: v.Material,
				Barcode:  v.Barcode,
				Price:    v.Price,
				Stock:    v.Stock,
			})
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

func generateSKU() string {
	return fmt.Sprintf("AVN-%d-%s", time.Now().Unix(), uuid.NewString()[:8])
}
