package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atelier-verne/ecommerce-api/models"
)

type UpdateProductRequest struct {
	Name          *string         `json:"name"`
	Description   *string         `json:"description"`
	Category      *string         `json:"category"`
	Price         *float64        `json:"price"`
	DiscountPrice *float64        `json:"discount_price"`
	ImageURL      *string         `json:"image_url"`
	Vendor        *string         `json:"vendor"`
	StockQuantity *int            `json:"stock_quantity"`
	Variants      *[]VariantInput `json:"variants"`
}

// UpdateProduct applies a partial update. Variants, when provided, replace
// the existing set; derived fields are recomputed either way.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Variants").First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		if req.Name != nil {
			product.Name = *req.Name
		}
		if req.Description != nil {
			product.Description = *req.Description
		}
		if req.Category != nil {
			product.Category = *req.Category
		}
		if req.Price != nil {
			product.Price = *req.Price
		}
		if req.DiscountPrice != nil {
			product.DiscountPrice = *req.DiscountPrice
		}
		if req.ImageURL != nil {
			product.ImageURL = *req.ImageURL
		}
		if req.Vendor != nil {
			product.Vendor = *req.Vendor
		}
		if req.StockQuantity != nil {
			product.StockQuantity = *req.StockQuantity
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if req.Variants != nil {
				if err := tx.Where("product_id = ?", product.ID).Delete(&models.Variant{}).Error; err != nil {
					return err
				}
				product.Variants = nil
				for _, v := range *req.Variants {
					product.Variants = append(product.Variants, models.Variant{
						ProductID: product.ID,
						Size:      v.Size,
						Color:     v.Color,
						Material:  v.Material,
						Barcode:   v.Barcode,
						Price:     v.Price,
						Stock:     v.Stock,
					})
				}
				if len(product.Variants) > 0 {
					if err := tx.Create(&product.Variants).Error; err != nil {
						return err
					}
				}
			}
			return tx.Save(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
