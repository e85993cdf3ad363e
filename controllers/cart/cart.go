package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atelier-verne/ecommerce-api/middleware"
	"github.com/atelier-verne/ecommerce-api/models"
)

// loadOrCreateCart finds the customer's cart, creating an empty one on
// first use.
func loadOrCreateCart(db *gorm.DB, customerID uint) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").Where("customer_id = ?", customerID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{CustomerID: customerID}
		if err := db.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := middleware.CurrentCustomer(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		cart, err := loadOrCreateCart(db, customer.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

type addCartItemRequest struct {
	ProductID uint   `json:"productId" binding:"required"`
	Quantity  int    `json:"qty"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// AddCartItem snapshots the product display fields into the cart line, the
// same way an order does at checkout.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := middleware.CurrentCustomer(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if req.Quantity <= 0 {
			req.Quantity = 1
		}

		var product models.Product
		if err := db.First(&product, req.ProductID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}

		cart, err := loadOrCreateCart(db, customer.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
			return
		}

		// Same product and variant selection bumps the quantity.
		var item models.CartItem
		err = db.Where("cart_id = ? AND product_id = ? AND size = ? AND color = ?",
			cart.ID, req.ProductID, req.Size, req.Color).First(&item).Error
		if err == nil {
			item.Quantity += req.Quantity
			item.AddedAt = time.Now()
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update cart"})
				return
			}
		} else if errors.Is(err, gorm.ErrRecordNotFound) {
			item = models.CartItem{
				CartID:    cart.ID,
				ProductID: product.ID,
				Name:      product.Name,
				Image:     product.ImageURL,
				Price:     product.Price,
				Size:      req.Size,
				Color:     req.Color,
				Quantity:  req.Quantity,
				AddedAt:   time.Now(),
			}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update cart"})
				return
			}
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item added to cart"})
	}
}

type updateCartItemRequest struct {
	Quantity int `json:"qty" binding:"required"`
}

func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := middleware.CurrentCustomer(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var req updateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "qty must be positive"})
			return
		}

		cart, err := loadOrCreateCart(db, customer.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
			return
		}

		result := db.Model(&models.CartItem{}).
			Where("id = ? AND cart_id = ?", c.Param("itemID"), cart.ID).
			Update("quantity", req.Quantity)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update cart"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart updated"})
	}
}

func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := middleware.CurrentCustomer(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		cart, err := loadOrCreateCart(db, customer.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
			return
		}

		if err := db.Where("id = ? AND cart_id = ?", c.Param("itemID"), cart.ID).
			Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item removed"})
	}
}

func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := middleware.CurrentCustomer(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		cart, err := loadOrCreateCart(db, customer.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
			return
		}

		if err := db.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart cleared"})
	}
}
