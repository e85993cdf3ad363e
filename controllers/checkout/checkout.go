package checkoutControllers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/atelier-verne/ecommerce-api/inventory"
	"github.com/atelier-verne/ecommerce-api/models"
)

// DeliveryFee is the flat shipping charge added to every order.
const DeliveryFee = 15.0

const orderCodeAttempts = 3

type CreateOrderRequest struct {
	CustomerID    *uint                  `json:"userId"`
	ProductID     uint                   `json:"productId" binding:"required"`
	Qty           int                    `json:"qty" binding:"required"`
	Size          string                 `json:"size"`
	Color         string                 `json:"color"`
	Address       models.ShippingAddress `json:"address" binding:"required"`
	PaymentMethod string                 `json:"paymentMethod"`
}

// CreateOrder reserves stock and persists the order in one transaction, so
// a failed order insert also rolls the stock decrement back.
func CreateOrder(db *gorm.DB, req CreateOrderRequest) (*models.Order, error) {
	var order *models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		res, err := inventory.Reserve(tx, req.ProductID, req.Qty, inventory.Selector{
			Size:  req.Size,
			Color: req.Color,
		})
		if err != nil {
			return err
		}

		o := buildOrder(res, req.Address, req.PaymentMethod, req.CustomerID)

		code, err := freshOrderCode(tx)
		if err != nil {
			return err
		}
		o.OrderCode = code

		if err := tx.Create(o).Error; err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// buildOrder freezes the reservation into an immutable order record. The
// line item snapshots the product display fields so later product edits or
// deletion never affect this order.
func buildOrder(res *inventory.Reservation, addr models.ShippingAddress, paymentMethod string, customerID *uint) *models.Order {
	item := models.OrderItem{
		ProductID: res.Product.ID,
		Name:      res.Product.Name,
		Image:     res.Product.ImageURL,
		SKU:       fallback(res.Product.SKU, "N/A"),
		Barcode:   barcodeFor(res),
		UnitPrice: res.UnitPrice,
		Quantity:  res.Quantity,
	}
	if res.Variant != nil {
		item.Size = res.Variant.Size
		item.Color = res.Variant.Color
	}

	return &models.Order{
		CustomerID:    customerID,
		Items:         []models.OrderItem{item},
		Address:       addr,
		Amount:        res.UnitPrice*float64(res.Quantity) + DeliveryFee,
		PaymentMethod: fallback(paymentMethod, "COD"),
		Status:        models.OrderStatusPending,
	}
}

// freshOrderCode generates a human-readable code and retries on the rare
// collision. The unique index on order_code backs the check against
// concurrent transactions.
func freshOrderCode(tx *gorm.DB) (string, error) {
	for i := 0; i < orderCodeAttempts; i++ {
		code := generateOrderCode()
		var count int64
		if err := tx.Model(&models.Order{}).Where("order_code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", errors.New("could not allocate a unique order code")
}

func generateOrderCode() string {
	return fmt.Sprintf("ORD-%d", 100000+rand.Intn(900000))
}

func barcodeFor(res *inventory.Reservation) string {
	if res.Variant != nil && res.Variant.Barcode != "" {
		return res.Variant.Barcode
	}
	return fallback(res.Product.SKU, "N/A")
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// FindByCode looks an order up by its human-readable code.
func FindByCode(db *gorm.DB, code string) (*models.Order, error) {
	var order models.Order
	err := db.Preload("Items").Where("order_code = ?", code).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// -------- Handlers --------

// CreateOrderHandler is POST /checkout/create-order.
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing fields"})
			return
		}

		order, err := CreateOrder(db, req)
		if err != nil {
			status, msg := ErrorStatus(err)
			if status == http.StatusInternalServerError {
				log.WithError(err).Error("create-order failed")
			}
			c.JSON(status, gin.H{"success": false, "message": msg})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"orderId": order.OrderCode,
			"order":   order,
		})
	}
}

// GetOrderHandler is GET /checkout/order/:orderId, by readable code.
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("orderId")
		order, err := FindByCode(db, code)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
			return
		}
		if err != nil {
			log.WithError(err).Error("get-order failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}

// ErrorStatus maps an order-creation failure onto an HTTP status and a
// caller-facing message.
func ErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, inventory.ErrProductNotFound):
		return http.StatusNotFound, "Product not found"
	case errors.Is(err, inventory.ErrVariantUnavailable):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, inventory.ErrInsufficientStock):
		return http.StatusBadRequest, "Not enough items in stock"
	case errors.Is(err, inventory.ErrInvalidQuantity):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "Server error"
	}
}
