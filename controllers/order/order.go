package orderControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/atelier-verne/ecommerce-api/models"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusPaid):
		return models.OrderStatusPaid, nil
	case string(models.OrderStatusFailed):
		return models.OrderStatusFailed, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// MarkPaid flips the order matching a gateway session to paid and records
// the verified gateway payload. Driven by the payment webhook.
func MarkPaid(db *gorm.DB, gatewayRef string, payload []byte) (*models.Order, error) {
	var order models.Order
	if err := db.Where("gateway_ref = ?", gatewayRef).First(&order).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	err := db.Model(&order).Updates(map[string]interface{}{
		"status":          models.OrderStatusPaid,
		"paid_at":         &now,
		"gateway_payload": string(payload),
	}).Error
	if err != nil {
		return nil, err
	}

	BroadcastOrderUpdate(order)
	return &order, nil
}

// MarkFailed records a failed payment attempt for the order.
func MarkFailed(db *gorm.DB, gatewayRef string, payload []byte) error {
	var order models.Order
	if err := db.Where("gateway_ref = ?", gatewayRef).First(&order).Error; err != nil {
		return err
	}

	err := db.Model(&order).Updates(map[string]interface{}{
		"status":          models.OrderStatusFailed,
		"gateway_payload": string(payload),
	}).Error
	if err != nil {
		return err
	}

	order.Status = models.OrderStatusFailed
	BroadcastOrderUpdate(order)
	return nil
}

// -------- Handlers --------

func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func GetCustomerOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := c.Param("customerID")
		if customerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "customerID is required"})
			return
		}
		var orders []models.Order
		if err := db.
			Where("customer_id = ?", customerID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// UpdateOrderStatusHandler mutates the only fields an order allows to
// change after creation.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("orderCode")
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		var order models.Order
		if err := db.Where("order_code = ?", code).First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}

		updates := map[string]interface{}{"status": newStatus}
		if newStatus == models.OrderStatusPaid && order.PaidAt == nil {
			now := time.Now()
			updates["paid_at"] = &now
		}
		if err := db.Model(&order).Updates(updates).Error; err != nil {
			log.WithError(err).Error("failed to update order status")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order status"})
			return
		}

		order.Status = newStatus
		BroadcastOrderUpdate(order)
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("orderCode")

		var order models.Order
		if err := db.Where("order_code = ?", code).First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
