package paymentControllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	checkoutControllers "github.com/atelier-verne/ecommerce-api/controllers/checkout"
	orderControllers "github.com/atelier-verne/ecommerce-api/controllers/order"
	"github.com/atelier-verne/ecommerce-api/models"
	"github.com/atelier-verne/ecommerce-api/payment"
)

type createSessionRequest struct {
	checkoutControllers.CreateOrderRequest
	CustomerEmail string `json:"email"`
}

// CreateSessionHandler is POST /payments/stripe/session. It places the order
// first, so stock is already reserved while the customer is on the hosted
// checkout page, then attaches the gateway session to the pending order.
func CreateSessionHandler(db *gorm.DB, gateway payment.Gateway, frontendBase string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing fields"})
			return
		}
		req.PaymentMethod = "stripe"

		order, err := checkoutControllers.CreateOrder(db, req.CreateOrderRequest)
		if err != nil {
			status, msg := checkoutControllers.ErrorStatus(err)
			if status == http.StatusInternalServerError {
				log.WithError(err).Error("create-session order failed")
			}
			c.JSON(status, gin.H{"success": false, "message": msg})
			return
		}

		items := make([]payment.LineItem, 0, len(order.Items)+1)
		for _, it := range order.Items {
			items = append(items, payment.LineItem{
				Name:      it.Name,
				Image:     it.Image,
				UnitPrice: it.UnitPrice,
				Quantity:  it.Quantity,
			})
		}
		items = append(items, payment.LineItem{
			Name:      "Delivery",
			UnitPrice: checkoutControllers.DeliveryFee,
			Quantity:  1,
		})

		sessionID, err := gateway.CreateCheckoutSession(
			items,
			req.CustomerEmail,
			frontendBase+"/checkout/success?order="+order.OrderCode,
			frontendBase+"/checkout/cancel?order="+order.OrderCode,
		)
		if err != nil {
			log.WithError(err).Error("stripe session creation failed")
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Payment gateway error"})
			return
		}

		if err := db.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("gateway_ref", sessionID).Error; err != nil {
			log.WithError(err).Error("failed to attach gateway session to order")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"orderId":   order.OrderCode,
			"sessionId": sessionID,
		})
	}
}

// WebhookHandler is POST /payments/stripe/webhook. The raw body must reach signature
// verification untouched, so it bypasses JSON binding entirely.
func WebhookHandler(db *gorm.DB, gateway payment.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Unreadable body"})
			return
		}

		evt, err := gateway.VerifyWebhook(body, c.GetHeader("Stripe-Signature"))
		if err != nil {
			log.WithError(err).Warn("rejected payment webhook")
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid signature"})
			return
		}

		switch evt.Type {
		case payment.EventCheckoutCompleted:
			if _, err := orderControllers.MarkPaid(db, evt.GatewayRef, evt.Payload); err != nil {
				log.WithError(err).WithField("session", evt.GatewayRef).Error("failed to mark order paid")
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
				return
			}
		case payment.EventPaymentFailed:
			if err := orderControllers.MarkFailed(db, evt.GatewayRef, evt.Payload); err != nil {
				log.WithError(err).WithField("session", evt.GatewayRef).Error("failed to mark order failed")
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}
