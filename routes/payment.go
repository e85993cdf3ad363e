package routes

import (
	"github.com/gin-gonic/gin"

	paymentControllers "github.com/atelier-verne/ecommerce-api/controllers/payment"
)

// SetupPaymentRoutes registers the "/payment/*" endpoints. The webhook is
// called by the gateway, not the frontend, and authenticates by signature.
func SetupPaymentRoutes(r *gin.Engine, d Deps) {
	pay := r.Group("/payments/stripe")
	{
		pay.POST("/session", paymentControllers.CreateSessionHandler(d.DB, d.Gateway, d.Cfg.FrontendBaseURL))
		pay.POST("/webhook", paymentControllers.WebhookHandler(d.DB, d.Gateway))
	}
}
