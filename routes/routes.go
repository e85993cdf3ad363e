package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atelier-verne/ecommerce-api/auth"
	"github.com/atelier-verne/ecommerce-api/config"
	"github.com/atelier-verne/ecommerce-api/payment"
	"github.com/atelier-verne/ecommerce-api/token"
)

// Deps carries everything the route groups need to build their handlers.
type Deps struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Tokens  *token.Manager
	Auth    *auth.Handler
	Gateway payment.Gateway
}

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, d Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, d)

	// Customer routes (customer-token protected)
	SetupCartRoutes(r, d)

	// Staff routes (access-token protected)
	SetupAdminRoutes(r, d)
	SetupOrderRoutes(r, d)

	// Checkout and payment routes
	SetupCheckoutRoutes(r, d)
	SetupPaymentRoutes(r, d)
}
