package routes

import (
	"github.com/gin-gonic/gin"

	checkoutControllers "github.com/atelier-verne/ecommerce-api/controllers/checkout"
)

// SetupCheckoutRoutes registers the public "/checkout/*" endpoints. Guest
// checkout is allowed, so no auth middleware here.
func SetupCheckoutRoutes(r *gin.Engine, d Deps) {
	checkout := r.Group("/checkout")
	{
		checkout.POST("/create-order", checkoutControllers.CreateOrderHandler(d.DB))
		checkout.GET("/order/:orderId", checkoutControllers.GetOrderHandler(d.DB))
	}
}
