package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/atelier-verne/ecommerce-api/controllers/order"
	"github.com/atelier-verne/ecommerce-api/middleware"
	"github.com/atelier-verne/ecommerce-api/permissions"
)

// SetupOrderRoutes registers the staff-facing "/orders/*" endpoints.
func SetupOrderRoutes(r *gin.Engine, d Deps) {
	orders := r.Group("/orders")
	orders.Use(middleware.RequireStaff(d.DB, d.Tokens, d.Cfg.AccessCookie))
	{
		// Fetch all orders
		orders.GET("/", middleware.RequirePermission(permissions.ViewOrders), orderControllers.GetAllOrdersHandler(d.DB))

		// websocket endpoint for real-time order updates
		orders.GET("/ws/orders", orderControllers.OrderWebSocketHandler)

		// Fetch orders for a specific customer
		orders.GET("/customer/:customerID", middleware.RequirePermission(permissions.ViewOrders), orderControllers.GetCustomerOrdersHandler(d.DB))

		// Update order status (e.g., shipped, cancelled)
		orders.PUT("/:orderCode/status", middleware.RequirePermission(permissions.UpdateOrders), orderControllers.UpdateOrderStatusHandler(d.DB))

		// Delete an order
		orders.DELETE("/:orderCode", middleware.RequireRoles("superadmin"), orderControllers.DeleteOrderHandler(d.DB))
	}
}
