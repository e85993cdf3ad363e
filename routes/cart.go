package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/atelier-verne/ecommerce-api/controllers/cart"
	productcontroller "github.com/atelier-verne/ecommerce-api/controllers/product"
	"github.com/atelier-verne/ecommerce-api/middleware"
)

// SetupCartRoutes registers the customer-facing storefront endpoints.
func SetupCartRoutes(r *gin.Engine, d Deps) {
	// Public catalog browsing
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(d.DB))
		products.GET("/:id", productcontroller.GetProductByID(d.DB))
	}

	cart := r.Group("/cart")
	cart.Use(middleware.RequireCustomer(d.DB, d.Tokens, d.Cfg.CustomerCookie))
	{
		cart.GET("", cartControllers.GetCart(d.DB))
		cart.POST("/items", cartControllers.AddCartItem(d.DB))
		cart.PUT("/items/:itemID", cartControllers.UpdateCartItem(d.DB))
		cart.DELETE("/items/:itemID", cartControllers.RemoveCartItem(d.DB))
		cart.DELETE("", cartControllers.ClearCart(d.DB))
	}
}
