package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/atelier-verne/ecommerce-api/controllers/admin"
	productcontroller "github.com/atelier-verne/ecommerce-api/controllers/product"
	"github.com/atelier-verne/ecommerce-api/middleware"
	"github.com/atelier-verne/ecommerce-api/permissions"
)

// SetupAdminRoutes registers all "/admin/*" endpoints behind the staff
// gateway.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireStaff(d.DB, d.Tokens, d.Cfg.AccessCookie))
	{
		// Staff management is superadmin only.
		staffMgmt := adminGroup.Group("/staff")
		staffMgmt.Use(middleware.RequireRoles("superadmin"))
		{
			staffMgmt.POST("", adminController.CreateStaff(d.DB, d.Auth.Mailer, d.Cfg.FrontendBaseURL))
			staffMgmt.PUT("/:id", adminController.UpdateStaff(d.DB))
			staffMgmt.GET("", adminController.GetAllAdmins(d.DB))
		}

		adminGroup.GET("/activity", adminController.GetActivity(d.DB))

		// Product management
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", middleware.RequirePermission(permissions.AddProducts), productcontroller.CreateProduct(d.DB))
			productAdmin.PUT("/:id", middleware.RequirePermission(permissions.UpdateProducts), productcontroller.UpdateProduct(d.DB))
			productAdmin.GET("", middleware.RequirePermission(permissions.ViewProducts), productcontroller.GetProducts(d.DB))
			productAdmin.GET("/:id", middleware.RequirePermission(permissions.ViewProducts), productcontroller.GetProductByID(d.DB))
			productAdmin.DELETE("/:id", middleware.RequireRoles("superadmin"), productcontroller.DeleteProduct(d.DB))
			productAdmin.GET("/export-excel", middleware.RequirePermission(permissions.ViewReports), productcontroller.ExportProductsToExcel(d.DB))
		}
	}
}
