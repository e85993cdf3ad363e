package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	authGroup := r.Group("/auth")
	{
		// Staff (admin + superadmin)
		authGroup.POST("/admin/login", d.Auth.AdminLogin)
		authGroup.POST("/refresh", d.Auth.StaffRefresh)
		authGroup.POST("/logout", d.Auth.StaffLogout)

		// Superadmin OTP flows
		authGroup.POST("/superadmin/register", d.Auth.SuperAdminRegister)
		authGroup.POST("/superadmin/verify-otp", d.Auth.SuperAdminVerifyOTP)
		authGroup.POST("/superadmin/login", d.Auth.SuperAdminLogin)
		authGroup.POST("/superadmin/login/verify", d.Auth.SuperAdminLoginVerify)

		// Customers
		authGroup.POST("/register", d.Auth.CustomerRegister)
		authGroup.POST("/login", d.Auth.CustomerLogin)
		authGroup.POST("/customer/logout", d.Auth.CustomerLogout)
	}
}
