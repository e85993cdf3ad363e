package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/atelier-verne/ecommerce-api/sessions"
	"github.com/atelier-verne/ecommerce-api/token"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin verifies credentials and establishes the admin's single active
// session, replacing whatever session existed before.
func (h *Handler) AdminLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	admin, pair, err := h.Store.LoginAdmin(req.Email, req.Password, c.ClientIP(), c.Request.UserAgent())
	switch {
	case errors.Is(err, sessions.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	case errors.Is(err, sessions.ErrAccountInactive):
		c.JSON(http.StatusForbidden, gin.H{"message": "Account is inactive"})
		return
	case err != nil:
		log.WithError(err).Error("admin login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during login"})
		return
	}

	h.setRefreshCookie(c, pair.Refresh)
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Admin login successful",
		"accessToken": pair.Access,
		"admin": gin.H{
			"id":    admin.ID,
			"name":  admin.Name,
			"email": admin.Email,
			"role":  admin.Role,
		},
	})
}

// StaffRefresh rotates the cookie-carried refresh token for admins and
// superadmins alike; the claims decide which collection the session belongs
// to.
func (h *Handler) StaffRefresh(c *gin.Context) {
	presented, _ := c.Cookie(h.Cfg.RefreshCookie)

	pair, _, err := h.Store.Refresh(presented, c.ClientIP())
	switch {
	case errors.Is(err, sessions.ErrNoToken):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No refresh token found"})
		return
	case errors.Is(err, token.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired refresh token"})
		return
	case errors.Is(err, sessions.ErrSessionInvalid):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Session invalid or expired"})
		return
	case err != nil:
		log.WithError(err).Error("refresh failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	h.setRefreshCookie(c, pair.Refresh)
	c.JSON(http.StatusOK, gin.H{"success": true, "accessToken": pair.Access})
}

// StaffLogout revokes the presented session if it is still the active one.
// Logout is idempotent: a stale or missing token still clears the cookie
// and returns success.
func (h *Handler) StaffLogout(c *gin.Context) {
	presented, _ := c.Cookie(h.Cfg.RefreshCookie)

	if err := h.Store.Logout(presented, c.ClientIP(), c.Request.UserAgent()); err != nil {
		log.WithError(err).Warn("logout session update failed")
	}

	h.clearRefreshCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
