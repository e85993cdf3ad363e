package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/atelier-verne/ecommerce-api/models"
)

type customerRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

func (h *Handler) CustomerRegister(c *gin.Context) {
	var req customerRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email and password are required"})
		return
	}

	var count int64
	h.DB.Model(&models.Customer{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Account already exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	customer := models.Customer{Name: req.Name, Email: req.Email, Password: string(hashed), IsActive: true}
	if err := h.DB.Create(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Account created"})
}

// CustomerLogin issues the long-lived storefront token, delivered both as
// an httpOnly cookie and in the body for older clients.
func (h *Handler) CustomerLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	var customer models.Customer
	err := h.DB.Where("email = ?", req.Email).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if !customer.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"message": "Account is inactive"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	ip := c.ClientIP()
	now := time.Now()
	err = h.DB.Model(&customer).Updates(map[string]interface{}{
		"last_login_ip": ip,
		"last_login_at": &now,
	}).Error
	if err != nil {
		log.WithError(err).Warn("failed to record customer login")
	}

	raw, err := h.Tokens.SignAccessWithTTL(customer.ID, "customer", h.Cfg.RefreshTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	h.setCustomerCookie(c, raw)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   raw,
		"ip":      ip,
		"user": gin.H{
			"id":    customer.ID,
			"email": customer.Email,
			"name":  customer.Name,
		},
	})
}

func (h *Handler) CustomerLogout(c *gin.Context) {
	h.clearCustomerCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}
