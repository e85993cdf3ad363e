package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/atelier-verne/ecommerce-api/cache"
	"github.com/atelier-verne/ecommerce-api/models"
)

const (
	registerOTPTTL = 10 * time.Minute
	loginOTPTTL    = 5 * time.Minute
)

type superAdminRegisterRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

type otpRequest struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

// SuperAdminRegister starts registration by caching a one-time code against
// the email. Nothing is persisted until the code is verified.
func (h *Handler) SuperAdminRegister(c *gin.Context) {
	var req superAdminRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name & email required"})
		return
	}

	var count int64
	h.DB.Model(&models.SuperAdmin{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "SuperAdmin already exists"})
		return
	}

	code, err := cache.GenerateCode()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	err = h.OTP.Put(c.Request.Context(), req.Email, cache.PendingVerification{
		Name: req.Name,
		Code: code,
	}, registerOTPTTL)
	if err != nil {
		log.WithError(err).Error("failed to store registration OTP")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	if err := h.Mailer.Send(req.Email, "SuperAdmin Registration OTP",
		mailOTP(req.Name, code, "complete your registration")); err != nil {
		log.WithError(err).Error("failed to send registration OTP")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send OTP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent", "email": req.Email})
}

// SuperAdminVerifyOTP completes registration and logs the new superadmin in.
func (h *Handler) SuperAdminVerifyOTP(c *gin.Context) {
	var req otpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email & OTP required"})
		return
	}

	pending, err := h.OTP.Verify(c.Request.Context(), req.Email, req.OTP)
	if errors.Is(err, cache.ErrOTPInvalid) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired OTP"})
		return
	}
	if err != nil {
		log.WithError(err).Error("OTP verification failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	super := models.SuperAdmin{Name: pending.Name, Email: req.Email, IsVerified: true, IsActive: true}
	if err := h.DB.Create(&super).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	pair, err := h.Store.Establish(models.PrincipalSuperAdmin, super.ID, "superadmin", c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	h.setRefreshCookie(c, pair.Refresh)
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Registration complete",
		"accessToken": pair.Access,
	})
}

// SuperAdminLogin sends a login code to a verified superadmin.
func (h *Handler) SuperAdminLogin(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email required"})
		return
	}

	var super models.SuperAdmin
	err := h.DB.Where("email = ? AND is_verified = ? AND is_active = ?", req.Email, true, true).
		First(&super).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Account not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	code, err := cache.GenerateCode()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if err := h.OTP.Put(c.Request.Context(), req.Email, cache.PendingVerification{Code: code}, loginOTPTTL); err != nil {
		log.WithError(err).Error("failed to store login OTP")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	if err := h.Mailer.Send(req.Email, "SuperAdmin Login OTP",
		mailOTP(super.Name, code, "log in")); err != nil {
		log.WithError(err).Error("failed to send login OTP")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send OTP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent", "email": req.Email})
}

// SuperAdminLoginVerify trades a valid login code for a session and token
// pair, overwriting any previous session.
func (h *Handler) SuperAdminLoginVerify(c *gin.Context) {
	var req otpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email & OTP required"})
		return
	}

	if _, err := h.OTP.Verify(c.Request.Context(), req.Email, req.OTP); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid OTP"})
		return
	}

	var super models.SuperAdmin
	if err := h.DB.Where("email = ?", req.Email).First(&super).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid OTP"})
		return
	}

	pair, err := h.Store.Establish(models.PrincipalSuperAdmin, super.ID, "superadmin", c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	h.setRefreshCookie(c, pair.Refresh)
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Login successful",
		"accessToken": pair.Access,
		"superAdmin": gin.H{
			"id":    super.ID,
			"name":  super.Name,
			"email": super.Email,
		},
	})
}
