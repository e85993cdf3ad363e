package adminController

import (
	"crypto/rand"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/atelier-verne/ecommerce-api/mail"
	"github.com/atelier-verne/ecommerce-api/middleware"
	"github.com/atelier-verne/ecommerce-api/models"
	"github.com/atelier-verne/ecommerce-api/permissions"
)

type createStaffRequest struct {
	FirstName   string   `json:"firstName" binding:"required"`
	LastName    string   `json:"lastName" binding:"required"`
	Email       string   `json:"email" binding:"required"`
	Role        string   `json:"role"`
	Group       string   `json:"group"`
	Permissions []string `json:"permissions"`
	Status      string   `json:"status"`
}

var validGroups = map[models.AdminGroup]bool{
	models.GroupNone:             true,
	models.GroupSalesManager:     true,
	models.GroupInventoryManager: true,
	models.GroupHRManager:        true,
	models.GroupFinanceManager:   true,
}

// CreateStaff lets a superadmin provision an admin account with a temporary
// password, emailed to the new admin.
func CreateStaff(db *gorm.DB, mailer mail.Mailer, frontendURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createStaffRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		var count int64
		db.Model(&models.Admin{}).Where("email = ?", req.Email).Count(&count)
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Admin already exists"})
			return
		}

		group := models.AdminGroup(req.Group)
		if req.Group == "" {
			group = models.GroupNone
		}
		if !validGroups[group] {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown group"})
			return
		}

		perms := make([]permissions.Permission, 0, len(req.Permissions))
		for _, p := range req.Permissions {
			perms = append(perms, permissions.Permission(p))
		}
		extra, ok := permissions.JoinExtra(perms)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown permission"})
			return
		}

		tempPassword, err := temporaryPassword()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		role := req.Role
		if role == "" {
			role = "admin"
		}
		admin := models.Admin{
			Name:             req.FirstName + " " + req.LastName,
			Email:            req.Email,
			Password:         string(hashed),
			Role:             role,
			Group:            group,
			ExtraPermissions: extra,
			IsActive:         req.Status == "Active",
		}
		if err := db.Create(&admin).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create admin"})
			return
		}

		loginURL := frontendURL + "/admin/login"
		body := mail.WelcomeTemplate(req.FirstName, req.Email, tempPassword, loginURL)
		if err := mailer.Send(req.Email, "Your Admin Account", body); err != nil {
			log.WithError(err).Warn("failed to send welcome email")
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":      "Admin created successfully",
			"admin":        admin,
			"tempPassword": tempPassword,
		})
	}
}

type updateStaffRequest struct {
	Role        *string   `json:"role"`
	Group       *string   `json:"group"`
	Permissions *[]string `json:"permissions"`
	IsActive    *bool     `json:"is_active"`
}

// UpdateStaff changes role, group, grants, or active state of an admin.
func UpdateStaff(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admin models.Admin
		if err := db.First(&admin, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Admin not found"})
			return
		}

		var req updateStaffRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		if req.Role != nil {
			admin.Role = *req.Role
		}
		if req.Group != nil {
			group := models.AdminGroup(*req.Group)
			if !validGroups[group] {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown group"})
				return
			}
			admin.Group = group
		}
		if req.Permissions != nil {
			perms := make([]permissions.Permission, 0, len(*req.Permissions))
			for _, p := range *req.Permissions {
				perms = append(perms, permissions.Permission(p))
			}
			extra, ok := permissions.JoinExtra(perms)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown permission"})
				return
			}
			admin.ExtraPermissions = extra
		}
		if req.IsActive != nil {
			admin.IsActive = *req.IsActive
		}

		if err := db.Save(&admin).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update admin"})
			return
		}
		c.JSON(http.StatusOK, admin)
	}
}

func GetAllAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admins []models.Admin
		if err := db.Order("created_at DESC").Find(&admins).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch admins"})
			return
		}
		c.JSON(http.StatusOK, admins)
	}
}

// GetActivity returns the caller's current session and audit trail.
func GetActivity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := middleware.CurrentPrincipal(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		principalType := models.PrincipalAdmin
		if p.Role == "superadmin" {
			principalType = models.PrincipalSuperAdmin
		}

		var session models.Session
		current := db.Where("principal_type = ? AND principal_id = ?", principalType, p.ID).
			First(&session).Error == nil

		var activities []models.Activity
		if err := db.Where("principal_type = ? AND principal_id = ?", principalType, p.ID).
			Order("created_at DESC").Limit(100).Find(&activities).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		resp := gin.H{"success": true, "activityLogs": activities}
		if current {
			resp["currentSession"] = session
		}
		c.JSON(http.StatusOK, resp)
	}
}

// 32 characters, so a random byte maps onto the alphabet without bias.
const passwordAlphabet = "abcdefghijkmnpqrstuvwxyz23456789"

func temporaryPassword() (string, error) {
	buf := make([]byte, 10)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = passwordAlphabet[int(buf[i])%len(passwordAlphabet)]
	}
	return string(buf), nil
}
