// Package auth holds the login, refresh, and logout handlers for the three
// principal classes.
package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atelier-verne/ecommerce-api/cache"
	"github.com/atelier-verne/ecommerce-api/config"
	"github.com/atelier-verne/ecommerce-api/mail"
	"github.com/atelier-verne/ecommerce-api/sessions"
	"github.com/atelier-verne/ecommerce-api/token"
)

type Handler struct {
	DB     *gorm.DB
	Store  *sessions.Store
	Tokens *token.Manager
	OTP    *cache.OTPStore
	Mailer mail.Mailer
	Cfg    *config.Config
}

func mailOTP(name, code, purpose string) string {
	return mail.OTPTemplate(name, code, purpose)
}

func (h *Handler) setRefreshCookie(c *gin.Context, value string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.Cfg.RefreshCookie, value, int(h.Cfg.RefreshTTL.Seconds()), "/", "", h.Cfg.SecureCookies, true)
}

func (h *Handler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.Cfg.RefreshCookie, "", -1, "/", "", h.Cfg.SecureCookies, true)
}

func (h *Handler) setCustomerCookie(c *gin.Context, value string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.Cfg.CustomerCookie, value, int(h.Cfg.RefreshTTL.Seconds()), "/", "", h.Cfg.SecureCookies, true)
}

func (h *Handler) clearCustomerCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.Cfg.CustomerCookie, "", -1, "/", "", h.Cfg.SecureCookies, true)
}
