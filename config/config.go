// Package config collects every environment read into one struct so the
// rest of the code never touches os.Getenv directly.
package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Env  string // "development" or "production"
	Port string

	DatabaseURL string

	RedisAddr     string
	RedisPassword string

	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration

	// Session pinning rejects a refresh whose caller IP differs from the
	// IP recorded at login. Defaults on in production, off elsewhere;
	// SESSION_PIN_IP overrides either way.
	PinSessionIP bool

	CustomerCookie string
	AccessCookie   string
	RefreshCookie  string
	SecureCookies  bool

	StripeSecretKey     string
	StripeWebhookSecret string
	FrontendBaseURL     string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:  getenv("APP_ENV", "development"),
		Port: getenv("PORT", "8080"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		AccessSecret:  os.Getenv("JWT_SECRET"),
		RefreshSecret: os.Getenv("REFRESH_TOKEN_SECRET"),
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,

		CustomerCookie: getenv("CUSTOMER_COOKIE", "auth_token"),
		AccessCookie:   getenv("ACCESS_COOKIE", "access_token"),
		RefreshCookie:  getenv("REFRESH_COOKIE", "refresh_token"),

		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		FrontendBaseURL:     getenv("FRONTEND_BASE_URL", "http://localhost:3000"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: getenv("SMTP_PORT", "587"),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		SMTPFrom: os.Getenv("SMTP_FROM"),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getenv("DB_HOST", "localhost"),
			getenv("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			getenv("DB_NAME", "ecommerce"),
			getenv("DB_PORT", "5432"),
		)
	}

	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET and REFRESH_TOKEN_SECRET are required")
	}

	cfg.SecureCookies = cfg.Env == "production"
	cfg.PinSessionIP = cfg.Env == "production"
	switch os.Getenv("SESSION_PIN_IP") {
	case "true", "1":
		cfg.PinSessionIP = true
	case "false", "0":
		cfg.PinSessionIP = false
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
