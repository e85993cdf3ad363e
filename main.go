package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/atelier-verne/ecommerce-api/auth"
	"github.com/atelier-verne/ecommerce-api/cache"
	"github.com/atelier-verne/ecommerce-api/config"
	"github.com/atelier-verne/ecommerce-api/mail"
	"github.com/atelier-verne/ecommerce-api/models"
	"github.com/atelier-verne/ecommerce-api/payment"
	"github.com/atelier-verne/ecommerce-api/routes"
	"github.com/atelier-verne/ecommerce-api/sessions"
	"github.com/atelier-verne/ecommerce-api/token"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.Env == "production" {
		log.SetFormatter(&log.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	}

	db := initDatabase(cfg)

	if err := db.AutoMigrate(
		&models.Product{},
		&models.Variant{},
		&models.Order{},
		&models.OrderItem{},
		&models.Admin{},
		&models.SuperAdmin{},
		&models.Customer{},
		&models.Session{},
		&models.Activity{},
		&models.Cart{},
		&models.CartItem{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	tokens := token.NewManager(cfg.AccessSecret, cfg.RefreshSecret, cfg.AccessTTL, cfg.RefreshTTL)
	store := &sessions.Store{
		DB:     db,
		Tokens: tokens,
		Policy: sessions.Policy{PinIP: cfg.PinSessionIP},
	}
	mailer := &mail.SMTPMailer{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: cfg.SMTPFrom,
	}
	gateway := payment.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret)

	authHandler := &auth.Handler{
		DB:     db,
		Store:  store,
		Tokens: tokens,
		OTP:    cache.NewOTPStore(rdb, "otp"),
		Mailer: mailer,
		Cfg:    cfg,
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, routes.Deps{
		DB:      db,
		Cfg:     cfg,
		Tokens:  tokens,
		Auth:    authHandler,
		Gateway: gateway,
	})

	log.Infof("server listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection.
func initDatabase(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	return db
}
