package main

import (
	"net/http"
	"os"

	"cafe-pos-api/config"
	"cafe-pos-api/handlers"
	"cafe-pos-api/middleware"
	"cafe-pos-api/pkg/logger"
	"cafe-pos-api/routes"
	"cafe-pos-api/scheduler"
	"cafe-pos-api/services"
	"cafe-pos-api/timeslot"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	log := logger.Must(logger.New())
	defer log.Sync()

	cfg := config.Load()
	middleware.SetJWTSecret(cfg.JWTSecret)

	// Initialize database
	config.InitDB(cfg)

	slots := timeslot.TableByName(cfg.TimeSlotScheme)
	saleSvc := services.NewSaleService(config.DB, cfg.PaymentMethods, slots, cfg.BlockInactiveSales, log)
	reportSvc := services.NewReportService(config.DB, cfg.PaymentMethods, log)
	priceSvc := services.NewPricingService(config.DB, log)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Cafe POS & Analytics API",
			"version": "1.0.0",
		})
	})

	// Uploaded menu images
	r.Static("/"+cfg.UploadDir, cfg.UploadDir)

	// Register all routes
	routes.SetupRoutes(r,
		handlers.NewSaleHandler(saleSvc),
		handlers.NewReportHandler(reportSvc),
		handlers.NewPriceHandler(priceSvc),
	)

	// Optional end-of-day summary job
	sched := scheduler.New(reportSvc, cfg.EODSchedule, log)
	sched.Start()
	defer sched.Stop()

	// Start server
	log.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}
