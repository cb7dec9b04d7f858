package routes

import (
	"cafe-pos-api/handlers"
	"cafe-pos-api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the API surface. Daily stats and sale recording are open
// to any authenticated operator; everything that mutates the catalog or
// reads the broader-scope dashboards sits behind the admin gate.
func SetupRoutes(r *gin.Engine, sales *handlers.SaleHandler, reports *handlers.ReportHandler, prices *handlers.PriceHandler) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/login", handlers.Login)
	}

	// ── Authenticated operator routes ──────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.GET("/menu-items", handlers.ListMenuItems)
		auth.GET("/menu-items/:itemId", handlers.GetMenuItem)
		auth.POST("/record-sale", sales.RecordSale)
		auth.GET("/daily-dashboard", reports.DailyDashboard)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		// Broader-scope dashboards
		admin.GET("/monthly-dashboard", reports.MonthlyDashboard)
		admin.GET("/yearly-dashboard", reports.YearlyDashboard)
		admin.GET("/time-intelligence", reports.TimeIntelligence)
		admin.GET("/staff-performance", reports.StaffPerformance)

		// Catalog management
		admin.POST("/menu-items", handlers.CreateMenuItem)
		admin.PUT("/menu-items/:itemId", handlers.UpdateMenuItem)
		admin.PUT("/update-price/:itemId", prices.RevisePrice)
		admin.POST("/upload-image/:itemId", handlers.UploadImage)

		// Operator management
		admin.POST("/users", handlers.CreateUser)
		admin.GET("/users", handlers.ListUsers)
		admin.PUT("/users/:username/deactivate", handlers.DeactivateUser)
	}
}
