package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ohitslormee/baby-ess-tracker/config"
	"github.com/ohitslormee/baby-ess-tracker/internal/children"
	"github.com/ohitslormee/baby-ess-tracker/internal/database"
	"github.com/ohitslormee/baby-ess-tracker/internal/inventory"
	"github.com/ohitslormee/baby-ess-tracker/internal/lookup"
	"github.com/ohitslormee/baby-ess-tracker/internal/server/handlers"
	"github.com/ohitslormee/baby-ess-tracker/internal/server/middleware"
	"github.com/ohitslormee/baby-ess-tracker/internal/storage"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.NewConnection(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get sql.DB: %v", err)
	}
	defer sqlDB.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	redisClient := config.NewRedisClient(cfg.Redis)
	if redisClient != nil {
		defer redisClient.Close()
	}

	store := storage.NewGormAdapter(db)
	inventoryService := inventory.NewService(store)
	childrenService := children.NewService(store)
	lookupClient := lookup.NewClient(cfg.Lookup.BaseURL)

	inventoryHandler := handlers.NewInventoryHTTPHandler(inventoryService)
	childHandler := handlers.NewChildHTTPHandler(childrenService)
	lookupHandler := handlers.NewLookupHTTPHandler(lookupClient)

	r := gin.Default()

	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.RateLimit(redisClient, cfg.RateLimit))

	api := r.Group("/api/v1")
	{
		api.POST("/products/lookup/:barcode", lookupHandler.LookupProduct)

		inventoryGroup := api.Group("/inventory")
		{
			inventoryGroup.POST("", inventoryHandler.CreateItem)
			inventoryGroup.GET("", inventoryHandler.ListItems)
			inventoryGroup.GET("/low-stock", inventoryHandler.ListLowStock)
			inventoryGroup.GET("/barcode/:barcode", inventoryHandler.GetItemByBarcode)
			inventoryGroup.GET("/:id", inventoryHandler.GetItem)
			inventoryGroup.PUT("/:id", inventoryHandler.UpdateItem)
			inventoryGroup.POST("/:id/add-stock", inventoryHandler.AddStock)
			inventoryGroup.POST("/:id/use", inventoryHandler.UseItem)
		}

		api.GET("/usage-logs", inventoryHandler.ListUsageLogs)
		api.GET("/dashboard/stats", inventoryHandler.DashboardStats)

		childrenGroup := api.Group("/children")
		{
			childrenGroup.POST("", childHandler.CreateChild)
			childrenGroup.GET("", childHandler.ListChildren)
			childrenGroup.GET("/:id", childHandler.GetChild)
			childrenGroup.PUT("/:id", childHandler.UpdateChild)
			childrenGroup.DELETE("/:id", childHandler.DeleteChild)
		}
	}

	r.GET("/health", healthCheckHandler(sqlDB))

	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func healthCheckHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		httpStatus := http.StatusOK

		if err := db.Ping(); err != nil {
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
		}

		c.JSON(httpStatus, gin.H{
			"status":    status,
			"timestamp": time.Now(),
		})
	}
}
