package main

import (
	"fmt"
	"log"
	"os"

	"powerrocks/internal/analysis"
	"powerrocks/internal/api/handlers"
	"powerrocks/internal/api/middleware"
	"powerrocks/internal/config"
	"powerrocks/internal/data"
	"powerrocks/internal/dialog"
	"powerrocks/internal/tariff"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfgPath := os.Getenv("CONFIG_FILE")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// One provider client for the whole process so connections are
	// reused across invocations.
	provider := data.NewProviderClient(
		cfg.Provider.BaseURL,
		cfg.Provider.SubscriptionID,
		cfg.Provider.UserID,
		cfg.Provider.SdpID,
		cfg.Provider.Username,
		cfg.Provider.Password,
		cfg.Provider.Timeout(),
	)

	schedule := tariff.Default()
	analyzer := analysis.NewAnalyzer(provider, schedule)
	controller := dialog.NewController(provider, analyzer, schedule)

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())

	skillHandler := handlers.NewSkillHandler(controller)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/skill", skillHandler.Handle)
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
