package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"energy-advisor/internal/api/handlers"
	"energy-advisor/internal/api/middleware"
	"energy-advisor/internal/config"
	"energy-advisor/internal/data"
	"energy-advisor/internal/logging"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	logger := logging.New(os.Getenv("API_DEBUG") == "true")

	cfg := config.Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", path, err)
		}
		cfg = loaded
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler())

	// Analysis runs stay addressable for follow-up metric/chart requests.
	results := data.NewResultCache(data.DefaultResultTTL)

	// Initialize handlers
	analysisHandler := handlers.NewAnalysisHandler(cfg, results, logger)
	billHandler := handlers.NewBillHandler(logger)
	recommendationsHandler := handlers.NewRecommendationsHandler(cfg)
	chartsHandler := handlers.NewChartsHandler(cfg)
	tariffHandler := handlers.NewTariffHandler(logger)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/analysis", analysisHandler.RunAnalysis)
		api.POST("/analysis/upload", analysisHandler.UploadAnalysis)
		api.GET("/analysis/:id/metrics", analysisHandler.GetMetrics)

		api.POST("/bill/extract", billHandler.Extract)

		api.POST("/recommendations", recommendationsHandler.Recommend)
		api.GET("/tips", recommendationsHandler.ListTips)

		api.POST("/charts", chartsHandler.Render)

		api.GET("/tariffs", tariffHandler.ListTariffs)
	}

	// Serve static files from web/dist (if it exists)
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}

	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing)
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Printf("Serving static files from %s", staticDir)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
