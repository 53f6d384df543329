package main

import (
	"net/http"
	"os"

	"github.com/Haavardeide1/Kystobservatorene/internal/api"
	"github.com/Haavardeide1/Kystobservatorene/internal/config"
	"github.com/Haavardeide1/Kystobservatorene/internal/database"
	"github.com/Haavardeide1/Kystobservatorene/internal/handler"
	"github.com/Haavardeide1/Kystobservatorene/internal/logger"
	"github.com/Haavardeide1/Kystobservatorene/internal/metrics"
	"github.com/Haavardeide1/Kystobservatorene/internal/middleware"
	"github.com/Haavardeide1/Kystobservatorene/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// Register Prometheus collectors
	metrics.Register()

	// Media storage
	cloudinaryService, err := services.NewCloudinaryService(cfg)
	if err != nil {
		logger.Error("Cloudinary initialization failed: %v", err)
		os.Exit(1)
	}

	handler.Init(cfg, cloudinaryService)

	// Initialize routes
	router := api.SetupRouter()

	// Wrap router with CORS middleware
	srv := middleware.CORSMiddleware(router, cfg.AllowedOrigins)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, srv); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
