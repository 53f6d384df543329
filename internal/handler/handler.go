package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Haavardeide1/Kystobservatorene/internal/config"
	"github.com/Haavardeide1/Kystobservatorene/internal/database"
	"github.com/Haavardeide1/Kystobservatorene/internal/services"
	"github.com/Haavardeide1/Kystobservatorene/internal/utils"
)

var (
	cfg   *config.Config
	media *services.CloudinaryService
)

// Init wires the shared configuration and media service into the handlers.
// Must be called once at startup before the router is mounted.
func Init(c *config.Config, m *services.CloudinaryService) {
	cfg = c
	media = m
}

// HealthCheck reports service and database status
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	dbStatus := "ok"
	code := http.StatusOK

	if err := database.DB.Ping(ctx); err != nil {
		status = "degraded"
		dbStatus = "unreachable"
		code = http.StatusServiceUnavailable
	}

	utils.JSON(w, code, map[string]interface{}{
		"status":   status,
		"database": dbStatus,
		"time":     time.Now().UTC(),
	})
}
