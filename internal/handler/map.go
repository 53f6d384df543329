package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Haavardeide1/Kystobservatorene/internal/database"
	model "github.com/Haavardeide1/Kystobservatorene/internal/models"
	"github.com/Haavardeide1/Kystobservatorene/internal/scanner"
	"github.com/Haavardeide1/Kystobservatorene/internal/utils"
)

const defaultMapLimit = 500

// GetMapPoints returns the reduced projection the map layer renders:
// rounded coordinates only, newest first, optional ?limit=
func GetMapPoints(w http.ResponseWriter, r *http.Request) {
	limit := defaultMapLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 5000 {
			utils.ErrorSimple(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	ctx := context.Background()

	rows, err := database.DB.Query(ctx, `
		SELECT id, level, media_type, lat_public, lng_public, display_name, valg, created_at
		FROM submissions
		WHERE is_public = true AND deleted_at IS NULL
		  AND lat_public IS NOT NULL AND lng_public IS NOT NULL
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query map points", err)
		return
	}
	defer rows.Close()

	points := []model.MapPoint{}
	for rows.Next() {
		p, err := scanner.ScanMapPoint(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan map point", err)
			return
		}
		points = append(points, *p)
	}

	utils.Success(w, points)
}
