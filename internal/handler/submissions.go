package handler

import (
	"context"
	"math"
	"net/http"

	"github.com/Haavardeide1/Kystobservatorene/internal/database"
	"github.com/Haavardeide1/Kystobservatorene/internal/metrics"
	"github.com/Haavardeide1/Kystobservatorene/internal/middleware"
	model "github.com/Haavardeide1/Kystobservatorene/internal/models"
	"github.com/Haavardeide1/Kystobservatorene/internal/scanner"
	"github.com/Haavardeide1/Kystobservatorene/internal/utils"
	"github.com/gorilla/mux"
)

// publicCoordDecimals controls how much exact positions are blurred
// before they become publicly visible (4 decimals ≈ 11 m grid).
const publicCoordDecimals = 4

func roundCoord(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}

// CreateSubmission accepts a new observation. Anonymous submissions are
// allowed but stay private; only logged-in users' observations are public.
func CreateSubmission(w http.ResponseWriter, r *http.Request) {
	var req model.CreateSubmissionRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Level != 1 && req.Level != 2 {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid level")
		return
	}
	if math.IsNaN(req.Lat) || math.IsNaN(req.Lng) || math.Abs(req.Lat) > 90 || math.Abs(req.Lng) > 180 {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid location")
		return
	}
	if req.MediaType != model.MediaTypePhoto && req.MediaType != model.MediaTypeVideo {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid media type")
		return
	}

	// Optional auth: a missing user just means an anonymous observation
	var userID interface{}
	isPublic := false
	if id, err := middleware.GetUserIDFromContext(r); err == nil {
		userID = id
		isPublic = true
	}

	ctx := context.Background()

	var submissionID string
	err := database.DB.QueryRow(ctx, `
		INSERT INTO submissions(
			user_id, display_name, level, comment, valg, wind_dir, wave_dir,
			lat, lng, lat_public, lng_public, location_method, accuracy,
			media_type, video_duration, video_analysis, is_public,
			created_at, updated_at
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,NOW(),NOW())
		RETURNING id
	`,
		userID,
		utils.NullableString(req.DisplayName),
		req.Level,
		utils.NullableString(req.Comment),
		utils.NullableString(req.Valg),
		utils.NullableString(req.WindDir),
		utils.NullableString(req.WaveDir),
		req.Lat,
		req.Lng,
		roundCoord(req.Lat, publicCoordDecimals),
		roundCoord(req.Lng, publicCoordDecimals),
		utils.NullableString(req.LocationMethod),
		utils.NullableFloat(req.Accuracy),
		req.MediaType,
		utils.NullableFloat(req.VideoDuration),
		req.VideoAnalysis,
		isPublic,
	).Scan(&submissionID)

	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create submission", err)
		return
	}

	metrics.SubmissionsCreated.Inc()

	utils.Success(w, map[string]interface{}{
		"id": submissionID,
	})
}

// GetSubmissions returns all public, non-deleted observations, newest first
func GetSubmissions(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	rows, err := database.DB.Query(ctx,
		`SELECT `+scanner.SubmissionColumns+`
		 FROM submissions
		 WHERE is_public = true AND deleted_at IS NULL
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query submissions", err)
		return
	}
	defer rows.Close()

	submissions := []model.Submission{}
	for rows.Next() {
		s, err := scanner.ScanSubmission(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan submission row", err)
			return
		}
		submissions = append(submissions, *s)
	}

	utils.Success(w, submissions)
}

// GetSubmissionById returns one public observation
func GetSubmissionById(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	ctx := context.Background()

	row := database.DB.QueryRow(ctx,
		`SELECT `+scanner.SubmissionColumns+`
		 FROM submissions
		 WHERE id=$1 AND is_public = true AND deleted_at IS NULL`,
		id,
	)

	s, err := scanner.ScanSubmission(row)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "submission not found")
		return
	}

	utils.Success(w, s)
}

// DeleteSubmission soft-deletes an observation. Only the owner or an
// admin may remove it; the row stays for audit but leaves every query.
func DeleteSubmission(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx := context.Background()

	var ownerID *string
	err = database.DB.QueryRow(ctx,
		`SELECT user_id FROM submissions WHERE id=$1 AND deleted_at IS NULL`,
		id,
	).Scan(&ownerID)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "submission not found")
		return
	}

	if !user.IsAdmin && (ownerID == nil || *ownerID != user.ID) {
		utils.ErrorSimple(w, http.StatusForbidden, "not allowed to delete this submission")
		return
	}

	_, err = database.DB.Exec(ctx,
		`UPDATE submissions SET deleted_at=NOW(), deleted_by=$2 WHERE id=$1 AND deleted_at IS NULL`,
		id, user.ID,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not delete submission", err)
		return
	}

	utils.Message(w, "submission deleted")
}
