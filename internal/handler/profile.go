package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Haavardeide1/Kystobservatorene/internal/metrics"
	"github.com/Haavardeide1/Kystobservatorene/internal/middleware"
	model "github.com/Haavardeide1/Kystobservatorene/internal/models"
	"github.com/Haavardeide1/Kystobservatorene/internal/progress"
	"github.com/Haavardeide1/Kystobservatorene/internal/utils"
)

// loadProgress fetches the user's submissions and stored badge rows and
// runs a full evaluation. Store failures propagate: the caller must never
// serve a zeroed progress page because the database was down.
func loadProgress(ctx context.Context, userID string, now time.Time) ([]model.Submission, []progress.BadgeProgress, error) {
	subs, err := utils.ListSubmissionsForUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	stored, err := utils.LoadStoredBadges(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	badges := progress.EvaluateWithStored(progress.Catalog(), subs, stored, now)
	metrics.BadgeEvaluations.Inc()
	return subs, badges, nil
}

// GetProfileStats returns the summary counters on the profile page
func GetProfileStats(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx := context.Background()
	now := time.Now()

	subs, badges, err := loadProgress(ctx, userID, now)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load progress", err)
		return
	}

	m := progress.Aggregate(subs, now)

	stats := model.ProfileStats{
		Total:     m.Total,
		Locations: m.UniquePoints,
		Streak:    m.Streak,
	}
	for _, s := range subs {
		switch s.MediaType {
		case model.MediaTypePhoto:
			stats.Photos++
		case model.MediaTypeVideo:
			stats.Videos++
		}
	}
	for _, b := range badges {
		if b.Status == progress.StatusEarned {
			stats.Badges++
		}
	}

	utils.Success(w, stats)
}

// GetProfileBadges returns the full badge list with live progress
func GetProfileBadges(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx := context.Background()

	_, badges, err := loadProgress(ctx, userID, time.Now())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load progress", err)
		return
	}

	utils.Success(w, badges)
}

// GetProfileXP returns the XP summary and level bar for the profile header
func GetProfileXP(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx := context.Background()
	now := time.Now()

	subs, badges, err := loadProgress(ctx, userID, now)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load progress", err)
		return
	}

	m := progress.Aggregate(subs, now)
	utils.Success(w, progress.ComputeXP(m.Total, badges))
}

type updateUsernameRequest struct {
	Username string `json:"username"`
}

// UpdateProfile lets the user change their display name
func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req updateUsernameRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if len(req.Username) < 2 || len(req.Username) > 50 {
		utils.ErrorSimple(w, http.StatusBadRequest, "username must be between 2 and 50 characters")
		return
	}

	if err := utils.UpdateUsername(context.Background(), user.ID, req.Username); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update username", err)
		return
	}

	user.Username = req.Username
	utils.Success(w, user)
}

// GetMe returns the authenticated user's profile
func GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
		return
	}
	utils.Success(w, user)
}
