package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/Haavardeide1/Kystobservatorene/internal/database"
	"github.com/Haavardeide1/Kystobservatorene/internal/utils"
)

type contributorEntry struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Rank     int    `json:"rank"`
	Count    int    `json:"count"`
}

// GetTopContributors returns the most active observers for a period.
// Defaults to the weekly top five shown on the landing page.
func GetTopContributors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	period := query.Get("period") // weekly, monthly, all-time

	if period == "" {
		period = "weekly"
	}

	limit := 5
	if raw := query.Get("limit"); raw != "" {
		if l, err := strconv.Atoi(raw); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	now := time.Now()
	var startDate time.Time

	switch period {
	case "weekly":
		startDate = now.AddDate(0, 0, -7)
	case "monthly":
		startDate = now.AddDate(0, 0, -30)
	case "all-time":
		startDate = time.Time{}
	default:
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid period")
		return
	}

	ctx := context.Background()

	rows, err := database.DB.Query(ctx, `
		WITH user_counts AS (
			SELECT
				s.user_id,
				COUNT(*) as count
			FROM submissions s
			WHERE s.user_id IS NOT NULL
			  AND s.deleted_at IS NULL
			  AND s.created_at >= $1
			GROUP BY s.user_id
		),
		ranked AS (
			SELECT
				uc.user_id,
				uc.count,
				ROW_NUMBER() OVER (ORDER BY uc.count DESC) as rank
			FROM user_counts uc
		)
		SELECT
			ranked.user_id,
			u.username,
			ranked.rank,
			ranked.count
		FROM ranked
		INNER JOIN users u ON ranked.user_id = u.id
		WHERE u.deleted_at IS NULL
		ORDER BY ranked.rank
		LIMIT $2
	`, startDate, limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query contributors", err)
		return
	}
	defer rows.Close()

	entries := []contributorEntry{}
	for rows.Next() {
		var e contributorEntry
		if err := rows.Scan(&e.UserID, &e.Username, &e.Rank, &e.Count); err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan contributor row", err)
			return
		}
		entries = append(entries, e)
	}

	utils.Success(w, map[string]interface{}{
		"period":  period,
		"entries": entries,
	})
}
