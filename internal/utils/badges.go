package utils

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Haavardeide1/Kystobservatorene/internal/database"
	"github.com/Haavardeide1/Kystobservatorene/internal/progress"
)

// LoadStoredBadges returns any persisted user_badges rows keyed by badge
// key. The table is optional: an empty map just means the evaluator
// recomputes everything from the submission history.
func LoadStoredBadges(ctx context.Context, userID string) (map[string]progress.StoredProgress, error) {
	rows, err := database.DB.Query(ctx,
		`SELECT badge_key, progress, earned_at
		 FROM user_badges
		 WHERE user_id=$1`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("could not load stored badges: %w", err)
	}
	defer rows.Close()

	stored := map[string]progress.StoredProgress{}
	for rows.Next() {
		var key string
		var prog int
		var earnedAt sql.NullTime
		if err := rows.Scan(&key, &prog, &earnedAt); err != nil {
			return nil, fmt.Errorf("could not scan user_badges row: %w", err)
		}
		stored[key] = progress.StoredProgress{
			Progress: prog,
			EarnedAt: NullTimeToPointer(earnedAt),
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("user_badges iteration failed: %w", err)
	}

	return stored, nil
}
