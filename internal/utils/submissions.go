package utils

import (
	"context"
	"fmt"

	"github.com/Haavardeide1/Kystobservatorene/internal/database"
	model "github.com/Haavardeide1/Kystobservatorene/internal/models"
	"github.com/Haavardeide1/Kystobservatorene/internal/scanner"
)

// ListSubmissionsForUser returns a user's non-deleted submissions ordered
// by created_at ascending. This is the boundary the progress engine reads
// from; soft-deleted rows never reach it.
func ListSubmissionsForUser(ctx context.Context, userID string) ([]model.Submission, error) {
	rows, err := database.DB.Query(ctx,
		`SELECT `+scanner.SubmissionColumns+`
		 FROM submissions
		 WHERE user_id=$1 AND deleted_at IS NULL
		 ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("could not list submissions for user: %w", err)
	}
	defer rows.Close()

	var subs []model.Submission
	for rows.Next() {
		s, err := scanner.ScanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan submission row: %w", err)
		}
		subs = append(subs, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("submission iteration failed: %w", err)
	}

	return subs, nil
}
