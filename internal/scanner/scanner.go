package scanner

import (
	model "github.com/Haavardeide1/Kystobservatorene/internal/models"
)

// rowScanner is satisfied by both pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// SubmissionColumns is the canonical select list matching ScanSubmission
const SubmissionColumns = `
	id, user_id, display_name, level, comment, valg, wind_dir, wave_dir,
	lat_public, lng_public, location_method, accuracy,
	media_type, media_path, media_url, media_content_type, media_size_bytes,
	video_duration, video_analysis, is_public, created_at, updated_at`

// ScanSubmission scans one submissions row in SubmissionColumns order
func ScanSubmission(row rowScanner) (*model.Submission, error) {
	var s model.Submission
	err := row.Scan(
		&s.ID, &s.UserID, &s.DisplayName, &s.Level, &s.Comment, &s.Valg, &s.WindDir, &s.WaveDir,
		&s.LatPublic, &s.LngPublic, &s.LocationMethod, &s.Accuracy,
		&s.MediaType, &s.MediaPath, &s.MediaURL, &s.MediaContentType, &s.MediaSizeBytes,
		&s.VideoDuration, &s.VideoAnalysis, &s.IsPublic, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ScanMapPoint scans the reduced map projection:
// id, level, media_type, lat_public, lng_public, display_name, valg, created_at
func ScanMapPoint(row rowScanner) (*model.MapPoint, error) {
	var p model.MapPoint
	err := row.Scan(
		&p.ID, &p.Level, &p.MediaType, &p.LatPublic, &p.LngPublic,
		&p.DisplayName, &p.Valg, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
