package model

import (
	"database/sql"
	"encoding/json"
	"time"
)

// MediaType of an observation
const (
	MediaTypePhoto = "photo"
	MediaTypeVideo = "video"
)

// Submission is one sea-state observation. Coordinates are stored twice:
// the exact position stays private, the public pair is rounded before insert.
type Submission struct {
	ID               string          `json:"id"`
	UserID           sql.NullString  `json:"userId,omitempty"`
	DisplayName      sql.NullString  `json:"displayName,omitempty"`
	Level            int             `json:"level"` // 1 = calm, 2+ = storm
	Comment          sql.NullString  `json:"comment,omitempty"`
	Valg             sql.NullString  `json:"valg,omitempty"`
	WindDir          sql.NullString  `json:"windDir,omitempty"`
	WaveDir          sql.NullString  `json:"waveDir,omitempty"`
	Lat              sql.NullFloat64 `json:"-"`
	Lng              sql.NullFloat64 `json:"-"`
	LatPublic        sql.NullFloat64 `json:"latPublic,omitempty"`
	LngPublic        sql.NullFloat64 `json:"lngPublic,omitempty"`
	LocationMethod   sql.NullString  `json:"locationMethod,omitempty"`
	Accuracy         sql.NullFloat64 `json:"accuracy,omitempty"`
	MediaType        string          `json:"mediaType"`
	MediaPath        sql.NullString  `json:"mediaPath,omitempty"`
	MediaURL         sql.NullString  `json:"mediaUrl,omitempty"`
	MediaContentType sql.NullString  `json:"mediaContentType,omitempty"`
	MediaSizeBytes   sql.NullInt64   `json:"mediaSizeBytes,omitempty"`
	VideoDuration    sql.NullFloat64 `json:"videoDuration,omitempty"`
	VideoAnalysis    json.RawMessage `json:"videoAnalysis,omitempty"`
	IsPublic         bool            `json:"isPublic"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
	DeletedAt        sql.NullTime    `json:"deletedAt,omitempty"`
}

type CreateSubmissionRequest struct {
	DisplayName    string          `json:"displayName,omitempty"`
	Level          int             `json:"level"`
	Comment        string          `json:"comment,omitempty"`
	Valg           string          `json:"valg,omitempty"`
	WindDir        string          `json:"windDir,omitempty"`
	WaveDir        string          `json:"waveDir,omitempty"`
	Lat            float64         `json:"lat"`
	Lng            float64         `json:"lng"`
	LocationMethod string          `json:"locationMethod,omitempty"`
	Accuracy       float64         `json:"accuracy,omitempty"`
	MediaType      string          `json:"mediaType"`
	VideoDuration  float64         `json:"videoDuration,omitempty"`
	VideoAnalysis  json.RawMessage `json:"videoAnalysis,omitempty"`
}

// MapPoint is the reduced shape served to the map layer
type MapPoint struct {
	ID          string         `json:"id"`
	Level       int            `json:"level"`
	MediaType   string         `json:"mediaType"`
	LatPublic   float64        `json:"latPublic"`
	LngPublic   float64        `json:"lngPublic"`
	DisplayName sql.NullString `json:"displayName,omitempty"`
	Valg        sql.NullString `json:"valg,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// ProfileStats is the summary block on the profile page
type ProfileStats struct {
	Total     int `json:"total"`
	Photos    int `json:"photos"`
	Videos    int `json:"videos"`
	Locations int `json:"locations"`
	Badges    int `json:"badges"`
	Streak    int `json:"streak"`
}
