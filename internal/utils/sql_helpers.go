package utils

import (
	"database/sql"
	"time"
)

// NullStringToString converts sql.NullString to string
func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// NullStringToPointer converts sql.NullString to *string
func NullStringToPointer(ns sql.NullString) *string {
	if ns.Valid {
		return &ns.String
	}
	return nil
}

// NullInt64ToPointer converts sql.NullInt64 to *int
func NullInt64ToPointer(ni sql.NullInt64) *int {
	if ni.Valid {
		val := int(ni.Int64)
		return &val
	}
	return nil
}

// NullFloat64ToPointer converts sql.NullFloat64 to *float64
func NullFloat64ToPointer(nf sql.NullFloat64) *float64 {
	if nf.Valid {
		return &nf.Float64
	}
	return nil
}

// NullTimeToTime converts sql.NullTime to time.Time
func NullTimeToTime(nt sql.NullTime) time.Time {
	if nt.Valid {
		return nt.Time
	}
	return time.Time{}
}

// NullTimeToPointer converts sql.NullTime to *time.Time
func NullTimeToPointer(nt sql.NullTime) *time.Time {
	if nt.Valid {
		return &nt.Time
	}
	return nil
}

// NullableString wraps a string for insertion, empty meaning NULL
func NullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// NullableFloat wraps a float for insertion, zero meaning NULL
func NullableFloat(f float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: f, Valid: f != 0}
}
