package model

import (
	"time"
)

// DateFields holds the standard audit columns shared by all entities
type DateFields struct {
	CreatedBy *string   `json:"createdBy,omitempty"`
	UpdatedBy *string   `json:"updatedBy,omitempty"`
	DeletedAt time.Time `json:"deletedAt,omitempty"`
	DeletedBy *string   `json:"deletedBy,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

type UserProfile struct {
	ID       string    `json:"id,omitempty"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	IsAdmin  bool      `json:"isAdmin"`
	JoinDate time.Time `json:"joinDate,omitempty"`
	DateFields
}

// AdminUser is the reduced shape listed in the admin console
type AdminUser struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	Username        *string    `json:"username,omitempty"`
	IsAdmin         bool       `json:"isAdmin"`
	CreatedAt       time.Time  `json:"createdAt"`
	LastSignInAt    *time.Time `json:"lastSignInAt,omitempty"`
	SubmissionCount int        `json:"submissionCount"`
}
