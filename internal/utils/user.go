package utils

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Haavardeide1/Kystobservatorene/internal/database"
	model "github.com/Haavardeide1/Kystobservatorene/internal/models"
)

// FindUserByEmail looks a user up by email, excluding soft-deleted rows
func FindUserByEmail(ctx context.Context, email string) (*model.UserProfile, error) {
	var user model.UserProfile
	var username sql.NullString

	err := database.DB.QueryRow(ctx,
		`SELECT id, username, email, is_admin, join_date, created_at, updated_at
		 FROM users WHERE email=$1 AND deleted_at IS NULL`,
		email,
	).Scan(&user.ID, &username, &user.Email, &user.IsAdmin,
		&user.JoinDate, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return nil, err
	}

	user.Username = NullStringToString(username)
	return &user, nil
}

// FindUserByEmailWithPassword also returns the stored bcrypt hash
func FindUserByEmailWithPassword(ctx context.Context, email string) (*model.UserProfile, string, error) {
	var user model.UserProfile
	var username sql.NullString
	var passwordHash string

	err := database.DB.QueryRow(ctx,
		`SELECT id, username, email, is_admin, join_date, created_at, updated_at, password_hash
		 FROM users WHERE email=$1 AND deleted_at IS NULL`,
		email,
	).Scan(&user.ID, &username, &user.Email, &user.IsAdmin,
		&user.JoinDate, &user.CreatedAt, &user.UpdatedAt, &passwordHash)

	if err != nil {
		return nil, "", err
	}

	user.Username = NullStringToString(username)
	return &user, passwordHash, nil
}

// CreateUser inserts a new user row
func CreateUser(ctx context.Context, username, email, passwordHash string) (*model.UserProfile, error) {
	var user model.UserProfile
	err := database.DB.QueryRow(ctx,
		`INSERT INTO users(username, email, password_hash, is_admin, join_date, created_at, updated_at)
		 VALUES($1, $2, $3, false, NOW(), NOW(), NOW())
		 RETURNING id, username, email, is_admin, join_date, created_at, updated_at`,
		username, email, passwordHash,
	).Scan(&user.ID, &user.Username, &user.Email, &user.IsAdmin,
		&user.JoinDate, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return nil, err
	}

	_, _ = database.DB.Exec(ctx, `UPDATE users SET created_by=$1 WHERE id=$1`, user.ID)

	return &user, nil
}

// UpdateUsername sets the public display username for a user
func UpdateUsername(ctx context.Context, userID, username string) error {
	res, err := database.DB.Exec(ctx,
		`UPDATE users SET username=$2, updated_at=NOW(), updated_by=$1
		 WHERE id=$1 AND deleted_at IS NULL`,
		userID, username,
	)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}
