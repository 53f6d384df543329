package handler

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strconv"

	"github.com/Haavardeide1/Kystobservatorene/internal/database"
	"github.com/Haavardeide1/Kystobservatorene/internal/middleware"
	model "github.com/Haavardeide1/Kystobservatorene/internal/models"
	"github.com/Haavardeide1/Kystobservatorene/internal/scanner"
	"github.com/Haavardeide1/Kystobservatorene/internal/utils"
	"github.com/gorilla/mux"
)

type adminVerifyRequest struct {
	Password string `json:"password"`
}

// AdminVerify checks the shared admin password used by the dashboard
func AdminVerify(w http.ResponseWriter, r *http.Request) {
	var req adminVerifyRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if cfg.AdminPassword == "" {
		utils.ErrorSimple(w, http.StatusServiceUnavailable, "admin access is not configured")
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(cfg.AdminPassword)) != 1 {
		utils.ErrorSimple(w, http.StatusUnauthorized, "invalid password")
		return
	}

	utils.Message(w, "verified")
}

// AdminGetSubmissions lists every submission, private and anonymous
// ones included (admin only)
func AdminGetSubmissions(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsAdmin(r) {
		utils.ErrorSimple(w, http.StatusForbidden, "admin privileges required")
		return
	}

	ctx := context.Background()

	query := r.URL.Query()

	limit := 50
	offset := 0
	if raw := query.Get("limit"); raw != "" {
		if l, err := strconv.Atoi(raw); err == nil && l > 0 && l <= 500 {
			limit = l
		}
	}
	if raw := query.Get("offset"); raw != "" {
		if o, err := strconv.Atoi(raw); err == nil && o >= 0 {
			offset = o
		}
	}

	rows, err := database.DB.Query(ctx,
		`SELECT `+scanner.SubmissionColumns+`
		 FROM submissions
		 WHERE deleted_at IS NULL
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
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

	var total int
	if err := database.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM submissions WHERE deleted_at IS NULL`,
	).Scan(&total); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not count submissions", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"submissions": submissions,
		"total":       total,
		"limit":       limit,
		"offset":      offset,
	})
}

// AdminDeleteSubmission soft-deletes any submission, ownership ignored
// (admin only)
func AdminDeleteSubmission(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsAdmin(r) {
		utils.ErrorSimple(w, http.StatusForbidden, "admin privileges required")
		return
	}

	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id := mux.Vars(r)["id"]
	ctx := context.Background()

	res, err := database.DB.Exec(ctx,
		`UPDATE submissions SET deleted_at=NOW(), deleted_by=$2 WHERE id=$1 AND deleted_at IS NULL`,
		id, user.ID,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not delete submission", err)
		return
	}
	if res.RowsAffected() == 0 {
		utils.ErrorSimple(w, http.StatusNotFound, "submission not found")
		return
	}

	utils.Message(w, "submission deleted")
}

// AdminGetUsers lists registered users with their submission counts (admin only)
func AdminGetUsers(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsAdmin(r) {
		utils.ErrorSimple(w, http.StatusForbidden, "admin privileges required")
		return
	}

	ctx := context.Background()

	rows, err := database.DB.Query(ctx, `
		SELECT
			u.id,
			u.username,
			u.email,
			u.is_admin,
			u.created_at,
			(SELECT MAX(se.created_at) FROM sessions se WHERE se.user_id = u.id) as last_sign_in_at,
			COUNT(s.id) as submission_count
		FROM users u
		LEFT JOIN submissions s ON s.user_id = u.id AND s.deleted_at IS NULL
		WHERE u.deleted_at IS NULL
		GROUP BY u.id, u.username, u.email, u.is_admin, u.created_at
		ORDER BY u.created_at DESC
	`)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query users", err)
		return
	}
	defer rows.Close()

	users := []model.AdminUser{}
	for rows.Next() {
		var u model.AdminUser
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.IsAdmin, &u.CreatedAt, &u.LastSignInAt, &u.SubmissionCount); err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan user row", err)
			return
		}
		users = append(users, u)
	}

	utils.Success(w, users)
}
