package handler

import (
	"net/http"

	"github.com/Haavardeide1/Kystobservatorene/internal/utils"
)

// RootHandler lists every available API route
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "Kystobservatørene API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"auth": []map[string]string{
				{"method": "POST", "path": "/auth/signup", "description": "Create an account"},
				{"method": "POST", "path": "/auth/login", "description": "Log in and receive a session token"},
				{"method": "POST", "path": "/auth/logout", "description": "Invalidate the current session"},
			},
			"submissions": []map[string]string{
				{"method": "GET", "path": "/submissions", "description": "List public observations, newest first"},
				{"method": "POST", "path": "/submissions", "description": "Create an observation (anonymous allowed)"},
				{"method": "GET", "path": "/submissions/{id}", "description": "Fetch one public observation"},
				{"method": "DELETE", "path": "/submissions/{id}", "description": "Remove an observation (owner or admin)"},
				{"method": "POST", "path": "/submissions/{id}/media", "description": "Attach photo or video"},
			},
			"map": []map[string]string{
				{"method": "GET", "path": "/map/points", "description": "Map projection with rounded coordinates (params: limit)"},
			},
			"profile": []map[string]string{
				{"method": "GET", "path": "/profile/me", "description": "Current user profile"},
				{"method": "PUT", "path": "/profile/me", "description": "Update username"},
				{"method": "GET", "path": "/profile/stats", "description": "Submission counters and streak"},
				{"method": "GET", "path": "/profile/badges", "description": "Badge collection with live progress"},
				{"method": "GET", "path": "/profile/xp", "description": "XP totals and level bar"},
			},
			"leaderboard": []map[string]string{
				{"method": "GET", "path": "/leaderboard/contributors", "description": "Top contributors (params: period, limit)"},
			},
			"admin": []map[string]string{
				{"method": "POST", "path": "/admin/verify", "description": "Verify the dashboard password"},
				{"method": "GET", "path": "/admin/submissions", "description": "All submissions incl. private (params: limit, offset)"},
				{"method": "DELETE", "path": "/admin/submissions/{id}", "description": "Remove any submission"},
				{"method": "GET", "path": "/admin/users", "description": "Registered users with submission counts"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Service and database status"},
			},
			"metrics": []map[string]string{
				{"method": "GET", "path": "/metrics", "description": "Prometheus metrics"},
			},
		},
	}

	utils.Success(w, routes)
}
