package api

import (
	"net/http"

	"github.com/Haavardeide1/Kystobservatorene/internal/handler"
	"github.com/Haavardeide1/Kystobservatorene/internal/logger"
	"github.com/Haavardeide1/Kystobservatorene/internal/middleware"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.OptionalAuth)
	r.Use(middleware.LoggerMiddleware)
	r.Use(middleware.MetricsMiddleware)

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/signup", handler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)

	// Submissions
	r.HandleFunc("/submissions", handler.GetSubmissions).Methods(http.MethodGet)
	r.HandleFunc("/submissions", handler.CreateSubmission).Methods(http.MethodPost)
	r.HandleFunc("/submissions/{id}", handler.GetSubmissionById).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/submissions/{id}", handler.DeleteSubmission).Methods(http.MethodDelete)
	r.HandleFunc("/submissions/{id}/media", handler.UploadMedia).Methods(http.MethodPost)

	// Map
	r.HandleFunc("/map", handler.GetMapPoints).Methods(http.MethodGet)
	r.HandleFunc("/map/points", handler.GetMapPoints).Methods(http.MethodGet)

	// Profile
	authenticatedRoutes.HandleFunc("/profile/me", handler.GetMe).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/profile/me", handler.UpdateProfile).Methods(http.MethodPut, http.MethodPatch)
	authenticatedRoutes.HandleFunc("/profile/stats", handler.GetProfileStats).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/profile/badges", handler.GetProfileBadges).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/profile/xp", handler.GetProfileXP).Methods(http.MethodGet)

	// Leaderboard
	r.HandleFunc("/leaderboard/contributors", handler.GetTopContributors).Methods(http.MethodGet)

	// Admin
	r.HandleFunc("/admin/verify", handler.AdminVerify).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/admin/submissions", handler.AdminGetSubmissions).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/admin/submissions/{id}", handler.AdminDeleteSubmission).Methods(http.MethodDelete)
	authenticatedRoutes.HandleFunc("/admin/users", handler.AdminGetUsers).Methods(http.MethodGet)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Warning("404 Not Found: %s %s", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
