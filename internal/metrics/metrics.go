package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "kyst_http_requests_total", Help: "Total HTTP requests by method and status"},
		[]string{"method", "status"},
	)
	SubmissionsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "kyst_submissions_created_total", Help: "Total observation submissions accepted"},
	)
	MediaUploads = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "kyst_media_uploads_total", Help: "Total media files uploaded to storage"},
	)
	BadgeEvaluations = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "kyst_badge_evaluations_total", Help: "Total badge catalog evaluations"},
	)
)

func Register() {
	prometheus.MustRegister(HTTPRequests, SubmissionsCreated, MediaUploads, BadgeEvaluations)
}
