package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORSMiddleware wraps the router with the configured allowed origins
func CORSMiddleware(next http.Handler, allowedOrigins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	return c.Handler(next)
}
