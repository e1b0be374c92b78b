package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/freelinkd/kuesioner-api/internal/service"
	"github.com/freelinkd/kuesioner-api/internal/transport/rest/handler"
	"github.com/freelinkd/kuesioner-api/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService      *service.AuthService
	KuesionerService *service.KuesionerService
	ExportService    *service.ExportService
	WSHub            *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	kuesionerHandler := handler.NewKuesionerHandler(c.KuesionerService, c.ExportService)
	authHandler := handler.NewAuthHandler(c.AuthService)
	wizardHandler := handler.NewWizardHandler()
	wsHandler := ws.NewHandler(c.WSHub)

	r.Use(corsMiddleware)

	// Public questionnaire
	r.HandleFunc("/submit-questionnaire", kuesionerHandler.Submit).Methods("POST", "OPTIONS")
	r.HandleFunc("/wizard/next", wizardHandler.Next).Methods("POST", "OPTIONS")
	r.HandleFunc("/wizard/back", wizardHandler.Back).Methods("POST", "OPTIONS")
	r.HandleFunc("/questions/{section}", wizardHandler.Questions).Methods("GET", "OPTIONS")

	// Admin dashboard
	r.HandleFunc("/admin/forms", kuesionerHandler.ListForms).Methods("GET", "OPTIONS")
	r.HandleFunc("/admin/download-csv", kuesionerHandler.DownloadCSV).Methods("GET", "OPTIONS")
	r.HandleFunc("/ws/admin/feed", wsHandler.AdminFeed).Methods("GET")

	// Admin auth
	r.HandleFunc("/auth/admin/login", authHandler.Login).Methods("POST", "OPTIONS")
	r.HandleFunc("/auth/admin/register", authHandler.Register).Methods("POST", "OPTIONS")
	r.HandleFunc("/auth/admin/me", authHandler.Me).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
