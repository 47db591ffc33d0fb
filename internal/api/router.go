package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"jamesfarrell.me/youtube-summarizer/internal/api/handlers"
	"jamesfarrell.me/youtube-summarizer/internal/api/middleware"
)

func NewRouter(summaryHandler *handlers.SummaryHandler, serviceKey string) http.Handler {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	// Protected routes
	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(serviceKey))
	protected.HandleFunc("/summaries", summaryHandler.CreateSummary).Methods(http.MethodPost)

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
