package http

import (
	"encoding/json"
	"log"
	"net/http"

	"space-trivia-service/internal/app"
	"space-trivia-service/internal/infra/opentdb"
)

// APIHandler serves the plain HTTP reads: high scores and the category and
// difficulty catalogs the home screen renders.
type APIHandler struct {
	service *app.QuizService
}

func NewAPIHandler(service *app.QuizService) *APIHandler {
	return &APIHandler{service: service}
}

func (h *APIHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Leaderboard(r.Context())
	if err != nil {
		http.Error(w, "leaderboard unavailable", http.StatusInternalServerError)
		return
	}
	writeJSON(w, entries)
}

func (h *APIHandler) Categories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, opentdb.Categories())
}

func (h *APIHandler) Difficulties(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, opentdb.Difficulties())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write json response: %v", err)
	}
}
