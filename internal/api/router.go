package api

import "net/http"

// RegisterRoutes wires every endpoint onto the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Test taking
	mux.HandleFunc("GET /tests/questions", h.selectQuestions)

	// Sessions
	mux.HandleFunc("POST /sessions", h.submitSession)
	mux.HandleFunc("GET /sessions", h.listSessions)
	mux.HandleFunc("GET /sessions/{sessionID}/answers", h.sessionAnswers)

	// Mistake tracker
	mux.HandleFunc("GET /tracker", h.tracker)
	mux.HandleFunc("POST /tracker/reset", h.resetTracker)

	// Notes
	mux.HandleFunc("GET /notes", h.getNotes)
	mux.HandleFunc("PUT /notes", h.saveNotes)
}
