package api

import "net/http"

type NotesResponse struct {
	Text string `json:"text"`
}

type SaveNotesRequest struct {
	Text string `json:"text"`
}

// GET /notes
func (h *Handler) getNotes(w http.ResponseWriter, r *http.Request) {
	text, err := h.store.Notes()
	if err != nil {
		h.logger.Error("load notes", "error", err)
		text = ""
	}
	respondJSON(w, http.StatusOK, NotesResponse{Text: text})
}

// PUT /notes
//
// The notes screen autosaves on every edit, so this overwrite is the hot
// path; there is no partial update.
func (h *Handler) saveNotes(w http.ResponseWriter, r *http.Request) {
	var req SaveNotesRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.store.SaveNotes(req.Text); err != nil {
		h.logger.Error("save notes", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save notes")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
