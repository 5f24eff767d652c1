package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/mistake-tracker/backend/internal/domain/answer"
	"github.com/mistake-tracker/backend/internal/domain/question"
)

type TrackerResponse struct {
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Answers  []AnswerResponse `json:"answers"`
}

// GET /tracker?subjects=math,rw&difficulties=easy&statuses=guessed,mistake&page=1
//
// Serves the mistake-tracker screen: all answers, filtered by subject,
// difficulty and derived status, windowed load-more style (page n returns
// pages 1..n of 20). An omitted filter matches everything; a parameter
// present but empty matches nothing, like a screen with every chip off.
func (h *Handler) tracker(w http.ResponseWriter, r *http.Request) {
	filter := answer.AllFilter()
	query := r.URL.Query()

	if query.Has("subjects") {
		filter.Subjects = nil
		for _, v := range splitParam(query.Get("subjects")) {
			s := question.Subject(v)
			if !s.Valid() {
				respondError(w, http.StatusBadRequest, "invalid subject filter")
				return
			}
			filter.Subjects = append(filter.Subjects, s)
		}
	}

	if query.Has("difficulties") {
		filter.Difficulties = nil
		for _, v := range splitParam(query.Get("difficulties")) {
			d := question.Difficulty(v)
			if !d.Valid() {
				respondError(w, http.StatusBadRequest, "invalid difficulty filter")
				return
			}
			filter.Difficulties = append(filter.Difficulties, d)
		}
	}

	if query.Has("statuses") {
		filter.Statuses = nil
		for _, v := range splitParam(query.Get("statuses")) {
			st := answer.Status(v)
			if !st.Valid() {
				respondError(w, http.StatusBadRequest, "invalid status filter")
				return
			}
			filter.Statuses = append(filter.Statuses, st)
		}
	}

	page := 1
	if raw := query.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "invalid page")
			return
		}
		page = n
	}

	answers, err := h.store.FetchAllAnswers()
	if err != nil {
		h.logger.Error("fetch answers", "error", err)
		answers = nil
	}

	matched := filter.Apply(answers)
	windowed := answer.Page(matched, page)

	respondJSON(w, http.StatusOK, TrackerResponse{
		Total:    len(matched),
		Page:     page,
		PageSize: answer.PageSize,
		Answers:  answerResponses(windowed),
	})
}

// POST /tracker/reset
//
// The settings screen's hard reset: drops and recreates the answers and
// sessions tables. The question bank and notes are untouched.
func (h *Handler) resetTracker(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ResetTracker(); err != nil {
		// A failed reset can leave the tables half-dropped; the next
		// store open repairs them. Log and report, don't crash.
		h.logger.Error("reset tracker", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to reset tracker")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func splitParam(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}
	return values
}
