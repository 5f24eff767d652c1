package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/mistake-tracker/backend/internal/domain/answer"
	"github.com/mistake-tracker/backend/internal/domain/question"
	"github.com/mistake-tracker/backend/internal/domain/session"
)

// ── Request / Response types ────────────────────────────────────────────────

type SubmitAnswer struct {
	QuestionID        string  `json:"question_id"`
	QuestionText      string  `json:"question_text"`
	Subject           string  `json:"subject"`
	Difficulty        string  `json:"difficulty"`
	IsCorrect         bool    `json:"is_correct"`
	SelectedChoice    *string `json:"selected_choice"`
	Rationale         string  `json:"rationale"`
	ReasonForMistake  *string `json:"reason_for_mistake,omitempty"`
	HowToAvoidMistake *string `json:"how_to_avoid_mistake,omitempty"`
	ReasonForGuess    *string `json:"reason_for_guess,omitempty"`
	HowToAvoidGuess   *string `json:"how_to_avoid_guess,omitempty"`
}

type SubmitSessionRequest struct {
	Answers []SubmitAnswer `json:"answers"`
}

type SubmitSessionResponse struct {
	SessionID int64 `json:"session_id"`
	Correct   int   `json:"correct"`
	Total     int   `json:"total"`
	Percent   int   `json:"percent"`
}

type SessionStatsResponse struct {
	ID         int64     `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Subject    string    `json:"subject"`
	Difficulty string    `json:"difficulty"`
	Correct    int       `json:"correct"`
	Total      int       `json:"total"`
	Percent    int       `json:"percent"`
}

type AllTimeResponse struct {
	TestsTaken     int `json:"tests_taken"`
	TotalCorrect   int `json:"total_correct"`
	TotalQuestions int `json:"total_questions"`
	AveragePercent int `json:"average_percent"`
}

type ListSessionsResponse struct {
	Sessions []SessionStatsResponse `json:"sessions"`
	AllTime  AllTimeResponse        `json:"all_time"`
}

type AnswerResponse struct {
	QuestionID        string    `json:"question_id"`
	QuestionText      string    `json:"question_text"`
	Subject           string    `json:"subject"`
	Difficulty        string    `json:"difficulty"`
	IsCorrect         bool      `json:"is_correct"`
	SelectedChoice    *string   `json:"selected_choice"`
	Rationale         string    `json:"rationale"`
	ReasonForMistake  *string   `json:"reason_for_mistake,omitempty"`
	HowToAvoidMistake *string   `json:"how_to_avoid_mistake,omitempty"`
	ReasonForGuess    *string   `json:"reason_for_guess,omitempty"`
	HowToAvoidGuess   *string   `json:"how_to_avoid_guess,omitempty"`
	Status            string    `json:"status"`
	UpdatedAt         time.Time `json:"updated_at"`
	SessionID         int64     `json:"session_id"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /sessions
//
// Submits one completed test batch: creates the session and records every
// answer. Failures are surfaced, not swallowed; silently losing a finished
// test is unacceptable, and the client may retry the whole batch.
func (h *Handler) submitSession(w http.ResponseWriter, r *http.Request) {
	var req SubmitSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if len(req.Answers) == 0 {
		respondError(w, http.StatusBadRequest, "answers are required")
		return
	}

	answers := make([]answer.Answer, len(req.Answers))
	for i, in := range req.Answers {
		answers[i] = answer.Answer{
			QuestionID:        in.QuestionID,
			QuestionText:      in.QuestionText,
			Subject:           question.Subject(in.Subject),
			Difficulty:        question.Difficulty(in.Difficulty),
			IsCorrect:         in.IsCorrect,
			SelectedChoice:    in.SelectedChoice,
			Rationale:         in.Rationale,
			ReasonForMistake:  in.ReasonForMistake,
			HowToAvoidMistake: in.HowToAvoidMistake,
			ReasonForGuess:    in.ReasonForGuess,
			HowToAvoidGuess:   in.HowToAvoidGuess,
		}
	}

	sessionID, err := h.store.SubmitBatch(answers)
	if err != nil {
		if errors.Is(err, answer.ErrInvalidReflection) ||
			errors.Is(err, question.ErrInvalidSubject) ||
			errors.Is(err, question.ErrInvalidDifficulty) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("submit session", "error", err, "answers", len(answers))
		respondError(w, http.StatusInternalServerError, "failed to save session")
		return
	}

	correct := 0
	for i := range answers {
		if answers[i].IsCorrect {
			correct++
		}
	}

	respondJSON(w, http.StatusCreated, SubmitSessionResponse{
		SessionID: sessionID,
		Correct:   correct,
		Total:     len(answers),
		Percent:   answer.Percentage(correct, len(answers)),
	})
}

// GET /sessions
//
// Serves the stats screen: one summary row per session, newest first,
// plus all-time totals. A read failure degrades to the empty state.
func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.ListSessionStats()
	if err != nil {
		h.logger.Error("list session stats", "error", err)
		stats = nil
	}

	sessions := make([]SessionStatsResponse, len(stats))
	for i, st := range stats {
		sessions[i] = SessionStatsResponse{
			ID:         st.ID,
			CreatedAt:  st.CreatedAt,
			Subject:    string(st.Subject),
			Difficulty: string(st.Difficulty),
			Correct:    st.Correct,
			Total:      st.Total,
			Percent:    st.Percent(),
		}
	}

	agg := session.Aggregate(stats)
	respondJSON(w, http.StatusOK, ListSessionsResponse{
		Sessions: sessions,
		AllTime: AllTimeResponse{
			TestsTaken:     agg.TestsTaken,
			TotalCorrect:   agg.TotalCorrect,
			TotalQuestions: agg.TotalQuestions,
			AveragePercent: agg.AveragePercent,
		},
	})
}

// GET /sessions/{sessionID}/answers
//
// Serves the session drill-in screen.
func (h *Handler) sessionAnswers(w http.ResponseWriter, r *http.Request) {
	sessionID, err := strconv.ParseInt(r.PathValue("sessionID"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	answers, err := h.store.FetchSessionAnswers(sessionID)
	if h.handleStoreError(w, err, "session") {
		return
	}

	respondJSON(w, http.StatusOK, answerResponses(answers))
}

func answerResponses(answers []answer.Answer) []AnswerResponse {
	response := make([]AnswerResponse, len(answers))
	for i := range answers {
		a := &answers[i]
		response[i] = AnswerResponse{
			QuestionID:        a.QuestionID,
			QuestionText:      a.QuestionText,
			Subject:           string(a.Subject),
			Difficulty:        string(a.Difficulty),
			IsCorrect:         a.IsCorrect,
			SelectedChoice:    a.SelectedChoice,
			Rationale:         a.Rationale,
			ReasonForMistake:  a.ReasonForMistake,
			HowToAvoidMistake: a.HowToAvoidMistake,
			ReasonForGuess:    a.ReasonForGuess,
			HowToAvoidGuess:   a.HowToAvoidGuess,
			Status:            string(a.Classify()),
			UpdatedAt:         a.UpdatedAt,
			SessionID:         a.SessionID,
		}
	}
	return response
}
