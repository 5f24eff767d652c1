package api

import (
	"net/http"
	"strconv"

	"github.com/mistake-tracker/backend/internal/domain/question"
)

const defaultQuestionCount = 5

type QuestionResponse struct {
	ID            string            `json:"id"`
	Subject       string            `json:"subject"`
	Difficulty    string            `json:"difficulty"`
	QuestionText  string            `json:"question_text"`
	Choices       map[string]string `json:"choices"`
	CorrectChoice string            `json:"correct_choice"`
	Rationale     string            `json:"rationale"`
}

// GET /tests/questions?subject=math&difficulty=easy&count=10
//
// Serves the test-setup screen: up to count random questions of the
// requested configuration that still need practice. A short or empty list
// is a valid response; the client shows a no-questions state.
func (h *Handler) selectQuestions(w http.ResponseWriter, r *http.Request) {
	subject := question.Subject(r.URL.Query().Get("subject"))
	if !subject.Valid() {
		respondError(w, http.StatusBadRequest, "invalid subject")
		return
	}

	difficulty := question.Difficulty(r.URL.Query().Get("difficulty"))
	if !difficulty.Valid() {
		respondError(w, http.StatusBadRequest, "invalid difficulty")
		return
	}

	count := defaultQuestionCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "invalid count")
			return
		}
		count = n
	}

	questions, err := h.store.SelectEligible(subject, difficulty, count)
	if err != nil {
		// Reads degrade to an empty set; nothing was lost, and the
		// client already treats "no questions" as a valid state.
		h.logger.Error("select eligible questions", "error", err, "subject", subject, "difficulty", difficulty)
		questions = nil
	}

	response := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		response[i] = QuestionResponse{
			ID:            q.ID,
			Subject:       string(q.Subject),
			Difficulty:    string(q.Difficulty),
			QuestionText:  q.Text,
			Choices:       q.Choices,
			CorrectChoice: q.CorrectChoice,
			Rationale:     q.Rationale,
		}
	}

	respondJSON(w, http.StatusOK, response)
}
