// Package seed carries the bundled question bank. The dataset ships inside
// the binary and is inserted once, on first run, by the store.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/mistake-tracker/backend/internal/domain/question"
)

//go:embed sat_question_bank.json
var bankJSON []byte

type bankEntry struct {
	ID            string            `json:"id"`
	Subject       string            `json:"subject"`
	Difficulty    string            `json:"difficulty"`
	QuestionText  string            `json:"question_text"`
	Choices       map[string]string `json:"choices"`
	CorrectChoice string            `json:"correct_choice"`
	Rationale     string            `json:"rationale"`
}

// Questions decodes and validates the bundled bank.
func Questions() ([]question.Question, error) {
	var entries []bankEntry
	if err := json.Unmarshal(bankJSON, &entries); err != nil {
		return nil, fmt.Errorf("decode bundled question bank: %w", err)
	}

	questions := make([]question.Question, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		q := question.Question{
			ID:            e.ID,
			Subject:       question.Subject(e.Subject),
			Difficulty:    question.Difficulty(e.Difficulty),
			Text:          e.QuestionText,
			Choices:       e.Choices,
			CorrectChoice: e.CorrectChoice,
			Rationale:     e.Rationale,
		}
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("bundled question bank: %w", err)
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("bundled question bank: duplicate id %q", q.ID)
		}
		seen[q.ID] = true
		questions = append(questions, q)
	}
	return questions, nil
}
