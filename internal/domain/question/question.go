package question

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Subject partitions the question bank.
type Subject string

const (
	SubjectMath Subject = "math"
	SubjectRW   Subject = "rw"
)

// Difficulty levels within a subject.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var (
	ErrInvalidSubject    = errors.New("invalid subject")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)

func (s Subject) Valid() bool {
	return s == SubjectMath || s == SubjectRW
}

func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// Question is one immutable row of the bundled question bank.
type Question struct {
	ID            string
	Subject       Subject
	Difficulty    Difficulty
	Text          string
	Choices       map[string]string
	CorrectChoice string
	Rationale     string
}

// Validate checks the fields required for a question to be servable.
func (q *Question) Validate() error {
	if q.ID == "" {
		return errors.New("question id is required")
	}
	if !q.Subject.Valid() {
		return fmt.Errorf("question %s: %w: %q", q.ID, ErrInvalidSubject, q.Subject)
	}
	if !q.Difficulty.Valid() {
		return fmt.Errorf("question %s: %w: %q", q.ID, ErrInvalidDifficulty, q.Difficulty)
	}
	if q.Text == "" {
		return fmt.Errorf("question %s: text is required", q.ID)
	}
	if len(q.Choices) == 0 {
		return fmt.Errorf("question %s: at least one choice is required", q.ID)
	}
	if _, ok := q.Choices[q.CorrectChoice]; !ok {
		return fmt.Errorf("question %s: correct choice %q is not among the choices", q.ID, q.CorrectChoice)
	}
	return nil
}

// MarshalChoices encodes a choice map for storage.
func MarshalChoices(choices map[string]string) (string, error) {
	b, err := json.Marshal(choices)
	if err != nil {
		return "", fmt.Errorf("marshal choices: %w", err)
	}
	return string(b), nil
}

// ParseChoices decodes a stored choices blob back into a key-to-text map.
func ParseChoices(raw string) (map[string]string, error) {
	var choices map[string]string
	if err := json.Unmarshal([]byte(raw), &choices); err != nil {
		return nil, fmt.Errorf("parse choices: %w", err)
	}
	if len(choices) == 0 {
		return nil, errors.New("parse choices: no choices present")
	}
	return choices, nil
}
