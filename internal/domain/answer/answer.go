package answer

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mistake-tracker/backend/internal/domain/question"
)

// Skipped is the sentinel a user leaves in a reflection field when they
// decline to fill it in. It still counts as a populated field.
const Skipped = "Skipped"

// Status is the derived classification of an answer. It is computed from
// raw columns and never stored.
type Status string

const (
	StatusSolved  Status = "solved"  // correct, no guess reflection
	StatusGuessed Status = "guessed" // correct, but self-reported as a guess
	StatusMistake Status = "mistake" // incorrect or unanswered
)

func (s Status) Valid() bool {
	return s == StatusSolved || s == StatusGuessed || s == StatusMistake
}

var ErrInvalidReflection = errors.New("invalid reflection fields")

// Answer is the latest recorded attempt at one question. At most one
// answer exists per question; a newer attempt replaces the older row
// entirely.
type Answer struct {
	QuestionID        string
	QuestionText      string
	Subject           question.Subject
	Difficulty        question.Difficulty
	IsCorrect         bool
	SelectedChoice    *string // nil when the question was left unanswered
	Rationale         string
	ReasonForMistake  *string
	HowToAvoidMistake *string
	ReasonForGuess    *string
	HowToAvoidGuess   *string
	UpdatedAt         time.Time
	SessionID         int64
}

func present(s *string) bool {
	return s != nil && *s != ""
}

// Classify derives the answer's status. Every consumer that needs a
// solved/guessed/mistake split goes through this one function so the
// predicates cannot drift between views.
//
// The three statuses are mutually exclusive and exhaustive: an incorrect
// answer is a mistake, a correct answer with guess reflection was guessed,
// and any other correct answer was solved confidently.
func (a *Answer) Classify() Status {
	if !a.IsCorrect {
		return StatusMistake
	}
	if present(a.ReasonForGuess) && present(a.HowToAvoidGuess) {
		return StatusGuessed
	}
	return StatusSolved
}

// Validate enforces the reflection invariant at the store boundary: the
// guess pair may only accompany a correct answer, the mistake pair only an
// incorrect one, and each pair is populated both-or-neither.
func (a *Answer) Validate() error {
	if a.QuestionID == "" {
		return errors.New("answer question id is required")
	}
	if !a.Subject.Valid() {
		return fmt.Errorf("answer %s: %w: %q", a.QuestionID, question.ErrInvalidSubject, a.Subject)
	}
	if !a.Difficulty.Valid() {
		return fmt.Errorf("answer %s: %w: %q", a.QuestionID, question.ErrInvalidDifficulty, a.Difficulty)
	}

	guess := present(a.ReasonForGuess) || present(a.HowToAvoidGuess)
	guessPair := present(a.ReasonForGuess) && present(a.HowToAvoidGuess)
	mistake := present(a.ReasonForMistake) || present(a.HowToAvoidMistake)
	mistakePair := present(a.ReasonForMistake) && present(a.HowToAvoidMistake)

	switch {
	case guess && !guessPair:
		return fmt.Errorf("answer %s: %w: guess pair must be populated together", a.QuestionID, ErrInvalidReflection)
	case mistake && !mistakePair:
		return fmt.Errorf("answer %s: %w: mistake pair must be populated together", a.QuestionID, ErrInvalidReflection)
	case guess && mistake:
		return fmt.Errorf("answer %s: %w: guess and mistake pairs are exclusive", a.QuestionID, ErrInvalidReflection)
	case guess && !a.IsCorrect:
		return fmt.Errorf("answer %s: %w: guess pair requires a correct answer", a.QuestionID, ErrInvalidReflection)
	case mistake && a.IsCorrect:
		return fmt.Errorf("answer %s: %w: mistake pair requires an incorrect answer", a.QuestionID, ErrInvalidReflection)
	}
	return nil
}

// Percentage computes a display score, rounding half up. A total of zero
// yields zero rather than dividing.
func Percentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}
