package answer_test

import (
	"fmt"
	"testing"

	"github.com/mistake-tracker/backend/internal/domain/answer"
	"github.com/mistake-tracker/backend/internal/domain/question"
)

func trackerRows() []answer.Answer {
	solved := baseAnswer()

	guessed := baseAnswer()
	guessed.QuestionID = "math-easy-002"
	guessed.ReasonForGuess = strPtr("eliminated two")
	guessed.HowToAvoidGuess = strPtr("review formulas")

	mistake := baseAnswer()
	mistake.QuestionID = "rw-hard-001"
	mistake.Subject = question.SubjectRW
	mistake.Difficulty = question.DifficultyHard
	mistake.IsCorrect = false

	return []answer.Answer{solved, guessed, mistake}
}

func TestFilterByStatus(t *testing.T) {
	f := answer.AllFilter()
	f.Statuses = []answer.Status{answer.StatusGuessed, answer.StatusMistake}

	matched := f.Apply(trackerRows())
	if len(matched) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(matched))
	}
	for _, a := range matched {
		if a.Classify() == answer.StatusSolved {
			t.Errorf("solved row %s passed a guessed/mistake filter", a.QuestionID)
		}
	}
}

func TestFilterBySubjectAndDifficulty(t *testing.T) {
	f := answer.AllFilter()
	f.Subjects = []question.Subject{question.SubjectRW}

	matched := f.Apply(trackerRows())
	if len(matched) != 1 || matched[0].QuestionID != "rw-hard-001" {
		t.Fatalf("expected only the rw row, got %+v", matched)
	}

	f = answer.AllFilter()
	f.Difficulties = []question.Difficulty{question.DifficultyMedium}
	if matched := f.Apply(trackerRows()); len(matched) != 0 {
		t.Fatalf("expected no medium rows, got %d", len(matched))
	}
}

func TestEmptyFilterDimensionMatchesNothing(t *testing.T) {
	f := answer.AllFilter()
	f.Statuses = nil

	if matched := f.Apply(trackerRows()); len(matched) != 0 {
		t.Fatalf("expected no matches with all status chips off, got %d", len(matched))
	}
}

func TestPageWindowing(t *testing.T) {
	rows := make([]answer.Answer, 0, 45)
	for i := 0; i < 45; i++ {
		a := baseAnswer()
		a.QuestionID = fmt.Sprintf("math-easy-%03d", i)
		rows = append(rows, a)
	}

	if got := answer.Page(rows, 1); len(got) != answer.PageSize {
		t.Errorf("page 1: expected %d rows, got %d", answer.PageSize, len(got))
	}
	// Page n includes pages 1..n: the tracker's load-more grows the window.
	if got := answer.Page(rows, 2); len(got) != 2*answer.PageSize {
		t.Errorf("page 2: expected %d rows, got %d", 2*answer.PageSize, len(got))
	}
	if got := answer.Page(rows, 3); len(got) != 45 {
		t.Errorf("page 3: expected all 45 rows, got %d", len(got))
	}
	if got := answer.Page(rows, 0); len(got) != answer.PageSize {
		t.Errorf("page 0 clamps to 1: expected %d rows, got %d", answer.PageSize, len(got))
	}
}
