package seed_test

import (
	"testing"

	"github.com/mistake-tracker/backend/internal/domain/question"
	"github.com/mistake-tracker/backend/internal/seed"
)

func TestBundledBankDecodes(t *testing.T) {
	questions, err := seed.Questions()
	if err != nil {
		t.Fatalf("Questions failed: %v", err)
	}
	if len(questions) == 0 {
		t.Fatal("bundled bank is empty")
	}

	seen := make(map[string]bool)
	for _, q := range questions {
		if seen[q.ID] {
			t.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		if err := q.Validate(); err != nil {
			t.Errorf("invalid bundled question: %v", err)
		}
	}
}

// A test can be configured for any subject/difficulty pair, so the bundle
// must serve every one of them.
func TestBundledBankCoversAllConfigurations(t *testing.T) {
	questions, err := seed.Questions()
	if err != nil {
		t.Fatalf("Questions failed: %v", err)
	}

	type config struct {
		subject    question.Subject
		difficulty question.Difficulty
	}
	counts := make(map[config]int)
	for _, q := range questions {
		counts[config{q.Subject, q.Difficulty}]++
	}

	for _, s := range []question.Subject{question.SubjectMath, question.SubjectRW} {
		for _, d := range []question.Difficulty{question.DifficultyEasy, question.DifficultyMedium, question.DifficultyHard} {
			if counts[config{s, d}] == 0 {
				t.Errorf("no bundled questions for %s/%s", s, d)
			}
		}
	}
}
