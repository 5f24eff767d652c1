package session

import (
	"time"

	"github.com/mistake-tracker/backend/internal/domain/answer"
	"github.com/mistake-tracker/backend/internal/domain/question"
)

// Stats is the derived summary of one completed test session. Subject and
// difficulty come from an arbitrary constituent answer; every answer in a
// session shares the same configuration.
type Stats struct {
	ID         int64
	CreatedAt  time.Time
	Subject    question.Subject
	Difficulty question.Difficulty
	Correct    int
	Total      int
}

// Percent is the session's score, shared-rounding with every other view.
func (s Stats) Percent() int {
	return answer.Percentage(s.Correct, s.Total)
}

// AllTime aggregates every recorded session for the stats overview.
type AllTime struct {
	TestsTaken     int
	TotalCorrect   int
	TotalQuestions int
	AveragePercent int
}

// Aggregate folds session summaries into all-time totals. The average is
// computed over questions, not over sessions, so longer tests weigh more.
func Aggregate(stats []Stats) AllTime {
	var agg AllTime
	agg.TestsTaken = len(stats)
	for _, s := range stats {
		agg.TotalCorrect += s.Correct
		agg.TotalQuestions += s.Total
	}
	agg.AveragePercent = answer.Percentage(agg.TotalCorrect, agg.TotalQuestions)
	return agg
}
