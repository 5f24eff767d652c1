package answer

import "github.com/mistake-tracker/backend/internal/domain/question"

// PageSize is the fixed window used by the tracker's load-more paging.
const PageSize = 20

// Filter narrows tracker rows by subject, difficulty and derived status.
// An empty slice in any dimension matches nothing, mirroring a user who
// has toggled every filter chip off.
type Filter struct {
	Subjects     []question.Subject
	Difficulties []question.Difficulty
	Statuses     []Status
}

// AllFilter matches every answer.
func AllFilter() Filter {
	return Filter{
		Subjects:     []question.Subject{question.SubjectMath, question.SubjectRW},
		Difficulties: []question.Difficulty{question.DifficultyEasy, question.DifficultyMedium, question.DifficultyHard},
		Statuses:     []Status{StatusSolved, StatusGuessed, StatusMistake},
	}
}

func (f Filter) Match(a *Answer) bool {
	if !containsSubject(f.Subjects, a.Subject) {
		return false
	}
	if !containsDifficulty(f.Difficulties, a.Difficulty) {
		return false
	}
	return containsStatus(f.Statuses, a.Classify())
}

// Apply returns the answers matching the filter, preserving order.
func (f Filter) Apply(answers []Answer) []Answer {
	matched := make([]Answer, 0, len(answers))
	for i := range answers {
		if f.Match(&answers[i]) {
			matched = append(matched, answers[i])
		}
	}
	return matched
}

// Page returns the first page*PageSize rows. The tracker grows its window
// one page at a time rather than slicing discrete pages, so page n always
// includes pages 1..n.
func Page(answers []Answer, page int) []Answer {
	if page < 1 {
		page = 1
	}
	end := page * PageSize
	if end > len(answers) {
		end = len(answers)
	}
	return answers[:end]
}

func containsSubject(set []question.Subject, s question.Subject) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func containsDifficulty(set []question.Difficulty, d question.Difficulty) bool {
	for _, v := range set {
		if v == d {
			return true
		}
	}
	return false
}

func containsStatus(set []Status, s Status) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
