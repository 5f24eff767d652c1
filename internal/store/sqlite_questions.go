package store

import (
	"fmt"

	"github.com/mistake-tracker/backend/internal/domain/question"
)

// SeedQuestions inserts the bundled bank if the questions table is empty.
// The whole seed runs in one transaction with INSERT OR IGNORE per row, so
// an interrupted seed can be retried on the next launch without leaving a
// partial bank or duplicating rows.
func (s *SQLiteStore) SeedQuestions(questions []question.Question) error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM questions`).Scan(&count); err != nil {
		return fmt.Errorf("count questions: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, q := range questions {
		choices, err := question.MarshalChoices(q.Choices)
		if err != nil {
			return fmt.Errorf("seed question %s: %w", q.ID, err)
		}
		_, err = tx.Exec(
			`INSERT OR IGNORE INTO questions (id, subject, difficulty, question_text, choices, correct_choice, rationale)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			q.ID, string(q.Subject), string(q.Difficulty), q.Text, choices, q.CorrectChoice, q.Rationale,
		)
		if err != nil {
			return fmt.Errorf("seed question %s: %w", q.ID, err)
		}
	}

	return tx.Commit()
}

// CountQuestions reports the size of the seeded bank.
func (s *SQLiteStore) CountQuestions() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM questions`).Scan(&count)
	return count, err
}

// SelectEligible picks up to n random questions of the given subject and
// difficulty that still need practice: never answered, answered wrong, or
// answered right but self-reported as guessed. A confidently solved
// question is never re-served. Fewer than n rows come back when the pool
// is short; the result is never padded with ineligible questions.
func (s *SQLiteStore) SelectEligible(subject question.Subject, difficulty question.Difficulty, n int) ([]question.Question, error) {
	rows, err := s.db.Query(
		`SELECT q.id, q.subject, q.difficulty, q.question_text, q.choices, q.correct_choice, q.rationale
		 FROM questions q
		 LEFT JOIN answers a ON a.question_id = q.id
		 WHERE q.subject = ? AND q.difficulty = ?
		   AND (a.question_id IS NULL
		        OR a.is_correct = 0
		        OR (a.reason_for_guess IS NOT NULL AND a.how_to_avoid_guess IS NOT NULL))
		 ORDER BY RANDOM()
		 LIMIT ?`,
		string(subject), string(difficulty), n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []question.Question
	for rows.Next() {
		var q question.Question
		var choicesRaw string
		if err := rows.Scan(&q.ID, &q.Subject, &q.Difficulty, &q.Text, &choicesRaw, &q.CorrectChoice, &q.Rationale); err != nil {
			return nil, err
		}
		choices, err := question.ParseChoices(choicesRaw)
		if err != nil {
			// One bad blob poisons the whole set; the caller falls back
			// to a no-questions state instead of serving a broken test.
			return nil, fmt.Errorf("question %s: %w: %v", q.ID, ErrMalformedChoices, err)
		}
		q.Choices = choices
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
