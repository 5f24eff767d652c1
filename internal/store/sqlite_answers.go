package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mistake-tracker/backend/internal/domain/answer"
)

const upsertAnswerSQL = `
INSERT INTO answers (
    question_id, question_text, subject, difficulty, is_correct,
    selected_choice, rationale,
    reason_for_mistake, how_to_avoid_mistake, reason_for_guess, how_to_avoid_guess,
    updated_at_unix, session_id
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(question_id) DO UPDATE SET
    question_text = excluded.question_text,
    subject = excluded.subject,
    difficulty = excluded.difficulty,
    is_correct = excluded.is_correct,
    selected_choice = excluded.selected_choice,
    rationale = excluded.rationale,
    reason_for_mistake = excluded.reason_for_mistake,
    how_to_avoid_mistake = excluded.how_to_avoid_mistake,
    reason_for_guess = excluded.reason_for_guess,
    how_to_avoid_guess = excluded.how_to_avoid_guess,
    updated_at_unix = excluded.updated_at_unix,
    session_id = excluded.session_id`

// execer covers both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// upsertAnswer writes one answer with last-attempt-wins semantics: every
// column is replaced, including reflection fields absent from the new
// record. The tracker reflects only the most recent attempt per question.
// Empty reflection strings are stored as NULL so the eligibility query's
// predicates agree with the domain's notion of an absent field.
func upsertAnswer(e execer, a *answer.Answer, sessionID int64, updatedAt time.Time) error {
	_, err := e.Exec(upsertAnswerSQL,
		a.QuestionID, a.QuestionText, string(a.Subject), string(a.Difficulty), boolToInt(a.IsCorrect),
		a.SelectedChoice, a.Rationale,
		nilIfEmpty(a.ReasonForMistake), nilIfEmpty(a.HowToAvoidMistake),
		nilIfEmpty(a.ReasonForGuess), nilIfEmpty(a.HowToAvoidGuess),
		updatedAt.UnixNano(), sessionID,
	)
	if err != nil {
		return fmt.Errorf("upsert answer %s: %w", a.QuestionID, err)
	}
	return nil
}

// UpsertAnswers writes a batch of answers against an existing session in
// one transaction. Each answer must satisfy the reflection invariant;
// a single violation rejects the whole batch before anything is written.
func (s *SQLiteStore) UpsertAnswers(sessionID int64, updatedAt time.Time, answers []answer.Answer) error {
	for i := range answers {
		if err := answers[i].Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i := range answers {
		if err := upsertAnswer(tx, &answers[i], sessionID, updatedAt); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// FetchAllAnswers returns every tracked answer, most recently updated
// first. This feeds the unfiltered mistake-tracker view.
func (s *SQLiteStore) FetchAllAnswers() ([]answer.Answer, error) {
	return s.queryAnswers(
		`SELECT ` + answerColumns + ` FROM answers ORDER BY updated_at_unix DESC, id DESC`,
	)
}

// FetchSessionAnswers returns the answers recorded in one session, most
// recently updated first. Returns ErrNotFound if the session does not
// exist. An existing session can legitimately come back empty: a later
// attempt may have claimed all of its answers.
func (s *SQLiteStore) FetchSessionAnswers(sessionID int64) ([]answer.Answer, error) {
	var id int64
	err := s.db.QueryRow(`SELECT id FROM sessions WHERE id = ?`, sessionID).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session %d: %w", sessionID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return s.queryAnswers(
		`SELECT `+answerColumns+` FROM answers WHERE session_id = ? ORDER BY updated_at_unix DESC, id DESC`,
		sessionID,
	)
}

// ResetTracker drops and recreates the answers and sessions tables. The
// question bank and notes survive. Statements run individually: a failure
// can leave a table dropped but not recreated, and the next store open
// repairs that through the idempotent schema bootstrap.
func (s *SQLiteStore) ResetTracker() error {
	statements := []string{
		`DROP TABLE IF EXISTS answers`,
		`DROP TABLE IF EXISTS sessions`,
		answersSchema,
		sessionsSchema,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("reset tracker: %w", err)
		}
	}
	return nil
}

const answerColumns = `question_id, question_text, subject, difficulty, is_correct,
    selected_choice, rationale,
    reason_for_mistake, how_to_avoid_mistake, reason_for_guess, how_to_avoid_guess,
    updated_at_unix, session_id`

func (s *SQLiteStore) queryAnswers(query string, args ...any) ([]answer.Answer, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []answer.Answer
	for rows.Next() {
		var (
			a              answer.Answer
			isCorrect      int
			selected       sql.NullString
			reasonMistake  sql.NullString
			avoidMistake   sql.NullString
			reasonGuess    sql.NullString
			avoidGuess     sql.NullString
			updatedAtUnix  int64
		)
		err := rows.Scan(
			&a.QuestionID, &a.QuestionText, &a.Subject, &a.Difficulty, &isCorrect,
			&selected, &a.Rationale,
			&reasonMistake, &avoidMistake, &reasonGuess, &avoidGuess,
			&updatedAtUnix, &a.SessionID,
		)
		if err != nil {
			return nil, err
		}
		a.IsCorrect = isCorrect != 0
		a.SelectedChoice = nullableString(selected)
		a.ReasonForMistake = nullableString(reasonMistake)
		a.HowToAvoidMistake = nullableString(avoidMistake)
		a.ReasonForGuess = nullableString(reasonGuess)
		a.HowToAvoidGuess = nullableString(avoidGuess)
		a.UpdatedAt = time.Unix(0, updatedAtUnix).UTC()
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

func nilIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
