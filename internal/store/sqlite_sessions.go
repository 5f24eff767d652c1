package store

import (
	"time"

	"github.com/mistake-tracker/backend/internal/domain/answer"
	"github.com/mistake-tracker/backend/internal/domain/session"
)

// CreateSession inserts one session row and returns its generated id.
// Callers must create the session before writing answers that reference it.
func (s *SQLiteStore) CreateSession(createdAt time.Time) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO sessions (created_at_unix) VALUES (?)`, createdAt.UnixNano())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// SubmitBatch persists one completed test: a session row plus an upsert
// for every answer, all stamped with the session id and a shared
// timestamp. The whole batch runs in a single transaction, so a crash
// mid-submit leaves either the complete batch or nothing.
//
// Every answer is validated against the reflection invariant first; one
// bad answer rejects the batch with nothing written, and the error is
// surfaced so the caller can show a failure and retry the whole batch.
func (s *SQLiteStore) SubmitBatch(answers []answer.Answer) (int64, error) {
	for i := range answers {
		if err := answers[i].Validate(); err != nil {
			return 0, err
		}
	}

	now := time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO sessions (created_at_unix) VALUES (?)`, now.UnixNano())
	if err != nil {
		return 0, err
	}
	sessionID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for i := range answers {
		if err := upsertAnswer(tx, &answers[i], sessionID, now); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return sessionID, nil
}

// ListSessionStats returns one summary row per session, newest first.
// Subject and difficulty are taken from an arbitrary constituent answer
// (all answers in a session share one configuration). Sessions with no
// answers are excluded by the inner join.
func (s *SQLiteStore) ListSessionStats() ([]session.Stats, error) {
	rows, err := s.db.Query(
		`SELECT s.id, s.created_at_unix, a.subject, a.difficulty,
		        SUM(a.is_correct), COUNT(*)
		 FROM sessions s
		 JOIN answers a ON a.session_id = s.id
		 GROUP BY s.id
		 ORDER BY s.created_at_unix DESC, s.id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []session.Stats
	for rows.Next() {
		var (
			st            session.Stats
			createdAtUnix int64
		)
		if err := rows.Scan(&st.ID, &createdAtUnix, &st.Subject, &st.Difficulty, &st.Correct, &st.Total); err != nil {
			return nil, err
		}
		st.CreatedAt = time.Unix(0, createdAtUnix).UTC()
		stats = append(stats, st)
	}
	return stats, rows.Err()
}
