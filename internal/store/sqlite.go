package store

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

const answersSchema = `
CREATE TABLE IF NOT EXISTS answers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question_id TEXT NOT NULL UNIQUE,
    question_text TEXT NOT NULL,
    subject TEXT NOT NULL,
    difficulty TEXT NOT NULL,
    is_correct INTEGER NOT NULL,
    selected_choice TEXT,
    rationale TEXT NOT NULL,
    reason_for_mistake TEXT,
    how_to_avoid_mistake TEXT,
    reason_for_guess TEXT,
    how_to_avoid_guess TEXT,
    updated_at_unix INTEGER NOT NULL,
    session_id INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_answers_session ON answers(session_id);
CREATE INDEX IF NOT EXISTS idx_answers_updated_at ON answers(updated_at_unix DESC);
`

const sessionsSchema = `
CREATE TABLE IF NOT EXISTS sessions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at_unix INTEGER NOT NULL
);
`

// Referential integrity between answers and sessions is advisory: callers
// always create the session row first, and the tracker reset drops both
// tables together, so no FK constraints are declared.
const schema = `
CREATE TABLE IF NOT EXISTS questions (
    id TEXT PRIMARY KEY,
    subject TEXT NOT NULL,
    difficulty TEXT NOT NULL,
    question_text TEXT NOT NULL,
    choices TEXT NOT NULL,
    correct_choice TEXT NOT NULL,
    rationale TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS notes (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    text_content TEXT NOT NULL
);
` + answersSchema + sessionsSchema

// SQLiteStore owns the embedded database. One store instance is shared by
// every consumer; SQLite serializes statement execution on the single
// connection.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// SQLite supports only one writer at a time.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
