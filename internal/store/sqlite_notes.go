package store

import "database/sql"

// DefaultNotes is shown the first time the notes screen opens.
const DefaultNotes = "Write down some things you've learned!\n\n"

// Notes returns the single notes row, or the default placeholder when no
// row has been written yet.
func (s *SQLiteStore) Notes() (string, error) {
	var text string
	err := s.db.QueryRow(`SELECT text_content FROM notes WHERE id = 1`).Scan(&text)
	if err == sql.ErrNoRows {
		return DefaultNotes, nil
	}
	if err != nil {
		return "", err
	}
	return text, nil
}

// SaveNotes overwrites the single notes row.
func (s *SQLiteStore) SaveNotes(text string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO notes (id, text_content) VALUES (1, ?)`, text)
	return err
}
