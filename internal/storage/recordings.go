package storage

import "fmt"

// SaveRecords appends encoded play frames for a session in one transaction.
func (s *Store) SaveRecords(session string, records [][]byte) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO recordings (session, frame) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(session, r); err != nil {
			return fmt.Errorf("storage: cannot save recording: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit recordings: %w", err)
	}
	return nil
}

// LoadRecords returns up to limit of the most recent frames, oldest first.
// A non-positive limit returns every frame.
func (s *Store) LoadRecords(limit int) ([][]byte, error) {
	query := `SELECT frame FROM (
		SELECT id, frame FROM recordings ORDER BY id DESC LIMIT ?
	) ORDER BY id ASC`
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recordings: %w", err)
	}
	defer rows.Close()

	var frames [][]byte
	for rows.Next() {
		var f []byte
		if err := rows.Scan(&f); err != nil {
			return nil, fmt.Errorf("storage: cannot scan recording: %w", err)
		}
		frames = append(frames, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return frames, nil
}

// CountRecords returns the number of stored frames.
func (s *Store) CountRecords() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM recordings").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count recordings: %w", err)
	}
	return n, nil
}

// ClearRecords deletes every stored frame.
func (s *Store) ClearRecords() error {
	if _, err := s.db.Exec("DELETE FROM recordings"); err != nil {
		return fmt.Errorf("storage: cannot clear recordings: %w", err)
	}
	return nil
}
