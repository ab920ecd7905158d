package store

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS rooms (
			email         TEXT PRIMARY KEY,
			display_name  TEXT NOT NULL,
			editable      BOOLEAN NOT NULL DEFAULT 0,
			working_hours TEXT,
			fetched_at    DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_rooms_display_name ON rooms(display_name);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating rooms table: %w", err)
	}

	return nil
}
