// Package store provides the SQLite snapshot cache. The dashboard keeps
// the last successfully fetched rooms and working-hours documents on disk
// so read-only views still render when the backend is unreachable.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"roomboard/internal/room"
)

// ErrNoSnapshot is returned when the cache has never been filled.
var ErrNoSnapshot = errors.New("no cached snapshot")

// Snapshot is the cached room directory with working hours, plus when it
// was fetched.
type Snapshot struct {
	Rooms     []*room.Room
	FetchedAt time.Time
}

// SQLite implements the snapshot cache on a local database file.
type SQLite struct {
	db *sql.DB
}

// New opens (creating if needed) the cache database and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to cache database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// SaveSnapshot replaces the cached room directory wholesale. Working hours
// are stored as the wire document JSON; a room without a document stores
// NULL.
func (s *SQLite) SaveSnapshot(ctx context.Context, rooms []*room.Room) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM rooms`); err != nil {
		return fmt.Errorf("clearing snapshot: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, r := range rooms {
		var hoursJSON sql.NullString
		if r.Hours != nil {
			b, err := json.Marshal(r.Hours.WireDocument())
			if err != nil {
				return fmt.Errorf("encoding working hours for %s: %w", r.DisplayName, err)
			}
			hoursJSON = sql.NullString{String: string(b), Valid: true}
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO rooms (email, display_name, editable, working_hours, fetched_at)
			VALUES (?, ?, ?, ?, ?)
		`, r.Email, r.DisplayName, r.Editable, hoursJSON, now)
		if err != nil {
			return fmt.Errorf("caching room %s: %w", r.DisplayName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot returns the cached room directory, or ErrNoSnapshot when
// the cache is empty.
func (s *SQLite) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT email, display_name, editable, working_hours, fetched_at
		FROM rooms
		ORDER BY display_name
	`)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	defer func() { _ = rows.Close() }()

	snap := &Snapshot{}
	for rows.Next() {
		var (
			r         room.Room
			hoursJSON sql.NullString
			fetchedAt string
		)
		if err := rows.Scan(&r.Email, &r.DisplayName, &r.Editable, &hoursJSON, &fetchedAt); err != nil {
			return nil, fmt.Errorf("scanning room: %w", err)
		}
		if hoursJSON.Valid {
			var doc room.WireDocument
			if err := json.Unmarshal([]byte(hoursJSON.String), &doc); err != nil {
				return nil, fmt.Errorf("decoding working hours for %s: %w", r.DisplayName, err)
			}
			wh, err := room.ParseWorkingHours(&doc)
			if err != nil {
				return nil, fmt.Errorf("parsing working hours for %s: %w", r.DisplayName, err)
			}
			r.Hours = wh
		}
		if ts, err := time.Parse(time.RFC3339, fetchedAt); err == nil && ts.After(snap.FetchedAt) {
			snap.FetchedAt = ts
		}
		snap.Rooms = append(snap.Rooms, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshot: %w", err)
	}
	if len(snap.Rooms) == 0 {
		return nil, ErrNoSnapshot
	}
	return snap, nil
}
