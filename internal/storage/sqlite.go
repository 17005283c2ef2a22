package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/timely-app/timely/internal/domain"

	_ "github.com/mattn/go-sqlite3"
)

// Storage is the durable persistence collaborator. The event service owns
// the in-memory collection and pushes full snapshots here after every
// mutation; storage never decides anything about events itself.
type Storage struct {
	db *sql.DB
}

func New(dbPath string) (*Storage, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	s := &Storage{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			date TEXT NOT NULL,
			time TEXT NOT NULL DEFAULT '',
			duration INTEGER NOT NULL DEFAULT 0,
			recurring_id TEXT NOT NULL DEFAULT '',
			recurring_type TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_date ON events(date)`,
		`CREATE INDEX IF NOT EXISTS idx_events_recurring ON events(recurring_id)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}

// === Events ===

// LoadEvents returns the persisted collection, ordered by date and time.
func (s *Storage) LoadEvents() ([]domain.Event, error) {
	rows, err := s.db.Query(
		`SELECT id, title, date, time, duration, recurring_id, recurring_type
		 FROM events ORDER BY date, time, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var ev domain.Event
		var recurType string
		if err := rows.Scan(&ev.ID, &ev.Title, &ev.Date, &ev.Time, &ev.Duration,
			&ev.RecurringID, &recurType); err != nil {
			return nil, err
		}
		ev.RecurringType = domain.RecurrenceType(recurType)
		events = append(events, ev)
	}
	return events, rows.Err()
}

// ReplaceEvents overwrites the persisted collection with the given snapshot
// in one transaction. Mutations never patch individual rows.
func (s *Storage) ReplaceEvents(events []domain.Event) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM events`); err != nil {
		return fmt.Errorf("clear events: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO events (id, title, date, time, duration, recurring_id, recurring_type)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, ev := range events {
		if _, err := stmt.Exec(ev.ID, ev.Title, ev.Date, ev.Time, ev.Duration,
			ev.RecurringID, string(ev.RecurringType)); err != nil {
			return fmt.Errorf("insert event %s: %w", ev.ID, err)
		}
	}

	return tx.Commit()
}

// === Settings ===

func (s *Storage) GetSetting(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *Storage) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}
