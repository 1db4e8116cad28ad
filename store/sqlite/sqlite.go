/*
Package sqlite provides the SQLite-backed implementation of store.Store.

PURPOSE:
  Production persistence for user settings documents and daily entries.
  The same patterns apply to PostgreSQL; only minor SQL dialect differences.

KEY TABLES:
  users:   One settings document per user, stored as JSON. Settings are
           replaced wholesale on save, matching the document contract.
  entries: One row per (uid, date). Saves upsert on that key.

DATE STORAGE:
  Dates are stored as "YYYY-MM-DD" text, so SQL range comparison and the
  contract's string comparison agree byte for byte. Fractional extra hours
  are stored as decimal strings to avoid floating-point drift.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging): readers don't block,
  a single writer at a time, better crash recovery.

USAGE:
  st, err := sqlite.New("./worktime.db")   // ":memory:" for tests
  if err != nil { ... }
  defer st.Close()

SEE ALSO:
  - store/store.go: Interface definition and contract
  - store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/robert-northmind/worktime/accounting"
	"github.com/robert-northmind/worktime/store"
)

// Store implements store.Store using SQLite.
type Store struct {
	db *sql.DB
}

var _ store.Store = (*Store)(nil)

// New opens (and migrates) a SQLite store at the given path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		uid           TEXT PRIMARY KEY,
		settings_json TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS entries (
		uid           TEXT NOT NULL,
		date          TEXT NOT NULL,
		start_time    TEXT NOT NULL DEFAULT '',
		end_time      TEXT NOT NULL DEFAULT '',
		lunch_minutes INTEGER NOT NULL DEFAULT 0,
		extra_hours   TEXT NOT NULL DEFAULT '0',
		status        TEXT NOT NULL,
		notes         TEXT NOT NULL DEFAULT '',
		updated_at    TEXT NOT NULL,
		PRIMARY KEY (uid, date)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// USERS
// =============================================================================

func (s *Store) GetUser(ctx context.Context, uid string) (*store.UserDocument, error) {
	var settingsJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT settings_json FROM users WHERE uid = ?`, uid,
	).Scan(&settingsJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", uid, err)
	}

	var settings store.Settings
	if err := json.Unmarshal([]byte(settingsJSON), &settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings for %s: %w", uid, err)
	}
	return &store.UserDocument{UID: uid, Settings: settings}, nil
}

func (s *Store) SaveUser(ctx context.Context, user store.UserDocument) error {
	settingsJSON, err := json.Marshal(user.Settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings for %s: %w", user.UID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO users (uid, settings_json, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(uid) DO UPDATE SET
			settings_json = excluded.settings_json,
			updated_at    = excluded.updated_at
	`, user.UID, string(settingsJSON), now())
	if err != nil {
		return fmt.Errorf("failed to save user %s: %w", user.UID, err)
	}
	return nil
}

// =============================================================================
// ENTRIES
// =============================================================================

func (s *Store) GetEntries(ctx context.Context, uid string, from, to accounting.CalendarDate) ([]accounting.DailyEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT date, start_time, end_time, lunch_minutes, extra_hours, status, notes
		FROM entries
		WHERE uid = ? AND date >= ? AND date <= ?
		ORDER BY date ASC
	`, uid, from.String(), to.String())
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for %s: %w", uid, err)
	}
	defer rows.Close()

	var entries []accounting.DailyEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *Store) SaveEntry(ctx context.Context, uid string, entry accounting.DailyEntry) error {
	return s.upsertEntry(ctx, s.db, uid, entry)
}

func (s *Store) BatchSaveEntries(ctx context.Context, uid string, entries []accounting.DailyEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin batch save: %w", err)
	}
	defer tx.Rollback()

	for _, entry := range entries {
		if err := s.upsertEntry(ctx, tx, uid, entry); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) BatchDeleteEntries(ctx context.Context, uid string, dates []accounting.CalendarDate) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin batch delete: %w", err)
	}
	defer tx.Rollback()

	for _, date := range dates {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM entries WHERE uid = ? AND date = ?`, uid, date.String(),
		); err != nil {
			return fmt.Errorf("failed to delete entry %s/%s: %w", uid, date, err)
		}
	}
	return tx.Commit()
}

func (s *Store) DeleteEntry(ctx context.Context, uid string, date accounting.CalendarDate) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM entries WHERE uid = ? AND date = ?`, uid, date.String())
	if err != nil {
		return fmt.Errorf("failed to delete entry %s/%s: %w", uid, date, err)
	}
	return nil
}

// execer covers both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) upsertEntry(ctx context.Context, db execer, uid string, entry accounting.DailyEntry) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO entries (uid, date, start_time, end_time, lunch_minutes, extra_hours, status, notes, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(uid, date) DO UPDATE SET
			start_time    = excluded.start_time,
			end_time      = excluded.end_time,
			lunch_minutes = excluded.lunch_minutes,
			extra_hours   = excluded.extra_hours,
			status        = excluded.status,
			notes         = excluded.notes,
			updated_at    = excluded.updated_at
	`, uid, entry.Date.String(), entry.StartTime, entry.EndTime,
		entry.LunchMinutes, entry.ExtraHours.String(), string(entry.Status), entry.Notes, now())
	if err != nil {
		return fmt.Errorf("failed to save entry %s/%s: %w", uid, entry.Date, err)
	}
	return nil
}

func scanEntry(rows *sql.Rows) (accounting.DailyEntry, error) {
	var (
		entry      accounting.DailyEntry
		dateStr    string
		extraHours string
		status     string
	)
	if err := rows.Scan(&dateStr, &entry.StartTime, &entry.EndTime,
		&entry.LunchMinutes, &extraHours, &status, &entry.Notes); err != nil {
		return accounting.DailyEntry{}, fmt.Errorf("failed to scan entry: %w", err)
	}

	date, err := accounting.ParseDate(dateStr)
	if err != nil {
		return accounting.DailyEntry{}, err
	}
	extra, err := decimal.NewFromString(extraHours)
	if err != nil {
		return accounting.DailyEntry{}, fmt.Errorf("failed to parse extra hours %q: %w", extraHours, err)
	}

	entry.Date = date
	entry.ExtraHours = extra
	entry.Status = accounting.Status(status)
	return entry, nil
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
