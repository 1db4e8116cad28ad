/*
Package store defines persistence for users and their daily entries.

PURPOSE:
  The accounting engine never touches storage; it is handed entry slices
  and settings. This package owns that boundary: a Store interface with a
  document-style contract (one settings document per user, one entry row
  per user+date), an in-memory implementation for tests and dev, and a
  SQLite implementation under store/sqlite for production.

CONTRACT:
  - At most one entry exists per (uid, date); saves upsert by that key.
  - GetEntries filters by an inclusive calendar-date range and returns
    entries ordered by date ascending.
  - GetUser returns nil (no error) for an unknown uid.
  - Batch operations are atomic: all entries saved/deleted or none.

SEE ALSO:
  - memory.go: In-memory implementation
  - sqlite/sqlite.go: SQLite implementation
*/
package store

import (
	"context"
	"errors"

	"github.com/robert-northmind/worktime/accounting"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrUserNotFound is returned by writes that require an existing user.
	ErrUserNotFound = errors.New("user not found")
)

// =============================================================================
// USER DOCUMENT
// =============================================================================

// UserDocument is a user's stored settings document.
type UserDocument struct {
	UID      string   `json:"uid"`
	Settings Settings `json:"settings"`
}

// Settings carries everything the UI persists per user. The engine reads
// only Schedules, Vacation, and YearlyMilestones; the rest is display
// configuration stored and returned verbatim.
type Settings struct {
	Schedules        []accounting.WorkSchedule          `json:"schedules"`
	Vacation         accounting.VacationSettings        `json:"vacation"`
	YearlyMilestones map[int][]accounting.Milestone     `json:"yearlyMilestones,omitempty"`

	// UI-only fields, opaque to the engine.
	AbsenceTypes []AbsenceType `json:"absenceTypes,omitempty"`
	TimeFormat   string        `json:"timeFormat,omitempty"`
	ColorTheme   string        `json:"colorTheme,omitempty"`
}

// AbsenceType is a user-defined status beyond the built-in ones.
type AbsenceType struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
}

// =============================================================================
// STORE INTERFACE
// =============================================================================

// Store persists user documents and daily entries.
type Store interface {
	// GetUser returns the user's document, or nil when the uid is unknown.
	GetUser(ctx context.Context, uid string) (*UserDocument, error)

	// SaveUser creates or replaces the user's document wholesale.
	SaveUser(ctx context.Context, user UserDocument) error

	// GetEntries returns the user's entries with from <= date <= to,
	// ordered by date ascending.
	GetEntries(ctx context.Context, uid string, from, to accounting.CalendarDate) ([]accounting.DailyEntry, error)

	// SaveEntry creates or replaces the entry for (uid, entry.Date).
	SaveEntry(ctx context.Context, uid string, entry accounting.DailyEntry) error

	// BatchSaveEntries upserts all entries atomically.
	BatchSaveEntries(ctx context.Context, uid string, entries []accounting.DailyEntry) error

	// BatchDeleteEntries removes the entries for the given dates
	// atomically. Unknown dates are ignored.
	BatchDeleteEntries(ctx context.Context, uid string, dates []accounting.CalendarDate) error

	// DeleteEntry removes a single entry; unknown dates are a no-op.
	DeleteEntry(ctx context.Context, uid string, date accounting.CalendarDate) error
}
