package accounting

import (
	"encoding/json"
	"fmt"
	"time"
)

// =============================================================================
// CALENDAR DATE - Timezone-naive calendar day abstraction
// =============================================================================

// CalendarDate is a plain calendar day: year, month, day. No time of day,
// no timezone. Internally anchored at UTC midnight so that weekday and
// day-difference math never shift across a DST or zone boundary.
type CalendarDate struct {
	t time.Time
}

// Constructors
func NewDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string. Malformed input returns the zero
// date and an error; the zero date never matches any schedule or window.
func ParseDate(s string) (CalendarDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid calendar date %q: %w", s, err)
	}
	return CalendarDate{t: t}, nil
}

// DateOf truncates a wall-clock time to its calendar day.
func DateOf(t time.Time) CalendarDate {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Comparison
func (d CalendarDate) Before(other CalendarDate) bool        { return d.t.Before(other.t) }
func (d CalendarDate) Equal(other CalendarDate) bool         { return d.t.Equal(other.t) }
func (d CalendarDate) After(other CalendarDate) bool         { return d.t.After(other.t) }
func (d CalendarDate) BeforeOrEqual(other CalendarDate) bool { return d.Before(other) || d.Equal(other) }
func (d CalendarDate) AfterOrEqual(other CalendarDate) bool  { return d.After(other) || d.Equal(other) }

// Arithmetic
func (d CalendarDate) AddDays(n int) CalendarDate   { return CalendarDate{t: d.t.AddDate(0, 0, n)} }
func (d CalendarDate) AddMonths(n int) CalendarDate { return CalendarDate{t: d.t.AddDate(0, n, 0)} }
func (d CalendarDate) AddYears(n int) CalendarDate  { return CalendarDate{t: d.t.AddDate(n, 0, 0)} }

// Properties
func (d CalendarDate) Year() int             { return d.t.Year() }
func (d CalendarDate) Month() time.Month     { return d.t.Month() }
func (d CalendarDate) Day() int              { return d.t.Day() }
func (d CalendarDate) Weekday() time.Weekday { return d.t.Weekday() }
func (d CalendarDate) IsZero() bool          { return d.t.IsZero() }

// ISOWeek returns the ISO-8601 week-numbering year and week. A date near a
// year boundary may belong to the adjacent ISO year (2024-12-30 is 2025-W1).
func (d CalendarDate) ISOWeek() (year, week int) { return d.t.ISOWeek() }

func (d CalendarDate) String() string {
	return d.t.Format("2006-01-02")
}

// DaysBetween returns the signed number of calendar days from one date to
// another (positive when to is after from).
func DaysBetween(from, to CalendarDate) int {
	return int(to.t.Sub(from.t).Hours() / 24)
}

// =============================================================================
// JSON - Dates travel as "YYYY-MM-DD" strings
// =============================================================================

func (d CalendarDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.String())
}

func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = CalendarDate{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
