/*
Package accounting implements the work-time accounting engine.

PURPOSE:
  Pure calculation rules for personal work-time tracking: resolving which
  weekly schedule applies on a date, turning a logged day into actual /
  expected / balance minutes, aggregating balances across ISO weeks and
  years, tracking a vacation allowance against a fiscal vacation year, and
  computing milestone countdowns.

KEY CONCEPTS IN THIS FILE (types.go):
  - CalendarDate: timezone-naive calendar day (see date.go)
  - WorkSchedule: effective-dated weekly schedule version
  - DailyEntry:   one logged day (work interval or absence)
  - VacationSettings / Milestone: configuration read by the engine

DESIGN PRINCIPLES:
  1. Purity: every function is a deterministic transform of its arguments;
     temporal context is always an explicit reference date, never the clock.
  2. Totality: malformed input degrades to neutral values, never errors.
  3. Precision: fractional hour and day quantities use decimal.Decimal;
     everything else is integer minutes.

SEE ALSO:
  - schedule.go: schedule resolution
  - balance.go:  daily balance rules
  - week.go:     ISO week grouping
  - stats.go:    yearly/weekly/weekday aggregation
  - vacation.go: vacation-year accounting
  - milestone.go: countdowns and progress
*/
package accounting

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// ENTRY STATUS
// =============================================================================

// Status classifies a logged day. Only StatusWork carries meaningful
// start/end times; every other status (including user-defined custom
// absence types) is a full absence, modified only by extra hours.
type Status string

const (
	StatusWork     Status = "work"
	StatusVacation Status = "vacation"
	StatusHoliday  Status = "holiday"
	StatusSick     Status = "sick"
)

// IsWork reports whether start/end times count toward the balance.
func (s Status) IsWork() bool { return s == StatusWork }

// =============================================================================
// WORK SCHEDULE - Effective-dated weekly schedule version
// =============================================================================

// WorkSchedule is one version of a user's weekly schedule, effective from
// EffectiveDate until superseded by a version with a later effective date.
// Schedules are replaced wholesale on settings save; the engine never
// mutates them.
type WorkSchedule struct {
	EffectiveDate CalendarDate    `json:"effectiveDate"`
	WeeklyHours   decimal.Decimal `json:"weeklyHours"`
	WorkDays      []time.Weekday  `json:"workDays"` // 0=Sunday .. 6=Saturday
}

// IsWorkDay reports whether the weekday belongs to this schedule.
func (s WorkSchedule) IsWorkDay(day time.Weekday) bool {
	for _, d := range s.WorkDays {
		if d == day {
			return true
		}
	}
	return false
}

// =============================================================================
// DAILY ENTRY - One logged day
// =============================================================================

// DailyEntry is a user's record for a single date. At most one entry exists
// per (user, date); the date is the natural key.
type DailyEntry struct {
	Date         CalendarDate    `json:"date"`
	StartTime    string          `json:"startTime"` // "HH:MM", "" when unset
	EndTime      string          `json:"endTime"`   // "HH:MM", "" when unset
	LunchMinutes int             `json:"lunchMinutes"`
	ExtraHours   decimal.Decimal `json:"extraHours"`
	Status       Status          `json:"status"`
	Notes        string          `json:"notes"`
}

// ExtraMinutes converts the additive extra-hours override to minutes.
func (e DailyEntry) ExtraMinutes() int {
	return int(e.ExtraHours.Mul(decimal.NewFromInt(60)).Round(0).IntPart())
}

// =============================================================================
// VACATION SETTINGS
// =============================================================================

// VacationSettings defines the fiscal vacation-year boundary and the
// allowance, with optional per-year overrides keyed by the calendar year in
// which the vacation year starts.
type VacationSettings struct {
	YearStartMonth   time.Month              `json:"yearStartMonth"` // 1..12
	YearStartDay     int                     `json:"yearStartDay"`   // 1..31
	AllowanceDays    decimal.Decimal         `json:"allowanceDays"`
	YearlyAllowances map[int]decimal.Decimal `json:"yearlyAllowances,omitempty"`
}

// AllowanceFor returns the allowance for the vacation year starting in the
// given calendar year, falling back to the default allowance.
func (v VacationSettings) AllowanceFor(startYear int) decimal.Decimal {
	if a, ok := v.YearlyAllowances[startYear]; ok {
		return a
	}
	return v.AllowanceDays
}

// =============================================================================
// MILESTONES
// =============================================================================

type MilestoneType string

const (
	MilestonePeriod MilestoneType = "period" // spans [StartDate, Date]
	MilestoneEvent  MilestoneType = "event"  // single target date
)

// Milestone is a configured calendar target: an event on Date, or a period
// running from StartDate through Date. A zero StartDate means unset.
type Milestone struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Date      CalendarDate  `json:"date"`
	StartDate CalendarDate  `json:"startDate,omitempty"`
	Type      MilestoneType `json:"type"`
}

// =============================================================================
// DERIVED VALUES - Computed, never persisted
// =============================================================================

// DailyBalance is the outcome of one day: minutes worked, minutes expected
// by the active schedule, and their difference.
type DailyBalance struct {
	ActualMinutes   int `json:"actualMinutes"`
	ExpectedMinutes int `json:"expectedMinutes"`
	BalanceMinutes  int `json:"balanceMinutes"`
}

// WeekDay is one calendar slot of a filled week; Entry is nil for a weekday
// slot with no logged data.
type WeekDay struct {
	Date  CalendarDate `json:"date"`
	Entry *DailyEntry  `json:"entry"`
}

// MilestoneDisplay is the milestone chosen for display, with countdown text
// and, for an active period, a 0-100 progress percentage.
type MilestoneDisplay struct {
	Milestone      Milestone `json:"milestone"`
	WeeksRemaining int       `json:"weeksRemaining"`
	Text           string    `json:"text"`
	Progress       *int      `json:"progress,omitempty"`
}
