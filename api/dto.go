/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for API communication, decoupling the internal domain
  model from the external contract. Engine result types already carry JSON
  tags; the wrappers here exist where a response aggregates several engine
  results or needs string-formatted dates.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/robert-northmind/worktime/accounting"
	"github.com/robert-northmind/worktime/store"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// SettingsDTO wraps a user's settings document.
type SettingsDTO struct {
	UID      string         `json:"uid"`
	Settings store.Settings `json:"settings"`
}

// BatchSaveRequest is a batch of entries to upsert.
type BatchSaveRequest struct {
	Entries []accounting.DailyEntry `json:"entries"`
}

// BatchDeleteRequest lists the entry dates to remove.
type BatchDeleteRequest struct {
	Dates []accounting.CalendarDate `json:"dates"`
}

// YearReportDTO aggregates a calendar year's balances and statistics.
type YearReportDTO struct {
	Year           int                        `json:"year"`
	Balance        accounting.YearlyBalance   `json:"balance"`
	AverageWeekly  accounting.WeeklyAverage   `json:"averageWeekly"`
	DayOfWeekStats []accounting.DayOfWeekStat `json:"dayOfWeekStats"`
	SickDays       int                        `json:"sickDays"`
	EntryCount     int                        `json:"entryCount"`
}

// WeekDTO is one ISO week with its filled day slots and per-day balances.
type WeekDTO struct {
	WeekKey string       `json:"weekKey"`
	Days    []WeekDayDTO `json:"days"`
}

// WeekDayDTO is one calendar slot; Balance is present only with an entry.
type WeekDayDTO struct {
	Date    string                   `json:"date"`
	Entry   *accounting.DailyEntry   `json:"entry"`
	Balance *accounting.DailyBalance `json:"balance,omitempty"`
}

// WeeksReportDTO is a year's entries grouped into weeks, newest week first.
type WeeksReportDTO struct {
	Year  int       `json:"year"`
	Weeks []WeekDTO `json:"weeks"`
}

// MilestonesReportDTO lists the selected year's upcoming milestones with
// the chosen display milestone, when any remains.
type MilestonesReportDTO struct {
	Year       int                          `json:"year"`
	Milestones []accounting.Milestone       `json:"milestones"`
	Next       *accounting.MilestoneDisplay `json:"next"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
