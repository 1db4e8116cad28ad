/*
vacation.go - Vacation allowance over a fiscal vacation year

PURPOSE:
  Counts used and planned vacation days inside the active vacation year and
  derives what remains of the allowance.

VACATION YEAR:
  The year boundary is a configurable month/day (e.g. April 1). The active
  window is half-open: [start, start+1y). When today falls before this
  calendar year's boundary, the active window began in the previous
  calendar year.

COUNTING:
  A vacation entry strictly before today is used; today's own entry and
  everything after is planned. Remaining = allowance - used - planned and
  may go negative; overdrawn allowances are shown, not clamped.
*/
package accounting

import "github.com/shopspring/decimal"

// VacationStats is the vacation position inside the active vacation year.
type VacationStats struct {
	UsedDays      int             `json:"usedDays"`
	PlannedDays   int             `json:"plannedDays"`
	RemainingDays decimal.Decimal `json:"remainingDays"`
	AllowanceDays decimal.Decimal `json:"allowanceDays"`
}

// VacationYear returns the half-open window [start, end) of the vacation
// year containing today.
func VacationYear(settings VacationSettings, today CalendarDate) (start, end CalendarDate) {
	startYear := today.Year()
	thisYearStart := NewDate(startYear, settings.YearStartMonth, settings.YearStartDay)
	if today.Before(thisYearStart) {
		startYear--
	}
	start = NewDate(startYear, settings.YearStartMonth, settings.YearStartDay)
	return start, start.AddYears(1)
}

// CalculateVacationStats counts vacation entries inside the active vacation
// year against the applicable allowance.
func CalculateVacationStats(entries []DailyEntry, settings VacationSettings, today CalendarDate) VacationStats {
	start, end := VacationYear(settings, today)
	allowance := settings.AllowanceFor(start.Year())

	used, planned := 0, 0
	for _, entry := range entries {
		if entry.Status != StatusVacation {
			continue
		}
		if entry.Date.Before(start) || !entry.Date.Before(end) {
			continue
		}
		if entry.Date.Before(today) {
			used++
		} else {
			planned++
		}
	}

	remaining := allowance.Sub(decimal.NewFromInt(int64(used))).Sub(decimal.NewFromInt(int64(planned)))
	return VacationStats{
		UsedDays:      used,
		PlannedDays:   planned,
		RemainingDays: remaining,
		AllowanceDays: allowance,
	}
}
