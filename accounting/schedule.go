package accounting

import "github.com/shopspring/decimal"

// =============================================================================
// SCHEDULE RESOLVER - Which schedule version applies on a date?
// =============================================================================

// ActiveSchedule resolves the schedule version in force on a date: the one
// with the latest effective date <= date. Returns false when the date
// precedes every version (tracking had not begun yet).
func ActiveSchedule(date CalendarDate, schedules []WorkSchedule) (WorkSchedule, bool) {
	var active WorkSchedule
	found := false
	for _, s := range schedules {
		if s.EffectiveDate.After(date) {
			continue
		}
		if !found || s.EffectiveDate.After(active.EffectiveDate) {
			active = s
			found = true
		}
	}
	return active, found
}

// ExpectedDailyHours returns the hours expected on a date under the active
// schedule: weekly hours spread evenly over the schedule's work days.
// Zero when no version is in force, when the weekday is not a work day, or
// when the schedule has no work days at all.
func ExpectedDailyHours(date CalendarDate, schedules []WorkSchedule) decimal.Decimal {
	active, ok := ActiveSchedule(date, schedules)
	if !ok {
		return decimal.Zero
	}
	if !active.IsWorkDay(date.Weekday()) {
		return decimal.Zero
	}
	if len(active.WorkDays) == 0 {
		return decimal.Zero
	}
	return active.WeeklyHours.Div(decimal.NewFromInt(int64(len(active.WorkDays))))
}

// ExpectedDailyMinutes is ExpectedDailyHours scaled to whole minutes.
func ExpectedDailyMinutes(date CalendarDate, schedules []WorkSchedule) int {
	return int(ExpectedDailyHours(date, schedules).Mul(decimal.NewFromInt(60)).Round(0).IntPart())
}

// ExpectedWeeklyHours returns the weekly hours of the schedule in force on
// the reference date, or zero when none applies.
func ExpectedWeeklyHours(date CalendarDate, schedules []WorkSchedule) decimal.Decimal {
	active, ok := ActiveSchedule(date, schedules)
	if !ok {
		return decimal.Zero
	}
	return active.WeeklyHours
}
