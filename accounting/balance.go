/*
balance.go - Daily balance calculation

PURPOSE:
  Converts one logged day into actual / expected / balance minutes under
  status-dependent rules. This is the calculation every aggregate builds on.

RULES:
  status == "work":
    actual   = (start && end ? end - start - lunch : 0) + extra
    expected = active schedule's expected minutes for the date
  any other status (vacation, holiday, sick, custom absence):
    actual   = extra only (start/end ignored even when present)
    expected = 0
  balance = actual - expected, always.

IN-PROGRESS DAYS:
  A work entry with a start time but no end time is "incomplete". On the
  reference date itself such an entry is excluded from aggregation (the day
  is still running); InProgressMinutes exists for live display only.
*/
package accounting

import "time"

// CalculateDailyBalance computes the balance for a single logged day.
// All inputs are treated permissively: missing times contribute zero.
func CalculateDailyBalance(entry DailyEntry, schedules []WorkSchedule) DailyBalance {
	actual := entry.ExtraMinutes()
	expected := 0

	if entry.Status.IsWork() {
		if entry.StartTime != "" && entry.EndTime != "" {
			actual += Duration(entry.StartTime, entry.EndTime) - entry.LunchMinutes
		}
		expected = ExpectedDailyMinutes(entry.Date, schedules)
	}

	return DailyBalance{
		ActualMinutes:   actual,
		ExpectedMinutes: expected,
		BalanceMinutes:  actual - expected,
	}
}

// IsIncompleteEntry reports a work day that has been started but not ended.
func IsIncompleteEntry(entry DailyEntry) bool {
	return entry.Status.IsWork() && entry.StartTime != "" && entry.EndTime == ""
}

// ShouldExcludeFromBalance reports whether an entry must be left out of
// aggregation: an incomplete work day on the reference date itself. Days
// before the reference date stay included even when incomplete, so a
// forgotten end time shows up as a wrong-looking number rather than a
// silently shrinking total.
func ShouldExcludeFromBalance(entry DailyEntry, today CalendarDate) bool {
	return entry.Date.Equal(today) && IsIncompleteEntry(entry)
}

// InProgressMinutes returns the minutes accumulated so far by an incomplete
// entry, measured against the reference wall-clock time: start to now,
// minus lunch, plus extra, floored at zero. Complete entries and entries
// without a start time yield 0. For live display only; aggregation never
// counts in-progress minutes.
func InProgressMinutes(entry DailyEntry, now time.Time) int {
	if !IsIncompleteEntry(entry) {
		return 0
	}
	nowMinutes := now.Hour()*60 + now.Minute()
	minutes := nowMinutes - TimeToMinutes(entry.StartTime) - entry.LunchMinutes + entry.ExtraMinutes()
	if minutes < 0 {
		return 0
	}
	return minutes
}
