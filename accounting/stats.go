/*
stats.go - Balance aggregation across years, weeks, and weekdays

PURPOSE:
  Sums daily balances into a yearly total, derives the average weekly
  balance over "active" weeks, and computes per-weekday statistics over
  logged work days.

EXCLUSION RULE:
  Every aggregate skips entries where ShouldExcludeFromBalance holds - an
  in-progress day on the reference date must not drag the totals down while
  it is still being worked.

QUALIFYING WEEKS:
  The weekly average only counts a week when at least one of its entries is
  a work day with actual minutes > 0. A week holding nothing but absences
  (or zero-corrected work days) contributes neither balance nor denominator.

EXAMPLE:
  Expected 40h/week, one work week at +30 minutes, one vacation-only week:
  only the work week counts, average = 40*60 + 30/1 = 2430 ("40:30").
*/
package accounting

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// YEARLY BALANCE
// =============================================================================

// YearlyBalance is the summed balance over a set of entries.
type YearlyBalance struct {
	BalanceMinutes   int    `json:"balanceMinutes"`
	BalanceFormatted string `json:"balanceFormatted"`
}

// CalculateYearlyBalance sums the daily balance of every entry except the
// excluded in-progress day.
func CalculateYearlyBalance(entries []DailyEntry, schedules []WorkSchedule, today CalendarDate) YearlyBalance {
	total := 0
	for _, entry := range entries {
		if ShouldExcludeFromBalance(entry, today) {
			continue
		}
		total += CalculateDailyBalance(entry, schedules).BalanceMinutes
	}
	return YearlyBalance{BalanceMinutes: total, BalanceFormatted: FormatHours(total)}
}

// =============================================================================
// AVERAGE WEEKLY HOURS
// =============================================================================

// WeeklyAverage is the expected weekly minutes adjusted by the mean balance
// of qualifying weeks.
type WeeklyAverage struct {
	AvgMinutes   int    `json:"avgMinutes"`
	AvgFormatted string `json:"avgFormatted"`
}

// CalculateAverageWeeklyHours groups non-excluded entries by ISO week and
// averages the balance of qualifying weeks on top of the expected weekly
// minutes. With no qualifying week the expectation is returned unmodified.
func CalculateAverageWeeklyHours(entries []DailyEntry, schedules []WorkSchedule, expectedWeeklyHours decimal.Decimal, today CalendarDate) WeeklyAverage {
	weekBalance := make(map[string]int)
	qualifies := make(map[string]bool)

	for _, entry := range entries {
		if ShouldExcludeFromBalance(entry, today) {
			continue
		}
		key := WeekKey(entry.Date)
		balance := CalculateDailyBalance(entry, schedules)
		weekBalance[key] += balance.BalanceMinutes
		if entry.Status.IsWork() && balance.ActualMinutes > 0 {
			qualifies[key] = true
		}
	}

	expectedMinutes := expectedWeeklyHours.Mul(decimal.NewFromInt(60))

	sum := 0
	count := 0
	for key := range qualifies {
		sum += weekBalance[key]
		count++
	}
	if count == 0 {
		avg := int(expectedMinutes.Round(0).IntPart())
		return WeeklyAverage{AvgMinutes: avg, AvgFormatted: FormatHours(avg)}
	}

	avgDecimal := expectedMinutes.Add(decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(count))))
	avg := int(avgDecimal.Round(0).IntPart())
	return WeeklyAverage{AvgMinutes: avg, AvgFormatted: FormatHours(avg)}
}

// =============================================================================
// DAY-OF-WEEK STATISTICS
// =============================================================================

// DayOfWeekStat summarizes logged work minutes for one weekday.
type DayOfWeekStat struct {
	Weekday     time.Weekday `json:"weekday"`
	AvgMinutes  int          `json:"avgMinutes"`
	MinMinutes  int          `json:"minMinutes"`
	MaxMinutes  int          `json:"maxMinutes"`
	Count       int          `json:"count"`
	AvgHoursStr string       `json:"avgHoursStr"`
}

// CalculateDayOfWeekStats buckets the actual minutes of non-excluded work
// entries by weekday and emits Monday-Friday buckets holding at least one
// sample, in weekday order.
func CalculateDayOfWeekStats(entries []DailyEntry, schedules []WorkSchedule, today CalendarDate) []DayOfWeekStat {
	type bucket struct {
		sum, min, max, count int
	}
	buckets := make(map[time.Weekday]*bucket)

	for _, entry := range entries {
		if !entry.Status.IsWork() || ShouldExcludeFromBalance(entry, today) {
			continue
		}
		actual := CalculateDailyBalance(entry, schedules).ActualMinutes
		b, ok := buckets[entry.Date.Weekday()]
		if !ok {
			buckets[entry.Date.Weekday()] = &bucket{sum: actual, min: actual, max: actual, count: 1}
			continue
		}
		b.sum += actual
		b.count++
		if actual < b.min {
			b.min = actual
		}
		if actual > b.max {
			b.max = actual
		}
	}

	var stats []DayOfWeekStat
	for wd := time.Monday; wd <= time.Friday; wd++ {
		b, ok := buckets[wd]
		if !ok {
			continue
		}
		avg := int(math.Round(float64(b.sum) / float64(b.count)))
		stats = append(stats, DayOfWeekStat{
			Weekday:     wd,
			AvgMinutes:  avg,
			MinMinutes:  b.min,
			MaxMinutes:  b.max,
			Count:       b.count,
			AvgHoursStr: FormatHours(avg),
		})
	}
	return stats
}

// CountSickDays counts the entries logged as sick days.
func CountSickDays(entries []DailyEntry) int {
	count := 0
	for _, entry := range entries {
		if entry.Status == StatusSick {
			count++
		}
	}
	return count
}
