/*
week.go - ISO-8601 week identification and week filling

PURPOSE:
  Assigns entries to ISO weeks and expands a week's sparse entry list into
  displayable calendar slots.

WEEK KEYS:
  "YYYY-WN" with the ISO week-numbering year, unpadded week number. Weeks
  run Monday-Sunday; week 1 is the week containing the year's first
  Thursday, so dates near a year boundary can carry the adjacent year's key
  (2024-12-30 -> "2025-W1").

SLOT RULES:
  Weekday slots (Mon-Fri) appear once the day has arrived or when it holds
  an entry; weekend slots appear only when they hold an entry. Output is in
  descending date order, most recent first. A week with no entries at all
  produces no slots.
*/
package accounting

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WeekNumber returns the ISO week-numbering year and week for a date.
func WeekNumber(date CalendarDate) (year, week int) {
	return date.ISOWeek()
}

// WeekKey returns the "YYYY-WN" identifier of the ISO week containing date.
func WeekKey(date CalendarDate) string {
	year, week := date.ISOWeek()
	return fmt.Sprintf("%d-W%d", year, week)
}

// ParseWeekKey splits a "YYYY-WN" key back into year and week.
func ParseWeekKey(key string) (year, week int, ok bool) {
	y, w, found := strings.Cut(key, "-W")
	if !found {
		return 0, 0, false
	}
	year, err := strconv.Atoi(y)
	if err != nil {
		return 0, 0, false
	}
	week, err = strconv.Atoi(w)
	if err != nil || week < 1 || week > 53 {
		return 0, 0, false
	}
	return year, week, true
}

// WeekStart returns the Monday of the given ISO week. January 4 is always
// inside week 1 of its ISO year; everything else is offset arithmetic.
func WeekStart(year, week int) CalendarDate {
	jan4 := NewDate(year, time.January, 4)
	isoWeekday := int(jan4.Weekday())
	if isoWeekday == 0 {
		isoWeekday = 7 // Sunday is 7 in ISO numbering
	}
	week1Monday := jan4.AddDays(1 - isoWeekday)
	return week1Monday.AddDays(7 * (week - 1))
}

// FillWeekDays expands the entries of one week into calendar slots,
// descending by date. The week's Monday is recomputed from weekKey,
// independent of the entries supplied. An empty entry list yields no slots;
// an unparseable key likewise.
func FillWeekDays(weekEntries []DailyEntry, weekKey string, today CalendarDate) []WeekDay {
	if len(weekEntries) == 0 {
		return nil
	}
	year, week, ok := ParseWeekKey(weekKey)
	if !ok {
		return nil
	}
	monday := WeekStart(year, week)

	byDate := make(map[string]*DailyEntry, len(weekEntries))
	for i := range weekEntries {
		byDate[weekEntries[i].Date.String()] = &weekEntries[i]
	}

	// Sunday down to Monday; offsets 5 and 6 are the weekend.
	var days []WeekDay
	for offset := 6; offset >= 0; offset-- {
		date := monday.AddDays(offset)
		entry := byDate[date.String()]
		weekend := offset >= 5
		if weekend {
			if entry == nil {
				continue
			}
		} else if entry == nil && date.After(today) {
			continue
		}
		days = append(days, WeekDay{Date: date, Entry: entry})
	}
	return days
}
