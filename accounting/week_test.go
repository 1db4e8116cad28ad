package accounting_test

import (
	"testing"
	"time"

	"github.com/robert-northmind/worktime/accounting"
)

// =============================================================================
// ISO WEEK NUMBERING
// =============================================================================

func TestWeekNumber_YearBoundaryRollover(t *testing.T) {
	// 2024-12-30 is a Monday belonging to ISO week 1 of 2025.
	year, week := accounting.WeekNumber(date(2024, time.December, 30))
	if year != 2025 || week != 1 {
		t.Errorf("WeekNumber(2024-12-30) = %d-W%d, want 2025-W1", year, week)
	}

	if key := accounting.WeekKey(date(2025, time.December, 29)); key != "2026-W1" {
		t.Errorf("WeekKey(2025-12-29) = %q, want 2026-W1", key)
	}

	// And the other direction: early January can belong to the prior year.
	if key := accounting.WeekKey(date(2027, time.January, 1)); key != "2026-W53" {
		t.Errorf("WeekKey(2027-01-01) = %q, want 2026-W53", key)
	}
}

func TestParseWeekKey(t *testing.T) {
	year, week, ok := accounting.ParseWeekKey("2026-W1")
	if !ok || year != 2026 || week != 1 {
		t.Errorf("ParseWeekKey(2026-W1) = %d, %d, %v", year, week, ok)
	}
	for _, bad := range []string{"", "2026", "2026-W", "2026-W99", "xx-W1"} {
		if _, _, ok := accounting.ParseWeekKey(bad); ok {
			t.Errorf("ParseWeekKey(%q) should fail", bad)
		}
	}
}

func TestWeekStart(t *testing.T) {
	cases := []struct {
		year, week int
		want       accounting.CalendarDate
	}{
		{2025, 1, date(2024, time.December, 30)},
		{2026, 1, date(2025, time.December, 29)},
		{2023, 23, date(2023, time.June, 5)},
	}
	for _, c := range cases {
		got := accounting.WeekStart(c.year, c.week)
		if !got.Equal(c.want) {
			t.Errorf("WeekStart(%d, %d) = %s, want %s", c.year, c.week, got, c.want)
		}
		if got.Weekday() != time.Monday {
			t.Errorf("WeekStart(%d, %d) is a %v", c.year, c.week, got.Weekday())
		}
	}
}

// WeekStart is the inverse of WeekNumber for every Monday of a year.
func TestWeekStart_InvertsWeekNumber(t *testing.T) {
	d := accounting.WeekStart(2025, 1)
	for i := 0; i < 52; i++ {
		year, week := accounting.WeekNumber(d)
		if back := accounting.WeekStart(year, week); !back.Equal(d) {
			t.Fatalf("WeekStart(WeekNumber(%s)) = %s", d, back)
		}
		d = d.AddDays(7)
	}
}

// =============================================================================
// WEEK FILLING
// =============================================================================

func TestFillWeekDays_WeekdaySlots(t *testing.T) {
	// GIVEN: Week 2023-W23 (Mon 2023-06-05) with entries Mon and Wed,
	//        today is Thursday
	// WHEN:  Filling the week
	// THEN:  Thu..Mon slots appear descending, entries matched by date,
	//        Friday (future) and the empty weekend are absent

	entries := []accounting.DailyEntry{
		workEntry(date(2023, time.June, 5), "09:00", "17:00", 30),
		workEntry(date(2023, time.June, 7), "08:00", "16:00", 30),
	}
	today := date(2023, time.June, 8)

	days := accounting.FillWeekDays(entries, "2023-W23", today)
	if len(days) != 4 {
		t.Fatalf("got %d slots, want 4 (Thu, Wed, Tue, Mon)", len(days))
	}

	wantDates := []accounting.CalendarDate{
		date(2023, time.June, 8), // Thursday, no entry
		date(2023, time.June, 7),
		date(2023, time.June, 6), // Tuesday, no entry
		date(2023, time.June, 5),
	}
	for i, want := range wantDates {
		if !days[i].Date.Equal(want) {
			t.Errorf("slot %d = %s, want %s", i, days[i].Date, want)
		}
	}
	if days[0].Entry != nil || days[2].Entry != nil {
		t.Error("empty weekday slots must carry a nil entry")
	}
	if days[1].Entry == nil || days[3].Entry == nil {
		t.Error("logged days must carry their entry")
	}
}

func TestFillWeekDays_WeekendOnlyWhenLogged(t *testing.T) {
	// A logged Saturday appears even though weekends are normally hidden;
	// the unlogged Sunday stays hidden even in the past.
	entries := []accounting.DailyEntry{
		workEntry(date(2023, time.June, 10), "10:00", "12:00", 0), // Saturday
	}
	today := date(2023, time.June, 30)

	days := accounting.FillWeekDays(entries, "2023-W23", today)

	var sawSaturday, sawSunday bool
	for _, day := range days {
		switch day.Date.Weekday() {
		case time.Saturday:
			sawSaturday = true
			if day.Entry == nil {
				t.Error("Saturday slot missing its entry")
			}
		case time.Sunday:
			sawSunday = true
		}
	}
	if !sawSaturday {
		t.Error("logged Saturday must appear")
	}
	if sawSunday {
		t.Error("unlogged Sunday must never appear")
	}
}

func TestFillWeekDays_EveryEntryAppearsOnce(t *testing.T) {
	entries := []accounting.DailyEntry{
		workEntry(date(2023, time.June, 5), "09:00", "17:00", 0),
		workEntry(date(2023, time.June, 6), "09:00", "17:00", 0),
		workEntry(date(2023, time.June, 11), "09:00", "11:00", 0), // Sunday
	}
	days := accounting.FillWeekDays(entries, "2023-W23", date(2023, time.June, 30))

	seen := make(map[string]int)
	for _, day := range days {
		if day.Entry != nil {
			seen[day.Date.String()]++
		}
	}
	for _, entry := range entries {
		if seen[entry.Date.String()] != 1 {
			t.Errorf("entry %s appears %d times", entry.Date, seen[entry.Date.String()])
		}
	}
}

func TestFillWeekDays_EmptyInputEmptyOutput(t *testing.T) {
	if days := accounting.FillWeekDays(nil, "2023-W23", date(2023, time.June, 8)); len(days) != 0 {
		t.Errorf("no entries should synthesize no slots, got %d", len(days))
	}
}

func TestFillWeekDays_FutureWeek(t *testing.T) {
	// An entry planned in a future week yields only that entry's slot.
	entries := []accounting.DailyEntry{
		{Date: date(2023, time.July, 12), Status: accounting.StatusVacation},
	}
	days := accounting.FillWeekDays(entries, "2023-W28", date(2023, time.June, 8))
	if len(days) != 1 {
		t.Fatalf("got %d slots, want 1", len(days))
	}
	if !days[0].Date.Equal(date(2023, time.July, 12)) || days[0].Entry == nil {
		t.Errorf("unexpected slot %+v", days[0])
	}
}
