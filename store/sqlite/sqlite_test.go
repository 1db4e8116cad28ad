package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-northmind/worktime/accounting"
	"github.com/robert-northmind/worktime/store"
	"github.com/robert-northmind/worktime/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestStore(t *testing.T) *sqlite.Store {
	st, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func date(year int, month time.Month, day int) accounting.CalendarDate {
	return accounting.NewDate(year, month, day)
}

// =============================================================================
// USERS
// =============================================================================

func TestSQLite_UserDocumentRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	missing, err := st.GetUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)

	doc := store.UserDocument{
		UID: "u1",
		Settings: store.Settings{
			Schedules: []accounting.WorkSchedule{{
				EffectiveDate: date(2023, time.January, 1),
				WeeklyHours:   decimal.NewFromFloat(37.5),
				WorkDays:      []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
			}},
			Vacation: accounting.VacationSettings{
				YearStartMonth:   time.April,
				YearStartDay:     1,
				AllowanceDays:    decimal.NewFromInt(25),
				YearlyAllowances: map[int]decimal.Decimal{2024: decimal.NewFromInt(30)},
			},
			YearlyMilestones: map[int][]accounting.Milestone{
				2025: {{
					ID:        "q2",
					Name:      "Q2",
					Type:      accounting.MilestonePeriod,
					StartDate: date(2025, time.April, 1),
					Date:      date(2025, time.June, 30),
				}},
			},
			AbsenceTypes: []store.AbsenceType{{ID: "parental", Label: "Parental leave"}},
			TimeFormat:   "decimal",
		},
	}
	require.NoError(t, st.SaveUser(ctx, doc))

	loaded, err := st.GetUser(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, loaded)

	require.Len(t, loaded.Settings.Schedules, 1)
	assert.True(t, loaded.Settings.Schedules[0].WeeklyHours.Equal(decimal.NewFromFloat(37.5)))
	assert.True(t, loaded.Settings.Vacation.YearlyAllowances[2024].Equal(decimal.NewFromInt(30)))
	require.Len(t, loaded.Settings.YearlyMilestones[2025], 1)
	assert.Equal(t, "Q2", loaded.Settings.YearlyMilestones[2025][0].Name)
	assert.Equal(t, "decimal", loaded.Settings.TimeFormat)
}

func TestSQLite_SaveUserReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	require.NoError(t, st.SaveUser(ctx, store.UserDocument{
		UID:      "u1",
		Settings: store.Settings{TimeFormat: "hhmm"},
	}))
	require.NoError(t, st.SaveUser(ctx, store.UserDocument{
		UID:      "u1",
		Settings: store.Settings{ColorTheme: "dark"},
	}))

	loaded, err := st.GetUser(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Empty(t, loaded.Settings.TimeFormat, "old settings are not merged")
	assert.Equal(t, "dark", loaded.Settings.ColorTheme)
}

// =============================================================================
// ENTRIES
// =============================================================================

func TestSQLite_EntryRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	saved := accounting.DailyEntry{
		Date:         date(2023, time.June, 5),
		StartTime:    "09:00",
		EndTime:      "17:00",
		LunchMinutes: 30,
		ExtraHours:   decimal.NewFromFloat(1.5),
		Status:       accounting.StatusWork,
		Notes:        "release day",
	}
	require.NoError(t, st.SaveEntry(ctx, "u1", saved))

	got, err := st.GetEntries(ctx, "u1", date(2023, time.June, 1), date(2023, time.June, 30))
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "2023-06-05", got[0].Date.String())
	assert.Equal(t, "09:00", got[0].StartTime)
	assert.Equal(t, "17:00", got[0].EndTime)
	assert.Equal(t, 30, got[0].LunchMinutes)
	assert.True(t, got[0].ExtraHours.Equal(decimal.NewFromFloat(1.5)), "extra hours survive as exact decimals")
	assert.Equal(t, accounting.StatusWork, got[0].Status)
	assert.Equal(t, "release day", got[0].Notes)
}

func TestSQLite_RangeFilterAndIsolation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	for _, d := range []accounting.CalendarDate{
		date(2023, time.May, 31),
		date(2023, time.June, 1),
		date(2023, time.June, 30),
		date(2023, time.July, 1),
	} {
		require.NoError(t, st.SaveEntry(ctx, "u1", accounting.DailyEntry{Date: d, Status: accounting.StatusWork}))
	}
	require.NoError(t, st.SaveEntry(ctx, "u2", accounting.DailyEntry{
		Date: date(2023, time.June, 15), Status: accounting.StatusWork,
	}))

	got, err := st.GetEntries(ctx, "u1", date(2023, time.June, 1), date(2023, time.June, 30))
	require.NoError(t, err)
	require.Len(t, got, 2, "range is inclusive and scoped to the uid")
	assert.Equal(t, "2023-06-01", got[0].Date.String())
	assert.Equal(t, "2023-06-30", got[1].Date.String())
}

func TestSQLite_UpsertByDate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	d := date(2023, time.June, 5)

	require.NoError(t, st.SaveEntry(ctx, "u1", accounting.DailyEntry{
		Date: d, StartTime: "09:00", Status: accounting.StatusWork,
	}))
	require.NoError(t, st.SaveEntry(ctx, "u1", accounting.DailyEntry{
		Date: d, Status: accounting.StatusSick,
	}))

	got, err := st.GetEntries(ctx, "u1", d, d)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, accounting.StatusSick, got[0].Status)
}

func TestSQLite_BatchSaveAndDelete(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	batch := []accounting.DailyEntry{
		{Date: date(2023, time.June, 5), Status: accounting.StatusWork, StartTime: "09:00", EndTime: "17:00"},
		{Date: date(2023, time.June, 6), Status: accounting.StatusVacation},
		{Date: date(2023, time.June, 7), Status: accounting.StatusSick},
	}
	require.NoError(t, st.BatchSaveEntries(ctx, "u1", batch))

	got, err := st.GetEntries(ctx, "u1", date(2023, time.June, 1), date(2023, time.June, 30))
	require.NoError(t, err)
	assert.Len(t, got, 3)

	require.NoError(t, st.BatchDeleteEntries(ctx, "u1", []accounting.CalendarDate{
		date(2023, time.June, 5),
		date(2023, time.June, 7),
	}))

	got, err = st.GetEntries(ctx, "u1", date(2023, time.June, 1), date(2023, time.June, 30))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, accounting.StatusVacation, got[0].Status)
}
