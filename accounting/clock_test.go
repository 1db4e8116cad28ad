package accounting_test

import (
	"fmt"
	"testing"

	"github.com/robert-northmind/worktime/accounting"
)

func TestTimeToMinutes(t *testing.T) {
	cases := []struct {
		clock string
		want  int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"17:30", 1050},
		{"23:59", 1439},
		{"9:05", 545}, // unpadded hours still parse
		{"", 0},
		{"garbage", 0},
		{"12", 0},
		{"ab:cd", 0},
	}
	for _, c := range cases {
		if got := accounting.TimeToMinutes(c.clock); got != c.want {
			t.Errorf("TimeToMinutes(%q) = %d, want %d", c.clock, got, c.want)
		}
	}
}

func TestMinutesToTime(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{1050, "17:30"},
		{-30, "00:00"}, // negative clamps to zero
		{1500, "25:00"}, // hours carry past 24
	}
	for _, c := range cases {
		if got := accounting.MinutesToTime(c.minutes); got != c.want {
			t.Errorf("MinutesToTime(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}
}

func TestClockRoundTrip(t *testing.T) {
	// Every canonical zero-padded HH:MM survives a round trip.
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m += 7 {
			clock := fmt.Sprintf("%02d:%02d", h, m)
			if got := accounting.MinutesToTime(accounting.TimeToMinutes(clock)); got != clock {
				t.Fatalf("round trip of %q produced %q", clock, got)
			}
		}
	}
}

func TestDuration(t *testing.T) {
	if got := accounting.Duration("09:00", "17:00"); got != 480 {
		t.Errorf("Duration(09:00, 17:00) = %d, want 480", got)
	}
	// End before start stays negative; the engine does not normalize
	// overnight spans.
	if got := accounting.Duration("22:00", "06:00"); got != -960 {
		t.Errorf("Duration(22:00, 06:00) = %d, want -960", got)
	}
}

func TestFormatHours(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "0:00"},
		{30, "0:30"},
		{480, "8:00"},
		{510, "8:30"},
		{-45, "-0:45"},
		{-480, "-8:00"},
		{-510, "-8:30"},
		{2430, "40:30"},
	}
	for _, c := range cases {
		if got := accounting.FormatHours(c.minutes); got != c.want {
			t.Errorf("FormatHours(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}
}
