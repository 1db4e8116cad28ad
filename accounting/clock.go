/*
clock.go - Minute arithmetic and time-of-day formatting

PURPOSE:
  Converts between "HH:MM" clock strings and integer minutes, and formats
  minute balances for display. These are the leaves of the engine; every
  other calculation is expressed in integer minutes.

TOTALITY:
  All functions here are total. Malformed or empty clock strings degrade to
  0 minutes instead of returning an error - a wrong-looking number is the
  failure mode, never a panic or an error value.

SEE ALSO:
  - balance.go: Uses Duration and FormatHours for daily balances
  - stats.go: Uses FormatHours for aggregate display strings
*/
package accounting

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeToMinutes parses a "HH:MM" clock string into minutes since midnight.
// Empty or malformed input yields 0.
func TimeToMinutes(clock string) int {
	h, m, ok := strings.Cut(clock, ":")
	if !ok {
		return 0
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return hours*60 + minutes
}

// MinutesToTime renders minutes since midnight as a zero-padded "HH:MM".
// Negative input clamps to "00:00"; minutes past 59 carry into hours.
func MinutesToTime(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Duration returns end minus start in minutes. The result is negative when
// end precedes start; the engine deliberately does not normalize overnight
// spans (see DESIGN.md).
func Duration(start, end string) int {
	return TimeToMinutes(end) - TimeToMinutes(start)
}

// FormatHours renders a minute balance as "[-]H:MM": sign as a single
// leading minus, hours unpadded, minutes zero-padded from the absolute
// value. FormatHours(-45) == "-0:45".
func FormatHours(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%d:%02d", sign, minutes/60, minutes%60)
}
