/*
milestone.go - Milestone countdowns and progress

PURPOSE:
  Computes countdown text and progress percentages for configured calendar
  milestones: single-date "events" and [startDate, date] "periods".

WEEK COUNTING:
  WeeksUntil is deliberately asymmetric. Looking forward, any partial week
  counts as a full week remaining (ceil), so "due this week" is exactly 0.
  Looking back, partial weeks round away from zero too (floor of the
  negative difference). A target 7 days out is 1 week; 14 days past is -2.

SELECTION:
  Display prefers the earliest currently-active period over the earliest
  merely-upcoming milestone. Milestones live in per-year buckets chosen by
  the user; no automatic cross-year lookahead occurs.
*/
package accounting

import (
	"fmt"
	"sort"
)

// =============================================================================
// WEEK COUNTDOWN
// =============================================================================

// WeeksUntil returns whole weeks from today to target: 0 for the same day,
// ceil for future targets, floor for past ones (negative).
func WeeksUntil(today, target CalendarDate) int {
	diff := DaysBetween(today, target)
	switch {
	case diff > 0:
		return (diff + 6) / 7
	case diff < 0:
		return -((-diff + 6) / 7)
	default:
		return 0
	}
}

// FormatMilestoneText renders the countdown line for a milestone.
func FormatMilestoneText(m Milestone, weeksRemaining int) string {
	plural := "weeks"
	if weeksRemaining == 1 {
		plural = "week"
	}
	if m.Type == MilestonePeriod {
		if weeksRemaining == 0 {
			return fmt.Sprintf("Final week of %s", m.Name)
		}
		return fmt.Sprintf("%d %s left in %s", weeksRemaining, plural, m.Name)
	}
	if weeksRemaining == 0 {
		return fmt.Sprintf("%s is this week", m.Name)
	}
	return fmt.Sprintf("%d %s until %s", weeksRemaining, plural, m.Name)
}

// =============================================================================
// ACTIVE PERIODS AND PROGRESS
// =============================================================================

// IsMilestoneActive reports whether today falls inside the milestone's
// span. A milestone without a start date, or with a start date after its
// end date, is never active.
func IsMilestoneActive(m Milestone, today CalendarDate) bool {
	if m.StartDate.IsZero() || m.StartDate.After(m.Date) {
		return false
	}
	return m.StartDate.BeforeOrEqual(today) && today.BeforeOrEqual(m.Date)
}

// MilestoneProgress returns the elapsed percentage of an active milestone,
// rounded and clamped to [0,100]. Both endpoints count as full days. The
// second return is false when the milestone is not active.
func MilestoneProgress(m Milestone, today CalendarDate) (int, bool) {
	if !IsMilestoneActive(m, today) {
		return 0, false
	}
	totalDays := DaysBetween(m.StartDate, m.Date) + 1
	elapsedDays := DaysBetween(m.StartDate, today) + 1
	percentage := int(float64(elapsedDays)/float64(totalDays)*100 + 0.5)
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	return percentage, true
}

// =============================================================================
// SELECTION
// =============================================================================

// FindNextMilestone returns the earliest milestone dated today or later,
// or nil when none remains.
func FindNextMilestone(milestones []Milestone, today CalendarDate) *Milestone {
	var next *Milestone
	for i := range milestones {
		m := milestones[i]
		if m.Date.Before(today) {
			continue
		}
		if next == nil || m.Date.Before(next.Date) {
			picked := m
			next = &picked
		}
	}
	return next
}

// NextMilestoneDisplay chooses the milestone to show: the earliest active
// one when any period is running, otherwise the earliest upcoming one.
// Progress is attached only for an active milestone.
func NextMilestoneDisplay(milestones []Milestone, today CalendarDate) *MilestoneDisplay {
	var chosen *Milestone
	active := false
	for i := range milestones {
		m := milestones[i]
		if !IsMilestoneActive(m, today) {
			continue
		}
		if chosen == nil || m.Date.Before(chosen.Date) {
			picked := m
			chosen = &picked
			active = true
		}
	}
	if chosen == nil {
		chosen = FindNextMilestone(milestones, today)
	}
	if chosen == nil {
		return nil
	}

	weeks := WeeksUntil(today, chosen.Date)
	display := &MilestoneDisplay{
		Milestone:      *chosen,
		WeeksRemaining: weeks,
		Text:           FormatMilestoneText(*chosen, weeks),
	}
	if active {
		if pct, ok := MilestoneProgress(*chosen, today); ok {
			display.Progress = &pct
		}
	}
	return display
}

// CollectRelevantMilestones returns the selected year's milestones dated
// today or later. Milestones are visible only in the year bucket they were
// stored under.
func CollectRelevantMilestones(yearlyMilestones map[int][]Milestone, selectedYear int, today CalendarDate) []Milestone {
	var relevant []Milestone
	for _, m := range yearlyMilestones[selectedYear] {
		if m.Date.AfterOrEqual(today) {
			relevant = append(relevant, m)
		}
	}
	return relevant
}

// SortMilestonesByDate returns a copy sorted ascending by date; the input
// slice is left untouched and equal dates keep their relative order.
func SortMilestonesByDate(milestones []Milestone) []Milestone {
	sorted := make([]Milestone, len(milestones))
	copy(sorted, milestones)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}
