package timecalc

import (
	"fmt"
	"time"
)

// NormalizeClock converts a 12-hour clock reading into minutes since
// midnight. hour is 1..12, minute 0..59, meridiem 'a' or 'p'; callers
// guarantee the ranges via their pattern match. Hour 12 is the midnight
// hour with 'a' and the noon hour with 'p'.
func NormalizeClock(hour, minute int, meridiem byte) int {
	if meridiem == 'a' {
		if hour == 12 {
			hour = 0
		}
	} else if hour != 12 {
		hour += 12
	}
	return hour*60 + minute
}

// FormatMinutes formats a minute count as zero-padded HH:MM. Hours may
// exceed 23; negative values keep a single leading minus.
func FormatMinutes(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, minutes/60, minutes%60)
}

// WindowDates enumerates the calendar dates of an aggregation window,
// most recent first. With includeToday the offsets are 0..days-1,
// otherwise 1..days. days <= 0 yields an empty window.
func WindowDates(anchor time.Time, days int, includeToday bool) []time.Time {
	if days <= 0 {
		return nil
	}
	start, end := 0, days-1
	if !includeToday {
		start, end = 1, days
	}
	dates := make([]time.Time, 0, days)
	for i := start; i <= end; i++ {
		dates = append(dates, StartOfDay(anchor.AddDate(0, 0, -i)))
	}
	return dates
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
