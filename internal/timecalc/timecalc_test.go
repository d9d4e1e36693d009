package timecalc_test

import (
	"testing"
	"time"

	"github.com/pmcli/postmortem/internal/timecalc"
)

func TestNormalizeClock(t *testing.T) {
	tests := []struct {
		hour     int
		minute   int
		meridiem byte
		want     int
	}{
		{9, 0, 'a', 540},
		{9, 30, 'a', 570},
		{12, 0, 'a', 0},    // midnight hour
		{12, 59, 'a', 59},

		{1, 0, 'p', 780},
		{5, 30, 'p', 1050},
		{11, 59, 'p', 1439},
		{12, 0, 'p', 720},  // noon
		{12, 30, 'p', 750},
	}
	for _, tt := range tests {
		got := timecalc.NormalizeClock(tt.hour, tt.minute, tt.meridiem)
		if got != tt.want {
			t.Errorf("NormalizeClock(%d, %d, %q) = %d, want %d",
				tt.hour, tt.minute, tt.meridiem, got, tt.want)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{480, "08:00"},
		{510, "08:30"},
		{1439, "23:59"},
		{2520, "42:00"}, // multi-day totals exceed 23 hours
		{-15, "-00:15"},
		{-75, "-01:15"},
	}
	for _, tt := range tests {
		got := timecalc.FormatMinutes(tt.minutes)
		if got != tt.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestWindowDatesIncludeToday(t *testing.T) {
	anchor := time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)
	dates := timecalc.WindowDates(anchor, 3, true)

	want := []time.Time{
		time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), // month rollover
	}
	if len(dates) != len(want) {
		t.Fatalf("WindowDates length = %d, want %d", len(dates), len(want))
	}
	for i := range want {
		if !dates[i].Equal(want[i]) {
			t.Errorf("dates[%d] = %v, want %v", i, dates[i], want[i])
		}
	}
}

func TestWindowDatesSkipToday(t *testing.T) {
	anchor := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	dates := timecalc.WindowDates(anchor, 2, false)

	want := []time.Time{
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), // year rollover
		time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC),
	}
	if len(dates) != len(want) {
		t.Fatalf("WindowDates length = %d, want %d", len(dates), len(want))
	}
	for i := range want {
		if !dates[i].Equal(want[i]) {
			t.Errorf("dates[%d] = %v, want %v", i, dates[i], want[i])
		}
	}
}

func TestWindowDatesEmpty(t *testing.T) {
	anchor := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if got := timecalc.WindowDates(anchor, 0, true); len(got) != 0 {
		t.Errorf("WindowDates(days=0) = %v, want empty", got)
	}
	if got := timecalc.WindowDates(anchor, -3, false); len(got) != 0 {
		t.Errorf("WindowDates(days=-3) = %v, want empty", got)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
	b := time.Date(2026, 2, 27, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	if !timecalc.SameDay(a, b) {
		t.Error("SameDay: expected same day for a and b")
	}
	if timecalc.SameDay(a, c) {
		t.Error("SameDay: expected different day for a and c")
	}
}
