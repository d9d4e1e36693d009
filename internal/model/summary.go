package model

import "time"

// DaySummary holds the derived facts for one calendar day's report.
// Present is false when no report exists for the date; Minutes and Issues
// are then zero-valued. Minutes is signed: breaks subtract unconditionally
// and are not clamped at zero.
type DaySummary struct {
	Date    time.Time
	Present bool
	Minutes int
	Issues  []string
}

// WindowSummary is the fold of zero or more day summaries over a sliding
// window of calendar days, most recent day first.
type WindowSummary struct {
	Days         int
	TotalMinutes int
	// Issues holds every distinct identifier referenced in the window,
	// in first-seen iteration order.
	Issues []string
	// PerDay keeps one entry per examined date, absent days included,
	// for diagnostic output.
	PerDay []DaySummary
}
