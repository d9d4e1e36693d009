// Package report computes worked minutes and referenced issues from daily
// postmortem reports, per day and folded over a multi-day window.
package report

import (
	"strings"
	"time"

	"github.com/pmcli/postmortem/internal/model"
	"github.com/pmcli/postmortem/internal/parse"
	"github.com/pmcli/postmortem/internal/timecalc"
)

// Store resolves a calendar date to the raw text of that day's report.
// ok is false when no report exists for the date; that is not an error.
type Store interface {
	ReadDay(day time.Time) (text string, ok bool, err error)
}

// DayMinutes computes the net minutes worked recorded in one report.
// Each stop line pairs with the most recent start line; breaks subtract
// unconditionally. The result is signed: a break-only report is negative.
func DayMinutes(text string) int {
	pendingStart := -1
	minutes := 0
	for _, raw := range strings.Split(text, "\n") {
		line := parse.Classify(raw)
		switch line.Kind {
		case parse.Start:
			// An unmatched earlier start is silently overwritten.
			pendingStart = timecalc.NormalizeClock(line.Hour, line.Minute, line.Meridiem)
		case parse.Stop:
			// A stop with no pending start is dropped; the legacy
			// stop-minus-midnight arithmetic was never intentional.
			if pendingStart < 0 {
				continue
			}
			minutes += timecalc.NormalizeClock(line.Hour, line.Minute, line.Meridiem) - pendingStart
			pendingStart = -1
		case parse.Break:
			minutes -= line.BreakMinutes
		}
	}
	return minutes
}

// DayIssues returns every distinct issue identifier referenced in one
// report, in first-seen order. References are scanned on every line,
// independent of structural classification.
func DayIssues(text string) []string {
	set := newOrderedSet()
	for _, raw := range strings.Split(text, "\n") {
		for _, id := range parse.IssueRefs(raw) {
			set.Add(id)
		}
	}
	return set.Values()
}

// Aggregator folds per-day results over a window of calendar days.
type Aggregator struct {
	Store Store
}

// Hours sums the minutes worked across the window anchored at anchor,
// most recent day first. Absent days contribute nothing and are recorded
// as not-present in PerDay.
func (a Aggregator) Hours(anchor time.Time, days int, includeToday bool) (model.WindowSummary, error) {
	sum := model.WindowSummary{Days: days}
	for _, day := range timecalc.WindowDates(anchor, days, includeToday) {
		text, ok, err := a.Store.ReadDay(day)
		if err != nil {
			return model.WindowSummary{}, err
		}
		ds := model.DaySummary{Date: day, Present: ok}
		if ok {
			ds.Minutes = DayMinutes(text)
			sum.TotalMinutes += ds.Minutes
		}
		sum.PerDay = append(sum.PerDay, ds)
	}
	return sum, nil
}

// Issues collects the distinct issue identifiers referenced across the
// window, deduplicated globally in first-seen iteration order.
func (a Aggregator) Issues(anchor time.Time, days int, includeToday bool) (model.WindowSummary, error) {
	sum := model.WindowSummary{Days: days}
	set := newOrderedSet()
	for _, day := range timecalc.WindowDates(anchor, days, includeToday) {
		text, ok, err := a.Store.ReadDay(day)
		if err != nil {
			return model.WindowSummary{}, err
		}
		ds := model.DaySummary{Date: day, Present: ok}
		if ok {
			ds.Issues = DayIssues(text)
			for _, id := range ds.Issues {
				set.Add(id)
			}
		}
		sum.PerDay = append(sum.PerDay, ds)
	}
	sum.Issues = set.Values()
	return sum, nil
}

// orderedSet is a string set that remembers insertion order.
type orderedSet struct {
	seen  map[string]struct{}
	order []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: map[string]struct{}{}}
}

func (s *orderedSet) Add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.order = append(s.order, v)
}

func (s *orderedSet) Values() []string {
	return s.order
}
