package report

import (
	"fmt"
	"strings"

	"github.com/pmcli/postmortem/internal/model"
	"github.com/pmcli/postmortem/internal/timecalc"
)

// RenderHours formats a window's hours summary. With verbose, one line per
// examined day precedes the total; absent days render as "n/a".
func RenderHours(sum model.WindowSummary, verbose bool) string {
	var b strings.Builder
	if verbose {
		for _, d := range sum.PerDay {
			if d.Present {
				fmt.Fprintf(&b, "%s: %s\n", d.Date.Format("2006-01-02"), timecalc.FormatMinutes(d.Minutes))
			} else {
				fmt.Fprintf(&b, "%s: n/a\n", d.Date.Format("2006-01-02"))
			}
		}
	}
	fmt.Fprintf(&b, "Total Hours Worked (past %d days): %s\n",
		sum.Days, timecalc.FormatMinutes(sum.TotalMinutes))
	return b.String()
}

// RenderIssues formats a window's issue summary: a header followed by one
// indented line per distinct identifier in first-seen order.
func RenderIssues(sum model.WindowSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Issues Worked On (past %d days):\n", sum.Days)
	for _, id := range sum.Issues {
		fmt.Fprintf(&b, "  #%s\n", id)
	}
	return b.String()
}
