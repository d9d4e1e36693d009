package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pmcli/postmortem/internal/model"
	"github.com/pmcli/postmortem/internal/report"
	"github.com/pmcli/postmortem/internal/timecalc"
	"github.com/pmcli/postmortem/internal/tui"
)

var (
	viewDays          int
	viewSkipToday     bool
	viewDate          string
	viewNoInteractive bool
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse the window's reports interactively",
	Long: `Open an interactive browser over the window's daily reports.

Falls back to plain text output when stdout is not a terminal or
--no-interactive is set (useful for piping).`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	viewCmd.Flags().IntVar(&viewDays, "days", 0, "Window size in days (default from config)")
	viewCmd.Flags().BoolVar(&viewSkipToday, "skip-today", false, "Exclude today; examine the N days before it")
	viewCmd.Flags().StringVar(&viewDate, "date", "", "Anchor date (YYYY-MM-DD); defaults to today")
	viewCmd.Flags().BoolVar(&viewNoInteractive, "no-interactive", false, "Plain text output")
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, store := mustLoadConfig()
	days := viewDays
	if days == 0 {
		days = cfg.Days
	}
	anchor := parseAnchor(viewDate)

	var tuiDays []tui.Day
	sum := model.WindowSummary{Days: days}
	issues := map[string]struct{}{}
	var issueOrder []string
	for _, day := range timecalc.WindowDates(anchor, days, !viewSkipToday) {
		text, ok, err := store.ReadDay(day)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		ds := model.DaySummary{Date: day, Present: ok}
		if ok {
			ds.Minutes = report.DayMinutes(text)
			ds.Issues = report.DayIssues(text)
			sum.TotalMinutes += ds.Minutes
			for _, id := range ds.Issues {
				if _, seen := issues[id]; !seen {
					issues[id] = struct{}{}
					issueOrder = append(issueOrder, id)
				}
			}
		}
		sum.PerDay = append(sum.PerDay, ds)
		tuiDays = append(tuiDays, tui.Day{Summary: ds, Text: text})
	}
	sum.Issues = issueOrder

	isTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if viewNoInteractive || !isTTY {
		fmt.Print(report.RenderHours(sum, true))
		fmt.Print(report.RenderIssues(sum))
		return nil
	}

	if err := tui.Run(tuiDays, sum.TotalMinutes, sum.Issues); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return nil
}
