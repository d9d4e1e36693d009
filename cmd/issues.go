package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pmcli/postmortem/internal/report"
)

var (
	issuesDays      int
	issuesSkipToday bool
	issuesDate      string
)

var issuesCmd = &cobra.Command{
	Use:   "issues",
	Short: "Distinct issues referenced over the past days",
	Args:  cobra.NoArgs,
	RunE:  runIssues,
}

func init() {
	issuesCmd.Flags().IntVar(&issuesDays, "days", 0, "Window size in days (default from config)")
	issuesCmd.Flags().BoolVar(&issuesSkipToday, "skip-today", false, "Exclude today; examine the N days before it")
	issuesCmd.Flags().StringVar(&issuesDate, "date", "", "Anchor date (YYYY-MM-DD); defaults to today")
}

func runIssues(cmd *cobra.Command, args []string) error {
	cfg, store := mustLoadConfig()
	days := issuesDays
	if days == 0 {
		days = cfg.Days
	}
	anchor := parseAnchor(issuesDate)

	agg := report.Aggregator{Store: store}
	sum, err := agg.Issues(anchor, days, !issuesSkipToday)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Print(report.RenderIssues(sum))
	return nil
}
