package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pmcli/postmortem/internal/report"
)

var (
	hoursDays      int
	hoursSkipToday bool
	hoursDate      string
	hoursVerbose   bool
)

var hoursCmd = &cobra.Command{
	Use:   "hours",
	Short: "Total hours worked over the past days",
	Args:  cobra.NoArgs,
	RunE:  runHours,
}

func init() {
	hoursCmd.Flags().IntVar(&hoursDays, "days", 0, "Window size in days (default from config)")
	hoursCmd.Flags().BoolVar(&hoursSkipToday, "skip-today", false, "Exclude today; examine the N days before it")
	hoursCmd.Flags().StringVar(&hoursDate, "date", "", "Anchor date (YYYY-MM-DD); defaults to today")
	hoursCmd.Flags().BoolVar(&hoursVerbose, "verbose", false, "Print one line per examined day")
}

func runHours(cmd *cobra.Command, args []string) error {
	cfg, store := mustLoadConfig()
	days := hoursDays
	if days == 0 {
		days = cfg.Days
	}
	anchor := parseAnchor(hoursDate)

	agg := report.Aggregator{Store: store}
	sum, err := agg.Hours(anchor, days, !hoursSkipToday)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Print(report.RenderHours(sum, hoursVerbose))
	return nil
}
