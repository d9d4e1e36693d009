package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pmcli/postmortem/internal/config"
	"github.com/pmcli/postmortem/internal/storage"
	"github.com/pmcli/postmortem/internal/timecalc"
)

var rootCmd = &cobra.Command{
	Use:   "pm",
	Short: "pm – daily postmortem log analyzer",
	Long: `pm maintains a directory of daily free-text postmortem reports and
computes worked hours and referenced issues over a sliding window of days.
Reports live under <root>/<year>/<month>/Daily Postmortem-<date>.txt.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(hoursCmd)
	rootCmd.AddCommand(issuesCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(mailCmd)
	rootCmd.AddCommand(viewCmd)
}

// mustLoadConfig loads the config and the file store, exiting on failure.
func mustLoadConfig() (config.Config, storage.FileStore) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return cfg, storage.FileStore{Root: cfg.Root}
}

// parseAnchor resolves the --date flag; empty means today.
func parseAnchor(value string) time.Time {
	if value == "" {
		return timecalc.StartOfDay(time.Now())
	}
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --date value %q: %v\n", value, err)
		os.Exit(1)
	}
	return d
}
