package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pmcli/postmortem/internal/msgraph"
	"github.com/pmcli/postmortem/internal/report"
)

var (
	mailDays      int
	mailSkipToday bool
	mailDate      string
	mailTo        string
	mailDryRun    bool
)

var mailCmd = &cobra.Command{
	Use:   "mail",
	Short: "Mail the hours and issues report",
	Long: `Render the hours and issues report for the window and send it from the
signed-in Microsoft account via the Graph API. Authentication uses the
OAuth2 device code flow; tokens are cached under the config directory.`,
	Args: cobra.NoArgs,
	RunE: runMail,
}

func init() {
	mailCmd.Flags().IntVar(&mailDays, "days", 0, "Window size in days (default from config)")
	mailCmd.Flags().BoolVar(&mailSkipToday, "skip-today", false, "Exclude today; examine the N days before it")
	mailCmd.Flags().StringVar(&mailDate, "date", "", "Anchor date (YYYY-MM-DD); defaults to today")
	mailCmd.Flags().StringVar(&mailTo, "to", "", "Recipient address (default from config)")
	mailCmd.Flags().BoolVar(&mailDryRun, "dry-run", false, "Print the message instead of sending")
}

func runMail(cmd *cobra.Command, args []string) error {
	cfg, store := mustLoadConfig()
	days := mailDays
	if days == 0 {
		days = cfg.Days
	}
	anchor := parseAnchor(mailDate)

	to := mailTo
	if to == "" {
		to = cfg.Mail.Recipient
	}
	if to == "" {
		fmt.Fprintln(os.Stderr, "no recipient: set --to or mail.recipient in the config")
		os.Exit(1)
	}

	agg := report.Aggregator{Store: store}
	hours, err := agg.Hours(anchor, days, !mailSkipToday)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	issues, err := agg.Issues(anchor, days, !mailSkipToday)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	body := report.RenderHours(hours, true) + "\n" + report.RenderIssues(issues)

	if mailDryRun {
		fmt.Printf("To: %s\nSubject: %s\n\n%s", to, cfg.Mail.Subject, body)
		return nil
	}

	ctx := context.Background()

	tok, ocfg, err := msgraph.Authenticate(ctx, cfg.Mail.TenantID, cfg.Mail.ClientID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Authentication failed: %v\n", err)
		os.Exit(1)
	}

	client := msgraph.NewClient(ctx, tok, ocfg)
	msg := msgraph.NewTextMessage(to, cfg.Mail.Subject, body)
	if err := client.SendMail(ctx, msg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to send mail: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Report sent to %s\n", to)
	return nil
}
