package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [date]",
	Short: "Open a day's report in the editor",
	Long: `Open the report for the given date (YYYY-MM-DD, default today) in the
configured editor. The report is created from the template if absent.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg, store := mustLoadConfig()

	day := time.Now()
	if len(args) > 0 {
		var err error
		day, err = time.Parse("2006-01-02", args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid date %q: %v\n", args[0], err)
			os.Exit(1)
		}
	}

	path, _, err := store.CreateDay(day)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := openInEditor(cfg.EditorCommand(), path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return nil
}

// openInEditor runs the editor attached to the current terminal.
func openInEditor(editor, path string) error {
	c := exec.Command(editor, path)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("running %s: %w", editor, err)
	}
	return nil
}
