package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var todayEdit bool

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Create today's report from the template",
	Args:  cobra.NoArgs,
	RunE:  runToday,
}

func init() {
	todayCmd.Flags().BoolVar(&todayEdit, "edit", false, "Open the report in the editor after creating it")
}

func runToday(cmd *cobra.Command, args []string) error {
	cfg, store := mustLoadConfig()

	path, created, err := store.CreateDay(time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if created {
		fmt.Printf("Created %s\n", path)
	} else {
		fmt.Printf("Already exists: %s\n", path)
	}

	if todayEdit {
		if err := openInEditor(cfg.EditorCommand(), path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	return nil
}
