package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/keihi-dev/keihi/internal/activity"
	"github.com/keihi-dev/keihi/internal/id"
	"github.com/keihi-dev/keihi/internal/report"
)

func newHistoryCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the activity log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := filepath.Abs(repoDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			if _, err := loadConfig(root); err != nil {
				return err
			}

			entries, err := activity.Read(root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "no activity yet")
				return nil
			}
			for _, e := range entries {
				line := fmt.Sprintf("%s  %-6s", e.Timestamp.Local().Format(time.DateTime), e.Action)
				if e.Kind != "" {
					line += "  " + e.Kind
				}
				if e.EntryID != "" {
					line += "  " + id.Short(id.ID(e.EntryID))
				}
				line += "  " + report.FormatYen(e.Amount)
				if e.Details != "" {
					line += "  " + e.Details
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	addRepoFlag(cmd, &repoDir)

	return cmd
}
