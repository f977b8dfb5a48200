package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/keihi-dev/keihi/internal/activity"
	"github.com/keihi-dev/keihi/internal/report"
)

// ErrNotConfirmed is returned by clear without --yes.
var ErrNotConfirmed = errors.New("refusing to delete all entries without --yes")

func newClearCommand() *cobra.Command {
	var repoDir string
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every entry of both kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return ErrNotConfirmed
			}

			p, ctx, err := openProject(cmd, repoDir)
			if err != nil {
				return err
			}
			defer p.Close()

			n := p.ledger.Len()
			total := report.GrandTotal(p.ledger.StoreEntries(), p.ledger.PersonalEntries())
			if err := p.ledger.ClearAll(ctx); err != nil {
				return err
			}

			p.log.Info().Int("entries", n).Int64("amount", total).Msg("all entries cleared")
			if err := activity.Append(p.root, activity.Entry{
				Timestamp: nowUTC(),
				Action:    activity.ActionClear,
				Amount:    total,
				Details:   fmt.Sprintf("%d件", n),
			}); err != nil {
				p.log.Warn().Err(err).Msg("writing activity log")
			}
			p.snapshot(ctx, fmt.Sprintf("clear: %d entries", n))

			fmt.Fprintln(cmd.OutOrStdout(), noticeCleared)
			return nil
		},
	}

	addRepoFlag(cmd, &repoDir)
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deleting all entries")

	return cmd
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
