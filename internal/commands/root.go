package commands

import (
	"github.com/spf13/cobra"

	"github.com/keihi-dev/keihi/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "keihi",
		Short:   "Record store outflows and personal expenses, export them for bookkeeping",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newInitCommand(),
		newAddCommand(),
		newListCommand(),
		newDeleteCommand(),
		newClearCommand(),
		newSummaryCommand(),
		newExportCommand(),
		newCatalogCommand(),
		newHistoryCommand(),
	)

	return rootCmd
}
