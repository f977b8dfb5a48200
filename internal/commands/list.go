package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/keihi-dev/keihi/internal/export"
	"github.com/keihi-dev/keihi/internal/id"
	"github.com/keihi-dev/keihi/internal/model"
	"github.com/keihi-dev/keihi/internal/report"
)

func newListCommand() *cobra.Command {
	var repoDir string
	var kindName string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded entries, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind model.Kind
			if kindName != "" {
				k, err := model.ParseKind(kindName)
				if err != nil {
					return err
				}
				kind = k
			}

			p, _, err := openProject(cmd, repoDir)
			if err != nil {
				return err
			}
			defer p.Close()

			out := cmd.OutOrStdout()
			store, personal := p.ledger.StoreEntries(), p.ledger.PersonalEntries()
			if kind == "" || kind == model.KindStore {
				fmt.Fprintf(out, "%s (%d件)\n", export.CategoryStore, len(store))
				for _, e := range store {
					marker := ""
					if e.IsInvoice {
						marker = export.InvoiceMarker
					}
					printEntry(out, e.Entry, e.Store, marker)
				}
			}
			if kind == "" || kind == model.KindPersonal {
				fmt.Fprintf(out, "%s (%d件)\n", export.CategoryPersonal, len(personal))
				for _, e := range personal {
					printEntry(out, e.Entry, p.cfg.Ledger.Claimant, "")
				}
			}

			fmt.Fprintf(out, "合計 %s (店舗 %s / 個人 %s)\n",
				report.FormatYen(report.GrandTotal(store, personal)),
				report.FormatYen(report.TotalOf(store)),
				report.FormatYen(report.TotalOf(personal)))
			return nil
		},
	}

	addRepoFlag(cmd, &repoDir)
	cmd.Flags().StringVar(&kindName, "kind", "", "only list one kind (store or personal)")

	return cmd
}

func printEntry(w io.Writer, e model.Entry, label, marker string) {
	line := fmt.Sprintf("  %-8s  %s  %s  %s", id.Short(e.ID), label, e.DisplayItem, report.FormatYen(e.Amount))
	if e.Memo != "" {
		line += fmt.Sprintf("  (%s)", e.Memo)
	}
	if marker != "" {
		line += "  [" + marker + "]"
	}
	fmt.Fprintln(w, line)
}
