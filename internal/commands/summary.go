package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/keihi-dev/keihi/internal/export"
	"github.com/keihi-dev/keihi/internal/report"
)

func newSummaryCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show totals, per-store counts and the export file name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := openProject(cmd, repoDir)
			if err != nil {
				return err
			}
			defer p.Close()

			store, personal := p.ledger.StoreEntries(), p.ledger.PersonalEntries()
			s := report.Summarize(store, personal)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d件 %s\n", export.CategoryStore, s.StoreCount, report.FormatYen(s.StoreTotal))
			fmt.Fprintf(out, "%s: %d件 %s\n", export.CategoryPersonal, s.PersonalCount, report.FormatYen(s.PersonalTotal))
			fmt.Fprintf(out, "合計: %s\n", report.FormatYen(s.GrandTotal))
			fmt.Fprintf(out, "%s対象: %s\n", export.InvoiceMarker, report.FormatYen(s.InvoiceTotal))
			fmt.Fprintf(out, "平均: %s\n", report.FormatYen(s.Average))
			if s.Dominant != nil {
				fmt.Fprintf(out, "最多店舗: %s (%d件)\n", s.Dominant.Name, s.Dominant.Count)
			}
			for _, b := range s.Stores {
				fmt.Fprintf(out, "  %s  %d件  %s\n", b.Name, b.Count, report.FormatYen(b.Total))
			}

			name := export.FileName(store, personal, time.Now())
			if p.cfg.Export.Format == export.FormatXLSX {
				name = export.XLSXFileName(store, personal, time.Now())
			}
			fmt.Fprintf(out, "出力ファイル名: %s\n", name)
			return nil
		},
	}

	addRepoFlag(cmd, &repoDir)

	return cmd
}
