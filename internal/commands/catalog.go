package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keihi-dev/keihi/internal/catalog"
	"github.com/keihi-dev/keihi/internal/export"
	"github.com/keihi-dev/keihi/internal/model"
)

func newCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List stores and expense items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "店舗:")
			for _, s := range cat.Stores() {
				fmt.Fprintf(out, "  %s\n", s)
			}

			fmt.Fprintln(out, "店舗出金の項目:")
			for _, it := range cat.StoreItems() {
				if it.IsInvoice {
					fmt.Fprintf(out, "  %s  [%s]\n", it.Name, export.InvoiceMarker)
				} else {
					fmt.Fprintf(out, "  %s\n", it.Name)
				}
			}

			fmt.Fprintln(out, "個人経費の項目:")
			for _, name := range cat.Items(model.KindPersonal) {
				fmt.Fprintf(out, "  %s\n", name)
			}
			return nil
		},
	}
}
