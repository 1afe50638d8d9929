package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quadra/catalog"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the named integrands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tINTERVAL\tEXACT\tDESCRIPTION")
			for _, e := range catalog.All() {
				exact := "-"
				if e.HasExact {
					exact = fmt.Sprintf("%.15g", e.Exact)
				}
				fmt.Fprintf(tw, "%s\t[%g, %g]\t%s\t%s\n", e.Name, e.A, e.B, exact, e.Description)
			}

			return tw.Flush()
		},
	}
}
