package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quadra/legendre"
)

func newNodesCmd() *cobra.Command {
	var order int

	cmd := &cobra.Command{
		Use:     "nodes",
		Short:   "Print Gauss–Legendre nodes and weights on [-1, 1]",
		Example: `  quadra nodes --order 5`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ns, err := legendre.Nodes(order)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i := range ns.X {
				fmt.Fprintf(out, "%3d  %+.16f  %.16f\n", i, ns.X[i], ns.W[i])
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&order, "order", 3, "rule order n")

	return cmd
}
