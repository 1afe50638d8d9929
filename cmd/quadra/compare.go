package main

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quadra/catalog"
	"github.com/katalvlaran/quadra/core"
	"github.com/katalvlaran/quadra/internal/config"
	"github.com/katalvlaran/quadra/internal/logging"
)

func newCompareCmd(a *app) *cobra.Command {
	var (
		integrand string
		epsilon   float64
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every adaptive engine on one integrand",
		Long: `Run the Gauss, Simpson, trapezoid and Romberg adaptive engines with the
same tolerance and print their estimates, cost and status side by side.

Every engine starts from its own default resolution and cap: the configured
base and max are not applied here, since a slice count for one engine is
an order for Gauss and must be even for Simpson.

Examples:
  quadra compare --integrand sinsqrt --epsilon 1e-6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("integrand") {
				cfg.Integrand = integrand
			}
			if cmd.Flags().Changed("epsilon") {
				cfg.Epsilon = epsilon
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			entry, err := catalog.Lookup(cfg.Integrand)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "METHOD\tVALUE\tSTATUS\tSLICES\tEVALS\tERROR EST.\tABS ERROR")
			for _, method := range config.Methods {
				res, err := runAdaptive(method, entry.Func, entry.A, entry.B, cfg.Epsilon, core.WithContext(cmd.Context()))
				if err != nil {
					return fmt.Errorf("%s: %w", method, err)
				}
				logging.LogResult(a.logger, method, res)

				actual := "-"
				if entry.HasExact {
					actual = fmt.Sprintf("%.3g", math.Abs(res.Value-entry.Exact))
				}
				fmt.Fprintf(tw, "%s\t%.15g\t%s\t%d\t%d\t%.3g\t%s\n",
					method, res.Value, res.Status, res.Slices, res.Evaluations, res.ErrorEstimate, actual)
			}

			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&integrand, "integrand", "", "catalog integrand name")
	cmd.Flags().Float64Var(&epsilon, "epsilon", 0, "tolerance for every engine")

	return cmd
}
