package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/quadra/internal/config"
	"github.com/katalvlaran/quadra/internal/logging"
)

// app carries the state shared by all subcommands once the root
// PersistentPreRunE has run.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "quadra",
		Short: "Numerical integration with Gauss, Simpson, trapezoid and Romberg engines",
		Long: `quadra integrates named one-dimensional integrands over a finite interval.

Settings come from flags, QUADRA_* environment variables and an optional
YAML file, in that order of precedence.

Examples:
  # Romberg on sin²(√(100x)) to 1e-6
  quadra integrate --integrand sinsqrt --method romberg --epsilon 1e-6

  # Simpson with a fixed 10 slices
  quadra integrate --integrand poly --method simpson --slices 10

  # All adaptive engines side by side
  quadra compare --integrand gaussian --epsilon 1e-8`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format (console or json)")

	root.AddCommand(newIntegrateCmd(a))
	root.AddCommand(newCompareCmd(a))
	root.AddCommand(newNodesCmd())
	root.AddCommand(newCatalogCmd())

	return root
}

// setup loads the configuration and builds the logger on stderr.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}

	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger.Named("quadra")

	return nil
}
