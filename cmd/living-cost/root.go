package main

import (
	"fmt"

	"github.com/iwvelando/living-cost/internal/config"
	"github.com/iwvelando/living-cost/internal/logging"
	"github.com/iwvelando/living-cost/pkg/constants"
	"github.com/iwvelando/living-cost/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by subcommands once the root has initialized.
type app struct {
	configPath string
	logLevel   string

	conf   *config.Configuration
	logger *zap.Logger
}

func newRootCmd(version string) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "living-cost",
		Short: "Calculate Taiwan's monthly minimum living cost for a household",
		Long: `living-cost multiplies the government-published per-person minimum
living cost (最低生活費) of a region by a household size.

Examples:
  living-cost calc --region 台北市 --household-size 3
  living-cost regions --output-format csv
  living-cost serve --server-config server-config.yaml`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(newCalcCmd(a))
	rootCmd.AddCommand(newRegionsCmd(a))
	rootCmd.AddCommand(newServeCmd(a, version))
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "living-cost version %s\n", version)
		},
	})

	return rootCmd
}

func (a *app) init() error {
	conf, err := config.LoadConfiguration(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", a.configPath, err)
	}
	a.conf = conf

	logger, err := logging.NewLogger(conf.Logging, a.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

// outputFormat resolves the format: flag, then config, then pretty.
func (a *app) outputFormat(flagValue string) (string, error) {
	format := a.conf.Output.Format
	if flagValue != "" {
		format = flagValue
	}
	if format == "" {
		format = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(format); err != nil {
		return "", err
	}
	return format, nil
}
