package main

import (
	"github.com/iwvelando/living-cost/pkg/livingcost"
	"github.com/iwvelando/living-cost/pkg/output"
	"github.com/spf13/cobra"
)

func newRegionsCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List regions and their per-person monthly cost",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputFormat, err := a.outputFormat(format)
			if err != nil {
				return err
			}
			return output.WriteRegions(cmd.OutOrStdout(), outputFormat, livingcost.Default())
		},
	}

	cmd.Flags().StringVar(&format, "output-format", "", "type of output override: pretty, csv, json")
	return cmd
}
