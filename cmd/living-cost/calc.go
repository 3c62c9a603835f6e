package main

import (
	"github.com/iwvelando/living-cost/pkg/calculator"
	"github.com/iwvelando/living-cost/pkg/livingcost"
	"github.com/iwvelando/living-cost/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCalcCmd(a *app) *cobra.Command {
	var (
		region        string
		householdSize string
		format        string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute the monthly minimum living cost for a household",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputFormat, err := a.outputFormat(format)
			if err != nil {
				return err
			}

			calc := calculator.New(livingcost.Default(), a.conf.Calculator.Options()...)
			result, err := calc.Calculate(region, householdSize)
			if err != nil {
				a.logger.Debug("calculation rejected",
					zap.String("op", "main.calc"),
					zap.String("outcome", calculator.Outcome(err)),
					zap.Error(err),
				)
				return err
			}

			return output.WriteResult(cmd.OutOrStdout(), outputFormat, result)
		},
	}

	cmd.Flags().StringVarP(&region, "region", "r", "", "region name, e.g. 台北市 (see the regions command)")
	cmd.Flags().StringVarP(&householdSize, "household-size", "n", "", "number of persons in the household")
	cmd.Flags().StringVar(&format, "output-format", "", "type of output override: pretty, csv, json")
	return cmd
}
