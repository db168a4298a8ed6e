package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rdeusser/upset/chartfile"
	"github.com/rdeusser/upset/upset"
)

func exportCmd(o *options) *cobra.Command {
	var (
		validate bool
		output   string
	)

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Print the transport form of a chart as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chart, err := chartfile.Load(args[0])
			if err != nil {
				return err
			}

			if validate {
				if err := upset.Validate(chart); err != nil {
					o.logger.Error("chart is invalid", zap.String("file", args[0]), zap.Error(err))
					return err
				}
			}

			return o.writeChart(output, chart)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	cmd.Flags().BoolVar(&validate, "validate", false, "refuse to export an inconsistent chart")

	return cmd
}
