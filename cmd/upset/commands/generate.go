package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rdeusser/upset/chartfile"
	"github.com/rdeusser/upset/upset"
)

func generateCmd(o *options) *cobra.Command {
	var (
		setType = upset.SetTypeIntersection
		opts    upset.GenerateOptions
		output  string
	)

	cmd := &cobra.Command{
		Use:   "generate FILE",
		Short: "Replace the combinations of a chart with generated ones",
		Long: `Computes the combinations of the chart's sets and prints the resulting
chart as JSON. Queries that referred to a combination which no longer
exists are dropped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chart, err := chartfile.Load(args[0])
			if err != nil {
				return err
			}

			combinations, err := upset.GenerateCombinations(setType, chart.Sets(), opts)
			if err != nil {
				return err
			}

			o.logger.Debug("generated combinations",
				zap.Stringer("type", setType),
				zap.Int("count", len(combinations)),
			)

			out := upset.NewChart[string]()
			out.FontSizes = *chart.FontSizes.Copy()

			if err := out.AddSets(chart.Sets()...); err != nil {
				return err
			}

			if err := out.AddCombinations(combinations...); err != nil {
				return err
			}

			for _, q := range chart.Queries() {
				if err := out.AddQueries(q); err != nil {
					o.logger.Warn("dropping query", zap.String("query", q.Name()), zap.Error(err))
				}
			}

			return o.writeChart(output, out)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	cmd.Flags().Var(&setType, "type", "combination type (intersection, distinctIntersection, union)")
	cmd.Flags().IntVar(&opts.MinDegree, "min", 1, "smallest number of sets in a combination")
	cmd.Flags().IntVar(&opts.MaxDegree, "max", 0, "largest number of sets in a combination (0 means no limit)")
	cmd.Flags().BoolVar(&opts.Empty, "empty", false, "keep combinations without elements")

	return cmd
}
