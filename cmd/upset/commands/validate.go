package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/rdeusser/upset/chartfile"
	"github.com/rdeusser/upset/upset"
)

var errInvalidCharts = errors.New("one or more charts are invalid")

func validateCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check that every combination holds the elements its type promises",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var invalid int

			for _, path := range args {
				if !o.validateFile(path) {
					invalid++
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", errInvalidCharts, invalid, len(args))
			}

			fmt.Fprintf(o.out, "%d chart(s) valid\n", len(args))
			return nil
		},
	}
	return cmd
}

func (o *options) validateFile(path string) bool {
	log := o.logger.With(zap.String("file", path))

	chart, err := chartfile.Load(path)
	if err != nil {
		log.Error("failed to load chart", zap.Error(err))
		return false
	}

	errs := multierr.Errors(upset.Validate(chart))
	for _, err := range errs {
		log.Error("inconsistent combination", zap.Error(err))
	}

	if len(errs) > 0 {
		return false
	}

	log.Debug("chart is valid",
		zap.Int("sets", len(chart.Sets())),
		zap.Int("combinations", len(chart.Combinations())),
		zap.Int("queries", len(chart.Queries())),
	)

	return true
}
