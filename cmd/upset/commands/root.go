package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rdeusser/upset/chartfile"
	"github.com/rdeusser/upset/fsutil"
	"github.com/rdeusser/upset/upset"
	"github.com/rdeusser/upset/zappretty"
)

type options struct {
	logLevel  string
	logFormat string

	out    io.Writer
	errOut io.Writer
	logger *zap.Logger
}

func Execute() error {
	return newRootCmd(os.Stdout, os.Stderr).Execute()
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	o := &options{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:          "upset",
		Short:        "Inspect and generate UpSet chart definitions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(o.logLevel, o.logFormat, o.errOut)
			if err != nil {
				return err
			}
			o.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.logger != nil {
				_ = o.logger.Sync()
			}
		},
	}

	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&o.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&o.logFormat, "log-format", "pretty", "log format (pretty, json)")

	root.AddCommand(validateCmd(o), exportCmd(o), generateCmd(o))

	return root
}

func newLogger(level, format string, w io.Writer) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch format {
	case "pretty":
		enc = zappretty.NewCLIEncoder(cfg)
	case "json":
		enc = zapcore.NewJSONEncoder(cfg)
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)

	return zap.New(core).Named("upset"), nil
}

// writeChart prints chart to stdout, or replaces the file at output.
func (o *options) writeChart(output string, chart *upset.Chart[string]) error {
	if output == "" || output == "-" {
		return chartfile.Encode(o.out, chart)
	}

	err := fsutil.WriteFile(output, 0o644, func(w io.Writer) error {
		return chartfile.Encode(w, chart)
	})
	if err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}

	o.logger.Info("wrote chart", zap.String("file", output))
	return nil
}
