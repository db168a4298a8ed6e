// Inspiration came from a project known as zap-pretty: https://github.com/maoueh/zap-pretty
// Instead of a cli tool however, this is a native encoder implementing the zapcore.Encoder interface.

package zappretty

import (
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"

	"github.com/rdeusser/upset/safepool"
)

const timeFormat = "2006-01-02 15:04:05 MST"

var (
	bufPool    = buffer.NewPool()
	linePool   = safepool.NewPool(func() *lineWriter { return &lineWriter{} })
	levelColor = map[zapcore.Level]color.Attribute{
		zapcore.DebugLevel:  color.FgBlue,
		zapcore.InfoLevel:   color.FgGreen,
		zapcore.WarnLevel:   color.FgYellow,
		zapcore.ErrorLevel:  color.FgRed,
		zapcore.DPanicLevel: color.FgRed,
		zapcore.PanicLevel:  color.FgRed,
		zapcore.FatalLevel:  color.FgRed,
	}
)

// Register makes the encoder available to zap.Config under the name "cli".
func Register(cfg zapcore.EncoderConfig) error {
	return zap.RegisterEncoder("cli", func(_ zapcore.EncoderConfig) (zapcore.Encoder, error) {
		return NewCLIEncoder(cfg), nil
	})
}

// cliEncoder writes a colored header (time, level, logger, caller, message)
// followed by the structured fields as a single JSON object. Fields are
// accumulated by the embedded JSON encoder.
type cliEncoder struct {
	zapcore.Encoder
	cfg *zapcore.EncoderConfig
}

func NewCLIEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	if cfg.SkipLineEnding {
		cfg.LineEnding = ""
	} else if cfg.LineEnding == "" {
		cfg.LineEnding = zapcore.DefaultLineEnding
	}

	return &cliEncoder{
		Encoder: zapcore.NewJSONEncoder(fieldsConfig(cfg)),
		cfg:     &cfg,
	}
}

// fieldsConfig keeps only what the JSON encoder needs to render fields.
func fieldsConfig(cfg zapcore.EncoderConfig) zapcore.EncoderConfig {
	fields := zapcore.EncoderConfig{
		SkipLineEnding:      true,
		EncodeTime:          cfg.EncodeTime,
		EncodeDuration:      cfg.EncodeDuration,
		NewReflectedEncoder: cfg.NewReflectedEncoder,
	}

	if fields.EncodeTime == nil {
		fields.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	if fields.EncodeDuration == nil {
		fields.EncodeDuration = zapcore.StringDurationEncoder
	}

	return fields
}

func (enc *cliEncoder) Clone() zapcore.Encoder {
	return &cliEncoder{
		Encoder: enc.Encoder.Clone(),
		cfg:     enc.cfg,
	}
}

func (enc *cliEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	rest, err := enc.Encoder.EncodeEntry(zapcore.Entry{}, fields)
	if err != nil {
		return nil, err
	}
	defer rest.Free()

	line := linePool.Get()
	line.cfg = enc.cfg
	line.buf = bufPool.Get()

	if line.cfg.TimeKey != "" {
		line.encodeTimestamp(entry.Time)
	}

	if line.cfg.LevelKey != "" && line.cfg.EncodeLevel != nil {
		line.encodeLevel(entry.Level)
	}

	if entry.LoggerName != "" && line.cfg.NameKey != "" {
		line.encodeLoggerName(entry.LoggerName)
	}

	if entry.Caller.Defined && line.cfg.CallerKey != "" {
		line.encodeCaller(entry.Caller)
	}

	if line.cfg.MessageKey != "" {
		line.encodeMessage(entry.Message)
	}

	// An empty object is "{}".
	if rest.Len() > 2 {
		line.encodeFields(rest.String())
	}

	if entry.Stack != "" && line.cfg.StacktraceKey != "" {
		line.buf.AppendString(line.cfg.LineEnding)
		line.buf.AppendString(entry.Stack)
	}

	line.buf.AppendString(line.cfg.LineEnding)

	buf := line.buf
	line.cfg = nil
	line.buf = nil
	linePool.Put(line)

	return buf, nil
}

// lineWriter renders one log line.
type lineWriter struct {
	cfg *zapcore.EncoderConfig
	buf *buffer.Buffer
}

func (w *lineWriter) encodeTimestamp(timestamp time.Time) {
	w.buf.WriteString(color.New(color.FgWhite).Sprintf("[%s]", timestamp.Format(timeFormat)))
	w.buf.WriteString(" ")
}

func (w *lineWriter) encodeLevel(level zapcore.Level) {
	if level == zapcore.InfoLevel || level == zapcore.WarnLevel {
		w.buf.WriteString(color.New(levelColor[level]).Sprint(level.CapitalString() + " "))
	} else {
		w.buf.WriteString(color.New(levelColor[level]).Sprint(level.CapitalString()))
	}
	w.buf.WriteString(" ")
}

func (w *lineWriter) encodeLoggerName(logger string) {
	w.buf.WriteString(color.New(color.FgHiBlack).Sprint(logger))
	w.buf.WriteString(" ")
}

func (w *lineWriter) encodeCaller(caller zapcore.EntryCaller) {
	w.buf.WriteString(color.New(color.FgHiBlack).Sprintf("(%s)", caller.TrimmedPath()))
	w.buf.WriteString(" ")
}

func (w *lineWriter) encodeMessage(message string) {
	w.buf.WriteString(color.New(color.FgHiWhite).Sprint(message))
	w.buf.WriteString(" ")
}

func (w *lineWriter) encodeFields(fields string) {
	w.buf.WriteString(color.New(color.FgCyan).Sprint(fields))
}
