package xlgrid

import "log/slog"

// Option configures an [Encoder].
type Option func(*options)

type options struct {
	mapKeys   bool
	emptyRows bool
	nfc       bool
	logger    *slog.Logger
}

func newOptions(opts []Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMapKeys writes each map key as its own cell(s) immediately before the
// value. By default keys are dropped and only values occupy cells.
func WithMapKeys() Option {
	return func(o *options) { o.mapKeys = true }
}

// WithEmptyRows makes every composite close advance the row, including a
// close that directly follows a nested close. A slice of records then
// leaves an extra empty row after the last record.
func WithEmptyRows() Option {
	return func(o *options) { o.emptyRows = true }
}

// WithNFC writes every Text cell in Unicode Normalization Form C, so that
// composed and decomposed spellings of the same text produce equal cells.
func WithNFC() Option {
	return func(o *options) { o.nfc = true }
}

// WithLogger sets the logger used for debug records. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// DefaultSheet is the worksheet name used by the XLSX sink.
const DefaultSheet = "Sheet1"

// SinkOption configures a sink built by [NewSink].
type SinkOption func(*sinkConfig)

type sinkConfig struct {
	sheet     string
	delimiter rune
	border    BorderStyle
}

func newSinkConfig(opts []SinkOption) sinkConfig {
	cfg := sinkConfig{
		sheet:     DefaultSheet,
		delimiter: ',',
		border:    BorderRounded,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSheet names the worksheet of an XLSX sink.
func WithSheet(name string) SinkOption {
	return func(c *sinkConfig) {
		if name != "" {
			c.sheet = name
		}
	}
}

// WithDelimiter sets the CSV field delimiter. Default: comma.
func WithDelimiter(r rune) SinkOption {
	return func(c *sinkConfig) { c.delimiter = r }
}

// WithBorder sets the border style of a Table sink. Default: BorderRounded.
func WithBorder(b BorderStyle) SinkOption {
	return func(c *sinkConfig) { c.border = b }
}
