package mooio

import "github.com/katalvlaran/moocore/moocfg"

// Sentinel errors for the mooio package.
var (
	// ErrEmptyInput indicates the input stream held no data rows at all.
	ErrEmptyInput = moocfg.NewKindedError("mooio: input is empty", moocfg.KindParse)

	// ErrConversion indicates a token could not be parsed as a double.
	ErrConversion = moocfg.NewKindedError("mooio: could not convert token to a number", moocfg.KindParse)

	// ErrRaggedRow indicates a row's column count disagreed with the first row's.
	ErrRaggedRow = moocfg.NewKindedError("mooio: row has a different number of columns than the first row", moocfg.KindInputShape)

	// ErrUnexpectedEOF indicates EOF occurred in the middle of a row.
	ErrUnexpectedEOF = moocfg.NewKindedError("mooio: unexpected end of input in the middle of a row", moocfg.KindParse)

	// ErrWriteEmptySet indicates WriteTable was asked to write a MultiSet
	// with zero points.
	ErrWriteEmptySet = moocfg.NewKindedError("mooio: cannot write an empty table", moocfg.KindInputShape)
)

// Options configures ReadTable/WriteTable.
type Options struct {
	// Sink receives Warn/Error reports; nil uses moocfg.DefaultSink().
	Sink *moocfg.Sink
}

// Option is a functional option for Options.
type Option func(*Options)

// WithSink installs a custom diagnostic sink.
func WithSink(sink *moocfg.Sink) Option {
	return func(o *Options) { o.Sink = sink }
}

// DefaultOptions returns the zero-value defaults: Sink=moocfg.DefaultSink().
func DefaultOptions() Options {
	return Options{Sink: moocfg.DefaultSink()}
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.Sink == nil {
		cfg.Sink = moocfg.DefaultSink()
	}
	return cfg
}
