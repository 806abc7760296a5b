package indicators

import "github.com/katalvlaran/moocore/moocfg"

// Sentinel errors for the indicators package.
var (
	// ErrEmptySet indicates a Matrix with zero rows where at least one is required.
	ErrEmptySet = moocfg.NewKindedError("indicators: point set is empty", moocfg.KindInputShape)

	// ErrDimensionMismatch indicates two operands, or minmax and the data, disagree on dimension.
	ErrDimensionMismatch = moocfg.NewKindedError("indicators: dimension mismatch", moocfg.KindInputShape)

	// ErrDimensionUnsupported indicates R2Exact was called outside its
	// defined scope of d=2 (spec.md §4.9).
	ErrDimensionUnsupported = moocfg.NewKindedError("indicators: only dimension 2 is supported here", moocfg.KindInputShape)

	// ErrNonPositiveCoordinates indicates EpsilonMultiplicative received a
	// coordinate <= 0, where the multiplicative ratio is undefined (spec.md §4.8).
	ErrNonPositiveCoordinates = moocfg.NewKindedError("indicators: multiplicative epsilon requires strictly positive coordinates", moocfg.KindInputDomain)

	// ErrBadExponent indicates p < 1 was passed to a GD-family indicator.
	ErrBadExponent = moocfg.NewKindedError("indicators: exponent p must be >= 1", moocfg.KindOutOfRange)
)

// Kind selects which member of the GD family gdCommon computes.
type Kind int8

const (
	// KindGD: points_a is the approximation set, points_r the reference.
	KindGD Kind = iota
	// KindIGD swaps the roles GD uses.
	KindIGD
	// KindIGDPlus is IGD with the "plus" one-sided coordinate modification.
	KindIGDPlus
	// KindAvgHausdorff returns max(GD_p, IGD_p).
	KindAvgHausdorff
)

// Options configures the indicators in this package.
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
