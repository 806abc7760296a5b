package whv

import "github.com/katalvlaran/moocore/moocfg"

// Sentinel errors for the whv package.
var (
	// ErrEmptySet indicates a Matrix with zero rows where at least one is required.
	ErrEmptySet = moocfg.NewKindedError("whv: point set is empty", moocfg.KindInputShape)

	// ErrDimensionUnsupported indicates an input outside the 2D the
	// rectangle-weighted exact path supports, per spec.md §4.5.
	ErrDimensionUnsupported = moocfg.NewKindedError("whv: only dimension 2 is supported", moocfg.KindInputShape)

	// ErrDimensionMismatch indicates ideal/ref disagree with the point set's D.
	ErrDimensionMismatch = moocfg.NewKindedError("whv: ideal/reference dimension mismatch", moocfg.KindInputShape)

	// ErrBadSampleCount indicates a non-positive sample count was requested.
	ErrBadSampleCount = moocfg.NewKindedError("whv: sample count must be positive", moocfg.KindOutOfRange)

	// ErrDegenerateBox indicates ideal and ref do not bound a positive-volume
	// box on some axis.
	ErrDegenerateBox = moocfg.NewKindedError("whv: ideal/reference box has zero or negative volume", moocfg.KindInputDomain)
)

// WeightedRectangle is one axis-aligned weighted region of the objective
// plane: (Lower, Upper) delimit the box, Weight is the colour/multiplier
// spec.md §4.5 accumulates over area. Mirrors original_source/c/whv.c's
// (xmin, ymin, xmax, ymax, w) rectangle record.
type WeightedRectangle struct {
	Lower  [2]float64
	Upper  [2]float64
	Weight float64
}

// Options configures RectWeightedHV2D and Sampled.
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

// Distribution selects the sampling scheme Sampled draws direction-free
// points from, per spec.md §4.5's "HypE-style sampled" section.
type Distribution int8

const (
	// DistributionUniform draws each coordinate uniformly over [ideal, ref].
	DistributionUniform Distribution = iota
	// DistributionExponential draws one axis exponentially from ideal and the
	// other uniformly, alternating which axis is exponential sample to sample
	// (2D only).
	DistributionExponential
	// DistributionGaussian draws a fully-correlated (ρ=1) bivariate Gaussian
	// centred at a caller-supplied point in [0,1]^2, mapped into [ideal, ref]
	// (2D only).
	DistributionGaussian
)

// SampleOptions configures Sampled's distribution-specific parameters.
type SampleOptions struct {
	Distribution Distribution
	Seed         uint64

	// ExponentialScale is μ in x = ideal - μ·log(U); used by DistributionExponential.
	ExponentialScale float64

	// GaussianCenter is the Gaussian's mean in normalised [0,1]^2 coordinates;
	// used by DistributionGaussian. GaussianSigma is its (shared, ρ=1) std
	// deviation in that same normalised space; spec.md §4.5 fixes it at 0.25.
	GaussianCenter [2]float64
	GaussianSigma  float64
}

// DefaultSampleOptions returns spec.md §4.5's defaults: uniform sampling,
// seed 1, ExponentialScale 1, Gaussian centred at (0.5, 0.5) with σ=0.25.
func DefaultSampleOptions() SampleOptions {
	return SampleOptions{
		Distribution:     DistributionUniform,
		Seed:             1,
		ExponentialScale: 1,
		GaussianCenter:   [2]float64{0.5, 0.5},
		GaussianSigma:    0.25,
	}
}
