package hypervolume

import "github.com/katalvlaran/moocore/moocfg"

// Sentinel errors for the hypervolume package.
var (
	// ErrEmptySet indicates a Matrix with zero rows where at least one row is required.
	ErrEmptySet = moocfg.NewKindedError("hypervolume: point set is empty", moocfg.KindInputShape)

	// ErrDimensionMismatch indicates the reference point's length disagrees with the matrix's D.
	ErrDimensionMismatch = moocfg.NewKindedError("hypervolume: reference dimension mismatch", moocfg.KindInputShape)

	// ErrReferenceNotDominated indicates no point strictly dominates the
	// reference, so HV would be (correctly, but often unexpectedly) zero.
	ErrReferenceNotDominated = moocfg.NewKindedError("hypervolume: reference point is not strictly dominated by any input", moocfg.KindInputDomain)
)

// ContributionMode selects the algorithm Contribution uses.
type ContributionMode int8

const (
	// ContributionBaseline is the "remove one and recompute" algorithm
	// spec.md §4.4 mandates: O(n) calls to the full HV engine.
	ContributionBaseline ContributionMode = iota
	// ContributionFast is reserved for the d≤3 incremental contribution
	// algorithm described in original_source/c/hvc3d.c; it is not yet
	// implemented and currently behaves like ContributionBaseline (see
	// DESIGN.md's Open Question decision for hypervolume.Contribution).
	ContributionFast
)

// Options configures Compute/Contribution.
type Options struct {
	// ContributionMode selects the contribution algorithm; ignored by Compute.
	ContributionMode ContributionMode

	// Sink receives Warn/Error reports; nil uses moocfg.DefaultSink().
	Sink *moocfg.Sink
}

// Option is a functional option for Options.
type Option func(*Options)

// WithFastContribution selects the reserved incremental contribution path.
func WithFastContribution() Option {
	return func(o *Options) { o.ContributionMode = ContributionFast }
}

// WithSink installs a custom diagnostic sink.
func WithSink(sink *moocfg.Sink) Option {
	return func(o *Options) { o.Sink = sink }
}

// DefaultOptions returns the zero-value defaults: ContributionBaseline, Sink=moocfg.DefaultSink().
func DefaultOptions() Options {
	return Options{ContributionMode: ContributionBaseline, Sink: moocfg.DefaultSink()}
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
