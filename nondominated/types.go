package nondominated

import "github.com/katalvlaran/moocore/moocfg"

// Sentinel errors for the nondominated package.
var (
	// ErrEmptySet indicates a Matrix with zero rows where at least one row is required.
	ErrEmptySet = moocfg.NewKindedError("nondominated: point set is empty", moocfg.KindInputShape)

	// ErrCheckFailed indicates a set declared non-dominated contains a dominated point
	// and Options.OnViolation is ViolationAbort.
	ErrCheckFailed = moocfg.NewKindedError("nondominated: set declared non-dominated contains a dominated point", moocfg.KindCheckFailed)
)

// Violation selects how Check reacts to a set declared non-dominated that
// turns out to contain a dominated point (spec.md §7 "CheckFailed...
// configurable: warn, filter, or abort").
type Violation int8

const (
	// ViolationWarn reports the violation via the Sink but leaves the set untouched.
	ViolationWarn Violation = iota
	// ViolationFilter removes the dominated points and continues.
	ViolationFilter
	// ViolationAbort returns ErrCheckFailed.
	ViolationAbort
)

// Options configures filtering and ranking behavior.
type Options struct {
	// KeepWeakly, if true, retains every point of a group of weakly-equal
	// points instead of collapsing the group to one survivor (spec.md §4.3
	// "Exact-tie handling").
	KeepWeakly bool

	// OnViolation controls Check's reaction to a non-dominated-set claim
	// that does not hold.
	OnViolation Violation

	// Sink receives Warn/Error reports; nil uses moocfg.DefaultSink().
	Sink *moocfg.Sink
}

// Option is a functional option for Options.
type Option func(*Options)

// WithKeepWeakly enables retaining all weakly-tied points rather than
// collapsing duplicates to a single survivor.
func WithKeepWeakly() Option {
	return func(o *Options) { o.KeepWeakly = true }
}

// WithViolation sets the reaction to a failed non-dominance check.
func WithViolation(v Violation) Option {
	return func(o *Options) { o.OnViolation = v }
}

// WithSink installs a custom diagnostic sink.
func WithSink(sink *moocfg.Sink) Option {
	return func(o *Options) { o.Sink = sink }
}

// DefaultOptions returns the zero-value defaults: KeepWeakly=false,
// OnViolation=ViolationWarn, Sink=moocfg.DefaultSink().
func DefaultOptions() Options {
	return Options{KeepWeakly: false, OnViolation: ViolationWarn, Sink: moocfg.DefaultSink()}
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
