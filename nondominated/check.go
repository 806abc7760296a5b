package nondominated

import (
	"github.com/katalvlaran/moocore/moocfg"
	"github.com/katalvlaran/moocore/point"
)

// Check verifies that m, declared non-dominated by the caller, actually is
// one (spec.md §7). On a violation it reacts according to cfg.OnViolation:
// ViolationWarn reports via the Sink and returns m unchanged; ViolationFilter
// removes the dominated rows and returns the filtered matrix; ViolationAbort
// returns ErrCheckFailed.
func Check(m point.Matrix, opts ...Option) (point.Matrix, error) {
	cfg := resolve(opts)
	if m.N == 0 {
		return m, ErrEmptySet
	}

	mask, err := FilterMask(m, withKeepWeaklyValue(cfg.KeepWeakly))
	if err != nil {
		return m, err
	}

	violated := false
	for _, k := range mask {
		if !k {
			violated = true
			break
		}
	}
	if !violated {
		return m, nil
	}

	switch cfg.OnViolation {
	case ViolationAbort:
		return m, ErrCheckFailed
	case ViolationFilter:
		n := 0
		for _, k := range mask {
			if k {
				n++
			}
		}
		out, err := point.NewMatrix(n, m.D)
		if err != nil {
			return m, err
		}
		row := 0
		for i, k := range mask {
			if k {
				copy(out.Row(row), m.Row(i))
				row++
			}
		}
		return out, nil
	default: // ViolationWarn
		cfg.Sink.Warn(moocfg.KindCheckFailed, "nondominated: set declared non-dominated contains a dominated point")
		return m, nil
	}
}

// withKeepWeaklyValue threads Check's own KeepWeakly setting into the
// FilterMask call it makes internally.
func withKeepWeaklyValue(v bool) Option {
	return func(o *Options) { o.KeepWeakly = v }
}
