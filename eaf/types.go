package eaf

import "github.com/katalvlaran/moocore/moocfg"

// Sentinel errors for the eaf package.
var (
	// ErrEmptySet indicates a MultiSet with zero contained sets or zero points.
	ErrEmptySet = moocfg.NewKindedError("eaf: input has no sets or no points", moocfg.KindInputShape)

	// ErrDimensionUnsupported indicates a dimension outside {2, 3}; spec.md
	// §4.6 only defines the EAF sweep for 2D and 3D inputs.
	ErrDimensionUnsupported = moocfg.NewKindedError("eaf: only dimensions 2 and 3 are supported", moocfg.KindInputShape)

	// ErrLevelOutOfRange indicates an attainment level outside [1, m].
	ErrLevelOutOfRange = moocfg.NewKindedError("eaf: attainment level out of [1, m]", moocfg.KindOutOfRange)

	// ErrPercentileOutOfRange indicates a percentile outside (0, 100].
	ErrPercentileOutOfRange = moocfg.NewKindedError("eaf: percentile out of (0, 100]", moocfg.KindOutOfRange)

	// ErrOddSetCount indicates BuildPolygonSet/BuildRectangleSet was asked for a
	// colour difference over an odd number of sets; spec.md §4.6 "Polygon
	// output" requires the caller to set m to an even number.
	ErrOddSetCount = moocfg.NewKindedError("eaf: colour difference needs an even number of sets", moocfg.KindInputShape)
)

// Options configures Surface2D/Surface3D.
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

// Surface is the ℓ-attainment surface of a family of sets (spec.md §3
// "Attainment surface eaf_t"): the points on the upper envelope attained by
// at least ℓ sets, plus a per-point bit-mask of which sets attain it. The
// mask is packed one bit per set, matching the source's tightly-packed
// bit-array discipline.
type Surface struct {
	Points  []float64 // flat N*D
	D       int
	N       int
	NumSets int
	mask    []uint64 // N rows of wordsPerSet(NumSets) words each
}

func wordsPerSet(numSets int) int {
	return (numSets + 63) / 64
}

func newSurface(d, numSets int) *Surface {
	return &Surface{D: d, NumSets: numSets}
}

// addPoint appends coords (len == s.D) with the given attained set indices.
func (s *Surface) addPoint(coords []float64, attainedSets []int) {
	s.Points = append(s.Points, coords...)
	w := wordsPerSet(s.NumSets)
	row := make([]uint64, w)
	for _, set := range attainedSets {
		row[set/64] |= 1 << uint(set%64)
	}
	s.mask = append(s.mask, row...)
	s.N++
}

// Row returns the i-th surface point's coordinates.
func (s *Surface) Row(i int) []float64 {
	return s.Points[i*s.D : (i+1)*s.D]
}

// Attained reports whether surface point i is attained by set.
func (s *Surface) Attained(i, set int) bool {
	w := wordsPerSet(s.NumSets)
	word := s.mask[i*w+set/64]
	return word&(1<<uint(set%64)) != 0
}

// CountAttained returns how many sets attain surface point i.
func (s *Surface) CountAttained(i int) int {
	w := wordsPerSet(s.NumSets)
	n := 0
	row := s.mask[i*w : (i+1)*w]
	for _, word := range row {
		for word != 0 {
			n += int(word & 1)
			word >>= 1
		}
	}
	return n
}

// PolygonSet is a flat vector of 2D points delimited by -Inf sentinel rows,
// one polygon per colour run, plus a parallel per-polygon colour vector
// (spec.md §3 "EAF polygon set").
type PolygonSet struct {
	Points  []float64 // flat, D==2 per point; a point of (-Inf, -Inf) separates polygons
	Colours []int
}

// RectangleSet is BuildRectangleSet's output: one axis-aligned rectangle per
// x-interval in which the higher of two consecutive levels lies above the lower.
type RectangleSet struct {
	Lo      [][2]float64
	Hi      [][2]float64
	Colours []int
}
