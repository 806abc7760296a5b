package point

import "github.com/katalvlaran/moocore/moocfg"

// MinDimension and MaxDimension bound the supported objective-space
// dimension, per spec.md §3 ("d ∈ [2, 32]").
const (
	MinDimension = 2
	MaxDimension = 32
)

// Sentinel errors for the point package.
var (
	// ErrEmptyMatrix indicates a Matrix with zero rows where at least one is required.
	ErrEmptyMatrix = moocfg.NewKindedError("point: matrix has no rows", moocfg.KindInputShape)

	// ErrDimensionMismatch indicates two operands disagree on dimension D.
	ErrDimensionMismatch = moocfg.NewKindedError("point: dimension mismatch", moocfg.KindInputShape)

	// ErrBadDimension indicates D is outside [MinDimension, MaxDimension].
	ErrBadDimension = moocfg.NewKindedError("point: dimension out of range", moocfg.KindOutOfRange)

	// ErrBadCumSizes indicates a MultiSet's CumSizes vector is not a valid
	// strictly increasing cumulative-count vector starting at 0.
	ErrBadCumSizes = moocfg.NewKindedError("point: invalid cumulative set-size vector", moocfg.KindInputShape)
)

// Direction is a per-dimension optimisation sense: minimise, maximise, or
// ignore. Values match spec.md §3's minmax encoding ({-1, 0, +1}).
type Direction int8

const (
	// Ignore marks a dimension that does not participate in comparisons.
	Ignore Direction = 0
	// Minimise marks a dimension where smaller values are preferred.
	Minimise Direction = -1
	// Maximise marks a dimension where larger values are preferred.
	Maximise Direction = +1
)

// AgreeKind summarises a Direction vector's overall sense, precomputed once
// so inner loops dispatch on a single tag rather than branching per
// coordinate (spec.md §9 "Agreement and minmax").
type AgreeKind int8

const (
	// AgreeMin: every non-ignored dimension minimises.
	AgreeMin AgreeKind = iota
	// AgreeMax: every non-ignored dimension maximises.
	AgreeMax
	// AgreeMixed: dimensions disagree on sense.
	AgreeMixed
)

// Summarise classifies a Direction vector into an AgreeKind.
func Summarise(minmax []Direction) AgreeKind {
	sawMin, sawMax := false, false
	for _, d := range minmax {
		switch d {
		case Minimise:
			sawMin = true
		case Maximise:
			sawMax = true
		}
	}
	switch {
	case sawMin && sawMax:
		return AgreeMixed
	case sawMax:
		return AgreeMax
	default:
		return AgreeMin
	}
}

// Matrix is the row-major point-set representation used throughout moocore:
// N points of dimension D, stored flat in Data (len(Data) == N*D).
//
// Matrix rows are logically read-only to every moocore algorithm; code that
// needs a derived ordering builds its own index permutation instead of
// reordering Data in place (spec.md §5 "Sort paths build their own pointer
// arrays; they never reorder the caller's rows").
type Matrix struct {
	Data []float64
	N    int
	D    int
}

// NewMatrix allocates a zeroed N×D Matrix.
func NewMatrix(n, d int) (Matrix, error) {
	if d < MinDimension || d > MaxDimension {
		return Matrix{}, ErrBadDimension
	}
	if n < 0 {
		return Matrix{}, ErrEmptyMatrix
	}

	return Matrix{Data: make([]float64, n*d), N: n, D: d}, nil
}

// Row returns the i-th point as a slice sharing Data's backing array.
// Callers must not retain the slice past the next mutation of m.
func (m Matrix) Row(i int) []float64 {
	return m.Data[i*m.D : (i+1)*m.D]
}

// At returns coordinate k of row i.
func (m Matrix) At(i, k int) float64 {
	return m.Data[i*m.D+k]
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	out := Matrix{Data: make([]float64, len(m.Data)), N: m.N, D: m.D}
	copy(out.Data, m.Data)
	return out
}

// MultiSet is a concatenation of point sets sharing one Matrix, delimited by
// a strictly increasing CumSizes vector (spec.md §3 "Multi-set file").
type MultiSet struct {
	Matrix
	CumSizes []int // len == k+1; CumSizes[0] == 0; CumSizes[k] == N
}

// NumSets returns the number of contained point sets (k).
func (ms MultiSet) NumSets() int {
	if len(ms.CumSizes) == 0 {
		return 0
	}
	return len(ms.CumSizes) - 1
}

// Set returns the i-th set (0-indexed) as a Matrix view sharing Data.
func (ms MultiSet) Set(i int) Matrix {
	lo, hi := ms.CumSizes[i], ms.CumSizes[i+1]
	return Matrix{Data: ms.Data[lo*ms.D : hi*ms.D], N: hi - lo, D: ms.D}
}

// Validate checks the CumSizes invariants spec.md §3 requires.
func (ms MultiSet) Validate() error {
	if len(ms.CumSizes) == 0 || ms.CumSizes[0] != 0 {
		return ErrBadCumSizes
	}
	for i := 1; i < len(ms.CumSizes); i++ {
		if ms.CumSizes[i] < ms.CumSizes[i-1] {
			return ErrBadCumSizes
		}
	}
	if ms.CumSizes[len(ms.CumSizes)-1] != ms.N {
		return ErrBadCumSizes
	}
	return nil
}
