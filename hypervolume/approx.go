package hypervolume

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/moocore/point"
	"gonum.org/v1/gonum/stat/distuv"
)

// direction-sampling estimators for spec.md §4.4's "Stochastic
// approximation (d ≤ 32)": for a unit direction w in the positive orthant,
// the radius to the Pareto front along w (measured from ref, in the shifted
// frame q = ref - p) is r(w) = max_p min_k q_pk/w_k; averaging r(w)^d over
// samples and scaling by the positive-orthant volume of the unit d-ball
// estimates the hypervolume. Both approximators below share this inner loop
// and differ only in how they draw w.

func radiusPow(q [][]float64, w []float64, d int) float64 {
	best := 0.0
	for _, p := range q {
		r := math.Inf(1)
		for k := 0; k < d; k++ {
			c := p[k] / w[k]
			if c < r {
				r = c
			}
		}
		if r > best {
			best = r
		}
	}
	return math.Pow(best, float64(d))
}

// positiveOrthantUnitBallVolume returns the volume of the unit d-ball
// restricted to the positive orthant: (π^(d/2) / Γ(d/2 + 1)) / 2^d.
func positiveOrthantUnitBallVolume(d int) float64 {
	full := math.Pow(math.Pi, float64(d)/2) / math.Gamma(float64(d)/2+1)
	return full / math.Pow(2, float64(d))
}

// contributingShifted returns, for every row of m that strictly dominates
// ref, the shifted coordinates ref-p (all strictly positive); non-
// contributing rows are dropped, matching "only points that strictly
// dominate r contribute" (spec.md §4.4).
func contributingShifted(m point.Matrix, ref []float64) [][]float64 {
	var q [][]float64
	for i := 0; i < m.N; i++ {
		row := m.Row(i)
		shifted := make([]float64, m.D)
		ok := true
		for k := 0; k < m.D; k++ {
			shifted[k] = ref[k] - row[k]
			if shifted[k] <= 0 {
				ok = false
				break
			}
		}
		if ok {
			q = append(q, shifted)
		}
	}
	return q
}

// ApproximateMC estimates HV(m, ref) by sampling direction vectors as
// normalised absolute-value Gaussians in the positive orthant (spec.md
// §4.4 "Normal MC"), using gonum's stat/distuv.Normal as the underlying
// generator instead of a hand-rolled Box-Muller. seed must be non-zero at
// this library boundary (spec.md §6 "Random-seed environment").
func ApproximateMC(m point.Matrix, ref []float64, nsamples int, seed uint64) (float64, error) {
	if m.N == 0 {
		return 0, ErrEmptySet
	}
	if len(ref) != m.D {
		return 0, ErrDimensionMismatch
	}

	q := contributingShifted(m, ref)
	if len(q) == 0 {
		return 0, nil
	}

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(int64(seed))}
	w := make([]float64, m.D)
	sum := 0.0
	for s := 0; s < nsamples; s++ {
		norm := 0.0
		for k := 0; k < m.D; k++ {
			v := math.Abs(normal.Rand())
			w[k] = v
			norm += v * v
		}
		norm = math.Sqrt(norm)
		for k := range w {
			w[k] /= norm
		}
		sum += radiusPow(q, w, m.D)
	}
	mean := sum / float64(nsamples)
	return positiveOrthantUnitBallVolume(m.D) * mean, nil
}

// ApproximateQMC estimates HV(m, ref) the way ApproximateMC does, but draws
// direction vectors from a low-discrepancy Kronecker sequence (using the
// square roots of the first d primes as irrational step sizes) instead of
// independent Gaussian draws: each sequence coordinate is mapped through the
// half-normal quantile before normalising, so the directions follow the same
// uniform law over the positive orthant. This trades the source's
// table-driven sinᵏθ polar inversion (original_source/c/hvapprox.c) for a
// simpler sequence -- see DESIGN.md.
func ApproximateQMC(m point.Matrix, ref []float64, nsamples int) (float64, error) {
	if m.N == 0 {
		return 0, ErrEmptySet
	}
	if len(ref) != m.D {
		return 0, ErrDimensionMismatch
	}

	q := contributingShifted(m, ref)
	if len(q) == 0 {
		return 0, nil
	}

	steps := kroneckerSteps(m.D)
	std := distuv.Normal{Mu: 0, Sigma: 1}
	w := make([]float64, m.D)
	sum := 0.0
	for s := 1; s <= nsamples; s++ {
		norm := 0.0
		for k := 0; k < m.D; k++ {
			frac, _ := math.Modf(steps[k] * float64(s))
			// Half-normal quantile: the normalised vector is then a direction
			// drawn the way ApproximateMC draws its absolute-value Gaussians.
			v := std.Quantile((1 + math.Abs(frac)) / 2)
			w[k] = v
			norm += v * v
		}
		if norm == 0 {
			continue
		}
		norm = math.Sqrt(norm)
		for k := range w {
			w[k] /= norm
		}
		sum += radiusPow(q, w, m.D)
	}
	mean := sum / float64(nsamples)
	return positiveOrthantUnitBallVolume(m.D) * mean, nil
}

// kroneckerSteps returns sqrt(p) for the first d primes, the irrational
// per-dimension step sizes of the Kronecker sequence ApproximateQMC walks.
func kroneckerSteps(d int) []float64 {
	primes := []float64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47,
		53, 59, 61, 67, 71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131}
	steps := make([]float64, d)
	for k := 0; k < d; k++ {
		steps[k] = math.Sqrt(primes[k%len(primes)])
	}
	return steps
}
