package whv

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/moocore/point"
)

// Sampled estimates a per-point hypervolume contribution vector by HypE-style
// Monte-Carlo sampling (spec.md §4.5 "HypE-style sampled"): draw n
// direction-free points inside [ideal, ref]; for each sample, every input
// point that weakly dominates it shares 1/count credit; the running sums are
// finally scaled by volume([ideal, ref])/n. A single seed initialises the
// whole run, matching hypervolume.ApproximateMC/ApproximateQMC's discipline.
func Sampled(m point.Matrix, ideal, ref []float64, n int, so SampleOptions, opts ...Option) ([]float64, error) {
	_ = resolve(opts)

	d := m.D
	if len(ideal) != d || len(ref) != d {
		return nil, ErrDimensionMismatch
	}
	if m.N == 0 {
		return nil, ErrEmptySet
	}
	if n <= 0 {
		return nil, ErrBadSampleCount
	}
	if so.Distribution != DistributionUniform && d != 2 {
		return nil, ErrDimensionUnsupported
	}

	vol := 1.0
	for k := 0; k < d; k++ {
		if ref[k] <= ideal[k] {
			return nil, ErrDegenerateBox
		}
		vol *= ref[k] - ideal[k]
	}

	rng := rand.New(rand.NewSource(int64(so.Seed)))
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(int64(so.Seed) + 1)}

	sums := make([]float64, m.N)
	sample := make([]float64, d)
	dominators := make([]int, 0, m.N)

	for s := 0; s < n; s++ {
		drawSample(sample, rng, &normal, ideal, ref, so, s)

		dominators = dominators[:0]
		for i := 0; i < m.N; i++ {
			if point.WeaklyDominates(m.Row(i), sample, d) {
				dominators = append(dominators, i)
			}
		}
		if len(dominators) == 0 {
			continue
		}
		share := 1.0 / float64(len(dominators))
		for _, i := range dominators {
			sums[i] += share
		}
	}

	scale := vol / float64(n)
	for i := range sums {
		sums[i] *= scale
	}
	return sums, nil
}

// drawSample fills sample with one direction-free draw per so.Distribution.
func drawSample(sample []float64, rng *rand.Rand, normal *distuv.Normal, ideal, ref []float64, so SampleOptions, s int) {
	switch so.Distribution {
	case DistributionExponential:
		drawExponential2D(sample, rng, ideal, ref, so.ExponentialScale, s%2)
	case DistributionGaussian:
		drawGaussian2D(sample, normal, ideal, ref, so.GaussianCenter, so.GaussianSigma)
	default:
		for k := range sample {
			sample[k] = ideal[k] + rng.Float64()*(ref[k]-ideal[k])
		}
	}
}

// drawExponential2D draws one axis exponentially from ideal (x on even
// parity, y on odd parity) and the other uniformly, splitting the sample
// stream roughly half and half between the two axes per spec.md §4.5.
func drawExponential2D(sample []float64, rng *rand.Rand, ideal, ref []float64, mu float64, parity int) {
	u := rng.Float64()
	if u <= 0 {
		u = 1e-300
	}
	if parity == 0 {
		x := ideal[0] - mu*math.Log(u)
		if x > ref[0] {
			x = ref[0]
		}
		sample[0] = x
		sample[1] = ideal[1] + rng.Float64()*(ref[1]-ideal[1])
		return
	}
	y := ideal[1] - mu*math.Log(u)
	if y > ref[1] {
		y = ref[1]
	}
	sample[1] = y
	sample[0] = ideal[0] + rng.Float64()*(ref[0]-ideal[0])
}

// drawGaussian2D draws a fully-correlated (ρ=1) bivariate Gaussian centred at
// center in normalised [0,1]^2 space, clamps to that unit square, and maps
// the result into [ideal, ref].
func drawGaussian2D(sample []float64, normal *distuv.Normal, ideal, ref []float64, center [2]float64, sigma float64) {
	z := normal.Rand()
	nx := clamp01(center[0] + sigma*z)
	ny := clamp01(center[1] + sigma*z)
	sample[0] = ideal[0] + nx*(ref[0]-ideal[0])
	sample[1] = ideal[1] + ny*(ref[1]-ideal[1])
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
