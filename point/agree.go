package point

// Agree negates coordinates in dimensions whose minmax disagrees with the
// target direction, producing a matrix where every participating dimension
// follows target (spec.md §4.1). Ignored dimensions are left untouched.
// Agree allocates a new Matrix; the input is not mutated.
func Agree(m Matrix, minmax []Direction, target Direction) Matrix {
	out := m.Clone()
	for k := 0; k < m.D; k++ {
		if minmax[k] == Ignore || minmax[k] == target {
			continue
		}
		for i := 0; i < m.N; i++ {
			out.Data[i*m.D+k] = -out.Data[i*m.D+k]
		}
	}
	return out
}

// Normalise linearly maps each coordinate of m from [lbound[k], ubound[k]]
// to [lrange, urange], respecting the agree convention (a dimension whose
// minmax disagrees with target is flipped before scaling) and treating
// zero-range dimensions (ubound[k] == lbound[k]) as identity. Spec.md §4.1.
//
// lbound/ubound give the domain bounds per dimension (e.g. from Bounds);
// lrange/urange give the shared target range applied to every dimension.
func Normalise(m Matrix, minmax []Direction, target Direction, lrange, urange float64, lbound, ubound []float64) Matrix {
	out := m.Clone()
	span := urange - lrange
	for k := 0; k < m.D; k++ {
		domain := ubound[k] - lbound[k]
		flip := minmax != nil && minmax[k] != Ignore && minmax[k] != target
		for i := 0; i < m.N; i++ {
			v := m.Data[i*m.D+k]
			if domain == 0 {
				out.Data[i*m.D+k] = v
				continue
			}
			t := (v - lbound[k]) / domain
			if flip {
				t = 1 - t
			}
			out.Data[i*m.D+k] = lrange + t*span
		}
	}
	return out
}

// Denormalise is the inverse of Normalise for the same bounds, used by the
// round-trip property in spec.md §8.
func Denormalise(m Matrix, minmax []Direction, target Direction, lrange, urange float64, lbound, ubound []float64) Matrix {
	out := m.Clone()
	span := urange - lrange
	for k := 0; k < m.D; k++ {
		domain := ubound[k] - lbound[k]
		flip := minmax != nil && minmax[k] != Ignore && minmax[k] != target
		for i := 0; i < m.N; i++ {
			v := m.Data[i*m.D+k]
			if span == 0 {
				out.Data[i*m.D+k] = v
				continue
			}
			t := (v - lrange) / span
			if flip {
				t = 1 - t
			}
			out.Data[i*m.D+k] = lbound[k] + t*domain
		}
	}
	return out
}
