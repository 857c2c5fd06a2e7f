package builder

import "math/rand"

// WeightFn draws a non-negative cost. rng is nil unless a seed or stream was configured.
type WeightFn func(rng *rand.Rand) float64

// ConstWeight always returns w.
func ConstWeight(w float64) WeightFn {
	return func(*rand.Rand) float64 { return w }
}

// UniformWeight draws from [lo, hi). Without an rng it returns lo.
func UniformWeight(lo, hi float64) WeightFn {
	if hi < lo {
		lo, hi = hi, lo
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return lo
		}
		return lo + rng.Float64()*(hi-lo)
	}
}

// IntWeight draws an integer in [lo, hi]. Without an rng it returns lo.
func IntWeight(lo, hi int) WeightFn {
	if hi < lo {
		lo, hi = hi, lo
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(lo)
		}
		return float64(lo + rng.Intn(hi-lo+1))
	}
}
