package searchspace

import (
	"math"
	"time"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

//////
// Sampling distributions.
//
// Each dimension owns a sampler over its warped space; Rvs draws warped
// samples and inverse-transforms them back to the original space. Samplers
// take an explicit *rand.Rand handle so every draw is reproducible and free
// of global random state.
//////

// sampler draws n values from a fixed distribution using the given source.
type sampler interface {
	sample(n int, rng *rand.Rand) []float64
}

// ensureRand returns rng, or a fresh time-seeded generator when rng is nil.
func ensureRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}

	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}

// uniformInclusive draws uniformly from [loc, loc+scale], inclusive of the
// upper edge. The underlying continuous uniform excludes its upper bound by
// convention, so the width is widened by one representable step to make the
// bound reachable.
type uniformInclusive struct {
	loc, scale float64
}

func (u uniformInclusive) sample(n int, rng *rand.Rand) []float64 {
	dist := distuv.Uniform{
		Min: u.loc,
		Max: u.loc + math.Nextafter(u.scale, u.scale+1),
		Src: rng,
	}

	out := make([]float64, n)
	for i := range out {
		// The widened width can overshoot the true upper edge by one step.
		out[i] = math.Min(dist.Rand(), u.loc+u.scale)
	}

	return out
}

// integerUniform draws uniformly from the inclusive integer range
// [low, high].
type integerUniform struct {
	low, high int
}

func (u integerUniform) sample(n int, rng *rand.Rand) []float64 {
	span := int64(u.high-u.low) + 1

	out := make([]float64, n)
	for i := range out {
		out[i] = float64(int64(u.low) + rng.Int63n(span))
	}

	return out
}

// weightedIndex draws category indices from a discrete distribution
// parameterized by the per-category weights.
type weightedIndex struct {
	weights []float64
}

func (w weightedIndex) sample(n int, rng *rand.Rand) []float64 {
	dist := distuv.NewCategorical(w.weights, rng)

	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}

	return out
}
