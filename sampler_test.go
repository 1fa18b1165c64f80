package searchspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/exp/rand"
)

func TestUniformInclusiveStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	draws := uniformInclusive{loc: 2, scale: 3}.sample(5000, rng)

	for _, v := range draws {
		assert.GreaterOrEqual(t, v, 2.0)
		assert.LessOrEqual(t, v, 5.0)
	}
}

func TestIntegerUniformCoversRange(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	draws := integerUniform{low: 0, high: 3}.sample(5000, rng)

	seen := map[float64]int{}
	for _, v := range draws {
		seen[v]++
	}

	require.Len(t, seen, 4, "every value in [0, 3] must be drawn")

	for v, n := range seen {
		assert.InDelta(t, 1250, n, 300, "value %v drawn %d times", v, n)
	}
}

func TestWeightedIndexFollowsWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	draws := weightedIndex{weights: []float64{0.8, 0.2}}.sample(5000, rng)

	zeros := 0

	for _, v := range draws {
		if v == 0 {
			zeros++
		}
	}

	assert.InDelta(t, 0.8, float64(zeros)/float64(len(draws)), 0.05)
}

func TestEnsureRandNilFallback(t *testing.T) {
	rng := ensureRand(nil)
	require.NotNil(t, rng)

	// A nil handle is also accepted by the public sampling surface.
	r, err := NewReal(0, 1)
	require.NoError(t, err)

	samples, err := r.Rvs(3, nil)
	require.NoError(t, err)
	assert.Len(t, samples, 3)
}
