package searchspace

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/exp/rand"
)

func TestNewRealValidation(t *testing.T) {
	tests := []struct {
		name string
		low  float64
		high float64
		opts []Option
		want error
	}{
		{name: "inverted bounds", low: 5, high: 1, want: ErrInvalidBounds},
		{name: "equal bounds", low: 3, high: 3, want: ErrInvalidBounds},
		{name: "bad prior", low: 0, high: 1, opts: []Option{WithPrior("gaussian")}, want: ErrInvalidPrior},
		{name: "log-uniform needs positive low", low: 0, high: 1, opts: []Option{WithPrior(LogUniform)}, want: ErrInvalidBounds},
		{name: "bad base", low: 1, high: 2, opts: []Option{WithBase(1)}, want: ErrInvalidBase},
		{name: "bad transform", low: 0, high: 1, opts: []Option{WithTransform("onehot")}, want: ErrInvalidTransform},
		{name: "weights are categorical-only", low: 0, high: 1, opts: []Option{WithWeights([]float64{1})}, want: ErrInvalidOption},
		{name: "int type is integer-only", low: 0, high: 1, opts: []Option{WithIntType(Int32)}, want: ErrInvalidOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReal(tt.low, tt.high, tt.opts...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRealRoundTrip(t *testing.T) {
	modes := []string{TransformIdentity, TransformNormalize, TransformNormalizeUnbounded}

	for _, mode := range modes {
		t.Run(mode, func(t *testing.T) {
			r, err := NewReal(2, 30, WithTransform(mode))
			require.NoError(t, err)

			in := []any{2.0, 5.5, 17.25, 30.0}

			warped, err := r.Transform(in)
			require.NoError(t, err)

			back, err := r.InverseTransform(warped)
			require.NoError(t, err)

			for i := range in {
				assert.InDelta(t, in[i].(float64), back[i].(float64), 1e-9)
			}
		})
	}
}

func TestRealLogUniformRoundTrip(t *testing.T) {
	for _, mode := range []string{TransformIdentity, TransformNormalize} {
		t.Run(mode, func(t *testing.T) {
			r, err := NewReal(1, 100, WithPrior(LogUniform), WithTransform(mode))
			require.NoError(t, err)

			in := []any{1.0, 10.0, 42.0, 100.0}

			warped, err := r.Transform(in)
			require.NoError(t, err)

			back, err := r.InverseTransform(warped)
			require.NoError(t, err)

			for i := range in {
				assert.InDelta(t, in[i].(float64), back[i].(float64), 1e-9)
			}
		})
	}
}

func TestRealInverseClipsIntoBounds(t *testing.T) {
	r, err := NewReal(0, 1, WithTransform(TransformNormalize))
	require.NoError(t, err)

	back, err := r.InverseTransform([]any{-0.2, 1.7})
	require.NoError(t, err)

	assert.Equal(t, 0.0, back[0].(float64))
	assert.Equal(t, 1.0, back[1].(float64))
}

func TestRealNormalizeUnboundedEscapesBounds(t *testing.T) {
	r, err := NewReal(0, 10, WithTransform(TransformNormalizeUnbounded))
	require.NoError(t, err)

	back, err := r.InverseTransform([]any{1.5, -0.3})
	require.NoError(t, err)

	// Out-of-range warped input maps outside [low, high] on purpose.
	assert.InDelta(t, 15.0, back[0].(float64), 1e-9)
	assert.InDelta(t, -3.0, back[1].(float64), 1e-9)
}

func TestRealFloat32Dtype(t *testing.T) {
	r, err := NewReal(0, 1, WithFloatType(Float32))
	require.NoError(t, err)

	back, err := r.InverseTransform([]any{0.25})
	require.NoError(t, err)

	v, ok := back[0].(float32)
	require.True(t, ok, "fixed-width dtype must surface as float32 elements")
	assert.InDelta(t, 0.25, float64(v), 1e-6)
}

func TestRealNativeDtype(t *testing.T) {
	r, err := NewReal(0, 1)
	require.NoError(t, err)

	back, err := r.InverseTransform([]any{0.25})
	require.NoError(t, err)

	_, ok := back[0].(float64)
	assert.True(t, ok, "native dtype must surface as plain float64 elements")
}

func TestRealInclusiveBoundSampling(t *testing.T) {
	r, err := NewReal(0, 1)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))

	samples, err := r.Rvs(10000, rng)
	require.NoError(t, err)
	require.Len(t, samples, 10000)

	lo, hi := math.Inf(1), math.Inf(-1)

	for _, s := range samples {
		v := s.(float64)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)

		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	// Both edges must be approached within tolerance.
	assert.InDelta(t, 0.0, lo, 1e-2)
	assert.InDelta(t, 1.0, hi, 1e-2)
}

func TestRealLogUniformSampling(t *testing.T) {
	r, err := NewReal(1, 100, WithPrior(LogUniform))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(11))

	samples, err := r.Rvs(10000, rng)
	require.NoError(t, err)

	// log10 of the draws should be approximately uniform over [0, 2].
	sum := 0.0
	below10 := 0

	for _, s := range samples {
		v := s.(float64)
		require.GreaterOrEqual(t, v, 1.0)
		require.LessOrEqual(t, v, 100.0)

		lg := math.Log10(v)
		sum += lg

		if lg < 1 {
			below10++
		}
	}

	assert.InDelta(t, 1.0, sum/float64(len(samples)), 0.05)
	assert.InDelta(t, 0.5, float64(below10)/float64(len(samples)), 0.05)
}

func TestRealRvsStaysLogUniformUnderNormalize(t *testing.T) {
	// The representation mode must not change the sampled distribution.
	r, err := NewReal(1, 100, WithPrior(LogUniform), WithTransform(TransformNormalize))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(13))

	samples, err := r.Rvs(10000, rng)
	require.NoError(t, err)

	below10 := 0

	for _, s := range samples {
		if s.(float64) < 10 {
			below10++
		}
	}

	assert.InDelta(t, 0.5, float64(below10)/float64(len(samples)), 0.05)
}

func TestRealDistance(t *testing.T) {
	r, err := NewReal(0, 10)
	require.NoError(t, err)

	d, err := r.Distance(2.5, 7.0)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, d, 1e-12)

	_, err = r.Distance(-1.0, 5.0)
	assert.ErrorIs(t, err, ErrOutOfDomain)
}

func TestRealProperties(t *testing.T) {
	r, err := NewReal(1, 100, WithPrior(LogUniform), WithName("lr"))
	require.NoError(t, err)

	assert.Equal(t, "lr", r.Name())
	assert.Equal(t, KindReal, r.Kind())
	assert.Equal(t, 1, r.Size())
	assert.Equal(t, 1, r.TransformedSize())
	assert.False(t, r.IsConstant())
	assert.True(t, r.Contains(1.0))
	assert.True(t, r.Contains(100))
	assert.False(t, r.Contains(100.5))

	assert.Equal(t, Bound{Low: 1, High: 100}, r.Bounds())

	tb := r.TransformedBounds()
	require.Len(t, tb, 1)
	assert.InDelta(t, 0.0, tb[0][0], 1e-12)
	assert.InDelta(t, 2.0, tb[0][1], 1e-12)

	require.NoError(t, r.SetTransformer(TransformNormalize))
	assert.Equal(t, [][2]float64{{0, 1}}, r.TransformedBounds())
	assert.Equal(t, TransformNormalize, r.Transformer())
}

func TestRealEqual(t *testing.T) {
	a, err := NewReal(0, 1)
	require.NoError(t, err)

	b, err := NewReal(0, 1)
	require.NoError(t, err)

	c, err := NewReal(0, 2)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
