package searchspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDimensionPassThrough(t *testing.T) {
	r, err := NewReal(0, 1)
	require.NoError(t, err)

	dim, err := CheckDimension(r, "")
	require.NoError(t, err)
	assert.Same(t, Dimension(r), dim)
}

func TestCheckDimensionInference(t *testing.T) {
	tests := []struct {
		name string
		desc any
		kind Kind
	}{
		{name: "single value", desc: []any{"svm"}, kind: KindCategorical},
		{name: "integer pair", desc: []any{1, 5}, kind: KindInteger},
		{name: "real pair", desc: []any{1.0, 5}, kind: KindReal},
		{name: "real pair float high", desc: []any{1, 5.0}, kind: KindReal},
		{name: "string pair", desc: []any{"a", "b"}, kind: KindCategorical},
		{name: "bool pair", desc: []any{true, false}, kind: KindCategorical},
		{name: "typed string slice", desc: []string{"a", "b", "c"}, kind: KindCategorical},
		{name: "integer triple", desc: []any{1, 5, "log-uniform"}, kind: KindInteger},
		{name: "real triple", desc: []any{0.5, 5, "uniform"}, kind: KindReal},
		{name: "triple bad prior", desc: []any{1, 5, "exp"}, kind: KindCategorical},
		{name: "log quadruple integer", desc: []any{1, 64, "log-uniform", 2}, kind: KindInteger},
		{name: "log quadruple real", desc: []any{1.0, 64, "log-uniform", 2}, kind: KindReal},
		{name: "quadruple fallthrough", desc: []any{1, 64, "uniform", 2}, kind: KindCategorical},
		{name: "quadruple non-integer base", desc: []any{1, 64, "log-uniform", 2.5}, kind: KindCategorical},
		{name: "long list", desc: []any{1, 2, 3, 4, 5}, kind: KindCategorical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dim, err := CheckDimension(tt.desc, "")
			require.NoError(t, err)
			assert.Equal(t, tt.kind, dim.Kind())
		})
	}
}

func TestCheckDimensionInferredConfiguration(t *testing.T) {
	dim, err := CheckDimension([]any{1, 5, "log-uniform"}, "")
	require.NoError(t, err)

	d, ok := dim.(*Integer)
	require.True(t, ok)
	assert.Equal(t, Bound{Low: 1, High: 5}, d.Bounds())

	// A log-uniform identity dimension exposes log-space bounds.
	tb := d.TransformedBounds()
	assert.Greater(t, tb[0][1], 0.0)

	dim, err = CheckDimension([]any{1, 64, "log-uniform", 2}, "")
	require.NoError(t, err)

	tb = dim.TransformedBounds()
	assert.InDelta(t, 6.0, tb[0][1], 1e-12)
}

func TestCheckDimensionAppliesTransform(t *testing.T) {
	dim, err := CheckDimension([]any{0.0, 1.0}, TransformNormalize)
	require.NoError(t, err)
	assert.Equal(t, TransformNormalize, dim.Transformer())
}

func TestCheckDimensionErrors(t *testing.T) {
	_, err := CheckDimension(42, "")
	assert.ErrorIs(t, err, ErrInvalidDimension)

	_, err = CheckDimension([]any{struct{}{}, 1.0}, "")
	assert.ErrorIs(t, err, ErrInvalidDimension)

	// Inference may succeed while construction fails fast.
	_, err = CheckDimension([]any{5, 1}, "")
	assert.ErrorIs(t, err, ErrInvalidBounds)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "real", KindReal.String())
	assert.Equal(t, "integer", KindInteger.String())
	assert.Equal(t, "categorical", KindCategorical.String())
}
