package searchspace

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

//////
// Real dimension.
//////

// Real is a search-space dimension taking any value in [Low, High], both
// bounds inclusive.
//
// With the LogUniform prior, sampling happens in log space: the distribution
// is uniform over [log_base(low), log_base(high)] and the LogN stage of the
// pipeline exponentiates back, so Rvs yields values log-uniformly
// distributed in the original space regardless of the active transform mode.
type Real struct {
	low, high float64
	prior     string
	base      int
	name      string
	dtype     FloatType

	mode     string
	pipeline Transformer
	dist     sampler
}

// NewReal builds a Real dimension over the inclusive interval [low, high].
//
// Options: WithPrior (default Uniform), WithBase (default 10), WithTransform
// (default identity), WithName, WithFloatType (default native). Construction
// fails fast on high <= low, an unknown prior, non-positive bounds combined
// with LogUniform, or options that apply to other variants.
func NewReal(low, high float64, opts ...Option) (*Real, error) {
	o := applyOptions(opts)

	if o.hasIntType || o.hasWeights {
		return nil, fmt.Errorf("building Real: %w", ErrInvalidOption)
	}

	if high <= low {
		return nil, fmt.Errorf("lower bound %v, upper bound %v: %w", low, high, ErrInvalidBounds)
	}

	if o.prior != Uniform && o.prior != LogUniform {
		return nil, fmt.Errorf("prior %q: %w", o.prior, ErrInvalidPrior)
	}

	if o.prior == LogUniform && low <= 0 {
		return nil, fmt.Errorf("log-uniform prior requires positive bounds, got lower bound %v: %w",
			low, ErrInvalidBounds)
	}

	if o.base < 2 {
		return nil, fmt.Errorf("base %d: %w", o.base, ErrInvalidBase)
	}

	if o.floatType < Float || o.floatType > Float64 {
		return nil, fmt.Errorf("float type %d: %w", int(o.floatType), ErrInvalidDtype)
	}

	r := &Real{
		low:   low,
		high:  high,
		prior: o.prior,
		base:  o.base,
		name:  o.name,
		dtype: o.floatType,
	}

	mode := o.transform
	if mode == "" {
		mode = TransformIdentity
	}

	if err := r.SetTransformer(mode); err != nil {
		return nil, err
	}

	return r, nil
}

// SetTransformer rebuilds the sampling distribution and transform pipeline
// for the given mode: identity, normalize, or normalize_unbounded. The
// distribution lives in the warped space; Rvs inverse-transforms its draws.
func (r *Real) SetTransformer(mode string) error {
	r.mode = mode

	logLow := math.Log(r.low) / math.Log(float64(r.base))
	logHigh := math.Log(r.high) / math.Log(float64(r.base))

	switch mode {
	case TransformNormalize, TransformNormalizeUnbounded:
		unbounded := mode == TransformNormalizeUnbounded
		r.dist = uniformInclusive{loc: 0, scale: 1}

		if r.prior == Uniform {
			r.pipeline = NewPipeline(
				Identity{},
				&Normalize{Low: r.low, High: r.high, Unbounded: unbounded},
			)
		} else {
			r.pipeline = NewPipeline(
				NewLogN(float64(r.base)),
				&Normalize{Low: logLow, High: logHigh, Unbounded: unbounded},
			)
		}

	case TransformIdentity:
		if r.prior == Uniform {
			r.dist = uniformInclusive{loc: r.low, scale: r.high - r.low}
			r.pipeline = Identity{}
		} else {
			r.dist = uniformInclusive{loc: logLow, scale: logHigh - logLow}
			r.pipeline = NewLogN(float64(r.base))
		}

	default:
		return fmt.Errorf("real transform %q: %w", mode, ErrInvalidTransform)
	}

	return nil
}

// Name returns the dimension's name; empty when unset.
func (r *Real) Name() string { return r.name }

// Kind returns KindReal.
func (r *Real) Kind() Kind { return KindReal }

// Size is always 1.
func (r *Real) Size() int { return 1 }

// TransformedSize is always 1.
func (r *Real) TransformedSize() int { return 1 }

// IsConstant reports whether the bounds coincide. NewReal rejects
// high <= low, so this is false for every constructed Real.
func (r *Real) IsConstant() bool { return r.low == r.high }

// Contains reports whether v is a number within [low, high].
func (r *Real) Contains(v any) bool {
	f, ok := toFloat(v)

	return ok && r.low <= f && f <= r.high
}

// Bounds returns the inclusive numeric interval.
func (r *Real) Bounds() Bound {
	return Bound{Low: r.low, High: r.high}
}

// TransformedBounds returns the warped-space interval: [0, 1] for the
// normalize modes, the raw bounds for identity with a uniform prior, and
// the log-space bounds for identity with a log-uniform prior.
func (r *Real) TransformedBounds() [][2]float64 {
	switch {
	case r.mode == TransformNormalize || r.mode == TransformNormalizeUnbounded:
		return [][2]float64{{0, 1}}
	case r.prior == Uniform:
		return [][2]float64{{r.low, r.high}}
	default:
		logBase := math.Log(float64(r.base))

		return [][2]float64{{math.Log(r.low) / logBase, math.Log(r.high) / logBase}}
	}
}

// Transformer returns the active transform mode.
func (r *Real) Transformer() string { return r.mode }

// Rvs draws n samples in the original space.
func (r *Real) Rvs(n int, rng *rand.Rand) ([]any, error) {
	rng = ensureRand(rng)

	warped := r.dist.sample(n, rng)

	values := make([]any, n)
	for i, v := range warped {
		values[i] = v
	}

	return r.InverseTransform(values)
}

// Transform maps original-space values into the warped space.
func (r *Real) Transform(values []any) ([]any, error) {
	return r.pipeline.Transform(values)
}

// InverseTransform maps warped values back into the original space. Values
// are clipped into [low, high] and cast to the configured floating width;
// the normalize_unbounded mode skips the clip so that out-of-range warped
// input may legitimately land outside the bounds.
func (r *Real) InverseTransform(values []any) ([]any, error) {
	orig, err := r.pipeline.InverseTransform(values)
	if err != nil {
		return nil, err
	}

	out := make([]any, len(orig))

	for i, v := range orig {
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("inverse transform yielded %T: %w", v, ErrNonNumericValue)
		}

		if r.mode != TransformNormalizeUnbounded {
			f = math.Min(math.Max(f, r.low), r.high)
		}

		if r.dtype == Float32 {
			out[i] = float32(f)
		} else {
			out[i] = f
		}
	}

	return out, nil
}

// Distance returns |a - b|. Both operands must lie within the bounds.
func (r *Real) Distance(a, b any) (float64, error) {
	if !r.Contains(a) || !r.Contains(b) {
		return 0, fmt.Errorf("distance between %v and %v in [%v, %v]: %w",
			a, b, r.low, r.high, ErrOutOfDomain)
	}

	fa, _ := toFloat(a)
	fb, _ := toFloat(b)

	return math.Abs(fa - fb), nil
}

// Equal reports whether other is a Real with the same bounds (within float
// tolerance), prior and transform mode.
func (r *Real) Equal(other Dimension) bool {
	o, ok := other.(*Real)

	return ok &&
		almostEqual(r.low, o.low) &&
		almostEqual(r.high, o.high) &&
		r.prior == o.prior &&
		r.mode == o.mode
}

// String renders the dimension for diagnostics.
func (r *Real) String() string {
	return fmt.Sprintf("Real(low=%v, high=%v, prior=%q, transform=%q)", r.low, r.high, r.prior, r.mode)
}
