package searchspace

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

//////
// Integer dimension.
//////

// Integer is a search-space dimension taking integer values in [Low, High],
// both bounds inclusive.
//
// Inverse transforms clip into [low, high], round to the nearest integer and
// only then cast to the configured integer width; rounding before the cast
// is what keeps 2.7 mapping to 3 rather than truncating to 2.
type Integer struct {
	low, high int
	prior     string
	base      int
	name      string
	dtype     IntType

	mode     string
	pipeline Transformer
	dist     sampler
}

// NewInteger builds an Integer dimension over the inclusive range
// [low, high].
//
// Options: WithPrior (default Uniform), WithBase (default 10), WithTransform
// (default identity), WithName, WithIntType (default native). Construction
// fails fast on high <= low, an unknown prior, non-positive bounds combined
// with LogUniform, or options that apply to other variants.
func NewInteger(low, high int, opts ...Option) (*Integer, error) {
	o := applyOptions(opts)

	if o.hasFloatType || o.hasWeights {
		return nil, fmt.Errorf("building Integer: %w", ErrInvalidOption)
	}

	if high <= low {
		return nil, fmt.Errorf("lower bound %d, upper bound %d: %w", low, high, ErrInvalidBounds)
	}

	if o.prior != Uniform && o.prior != LogUniform {
		return nil, fmt.Errorf("prior %q: %w", o.prior, ErrInvalidPrior)
	}

	if o.prior == LogUniform && low <= 0 {
		return nil, fmt.Errorf("log-uniform prior requires positive bounds, got lower bound %d: %w",
			low, ErrInvalidBounds)
	}

	if o.base < 2 {
		return nil, fmt.Errorf("base %d: %w", o.base, ErrInvalidBase)
	}

	if o.intType < Int || o.intType > Uint64 {
		return nil, fmt.Errorf("int type %d: %w", int(o.intType), ErrInvalidDtype)
	}

	d := &Integer{
		low:   low,
		high:  high,
		prior: o.prior,
		base:  o.base,
		name:  o.name,
		dtype: o.intType,
	}

	mode := o.transform
	if mode == "" {
		mode = TransformIdentity
	}

	if err := d.SetTransformer(mode); err != nil {
		return nil, err
	}

	return d, nil
}

// SetTransformer rebuilds the sampling distribution and transform pipeline
// for the given mode: identity or normalize.
func (d *Integer) SetTransformer(mode string) error {
	d.mode = mode

	logLow := math.Log(float64(d.low)) / math.Log(float64(d.base))
	logHigh := math.Log(float64(d.high)) / math.Log(float64(d.base))

	switch mode {
	case TransformNormalize:
		d.dist = uniformInclusive{loc: 0, scale: 1}

		if d.prior == Uniform {
			d.pipeline = NewPipeline(
				Identity{},
				&Normalize{Low: float64(d.low), High: float64(d.high), IsInt: true},
			)
		} else {
			d.pipeline = NewPipeline(
				NewLogN(float64(d.base)),
				&Normalize{Low: logLow, High: logHigh},
			)
		}

	case TransformIdentity:
		if d.prior == Uniform {
			d.dist = integerUniform{low: d.low, high: d.high}
			d.pipeline = Identity{}
		} else {
			d.dist = uniformInclusive{loc: logLow, scale: logHigh - logLow}
			d.pipeline = NewLogN(float64(d.base))
		}

	default:
		return fmt.Errorf("integer transform %q: %w", mode, ErrInvalidTransform)
	}

	return nil
}

// Name returns the dimension's name; empty when unset.
func (d *Integer) Name() string { return d.name }

// Kind returns KindInteger.
func (d *Integer) Kind() Kind { return KindInteger }

// Size is always 1.
func (d *Integer) Size() int { return 1 }

// TransformedSize is always 1.
func (d *Integer) TransformedSize() int { return 1 }

// IsConstant reports whether the bounds coincide. NewInteger rejects
// high <= low, so this is false for every constructed Integer.
func (d *Integer) IsConstant() bool { return d.low == d.high }

// Contains reports whether v is a number within [low, high].
func (d *Integer) Contains(v any) bool {
	f, ok := toFloat(v)

	return ok && float64(d.low) <= f && f <= float64(d.high)
}

// Bounds returns the inclusive numeric interval.
func (d *Integer) Bounds() Bound {
	return Bound{Low: float64(d.low), High: float64(d.high)}
}

// TransformedBounds returns the warped-space interval: [0, 1] for normalize,
// the raw bounds for identity with a uniform prior, and the log-space bounds
// for identity with a log-uniform prior.
func (d *Integer) TransformedBounds() [][2]float64 {
	switch {
	case d.mode == TransformNormalize:
		return [][2]float64{{0, 1}}
	case d.prior == Uniform:
		return [][2]float64{{float64(d.low), float64(d.high)}}
	default:
		logBase := math.Log(float64(d.base))

		return [][2]float64{{
			math.Log(float64(d.low)) / logBase,
			math.Log(float64(d.high)) / logBase,
		}}
	}
}

// Transformer returns the active transform mode.
func (d *Integer) Transformer() string { return d.mode }

// Rvs draws n samples in the original space.
func (d *Integer) Rvs(n int, rng *rand.Rand) ([]any, error) {
	rng = ensureRand(rng)

	warped := d.dist.sample(n, rng)

	values := make([]any, n)
	for i, v := range warped {
		values[i] = v
	}

	return d.InverseTransform(values)
}

// Transform maps original-space values into the warped space.
func (d *Integer) Transform(values []any) ([]any, error) {
	return d.pipeline.Transform(values)
}

// InverseTransform maps warped values back into the original space: clip
// into [low, high], round to the nearest integer, then cast to the
// configured integer width.
func (d *Integer) InverseTransform(values []any) ([]any, error) {
	orig, err := d.pipeline.InverseTransform(values)
	if err != nil {
		return nil, err
	}

	out := make([]any, len(orig))

	for i, v := range orig {
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("inverse transform yielded %T: %w", v, ErrNonNumericValue)
		}

		f = math.Min(math.Max(f, float64(d.low)), float64(d.high))
		f = math.Round(f)

		out[i] = castInt(f, d.dtype)
	}

	return out, nil
}

// Distance returns |a - b|. Both operands must lie within the bounds.
func (d *Integer) Distance(a, b any) (float64, error) {
	if !d.Contains(a) || !d.Contains(b) {
		return 0, fmt.Errorf("distance between %v and %v in [%d, %d]: %w",
			a, b, d.low, d.high, ErrOutOfDomain)
	}

	fa, _ := toFloat(a)
	fb, _ := toFloat(b)

	return math.Abs(fa - fb), nil
}

// Equal reports whether other is an Integer with the same bounds.
func (d *Integer) Equal(other Dimension) bool {
	o, ok := other.(*Integer)

	return ok && d.low == o.low && d.high == o.high
}

// String renders the dimension for diagnostics.
func (d *Integer) String() string {
	return fmt.Sprintf("Integer(low=%d, high=%d, prior=%q, transform=%q)", d.low, d.high, d.prior, d.mode)
}

// castInt converts an already-rounded float to the configured integer width.
// The native width yields a plain int element; fixed widths carry their own
// dynamic type, preserving the caller-visible distinction.
func castInt(f float64, t IntType) any {
	switch t {
	case Int8:
		return int8(f)
	case Int16:
		return int16(f)
	case Int32:
		return int32(f)
	case Int64:
		return int64(f)
	case Uint8:
		return uint8(f)
	case Uint16:
		return uint16(f)
	case Uint32:
		return uint32(f)
	case Uint64:
		return uint64(f)
	default:
		return int(f)
	}
}
