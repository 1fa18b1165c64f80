package searchspace

import (
	"fmt"

	"golang.org/x/exp/rand"
)

//////
// Const, vars, types.
//////

// Sampling priors for numeric dimensions.
const (
	// Uniform samples uniformly between the lower and upper bounds.
	Uniform = "uniform"

	// LogUniform samples uniformly between log_base(low) and log_base(high),
	// so draws are log-uniformly distributed in the original space.
	LogUniform = "log-uniform"
)

// Transform modes. Real supports identity, normalize and
// normalize_unbounded; Integer supports identity and normalize; Categorical
// supports all of identity, onehot, string, label, normalize and
// normalize_unbounded.
const (
	TransformIdentity           = "identity"
	TransformNormalize          = "normalize"
	TransformNormalizeUnbounded = "normalize_unbounded"
	TransformOneHot             = "onehot"
	TransformString             = "string"
	TransformLabel              = "label"
)

// Kind discriminates the closed set of dimension variants.
type Kind int

const (
	// KindReal is a continuous dimension.
	KindReal Kind = iota

	// KindInteger is an integer dimension.
	KindInteger

	// KindCategorical is a categorical dimension.
	KindCategorical
)

// String returns the lowercase variant name.
func (k Kind) String() string {
	switch k {
	case KindReal:
		return "real"
	case KindInteger:
		return "integer"
	case KindCategorical:
		return "categorical"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// FloatType selects the floating width applied on Real inverse transforms.
//
// Float is the native width: inverse-transformed elements are plain
// float64 values. Float32 narrows each element to float32 precision and the
// elements carry the float32 dynamic type, preserving the caller-visible
// native-versus-fixed-width distinction.
type FloatType int

const (
	// Float is the native floating type.
	Float FloatType = iota

	// Float32 narrows inverse-transformed values to 32-bit floats.
	Float32

	// Float64 uses explicit 64-bit floats.
	Float64
)

// IntType selects the integer width applied on Integer inverse transforms.
//
// Int is the native width: inverse-transformed elements are plain int
// values. Fixed widths carry the corresponding dynamic type (int8, uint32,
// and so on) on each element.
type IntType int

const (
	// Int is the native integer type.
	Int IntType = iota

	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
)

// Bound describes one dimension's domain in the original space. Numeric
// dimensions set Low and High (both inclusive); categorical dimensions set
// Categories instead.
type Bound struct {
	Low, High  float64
	Categories []any
}

// IsCategorical reports whether the bound lists categories rather than a
// numeric interval.
func (b Bound) IsCategorical() bool {
	return b.Categories != nil
}

// Dimension is one named axis of a search space. The variant set is closed:
// Real, Integer and Categorical are the only implementations.
//
// The defining invariant is that InverseTransform(Transform(x)) == x for
// every x in the dimension's domain, up to documented rounding/clipping for
// bounded numeric types. Rvs draws in the warped space from the dimension's
// sampling distribution and inverse-transforms, so samples always land in
// the original space.
type Dimension interface {
	// Name returns the dimension's name; empty when unset.
	Name() string

	// Kind returns the variant tag.
	Kind() Kind

	// Size is the number of original-space columns, always 1 for scalar
	// dimensions.
	Size() int

	// TransformedSize is the number of warped-space columns: 1, except
	// one-hot categoricals with more than two categories.
	TransformedSize() int

	// IsConstant reports whether the dimension has exactly one realizable
	// value.
	IsConstant() bool

	// Contains reports whether v lies within the dimension's domain.
	Contains(v any) bool

	// Bounds returns the domain in the original space.
	Bounds() Bound

	// TransformedBounds returns the warped-space bounds, one (low, high)
	// pair per warped column.
	TransformedBounds() [][2]float64

	// Rvs draws n samples in the original space. A nil rng uses a fresh
	// time-seeded generator.
	Rvs(n int, rng *rand.Rand) ([]any, error)

	// Transform maps original-space values into the warped space.
	Transform(values []any) ([]any, error)

	// InverseTransform maps warped values back into the original space.
	InverseTransform(values []any) ([]any, error)

	// SetTransformer replaces the transform pipeline/distribution pair for
	// the given mode. It never changes the dimension's bounds or categories.
	// On failure the previous pipeline state is undefined.
	SetTransformer(mode string) error

	// Transformer returns the active transform mode.
	Transformer() string

	// Distance returns the distance between two domain members.
	Distance(a, b any) (float64, error)

	// Equal reports whether the other dimension has the same variant,
	// domain and configuration, with float tolerance on numeric bounds.
	Equal(other Dimension) bool
}

//////
// Construction options.
//////

// dimOptions collects the optional construction parameters shared by the
// three variants. Constructors reject options that do not apply to them.
type dimOptions struct {
	name      string
	prior     string
	base      int
	transform string
	floatType FloatType
	intType   IntType
	weights   []float64

	hasPrior     bool
	hasBase      bool
	hasFloatType bool
	hasIntType   bool
	hasWeights   bool
}

// Option configures an optional construction parameter of a dimension.
type Option func(*dimOptions)

// WithName names the dimension, e.g. "learning rate".
func WithName(name string) Option {
	return func(o *dimOptions) { o.name = name }
}

// WithPrior sets the sampling prior of a numeric dimension, Uniform or
// LogUniform.
func WithPrior(prior string) Option {
	return func(o *dimOptions) {
		o.prior = prior
		o.hasPrior = true
	}
}

// WithBase sets the logarithm base of a log-uniform numeric dimension
// (default 10, commonly 2).
func WithBase(base int) Option {
	return func(o *dimOptions) {
		o.base = base
		o.hasBase = true
	}
}

// WithTransform selects the initial transform mode instead of the variant's
// default (identity for numeric dimensions, onehot for categoricals).
func WithTransform(mode string) Option {
	return func(o *dimOptions) { o.transform = mode }
}

// WithFloatType sets the floating width used by Real inverse transforms.
func WithFloatType(ft FloatType) Option {
	return func(o *dimOptions) {
		o.floatType = ft
		o.hasFloatType = true
	}
}

// WithIntType sets the integer width used by Integer inverse transforms.
func WithIntType(it IntType) Option {
	return func(o *dimOptions) {
		o.intType = it
		o.hasIntType = true
	}
}

// WithWeights sets the per-category prior probabilities of a categorical
// dimension. Must align one-to-one with the categories.
func WithWeights(weights []float64) Option {
	return func(o *dimOptions) {
		o.weights = append([]float64(nil), weights...)
		o.hasWeights = true
	}
}

// applyOptions folds the options over the variant defaults.
func applyOptions(opts []Option) dimOptions {
	o := dimOptions{prior: Uniform, base: 10}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

//////
// Dimension-description inference.
//////

// CheckDimension turns a raw dimension description into a Dimension.
//
// A Dimension instance passes through unchanged. Otherwise the description
// must be a slice, classified by arity and content:
//
//   - length 1: a Categorical fixing that single value.
//   - length 2: a Categorical when either element is a string or bool, an
//     Integer when both elements are integers, a Real when either element
//     is a floating-point number.
//   - length 3: the third element must be "uniform" or "log-uniform"; the
//     first two classify Integer versus Real by the length-2 numeric rule.
//     Any other third element makes the description a Categorical over all
//     three values.
//   - length 4: an Integer or Real only when the third element is
//     "log-uniform" and the fourth is an integer base; anything else falls
//     through to the Categorical rule below.
//   - length above 3 otherwise: a Categorical over all listed values.
//
// transform, when non-empty, selects the initial transform mode of the
// inferred dimension. The classification happens once, at construction.
func CheckDimension(description any, transform string) (Dimension, error) {
	if dim, ok := description.(Dimension); ok {
		return dim, nil
	}

	desc, ok := asSlice(description)
	if !ok {
		return nil, fmt.Errorf("description must be a slice or a Dimension, got %T: %w",
			description, ErrInvalidDimension)
	}

	var opts []Option
	if transform != "" {
		opts = append(opts, WithTransform(transform))
	}

	switch {
	case len(desc) == 1:
		return NewCategorical(desc, opts...)

	case len(desc) == 2:
		return inferPair(desc, opts)

	case len(desc) == 3:
		if prior, ok := desc[2].(string); ok && (prior == Uniform || prior == LogUniform) {
			if dim, err := inferNumeric(desc[0], desc[1], append(opts, WithPrior(prior))); dim != nil || err != nil {
				return dim, err
			}
		}

		return NewCategorical(desc, opts...)

	case len(desc) == 4:
		if prior, ok := desc[2].(string); ok && prior == LogUniform {
			if base, ok := toInt(desc[3]); ok {
				if dim, err := inferNumeric(desc[0], desc[1],
					append(opts, WithPrior(LogUniform), WithBase(base))); dim != nil || err != nil {
					return dim, err
				}
			}
		}

		return NewCategorical(desc, opts...)

	default:
		return NewCategorical(desc, opts...)
	}
}

// inferPair classifies a two-element description.
func inferPair(desc []any, opts []Option) (Dimension, error) {
	if isString(desc[0]) || isBool(desc[0]) || isString(desc[1]) || isBool(desc[1]) {
		return NewCategorical(desc, opts...)
	}

	dim, err := inferNumeric(desc[0], desc[1], opts)
	if err != nil {
		return nil, err
	}

	if dim == nil {
		return nil, fmt.Errorf("cannot classify bounds (%v, %v): %w", desc[0], desc[1], ErrInvalidDimension)
	}

	return dim, nil
}

// inferNumeric classifies a (low, high) pair as Integer or Real. It returns
// (nil, nil) when neither element is numeric, letting the caller fall back.
func inferNumeric(lo, hi any, opts []Option) (Dimension, error) {
	if isIntegral(lo) && isIntegral(hi) {
		low, _ := toInt(lo)
		high, _ := toInt(hi)

		dim, err := NewInteger(low, high, opts...)
		if err != nil {
			return nil, err
		}

		return dim, nil
	}

	if (isFloat(lo) || isFloat(hi)) && isNumber(lo) && isNumber(hi) {
		low, _ := toFloat(lo)
		high, _ := toFloat(hi)

		dim, err := NewReal(low, high, opts...)
		if err != nil {
			return nil, err
		}

		return dim, nil
	}

	return nil, nil
}
