package searchspace

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/rand"
)

//////
// Categorical dimension.
//////

// Categorical is a search-space dimension over a fixed, ordered tuple of
// category values. Order is significant: it fixes label and one-hot
// positions and the default uniform weighting. Duplicates are permitted.
//
// Sampling draws category indices from a discrete distribution parameterized
// by the prior weights; the normalize modes instead draw a continuous [0, 1]
// value and inverse-transform it through the label/normalize pipeline, which
// lets a categorical act as an ordinal index for numeric optimization.
type Categorical struct {
	categories []any
	weights    []float64
	name       string

	mode     string
	pipeline Transformer
	dist     sampler
}

// NewCategorical builds a Categorical dimension over the given ordered
// categories.
//
// Options: WithWeights (default uniform; must align one-to-one with the
// categories and sum to a positive value), WithTransform (default onehot),
// WithName. Construction fails fast on empty categories, misaligned or
// invalid weights, or options that apply to numeric variants.
func NewCategorical(categories []any, opts ...Option) (*Categorical, error) {
	o := applyOptions(opts)

	if o.hasPrior || o.hasBase || o.hasFloatType || o.hasIntType {
		return nil, fmt.Errorf("building Categorical: %w", ErrInvalidOption)
	}

	if len(categories) == 0 {
		return nil, ErrEmptyCategories
	}

	c := &Categorical{
		categories: append([]any(nil), categories...),
		name:       o.name,
	}

	if o.hasWeights {
		if len(o.weights) != len(categories) {
			return nil, fmt.Errorf("%d weights for %d categories: %w",
				len(o.weights), len(categories), ErrPriorLength)
		}

		sum := 0.0

		for _, w := range o.weights {
			if w < 0 || math.IsNaN(w) {
				return nil, fmt.Errorf("weight %v: %w", w, ErrInvalidWeights)
			}

			sum += w
		}

		if sum <= 0 {
			return nil, ErrInvalidWeights
		}

		c.weights = o.weights
	} else {
		c.weights = make([]float64, len(categories))
		for i := range c.weights {
			c.weights[i] = 1 / float64(len(categories))
		}
	}

	mode := o.transform
	if mode == "" {
		mode = TransformOneHot
	}

	if err := c.SetTransformer(mode); err != nil {
		return nil, err
	}

	return c, nil
}

// SetTransformer rebuilds the sampling distribution and transform pipeline
// for the given mode: identity, onehot, string, label, normalize or
// normalize_unbounded. It never changes the categories or their weights.
func (c *Categorical) SetTransformer(mode string) error {
	c.mode = mode

	switch mode {
	case TransformOneHot:
		c.pipeline = &CategoricalEncoder{}
	case TransformString:
		c.pipeline = &StringEncoder{}
	case TransformLabel:
		c.pipeline = &LabelEncoder{}
	case TransformNormalize, TransformNormalizeUnbounded:
		c.pipeline = NewPipeline(
			NewLabelEncoder(c.categories),
			&Normalize{
				Low:         0,
				High:        float64(len(c.categories) - 1),
				IsInt:       true,
				NCategories: len(c.categories),
			},
		)
	case TransformIdentity:
		c.pipeline = Identity{}
	default:
		return fmt.Errorf("categorical transform %q: %w", mode, ErrInvalidTransform)
	}

	if err := c.pipeline.Fit(c.categories); err != nil {
		return err
	}

	if strings.HasPrefix(mode, TransformNormalize) {
		c.dist = uniformInclusive{loc: 0, scale: 1}
	} else {
		c.dist = weightedIndex{weights: c.weights}
	}

	return nil
}

// Name returns the dimension's name; empty when unset.
func (c *Categorical) Name() string { return c.name }

// Kind returns KindCategorical.
func (c *Categorical) Kind() Kind { return KindCategorical }

// Size is always 1.
func (c *Categorical) Size() int { return 1 }

// TransformedSize is the one-hot width: the category count, collapsed to 1
// for exactly two categories. Every other mode occupies a single column.
func (c *Categorical) TransformedSize() int {
	if c.mode == TransformOneHot && len(c.categories) != 2 {
		return len(c.categories)
	}

	return 1
}

// IsConstant reports whether a single category is realizable.
func (c *Categorical) IsConstant() bool { return len(c.categories) <= 1 }

// Contains reports whether v is one of the categories.
func (c *Categorical) Contains(v any) bool {
	for _, cat := range c.categories {
		if equalValue(cat, v) {
			return true
		}
	}

	return false
}

// Bounds returns the category tuple.
func (c *Categorical) Bounds() Bound {
	return Bound{Categories: append([]any(nil), c.categories...)}
}

// TransformedBounds returns one [0, 1] pair per one-hot column, the label
// range [0, n-1] for the label mode, and [0, 1] otherwise.
func (c *Categorical) TransformedBounds() [][2]float64 {
	if c.TransformedSize() == 1 {
		if c.mode == TransformLabel {
			return [][2]float64{{0, float64(len(c.categories) - 1)}}
		}

		return [][2]float64{{0, 1}}
	}

	bounds := make([][2]float64, c.TransformedSize())
	for i := range bounds {
		bounds[i] = [2]float64{0, 1}
	}

	return bounds
}

// Weights returns the per-category sampling probabilities.
func (c *Categorical) Weights() []float64 {
	return append([]float64(nil), c.weights...)
}

// Categories returns the ordered category tuple.
func (c *Categorical) Categories() []any {
	return append([]any(nil), c.categories...)
}

// Transformer returns the active transform mode.
func (c *Categorical) Transformer() string { return c.mode }

// Rvs draws n category values. Index modes map weighted index draws straight
// back to categories; the normalize modes draw in [0, 1] and run the
// inverse pipeline.
func (c *Categorical) Rvs(n int, rng *rand.Rand) ([]any, error) {
	rng = ensureRand(rng)

	draws := c.dist.sample(n, rng)

	if strings.HasPrefix(c.mode, TransformNormalize) {
		warped := make([]any, n)
		for i, v := range draws {
			warped[i] = v
		}

		return c.InverseTransform(warped)
	}

	out := make([]any, n)
	for i, v := range draws {
		out[i] = c.categories[int(v)]
	}

	return out, nil
}

// Transform maps category values into the warped space.
func (c *Categorical) Transform(values []any) ([]any, error) {
	return c.pipeline.Transform(values)
}

// InverseTransform maps warped values back to category values.
func (c *Categorical) InverseTransform(values []any) ([]any, error) {
	return c.pipeline.InverseTransform(values)
}

// Distance implements the discrete metric: 0 when the categories are equal,
// 1 otherwise. Both operands must be members of the dimension.
func (c *Categorical) Distance(a, b any) (float64, error) {
	if !c.Contains(a) || !c.Contains(b) {
		return 0, fmt.Errorf("distance between %v and %v: %w", a, b, ErrOutOfDomain)
	}

	if equalValue(a, b) {
		return 0, nil
	}

	return 1, nil
}

// Equal reports whether other is a Categorical with the same category tuple
// and weights (within float tolerance).
func (c *Categorical) Equal(other Dimension) bool {
	o, ok := other.(*Categorical)
	if !ok || len(c.categories) != len(o.categories) {
		return false
	}

	for i := range c.categories {
		if !equalValue(c.categories[i], o.categories[i]) {
			return false
		}
	}

	for i := range c.weights {
		if !almostEqual(c.weights[i], o.weights[i]) {
			return false
		}
	}

	return true
}

// String renders the dimension for diagnostics.
func (c *Categorical) String() string {
	return fmt.Sprintf("Categorical(categories=%v, transform=%q)", c.categories, c.mode)
}
