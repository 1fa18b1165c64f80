package searchspace

import (
	"fmt"
	"math"
)

//////
// Transform primitives.
//
// A Transformer is an elementary reversible mapping between the original
// space and a warped space. Values travel as []any because the original
// space is mixed-type; numeric transformers operate on the float64 view of
// each element. Transformers compose into a Pipeline applied left-to-right
// on Transform and right-to-left on InverseTransform.
//////

// Transformer is a reversible mapping between two value domains.
//
// Fit prepares the transformer from the fixed category tuple; it is a no-op
// for purely numeric transformers. Transform maps original-space values into
// the warped space and InverseTransform maps them back. The composition
// invariant is InverseTransform(Transform(v)) == v for every v in the
// domain, up to floating rounding for continuous transforms and exactly for
// discrete ones.
type Transformer interface {
	Fit(categories []any) error
	Transform(values []any) ([]any, error)
	InverseTransform(values []any) ([]any, error)
}

//////
// Identity.
//////

// Identity passes values through unchanged in both directions.
type Identity struct{}

// Fit is a no-op.
func (Identity) Fit([]any) error { return nil }

// Transform returns the values unchanged.
func (Identity) Transform(values []any) ([]any, error) {
	out := make([]any, len(values))
	copy(out, values)

	return out, nil
}

// InverseTransform returns the values unchanged.
func (Identity) InverseTransform(values []any) ([]any, error) {
	out := make([]any, len(values))
	copy(out, values)

	return out, nil
}

//////
// LogN.
//////

// LogN warps values by the base-N logarithm: Transform(x) = log_base(x) and
// InverseTransform(y) = base**y. Transform requires strictly positive input.
type LogN struct {
	// Base is the logarithm base, typically 10 or 2.
	Base float64
}

// NewLogN returns a LogN transformer with the given base.
func NewLogN(base float64) *LogN {
	return &LogN{Base: base}
}

// Fit is a no-op.
func (*LogN) Fit([]any) error { return nil }

// Transform maps each value to its base-N logarithm.
func (t *LogN) Transform(values []any) ([]any, error) {
	out := make([]any, len(values))

	for i, v := range values {
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("log transform of %v: %w", v, ErrNonNumericValue)
		}

		if f <= 0 {
			return nil, fmt.Errorf("log transform requires positive input, got %v: %w", f, ErrOutOfDomain)
		}

		out[i] = math.Log(f) / math.Log(t.Base)
	}

	return out, nil
}

// InverseTransform maps each value y back to base**y.
func (t *LogN) InverseTransform(values []any) ([]any, error) {
	out := make([]any, len(values))

	for i, v := range values {
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("log inverse transform of %v: %w", v, ErrNonNumericValue)
		}

		out[i] = math.Pow(t.Base, f)
	}

	return out, nil
}

//////
// Normalize.
//////

// Normalize linearly rescales [Low, High] to the unit interval:
// Transform(x) = (x - Low) / (High - Low).
//
// On InverseTransform the warped input is first clamped into [0, 1] unless
// Unbounded is set, in which case out-of-range warped values intentionally
// map to original-space values outside [Low, High] (for unconstrained
// optimizer excursions). When IsInt is set the rescaled value is rounded to
// the nearest integer grid point, and when NCategories > 0 the rounded
// index is additionally clipped to [0, NCategories-1] (used when rescaling
// a label-encoded categorical).
type Normalize struct {
	Low, High   float64
	IsInt       bool
	Unbounded   bool
	NCategories int
}

// Fit is a no-op.
func (*Normalize) Fit([]any) error { return nil }

// Transform rescales each value from [Low, High] to [0, 1].
func (t *Normalize) Transform(values []any) ([]any, error) {
	out := make([]any, len(values))

	for i, v := range values {
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("normalize transform of %v: %w", v, ErrNonNumericValue)
		}

		if t.High == t.Low {
			// Degenerate range of a constant dimension.
			out[i] = 0.0

			continue
		}

		out[i] = (f - t.Low) / (t.High - t.Low)
	}

	return out, nil
}

// InverseTransform rescales each unit-interval value back to [Low, High].
func (t *Normalize) InverseTransform(values []any) ([]any, error) {
	out := make([]any, len(values))

	for i, v := range values {
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("normalize inverse transform of %v: %w", v, ErrNonNumericValue)
		}

		if !t.Unbounded {
			f = math.Min(math.Max(f, 0), 1)
		}

		orig := t.Low + f*(t.High-t.Low)

		if t.IsInt {
			orig = math.Round(orig)

			if t.NCategories > 0 {
				orig = math.Min(math.Max(orig, 0), float64(t.NCategories-1))
			}
		}

		out[i] = orig
	}

	return out, nil
}

//////
// Pipeline.
//////

// Pipeline is an ordered composition of transformers. Transform threads
// values through the stages left-to-right; InverseTransform threads them
// right-to-left through the stages' inverses.
type Pipeline struct {
	stages []Transformer
}

// NewPipeline composes the given transformers in order.
func NewPipeline(stages ...Transformer) *Pipeline {
	return &Pipeline{stages: stages}
}

// Fit fits every stage, in order, on the same category tuple.
func (p *Pipeline) Fit(categories []any) error {
	for _, stage := range p.stages {
		if err := stage.Fit(categories); err != nil {
			return err
		}
	}

	return nil
}

// Transform applies the stages left-to-right.
func (p *Pipeline) Transform(values []any) ([]any, error) {
	out := values

	var err error

	for _, stage := range p.stages {
		if out, err = stage.Transform(out); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// InverseTransform applies the stages' inverses right-to-left.
func (p *Pipeline) InverseTransform(values []any) ([]any, error) {
	out := values

	var err error

	for i := len(p.stages) - 1; i >= 0; i-- {
		if out, err = p.stages[i].InverseTransform(out); err != nil {
			return nil, err
		}
	}

	return out, nil
}
