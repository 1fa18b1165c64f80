package searchspace

import (
	"fmt"
	"math"
)

//////
// Categorical encoders.
//
// The three encoders are fitted once on the fixed, ordered category tuple
// (duplicates permitted; the first occurrence wins on forward lookup) and
// support exact inverse lookup. Inverting a value outside the fitted
// vocabulary is an error.
//////

// CategoricalEncoder one-hot encodes categories. Each value becomes a
// []float64 row of width len(categories), except that exactly two fitted
// categories collapse to a single 0/1 column: a binary choice needs only one
// discriminating coordinate, which keeps the warped space one column slim.
type CategoricalEncoder struct {
	categories []any
	fitted     bool
}

// Fit fixes the category vocabulary.
func (e *CategoricalEncoder) Fit(categories []any) error {
	e.categories = append([]any(nil), categories...)
	e.fitted = true

	return nil
}

// width is the number of warped columns produced per value.
func (e *CategoricalEncoder) width() int {
	if len(e.categories) == 2 {
		return 1
	}

	return len(e.categories)
}

// index resolves a category value to its first position in the vocabulary.
func (e *CategoricalEncoder) index(v any) (int, error) {
	for i, c := range e.categories {
		if equalValue(c, v) {
			return i, nil
		}
	}

	return 0, fmt.Errorf("encode %v: %w", v, ErrUnknownCategory)
}

// Transform one-hot encodes each value into a []float64 row.
func (e *CategoricalEncoder) Transform(values []any) ([]any, error) {
	if !e.fitted {
		return nil, ErrNotFitted
	}

	out := make([]any, len(values))

	for i, v := range values {
		idx, err := e.index(v)
		if err != nil {
			return nil, err
		}

		row := make([]float64, e.width())
		if e.width() == 1 {
			row[0] = float64(idx)
		} else {
			row[idx] = 1
		}

		out[i] = row
	}

	return out, nil
}

// InverseTransform decodes one-hot rows back to category values. The widest
// coordinate wins; the collapsed binary column decodes by 0.5 threshold.
func (e *CategoricalEncoder) InverseTransform(values []any) ([]any, error) {
	if !e.fitted {
		return nil, ErrNotFitted
	}

	out := make([]any, len(values))

	for i, v := range values {
		row, err := asFloatRow(v)
		if err != nil {
			return nil, err
		}

		if e.width() == 1 {
			if len(row) != 1 {
				return nil, fmt.Errorf("expected 1 one-hot column, got %d: %w", len(row), ErrShapeMismatch)
			}

			idx := 0
			if row[0] >= 0.5 {
				idx = 1
			}

			out[i] = e.categories[idx]

			continue
		}

		if len(row) != e.width() {
			return nil, fmt.Errorf("expected %d one-hot columns, got %d: %w", e.width(), len(row), ErrShapeMismatch)
		}

		best := 0
		for j, x := range row {
			if x > row[best] {
				best = j
			}
		}

		out[i] = e.categories[best]
	}

	return out, nil
}

// StringEncoder renders each category as its string form. The inverse is an
// exact lookup of the rendered string back to the original category value.
type StringEncoder struct {
	categories []any
	rendered   []string
	fitted     bool
}

// Fit fixes the category vocabulary and its string renderings.
func (e *StringEncoder) Fit(categories []any) error {
	e.categories = append([]any(nil), categories...)
	e.rendered = make([]string, len(categories))

	for i, c := range categories {
		e.rendered[i] = fmt.Sprint(c)
	}

	e.fitted = true

	return nil
}

// Transform renders each value as a string.
func (e *StringEncoder) Transform(values []any) ([]any, error) {
	if !e.fitted {
		return nil, ErrNotFitted
	}

	out := make([]any, len(values))
	for i, v := range values {
		out[i] = fmt.Sprint(v)
	}

	return out, nil
}

// InverseTransform looks each string up in the fitted vocabulary.
func (e *StringEncoder) InverseTransform(values []any) ([]any, error) {
	if !e.fitted {
		return nil, ErrNotFitted
	}

	out := make([]any, len(values))

	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			s = fmt.Sprint(v)
		}

		found := false

		for j, r := range e.rendered {
			if r == s {
				out[i] = e.categories[j]
				found = true

				break
			}
		}

		if !found {
			return nil, fmt.Errorf("decode %q: %w", s, ErrUnknownCategory)
		}
	}

	return out, nil
}

// LabelEncoder encodes each category as its zero-based position in the fixed
// category order, carried as a float64 so labels compose with Normalize.
type LabelEncoder struct {
	categories []any
	fitted     bool
}

// NewLabelEncoder returns a LabelEncoder already fitted on categories.
func NewLabelEncoder(categories []any) *LabelEncoder {
	e := &LabelEncoder{}
	_ = e.Fit(categories)

	return e
}

// Fit fixes the category vocabulary.
func (e *LabelEncoder) Fit(categories []any) error {
	e.categories = append([]any(nil), categories...)
	e.fitted = true

	return nil
}

// Transform maps each value to its zero-based category position.
func (e *LabelEncoder) Transform(values []any) ([]any, error) {
	if !e.fitted {
		return nil, ErrNotFitted
	}

	out := make([]any, len(values))

	for i, v := range values {
		found := false

		for j, c := range e.categories {
			if equalValue(c, v) {
				out[i] = float64(j)
				found = true

				break
			}
		}

		if !found {
			return nil, fmt.Errorf("encode %v: %w", v, ErrUnknownCategory)
		}
	}

	return out, nil
}

// InverseTransform rounds each label to the nearest index and returns the
// category at that position. Indices outside the vocabulary are an error.
func (e *LabelEncoder) InverseTransform(values []any) ([]any, error) {
	if !e.fitted {
		return nil, ErrNotFitted
	}

	out := make([]any, len(values))

	for i, v := range values {
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("decode %v: %w", v, ErrNonNumericValue)
		}

		idx := int(math.Round(f))
		if idx < 0 || idx >= len(e.categories) {
			return nil, fmt.Errorf("decode label %v: %w", v, ErrUnknownCategory)
		}

		out[i] = e.categories[idx]
	}

	return out, nil
}

// asFloatRow views a warped value as a []float64 row, accepting both a bare
// float64 (single-column blocks) and a []float64.
func asFloatRow(v any) ([]float64, error) {
	switch x := v.(type) {
	case []float64:
		return x, nil
	case float64:
		return []float64{x}, nil
	}

	if f, ok := toFloat(v); ok {
		return []float64{f}, nil
	}

	return nil, fmt.Errorf("expected numeric row, got %T: %w", v, ErrNonNumericValue)
}
