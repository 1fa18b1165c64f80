package searchspace

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
)

//////
// Space container.
//////

// Space is an ordered collection of dimensions. Order is significant and
// fixed at construction; duplicate names are permitted but ambiguous for
// lookup (first match wins). All aggregate properties are recomputed from
// the live dimension list on every call; the Space caches nothing.
type Space struct {
	dimensions []Dimension
}

// NewSpace builds a space from raw dimension descriptions. Each description
// is either a Dimension instance (used as-is) or a slice classified by
// CheckDimension: a bound pair, a bound-plus-prior triple, a
// bound-plus-prior-plus-base quadruple, or a category list.
func NewSpace(descriptions ...any) (*Space, error) {
	dims := make([]Dimension, len(descriptions))

	for i, desc := range descriptions {
		dim, err := CheckDimension(desc, "")
		if err != nil {
			return nil, fmt.Errorf("dimension %d: %w", i, err)
		}

		dims[i] = dim
	}

	return &Space{dimensions: dims}, nil
}

// Dimensions returns the ordered dimension list.
func (s *Space) Dimensions() []Dimension {
	return append([]Dimension(nil), s.dimensions...)
}

// NDims is the dimensionality of the original space.
func (s *Space) NDims() int { return len(s.dimensions) }

// TransformedNDims is the dimensionality of the warped space.
func (s *Space) TransformedNDims() int {
	n := 0
	for _, dim := range s.dimensions {
		n += dim.TransformedSize()
	}

	return n
}

// DimensionNames returns each dimension's name, substituting an "X_i"
// placeholder for unnamed dimensions.
func (s *Space) DimensionNames() []string {
	names := make([]string, len(s.dimensions))

	for i, dim := range s.dimensions {
		if dim.Name() == "" {
			names[i] = fmt.Sprintf("X_%d", i)
		} else {
			names[i] = dim.Name()
		}
	}

	return names
}

// IsReal reports whether every dimension is a Real.
func (s *Space) IsReal() bool {
	for _, dim := range s.dimensions {
		if dim.Kind() != KindReal {
			return false
		}
	}

	return true
}

// IsCategorical reports whether every dimension is a Categorical.
func (s *Space) IsCategorical() bool {
	if len(s.dimensions) == 0 {
		return false
	}

	for _, dim := range s.dimensions {
		if dim.Kind() != KindCategorical {
			return false
		}
	}

	return true
}

// IsPartlyCategorical reports whether any dimension is a Categorical.
func (s *Space) IsPartlyCategorical() bool {
	for _, dim := range s.dimensions {
		if dim.Kind() == KindCategorical {
			return true
		}
	}

	return false
}

// NConstantDimensions counts dimensions with zero degrees of freedom.
func (s *Space) NConstantDimensions() int {
	n := 0

	for _, dim := range s.dimensions {
		if dim.IsConstant() {
			n++
		}
	}

	return n
}

// Contains reports whether every coordinate of point lies within its
// dimension's domain.
func (s *Space) Contains(point []any) bool {
	if len(point) != len(s.dimensions) {
		return false
	}

	for i, dim := range s.dimensions {
		if !dim.Contains(point[i]) {
			return false
		}
	}

	return true
}

// Rvs draws n independent points from the space. Each dimension is sampled
// column-wise and the columns are transposed into row-major points of shape
// (n, NDims). A nil rng uses a fresh time-seeded generator.
func (s *Space) Rvs(n int, rng *rand.Rand) ([][]any, error) {
	rng = ensureRand(rng)

	columns := make([][]any, len(s.dimensions))

	for i, dim := range s.dimensions {
		col, err := dim.Rvs(n, rng)
		if err != nil {
			return nil, fmt.Errorf("sampling dimension %d: %w", i, err)
		}

		columns[i] = col
	}

	return transposeColumns(columns, n), nil
}

// Transform maps original-space points, shape (n, NDims), into a warped
// matrix of shape (n, TransformedNDims). Values are grouped by column and
// each dimension transforms its whole column at once; a dimension with
// TransformedSize > 1 occupies that many contiguous output columns, in
// dimension order.
//
// Every dimension must be configured with a numeric transform mode; the
// categorical "string" and "identity" modes produce non-numeric warped
// values and make space-level transforms fail with ErrNonNumericTransform.
func (s *Space) Transform(x [][]any) (*mat.Dense, error) {
	if len(s.dimensions) == 0 || len(x) == 0 {
		return nil, fmt.Errorf("empty input: %w", ErrShapeMismatch)
	}

	for i, row := range x {
		if len(row) != len(s.dimensions) {
			return nil, fmt.Errorf("row %d has %d coordinates, want %d: %w",
				i, len(row), len(s.dimensions), ErrShapeMismatch)
		}
	}

	out := mat.NewDense(len(x), s.TransformedNDims(), nil)
	start := 0

	for j, dim := range s.dimensions {
		column := make([]any, len(x))
		for i := range x {
			column[i] = x[i][j]
		}

		warped, err := dim.Transform(column)
		if err != nil {
			return nil, fmt.Errorf("transforming dimension %d: %w", j, err)
		}

		width := dim.TransformedSize()

		for i, v := range warped {
			row, err := asFloatRow(v)
			if err != nil {
				return nil, fmt.Errorf("dimension %d mode %q: %w",
					j, dim.Transformer(), ErrNonNumericTransform)
			}

			if len(row) != width {
				return nil, fmt.Errorf("dimension %d produced %d columns, want %d: %w",
					j, len(row), width, ErrShapeMismatch)
			}

			for k, f := range row {
				out.Set(i, start+k, f)
			}
		}

		start += width
	}

	return out, nil
}

// InverseTransform maps a warped matrix of shape (n, TransformedNDims) back
// into original-space points of shape (n, NDims). The matrix is sliced into
// per-dimension column blocks of width TransformedSize, each block is
// inverse-transformed as a whole, and the resulting columns are transposed
// back into rows.
func (s *Space) InverseTransform(xt mat.Matrix) ([][]any, error) {
	n, cols := xt.Dims()

	if cols != s.TransformedNDims() {
		return nil, fmt.Errorf("input has %d columns, want %d: %w",
			cols, s.TransformedNDims(), ErrShapeMismatch)
	}

	columns := make([][]any, len(s.dimensions))
	start := 0

	for j, dim := range s.dimensions {
		width := dim.TransformedSize()
		block := make([]any, n)

		for i := 0; i < n; i++ {
			if width == 1 {
				block[i] = xt.At(i, start)

				continue
			}

			row := make([]float64, width)
			for k := range row {
				row[k] = xt.At(i, start+k)
			}

			block[i] = row
		}

		orig, err := dim.InverseTransform(block)
		if err != nil {
			return nil, fmt.Errorf("inverse transforming dimension %d: %w", j, err)
		}

		columns[j] = orig
		start += width
	}

	return transposeColumns(columns, n), nil
}

// SetTransformer reconfigures every dimension's transform mode at once.
// Reconfiguration is not transactional: on failure, dimensions already
// visited keep their new mode.
func (s *Space) SetTransformer(mode string) error {
	for i, dim := range s.dimensions {
		if err := dim.SetTransformer(mode); err != nil {
			return fmt.Errorf("dimension %d: %w", i, err)
		}
	}

	return nil
}

// SetTransformers reconfigures per dimension; modes aligns one-to-one with
// the dimension order.
func (s *Space) SetTransformers(modes []string) error {
	if len(modes) != len(s.dimensions) {
		return fmt.Errorf("%d modes for %d dimensions: %w", len(modes), len(s.dimensions), ErrShapeMismatch)
	}

	for i, dim := range s.dimensions {
		if err := dim.SetTransformer(modes[i]); err != nil {
			return fmt.Errorf("dimension %d: %w", i, err)
		}
	}

	return nil
}

// SetTransformerByType reconfigures only the dimensions of the given kind.
func (s *Space) SetTransformerByType(mode string, kind Kind) error {
	for i, dim := range s.dimensions {
		if dim.Kind() != kind {
			continue
		}

		if err := dim.SetTransformer(mode); err != nil {
			return fmt.Errorf("dimension %d: %w", i, err)
		}
	}

	return nil
}

// Transformers returns each dimension's active transform mode, in order.
func (s *Space) Transformers() []string {
	modes := make([]string, len(s.dimensions))
	for i, dim := range s.dimensions {
		modes[i] = dim.Transformer()
	}

	return modes
}

// Lookup finds a dimension by name (string) or position (int). The search
// is linear and first-match. A miss is not an error; it returns the
// sentinel pair (-1, nil), which callers must check for.
func (s *Space) Lookup(key any) (int, Dimension) {
	for i, dim := range s.dimensions {
		switch k := key.(type) {
		case string:
			if dim.Name() == k {
				return i, dim
			}
		case int:
			if k == i {
				return i, dim
			}
		}
	}

	return -1, nil
}

// LookupAll resolves several names or positions at once. Misses yield -1
// and nil at the corresponding output positions.
func (s *Space) LookupAll(keys ...any) ([]int, []Dimension) {
	indices := make([]int, len(keys))
	dims := make([]Dimension, len(keys))

	for i, key := range keys {
		indices[i], dims[i] = s.Lookup(key)
	}

	return indices, dims
}

// Bounds concatenates each dimension's original-space bounds, in order.
func (s *Space) Bounds() []Bound {
	bounds := make([]Bound, len(s.dimensions))
	for i, dim := range s.dimensions {
		bounds[i] = dim.Bounds()
	}

	return bounds
}

// TransformedBounds concatenates each dimension's warped-space bounds,
// expanding multi-column dimensions into one entry per column.
func (s *Space) TransformedBounds() [][2]float64 {
	bounds := make([][2]float64, 0, s.TransformedNDims())
	for _, dim := range s.dimensions {
		bounds = append(bounds, dim.TransformedBounds()...)
	}

	return bounds
}

// Distance sums the per-dimension distances between two points: an L1-style
// aggregate of heterogeneous metrics, Euclidean-like on numeric axes and
// Hamming-like on categorical ones.
func (s *Space) Distance(pointA, pointB []any) (float64, error) {
	if len(pointA) != len(s.dimensions) || len(pointB) != len(s.dimensions) {
		return 0, fmt.Errorf("points must have %d coordinates: %w", len(s.dimensions), ErrShapeMismatch)
	}

	total := 0.0

	for i, dim := range s.dimensions {
		d, err := dim.Distance(pointA[i], pointB[i])
		if err != nil {
			return 0, fmt.Errorf("dimension %d: %w", i, err)
		}

		total += d
	}

	return total, nil
}

// Equal reports whether the other space has the same dimensions, pairwise.
func (s *Space) Equal(other *Space) bool {
	if other == nil || len(s.dimensions) != len(other.dimensions) {
		return false
	}

	for i := range s.dimensions {
		if !s.dimensions[i].Equal(other.dimensions[i]) {
			return false
		}
	}

	return true
}

// String renders the space for diagnostics.
func (s *Space) String() string {
	return fmt.Sprintf("Space(%v)", s.dimensions)
}

// transposeColumns re-shapes per-dimension columns into row-major points.
func transposeColumns(columns [][]any, n int) [][]any {
	rows := make([][]any, n)

	for i := 0; i < n; i++ {
		row := make([]any, len(columns))
		for j := range columns {
			row[j] = columns[j][i]
		}

		rows[i] = row
	}

	return rows
}
