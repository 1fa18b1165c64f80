package searchspace

import "errors"

//////
// Error taxonomy.
//
// Construction, domain and configuration failures are all fail-fast and
// synchronous. Lookup misses on Space are not errors; they are signaled by
// a sentinel (-1, nil) pair instead.
//////

var (
	// ErrInvalidBounds indicates a numeric dimension where low >= high, or
	// non-positive bounds combined with a log-uniform prior.
	ErrInvalidBounds = errors.New("searchspace: lower bound must be strictly less than upper bound")

	// ErrInvalidPrior indicates a prior other than "uniform" or "log-uniform".
	ErrInvalidPrior = errors.New(`searchspace: prior must be "uniform" or "log-uniform"`)

	// ErrInvalidBase indicates a logarithm base that is not usable (base must
	// be a positive integer greater than 1).
	ErrInvalidBase = errors.New("searchspace: log base must be an integer greater than 1")

	// ErrInvalidDtype indicates an unknown FloatType or IntType value.
	ErrInvalidDtype = errors.New("searchspace: unsupported dtype")

	// ErrInvalidTransform indicates a transform mode the dimension does not
	// support. Reconfiguration is not transactional: after this error the
	// dimension's pipeline state is undefined.
	ErrInvalidTransform = errors.New("searchspace: unsupported transform")

	// ErrInvalidDimension indicates a dimension description whose shape or
	// element types match none of the inference rules.
	ErrInvalidDimension = errors.New("searchspace: invalid dimension description")

	// ErrInvalidOption indicates a construction option that does not apply to
	// the dimension variant being built.
	ErrInvalidOption = errors.New("searchspace: option does not apply to this dimension type")

	// ErrEmptyCategories indicates a categorical dimension constructed with no
	// categories.
	ErrEmptyCategories = errors.New("searchspace: categorical dimension needs at least one category")

	// ErrPriorLength indicates categorical prior weights that do not align
	// one-to-one with the categories.
	ErrPriorLength = errors.New("searchspace: prior weights must align one-to-one with categories")

	// ErrInvalidWeights indicates categorical prior weights that are negative
	// or sum to zero.
	ErrInvalidWeights = errors.New("searchspace: prior weights must be non-negative and sum to a positive value")

	// ErrOutOfDomain indicates an operand outside the dimension's (or the
	// space's) domain, e.g. on Distance.
	ErrOutOfDomain = errors.New("searchspace: value outside the dimension's domain")

	// ErrUnknownCategory indicates an inverse transform of a value outside the
	// fitted vocabulary of an encoder.
	ErrUnknownCategory = errors.New("searchspace: value not in fitted categories")

	// ErrNotFitted indicates an encoder used before Fit.
	ErrNotFitted = errors.New("searchspace: encoder must be fitted before use")

	// ErrNonNumericValue indicates a value fed to a numeric transform that is
	// not a number.
	ErrNonNumericValue = errors.New("searchspace: non-numeric value")

	// ErrNonNumericTransform indicates a Space-level transform while some
	// dimension is configured with a mode whose warped values are not numeric
	// (categorical "string" or "identity").
	ErrNonNumericTransform = errors.New("searchspace: transform mode does not produce numeric values")

	// ErrShapeMismatch indicates batched input whose row length or column
	// count disagrees with the space.
	ErrShapeMismatch = errors.New("searchspace: shape mismatch")
)
