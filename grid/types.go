package grid

import "errors"

// MaxPoints bounds the length of one axis and the size of one grid.
const MaxPoints = 1 << 22

// Sentinel errors for axis and grid construction.
var (
	// ErrNonPositiveStep indicates Step ≤ 0 or NaN.
	ErrNonPositiveStep = errors.New("grid: step must be positive")
	// ErrInvalidBound indicates a NaN or infinite Start or End.
	ErrInvalidBound = errors.New("grid: bounds must be finite")
	// ErrEmptyAxis indicates End < Start.
	ErrEmptyAxis = errors.New("grid: end lies before start")
	// ErrTooManyPoints indicates more than MaxPoints points.
	ErrTooManyPoints = errors.New("grid: too many points")
	// ErrIndexOutOfRange indicates a cell or point index outside the grid.
	ErrIndexOutOfRange = errors.New("grid: index out of range")
)

// Axis is an inclusive, evenly spaced range. It is immutable once built.
type Axis struct {
	Start, End, Step float64
	n                int
}

// Grid is the Cartesian product Rows × Cols, stored row-major.
// Height = Rows.Len(), Width = Cols.Len().
type Grid struct {
	Rows, Cols    Axis
	Width, Height int
}
