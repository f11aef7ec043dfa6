package grid

import "fmt"

// New returns the grid rows × cols.
//
// Errors: ErrTooManyPoints if the product exceeds MaxPoints.
func New(rows, cols Axis) (Grid, error) {
	h, w := rows.Len(), cols.Len()
	if h == 0 || w == 0 {
		return Grid{}, fmt.Errorf("grid.New: %w", ErrEmptyAxis)
	}
	if h > MaxPoints/w {
		return Grid{}, fmt.Errorf("grid.New: %d×%d: %w", h, w, ErrTooManyPoints)
	}

	return Grid{Rows: rows, Cols: cols, Width: w, Height: h}, nil
}

// Shape returns (Height, Width).
func (g Grid) Shape() (rows, cols int) { return g.Height, g.Width }

// Len returns the number of points.
func (g Grid) Len() int { return g.Height * g.Width }

// InBounds reports whether (row, col) lies within the grid.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// Index maps (row, col) to the row-major point index.
func (g Grid) Index(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("Index(%d, %d): %w", row, col, ErrIndexOutOfRange)
	}

	return row*g.Width + col, nil
}

// Coordinate maps a point index back to (row, col).
func (g Grid) Coordinate(idx int) (row, col int, err error) {
	if idx < 0 || idx >= g.Len() {
		return 0, 0, fmt.Errorf("Coordinate(%d): %w", idx, ErrIndexOutOfRange)
	}

	return idx / g.Width, idx % g.Width, nil
}

// Point returns the (row value, col value) pair at idx.
func (g Grid) Point(idx int) (rowVal, colVal float64, err error) {
	r, c, err := g.Coordinate(idx)
	if err != nil {
		return 0, 0, err
	}

	return g.Rows.At(r), g.Cols.At(c), nil
}
