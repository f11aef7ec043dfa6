package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/katalvlaran/aomkin/grid"
	"github.com/katalvlaran/aomkin/sweep"
)

// Corner is the top-left cell of a matrix export.
const Corner = "pH/eta"

// Matrix writes the named contour matrix of res ("lg" or "theta").
func Matrix(w io.Writer, res *sweep.Result2D, field string) error {
	m, ok := res.Matrix(field)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	return WriteMatrix(w, res.Grid, m)
}

// WriteMatrix writes m as CSV: a header row of η values after Corner, then
// one row per pH value led by that value.
func WriteMatrix(w io.Writer, g grid.Grid, m [][]float64) (retErr error) {
	h, wd := g.Shape()
	if len(m) != h {
		return fmt.Errorf("export: matrix has %d rows, grid %d", len(m), h)
	}

	cw := csv.NewWriter(w)
	defer func() {
		cw.Flush()
		if err := cw.Error(); err != nil && retErr == nil {
			retErr = fmt.Errorf("export: flush: %w", err)
		}
	}()

	record := make([]string, 0, wd+1)
	record = append(record, Corner)
	for _, eta := range g.Cols.Values() {
		record = append(record, formatFloat(eta))
	}
	if err := cw.Write(record); err != nil {
		return fmt.Errorf("export: header: %w", err)
	}

	for r, row := range m {
		if len(row) != wd {
			return fmt.Errorf("export: matrix row %d has %d values, grid %d", r, len(row), wd)
		}
		record = append(record[:0], formatFloat(g.Rows.At(r)))
		for _, v := range row {
			record = append(record, formatFloat(v))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export: matrix row %d: %w", r, err)
		}
	}

	return nil
}
