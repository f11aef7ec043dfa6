package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/katalvlaran/aomkin/sweep"
)

// delimited writes RFC 4180 records with a configurable separator.
type delimited struct {
	comma rune
	ext   string
}

func (d delimited) Extension() string { return d.ext }

func (d delimited) WriteTable(w io.Writer, t sweep.Table) (retErr error) {
	cw := csv.NewWriter(w)
	cw.Comma = d.comma
	defer func() {
		cw.Flush()
		if err := cw.Error(); err != nil && retErr == nil {
			retErr = fmt.Errorf("export: flush: %w", err)
		}
	}()

	if err := cw.Write(Header(t)); err != nil {
		return fmt.Errorf("export: header: %w", err)
	}
	meta := []string{t.RunID, t.Meta.Model, t.Meta.Kinetics, formatFloat(t.Meta.T)}
	record := make([]string, 0, len(meta)+len(t.Columns)+1)
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("export: row %d has %d values for %d columns", i, len(row), len(t.Columns))
		}
		record = append(record[:0], meta...)
		for _, v := range row {
			record = append(record, formatFloat(v))
		}
		record = append(record, rowError(t, i))
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export: row %d: %w", i, err)
		}
	}

	return nil
}

func rowError(t sweep.Table, i int) string {
	if i < len(t.Errors) {
		return t.Errors[i]
	}

	return ""
}
