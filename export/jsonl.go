package export

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/aomkin/sweep"
)

// jsonLines writes one JSON object per row with keys in column order.
type jsonLines struct{}

func (jsonLines) Extension() string { return "jsonl" }

func (jsonLines) WriteTable(w io.Writer, t sweep.Table) error {
	keys := make([][]byte, len(t.Columns))
	for i, c := range t.Columns {
		k, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("export: column %q: %w", c, err)
		}
		keys[i] = k
	}
	prefix, err := metaPrefix(t)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	var line bytes.Buffer
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("export: row %d has %d values for %d columns", i, len(row), len(t.Columns))
		}
		line.Reset()
		line.Write(prefix)
		for j, v := range row {
			line.WriteByte(',')
			line.Write(keys[j])
			line.WriteByte(':')
			b, _ := sweep.Float(v).MarshalJSON()
			line.Write(b)
		}
		msg, err := json.Marshal(rowError(t, i))
		if err != nil {
			return fmt.Errorf("export: row %d: %w", i, err)
		}
		fmt.Fprintf(&line, `,%q:%s}`+"\n", ErrorColumn, msg)
		if _, err := bw.Write(line.Bytes()); err != nil {
			return fmt.Errorf("export: row %d: %w", i, err)
		}
	}

	return bw.Flush()
}

// metaPrefix renders `{"Run":…,"Model":…,"Kinetics":…,"T":…` once per table.
func metaPrefix(t sweep.Table) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	vals := []any{t.RunID, t.Meta.Model, t.Meta.Kinetics, sweep.Float(t.Meta.T)}
	for i, name := range MetaColumns {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(vals[i])
		if err != nil {
			return nil, fmt.Errorf("export: %s: %w", name, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}

	return buf.Bytes(), nil
}
