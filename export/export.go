// Package export writes sweep tables as CSV, TSV or JSON Lines and 2D
// contour matrices as CSV.
//
// Every table row leads with the run metadata (Run, Model, Kinetics, T)
// and ends with the point's error message, empty for valid points.
// Numbers use the shortest round-trip form; NaN and ±Inf are written as
// "NaN", "+Inf" and "-Inf".
package export

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/aomkin/sweep"
)

// ErrUnknownFormat indicates a format name Lookup does not know.
var ErrUnknownFormat = errors.New("export: unknown format")

// ErrUnknownField indicates a matrix name Result2D does not carry.
var ErrUnknownField = errors.New("export: unknown matrix field")

// TableWriter serializes a flat sweep table.
type TableWriter interface {
	WriteTable(w io.Writer, t sweep.Table) error
	// Extension is the conventional file suffix without the dot.
	Extension() string
}

// MetaColumns lead every exported row.
var MetaColumns = []string{"Run", "Model", "Kinetics", "T"}

// ErrorColumn closes every exported row.
const ErrorColumn = "error"

var registry = map[string]TableWriter{
	"csv":   delimited{comma: ',', ext: "csv"},
	"tsv":   delimited{comma: '\t', ext: "tsv"},
	"jsonl": jsonLines{},
}

// Lookup returns the writer registered under name (case-insensitive).
func Lookup(name string) (TableWriter, error) {
	w, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownFormat, name, strings.Join(Formats(), ", "))
	}

	return w, nil
}

// Formats lists the registered format names in sorted order.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Header returns the exported header for t.
func Header(t sweep.Table) []string {
	h := make([]string, 0, len(MetaColumns)+len(t.Columns)+1)
	h = append(h, MetaColumns...)
	h = append(h, t.Columns...)

	return append(h, ErrorColumn)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
