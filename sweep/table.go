package sweep

import (
	"github.com/katalvlaran/aomkin/network"
)

// Table is the flat, column-ordered view of a result used by export and
// store. Errors[i] is "" for a valid row and the failure message otherwise.
type Table struct {
	RunID   string
	Meta    Meta
	Columns []string
	Rows    [][]float64
	Errors  []string
}

// layout fixes the column order of one network.
type layout struct {
	first   Variable
	steps   []network.Step
	echem   []string
	groups  []string
	states  []string
	columns []string
}

func newLayout(n *network.Network, first Variable) layout {
	l := layout{first: first, steps: n.Steps(), groups: n.Groups(), states: n.StateIDs()}
	second := PH
	if first == PH {
		second = Eta
	}
	cols := []string{first.String(), second.String()}
	for _, s := range l.steps {
		cols = append(cols, "k"+s.ID, "k-"+s.ID)
	}
	for _, s := range l.steps {
		if s.Kind == network.Electrochemical {
			l.echem = append(l.echem, s.ID)
			cols = append(cols, "ka"+s.ID, "k-a"+s.ID, "kb"+s.ID, "k-b"+s.ID)
		}
	}
	for _, s := range l.steps {
		cols = append(cols, "r"+s.ID)
	}
	for _, g := range l.groups {
		cols = append(cols, "r"+g)
	}
	for _, s := range l.steps {
		cols = append(cols, "lg(r"+s.ID+")")
	}
	for _, g := range l.groups {
		cols = append(cols, "lg(r"+g+")")
	}
	for _, st := range l.states {
		cols = append(cols, "theta"+st)
	}
	l.columns = cols

	return l
}

// Columns returns the table header for network n with first as the leading
// axis column.
func Columns(n *network.Network, first Variable) []string {
	return newLayout(n, first).columns
}

func (l layout) row(p Point) []float64 {
	row := make([]float64, 0, len(l.columns))
	if l.first == Eta {
		row = append(row, p.Eta, p.PH)
	} else {
		row = append(row, p.PH, p.Eta)
	}
	if !p.Valid() {
		for len(row) < len(l.columns) {
			row = append(row, nan)
		}
		return row
	}

	for _, s := range l.steps {
		pr := p.Rates[s.ID]
		row = append(row, pr.Forward, pr.Backward)
	}
	for _, id := range l.echem {
		el := p.Elementary[id]
		row = append(row, el.Ka, el.KMinusA, el.Kb, el.KMinusB)
	}
	fl := make([]float64, 0, len(l.steps)+len(l.groups))
	fl = append(fl, p.Fluxes.Net...)
	fl = append(fl, p.Fluxes.GroupNet...)
	row = append(row, fl...)
	for _, r := range fl {
		row = append(row, log10Abs(r))
	}
	row = append(row, p.Coverage.Theta...)

	return row
}

func (l layout) table(runID string, meta Meta, points []Point) Table {
	t := Table{
		RunID:   runID,
		Meta:    meta,
		Columns: l.columns,
		Rows:    make([][]float64, len(points)),
		Errors:  make([]string, len(points)),
	}
	for i, p := range points {
		t.Rows[i] = l.row(p)
		if p.Err != nil {
			t.Errors[i] = p.Err.Error()
		}
	}

	return t
}

// Table flattens the result; the swept variable is the first column.
func (r *Result1D) Table() Table {
	return r.layout.table(r.RunID, r.Meta, r.Points)
}

// Table flattens the grid row-major with η first.
func (r *Result2D) Table() Table {
	return r.layout.table(r.RunID, r.Meta, r.Points)
}

// Columns returns the header of Table.
func (r *Result1D) Columns() []string { return r.layout.columns }

// Columns returns the header of Table.
func (r *Result2D) Columns() []string { return r.layout.columns }
