package sweep

import (
	"math"

	"github.com/katalvlaran/aomkin/flow"
	"github.com/katalvlaran/aomkin/grid"
)

// Meta describes a run in every output row.
type Meta struct {
	Model    string  // network name
	Kinetics string  // kernel name, e.g. "bv-bep"
	T        float64 // K
}

func (e *Engine) meta() Meta {
	return Meta{Model: e.cfg.Network.Name(), Kinetics: e.cfg.Kernel.String(), T: e.cfg.T}
}

// Result1D is the outcome of Run1D, one Point per axis value in axis order.
type Result1D struct {
	RunID    string
	Meta     Meta
	Variable Variable
	Fixed    float64
	Axis     grid.Axis
	Points   []Point
	Invalid  int

	layout layout
}

// Result2D is the outcome of Run2D. Points are row-major over Grid (pH rows,
// η columns). LgRef and ThetaFree are the two contour matrices, indexed
// [pH row][η column], with NaN for invalid points.
type Result2D struct {
	RunID     string
	Meta      Meta
	Grid      grid.Grid
	Points    []Point
	Free      string
	LgRef     [][]float64
	ThetaFree [][]float64
	Invalid   int

	layout layout
}

func (r *Result2D) fillMatrices() {
	h, w := r.Grid.Shape()
	r.LgRef = make([][]float64, h)
	r.ThetaFree = make([][]float64, h)
	for row := 0; row < h; row++ {
		r.LgRef[row] = make([]float64, w)
		r.ThetaFree[row] = make([]float64, w)
		for col := 0; col < w; col++ {
			p := r.Points[row*w+col]
			r.LgRef[row][col] = p.LgRef
			r.ThetaFree[row][col] = p.ThetaFree()
		}
	}
}

// Matrix returns the named contour matrix: "lg" (reference flux) or
// "theta" (free-site occupancy).
func (r *Result2D) Matrix(field string) ([][]float64, bool) {
	switch field {
	case "lg", "lgr":
		return r.LgRef, true
	case "theta", "theta*":
		return r.ThetaFree, true
	}

	return nil, false
}

// Valid counts the valid points.
func (r *Result1D) Valid() int { return len(r.Points) - r.Invalid }

// nan is used for derived fields of invalid points.
var nan = math.NaN()

var log10Abs = flow.Log10Abs
