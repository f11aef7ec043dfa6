package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aomkin/grid"
)

// State is the lifecycle stage of an Engine.
type State int32

const (
	Idle State = iota
	Validating
	Iterating
	Done
	Aborted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Iterating:
		return "iterating"
	case Done:
		return "done"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Engine runs sweeps for one Config. It may be reused for several runs but
// not concurrently.
type Engine struct {
	cfg      Config
	logger   *slog.Logger
	observer Observer
	workers  int
	runID    string

	mu    sync.Mutex
	state State
}

// New returns an idle Engine. Configuration is checked when a run starts.
func New(cfg Config, opts ...Option) (*Engine, error) {
	e := &Engine{
		cfg:      cfg,
		logger:   discardLogger(),
		observer: nopObserver{},
		workers:  1,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.workers < 0 {
		return nil, configErr("workers", fmt.Sprintf("must not be negative, got %d", e.workers), nil)
	}

	return e, nil
}

// State returns the current lifecycle stage.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

func (e *Engine) setState(s State) {
	e.mu.Lock()
	e.state = s
	e.mu.Unlock()
}

// begin moves Idle/Done/Aborted → Validating.
func (e *Engine) begin() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == Validating || e.state == Iterating {
		return ErrAlreadyRunning
	}
	e.state = Validating

	return nil
}

func (e *Engine) newRunID() string {
	if e.runID != "" {
		return e.runID
	}

	return uuid.NewString()
}

// axis validates one Range.
func axis(name string, r Range) (grid.Axis, error) {
	a, err := grid.NewAxis(r.Start, r.End, r.Step)
	if err != nil {
		return grid.Axis{}, configErr("sweep."+name, fmt.Sprintf("[%g, %g] step %g", r.Start, r.End, r.Step), err)
	}

	return a, nil
}

// abort records a validation failure.
func (e *Engine) abort(runID, mode string, start time.Time, err error) error {
	e.setState(Aborted)
	e.logger.Error("sweep aborted", "run", runID, "mode", mode, "err", err)
	e.observer.SweepFinished(runID, mode, 0, time.Since(start), err)

	return err
}

// Run1D sweeps cfg.Variable over its Range with the other variable held at
// cfg.Fixed, one Point per axis value.
func (e *Engine) Run1D(ctx context.Context) (*Result1D, error) {
	if err := e.begin(); err != nil {
		return nil, err
	}
	start := time.Now()
	runID := e.newRunID()
	mode := "1d-" + e.cfg.Variable.String()

	plan, err := e.cfg.resolve()
	if err != nil {
		return nil, e.abort(runID, mode, start, err)
	}
	var ax grid.Axis
	switch e.cfg.Variable {
	case Eta:
		ax, err = axis("eta", e.cfg.Eta)
	case PH:
		ax, err = axis("pH", e.cfg.PH)
	default:
		err = configErr("sweep.variable", e.cfg.Variable.String(), nil)
	}
	if err == nil && !finite(e.cfg.Fixed) {
		err = configErr("sweep.fixed", "must be finite", nil)
	}
	if err != nil {
		return nil, e.abort(runID, mode, start, err)
	}

	coords := func(i int) (eta, pH float64) {
		if e.cfg.Variable == Eta {
			return ax.At(i), e.cfg.Fixed
		}
		return e.cfg.Fixed, ax.At(i)
	}
	points, err := e.iterate(ctx, runID, mode, plan, ax.Len(), coords)
	if err != nil {
		return nil, e.abort(runID, mode, start, err)
	}

	res := &Result1D{
		RunID:    runID,
		Meta:     e.meta(),
		Variable: e.cfg.Variable,
		Fixed:    e.cfg.Fixed,
		Axis:     ax,
		Points:   points,
		layout:   newLayout(e.cfg.Network, e.cfg.Variable),
	}
	res.Invalid = countInvalid(points)
	e.finish(runID, mode, len(points), res.Invalid, start)

	return res, nil
}

// Run2D evaluates the pH × η grid; rows follow pH, columns follow η.
func (e *Engine) Run2D(ctx context.Context) (*Result2D, error) {
	if err := e.begin(); err != nil {
		return nil, err
	}
	start := time.Now()
	runID := e.newRunID()
	const mode = "2d"

	plan, err := e.cfg.resolve()
	if err != nil {
		return nil, e.abort(runID, mode, start, err)
	}
	etaAx, err := axis("eta", e.cfg.Eta)
	if err != nil {
		return nil, e.abort(runID, mode, start, err)
	}
	phAx, err := axis("pH", e.cfg.PH)
	if err != nil {
		return nil, e.abort(runID, mode, start, err)
	}
	g, err := grid.New(phAx, etaAx)
	if err != nil {
		return nil, e.abort(runID, mode, start, configErr("sweep", "grid too large", err))
	}

	coords := func(i int) (eta, pH float64) {
		pH, eta, _ = g.Point(i)
		return eta, pH
	}
	points, err := e.iterate(ctx, runID, mode, plan, g.Len(), coords)
	if err != nil {
		return nil, e.abort(runID, mode, start, err)
	}

	res := &Result2D{
		RunID:  runID,
		Meta:   e.meta(),
		Grid:   g,
		Points: points,
		Free:   e.cfg.Network.Free().ID,
		layout: newLayout(e.cfg.Network, Eta),
	}
	res.fillMatrices()
	res.Invalid = countInvalid(points)
	e.finish(runID, mode, len(points), res.Invalid, start)

	return res, nil
}

func (e *Engine) finish(runID, mode string, n, invalid int, start time.Time) {
	e.setState(Done)
	elapsed := time.Since(start)
	e.logger.Info("sweep finished",
		"run", runID, "mode", mode, "points", n, "invalid", invalid, "duration", elapsed)
	e.observer.SweepFinished(runID, mode, invalid, elapsed, nil)
}

// iterate evaluates n points, sequentially or on an errgroup. Only context
// cancellation ends it early.
func (e *Engine) iterate(ctx context.Context, runID, mode string, plan resolved, n int, coords func(int) (float64, float64)) ([]Point, error) {
	e.setState(Iterating)
	e.logger.Info("sweep started",
		"run", runID, "mode", mode, "network", e.cfg.Network.Name(),
		"kinetics", e.cfg.Kernel.String(), "points", n, "workers", e.workers)
	e.observer.SweepStarted(runID, mode, n)

	points := make([]Point, n)
	one := func(i int) {
		t0 := time.Now()
		eta, pH := coords(i)
		p := e.evaluate(plan, i, eta, pH)
		points[i] = p
		e.observer.PointEvaluated(time.Since(t0), p.Err)
		if p.Err != nil {
			e.logger.Debug("point failed", "run", runID, "index", i, "eta", eta, "pH", pH, "err", p.Err)
		}
	}

	if e.workers <= 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			one(i)
		}

		return points, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := 0; i < n; i++ {
		i := i
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			one(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return points, nil
}

func countInvalid(points []Point) int {
	var n int
	for _, p := range points {
		if p.Err != nil {
			n++
		}
	}

	return n
}
