package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/aomkin/sweep"
)

// timeLayout sorts lexically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Run summarizes one archived sweep.
type Run struct {
	ID       string
	Model    string
	Kinetics string
	T        float64
	Mode     string
	Columns  []string
	Points   int
	Invalid  int
	Created  time.Time
}

// Save archives t under t.RunID in one transaction. mode is the sweep mode
// label ("1d-eta", "1d-pH", "2d").
func (s *Store) Save(ctx context.Context, mode string, t sweep.Table) (err error) {
	if t.RunID == "" {
		return errors.New("store: run ID is empty")
	}
	cols, err := json.Marshal(t.Columns)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	var invalid int
	for _, e := range t.Errors {
		if e != "" {
			invalid++
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, model, kinetics, temperature, mode, columns, points, invalid, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		t.RunID, t.Meta.Model, t.Meta.Kinetics, t.Meta.T, mode, string(cols),
		len(t.Rows), invalid, s.now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrRunExists, t.RunID)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO points (run_id, idx, vals, err) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("save points: %w", err)
	}
	defer stmt.Close()
	for i, row := range t.Rows {
		vals, err := json.Marshal(sweep.Floats(row))
		if err != nil {
			return fmt.Errorf("save point %d: %w", i, err)
		}
		var msg string
		if i < len(t.Errors) {
			msg = t.Errors[i]
		}
		if _, err := stmt.ExecContext(ctx, t.RunID, i, string(vals), msg); err != nil {
			return fmt.Errorf("save point %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save run: %w", err)
	}

	return nil
}

// Runs lists archived runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, model, kinetics, temperature, mode, columns, points, invalid, created_at
		FROM runs
		ORDER BY created_at DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}

// Run returns the summary of one run.
func (s *Store) Run(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, model, kinetics, temperature, mode, columns, points, invalid, created_at
		FROM runs
		WHERE id = ?
	`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	return r, err
}

// Table reloads the flat table of a run in point order.
func (s *Store) Table(ctx context.Context, id string) (sweep.Table, error) {
	r, err := s.Run(ctx, id)
	if err != nil {
		return sweep.Table{}, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT vals, err FROM points WHERE run_id = ? ORDER BY idx ASC`, id)
	if err != nil {
		return sweep.Table{}, fmt.Errorf("query points: %w", err)
	}
	defer rows.Close()

	t := sweep.Table{
		RunID:   r.ID,
		Meta:    sweep.Meta{Model: r.Model, Kinetics: r.Kinetics, T: r.T},
		Columns: r.Columns,
		Rows:    make([][]float64, 0, r.Points),
		Errors:  make([]string, 0, r.Points),
	}
	for rows.Next() {
		var vals, msg string
		if err := rows.Scan(&vals, &msg); err != nil {
			return sweep.Table{}, fmt.Errorf("scan point: %w", err)
		}
		var row []sweep.Float
		if err := json.Unmarshal([]byte(vals), &row); err != nil {
			return sweep.Table{}, fmt.Errorf("decode point: %w", err)
		}
		t.Rows = append(t.Rows, sweep.Unfloat(row))
		t.Errors = append(t.Errors, msg)
	}
	if err := rows.Err(); err != nil {
		return sweep.Table{}, fmt.Errorf("iterate points: %w", err)
	}

	return t, nil
}

// Delete removes a run and its points.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r       Run
		cols    string
		created string
	)
	if err := sc.Scan(&r.ID, &r.Model, &r.Kinetics, &r.T, &r.Mode, &cols, &r.Points, &r.Invalid, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	if err := json.Unmarshal([]byte(cols), &r.Columns); err != nil {
		return Run{}, fmt.Errorf("decode columns of %s: %w", r.ID, err)
	}
	ts, err := time.Parse(timeLayout, created)
	if err != nil {
		return Run{}, fmt.Errorf("parse created_at of %s: %w", r.ID, err)
	}
	r.Created = ts

	return r, nil
}
