package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/antcolony/aco"
)

// Run statuses.
const (
	StatusRunning  = "running"
	StatusFinished = "finished"
	StatusFailed   = "failed"
)

// Params are the solver settings recorded with a run.
type Params struct {
	Ants                 int     `json:"ants"`
	BestAnts             int     `json:"best_ants"`
	Iterations           int     `json:"iterations"`
	DecayRate            float64 `json:"decay_rate"`
	Alpha                float64 `json:"alpha"`
	Beta                 float64 `json:"beta"`
	Workers              int     `json:"workers"`
	StartNode            int     `json:"start_node"`
	Seed                 int64   `json:"seed"`
	MaxConstructAttempts int     `json:"max_construct_attempts"`
}

// ParamsFrom copies the recordable fields of opts.
func ParamsFrom(opts aco.Options) Params {
	return Params{
		Ants:                 opts.Ants,
		BestAnts:             opts.BestAnts,
		Iterations:           opts.Iterations,
		DecayRate:            opts.DecayRate,
		Alpha:                opts.Alpha,
		Beta:                 opts.Beta,
		Workers:              opts.Workers,
		StartNode:            opts.StartNode,
		Seed:                 opts.Seed,
		MaxConstructAttempts: opts.MaxConstructAttempts,
	}
}

// Run is one row of the history.
type Run struct {
	ID         string
	Instance   string
	Nodes      int
	Params     Params
	StartedAt  time.Time
	FinishedAt time.Time // zero while running
	Status     string

	// BestDistance is NaN and BestTour nil when the run produced no tour.
	BestDistance float64
	BestTour     []int
	Error        string
}

// BeginRun inserts a running row and returns its new id.
func (s *Store) BeginRun(ctx context.Context, instance string, nodes int, p Params) (string, error) {
	id := uuid.Must(uuid.NewV7()).String()
	params, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("begin run: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, instance, nodes, params, started_at, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, instance, nodes, string(params), s.now().UnixMilli(), StatusRunning)
	if err != nil {
		return "", fmt.Errorf("begin run: %w", err)
	}

	return id, nil
}

// RecordReport appends one coordinator report to run id. Writing the same
// (iteration, worker) twice is a no-op.
func (s *Store) RecordReport(ctx context.Context, id string, r aco.Report) error {
	tour, err := json.Marshal(r.Result.Tour.Nodes())
	if err != nil {
		return fmt.Errorf("record report: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reports (run_id, iteration, worker, distance, tour)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`, id, r.Iteration, r.Worker, r.Result.Distance, string(tour))
	if err != nil {
		return fmt.Errorf("record report: %w", err)
	}

	return nil
}

// FinishRun stores the outcome of run id. A non-nil runErr marks it failed;
// the best tour is kept either way when one exists.
func (s *Store) FinishRun(ctx context.Context, id string, res aco.Result, runErr error) error {
	var (
		status = StatusFinished
		msg    sql.NullString
		dist   sql.NullFloat64
		tour   sql.NullString
	)
	if runErr != nil {
		status = StatusFailed
		msg = sql.NullString{String: runErr.Error(), Valid: true}
	}
	if len(res.Best.Tour) > 0 && !math.IsInf(res.Best.Distance, 0) {
		b, err := json.Marshal(res.Best.Tour.Nodes())
		if err != nil {
			return fmt.Errorf("finish run: %w", err)
		}
		dist = sql.NullFloat64{Float64: res.Best.Distance, Valid: true}
		tour = sql.NullString{String: string(b), Valid: true}
	}

	out, err := s.db.ExecContext(ctx, `
		UPDATE runs
		SET finished_at = ?, status = ?, best_distance = ?, best_tour = ?, error = ?
		WHERE id = ?
	`, s.now().UnixMilli(), status, dist, tour, msg, id)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	if n, err := out.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("finish run %s: %w", id, ErrRunNotFound)
	}

	return nil
}

const runColumns = `id, instance, nodes, params, started_at, finished_at, status, best_distance, best_tour, error`

// Runs returns up to limit runs, newest first. limit <= 0 means all.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+runColumns+`
		FROM runs
		ORDER BY started_at DESC, id DESC
		LIMIT ?
	`, limit)
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

// Get returns run id.
func (s *Store) Get(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("run %s: %w", id, ErrRunNotFound)
	}

	return r, err
}

// Reports returns the reports of run id in receive order.
func (s *Store) Reports(ctx context.Context, id string) ([]aco.Report, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT iteration, worker, distance, tour
		FROM reports
		WHERE run_id = ?
		ORDER BY iteration ASC, worker ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	reports := []aco.Report{}
	for rows.Next() {
		var (
			r     aco.Report
			tour  string
			nodes []int
		)
		if err := rows.Scan(&r.Iteration, &r.Worker, &r.Result.Distance, &tour); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		if err := json.Unmarshal([]byte(tour), &nodes); err != nil {
			return nil, fmt.Errorf("decode report tour: %w", err)
		}
		if r.Result.Tour, err = aco.TourFromNodes(nodes); err != nil {
			return nil, fmt.Errorf("decode report tour: %w", err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}

	return reports, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r        Run
		params   string
		started  int64
		finished sql.NullInt64
		dist     sql.NullFloat64
		tour     sql.NullString
		msg      sql.NullString
	)
	if err := sc.Scan(&r.ID, &r.Instance, &r.Nodes, &params, &started, &finished, &r.Status, &dist, &tour, &msg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	if err := json.Unmarshal([]byte(params), &r.Params); err != nil {
		return Run{}, fmt.Errorf("decode run params: %w", err)
	}
	r.StartedAt = time.UnixMilli(started)
	if finished.Valid {
		r.FinishedAt = time.UnixMilli(finished.Int64)
	}
	r.BestDistance = math.NaN()
	if dist.Valid {
		r.BestDistance = dist.Float64
	}
	if tour.Valid {
		if err := json.Unmarshal([]byte(tour.String), &r.BestTour); err != nil {
			return Run{}, fmt.Errorf("decode best tour: %w", err)
		}
	}
	r.Error = msg.String

	return r, nil
}
