// SPDX-License-Identifier: MIT
// Package: chaosgame/store
//
// sqlite.go - SQLite-backed run repository.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/katalvlaran/chaosgame/chaos"
	"github.com/katalvlaran/chaosgame/geometry"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id          TEXT PRIMARY KEY,
    mode        TEXT    NOT NULL,
    sides       INTEGER NOT NULL,
    fraction    REAL    NOT NULL,
    seed        INTEGER NOT NULL,
    seeded      INTEGER NOT NULL,
    point_count INTEGER NOT NULL,
    polygon     TEXT    NOT NULL,
    labels      TEXT    NOT NULL,
    points      TEXT    NOT NULL,
    vertices    TEXT    NOT NULL,
    created_at  TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_created_at ON runs (created_at);
`

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Summary describes a stored run without its point set.
type Summary struct {
	ID         string     `json:"id"`
	Mode       chaos.Mode `json:"mode"`
	Sides      int        `json:"sides"`
	Fraction   float64    `json:"fraction"`
	Seed       int64      `json:"seed"`
	Seeded     bool       `json:"seeded"`
	PointCount int        `json:"point_count"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Run is a stored run with its full result.
type Run struct {
	Summary
	Result *chaos.Result `json:"result"`
}

// Repository persists runs.
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

// New wraps an open database.
func New(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// Open opens (creating if needed) the SQLite database at path.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir db dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?mode=rwc&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	return db, nil
}

// Init creates the schema.
func (r *Repository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Ping reports whether the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Save stores res and returns its new id.
func (r *Repository) Save(ctx context.Context, res *chaos.Result) (string, error) {
	if res == nil {
		return "", ErrNilResult
	}
	polygon, err := json.Marshal(res.Polygon)
	if err != nil {
		return "", fmt.Errorf("encode polygon: %w", err)
	}
	labels, err := json.Marshal(res.Labels)
	if err != nil {
		return "", fmt.Errorf("encode labels: %w", err)
	}
	points, err := json.Marshal(res.Points)
	if err != nil {
		return "", fmt.Errorf("encode points: %w", err)
	}
	vertices, err := json.Marshal(res.Vertices)
	if err != nil {
		return "", fmt.Errorf("encode vertices: %w", err)
	}

	id := uuid.NewString()
	_, err = r.db.ExecContext(ctx, `
        INSERT INTO runs (id, mode, sides, fraction, seed, seeded, point_count,
                          polygon, labels, points, vertices, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `,
		id,
		string(res.Mode),
		res.Sides(),
		res.Fraction,
		res.Seed,
		boolToInt(res.Seeded),
		len(res.Points),
		string(polygon),
		string(labels),
		string(points),
		string(vertices),
		r.now().UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	return id, nil
}

// Get loads the run with the given id.
func (r *Repository) Get(ctx context.Context, id string) (*Run, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, mode, sides, fraction, seed, seeded, point_count, created_at,
               polygon, labels, points, vertices
        FROM runs
        WHERE id = ?
    `, id)

	var (
		run                               Run
		seeded                            int
		created                           string
		polygon, labels, points, vertices string
	)
	err := row.Scan(&run.ID, &run.Mode, &run.Sides, &run.Fraction, &run.Seed, &seeded,
		&run.PointCount, &created, &polygon, &labels, &points, &vertices)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("run %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	run.Seeded = seeded != 0
	if run.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return nil, fmt.Errorf("decode created_at: %w", err)
	}

	res := &chaos.Result{
		Mode:     run.Mode,
		Fraction: run.Fraction,
		Seed:     run.Seed,
		Seeded:   run.Seeded,
	}
	var poly []geometry.Point
	if err := json.Unmarshal([]byte(polygon), &poly); err != nil {
		return nil, fmt.Errorf("decode polygon: %w", err)
	}
	res.Polygon = poly
	if err := json.Unmarshal([]byte(labels), &res.Labels); err != nil {
		return nil, fmt.Errorf("decode labels: %w", err)
	}
	if err := json.Unmarshal([]byte(points), &res.Points); err != nil {
		return nil, fmt.Errorf("decode points: %w", err)
	}
	if err := json.Unmarshal([]byte(vertices), &res.Vertices); err != nil {
		return nil, fmt.Errorf("decode vertices: %w", err)
	}
	run.Result = res

	return &run, nil
}

// List returns up to limit summaries, newest first. limit <= 0 lists all.
func (r *Repository) List(ctx context.Context, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, mode, sides, fraction, seed, seeded, point_count, created_at
        FROM runs
        ORDER BY created_at DESC, id
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			s       Summary
			seeded  int
			created string
		)
		if err := rows.Scan(&s.ID, &s.Mode, &s.Sides, &s.Fraction, &s.Seed, &seeded, &s.PointCount, &created); err != nil {
			return nil, err
		}
		s.Seeded = seeded != 0
		if s.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("decode created_at: %w", err)
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

// Delete removes the run with the given id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("run %s: %w", id, ErrNotFound)
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
