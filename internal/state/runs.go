package state

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"
)

// Run modes
const (
	ModeTerminal = "terminal"
	ModeHeadless = "headless"
)

// Run is one journal row: how a simulation session went. Nothing in a Run
// is enough to restore a simulation; it is a record, not a snapshot.
type Run struct {
	ID        string    `json:"id"` // session id
	Mode      string    `json:"mode"`
	Preset    string    `json:"preset"`
	Seed      uint64    `json:"seed"` // 0 when seeded from the clock
	StartedAt time.Time `json:"started_at"`
	Simulated float64   `json:"simulated"` // seconds of simulated time
	Frames    int       `json:"frames"`

	Created     int `json:"created"`
	Downloading int `json:"downloading"`
	Complete    int `json:"complete"`
	Failed      int `json:"failed"`
	MaxCards    int `json:"max_cards"`
}

// SaveRun inserts r, or replaces the row with the same id
func SaveRun(r Run) error {
	if r.ID == "" {
		return errors.New("run has no session id")
	}
	if r.StartedAt.IsZero() {
		r.StartedAt = time.Now()
	}

	return withTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO runs (
				id, mode, preset, seed, started_at, simulated, frames, created, downloading, complete, failed, max_cards
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				mode=excluded.mode,
				preset=excluded.preset,
				seed=excluded.seed,
				started_at=excluded.started_at,
				simulated=excluded.simulated,
				frames=excluded.frames,
				created=excluded.created,
				downloading=excluded.downloading,
				complete=excluded.complete,
				failed=excluded.failed,
				max_cards=excluded.max_cards
		`, r.ID, r.Mode, r.Preset, int64(r.Seed), r.StartedAt.UnixMilli(), r.Simulated, r.Frames,
			r.Created, r.Downloading, r.Complete, r.Failed, r.MaxCards)
		if err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		return nil
	})
}

const runColumns = `id, mode, preset, seed, started_at, simulated, frames, created, downloading, complete, failed, max_cards`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (Run, error) {
	var (
		r         Run
		seed      int64
		startedAt int64
		simulated sql.NullFloat64
	)
	err := s.Scan(&r.ID, &r.Mode, &r.Preset, &seed, &startedAt, &simulated, &r.Frames,
		&r.Created, &r.Downloading, &r.Complete, &r.Failed, &r.MaxCards)
	if err != nil {
		return Run{}, err
	}
	r.Seed = uint64(seed)
	r.StartedAt = time.UnixMilli(startedAt)
	r.Simulated = simulated.Float64
	return r, nil
}

// ListRuns returns the newest runs first. limit <= 0 returns all of them.
func ListRuns(limit int) ([]Run, error) {
	d, err := GetDB()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}

	rows, err := d.Query(`SELECT `+runColumns+` FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun looks a run up by session id. A missing run wraps os.ErrNotExist.
func GetRun(id string) (*Run, error) {
	d, err := GetDB()
	if err != nil {
		return nil, err
	}

	r, err := scanRun(d.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("run %s: %w", id, os.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to query run: %w", err)
	}
	return &r, nil
}

// ClearRuns deletes every run and returns how many were removed
func ClearRuns() (int64, error) {
	var n int64
	err := withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(`DELETE FROM runs`)
		if err != nil {
			return fmt.Errorf("failed to clear runs: %w", err)
		}
		n, err = res.RowsAffected()
		return err
	})
	return n, err
}

// PruneRuns keeps the newest keep runs and deletes the rest
func PruneRuns(keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	var n int64
	err := withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(`
			DELETE FROM runs WHERE id NOT IN (
				SELECT id FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?
			)`, keep)
		if err != nil {
			return fmt.Errorf("failed to prune runs: %w", err)
		}
		n, err = res.RowsAffected()
		return err
	})
	return n, err
}
