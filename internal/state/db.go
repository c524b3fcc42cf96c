package state

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/surge-downloader/dlhist/internal/utils"
)

var (
	db         *sql.DB
	dbMu       sync.Mutex
	dbPath     string
	configured bool
)

// Configure sets the path of the run journal database
func Configure(path string) {
	dbMu.Lock()
	defer dbMu.Unlock()
	if db != nil && path != dbPath {
		db.Close()
		db = nil
	}
	dbPath = path
	configured = true
}

func initDB() error {
	dbMu.Lock()
	defer dbMu.Unlock()
	return openLocked()
}

// openLocked opens and migrates the database; dbMu must be held
func openLocked() error {
	if db != nil {
		return nil
	}
	if !configured || dbPath == "" {
		return fmt.Errorf("run journal not configured: call state.Configure() first")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating journal dir: %w", err)
	}

	d, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		mode TEXT NOT NULL,
		preset TEXT NOT NULL,
		seed INTEGER,
		started_at INTEGER NOT NULL,
		simulated REAL,
		frames INTEGER,
		created INTEGER,
		downloading INTEGER,
		complete INTEGER,
		failed INTEGER,
		max_cards INTEGER
	);
	CREATE INDEX IF NOT EXISTS runs_started ON runs(started_at);
	`
	if _, err := d.Exec(query); err != nil {
		d.Close()
		return fmt.Errorf("failed to create tables: %w", err)
	}

	db = d
	return nil
}

// CloseDB closes the database connection
func CloseDB() {
	dbMu.Lock()
	defer dbMu.Unlock()
	if db != nil {
		db.Close()
		db = nil
	}
}

// GetDB returns the database, opening it on first use
func GetDB() (*sql.DB, error) {
	dbMu.Lock()
	defer dbMu.Unlock()
	if err := openLocked(); err != nil {
		return nil, err
	}
	return db, nil
}

func withTx(fn func(*sql.Tx) error) error {
	d, err := GetDB()
	if err != nil {
		return err
	}

	tx, err := d.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			utils.Debug("journal rollback failed: %v", rbErr)
		}
		return err
	}
	return tx.Commit()
}
