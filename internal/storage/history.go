package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"
)

const historyTable = `CREATE TABLE IF NOT EXISTS utest_runs (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	units_run INT NOT NULL,
	failures INT NOT NULL,
	errors INT NOT NULL,
	success TINYINT(1) NOT NULL,
	duration_seconds DOUBLE NOT NULL,
	recorded_at VARCHAR(64) NOT NULL
)`

// History records run summaries in a MySQL table, one row per run.
// It is optional: a zero DSN disables it entirely.
type History struct {
	dsn string
	log zerolog.Logger
}

// NewHistory returns a history sink for the given DSN.
func NewHistory(dsn string, log zerolog.Logger) *History {
	return &History{dsn: dsn, log: log}
}

// Enabled reports whether a DSN is configured.
func (h *History) Enabled() bool { return h.dsn != "" }

// Record inserts one row for the run. The connection is opened per
// call and closed before returning.
func (h *History) Record(meta RunMeta) error {
	if !h.Enabled() {
		return nil
	}
	db, err := sql.Open("mysql", h.dsn)
	if err != nil {
		return fmt.Errorf("open history database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(historyTable); err != nil {
		return fmt.Errorf("ensure history table: %w", err)
	}
	_, err = db.Exec(
		`INSERT INTO utest_runs
		 (units_run, failures, errors, success, duration_seconds, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		meta.UnitsRun, meta.Failures, meta.Errors, meta.Success,
		meta.DurationSeconds, meta.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	h.log.Debug().Int("units", meta.UnitsRun).Msg("run recorded to history")
	return nil
}
