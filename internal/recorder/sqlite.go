package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"StockAnalysis/internal/model"
)

const dateLayout = "2006-01-02"

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_runs (
			id                    INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id                TEXT NOT NULL UNIQUE,
			timestamp             INTEGER NOT NULL,
			ticker                TEXT NOT NULL,
			period                TEXT NOT NULL,
			period_start          TEXT,
			period_end            TEXT,
			start_close           TEXT,
			latest_close          TEXT,
			total_return_pct      TEXT,
			avg_daily_return_pct  TEXT,
			annualized_vol_pct    TEXT,
			chart_path            TEXT,
			summary_path          TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ticker_ts ON analysis_runs(ticker, timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(rec *RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO analysis_runs
		(run_id, timestamp, ticker, period, period_start, period_end,
		 start_close, latest_close, total_return_pct, avg_daily_return_pct, annualized_vol_pct,
		 chart_path, summary_path)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		rec.ID, rec.RunAt.Unix(), rec.Ticker, string(rec.Period),
		rec.PeriodStart.Format(dateLayout), rec.PeriodEnd.Format(dateLayout),
		rec.StartClose, rec.LatestClose, rec.TotalReturnPct, rec.AvgDailyReturnPct, rec.AnnualizedVolatilityPct,
		rec.ChartPath, rec.SummaryPath,
	)
	return err
}

// History returns the most recent runs of ticker, newest first.
func (r *SQLiteRecorder) History(ticker string, limit int) ([]RunRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.Query(`SELECT run_id, timestamp, ticker, period, period_start, period_end,
			start_close, latest_close, total_return_pct, avg_daily_return_pct, annualized_vol_pct,
			chart_path, summary_path
		FROM analysis_runs WHERE ticker = ? ORDER BY timestamp DESC, id DESC LIMIT ?`,
		strings.ToUpper(ticker), limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var (
			rec        RunRecord
			ts         int64
			period     string
			start, end string
		)
		if err := rows.Scan(&rec.ID, &ts, &rec.Ticker, &period, &start, &end,
			&rec.StartClose, &rec.LatestClose, &rec.TotalReturnPct, &rec.AvgDailyReturnPct, &rec.AnnualizedVolatilityPct,
			&rec.ChartPath, &rec.SummaryPath); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		rec.RunAt = time.Unix(ts, 0)
		rec.Period = model.Period(period)
		if rec.PeriodStart, err = time.Parse(dateLayout, start); err != nil {
			return nil, fmt.Errorf("parse period_start: %w", err)
		}
		if rec.PeriodEnd, err = time.Parse(dateLayout, end); err != nil {
			return nil, fmt.Errorf("parse period_end: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
