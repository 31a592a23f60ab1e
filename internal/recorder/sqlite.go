package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"TickerScope/internal/model"
)

// SQLiteRecorder persists analysis snapshots to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers (dashboards) don't block the writer.
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
		`CREATE TABLE IF NOT EXISTS snapshots (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			ticker          TEXT NOT NULL,
			current_price   REAL,
			price_change_1d REAL,
			price_change_pct_1d REAL,
			day_label       TEXT,
			volume          INTEGER,
			sma_20          REAL,
			sma_50          REAL,
			sma_200         REAL,
			ema_8           REAL,
			ema_10          REAL,
			ema_21          REAL,
			rsi_14          REAL,
			macd            REAL,
			macd_signal     REAL,
			macd_histogram  REAL,
			bb_upper        REAL,
			bb_middle       REAL,
			bb_lower        REAL,
			price_vs_sma_50 TEXT,
			price_vs_sma_200 TEXT,
			trend           TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ticker_ts ON snapshots(ticker, timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// Record inserts one snapshot row. Nil indicator values are stored as NULL.
func (r *SQLiteRecorder) Record(snap *model.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO snapshots
		(timestamp, ticker, current_price, price_change_1d, price_change_pct_1d,
		 day_label, volume,
		 sma_20, sma_50, sma_200, ema_8, ema_10, ema_21, rsi_14,
		 macd, macd_signal, macd_histogram,
		 bb_upper, bb_middle, bb_lower,
		 price_vs_sma_50, price_vs_sma_200, trend)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.Ticker, snap.CurrentPrice,
		snap.PriceChange1D, snap.PriceChangePct1D,
		snap.DayLabel, snap.Volume,
		nullable(snap.SMA20), nullable(snap.SMA50), nullable(snap.SMA200),
		nullable(snap.EMA8), nullable(snap.EMA10), nullable(snap.EMA21),
		nullable(snap.RSI14),
		nullable(snap.MACD), nullable(snap.MACDSignal), nullable(snap.MACDHistogram),
		nullable(snap.BBUpper), nullable(snap.BBMiddle), nullable(snap.BBLower),
		snap.PriceVsSMA50, snap.PriceVsSMA200, snap.Trend,
	)
	return err
}

func nullable(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
