// Package db provides SQLite database operations for the campaign platform.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	*sql.DB
	path string
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable foreign keys and WAL mode for better performance
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("execute pragma %q: %w", pragma, err)
		}
	}

	d := &DB{DB: db, path: path}

	// Run migrations
	if err := d.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Path returns the database file path.
func (d *DB) Path() string {
	return d.path
}

// Migrate runs database migrations.
func (d *DB) Migrate() error {
	schema := `
	-- Campaigns. Variant columns hold A/B test engagement counters,
	-- updated as delivery and tracking events arrive.
	CREATE TABLE IF NOT EXISTS campaigns (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		subject TEXT NOT NULL,
		content TEXT NOT NULL,
		status TEXT DEFAULT 'draft',
		variant_subject TEXT,
		variant_a_sends INTEGER DEFAULT 0,
		variant_a_opens INTEGER DEFAULT 0,
		variant_a_clicks INTEGER DEFAULT 0,
		variant_b_sends INTEGER DEFAULT 0,
		variant_b_opens INTEGER DEFAULT 0,
		variant_b_clicks INTEGER DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		sent_at DATETIME
	);

	CREATE INDEX IF NOT EXISTS idx_campaigns_status ON campaigns(status);

	-- Subscribers
	CREATE TABLE IF NOT EXISTS subscribers (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT,
		status TEXT DEFAULT 'active',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_subscribers_email ON subscribers(email);
	CREATE INDEX IF NOT EXISTS idx_subscribers_status ON subscribers(status);

	-- Suppression list: addresses that must never receive campaigns.
	CREATE TABLE IF NOT EXISTS suppressions (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		reason TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_suppressions_email ON suppressions(email);

	-- Per-send delivery tracking
	CREATE TABLE IF NOT EXISTS emails (
		id TEXT PRIMARY KEY,
		campaign_id TEXT NOT NULL,
		recipients TEXT NOT NULL,
		subject TEXT NOT NULL,
		status TEXT DEFAULT 'queued',
		attempts INTEGER DEFAULT 0,
		max_attempts INTEGER DEFAULT 3,
		scheduled_at DATETIME,
		sent_at DATETIME,
		message_id TEXT,
		error TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_emails_status ON emails(status);
	CREATE INDEX IF NOT EXISTS idx_emails_campaign ON emails(campaign_id);

	-- Delivery events and the admin audit trail share one table,
	-- distinguished by event_type prefix (delivery.* vs audit.*).
	CREATE TABLE IF NOT EXISTS email_events (
		id TEXT PRIMARY KEY,
		email_id TEXT NOT NULL,
		event_type TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		details TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_events_email ON email_events(email_id);
	CREATE INDEX IF NOT EXISTS idx_events_type ON email_events(event_type);
	`

	_, err := d.Exec(schema)
	return err
}

// SqlConn returns a go-zero sqlx.SqlConn wrapping the underlying database.
// This provides automatic circuit breaking and OpenTelemetry tracing on every query.
func (d *DB) SqlConn() sqlx.SqlConn {
	return sqlx.NewSqlConnFromDB(d.DB, sqlx.WithAcceptable(sqliteAcceptable))
}

// sqliteAcceptable tells the circuit breaker that "database is locked" errors
// are transient (SQLite WAL contention) and should not trip the breaker.
func sqliteAcceptable(err error) bool {
	return err == nil || strings.Contains(err.Error(), "database is locked")
}
