package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	_ "github.com/glebarez/go-sqlite"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/misterclayt0n/stride/internal/config"
)

var (
	ErrNoActiveProgram = errors.New("no active program")
	ErrNotFound        = errors.New("not found")
)

const activeProgramKey = "active_program"

type Storage struct {
	DB *sql.DB
}

// NewStorage opens the configured database and makes sure the schema exists.
func NewStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	driver, dsn, err := driverFor(cfg.DB.ConnectionString, cfg.DB.AuthToken)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if driver == "sqlite" {
		// SQLite allows a single writer.
		db.SetMaxOpenConns(1)
	}

	st, err := New(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	log.Printf("INFO: [Storage] connected using %s driver", driver)
	return st, nil
}

// New wraps an open database and initializes the schema.
func New(ctx context.Context, db *sql.DB) (*Storage, error) {
	if err := InitializeDB(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// driverFor picks libSQL for remote URLs and the pure Go SQLite driver for
// local files.
func driverFor(conn, authToken string) (string, string, error) {
	if conn == "" {
		return "", "", fmt.Errorf("no database connection string configured")
	}

	switch {
	case strings.HasPrefix(conn, "libsql://"),
		strings.HasPrefix(conn, "https://"),
		strings.HasPrefix(conn, "http://"),
		strings.HasPrefix(conn, "wss://"),
		strings.HasPrefix(conn, "ws://"):
		if authToken == "" {
			return "libsql", conn, nil
		}
		u, err := url.Parse(conn)
		if err != nil {
			return "", "", fmt.Errorf("invalid database url: %w", err)
		}
		q := u.Query()
		q.Set("authToken", authToken)
		u.RawQuery = q.Encode()
		return "libsql", u.String(), nil
	default:
		return "sqlite", conn, nil
	}
}

func InitializeDB(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS programs (
            name TEXT PRIMARY KEY,
            data TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS program_history (
            id TEXT PRIMARY KEY,
            program_id TEXT NOT NULL,
            race_name TEXT,
            distance TEXT NOT NULL DEFAULT '',
            total_weeks INTEGER NOT NULL DEFAULT 0,
            completed INTEGER NOT NULL DEFAULT 0,
            planned INTEGER NOT NULL DEFAULT 0,
            archived_at TEXT NOT NULL,
            data TEXT NOT NULL
        );`,
		`CREATE INDEX IF NOT EXISTS idx_program_history_archived_at
            ON program_history (archived_at);`,
		`CREATE TABLE IF NOT EXISTS profile (
            id INTEGER PRIMARY KEY CHECK (id = 1),
            data TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return addHistorySummaryColumns(ctx, db)
}

// historySummaryColumns were added to program_history after its first
// release; databases created before that get them on open.
var historySummaryColumns = []struct{ name, def string }{
	{"distance", "TEXT NOT NULL DEFAULT ''"},
	{"total_weeks", "INTEGER NOT NULL DEFAULT 0"},
	{"completed", "INTEGER NOT NULL DEFAULT 0"},
	{"planned", "INTEGER NOT NULL DEFAULT 0"},
}

func addHistorySummaryColumns(ctx context.Context, db *sql.DB) error {
	rows, err := db.QueryContext(ctx, "SELECT name FROM pragma_table_info('program_history')")
	if err != nil {
		return fmt.Errorf("failed to read program_history columns: %w", err)
	}
	existing := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan column name: %w", err)
		}
		existing[name] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range historySummaryColumns {
		if existing[col.name] {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE program_history ADD COLUMN %s %s", col.name, col.def)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to add column %s: %w", col.name, err)
		}
	}
	return nil
}
