package database

import (
	"database/sql"
	"embed"
	"fmt"
	"sort"
	"time"

	"github.com/mattlgroff/people-api/pkg/logger"
	_ "github.com/mattn/go-sqlite3"
)

// Schema scripts ship inside the binary so the server and the seed
// command work from any working directory.
//
//go:embed schema/*.sql
var schemaFS embed.FS

// Open opens (or creates) the SQLite database at the given path,
// configures the connection pool, and runs the schema scripts.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=ON&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(time.Hour)

	// Test the connection
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if err = configure(db); err != nil {
		db.Close()
		return nil, err
	}

	logger.Infof("Database connected successfully with WAL mode")

	if err = runSchemaScripts(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// configure sets SQLite pragmas. Foreign keys must be ON for the
// comment-to-person cascade to work.
func configure(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=30000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("executing %s: %w", pragma, err)
		}
	}

	return nil
}

// runSchemaScripts executes the embedded SQL scripts in filename order.
// Every statement is idempotent, so reopening an existing database is safe.
func runSchemaScripts(db *sql.DB) error {
	entries, err := schemaFS.ReadDir("schema")
	if err != nil {
		return fmt.Errorf("reading schema scripts: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := schemaFS.ReadFile("schema/" + name)
		if err != nil {
			return fmt.Errorf("reading schema script %s: %w", name, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing schema script %s: %w", name, err)
		}

		logger.Infof("Executed schema script: %s", name)
	}

	return nil
}
