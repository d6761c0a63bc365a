// storage.go implements SQLite-based persistence for audit entries.
//
// Separated from audit.go to isolate database concerns: audit.go provides
// the fluent API for building entries, this file handles the schema and
// writes. Write errors are reported to stderr but never propagated - a
// report must succeed even if it cannot be recorded.

package audit

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// dbPathFunc returns the database path. Tests override this to use a temp
// directory.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to the working directory so logging still works in
		// containers without a home directory.
		return filepath.Join(".analytics-mcp", "log", "audit.db")
	}
	return filepath.Join(home, ".analytics-mcp", "log", "audit.db")
}

// DBPath returns the path to the audit database.
func DBPath() string {
	return dbPathFunc()
}

func openDB() (*sql.DB, error) {
	p := DBPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func (l *Logger) log(e Entry) {
	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	success := 0
	if e.Success {
		success = 1
	}

	_, err := l.db.Exec(`
		INSERT INTO audit (start, end, source, action, property, success, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Start, e.End, e.Source, e.Action, nilIfEmpty(e.Property),
		success, nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "analytics-mcp: audit log write failed: %v\n", err)
	}
}

// migrate creates the audit table if it doesn't exist.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS audit (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			start    INTEGER NOT NULL,
			end      INTEGER NOT NULL,
			source   TEXT NOT NULL,
			action   TEXT NOT NULL,
			property TEXT,
			success  INTEGER NOT NULL,
			error    TEXT,
			detail   TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_audit_start ON audit(start);
		CREATE INDEX IF NOT EXISTS idx_audit_source ON audit(source);
	`)
	return err
}

// nilIfEmpty returns nil for empty strings, reducing NULL checks in queries.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
