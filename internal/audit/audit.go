// Package audit provides best-effort logging of tool invocations.
// Entries are stored in ~/.analytics-mcp/log/audit.db and record which tool
// ran, against which property, how long it took and how it ended.
//
// # Fluent API
//
//	audit.Event("mcp:run_report", "report").
//		Property(rn).
//		Detail("dimensions", len(dims)).
//		Write(err)
//
// The source parameter follows the format "mcp:{tool}" for tool invocations
// and "cli:{command}" for CLI-driven operations.
package audit

import (
	"database/sql"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single audit log entry.
type Entry struct {
	Source   string // e.g., "mcp:run_report"
	Action   string // verb: report, list, get
	Property string // normalized property resource name, if the tool targets one

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs an audit entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write].
type Builder struct {
	entry Entry
}

// Event creates a new audit entry builder for an operation.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Property sets the property resource name this operation targets.
func (b *Builder) Property(rn string) *Builder {
	b.entry.Property = rn
	return b
}

// Detail adds a key-value pair to the entry's detail map. Can be called
// multiple times.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the entry, deriving success/failure from err.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them; audit logging
// is best-effort and must never fail the server.
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	db, err := openDB()
	if err != nil {
		return err
	}

	global = &Logger{db: db}
	return nil
}

// Log writes an entry. Safe to call if the logger is not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}

// Logger writes audit entries to a SQLite database.
type Logger struct {
	db *sql.DB
}
