package runtime

import (
	"context"
	"strings"
)

// Connector opens database connections from an opaque URI. *Engine is the
// pgx-backed implementation; tests substitute their own.
type Connector interface {
	Connect(ctx context.Context) (Conn, error)
}

// Conn is one live database connection. Commit and Rollback end the current
// unit of work; Close releases the connection on all paths.
type Conn interface {
	Cursor() Cursor
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	Close(ctx context.Context) error
}

// Cursor executes statements and walks their result rows. The fetch
// position is mutable state, so a Cursor must not be shared across
// goroutines without external locking.
type Cursor interface {
	Execute(ctx context.Context, sql string, args ...any) error
	FetchOne() ([]any, error)
	FetchMany(n int) ([][]any, error)
	FetchAll() ([][]any, error)
	Close() error
}

// splitStatements splits a SQL script into individual statements on
// semicolons, dropping comment lines and empty fragments.
func splitStatements(sql string) []string {
	var cleaned []string
	for _, line := range strings.Split(sql, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		cleaned = append(cleaned, line)
	}

	var statements []string
	for _, stmt := range strings.Split(strings.Join(cleaned, "\n"), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}
