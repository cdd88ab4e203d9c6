package runtime

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Engine holds a PostgreSQL connection URI and opens one connection per
// Connect call. The URI is opaque to the ORM and passed straight to pgx.
type Engine struct {
	uri string
}

// NewEngine creates an Engine for the given connection URI.
func NewEngine(uri string) *Engine {
	return &Engine{uri: uri}
}

// URI returns the connection URI.
func (e *Engine) URI() string {
	return e.uri
}

// Connect opens a single connection.
func (e *Engine) Connect(ctx context.Context) (Conn, error) {
	conn, err := pgx.Connect(ctx, e.uri)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	return &pgxConn{conn: conn}, nil
}

// pgxConn adapts a *pgx.Conn to the Conn interface. Statements run inside a
// lazily begun transaction so that Commit and Rollback delimit one unit of
// work, matching the cursor-style driver contract.
type pgxConn struct {
	conn *pgx.Conn
	tx   pgx.Tx
}

func (c *pgxConn) begin(ctx context.Context) (pgx.Tx, error) {
	if c.tx != nil {
		return c.tx, nil
	}
	tx, err := c.conn.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	c.tx = tx
	return tx, nil
}

// Cursor returns a cursor bound to this connection.
func (c *pgxConn) Cursor() Cursor {
	return &pgxCursor{conn: c}
}

// Commit commits the current unit of work. With no statements executed it
// is a no-op.
func (c *pgxConn) Commit(ctx context.Context) error {
	if c.tx == nil {
		return nil
	}
	err := c.tx.Commit(ctx)
	c.tx = nil
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback discards the current unit of work.
func (c *pgxConn) Rollback(ctx context.Context) error {
	if c.tx == nil {
		return nil
	}
	err := c.tx.Rollback(ctx)
	c.tx = nil
	if err != nil {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// Close rolls back any open transaction and releases the connection.
func (c *pgxConn) Close(ctx context.Context) error {
	if c.tx != nil {
		_ = c.tx.Rollback(ctx)
		c.tx = nil
	}
	return c.conn.Close(ctx)
}

// pgxCursor buffers each statement's result rows so the fetch calls can
// walk them after execution, the way a database cursor does.
type pgxCursor struct {
	conn *pgxConn
	rows [][]any
	pos  int
}

// Execute runs one statement with bound arguments, or a multi-statement
// script when called without arguments, and buffers any result rows.
func (c *pgxCursor) Execute(ctx context.Context, sql string, args ...any) error {
	tx, err := c.conn.begin(ctx)
	if err != nil {
		return err
	}

	c.rows = nil
	c.pos = 0

	statements := splitStatements(sql)
	if len(statements) > 1 {
		if len(args) > 0 {
			return fmt.Errorf("cannot bind arguments to a multi-statement script")
		}
		for _, stmt := range statements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return &QueryError{Query: stmt, Err: err}
			}
		}
		return nil
	}

	rows, err := tx.Query(ctx, sql, args...)
	if err != nil {
		return &QueryError{Query: sql, Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return &QueryError{Query: sql, Err: err}
		}
		c.rows = append(c.rows, values)
	}
	if err := rows.Err(); err != nil {
		return &QueryError{Query: sql, Err: err}
	}
	return nil
}

// FetchOne returns the next buffered row, or nil when exhausted.
func (c *pgxCursor) FetchOne() ([]any, error) {
	if c.pos >= len(c.rows) {
		return nil, nil
	}
	row := c.rows[c.pos]
	c.pos++
	return row, nil
}

// FetchMany returns up to n rows from the current position.
func (c *pgxCursor) FetchMany(n int) ([][]any, error) {
	if c.pos >= len(c.rows) {
		return nil, nil
	}
	end := min(c.pos+n, len(c.rows))
	rows := c.rows[c.pos:end]
	c.pos = end
	return rows, nil
}

// FetchAll returns all remaining rows.
func (c *pgxCursor) FetchAll() ([][]any, error) {
	rows := c.rows[c.pos:]
	c.pos = len(c.rows)
	return rows, nil
}

// Close discards the buffered rows.
func (c *pgxCursor) Close() error {
	c.rows = nil
	c.pos = 0
	return nil
}
