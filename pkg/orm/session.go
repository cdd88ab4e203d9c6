package orm

import (
	"context"
	"fmt"
	"strings"

	"github.com/slate-orm/slate/pkg/runtime"
)

// Session owns one connection and one cursor for its lifetime. It moves
// between disconnected and connected; every operation except Connect and
// Close requires the connected state and fails fast otherwise. A Session is
// not safe for concurrent use.
type Session struct {
	bind   runtime.Connector
	conn   runtime.Conn
	cursor runtime.Cursor
}

// NewSession creates a disconnected session bound to a connector.
func NewSession(bind runtime.Connector) *Session {
	return &Session{bind: bind}
}

// Open creates a session and connects it.
func Open(ctx context.Context, bind runtime.Connector) (*Session, error) {
	s := NewSession(bind)
	if err := s.Connect(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Connect opens the session's connection and cursor. Connecting a
// connected session is a no-op.
func (s *Session) Connect(ctx context.Context) error {
	if s.conn != nil {
		return nil
	}
	conn, err := s.bind.Connect(ctx)
	if err != nil {
		return err
	}
	s.conn = conn
	s.cursor = conn.Cursor()
	return nil
}

// Connected reports whether the session holds a live connection.
func (s *Session) Connected() bool {
	return s.conn != nil
}

// Close releases the cursor and connection. The session can be reconnected
// afterwards.
func (s *Session) Close(ctx context.Context) error {
	if s.conn == nil {
		return nil
	}
	_ = s.cursor.Close()
	err := s.conn.Close(ctx)
	s.conn = nil
	s.cursor = nil
	return err
}

// Execute runs a statement on the session's cursor.
func (s *Session) Execute(ctx context.Context, sql string, args ...any) error {
	if s.conn == nil {
		return runtime.ErrSessionClosed
	}
	return s.cursor.Execute(ctx, sql, args...)
}

// FetchOne returns the next result row, nil when exhausted.
func (s *Session) FetchOne() ([]any, error) {
	if s.conn == nil {
		return nil, runtime.ErrSessionClosed
	}
	return s.cursor.FetchOne()
}

// FetchMany returns up to n result rows.
func (s *Session) FetchMany(n int) ([][]any, error) {
	if s.conn == nil {
		return nil, runtime.ErrSessionClosed
	}
	return s.cursor.FetchMany(n)
}

// FetchAll returns all remaining result rows.
func (s *Session) FetchAll() ([][]any, error) {
	if s.conn == nil {
		return nil, runtime.ErrSessionClosed
	}
	return s.cursor.FetchAll()
}

// Commit commits the session's current unit of work.
func (s *Session) Commit(ctx context.Context) error {
	if s.conn == nil {
		return runtime.ErrSessionClosed
	}
	return s.conn.Commit(ctx)
}

// Rollback discards the session's current unit of work.
func (s *Session) Rollback(ctx context.Context) error {
	if s.conn == nil {
		return runtime.ErrSessionClosed
	}
	return s.conn.Rollback(ctx)
}

// Insert writes a record and sets its primary key from the value the
// database returns. Columns without a value are omitted so the table's DDL
// defaults apply.
func (s *Session) Insert(ctx context.Context, record *Record) error {
	pk := record.Table().PrimaryKey()
	if pk == nil {
		return runtime.ErrMissingPrimaryKey
	}

	columns, args := record.SQLValues()

	var sql string
	if len(columns) == 0 {
		sql = fmt.Sprintf(
			"INSERT INTO %s DEFAULT VALUES RETURNING %s;",
			record.Table().Name(), pk.Name(),
		)
	} else {
		placeholders := make([]string, len(columns))
		for i := range columns {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
		}
		sql = fmt.Sprintf(
			"INSERT INTO %s (%s) VALUES (%s) RETURNING %s;",
			record.Table().Name(),
			strings.Join(columns, ", "),
			strings.Join(placeholders, ", "),
			pk.Name(),
		)
	}

	if err := s.Execute(ctx, sql, args...); err != nil {
		return err
	}

	row, err := s.FetchOne()
	if err != nil {
		return err
	}
	if len(row) == 0 {
		return fmt.Errorf("insert into %s returned no primary key", record.Table().Name())
	}
	record.Set(pk.Name(), row[0])
	return nil
}

// Update rewrites a record's non-primary-key columns, identified by its
// current primary-key value.
func (s *Session) Update(ctx context.Context, record *Record) error {
	pk := record.Table().PrimaryKey()
	if pk == nil {
		return runtime.ErrMissingPrimaryKey
	}
	pkValue := record.Get(pk.Name())

	columns, args := record.SQLValues()
	if len(columns) == 0 {
		return fmt.Errorf("no columns to update for %s", record.Table().Name())
	}

	sets := make([]string, len(columns))
	for i, column := range columns {
		sets[i] = fmt.Sprintf("%s = $%d", column, i+1)
	}

	sql := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = $%d;",
		record.Table().Name(),
		strings.Join(sets, ", "),
		pk.Name(),
		len(columns)+1,
	)
	args = append(args, pkValue)

	return s.Execute(ctx, sql, args...)
}

// Delete removes a record's row and clears its in-memory primary key to
// mark it detached.
func (s *Session) Delete(ctx context.Context, record *Record) error {
	pk := record.Table().PrimaryKey()
	if pk == nil {
		return runtime.ErrMissingPrimaryKey
	}
	pkValue := record.Get(pk.Name())

	sql := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", record.Table().Name(), pk.Name())
	if err := s.Execute(ctx, sql, pkValue); err != nil {
		return err
	}
	record.Set(pk.Name(), nil)
	return nil
}
