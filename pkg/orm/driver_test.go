package orm

import (
	"context"

	"github.com/slate-orm/slate/pkg/runtime"
	"github.com/slate-orm/slate/pkg/schema"
)

// statement is one Execute call captured by the fake cursor.
type statement struct {
	sql  string
	args []any
}

// fakeCursor records executed statements and serves queued result sets,
// one per Execute call, through the fetch methods.
type fakeCursor struct {
	statements []statement
	results    [][][]any
	buffer     [][]any
	pos        int
	execErr    error
	closed     bool
}

func (c *fakeCursor) Execute(ctx context.Context, sql string, args ...any) error {
	if c.execErr != nil {
		return c.execErr
	}
	c.statements = append(c.statements, statement{sql: sql, args: args})
	c.buffer = nil
	c.pos = 0
	if len(c.results) > 0 {
		c.buffer = c.results[0]
		c.results = c.results[1:]
	}
	return nil
}

func (c *fakeCursor) FetchOne() ([]any, error) {
	if c.pos >= len(c.buffer) {
		return nil, nil
	}
	row := c.buffer[c.pos]
	c.pos++
	return row, nil
}

func (c *fakeCursor) FetchMany(n int) ([][]any, error) {
	end := min(c.pos+n, len(c.buffer))
	rows := c.buffer[c.pos:end]
	c.pos = end
	return rows, nil
}

func (c *fakeCursor) FetchAll() ([][]any, error) {
	rows := c.buffer[c.pos:]
	c.pos = len(c.buffer)
	return rows, nil
}

func (c *fakeCursor) Close() error {
	c.closed = true
	return nil
}

type fakeConn struct {
	cursor    *fakeCursor
	commits   int
	rollbacks int
	closed    bool
}

func (c *fakeConn) Cursor() runtime.Cursor             { return c.cursor }
func (c *fakeConn) Commit(ctx context.Context) error   { c.commits++; return nil }
func (c *fakeConn) Rollback(ctx context.Context) error { c.rollbacks++; return nil }
func (c *fakeConn) Close(ctx context.Context) error    { c.closed = true; return nil }

// fakeDriver hands out a single fake connection whose cursor serves the
// given result sets in order.
type fakeDriver struct {
	conn *fakeConn
}

func newFakeDriver(results ...[][]any) *fakeDriver {
	return &fakeDriver{conn: &fakeConn{cursor: &fakeCursor{results: results}}}
}

func (d *fakeDriver) Connect(ctx context.Context) (runtime.Conn, error) {
	return d.conn, nil
}

func usersTable() *schema.Table {
	return schema.NewTable("users",
		schema.Serial("id").PrimaryKey(),
		schema.Char("name", 100),
		schema.Integer("age"),
	)
}
