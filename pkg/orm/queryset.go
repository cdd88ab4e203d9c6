package orm

import (
	"context"
	"fmt"
	"strings"

	"github.com/slate-orm/slate/pkg/runtime"
	"github.com/slate-orm/slate/pkg/schema"
)

// QuerySet is a lazy description of a SELECT over one table: the table plus
// accumulated filter predicates. Nothing executes until All, First or Count
// is called, and every call re-issues the query.
type QuerySet struct {
	session    *Session
	table      *schema.Table
	predicates []schema.Predicate
	orderBy    []string
}

// Query starts a QuerySet over a table on this session.
func (s *Session) Query(table *schema.Table) *QuerySet {
	return &QuerySet{
		session: s,
		table:   table,
	}
}

// Filter returns a new QuerySet with the predicates appended. Predicates
// are AND-combined; the receiver is left untouched.
func (q *QuerySet) Filter(predicates ...schema.Predicate) *QuerySet {
	next := &QuerySet{
		session:    q.session,
		table:      q.table,
		predicates: make([]schema.Predicate, 0, len(q.predicates)+len(predicates)),
		orderBy:    q.orderBy,
	}
	next.predicates = append(next.predicates, q.predicates...)
	next.predicates = append(next.predicates, predicates...)
	return next
}

// OrderBy returns a new QuerySet ordered by the given expressions, e.g.
// column names or Field.Desc() results.
func (q *QuerySet) OrderBy(exprs ...string) *QuerySet {
	next := &QuerySet{
		session:    q.session,
		table:      q.table,
		predicates: q.predicates,
		orderBy:    make([]string, 0, len(q.orderBy)+len(exprs)),
	}
	next.orderBy = append(next.orderBy, q.orderBy...)
	next.orderBy = append(next.orderBy, exprs...)
	return next
}

// whereSQL renders the accumulated predicates, numbering placeholders from
// left to right.
func (q *QuerySet) whereSQL() (string, []any) {
	if len(q.predicates) == 0 {
		return "", nil
	}
	fragments := make([]string, len(q.predicates))
	args := make([]any, len(q.predicates))
	for i, predicate := range q.predicates {
		fragments[i], args[i] = predicate.Fragment(i + 1)
	}
	return " WHERE " + strings.Join(fragments, " AND "), args
}

// ToSQL generates the SELECT statement and its bound arguments. Every
// column is aliased table_column so result sets stay unambiguous.
func (q *QuerySet) ToSQL() (string, []any) {
	fields := q.table.Fields()
	columns := make([]string, len(fields))
	for i, field := range fields {
		columns[i] = fmt.Sprintf("%s AS %s_%s", field.Name(), q.table.Name(), field.Name())
	}

	var sql strings.Builder
	sql.WriteString("SELECT ")
	sql.WriteString(strings.Join(columns, ", "))
	sql.WriteString(" FROM ")
	sql.WriteString(q.table.Name())

	where, args := q.whereSQL()
	sql.WriteString(where)

	if len(q.orderBy) > 0 {
		sql.WriteString(" ORDER BY ")
		sql.WriteString(strings.Join(q.orderBy, ", "))
	}

	sql.WriteString(";")
	return sql.String(), args
}

// All executes the query and hydrates one record per result row, values
// assigned positionally to the declared fields.
func (q *QuerySet) All(ctx context.Context) ([]*Record, error) {
	sql, args := q.ToSQL()
	if err := q.session.Execute(ctx, sql, args...); err != nil {
		return nil, err
	}

	rows, err := q.session.FetchAll()
	if err != nil {
		return nil, err
	}

	fields := q.table.Fields()
	records := make([]*Record, 0, len(rows))
	for _, row := range rows {
		record := NewRecord(q.table)
		for i, value := range row {
			if i >= len(fields) {
				break
			}
			record.Set(fields[i].Name(), value)
		}
		records = append(records, record)
	}
	return records, nil
}

// First executes the query and returns the first record, or ErrNotFound.
func (q *QuerySet) First(ctx context.Context) (*Record, error) {
	sql, args := q.ToSQL()
	if err := q.session.Execute(ctx, sql, args...); err != nil {
		return nil, err
	}

	row, err := q.session.FetchOne()
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, runtime.ErrNotFound
	}

	fields := q.table.Fields()
	record := NewRecord(q.table)
	for i, value := range row {
		if i >= len(fields) {
			break
		}
		record.Set(fields[i].Name(), value)
	}
	return record, nil
}

// Count executes a COUNT query with the accumulated predicates.
func (q *QuerySet) Count(ctx context.Context) (int64, error) {
	where, args := q.whereSQL()
	sql := fmt.Sprintf("SELECT COUNT(*) FROM %s%s;", q.table.Name(), where)

	if err := q.session.Execute(ctx, sql, args...); err != nil {
		return 0, err
	}
	row, err := q.session.FetchOne()
	if err != nil {
		return 0, err
	}
	if len(row) == 0 {
		return 0, fmt.Errorf("count query returned no rows")
	}

	switch v := row[0].(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("unexpected count type %T", row[0])
	}
}
