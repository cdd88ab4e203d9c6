package orm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slate-orm/slate/pkg/runtime"
)

func TestQuerySet_ToSQL(t *testing.T) {
	session := NewSession(newFakeDriver())
	table := usersTable()

	t.Run("bare select", func(t *testing.T) {
		sql, args := session.Query(table).ToSQL()
		assert.Equal(t,
			"SELECT id AS users_id, name AS users_name, age AS users_age FROM users;",
			sql,
		)
		assert.Empty(t, args)
	})

	t.Run("filters and order", func(t *testing.T) {
		age := table.Field("age")
		name := table.Field("name")

		sql, args := session.Query(table).
			Filter(age.Gt(18), name.Like("a%")).
			OrderBy(age.Desc()).
			ToSQL()

		assert.Equal(t,
			"SELECT id AS users_id, name AS users_name, age AS users_age FROM users"+
				" WHERE users.age > $1 AND users.name LIKE $2 ORDER BY users.age DESC;",
			sql,
		)
		assert.Equal(t, []any{18, "a%"}, args)
	})
}

func TestQuerySet_FilterIsImmutable(t *testing.T) {
	session := NewSession(newFakeDriver())
	table := usersTable()
	age := table.Field("age")

	base := session.Query(table)
	adults := base.Filter(age.Gte(18))
	minors := base.Filter(age.Lt(18))

	baseSQL, _ := base.ToSQL()
	assert.NotContains(t, baseSQL, "WHERE")

	adultsSQL, adultsArgs := adults.ToSQL()
	assert.Contains(t, adultsSQL, "WHERE users.age >= $1")
	assert.Equal(t, []any{18}, adultsArgs)

	minorsSQL, _ := minors.ToSQL()
	assert.Contains(t, minorsSQL, "WHERE users.age < $1")
	assert.NotContains(t, minorsSQL, ">=")
}

func TestQuerySet_All(t *testing.T) {
	session, _ := connectedSession(t, [][]any{
		{int64(1), "ann", int32(30)},
		{int64(2), "bea", int32(25)},
	})

	records, err := session.Query(usersTable()).All(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, int64(1), records[0].Get("id"))
	assert.Equal(t, "ann", records[0].Get("name"))
	assert.Equal(t, int32(30), records[0].Get("age"))
	assert.Equal(t, "bea", records[1].Get("name"))
}

func TestQuerySet_First(t *testing.T) {
	t.Run("returns the first row", func(t *testing.T) {
		session, _ := connectedSession(t, [][]any{
			{int64(1), "ann", int32(30)},
			{int64(2), "bea", int32(25)},
		})

		record, err := session.Query(usersTable()).First(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ann", record.Get("name"))
	})

	t.Run("empty result set", func(t *testing.T) {
		session, _ := connectedSession(t, [][]any{})

		_, err := session.Query(usersTable()).First(context.Background())
		assert.ErrorIs(t, err, runtime.ErrNotFound)
	})
}

func TestQuerySet_Count(t *testing.T) {
	session, driver := connectedSession(t, [][]any{{int64(3)}})
	table := usersTable()

	count, err := session.Query(table).
		Filter(table.Field("age").Gte(18)).
		Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	statements := driver.conn.cursor.statements
	require.Len(t, statements, 1)
	assert.Equal(t, "SELECT COUNT(*) FROM users WHERE users.age >= $1;", statements[0].sql)
	assert.Equal(t, []any{18}, statements[0].args)
}

func TestQuerySet_ClosedSession(t *testing.T) {
	session := NewSession(newFakeDriver())

	_, err := session.Query(usersTable()).All(context.Background())
	assert.ErrorIs(t, err, runtime.ErrSessionClosed)
}
