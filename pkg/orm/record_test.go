package orm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slate-orm/slate/pkg/runtime"
	"github.com/slate-orm/slate/pkg/schema"
)

func TestRecord_GetSet(t *testing.T) {
	record := NewRecord(usersTable())

	record.Set("name", "ann")
	assert.Equal(t, "ann", record.Get("name"))

	assert.Nil(t, record.Get("missing"))
}

func TestRecord_LazyDefaults(t *testing.T) {
	t.Run("literal default resolves on first read", func(t *testing.T) {
		table := schema.NewTable("users",
			schema.Serial("id").PrimaryKey(),
			schema.Integer("age").Default(18),
		)
		record := NewRecord(table)

		assert.Equal(t, 18, record.Get("age"))
	})

	t.Run("producer default is stable per record", func(t *testing.T) {
		calls := 0
		table := schema.NewTable("users",
			schema.Serial("id").PrimaryKey(),
			schema.Integer("seq").DefaultFunc(func() any {
				calls++
				return calls
			}),
		)

		first := NewRecord(table)
		assert.Equal(t, 1, first.Get("seq"))
		assert.Equal(t, 1, first.Get("seq"))

		second := NewRecord(table)
		assert.Equal(t, 2, second.Get("seq"))
	})

	t.Run("unset text field is nil", func(t *testing.T) {
		table := schema.NewTable("users",
			schema.Serial("id").PrimaryKey(),
			schema.Text("bio"),
		)
		assert.Nil(t, NewRecord(table).Get("bio"))
	})
}

func TestRecord_PrimaryKey(t *testing.T) {
	record := NewRecordWith(usersTable(), map[string]any{"id": 7})

	value, err := record.PrimaryKey()
	require.NoError(t, err)
	assert.Equal(t, 7, value)

	keyless := NewRecord(schema.NewTable("logs", schema.Text("message")))
	_, err = keyless.PrimaryKey()
	assert.ErrorIs(t, err, runtime.ErrMissingPrimaryKey)
}

func TestRecord_SQLValues(t *testing.T) {
	record := NewRecordWith(usersTable(), map[string]any{
		"id":   7,
		"name": "ann",
		"age":  30,
	})

	columns, values := record.SQLValues()
	assert.Equal(t, []string{"name", "age"}, columns)
	assert.Equal(t, []any{"ann", 30}, values)
}

func TestRecord_SQLValuesSkipsNil(t *testing.T) {
	record := NewRecordWith(usersTable(), map[string]any{"name": "ann"})

	columns, values := record.SQLValues()
	assert.Equal(t, []string{"name"}, columns)
	assert.Equal(t, []any{"ann"}, values)
}
