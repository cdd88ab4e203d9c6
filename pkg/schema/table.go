package schema

import (
	"fmt"
	"strings"
)

// Table is a model definition: a named, ordered list of fields plus the
// primary-key field. Definitions are immutable after construction.
type Table struct {
	name       string
	fields     []*Field
	primaryKey *Field
	indexes    []*Index
}

// NewTable builds the definition for one database table. It attaches the
// table to every field, computes each field's qualified column reference,
// records the first field flagged as primary key, and synthesizes an index
// for every plain-index field. Field order is declaration order and
// determines DDL column order.
func NewTable(name string, fields ...*Field) *Table {
	t := &Table{
		name:   name,
		fields: fields,
	}

	// Column references must exist before anything reads them.
	for _, f := range fields {
		f.tableName = name
		f.qualified = name + "." + f.name
	}

	for _, f := range fields {
		if f.primaryKey && t.primaryKey == nil {
			t.primaryKey = f
		}
	}

	for _, f := range fields {
		if f.indexed && !f.unique && !f.primaryKey && f.foreignKey == nil {
			indexName := fmt.Sprintf("index_%s_%s", name, f.name)
			t.indexes = append(t.indexes, NewIndex(indexName, name, f.name, f.unique))
		}
	}

	return t
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Fields returns the fields in declaration order.
func (t *Table) Fields() []*Field {
	return t.fields
}

// PrimaryKey returns the primary-key field, or nil if none was declared.
func (t *Table) PrimaryKey() *Field {
	return t.primaryKey
}

// Indexes returns the indexes synthesized at declaration time.
func (t *Table) Indexes() []*Index {
	return t.indexes
}

// Field returns the field with the given column name, or nil.
func (t *Table) Field(name string) *Field {
	for _, f := range t.fields {
		if f.name == name {
			return f
		}
	}
	return nil
}

// CreateSQL renders the full CREATE TABLE statement, one column definition
// per line.
func (t *Table) CreateSQL() string {
	columns := make([]string, len(t.fields))
	for i, f := range t.fields {
		columns[i] = f.ToSQL()
	}
	return fmt.Sprintf("CREATE TABLE %s (\n    %s\n);", t.name, strings.Join(columns, ",\n    "))
}
