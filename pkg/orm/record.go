// Package orm provides the row mapping, session and query layers over
// declared tables.
package orm

import (
	"github.com/slate-orm/slate/pkg/runtime"
	"github.com/slate-orm/slate/pkg/schema"
)

// Record is one mapped row of a declared table. Field values live in a
// per-record map keyed by column name; reading an unset field materializes
// the field's default.
type Record struct {
	table  *schema.Table
	values map[string]any
}

// NewRecord creates an empty record for the given table. No defaults are
// computed until the corresponding field is first read.
func NewRecord(table *schema.Table) *Record {
	return &Record{
		table:  table,
		values: make(map[string]any),
	}
}

// NewRecordWith creates a record pre-populated with the given column
// values.
func NewRecordWith(table *schema.Table, values map[string]any) *Record {
	r := NewRecord(table)
	for name, value := range values {
		r.values[name] = value
	}
	return r
}

// Table returns the record's table definition.
func (r *Record) Table() *schema.Table {
	return r.table
}

// Get returns the value of the named field. An unset field resolves its
// default on first read and keeps it, so producer defaults are stable per
// record. Unknown field names resolve to nil.
func (r *Record) Get(name string) any {
	if value, ok := r.values[name]; ok {
		return value
	}
	field := r.table.Field(name)
	if field == nil {
		return nil
	}
	value := field.DefaultValue()
	r.values[name] = value
	return value
}

// Set stores a value for the named field.
func (r *Record) Set(name string, value any) {
	r.values[name] = value
}

// PrimaryKey returns the record's primary-key value.
func (r *Record) PrimaryKey() (any, error) {
	pk := r.table.PrimaryKey()
	if pk == nil {
		return nil, runtime.ErrMissingPrimaryKey
	}
	return r.Get(pk.Name()), nil
}

// SQLValues returns the columns and values to write for this record:
// every non-primary-key field, in declaration order, whose resolved value
// is non-nil. Absent columns are left to the table's DDL defaults.
func (r *Record) SQLValues() ([]string, []any) {
	pk := r.table.PrimaryKey()

	var columns []string
	var values []any
	for _, field := range r.table.Fields() {
		if field == pk {
			continue
		}
		value := r.Get(field.Name())
		if value == nil {
			continue
		}
		columns = append(columns, field.Name())
		values = append(values, value)
	}
	return columns, values
}
