// Package schema describes tables as ordered field declarations and
// generates PostgreSQL DDL from them.
package schema

import (
	"fmt"
	"strings"
)

// DataType is the SQL type keyword a field maps to.
type DataType string

const (
	// TypeText represents the text type.
	TypeText DataType = "text"
	// TypeVarchar represents the varchar type.
	TypeVarchar DataType = "varchar"
	// TypeInteger represents the integer type.
	TypeInteger DataType = "integer"
	// TypeDate represents the date type.
	TypeDate DataType = "date"
	// TypeTimestamp represents the timestamp type.
	TypeTimestamp DataType = "timestamp"
	// TypeBoolean represents the boolean type.
	TypeBoolean DataType = "boolean"
	// TypeUUID represents the uuid type.
	TypeUUID DataType = "uuid"
	// TypeJSON represents the json type.
	TypeJSON DataType = "json"
	// TypeSerial represents the auto-incrementing serial type.
	TypeSerial DataType = "serial"
)

// Field describes one column: its SQL type, constraints and default-value
// policy. Once attached to a Table via NewTable it also knows its qualified
// table.column reference and can build WHERE-clause predicates.
type Field struct {
	name          string
	dataType      DataType
	maxLength     int
	defaultValue  any
	defaultFunc   func() any
	serverDefault string
	unique        bool
	nullable      bool
	indexed       bool
	primaryKey    bool
	foreignKey    *ForeignKey

	tableName string
	qualified string
}

func newField(name string, dataType DataType) *Field {
	return &Field{
		name:     name,
		dataType: dataType,
		nullable: true,
	}
}

// Text declares a text column.
func Text(name string) *Field {
	return newField(name, TypeText)
}

// Char declares a varchar column with the given maximum length.
func Char(name string, maxLength int) *Field {
	f := newField(name, TypeVarchar)
	f.maxLength = maxLength
	return f
}

// Integer declares an integer column.
func Integer(name string) *Field {
	return newField(name, TypeInteger)
}

// Date declares a date column.
func Date(name string) *Field {
	return newField(name, TypeDate)
}

// Timestamp declares a timestamp column.
func Timestamp(name string) *Field {
	return newField(name, TypeTimestamp)
}

// Boolean declares a boolean column.
func Boolean(name string) *Field {
	return newField(name, TypeBoolean)
}

// UUID declares a uuid column.
func UUID(name string) *Field {
	return newField(name, TypeUUID)
}

// JSON declares a json column.
func JSON(name string) *Field {
	return newField(name, TypeJSON)
}

// Serial declares an auto-incrementing serial column.
func Serial(name string) *Field {
	return newField(name, TypeSerial)
}

// Default sets the client-side default used when a record is created
// without a value for this field.
func (f *Field) Default(value any) *Field {
	f.defaultValue = value
	return f
}

// DefaultFunc sets a producer invoked per record to compute the default.
func (f *Field) DefaultFunc(fn func() any) *Field {
	f.defaultFunc = fn
	return f
}

// ServerDefault sets the DEFAULT clause emitted in DDL. Boolean values
// render as the TRUE/FALSE keywords.
func (f *Field) ServerDefault(value any) *Field {
	switch v := value.(type) {
	case bool:
		f.serverDefault = strings.ToUpper(fmt.Sprintf("%t", v))
	case string:
		f.serverDefault = v
	default:
		f.serverDefault = fmt.Sprintf("%v", v)
	}
	return f
}

// NotNull marks the column NOT NULL.
func (f *Field) NotNull() *Field {
	f.nullable = false
	return f
}

// Unique marks the column UNIQUE.
func (f *Field) Unique() *Field {
	f.unique = true
	return f
}

// Indexed requests a plain index on the column. Fields that are already
// unique, primary-keyed or foreign-keyed never get a separate index.
func (f *Field) Indexed() *Field {
	f.indexed = true
	return f
}

// PrimaryKey marks the column as the table's primary key.
func (f *Field) PrimaryKey() *Field {
	f.primaryKey = true
	return f
}

// References attaches a foreign-key constraint to the column.
func (f *Field) References(fk *ForeignKey) *Field {
	f.foreignKey = fk
	return f
}

// Name returns the column name.
func (f *Field) Name() string {
	return f.name
}

// DataType returns the SQL type keyword.
func (f *Field) DataType() DataType {
	return f.dataType
}

// TableName returns the owning table name, empty before attachment.
func (f *Field) TableName() string {
	return f.tableName
}

// Column returns the qualified table.column reference, empty before
// attachment.
func (f *Field) Column() string {
	return f.qualified
}

// IsPrimaryKey reports whether the field is flagged as primary key.
func (f *Field) IsPrimaryKey() bool {
	return f.primaryKey
}

// IsNullable reports whether the column accepts NULL.
func (f *Field) IsNullable() bool {
	return f.nullable
}

// ForeignKey returns the attached constraint, or nil.
func (f *Field) ForeignKey() *ForeignKey {
	return f.foreignKey
}

// HasDefault reports whether a client-side default is configured.
func (f *Field) HasDefault() bool {
	return f.defaultFunc != nil || f.defaultValue != nil
}

// DefaultValue resolves the client-side default: the producer's result if
// one is set, otherwise the literal default, otherwise nil.
func (f *Field) DefaultValue() any {
	if f.defaultFunc != nil {
		return f.defaultFunc()
	}
	return f.defaultValue
}

// ToSQL renders the column definition. Clause order is fixed: type, length,
// server default, NOT NULL, UNIQUE, PRIMARY KEY, foreign key.
func (f *Field) ToSQL() string {
	var sql strings.Builder
	sql.WriteString(f.name)
	sql.WriteString(" ")
	sql.WriteString(string(f.dataType))
	if f.maxLength > 0 {
		fmt.Fprintf(&sql, "(%d)", f.maxLength)
	}
	if f.serverDefault != "" {
		sql.WriteString(" DEFAULT ")
		sql.WriteString(f.serverDefault)
	}
	if !f.nullable {
		sql.WriteString(" NOT NULL")
	}
	if f.unique {
		sql.WriteString(" UNIQUE")
	}
	if f.primaryKey {
		sql.WriteString(" PRIMARY KEY")
	}
	if f.foreignKey != nil {
		sql.WriteString(" ")
		sql.WriteString(f.foreignKey.ToSQL())
	}
	return sql.String()
}
