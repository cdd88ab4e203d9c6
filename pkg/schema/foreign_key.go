package schema

import "strings"

// ReferenceAction is the keyword emitted for ON UPDATE / ON DELETE.
type ReferenceAction string

const (
	// Cascade propagates the change to referencing rows.
	Cascade ReferenceAction = "CASCADE"
	// Restrict rejects the change while references exist.
	Restrict ReferenceAction = "RESTRICT"
	// SetNull nulls the referencing column.
	SetNull ReferenceAction = "SET NULL"
	// SetDefault resets the referencing column to its default.
	SetDefault ReferenceAction = "SET DEFAULT"
	// NoAction is the PostgreSQL default; no clause is emitted.
	NoAction ReferenceAction = ""
)

// ForeignKey describes a column-level reference constraint. It is owned by
// exactly one Field.
type ForeignKey struct {
	tableName    string
	columnName   string
	updateAction ReferenceAction
	deleteAction ReferenceAction
}

// NewForeignKey parses a "table.column" target reference.
func NewForeignKey(column string) *ForeignKey {
	fk := &ForeignKey{}
	if table, col, ok := strings.Cut(column, "."); ok {
		fk.tableName = table
		fk.columnName = col
	} else {
		fk.columnName = column
	}
	return fk
}

// OnUpdate sets the ON UPDATE action.
func (fk *ForeignKey) OnUpdate(action ReferenceAction) *ForeignKey {
	fk.updateAction = action
	return fk
}

// OnDelete sets the ON DELETE action.
func (fk *ForeignKey) OnDelete(action ReferenceAction) *ForeignKey {
	fk.deleteAction = action
	return fk
}

// TableName returns the referenced table.
func (fk *ForeignKey) TableName() string {
	return fk.tableName
}

// ColumnName returns the referenced column.
func (fk *ForeignKey) ColumnName() string {
	return fk.columnName
}

// ToSQL renders the REFERENCES clause with optional actions.
func (fk *ForeignKey) ToSQL() string {
	sql := "REFERENCES " + fk.tableName + " (" + fk.columnName + ")"
	if fk.updateAction != NoAction {
		sql += " ON UPDATE " + string(fk.updateAction)
	}
	if fk.deleteAction != NoAction {
		sql += " ON DELETE " + string(fk.deleteAction)
	}
	return sql
}
