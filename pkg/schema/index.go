package schema

// Index describes a named single-column index. Indexes are synthesized at
// table-declaration time for fields flagged Indexed and live in the
// registry until dropped.
type Index struct {
	Name       string
	TableName  string
	ColumnName string
	Unique     bool
}

// NewIndex creates an index descriptor.
func NewIndex(name, tableName, columnName string, unique bool) *Index {
	return &Index{
		Name:       name,
		TableName:  tableName,
		ColumnName: columnName,
		Unique:     unique,
	}
}

// ToSQL renders the CREATE INDEX statement.
func (i *Index) ToSQL() string {
	sql := "CREATE"
	if i.Unique {
		sql += " UNIQUE"
	}
	return sql + " INDEX " + i.Name + " ON " + i.TableName + " (" + i.ColumnName + ");"
}
