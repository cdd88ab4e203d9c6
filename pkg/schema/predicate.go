package schema

import "fmt"

// Operator represents a comparison operator.
type Operator string

const (
	// OpEqual represents the = operator.
	OpEqual Operator = "="
	// OpNotEqual represents the != operator.
	OpNotEqual Operator = "!="
	// OpLessThan represents the < operator.
	OpLessThan Operator = "<"
	// OpLessThanOrEqual represents the <= operator.
	OpLessThanOrEqual Operator = "<="
	// OpGreaterThan represents the > operator.
	OpGreaterThan Operator = ">"
	// OpGreaterThanOrEqual represents the >= operator.
	OpGreaterThanOrEqual Operator = ">="
	// OpLike represents the LIKE operator.
	OpLike Operator = "LIKE"
)

// Predicate is one WHERE-clause component: a qualified column, a comparison
// operator, and the value bound to the fragment's single placeholder.
// Predicates describe a comparison, they never evaluate one.
type Predicate struct {
	Column   string
	Operator Operator
	Value    any
}

// Fragment renders the predicate as a SQL fragment whose one placeholder is
// numbered n, and returns the bound value.
func (p Predicate) Fragment(n int) (string, any) {
	return fmt.Sprintf("%s %s $%d", p.Column, p.Operator, n), p.Value
}

// Eq builds a column = value predicate.
func (f *Field) Eq(value any) Predicate {
	return Predicate{Column: f.qualified, Operator: OpEqual, Value: value}
}

// NotEq builds a column != value predicate.
func (f *Field) NotEq(value any) Predicate {
	return Predicate{Column: f.qualified, Operator: OpNotEqual, Value: value}
}

// Lt builds a column < value predicate.
func (f *Field) Lt(value any) Predicate {
	return Predicate{Column: f.qualified, Operator: OpLessThan, Value: value}
}

// Lte builds a column <= value predicate.
func (f *Field) Lte(value any) Predicate {
	return Predicate{Column: f.qualified, Operator: OpLessThanOrEqual, Value: value}
}

// Gt builds a column > value predicate.
func (f *Field) Gt(value any) Predicate {
	return Predicate{Column: f.qualified, Operator: OpGreaterThan, Value: value}
}

// Gte builds a column >= value predicate.
func (f *Field) Gte(value any) Predicate {
	return Predicate{Column: f.qualified, Operator: OpGreaterThanOrEqual, Value: value}
}

// Like builds a column LIKE pattern predicate.
func (f *Field) Like(pattern string) Predicate {
	return Predicate{Column: f.qualified, Operator: OpLike, Value: pattern}
}

// Desc returns a descending ordering expression for the column. Unlike the
// comparison builders it carries no bound value.
func (f *Field) Desc() string {
	return f.qualified + " DESC"
}
