// Package registry provides the ordered catalog of declared tables and
// indexes, plus the DDL batch operations over it.
package registry

import (
	"fmt"
	"strings"
	"sync"

	"github.com/slate-orm/slate/pkg/schema"
)

// Registry is a thread-safe catalog of table definitions. Registration
// order is preserved and determines DDL emission order, so foreign-key
// target tables must be registered before their dependents.
type Registry struct {
	mu      sync.RWMutex
	tables  []*schema.Table
	byName  map[string]*schema.Table
	indexes []*schema.Index
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*schema.Table),
	}
}

// Register adds a table definition and its synthesized indexes. Definitions
// without a table name are abstract and rejected; duplicate names are
// rejected as well.
func (r *Registry) Register(table *schema.Table) error {
	if table.Name() == "" {
		return fmt.Errorf("cannot register a table without a name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[table.Name()]; ok {
		return fmt.Errorf("table %s already registered", table.Name())
	}

	r.tables = append(r.tables, table)
	r.byName[table.Name()] = table
	r.indexes = append(r.indexes, table.Indexes()...)

	return nil
}

// Table retrieves a registered definition by name.
func (r *Registry) Table(name string) (*schema.Table, error) {
	r.mu.RLock()
	table, ok := r.byName[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("table %s not registered", name)
	}
	return table, nil
}

// Tables returns all registered definitions in registration order.
func (r *Registry) Tables() []*schema.Table {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tables := make([]*schema.Table, len(r.tables))
	copy(tables, r.tables)
	return tables
}

// Indexes returns all registered indexes in registration order.
func (r *Registry) Indexes() []*schema.Index {
	r.mu.RLock()
	defer r.mu.RUnlock()

	indexes := make([]*schema.Index, len(r.indexes))
	copy(indexes, r.indexes)
	return indexes
}

// IndexSQL returns all index-creation statements joined into one batch,
// empty when no indexes are registered.
func (r *Registry) IndexSQL() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	statements := make([]string, len(r.indexes))
	for i, index := range r.indexes {
		statements[i] = index.ToSQL()
	}
	return strings.Join(statements, "\n")
}

// Has reports whether a table name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	_, ok := r.byName[name]
	r.mu.RUnlock()
	return ok
}

// Clear removes all registered tables and indexes.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tables = nil
	r.byName = make(map[string]*schema.Table)
	r.indexes = nil
}

// defaultRegistry is the process-wide registry instance.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a table to the process-wide registry.
func Register(table *schema.Table) error {
	return defaultRegistry.Register(table)
}

// Table retrieves a table from the process-wide registry.
func Table(name string) (*schema.Table, error) {
	return defaultRegistry.Table(name)
}

// Tables returns all tables from the process-wide registry.
func Tables() []*schema.Table {
	return defaultRegistry.Tables()
}

// IndexSQL returns the index batch from the process-wide registry.
func IndexSQL() string {
	return defaultRegistry.IndexSQL()
}

// Clear clears the process-wide registry.
func Clear() {
	defaultRegistry.Clear()
}
