package registry

import (
	"context"
	"fmt"

	"github.com/slate-orm/slate/pkg/runtime"
)

// CreateAll creates every registered table in registration order, then the
// accumulated indexes as one batch. The whole run is a single unit of work:
// any failure rolls back everything executed so far. The connection is
// opened and closed here.
func (r *Registry) CreateAll(ctx context.Context, bind runtime.Connector) error {
	conn, err := bind.Connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	cursor := conn.Cursor()
	defer cursor.Close()

	for _, table := range r.Tables() {
		if err := cursor.Execute(ctx, table.CreateSQL()); err != nil {
			_ = conn.Rollback(ctx)
			return fmt.Errorf("failed to create table %s: %w", table.Name(), err)
		}
	}

	if indexSQL := r.IndexSQL(); indexSQL != "" {
		if err := cursor.Execute(ctx, indexSQL); err != nil {
			_ = conn.Rollback(ctx)
			return fmt.Errorf("failed to create indexes: %w", err)
		}
	}

	return conn.Commit(ctx)
}

// DropAll drops every registered table in reverse registration order, so
// dependents go before their foreign-key targets. Commits once at the end;
// missing tables are tolerated via IF EXISTS.
func (r *Registry) DropAll(ctx context.Context, bind runtime.Connector) error {
	conn, err := bind.Connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	cursor := conn.Cursor()
	defer cursor.Close()

	tables := r.Tables()
	for i := len(tables) - 1; i >= 0; i-- {
		table := tables[i]
		sql := fmt.Sprintf("DROP TABLE IF EXISTS %s", table.Name())
		if err := cursor.Execute(ctx, sql); err != nil {
			_ = conn.Rollback(ctx)
			return fmt.Errorf("failed to drop table %s: %w", table.Name(), err)
		}
	}

	return conn.Commit(ctx)
}

// CreateAll creates all tables registered in the process-wide registry.
func CreateAll(ctx context.Context, bind runtime.Connector) error {
	return defaultRegistry.CreateAll(ctx, bind)
}

// DropAll drops all tables registered in the process-wide registry.
func DropAll(ctx context.Context, bind runtime.Connector) error {
	return defaultRegistry.DropAll(ctx, bind)
}
