package localstore

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/clinicdesk/internal/dbx"
)

const (
	selectAllSQL = `SELECT key, value FROM session ORDER BY key`
	putSQL       = `INSERT OR REPLACE INTO session (key, value) VALUES (?, ?)`
	truncateSQL  = `DELETE FROM session`
)

type sqliteRepository struct {
	q dbx.DBTX
}

// NewSQLite returns a Repository over the session table reachable through q.
func NewSQLite(q dbx.DBTX) Repository {
	return &sqliteRepository{q: q}
}

func (r *sqliteRepository) All(ctx context.Context) (map[string]string, error) {
	rows, err := r.q.QueryContext(ctx, selectAllSQL)
	if err != nil {
		return nil, fmt.Errorf("read session keys: %w", err)
	}
	defer rows.Close()

	kv := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan session key: %w", err)
		}
		kv[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read session keys: %w", err)
	}
	return kv, nil
}

func (r *sqliteRepository) Put(ctx context.Context, key, value string) error {
	if _, err := r.q.ExecContext(ctx, putSQL, key, value); err != nil {
		return fmt.Errorf("put session key %q: %w", key, err)
	}
	return nil
}

func (r *sqliteRepository) Truncate(ctx context.Context) error {
	if _, err := r.q.ExecContext(ctx, truncateSQL); err != nil {
		return fmt.Errorf("truncate session: %w", err)
	}
	return nil
}
