// Package localstore persists the client's key/value session data, the
// terminal counterpart of browser local storage.
package localstore

import (
	"context"

	"github.com/dmitrijs2005/clinicdesk/internal/dbx"
)

// Repository is the flat key/value table behind the persisted session.
type Repository interface {
	All(ctx context.Context) (map[string]string, error)
	Put(ctx context.Context, key, value string) error
	Truncate(ctx context.Context) error
}

// Factory binds a Repository to a connection or an open transaction.
type Factory func(q dbx.DBTX) Repository
