package session

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/clinicdesk/internal/client/models"
	"github.com/dmitrijs2005/clinicdesk/internal/client/repositories/localstore"
	"github.com/dmitrijs2005/clinicdesk/internal/client/storage"
	"github.com/dmitrijs2005/clinicdesk/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestStore_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	s := NewStore(openDB(t))

	empty, err := s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, empty.Empty())

	want := models.Session{Token: "tok", Role: models.RoleDoctor, UserID: "5", Username: "house"}
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, s.Clear(ctx))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Session{}, got)
}

func TestStore_SaveReplacesPreviousSession(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	s := NewStore(db)

	_, err := db.ExecContext(ctx, `INSERT INTO session (key, value) VALUES ('stale', 'x')`)
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, models.Session{Token: "a", Role: models.RoleAdmin, UserID: "1", Username: "root"}))

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM session`).Scan(&n))
	assert.Equal(t, 4, n, "exactly the four session keys are persisted")
}

type failingPut struct {
	localstore.Repository
	key string
}

func (f failingPut) Put(ctx context.Context, key, value string) error {
	if key == f.key {
		return errors.New("disk full")
	}
	return f.Repository.Put(ctx, key, value)
}

func TestStore_SaveFailureKeepsPreviousSession(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	prev := models.Session{Token: "old", Role: models.RoleAdmin, UserID: "1", Username: "admin"}
	require.NoError(t, NewStore(db).Save(ctx, prev))

	s := NewStoreWithRepository(db, func(q dbx.DBTX) localstore.Repository {
		return failingPut{Repository: localstore.NewSQLite(q), key: KeyUserID}
	})
	err := s.Save(ctx, models.Session{Token: "new", Role: models.RoleDoctor, UserID: "11", Username: "dr.house"})
	require.ErrorContains(t, err, "disk full")

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, prev, got)
}
