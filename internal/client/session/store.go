// Package session keeps the persisted login state and gates dashboard pages
// on it.
package session

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/clinicdesk/internal/client/models"
	"github.com/dmitrijs2005/clinicdesk/internal/client/repositories/localstore"
	"github.com/dmitrijs2005/clinicdesk/internal/dbx"
)

// Well-known persisted keys.
const (
	KeyToken    = "token"
	KeyRole     = "role"
	KeyUserID   = "userId"
	KeyUsername = "username"
)

// Store reads, writes and clears the persisted session. It is the only
// place session keys are touched.
type Store struct {
	db   *sql.DB
	repo localstore.Factory
}

// NewStore keeps the session in the SQLite table of db.
func NewStore(db *sql.DB) *Store {
	return NewStoreWithRepository(db, localstore.NewSQLite)
}

// NewStoreWithRepository is NewStore with the repository constructor
// supplied by the caller. repo is bound to db for reads and to the
// transaction for Save.
func NewStoreWithRepository(db *sql.DB, repo localstore.Factory) *Store {
	return &Store{db: db, repo: repo}
}

// Load returns the persisted session; a zero Session when nothing is stored.
func (s *Store) Load(ctx context.Context) (models.Session, error) {
	m, err := s.repo(s.db).All(ctx)
	if err != nil {
		return models.Session{}, err
	}
	return models.Session{
		Token:    m[KeyToken],
		Role:     models.Role(m[KeyRole]),
		UserID:   m[KeyUserID],
		Username: m[KeyUsername],
	}, nil
}

// Save replaces the persisted session with sess in one transaction.
func (s *Store) Save(ctx context.Context, sess models.Session) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Truncate(ctx); err != nil {
			return err
		}
		values := [][2]string{
			{KeyToken, sess.Token},
			{KeyRole, string(sess.Role)},
			{KeyUserID, sess.UserID},
			{KeyUsername, sess.Username},
		}
		for _, kv := range values {
			if err := repo.Put(ctx, kv[0], kv[1]); err != nil {
				return err
			}
		}
		return nil
	})
}

// Clear removes every persisted key.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo(s.db).Truncate(ctx)
}
