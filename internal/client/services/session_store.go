package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/expensetracker/internal/client/models"
	"github.com/dmitrijs2005/expensetracker/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/expensetracker/internal/common"
	"github.com/dmitrijs2005/expensetracker/internal/dbx"
)

// SessionStore persists the current user across restarts.
type SessionStore interface {
	// Load returns (nil, nil) when no session is stored and
	// ErrMalformedSession when the stored entry cannot be used.
	Load(ctx context.Context) (*models.User, error)
	Save(ctx context.Context, u *models.User) error
	Clear(ctx context.Context) error
}

type sqliteSessionStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSessionStore returns a SessionStore over the metadata table of db.
func NewSessionStore(db *sql.DB) SessionStore {
	return &sqliteSessionStore{db: db, now: time.Now}
}

func (s *sqliteSessionStore) Load(ctx context.Context) (*models.User, error) {
	raw, ok, err := metadata.NewSQLiteRepository(s.db).Get(ctx, common.SessionUserKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSession, err)
	}
	if !u.Valid() {
		return nil, fmt.Errorf("%w: missing user id", ErrMalformedSession)
	}
	return &u, nil
}

func (s *sqliteSessionStore) Save(ctx context.Context, u *models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	savedAt := []byte(s.now().UTC().Format(time.RFC3339))

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Put(ctx,
			metadata.Entry{Key: common.SessionUserKey, Value: raw},
			metadata.Entry{Key: common.SessionSavedAtKey, Value: savedAt},
		)
	})
}

func (s *sqliteSessionStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, common.SessionUserKey, common.SessionSavedAtKey)
	})
}
