// Package stores looks up the physical shops lists are opened in.
package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"babylist/internal/babylist/models"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// FindByLocateID returns the published shop with the locate id, or nil when
// there is none.
func (s *PostgresStore) FindByLocateID(ctx context.Context, locateID string) (*models.Store, error) {
	if locateID == "" {
		return nil, nil
	}
	var store models.Store
	err := s.db.QueryRowContext(ctx, `
		SELECT id, locate_id, name, allow_purchase
		FROM stores
		WHERE locate_id = $1 AND published
		LIMIT 1
	`, locateID).Scan(&store.ID, &store.LocateID, &store.Name, &store.AllowPurchase)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find store by locate id: %w", err)
	}
	return &store, nil
}
