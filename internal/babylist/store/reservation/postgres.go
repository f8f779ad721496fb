// Package reservation reads recent storefront orders placed against registry lines.
package reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"babylist/internal/babylist/models"
)

// PostgresStore queries the storefront orders database.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const selectReservedLines = `
	SELECT bo.sku, bo.detail_id
	FROM babylist_orders bo
	JOIN orders o ON o.id = bo.order_id
	WHERE bo.babylist_id = $1
	  AND o.placed_at > $2
`

type reservedRow struct {
	SKU      string `db:"sku"`
	DetailID int64  `db:"detail_id"`
}

// ReservedLines lists the lines of registryID ordered after since.
func (s *PostgresStore) ReservedLines(ctx context.Context, registryID string, since time.Time) ([]models.LineRef, error) {
	rows, err := s.pool.Query(ctx, selectReservedLines, registryID, since)
	if err != nil {
		return nil, fmt.Errorf("query reserved lines: %w", err)
	}
	reserved, err := pgx.CollectRows(rows, pgx.RowToStructByName[reservedRow])
	if err != nil {
		return nil, fmt.Errorf("collect reserved lines: %w", err)
	}

	refs := make([]models.LineRef, 0, len(reserved))
	for _, r := range reserved {
		refs = append(refs, models.LineRef{SKU: r.SKU, LineID: r.DetailID})
	}
	return refs, nil
}
