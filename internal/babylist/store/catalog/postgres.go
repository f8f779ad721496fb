// Package catalog serves live catalog entries for registry SKUs.
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"babylist/internal/babylist/models"
)

// PostgresStore reads catalog entries from PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const selectProducts = `
	SELECT sku, catalog_id, parent_id, name, price, regular_price, vip_price, variant_vip_price,
		is_variable, in_stock, visible_online, available_online
	FROM catalog_products
	WHERE sku = ANY($1)
`

const selectCategories = `
	SELECT pc.sku, c.id, c.name, c.slug
	FROM catalog_product_categories pc
	JOIN categories c ON c.id = pc.category_id
	WHERE pc.sku = ANY($1)
	ORDER BY pc.sku, pc.position, c.id
`

// BulkFetch loads every requested SKU in two round trips. SKUs the catalog
// does not sell are absent from the result.
func (s *PostgresStore) BulkFetch(ctx context.Context, skus []string) (map[string]models.CatalogEntry, error) {
	entries := make(map[string]models.CatalogEntry, len(skus))
	if len(skus) == 0 {
		return entries, nil
	}

	rows, err := s.db.QueryContext(ctx, selectProducts, pq.Array(skus))
	if err != nil {
		return nil, fmt.Errorf("query catalog products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.CatalogEntry
		if err := rows.Scan(
			&e.SKU, &e.CatalogID, &e.ParentID, &e.Name, &e.Price, &e.RegularPrice,
			&e.VipPrice, &e.VariantVipPrice, &e.IsVariable, &e.InStock, &e.VisibleOnline, &e.AvailableOnline,
		); err != nil {
			return nil, fmt.Errorf("scan catalog product: %w", err)
		}
		entries[e.SKU] = e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog products: %w", err)
	}
	if len(entries) == 0 {
		return entries, nil
	}

	if err := s.attachCategories(ctx, skus, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *PostgresStore) attachCategories(ctx context.Context, skus []string, entries map[string]models.CatalogEntry) error {
	rows, err := s.db.QueryContext(ctx, selectCategories, pq.Array(skus))
	if err != nil {
		return fmt.Errorf("query catalog categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sku string
		var c models.Category
		if err := rows.Scan(&sku, &c.ID, &c.Name, &c.Slug); err != nil {
			return fmt.Errorf("scan catalog category: %w", err)
		}
		entry, ok := entries[sku]
		if !ok {
			continue
		}
		entry.Categories = append(entry.Categories, c)
		entries[sku] = entry
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate catalog categories: %w", err)
	}
	return nil
}
