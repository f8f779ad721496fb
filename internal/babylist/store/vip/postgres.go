// Package vip answers loyalty-program membership for cards and customers.
package vip

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) IsVip(ctx context.Context, cardNumber string) (bool, error) {
	cardNumber = strings.TrimSpace(cardNumber)
	if cardNumber == "" {
		return false, nil
	}
	return s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM vip_cards WHERE card_number = $1 AND active)`, cardNumber)
}

func (s *PostgresStore) IsVipViewer(ctx context.Context, viewerID string) (bool, error) {
	if viewerID == "" {
		return false, nil
	}
	return s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM vip_customers WHERE customer_id = $1 AND active)`, viewerID)
}

func (s *PostgresStore) exists(ctx context.Context, query, arg string) (bool, error) {
	var ok bool
	if err := s.db.QueryRowContext(ctx, query, arg).Scan(&ok); err != nil {
		return false, fmt.Errorf("check vip membership: %w", err)
	}
	return ok, nil
}
