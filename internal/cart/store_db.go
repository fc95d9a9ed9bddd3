package cart

import (
	"context"
	"database/sql"
	"time"
)

const (
	pingTimeout   = 1 * time.Second
	queryTimeout  = 3 * time.Second
	mutateTimeout = 5 * time.Second
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) Entries(ctx context.Context, customerID string) ([]Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return loadEntries(ctx, s.db, customerID)
}

// Mutate serializes writers of one cart with a transaction-scoped advisory
// lock, which also covers carts that have no rows yet.
func (s *PostgresStore) Mutate(ctx context.Context, customerID string, fn func([]Entry) ([]Entry, error)) error {
	ctx, cancel := context.WithTimeout(ctx, mutateTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, customerID); err != nil {
		return err
	}

	current, err := loadEntries(ctx, tx, customerID)
	if err != nil {
		return err
	}

	next, err := fn(current)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items WHERE customer_id = $1`, customerID); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cart_items (customer_id, product_id, quantity, added_at)
		VALUES ($1, $2, $3, $4)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range next {
		if _, err := stmt.ExecContext(ctx, customerID, e.ProductID, e.Quantity, e.AddedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func loadEntries(ctx context.Context, q querier, customerID string) ([]Entry, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT product_id, quantity, added_at
		FROM cart_items
		WHERE customer_id = $1
		ORDER BY position ASC
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0, 8)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ProductID, &e.Quantity, &e.AddedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
