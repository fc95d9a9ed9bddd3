package customer

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
	pgUniqueCode = "23505"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *PostgresStore) Create(ctx context.Context, c Customer) (Customer, error) {
	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			INSERT INTO customers (id, name, email, pass_hash, phone, created_at)
			VALUES ('`+IDPrefix+`' || nextval('customer_seq'), $1, $2, $3, $4, $5)
			RETURNING id
		`, c.Name, c.Email, c.Hash, c.Phone, c.CreatedAt).Scan(&c.ID)
	})
	if isUniqueViolation(err) {
		return Customer{}, ErrEmailExists
	}
	if err != nil {
		return Customer{}, err
	}
	return c, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (Customer, bool, error) {
	return s.one(ctx, `WHERE id = $1`, id)
}

func (s *PostgresStore) ByEmail(ctx context.Context, email string) (Customer, bool, error) {
	return s.one(ctx, `WHERE email = $1`, email)
}

func (s *PostgresStore) one(ctx context.Context, where string, arg string) (Customer, bool, error) {
	var c Customer
	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			SELECT id, name, email, pass_hash, phone, created_at
			FROM customers
			`+where, arg).Scan(&c.ID, &c.Name, &c.Email, &c.Hash, &c.Phone, &c.CreatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return Customer{}, false, nil
	}
	if err != nil {
		return Customer{}, false, err
	}
	return c, true, nil
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueCode
}
