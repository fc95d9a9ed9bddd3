package users

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
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

func (s *PostgresStore) Create(ctx context.Context, u User) (User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (id, name, email, is_owner)
		VALUES ('`+IDPrefix+`' || nextval('user_seq'), $1, $2, $3)
		RETURNING id
	`, u.Name, u.Email, u.IsOwner).Scan(&u.ID)
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (User, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var u User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, is_owner FROM users WHERE id = $1
	`, id).Scan(&u.ID, &u.Name, &u.Email, &u.IsOwner)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, err
	}
	return u, true, nil
}
