package catalog

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

const productColumns = `id, name, category, price, image_url, description, stock, owner_uploaded, uploaded_by`

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

func (s *PostgresStore) List(ctx context.Context, f Filter) ([]Product, error) {
	var out []Product

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT `+productColumns+`
			FROM products
			WHERE ($1 = '' OR strpos(lower(name), lower($1)) > 0)
			  AND ($2 = '' OR category = $2)
			ORDER BY seq ASC
		`, f.Search, f.Category)
		if err != nil {
			return err
		}
		out, err = scanProducts(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (Product, bool, error) {
	var p Product

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		row := s.db.QueryRowContext(ctx, `
			SELECT `+productColumns+`
			FROM products
			WHERE id = $1
		`, id)
		return scanProduct(row, &p)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, false, nil
	}
	if err != nil {
		return Product{}, false, err
	}
	return p, true, nil
}

func (s *PostgresStore) Create(ctx context.Context, p Product) (Product, error) {
	p.OwnerUploaded = true

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			INSERT INTO products (id, name, category, price, image_url, description, stock, owner_uploaded, uploaded_by)
			VALUES ('`+OwnerIDPrefix+`' || nextval('owner_product_seq'), $1, $2, $3, $4, $5, $6, TRUE, $7)
			RETURNING id
		`, p.Name, p.Category, p.Price, p.ImageURL, p.Description, p.Stock, nullString(p.UploadedBy)).Scan(&p.ID)
	})
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) (bool, error) {
	var n int64

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		res, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
		if err != nil {
			return err
		}
		n, err = res.RowsAffected()
		return err
	})
	return n > 0, err
}

func (s *PostgresStore) ListByUploader(ctx context.Context, phone string) ([]Product, error) {
	var out []Product

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT `+productColumns+`
			FROM products
			WHERE owner_uploaded AND uploaded_by = $1
			ORDER BY seq ASC
		`, phone)
		if err != nil {
			return err
		}
		out, err = scanProducts(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Seed inserts the sample catalog, leaving rows that already exist untouched.
func (s *PostgresStore) Seed(ctx context.Context, products []Product) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO products (id, name, category, price, image_url, description, stock, owner_uploaded)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE)
		ON CONFLICT (id) DO NOTHING
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range products {
		if _, err := stmt.ExecContext(ctx, p.ID, p.Name, p.Category, p.Price, p.ImageURL, p.Description, p.Stock); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner, p *Product) error {
	var uploadedBy sql.NullString
	if err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.ImageURL, &p.Description, &p.Stock, &p.OwnerUploaded, &uploadedBy); err != nil {
		return err
	}
	p.UploadedBy = uploadedBy.String
	return nil
}

func scanProducts(rows *sql.Rows) ([]Product, error) {
	defer rows.Close()

	out := make([]Product, 0, 32)
	for rows.Next() {
		var p Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
