package catalog

import (
	"context"
	"fmt"
	"strings"

	"QualityStore/pkg/kit"
)

const OwnerIDPrefix = "owner_"

// Upload bounds. Cart totals are summed in int64 cents, so price times stock
// must stay far below its range.
const (
	MaxPrice = 1_000_000
	MaxStock = 1_000_000
)

var (
	ErrProductNotFound = kit.NotFound("product not found")
	ErrInvalidProduct  = kit.BadRequest("invalid product")
)

type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	ImageURL      string  `json:"image_url"`
	Description   string  `json:"description"`
	Stock         int     `json:"stock"`
	OwnerUploaded bool    `json:"owner_uploaded"`
	UploadedBy    string  `json:"uploaded_by,omitempty"`
}

// Filter narrows a listing. Search is a case-insensitive substring of the
// name; Category must match exactly. Empty fields match everything.
type Filter struct {
	Search   string
	Category string
}

func (f Filter) Match(p Product) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	return true
}

type Store interface {
	Ping(ctx context.Context) error
	List(ctx context.Context, f Filter) ([]Product, error)
	Get(ctx context.Context, id string) (Product, bool, error)
	// Create stores an owner upload under the next "owner_N" id.
	Create(ctx context.Context, p Product) (Product, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListByUploader(ctx context.Context, phone string) ([]Product, error)
}

// ValidateUpload normalizes an owner upload and rejects incomplete ones.
func ValidateUpload(p Product) (Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(strings.ToLower(p.Category))
	p.Description = strings.TrimSpace(p.Description)

	switch {
	case p.Name == "":
		return Product{}, fmt.Errorf("%w: name required", ErrInvalidProduct)
	case p.Category == "":
		return Product{}, fmt.Errorf("%w: category required", ErrInvalidProduct)
	case !(p.Price > 0):
		return Product{}, fmt.Errorf("%w: price must be positive", ErrInvalidProduct)
	case p.Price > MaxPrice:
		return Product{}, fmt.Errorf("%w: price must not exceed %d", ErrInvalidProduct, MaxPrice)
	case p.Stock < 0:
		return Product{}, fmt.Errorf("%w: stock must not be negative", ErrInvalidProduct)
	case p.Stock > MaxStock:
		return Product{}, fmt.Errorf("%w: stock must not exceed %d", ErrInvalidProduct, MaxStock)
	}

	p.OwnerUploaded = true
	return p, nil
}
