package cart

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"QualityStore/internal/catalog"
	"QualityStore/pkg/kit"
)

var (
	ErrInvalidQuantity   = kit.BadRequest("quantity must be at least 1")
	ErrInsufficientStock = kit.BadRequest("insufficient stock")
	ErrItemNotFound      = kit.NotFound("item not found in cart")
)

// Products is the slice of the catalog the cart reads stock and prices from.
type Products interface {
	Get(ctx context.Context, id string) (catalog.Product, bool, error)
}

type Service struct {
	Store    Store
	Products Products
	Log      *zap.Logger
	Now      func() time.Time
}

type Line struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	ProductImage string  `json:"product_image"`
	Quantity     int     `json:"quantity"`
	ItemTotal    float64 `json:"item_total"`
}

type View struct {
	Cart       []Line  `json:"cart"`
	Total      float64 `json:"total"`
	ItemsCount int     `json:"items_count"`
}

// Add inserts productID or increments its quantity. Stock is checked against
// the combined quantity at the time of the call only.
func (s *Service) Add(ctx context.Context, customerID, productID string, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}

	p, err := s.product(ctx, productID)
	if err != nil {
		return err
	}
	if qty > p.Stock {
		return fmt.Errorf("%w: only %d items available in stock", ErrInsufficientStock, p.Stock)
	}

	return s.Store.Mutate(ctx, customerID, func(entries []Entry) ([]Entry, error) {
		i := find(entries, productID)
		if i < 0 {
			return append(entries, Entry{ProductID: productID, Quantity: qty, AddedAt: s.now().UTC()}), nil
		}

		have := entries[i].Quantity
		if have+qty > p.Stock {
			return nil, fmt.Errorf("%w: only %d available, you already have %d in cart", ErrInsufficientStock, p.Stock, have)
		}
		entries[i].Quantity = have + qty
		return entries, nil
	})
}

// Update overwrites the quantity of an entry already in the cart.
func (s *Service) Update(ctx context.Context, customerID, productID string, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}

	p, err := s.product(ctx, productID)
	if err != nil {
		return err
	}
	if qty > p.Stock {
		return fmt.Errorf("%w: only %d items available", ErrInsufficientStock, p.Stock)
	}

	return s.Store.Mutate(ctx, customerID, func(entries []Entry) ([]Entry, error) {
		i := find(entries, productID)
		if i < 0 {
			return nil, ErrItemNotFound
		}
		entries[i].Quantity = qty
		return entries, nil
	})
}

// Remove drops productID from the cart. Removing an absent entry is not an error.
func (s *Service) Remove(ctx context.Context, customerID, productID string) error {
	return s.Store.Mutate(ctx, customerID, func(entries []Entry) ([]Entry, error) {
		out := entries[:0]
		for _, e := range entries {
			if e.ProductID != productID {
				out = append(out, e)
			}
		}
		return out, nil
	})
}

// View joins the entries with live catalog data. Entries whose product has
// since been deleted are left out of the listing and the total.
func (s *Service) View(ctx context.Context, customerID string) (View, error) {
	entries, err := s.Store.Entries(ctx, customerID)
	if err != nil {
		return View{}, err
	}

	v := View{Cart: make([]Line, 0, len(entries))}
	var totalCents int64

	for _, e := range entries {
		p, ok, err := s.Products.Get(ctx, e.ProductID)
		if err != nil {
			return View{}, err
		}
		if !ok {
			continue
		}

		lineCents := toCents(p.Price) * int64(e.Quantity)
		totalCents += lineCents

		v.Cart = append(v.Cart, Line{
			ProductID:    e.ProductID,
			ProductName:  p.Name,
			ProductPrice: p.Price,
			ProductImage: p.ImageURL,
			Quantity:     e.Quantity,
			ItemTotal:    fromCents(lineCents),
		})
	}

	v.Total = fromCents(totalCents)
	v.ItemsCount = len(v.Cart)
	return v, nil
}

func (s *Service) product(ctx context.Context, id string) (catalog.Product, error) {
	p, ok, err := s.Products.Get(ctx, id)
	if err != nil {
		return catalog.Product{}, err
	}
	if !ok {
		return catalog.Product{}, catalog.ErrProductNotFound
	}
	return p, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func toCents(price float64) int64 { return int64(math.Round(price * 100)) }

func fromCents(c int64) float64 { return float64(c) / 100 }
