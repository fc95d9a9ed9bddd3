package owner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"QualityStore/internal/auth"
	"QualityStore/internal/catalog"
	"QualityStore/internal/session"
	"QualityStore/pkg/kit"
)

var ErrNotUploader = kit.Forbidden("you can only delete your own products")

type Service struct {
	Keys     *Keyring
	Tokens   *auth.TokenMaker
	Sessions session.Store
	Products catalog.Store
	Log      *zap.Logger
}

func (s *Service) Login(ctx context.Context, phone, key string) (auth.Issued, error) {
	phone = strings.TrimSpace(phone)
	if err := s.Keys.Check(phone, key); err != nil {
		s.log().Info("owner login rejected", zap.String("phone", phone), zap.Error(err))
		return auth.Issued{}, err
	}

	iss, err := s.Tokens.NewOwner(phone)
	if err != nil {
		return auth.Issued{}, fmt.Errorf("issue token: %w", err)
	}

	if s.Sessions != nil {
		if err := s.Sessions.Record(ctx, session.FromIssued(iss)); err != nil {
			s.log().Warn("record owner session", zap.Error(err), zap.String("phone", phone))
		}
	}
	return iss, nil
}

// LoginTime reports when phone last logged in, if the session side-table
// still remembers it.
func (s *Service) LoginTime(ctx context.Context, phone string) (time.Time, bool) {
	if s.Sessions == nil {
		return time.Time{}, false
	}
	rec, ok, err := s.Sessions.Last(ctx, auth.RoleOwner, phone)
	if err != nil {
		s.log().Warn("read owner session", zap.Error(err), zap.String("phone", phone))
		return time.Time{}, false
	}
	if !ok {
		return time.Time{}, false
	}
	return rec.IssuedAt, true
}

func (s *Service) Upload(ctx context.Context, phone string, p catalog.Product) (catalog.Product, error) {
	p, err := catalog.ValidateUpload(p)
	if err != nil {
		return catalog.Product{}, err
	}
	p.UploadedBy = phone

	created, err := s.Products.Create(ctx, p)
	if err != nil {
		return catalog.Product{}, err
	}
	s.log().Info("product uploaded", zap.String("product_id", created.ID), zap.String("phone", phone))
	return created, nil
}

func (s *Service) List(ctx context.Context, phone string) ([]catalog.Product, error) {
	return s.Products.ListByUploader(ctx, phone)
}

// Delete removes an owner upload. Seeded products are never deletable and
// answer like a missing product.
func (s *Service) Delete(ctx context.Context, phone, id string) error {
	p, ok, err := s.Products.Get(ctx, id)
	if err != nil {
		return err
	}
	if !ok || !p.OwnerUploaded {
		return catalog.ErrProductNotFound
	}
	if p.UploadedBy != phone {
		return ErrNotUploader
	}

	deleted, err := s.Products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return catalog.ErrProductNotFound
	}
	s.log().Info("product deleted", zap.String("product_id", id), zap.String("phone", phone))
	return nil
}

func (s *Service) log() *zap.Logger {
	if s.Log != nil {
		return s.Log
	}
	return zap.NewNop()
}
