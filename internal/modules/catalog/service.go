package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Service defines read-only catalog queries. Product mutations go through
// the inventory engine, which owns the transaction boundary.
type Service interface {
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context, search string) ([]*ProductWithQuantity, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.repo.GetByID(ctx, uid)
}

func (s *service) ListProducts(ctx context.Context, search string) ([]*ProductWithQuantity, error) {
	return s.repo.List(ctx, search)
}
