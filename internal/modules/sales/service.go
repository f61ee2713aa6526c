package sales

import "context"

// Service defines read-only sales history queries. Appending a sale goes
// through the inventory engine.
type Service interface {
	ListSales(ctx context.Context) ([]*Record, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListSales(ctx context.Context) ([]*Record, error) {
	return s.repo.ListAll(ctx)
}
