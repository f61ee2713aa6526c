package reporting

import "context"

// Service defines reporting queries for the dashboard.
type Service interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	LowStock(ctx context.Context, threshold int) ([]*LowStockItem, error)
}

type service struct {
	repo             Repository
	defaultThreshold int
}

// NewService creates a reporting service. defaultThreshold is used when the
// caller supplies none.
func NewService(repo Repository, defaultThreshold int) Service {
	if defaultThreshold <= 0 {
		defaultThreshold = 5
	}
	return &service{repo: repo, defaultThreshold: defaultThreshold}
}

func (s *service) Dashboard(ctx context.Context) (*Dashboard, error) {
	lowStock, err := s.repo.LowStock(ctx, s.defaultThreshold)
	if err != nil {
		return nil, err
	}
	totals, err := s.repo.Totals(ctx)
	if err != nil {
		return nil, err
	}
	if lowStock == nil {
		lowStock = []*LowStockItem{}
	}
	return &Dashboard{LowStock: lowStock, Totals: *totals}, nil
}

func (s *service) LowStock(ctx context.Context, threshold int) ([]*LowStockItem, error) {
	if threshold <= 0 {
		threshold = s.defaultThreshold
	}
	return s.repo.LowStock(ctx, threshold)
}
