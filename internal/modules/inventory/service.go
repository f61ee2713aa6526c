package inventory

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/amods/cantina-backend/internal/modules/catalog"
	"github.com/amods/cantina-backend/internal/modules/reporting"
	"github.com/amods/cantina-backend/internal/modules/sales"
	"github.com/amods/cantina-backend/internal/modules/stock"
)

// Service is the inventory engine: the one place where catalog, stock and
// sales are written together. Every mutating operation runs inside a single
// transaction and either commits all of its effects or none of them.
type Service interface {
	RegisterProduct(ctx context.Context, req RegisterProductRequest) (*catalog.ProductWithQuantity, error)
	UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*catalog.ProductWithQuantity, error)
	DeleteProduct(ctx context.Context, id string) error
	RecordSale(ctx context.Context, req RecordSaleRequest) (*sales.Sale, error)
	GetStock(ctx context.Context, productID string) (int, error)
	LowStockReport(ctx context.Context, threshold int) ([]*reporting.LowStockItem, error)
}

// RegisterProductRequest holds the data for registering a product with its
// opening stock.
type RegisterProductRequest struct {
	Name            string  `json:"name"`
	UnitPrice       float64 `json:"unit_price"`
	InitialQuantity int     `json:"initial_quantity"`
}

// UpdateProductRequest holds the edit-form data for a product. Quantity is a
// direct overwrite of the stock entry, not a delta.
type UpdateProductRequest struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// RecordSaleRequest holds the data for one sale. UserID comes from the
// authenticated request context, never from the client payload.
type RecordSaleRequest struct {
	ProductID string    `json:"product_id"`
	UserID    uuid.UUID `json:"-"`
	Quantity  int       `json:"quantity"`
}

type service struct {
	tx               Transactor
	stockRepo        stock.Repository
	reportingRepo    reporting.Repository
	defaultThreshold int
}

// NewService creates the inventory engine. stockRepo and reportingRepo serve
// the read-only paths; all writes go through tx.
func NewService(tx Transactor, stockRepo stock.Repository, reportingRepo reporting.Repository, defaultThreshold int) Service {
	if defaultThreshold <= 0 {
		defaultThreshold = 5
	}
	return &service{
		tx:               tx,
		stockRepo:        stockRepo,
		reportingRepo:    reportingRepo,
		defaultThreshold: defaultThreshold,
	}
}

func (s *service) RegisterProduct(ctx context.Context, req RegisterProductRequest) (*catalog.ProductWithQuantity, error) {
	if err := validateProductFields(req.Name, req.UnitPrice, req.InitialQuantity); err != nil {
		return nil, err
	}

	product := &catalog.Product{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		UnitPrice: req.UnitPrice,
	}
	err := s.tx.InTx(ctx, func(st TxStores) error {
		if err := st.Products.Create(ctx, product); err != nil {
			return err
		}
		return st.Stock.Set(ctx, product.ID, req.InitialQuantity)
	})
	if err != nil {
		return nil, s.mapErr(err)
	}

	log.WithFields(log.Fields{
		"product_id": product.ID,
		"quantity":   req.InitialQuantity,
	}).Info("product registered")
	return &catalog.ProductWithQuantity{Product: *product, Quantity: req.InitialQuantity}, nil
}

func (s *service) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*catalog.ProductWithQuantity, error) {
	productID, err := parseID(id, "id")
	if err != nil {
		return nil, err
	}
	if err := validateProductFields(req.Name, req.UnitPrice, req.Quantity); err != nil {
		return nil, err
	}

	var product *catalog.Product
	err = s.tx.InTx(ctx, func(st TxStores) error {
		p, err := st.Products.GetForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		p.Name = strings.TrimSpace(req.Name)
		p.UnitPrice = req.UnitPrice
		if err := st.Products.Update(ctx, p); err != nil {
			return err
		}
		// Overwrite, never a delta: this is the edit form, not a sale.
		if err := st.Stock.Set(ctx, productID, req.Quantity); err != nil {
			return err
		}
		product = p
		return nil
	})
	if err != nil {
		return nil, s.mapErr(err)
	}
	return &catalog.ProductWithQuantity{Product: *product, Quantity: req.Quantity}, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	productID, err := parseID(id, "id")
	if err != nil {
		return err
	}

	err = s.tx.InTx(ctx, func(st TxStores) error {
		if _, err := st.Products.GetForUpdate(ctx, productID); err != nil {
			return err
		}
		count, err := st.Sales.CountByProduct(ctx, productID)
		if err != nil {
			return err
		}
		if count > 0 {
			return &HasSalesHistoryError{Count: count}
		}
		if err := st.Stock.Delete(ctx, productID); err != nil {
			return err
		}
		return st.Products.Delete(ctx, productID)
	})
	if err != nil {
		return s.mapErr(err)
	}

	log.WithField("product_id", productID).Info("product deleted")
	return nil
}

func (s *service) RecordSale(ctx context.Context, req RecordSaleRequest) (*sales.Sale, error) {
	productID, err := parseID(req.ProductID, "product_id")
	if err != nil {
		return nil, err
	}
	if req.UserID == uuid.Nil {
		return nil, &ValidationError{Field: "user_id", Reason: "must not be empty"}
	}
	if req.Quantity <= 0 {
		return nil, &ValidationError{Field: "quantity", Reason: "must be a positive integer"}
	}

	sale := &sales.Sale{
		ID:        uuid.New(),
		ProductID: productID,
		UserID:    req.UserID,
		Quantity:  req.Quantity,
	}
	err = s.tx.InTx(ctx, func(st TxStores) error {
		// The row lock serializes concurrent sales on the same product; the
		// guarded decrement below would catch a race regardless.
		product, err := st.Products.GetForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		if _, err := st.Stock.Decrement(ctx, productID, req.Quantity); err != nil {
			return err
		}
		// Price is captured at sale time: later edits never rewrite history.
		sale.TotalPrice = product.UnitPrice * float64(req.Quantity)
		return st.Sales.Append(ctx, sale)
	})
	if err != nil {
		return nil, s.mapErr(err)
	}

	log.WithFields(log.Fields{
		"sale_id":    sale.ID,
		"product_id": productID,
		"quantity":   req.Quantity,
		"total":      sale.TotalPrice,
	}).Info("sale recorded")
	return sale, nil
}

func (s *service) GetStock(ctx context.Context, productID string) (int, error) {
	id, err := parseID(productID, "product_id")
	if err != nil {
		return 0, err
	}
	qty, err := s.stockRepo.Get(ctx, id)
	if err != nil {
		return 0, s.mapErr(err)
	}
	return qty, nil
}

func (s *service) LowStockReport(ctx context.Context, threshold int) ([]*reporting.LowStockItem, error) {
	if threshold <= 0 {
		threshold = s.defaultThreshold
	}
	items, err := s.reportingRepo.LowStock(ctx, threshold)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return items, nil
}

func validateProductFields(name string, unitPrice float64, quantity int) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if unitPrice < 0 {
		return &ValidationError{Field: "unit_price", Reason: "must not be negative"}
	}
	if quantity < 0 {
		return &ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	return nil
}

func parseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &ValidationError{Field: field, Reason: "must be a valid uuid"}
	}
	return id, nil
}

// mapErr folds store-level failures into the engine's error taxonomy.
// Anything unrecognized is a storage failure: the transaction has already
// been rolled back, so callers see either full effects or none.
func (s *service) mapErr(err error) error {
	var (
		vErr  *ValidationError
		iErr  *InsufficientStockError
		hErr  *HasSalesHistoryError
		stErr *stock.InsufficientError
	)
	switch {
	case errors.As(err, &vErr), errors.As(err, &iErr), errors.As(err, &hErr):
		return err
	case errors.Is(err, ErrNotFound),
		errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, stock.ErrNotFound):
		return ErrNotFound
	case errors.As(err, &stErr):
		return &InsufficientStockError{Available: stErr.Available}
	default:
		log.WithError(err).Error("inventory storage failure")
		return &StorageError{Err: err}
	}
}
