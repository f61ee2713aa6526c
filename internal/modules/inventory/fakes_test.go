package inventory_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amods/cantina-backend/internal/modules/catalog"
	"github.com/amods/cantina-backend/internal/modules/inventory"
	"github.com/amods/cantina-backend/internal/modules/reporting"
	"github.com/amods/cantina-backend/internal/modules/sales"
	"github.com/amods/cantina-backend/internal/modules/stock"
)

// memState is the shared in-memory backing for all fake repositories.
// Presence in the stock map is a stock row; absence means zero on hand.
type memState struct {
	mu       sync.Mutex
	products map[uuid.UUID]*catalog.Product
	stock    map[uuid.UUID]int
	sales    []*sales.Sale
	saleSeq  int

	failStockSet   error
	failSaleAppend error
}

func newMemState() *memState {
	return &memState{
		products: make(map[uuid.UUID]*catalog.Product),
		stock:    make(map[uuid.UUID]int),
	}
}

func (m *memState) snapshot() *memState {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := newMemState()
	for id, p := range m.products {
		cp := *p
		snap.products[id] = &cp
	}
	for id, q := range m.stock {
		snap.stock[id] = q
	}
	snap.sales = append([]*sales.Sale(nil), m.sales...)
	return snap
}

func (m *memState) restore(snap *memState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = snap.products
	m.stock = snap.stock
	m.sales = snap.sales
}

// ── catalog fake ──────────────────────────────────────────────────────────────

type fakeProducts struct{ state *memState }

func (f *fakeProducts) Create(_ context.Context, p *catalog.Product) error {
	f.state.mu.Lock()
	defer f.state.mu.Unlock()
	cp := *p
	f.state.products[p.ID] = &cp
	return nil
}

func (f *fakeProducts) GetByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	f.state.mu.Lock()
	defer f.state.mu.Unlock()
	p, ok := f.state.products[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProducts) GetForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeProducts) List(_ context.Context, search string) ([]*catalog.ProductWithQuantity, error) {
	f.state.mu.Lock()
	defer f.state.mu.Unlock()
	var out []*catalog.ProductWithQuantity
	for id, p := range f.state.products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
			continue
		}
		out = append(out, &catalog.ProductWithQuantity{Product: *p, Quantity: f.state.stock[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeProducts) Update(_ context.Context, p *catalog.Product) error {
	f.state.mu.Lock()
	defer f.state.mu.Unlock()
	if _, ok := f.state.products[p.ID]; !ok {
		return catalog.ErrNotFound
	}
	cp := *p
	f.state.products[p.ID] = &cp
	return nil
}

func (f *fakeProducts) Delete(_ context.Context, id uuid.UUID) error {
	f.state.mu.Lock()
	defer f.state.mu.Unlock()
	if _, ok := f.state.products[id]; !ok {
		return catalog.ErrNotFound
	}
	delete(f.state.products, id)
	return nil
}

// ── stock fake ────────────────────────────────────────────────────────────────

type fakeStock struct{ state *memState }

func (f *fakeStock) Get(_ context.Context, productID uuid.UUID) (int, error) {
	f.state.mu.Lock()
	defer f.state.mu.Unlock()
	return f.state.stock[productID], nil
}

func (f *fakeStock) Set(_ context.Context, productID uuid.UUID, quantity int) error {
	f.state.mu.Lock()
	defer f.state.mu.Unlock()
	if f.state.failStockSet != nil {
		return f.state.failStockSet
	}
	f.state.stock[productID] = quantity
	return nil
}

// Decrement checks and subtracts under one lock, mirroring the guarded
// UPDATE of the postgres repository.
func (f *fakeStock) Decrement(_ context.Context, productID uuid.UUID, amount int) (int, error) {
	f.state.mu.Lock()
	defer f.state.mu.Unlock()
	current, ok := f.state.stock[productID]
	if !ok {
		return 0, stock.ErrNotFound
	}
	if current < amount {
		return 0, &stock.InsufficientError{Available: current}
	}
	f.state.stock[productID] = current - amount
	return current - amount, nil
}

func (f *fakeStock) Delete(_ context.Context, productID uuid.UUID) error {
	f.state.mu.Lock()
	defer f.state.mu.Unlock()
	delete(f.state.stock, productID)
	return nil
}

// ── sales fake ────────────────────────────────────────────────────────────────

type fakeSales struct{ state *memState }

func (f *fakeSales) Append(_ context.Context, s *sales.Sale) error {
	f.state.mu.Lock()
	defer f.state.mu.Unlock()
	if f.state.failSaleAppend != nil {
		return f.state.failSaleAppend
	}
	cp := *s
	f.state.saleSeq++
	cp.CreatedAt = time.Unix(int64(f.state.saleSeq), 0)
	f.state.sales = append(f.state.sales, &cp)
	return nil
}

func (f *fakeSales) CountByProduct(_ context.Context, productID uuid.UUID) (int, error) {
	f.state.mu.Lock()
	defer f.state.mu.Unlock()
	count := 0
	for _, s := range f.state.sales {
		if s.ProductID == productID {
			count++
		}
	}
	return count, nil
}

func (f *fakeSales) ListAll(_ context.Context) ([]*sales.Record, error) {
	f.state.mu.Lock()
	defer f.state.mu.Unlock()
	var out []*sales.Record
	for _, s := range f.state.sales {
		rec := &sales.Record{Sale: *s}
		if p, ok := f.state.products[s.ProductID]; ok {
			rec.ProductName = p.Name
		}
		out = append(out, rec)
	}
	// Newest first, matching the ledger's ORDER BY created_at DESC.
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ── reporting fake ────────────────────────────────────────────────────────────

type fakeReporting struct{ state *memState }

func (f *fakeReporting) LowStock(_ context.Context, threshold int) ([]*reporting.LowStockItem, error) {
	f.state.mu.Lock()
	defer f.state.mu.Unlock()
	var items []*reporting.LowStockItem
	for id, p := range f.state.products {
		qty := f.state.stock[id]
		if qty < threshold {
			items = append(items, &reporting.LowStockItem{
				ProductID: id,
				Name:      p.Name,
				UnitPrice: p.UnitPrice,
				Quantity:  qty,
			})
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Quantity != items[j].Quantity {
			return items[i].Quantity < items[j].Quantity
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (f *fakeReporting) Totals(_ context.Context) (*reporting.Totals, error) {
	f.state.mu.Lock()
	defer f.state.mu.Unlock()
	return &reporting.Totals{Products: len(f.state.products), Sales: len(f.state.sales)}, nil
}

// ── transactor fake ───────────────────────────────────────────────────────────

// fakeTransactor serializes transactions and restores a snapshot when fn
// fails, matching the all-or-nothing guarantee of the real transactor.
type fakeTransactor struct {
	mu    sync.Mutex
	state *memState
}

func (t *fakeTransactor) InTx(_ context.Context, fn func(s inventory.TxStores) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	snap := t.state.snapshot()
	err := fn(inventory.TxStores{
		Products: &fakeProducts{state: t.state},
		Stock:    &fakeStock{state: t.state},
		Sales:    &fakeSales{state: t.state},
	})
	if err != nil {
		t.state.restore(snap)
		return err
	}
	return nil
}

func newTestEngine() (inventory.Service, *memState) {
	state := newMemState()
	engine := inventory.NewService(
		&fakeTransactor{state: state},
		&fakeStock{state: state},
		&fakeReporting{state: state},
		5,
	)
	return engine, state
}
