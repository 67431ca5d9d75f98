package sales_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/drafza/pos-api/internal/domain"
	"github.com/drafza/pos-api/internal/domain/entity"
	"github.com/drafza/pos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// memStore guarda stock y ventas; fakeTxRunner serializa las "transacciones"
// con un mutex (equivalente grueso del bloqueo de fila) y restaura un
// snapshot si el callback falla, imitando el Rollback.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu    sync.Mutex
	stock map[string]*entity.StockEntry // key: productID|location
	sales map[string]*entity.Sale      // key: saleID

	// duplicatesLeft fuerza ErrDuplicate en los próximos N Create de ventas,
	// para simular colisión de sale_number.
	duplicatesLeft int

	// saleVanishesOnRead simula otra anulación que comitea entre la lectura
	// y el borrado: GetByID devuelve la venta pero la quita del store.
	saleVanishesOnRead bool
}

func newMemStore() *memStore {
	return &memStore{
		stock: map[string]*entity.StockEntry{},
		sales: map[string]*entity.Sale{},
	}
}

func stockKey(productID, location string) string { return productID + "|" + location }

// seedStock registra una fila de stock.
func (s *memStore) seedStock(productID, location string, qty int) {
	s.stock[stockKey(productID, location)] = &entity.StockEntry{
		ProductID:   productID,
		Location:    location,
		Quantity:    qty,
		LastUpdated: time.Now(),
	}
}

func (s *memStore) stockQty(productID, location string) int {
	if e, ok := s.stock[stockKey(productID, location)]; ok {
		return e.Quantity
	}
	return -1
}

func (s *memStore) snapshot() (map[string]*entity.StockEntry, map[string]*entity.Sale) {
	stock := make(map[string]*entity.StockEntry, len(s.stock))
	for k, v := range s.stock {
		cp := *v
		stock[k] = &cp
	}
	sales := make(map[string]*entity.Sale, len(s.sales))
	for k, v := range s.sales {
		cp := *v
		cp.Items = append([]entity.SaleItem(nil), v.Items...)
		sales[k] = &cp
	}
	return stock, sales
}

func (s *memStore) restore(stock map[string]*entity.StockEntry, sales map[string]*entity.Sale) {
	s.stock = stock
	s.sales = sales
}

// ── StockRepository fake ──────────────────────────────────────────────────────

type fakeStockRepo struct{ store *memStore }

var _ repository.StockRepository = (*fakeStockRepo)(nil)

func (r *fakeStockRepo) Get(productID, location string) (*entity.StockEntry, error) {
	e, ok := r.store.stock[stockKey(productID, location)]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeStockRepo) GetForUpdate(productID, location string) (*entity.StockEntry, error) {
	return r.Get(productID, location)
}

func (r *fakeStockRepo) Upsert(stock *entity.StockEntry) error {
	cp := *stock
	r.store.stock[stockKey(stock.ProductID, stock.Location)] = &cp
	return nil
}

func (r *fakeStockRepo) DeleteByProduct(productID string) error {
	for k, e := range r.store.stock {
		if e.ProductID == productID {
			delete(r.store.stock, k)
		}
	}
	return nil
}

func (r *fakeStockRepo) ListByLocation(location string) ([]*repository.StockWithProduct, error) {
	return nil, nil
}

// ── SaleRepository fake ───────────────────────────────────────────────────────

type fakeSaleRepo struct{ store *memStore }

var _ repository.SaleRepository = (*fakeSaleRepo)(nil)

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	if r.store.duplicatesLeft > 0 {
		r.store.duplicatesLeft--
		return domain.ErrDuplicate
	}
	for _, existing := range r.store.sales {
		if existing.SaleNumber == sale.SaleNumber {
			return domain.ErrDuplicate
		}
	}
	cp := *sale
	cp.Items = append([]entity.SaleItem(nil), sale.Items...)
	r.store.sales[sale.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.store.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	cp.Items = append([]entity.SaleItem(nil), s.Items...)
	if r.store.saleVanishesOnRead {
		delete(r.store.sales, id)
	}
	return &cp, nil
}

func (r *fakeSaleRepo) Delete(id string) error {
	if _, ok := r.store.sales[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.sales, id)
	return nil
}

func (r *fakeSaleRepo) List(f repository.SaleFilter) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.store.sales {
		if f.Location != "" && s.Location != f.Location {
			continue
		}
		if f.Start != nil && s.CreatedAt.Before(*f.Start) {
			continue
		}
		if f.End != nil && s.CreatedAt.After(*f.End) {
			continue
		}
		cp := *s
		cp.Items = append([]entity.SaleItem(nil), s.Items...)
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

// ── TxRunner fake ─────────────────────────────────────────────────────────────

type fakeTxRunner struct{ store *memStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	saleRepo repository.SaleRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stockSnap, salesSnap := r.store.snapshot()
	err := fn(&fakeStockRepo{store: r.store}, &fakeSaleRepo{store: r.store})
	if err != nil {
		r.store.restore(stockSnap, salesSnap)
		return err
	}
	return nil
}
