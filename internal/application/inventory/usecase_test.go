package inventory_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drafza/pos-api/internal/application/dto"
	"github.com/drafza/pos-api/internal/application/inventory"
	"github.com/drafza/pos-api/internal/domain"
	"github.com/drafza/pos-api/internal/domain/entity"
	"github.com/drafza/pos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memInv struct {
	products map[string]*entity.Product
	stock    map[string]*entity.StockEntry // key: productID|location
	// rolledBack indica si el último RunCatalog restauró el snapshot.
	rolledBack bool
}

func newMemInv() *memInv {
	return &memInv{
		products: map[string]*entity.Product{},
		stock:    map[string]*entity.StockEntry{},
	}
}

func (m *memInv) seedProduct(id, name, typ, size, price string, threshold int) {
	m.products[id] = &entity.Product{
		ID:                id,
		Name:              name,
		Type:              typ,
		Category:          entity.CategoryAdult,
		Size:              size,
		Price:             decimal.RequireFromString(price),
		LowStockThreshold: threshold,
	}
}

func (m *memInv) seedStock(productID, location string, qty int) {
	m.stock[productID+"|"+location] = &entity.StockEntry{
		ProductID:   productID,
		Location:    location,
		Quantity:    qty,
		LastUpdated: time.Now(),
	}
}

func (m *memInv) qty(productID, location string) int {
	if e, ok := m.stock[productID+"|"+location]; ok {
		return e.Quantity
	}
	return -1
}

type invProductRepo struct{ m *memInv }

var _ repository.ProductRepository = (*invProductRepo)(nil)

func (r *invProductRepo) Create(p *entity.Product) error { r.m.products[p.ID] = p; return nil }
func (r *invProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.m.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *invProductRepo) List() ([]*entity.Product, error)  { return nil, nil }
func (r *invProductRepo) Update(p *entity.Product) error    { return nil }
func (r *invProductRepo) Delete(id string) error            { return nil }

type invStockRepo struct{ m *memInv }

var _ repository.StockRepository = (*invStockRepo)(nil)

func (r *invStockRepo) Get(productID, location string) (*entity.StockEntry, error) {
	e, ok := r.m.stock[productID+"|"+location]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *invStockRepo) GetForUpdate(productID, location string) (*entity.StockEntry, error) {
	return r.Get(productID, location)
}

func (r *invStockRepo) Upsert(e *entity.StockEntry) error {
	cp := *e
	r.m.stock[e.ProductID+"|"+e.Location] = &cp
	return nil
}

func (r *invStockRepo) DeleteByProduct(productID string) error { return nil }

func (r *invStockRepo) ListByLocation(location string) ([]*repository.StockWithProduct, error) {
	var out []*repository.StockWithProduct
	for _, e := range r.m.stock {
		if e.Location != location {
			continue
		}
		p := r.m.products[e.ProductID]
		if p == nil {
			continue
		}
		out = append(out, &repository.StockWithProduct{
			ProductID:         e.ProductID,
			Name:              p.Name,
			Type:              p.Type,
			Category:          p.Category,
			Size:              p.Size,
			Price:             p.Price,
			LowStockThreshold: p.LowStockThreshold,
			Location:          e.Location,
			Quantity:          e.Quantity,
			LastUpdated:       e.LastUpdated,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// invTxRunner restaura un snapshot del stock si el callback falla.
type invTxRunner struct{ m *memInv }

func (r *invTxRunner) RunCatalog(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
) error) error {
	snap := make(map[string]*entity.StockEntry, len(r.m.stock))
	for k, v := range r.m.stock {
		cp := *v
		snap[k] = &cp
	}
	err := fn(&invProductRepo{m: r.m}, &invStockRepo{m: r.m})
	if err != nil {
		r.m.stock = snap
		r.m.rolledBack = true
	}
	return err
}

func newInvUC(m *memInv) *inventory.InventoryUseCase {
	return inventory.NewInventoryUseCase(&invTxRunner{m: m}, &invStockRepo{m: m}, &invProductRepo{m: m})
}

// ──────────────────────────────────────────────────────────────────────────────
// Toma física
// ──────────────────────────────────────────────────────────────────────────────

func TestSetStock_FijaCantidadAbsoluta(t *testing.T) {
	m := newMemInv()
	m.seedProduct("prod-1", "Baju", "Baju Melayu", "L", "45.00", 5)
	m.seedStock("prod-1", entity.LocationPKNS, 3)
	uc := newInvUC(m)

	entry, err := uc.SetStock(context.Background(), "prod-1", entity.LocationPKNS, 20)
	require.NoError(t, err)
	assert.Equal(t, 20, entry.Quantity)
	assert.Equal(t, 20, m.qty("prod-1", entity.LocationPKNS))
}

// La toma física crea la fila si no existía.
func TestSetStock_CreaFilaAusente(t *testing.T) {
	m := newMemInv()
	m.seedProduct("prod-1", "Baju", "Baju Melayu", "L", "45.00", 5)
	uc := newInvUC(m)

	_, err := uc.SetStock(context.Background(), "prod-1", entity.LocationKipmall, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, m.qty("prod-1", entity.LocationKipmall))
}

func TestSetStock_Rechazos(t *testing.T) {
	m := newMemInv()
	m.seedProduct("prod-1", "Baju", "Baju Melayu", "L", "45.00", 5)
	uc := newInvUC(m)
	ctx := context.Background()

	_, err := uc.SetStock(ctx, "prod-1", entity.LocationPKNS, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock negativo")

	_, err = uc.SetStock(ctx, "prod-1", "bodega-x", 5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "ubicación desconocida")

	_, err = uc.SetStock(ctx, "fantasma", entity.LocationPKNS, 5)
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto inexistente")
}

// El bulk aplica todas las filas o ninguna: un producto inexistente en medio
// de la lista revierte las anteriores.
func TestBulkSetStock_TodoONada(t *testing.T) {
	m := newMemInv()
	m.seedProduct("prod-1", "Baju", "Baju Melayu", "L", "45.00", 5)
	m.seedProduct("prod-2", "Samping", "Samping", "M", "25.00", 5)
	m.seedStock("prod-1", entity.LocationPKNS, 1)
	m.seedStock("prod-2", entity.LocationPKNS, 1)
	uc := newInvUC(m)

	err := uc.BulkSetStock(context.Background(), entity.LocationPKNS, []dto.BulkStockUpdate{
		{ProductID: "prod-1", Stock: 50},
		{ProductID: "fantasma", Stock: 10},
		{ProductID: "prod-2", Stock: 30},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, m.rolledBack, "el fallo debe revertir la transacción")
	assert.Equal(t, 1, m.qty("prod-1", entity.LocationPKNS),
		"la primera fila no debe quedar aplicada")
}

func TestBulkSetStock_AplicaTodas(t *testing.T) {
	m := newMemInv()
	m.seedProduct("prod-1", "Baju", "Baju Melayu", "L", "45.00", 5)
	m.seedProduct("prod-2", "Samping", "Samping", "M", "25.00", 5)
	uc := newInvUC(m)

	err := uc.BulkSetStock(context.Background(), entity.LocationPKNS, []dto.BulkStockUpdate{
		{ProductID: "prod-1", Stock: 50},
		{ProductID: "prod-2", Stock: 30},
	})
	require.NoError(t, err)
	assert.Equal(t, 50, m.qty("prod-1", entity.LocationPKNS))
	assert.Equal(t, 30, m.qty("prod-2", entity.LocationPKNS))
}

// ──────────────────────────────────────────────────────────────────────────────
// KPIs y alertas
// ──────────────────────────────────────────────────────────────────────────────

func seedSummaryFixture(m *memInv) {
	// prod-1: sano (10 > umbral 5), prod-2: bajo (3 <= 5), prod-3: agotado
	m.seedProduct("prod-1", "Baju", "Baju Melayu", "L", "45.00", 5)
	m.seedProduct("prod-2", "Samping", "Samping", "M", "25.00", 5)
	m.seedProduct("prod-3", "Kurta", "Kurta", "S", "30.00", 5)
	m.seedStock("prod-1", entity.LocationPKNS, 10)
	m.seedStock("prod-2", entity.LocationPKNS, 3)
	m.seedStock("prod-3", entity.LocationPKNS, 0)
}

func TestSummary_KPIs(t *testing.T) {
	m := newMemInv()
	seedSummaryFixture(m)
	uc := newInvUC(m)

	out, err := uc.Summary(context.Background(), entity.LocationPKNS)
	require.NoError(t, err)

	assert.Equal(t, 3, out.TotalItems)
	assert.Equal(t, 1, out.LowStockItems)
	assert.Equal(t, 1, out.OutOfStockItems)
	// 10×45 + 3×25 + 0×30 = 525
	assert.True(t, out.TotalStockValue.Equal(decimal.RequireFromString("525.00")),
		"valor de stock: %s", out.TotalStockValue)
}

func TestLowStock_SoloBajoUmbralConStock(t *testing.T) {
	m := newMemInv()
	seedSummaryFixture(m)
	uc := newInvUC(m)

	alerts, err := uc.LowStock(context.Background(), entity.LocationPKNS)
	require.NoError(t, err)

	require.Len(t, alerts, 1, "el agotado no cuenta como bajo umbral")
	assert.Equal(t, "prod-2", alerts[0].ProductID)
	assert.Equal(t, 3, alerts[0].Stock)
	assert.Equal(t, 5, alerts[0].Threshold)
}

func TestOutOfStock_SoloAgotados(t *testing.T) {
	m := newMemInv()
	seedSummaryFixture(m)
	uc := newInvUC(m)

	alerts, err := uc.OutOfStock(context.Background(), entity.LocationPKNS)
	require.NoError(t, err)

	require.Len(t, alerts, 1)
	assert.Equal(t, "prod-3", alerts[0].ProductID)
}

func TestListByLocation_UbicacionInvalida(t *testing.T) {
	m := newMemInv()
	uc := newInvUC(m)

	_, err := uc.ListByLocation(context.Background(), "bodega-x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El inventario de una ubicación no mezcla filas de otra.
func TestListByLocation_AisladoPorUbicacion(t *testing.T) {
	m := newMemInv()
	m.seedProduct("prod-1", "Baju", "Baju Melayu", "L", "45.00", 5)
	m.seedStock("prod-1", entity.LocationPKNS, 10)
	m.seedStock("prod-1", entity.LocationKipmall, 4)
	uc := newInvUC(m)

	rows, err := uc.ListByLocation(context.Background(), entity.LocationKipmall)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 4, rows[0].Quantity)
	assert.Equal(t, entity.LocationKipmall, rows[0].Location)
}
