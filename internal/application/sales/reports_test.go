package sales_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drafza/pos-api/internal/domain/entity"
)

// seedSale inserta una venta ya consolidada directamente en el store.
func seedSale(store *memStore, id, location string, total, discount string, units int, createdAt time.Time) {
	store.sales[id] = &entity.Sale{
		ID:         id,
		SaleNumber: fmt.Sprintf("TST-%s-%s", createdAt.Format("20060102"), id),
		Location:   location,
		SoldBy:     "drafza1",
		Items: []entity.SaleItem{{
			ID:        id + "-item",
			SaleID:    id,
			LineNo:    1,
			ProductID: "prod-1",
			Quantity:  units,
			UnitPrice: dec(total),
			Subtotal:  dec(total),
		}},
		Subtotal:      dec(total),
		Discount:      dec(discount),
		Total:         dec(total),
		PaymentMethod: entity.PaymentCash,
		CreatedBy:     "drafza1",
		CreatedAt:     createdAt,
	}
}

func TestSummary_AgregadosDelPeriodo(t *testing.T) {
	store := newMemStore()
	uc := newTestUseCase(store)

	day1 := time.Date(2026, 3, 10, 11, 0, 0, 0, time.Local)
	day2 := time.Date(2026, 3, 11, 15, 30, 0, 0, time.Local)
	seedSale(store, "s1", entity.LocationPKNS, "100.00", "0.00", 2, day1)
	seedSale(store, "s2", entity.LocationPKNS, "50.00", "5.00", 1, day1)
	seedSale(store, "s3", entity.LocationPKNS, "75.00", "0.00", 3, day2)
	// Venta de otra ubicación: no debe contaminar el resumen
	seedSale(store, "s4", entity.LocationKipmall, "999.00", "0.00", 9, day1)

	out, err := uc.Summary(context.Background(), testActor, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, out.TotalSales)
	assert.True(t, out.TotalRevenue.Equal(dec("225.00")), "revenue: %s", out.TotalRevenue)
	assert.True(t, out.TotalDiscount.Equal(dec("5.00")))
	assert.Equal(t, 6, out.TotalItemsSold)
	assert.True(t, out.AvgSaleValue.Equal(dec("75.00")), "avg: %s", out.AvgSaleValue)

	require.Len(t, out.SalesByDate, 2)
	assert.Equal(t, 2, out.SalesByDate["2026-03-10"].Count)
	assert.True(t, out.SalesByDate["2026-03-10"].Revenue.Equal(dec("150.00")))
	assert.Equal(t, 1, out.SalesByDate["2026-03-11"].Count)
}

func TestSummary_RangoDeFechas(t *testing.T) {
	store := newMemStore()
	uc := newTestUseCase(store)

	seedSale(store, "s1", entity.LocationPKNS, "100.00", "0.00", 1, time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local))
	seedSale(store, "s2", entity.LocationPKNS, "50.00", "0.00", 1, time.Date(2026, 3, 20, 12, 0, 0, 0, time.Local))

	start := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	out, err := uc.Summary(context.Background(), testActor, &start, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, out.TotalSales)
	assert.True(t, out.TotalRevenue.Equal(dec("50.00")))
}

func TestSummary_SinVentas(t *testing.T) {
	store := newMemStore()
	uc := newTestUseCase(store)

	out, err := uc.Summary(context.Background(), testActor, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, out.TotalSales)
	assert.True(t, out.TotalRevenue.IsZero())
	assert.True(t, out.AvgSaleValue.IsZero(), "sin ventas el promedio es cero, no división por cero")
	assert.Empty(t, out.SalesByDate)
}

// El resumen es sólo lectura: dos llamadas seguidas dan lo mismo.
func TestSummary_Idempotente(t *testing.T) {
	store := newMemStore()
	uc := newTestUseCase(store)
	seedSale(store, "s1", entity.LocationPKNS, "100.00", "0.00", 2, time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local))

	first, err := uc.Summary(context.Background(), testActor, nil, nil)
	require.NoError(t, err)
	second, err := uc.Summary(context.Background(), testActor, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, first.TotalSales, second.TotalSales)
	assert.True(t, first.TotalRevenue.Equal(second.TotalRevenue))
}

func TestToday_SoloVentasDelDia(t *testing.T) {
	store := newMemStore()
	uc := newTestUseCase(store)

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	seedSale(store, "hoy-1", entity.LocationPKNS, "80.00", "0.00", 1, startOfDay.Add(9*time.Hour))
	seedSale(store, "hoy-2", entity.LocationPKNS, "20.00", "0.00", 1, startOfDay.Add(30*time.Minute))
	seedSale(store, "ayer", entity.LocationPKNS, "500.00", "0.00", 5, startOfDay.Add(-time.Hour))

	list, revenue, err := uc.Today(context.Background(), testActor)
	require.NoError(t, err)

	assert.Len(t, list, 2, "la venta de ayer no debe aparecer")
	assert.True(t, revenue.Equal(dec("100.00")), "revenue: %s", revenue)
}

func TestListSales_OrdenYLimite(t *testing.T) {
	store := newMemStore()
	uc := newTestUseCase(store)

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	for i := 0; i < 5; i++ {
		seedSale(store, fmt.Sprintf("s%d", i), entity.LocationPKNS, "10.00", "0.00", 1, base.Add(time.Duration(i)*time.Hour))
	}

	list, err := uc.ListSales(context.Background(), testActor, nil, nil, 3)
	require.NoError(t, err)

	require.Len(t, list, 3)
	assert.Equal(t, "s4", list[0].ID, "la más reciente primero")
	assert.Equal(t, "s3", list[1].ID)
	assert.Equal(t, "s2", list[2].ID)
}

func TestGetSale_AcotadaALaUbicacion(t *testing.T) {
	store := newMemStore()
	uc := newTestUseCase(store)
	seedSale(store, "s1", entity.LocationKipmall, "10.00", "0.00", 1, time.Now())

	_, err := uc.GetSale(context.Background(), testActor, "s1")
	require.Error(t, err, "una venta de otra ubicación no debe ser visible")
}
