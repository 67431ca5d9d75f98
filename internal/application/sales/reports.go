package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/drafza/pos-api/internal/application/dto"
	"github.com/drafza/pos-api/internal/domain/entity"
	"github.com/drafza/pos-api/internal/domain/repository"
)

// Agregados de reportes: sólo lectura, cada venta se lee de forma
// independiente y se acumula en memoria. Sin transacción ni mutación.

// Summary calcula los agregados del período para la ubicación del actor:
// conteo, ingresos, descuentos, unidades vendidas, ticket promedio y el
// desglose por día calendario.
func (uc *SaleUseCase) Summary(ctx context.Context, actor Actor, start, end *time.Time) (*dto.SalesSummaryResponse, error) {
	sales, err := uc.saleRepo.List(repository.SaleFilter{
		Location: actor.Location,
		Start:    start,
		End:      end,
	})
	if err != nil {
		return nil, err
	}
	return aggregate(sales), nil
}

// Today devuelve las ventas del día en curso (desde la medianoche local)
// con ingresos y número de transacciones.
func (uc *SaleUseCase) Today(ctx context.Context, actor Actor) ([]*entity.Sale, decimal.Decimal, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	sales, err := uc.saleRepo.List(repository.SaleFilter{
		Location: actor.Location,
		Start:    &startOfDay,
	})
	if err != nil {
		return nil, decimal.Zero, err
	}
	revenue := decimal.Zero
	for _, s := range sales {
		revenue = revenue.Add(s.Total)
	}
	return sales, revenue, nil
}

func aggregate(sales []*entity.Sale) *dto.SalesSummaryResponse {
	out := &dto.SalesSummaryResponse{
		TotalRevenue:  decimal.Zero,
		TotalDiscount: decimal.Zero,
		AvgSaleValue:  decimal.Zero,
		SalesByDate:   map[string]dto.DailyStat{},
	}
	for _, s := range sales {
		out.TotalSales++
		out.TotalRevenue = out.TotalRevenue.Add(s.Total)
		out.TotalDiscount = out.TotalDiscount.Add(s.Discount)
		out.TotalItemsSold += s.TotalUnits()

		day := s.CreatedAt.Format("2006-01-02")
		stat := out.SalesByDate[day]
		stat.Count++
		stat.Revenue = stat.Revenue.Add(s.Total)
		out.SalesByDate[day] = stat
	}
	if out.TotalSales > 0 {
		out.AvgSaleValue = out.TotalRevenue.Div(decimal.NewFromInt(int64(out.TotalSales))).Round(2)
	}
	return out
}
