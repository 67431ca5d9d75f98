package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/drafza/pos-api/internal/domain"
	"github.com/drafza/pos-api/internal/domain/entity"
	"github.com/drafza/pos-api/internal/domain/repository"
)

// defaultListLimit límite por defecto del listado de ventas.
const defaultListLimit = 100

// GetSale obtiene una venta por ID. Restringido a la ubicación del actor.
func (uc *SaleUseCase) GetSale(ctx context.Context, actor Actor, saleID string) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, fmt.Errorf("%w: venta %s", domain.ErrNotFound, saleID)
	}
	if sale.Location != actor.Location {
		return nil, fmt.Errorf("%w: la venta pertenece a otra ubicación", domain.ErrForbidden)
	}
	return sale, nil
}

// ListSales lista las ventas de la ubicación del actor, más reciente primero,
// con rango de fechas opcional (inclusivo) y límite.
func (uc *SaleUseCase) ListSales(ctx context.Context, actor Actor, start, end *time.Time, limit int) ([]*entity.Sale, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return uc.saleRepo.List(repository.SaleFilter{
		Location: actor.Location,
		Start:    start,
		End:      end,
		Limit:    limit,
	})
}
