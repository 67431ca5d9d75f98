package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/drafza/pos-api/internal/domain"
	"github.com/drafza/pos-api/internal/domain/entity"
	"github.com/drafza/pos-api/internal/domain/repository"
)

// VoidSale anula una venta: restaura el stock de cada línea y borra el
// registro, como unidad atómica. Requiere rol admin y que la venta pertenezca
// a la ubicación del actor.
//
// Fail-closed: si la fila de stock de alguna línea ya no existe (producto
// borrado después de la venta), el void completo aborta — restaurar sólo
// algunas líneas rompería la correspondencia venta⇄descuento.
func (uc *SaleUseCase) VoidSale(ctx context.Context, actor Actor, saleID string) error {
	if actor.Role != entity.RoleAdmin {
		return fmt.Errorf("%w: se requiere rol admin para anular ventas", domain.ErrForbidden)
	}
	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		saleRepo repository.SaleRepository,
	) error {
		sale, err := saleRepo.GetByID(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return fmt.Errorf("%w: venta %s", domain.ErrNotFound, saleID)
		}
		if sale.Location != actor.Location {
			return fmt.Errorf("%w: la venta pertenece a otra ubicación", domain.ErrForbidden)
		}

		// Restaurar stock línea por línea, bajo bloqueo de fila
		now := time.Now()
		for _, item := range sale.Items {
			entry, err := stockRepo.GetForUpdate(item.ProductID, sale.Location)
			if err != nil {
				return err
			}
			if entry == nil {
				return fmt.Errorf("%w: no existe fila de stock para %s en %s, void abortado",
					domain.ErrNotFound, item.ProductName, sale.Location)
			}
			entry.Quantity += item.Quantity
			entry.LastUpdated = now
			if err := stockRepo.Upsert(entry); err != nil {
				return err
			}
		}

		return saleRepo.Delete(saleID)
	})
}
