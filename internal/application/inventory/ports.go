package inventory

import (
	"context"

	"github.com/drafza/pos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD.
// El bulk-update de toma física escribe todas las filas o ninguna,
// con la misma disciplina transaccional que el coordinador de ventas.
type TxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
	) error) error
}
