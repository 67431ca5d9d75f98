package catalog

import (
	"context"

	"github.com/drafza/pos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. El alta de producto crea la fila de stock de
// cada ubicación junto con el producto; el borrado elimina producto y stock
// en cascada — ambos como unidad atómica.
type TxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
	) error) error
}
