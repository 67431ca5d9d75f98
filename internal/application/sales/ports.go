package sales

import (
	"context"

	"github.com/drafza/pos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del coordinador:
// los decrementos de stock y la escritura de la venta se confirman juntos
// o se revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// Actor identidad autenticada que ejecuta la operación. El coordinador la
// recibe explícita en cada llamada y confía en ella; la verificación de
// credenciales ocurre en el middleware de auth.
type Actor struct {
	ID       string
	Username string
	Location string
	Role     string
}
