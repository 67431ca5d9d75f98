package repository

import (
	"time"

	"github.com/drafza/pos-api/internal/domain/entity"
)

// SaleFilter filtros de listado de ventas. Start/End acotan CreatedAt
// (inclusivos); Limit 0 = sin límite.
type SaleFilter struct {
	Location string
	Start    *time.Time
	End      *time.Time
	Limit    int
}

// SaleRepository puerto de persistencia de ventas. Create inserta cabecera y
// líneas; devuelve domain.ErrDuplicate si el sale_number ya existe (el
// coordinador reintenta con un sufijo nuevo).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	// GetByID devuelve la venta con sus líneas, o (nil, nil) si no existe.
	GetByID(id string) (*entity.Sale, error)
	Delete(id string) error
	// List devuelve ventas con líneas, ordenadas por CreatedAt descendente.
	List(f SaleFilter) ([]*entity.Sale, error)
}
