package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/drafza/pos-api/internal/domain/entity"
)

// StockWithProduct fila de stock con los datos del producto ya unidos
// (vista de inventario por ubicación).
type StockWithProduct struct {
	ProductID         string
	Name              string
	Type              string
	Category          string
	Size              string
	Price             decimal.Decimal
	LowStockThreshold int
	Location          string
	Quantity          int
	LastUpdated       time.Time
}

// StockRepository puerto para consultar/actualizar stock por producto+ubicación.
// Usado dentro de transacciones para garantizar consistencia.
// Get y GetForUpdate devuelven (nil, nil) si la fila no existe: una fila
// ausente es distinta de stock cero y el coordinador la trata como NotFound.
type StockRepository interface {
	Get(productID, location string) (*entity.StockEntry, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(productID, location string) (*entity.StockEntry, error)
	Upsert(stock *entity.StockEntry) error
	DeleteByProduct(productID string) error
	ListByLocation(location string) ([]*StockWithProduct, error)
}
