package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de producto.
const (
	CategoryAdult = "Adult"
	CategoryKids  = "Kids"
)

// Tallas con recargo: 2XL y 3XL suman RM10 al precio base en el alta del producto.
var plusSizes = map[string]bool{"2XL": true, "3XL": true}

// PlusSizeSurcharge recargo aplicado a tallas grandes.
var PlusSizeSurcharge = decimal.NewFromInt(10)

// IsPlusSize indica si la talla lleva recargo.
func IsPlusSize(size string) bool { return plusSizes[size] }

// Product representa una prenda del catálogo compartido entre ubicaciones.
// El precio es unitario final (incluye recargo de talla si aplica); el stock
// se maneja por ubicación en StockEntry.
type Product struct {
	ID                string
	Name              string
	Type              string // ej: "Baju Melayu", "Kurta" (registro en product_types)
	Category          string // Adult | Kids
	Size              string
	Price             decimal.Decimal
	LowStockThreshold int // umbral de reposición, default 5
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ProductType un tipo de prenda registrado (nombre único).
type ProductType struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
