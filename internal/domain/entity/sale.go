package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	PaymentCash   = "cash"
	PaymentCard   = "card"
	PaymentOnline = "online"
	PaymentOther  = "other"
)

// IsValidPaymentMethod valida el método de pago contra el conjunto cerrado.
func IsValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentOnline, PaymentOther:
		return true
	}
	return false
}

// SaleItem una línea de venta. ProductName y Size son snapshot desnormalizado
// al momento del commit (el catálogo puede cambiar después).
type SaleItem struct {
	ID          string
	SaleID      string
	LineNo      int // posición de la línea en el carrito, desde 1
	ProductID   string
	ProductName string
	Size        string
	Quantity    int // >= 1
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal // UnitPrice * Quantity
}

// Sale una transacción de venta completada. Inmutable tras el commit; la única
// operación posterior es el void (borrado con restauración de stock).
// Subtotal/Total vienen del caller (flujo de descuento manual en mostrador);
// el coordinador verifica Subtotal contra la suma de líneas con tolerancia
// de redondeo.
type Sale struct {
	ID            string
	SaleNumber    string // ej: "PKN-20251224-0381", único a nivel de sistema
	Location      string
	SoldBy        string // username del vendedor
	Items         []SaleItem
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	Notes         string
	CreatedBy     string // username del actor que registró la venta
	CreatedAt     time.Time
}

// TotalUnits suma de cantidades de todas las líneas.
func (s *Sale) TotalUnits() int {
	n := 0
	for _, it := range s.Items {
		n += it.Quantity
	}
	return n
}
