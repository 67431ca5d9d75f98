package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest una línea del carrito.
type SaleItemRequest struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest body para POST /api/sales. Subtotal y Total vienen del
// caller (flujo de descuento manual); Subtotal debe reconciliar con la suma
// de líneas dentro de la tolerancia de redondeo.
type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items"`
	Subtotal      *decimal.Decimal  `json:"subtotal"`
	Discount      decimal.Decimal   `json:"discount"`
	Total         *decimal.Decimal  `json:"total"`
	PaymentMethod string            `json:"payment_method"`
	Notes         string            `json:"notes"`
}

// SaleItemResponse una línea de venta persistida.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse una venta completa.
type SaleResponse struct {
	ID            string             `json:"id"`
	SaleNumber    string             `json:"sale_number"`
	Location      string             `json:"location"`
	SoldBy        string             `json:"sold_by"`
	Items         []SaleItemResponse `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Discount      decimal.Decimal    `json:"discount"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	Notes         string             `json:"notes"`
	CreatedAt     time.Time          `json:"created_at"`
}
