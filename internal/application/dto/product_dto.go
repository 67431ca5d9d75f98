package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. El precio es el base;
// si la talla es 2XL/3XL el alta aplica el recargo automáticamente.
type CreateProductRequest struct {
	Name              string          `json:"name"`
	Type              string          `json:"type"`
	Category          string          `json:"category"` // Adult | Kids
	Size              string          `json:"size"`
	Price             decimal.Decimal `json:"price"`
	LowStockThreshold int             `json:"low_stock_threshold,omitempty"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name              *string          `json:"name"`
	Type              *string          `json:"type"`
	Category          *string          `json:"category"`
	Size              *string          `json:"size"`
	Price             *decimal.Decimal `json:"price"`
	LowStockThreshold *int             `json:"low_stock_threshold"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Type              string          `json:"type"`
	Category          string          `json:"category"`
	Size              string          `json:"size"`
	Price             decimal.Decimal `json:"price"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// AddTypeRequest entrada para registrar un tipo de prenda.
type AddTypeRequest struct {
	Type string `json:"type"`
}

// TypeResponse un tipo de prenda registrado.
type TypeResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
