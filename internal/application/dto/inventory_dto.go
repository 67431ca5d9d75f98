package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItemResponse fila de inventario con datos del producto.
type InventoryItemResponse struct {
	ProductID         string          `json:"product_id"`
	Name              string          `json:"name"`
	Type              string          `json:"type"`
	Category          string          `json:"category"`
	Size              string          `json:"size"`
	Price             decimal.Decimal `json:"price"`
	Stock             int             `json:"stock"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	Location          string          `json:"location"`
	LastUpdated       time.Time       `json:"last_updated"`
}

// SetStockRequest body para PUT /api/inventory/:productId (toma física).
type SetStockRequest struct {
	Stock *int `json:"stock"`
}

// BulkStockUpdate una entrada del bulk-update.
type BulkStockUpdate struct {
	ProductID string `json:"product_id"`
	Stock     int    `json:"stock"`
}

// BulkUpdateRequest body para POST /api/inventory/bulk-update.
type BulkUpdateRequest struct {
	Updates []BulkStockUpdate `json:"updates"`
}

// InventorySummaryResponse KPIs de inventario para el dashboard.
type InventorySummaryResponse struct {
	TotalItems      int             `json:"total_items"`
	LowStockItems   int             `json:"low_stock_items"`
	OutOfStockItems int             `json:"out_of_stock_items"`
	TotalStockValue decimal.Decimal `json:"total_stock_value"`
}

// StockAlertResponse producto bajo umbral o agotado.
type StockAlertResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	Stock     int    `json:"stock"`
	Threshold int    `json:"threshold,omitempty"`
}
