package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/drafza/pos-api/internal/application/dto"
	"github.com/drafza/pos-api/internal/domain"
	"github.com/drafza/pos-api/internal/domain/entity"
	"github.com/drafza/pos-api/internal/domain/repository"
)

// InventoryUseCase consultas y ajustes manuales del stock por ubicación.
// La toma física (SetStock/BulkSet) fija cantidades absolutas; los
// decrementos por venta pasan por el coordinador de ventas, no por aquí.
type InventoryUseCase struct {
	txRunner    TxRunner
	stockRepo   repository.StockRepository
	productRepo repository.ProductRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(txRunner TxRunner, stockRepo repository.StockRepository, productRepo repository.ProductRepository) *InventoryUseCase {
	return &InventoryUseCase{txRunner: txRunner, stockRepo: stockRepo, productRepo: productRepo}
}

// ListByLocation devuelve el inventario de la ubicación con datos de producto,
// ordenado por tipo y nombre.
func (uc *InventoryUseCase) ListByLocation(ctx context.Context, location string) ([]*repository.StockWithProduct, error) {
	if !entity.IsValidLocation(location) {
		return nil, fmt.Errorf("%w: ubicación desconocida", domain.ErrInvalidInput)
	}
	return uc.stockRepo.ListByLocation(location)
}

// SetStock fija la cantidad absoluta de un producto en la ubicación (toma
// física). Crea la fila si no existe.
func (uc *InventoryUseCase) SetStock(ctx context.Context, productID, location string, stock int) (*entity.StockEntry, error) {
	if stock < 0 {
		return nil, fmt.Errorf("%w: stock no puede ser negativo", domain.ErrInvalidInput)
	}
	if !entity.IsValidLocation(location) {
		return nil, fmt.Errorf("%w: ubicación desconocida", domain.ErrInvalidInput)
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	entry := &entity.StockEntry{
		ProductID:   productID,
		Location:    location,
		Quantity:    stock,
		LastUpdated: time.Now(),
	}
	if err := uc.stockRepo.Upsert(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// BulkSetStock fija cantidades para varios productos en una sola transacción
// (entrada inicial de inventario). Todas las filas o ninguna.
func (uc *InventoryUseCase) BulkSetStock(ctx context.Context, location string, updates []dto.BulkStockUpdate) error {
	if len(updates) == 0 {
		return fmt.Errorf("%w: updates vacío", domain.ErrInvalidInput)
	}
	if !entity.IsValidLocation(location) {
		return fmt.Errorf("%w: ubicación desconocida", domain.ErrInvalidInput)
	}
	for _, u := range updates {
		if u.Stock < 0 {
			return fmt.Errorf("%w: stock no puede ser negativo", domain.ErrInvalidInput)
		}
	}
	now := time.Now()
	return uc.txRunner.RunCatalog(ctx, func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
	) error {
		for _, u := range updates {
			product, err := productRepo.GetByID(u.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("%w: producto %s", domain.ErrNotFound, u.ProductID)
			}
			entry := &entity.StockEntry{
				ProductID:   u.ProductID,
				Location:    location,
				Quantity:    u.Stock,
				LastUpdated: now,
			}
			if err := stockRepo.Upsert(entry); err != nil {
				return err
			}
		}
		return nil
	})
}

// Summary calcula los KPIs de inventario de la ubicación: total de ítems,
// bajo umbral, agotados y valor total del stock (stock × precio).
func (uc *InventoryUseCase) Summary(ctx context.Context, location string) (*dto.InventorySummaryResponse, error) {
	rows, err := uc.ListByLocation(ctx, location)
	if err != nil {
		return nil, err
	}
	out := &dto.InventorySummaryResponse{TotalStockValue: decimal.Zero}
	for _, r := range rows {
		out.TotalItems++
		switch {
		case r.Quantity == 0:
			out.OutOfStockItems++
		case r.Quantity <= r.LowStockThreshold:
			out.LowStockItems++
		}
		out.TotalStockValue = out.TotalStockValue.Add(r.Price.Mul(decimal.NewFromInt(int64(r.Quantity))))
	}
	return out, nil
}

// LowStock lista productos con stock positivo igual o por debajo del umbral.
func (uc *InventoryUseCase) LowStock(ctx context.Context, location string) ([]dto.StockAlertResponse, error) {
	rows, err := uc.ListByLocation(ctx, location)
	if err != nil {
		return nil, err
	}
	alerts := []dto.StockAlertResponse{}
	for _, r := range rows {
		if r.Quantity > 0 && r.Quantity <= r.LowStockThreshold {
			alerts = append(alerts, dto.StockAlertResponse{
				ProductID: r.ProductID,
				Name:      r.Name,
				Size:      r.Size,
				Stock:     r.Quantity,
				Threshold: r.LowStockThreshold,
			})
		}
	}
	return alerts, nil
}

// OutOfStock lista productos agotados en la ubicación.
func (uc *InventoryUseCase) OutOfStock(ctx context.Context, location string) ([]dto.StockAlertResponse, error) {
	rows, err := uc.ListByLocation(ctx, location)
	if err != nil {
		return nil, err
	}
	alerts := []dto.StockAlertResponse{}
	for _, r := range rows {
		if r.Quantity == 0 {
			alerts = append(alerts, dto.StockAlertResponse{
				ProductID: r.ProductID,
				Name:      r.Name,
				Size:      r.Size,
			})
		}
	}
	return alerts, nil
}
