package http

import (
	"github.com/drafza/pos-api/internal/application/dto"
	"github.com/drafza/pos-api/internal/domain/entity"
	"github.com/drafza/pos-api/internal/domain/repository"
)

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Type:              p.Type,
		Category:          p.Category,
		Size:              p.Size,
		Price:             p.Price,
		LowStockThreshold: p.LowStockThreshold,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toTypeResponse(t *entity.ProductType) dto.TypeResponse {
	return dto.TypeResponse{ID: t.ID, Type: t.Name, CreatedAt: t.CreatedAt}
}

func toInventoryItemResponse(row *repository.StockWithProduct) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ProductID:         row.ProductID,
		Name:              row.Name,
		Type:              row.Type,
		Category:          row.Category,
		Size:              row.Size,
		Price:             row.Price,
		Stock:             row.Quantity,
		LowStockThreshold: row.LowStockThreshold,
		Location:          row.Location,
		LastUpdated:       row.LastUpdated,
	}
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Size:        it.Size,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return dto.SaleResponse{
		ID:            s.ID,
		SaleNumber:    s.SaleNumber,
		Location:      s.Location,
		SoldBy:        s.SoldBy,
		Items:         items,
		Subtotal:      s.Subtotal,
		Discount:      s.Discount,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
	}
}
