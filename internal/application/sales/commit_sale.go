package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/drafza/pos-api/internal/application/dto"
	"github.com/drafza/pos-api/internal/domain"
	"github.com/drafza/pos-api/internal/domain/entity"
	"github.com/drafza/pos-api/internal/domain/repository"
)

// saleNumberAttempts reintentos de commit ante colisión de sale_number.
const saleNumberAttempts = 3

// subtotalTolerance tolerancia de redondeo al reconciliar el subtotal del
// caller contra la suma de líneas (un céntimo).
var subtotalTolerance = decimal.NewFromFloat(0.01)

// SaleUseCase coordinador de transacciones de venta: commit, void, consultas
// y reportes. Commit y void se ejecutan como unidad atómica sobre stock y
// ventas, con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type SaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
}

// NewSaleUseCase construye el coordinador.
func NewSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo}
}

// CommitSale registra una venta: valida el carrito contra el stock de la
// ubicación del actor bajo bloqueo de fila, descuenta las cantidades y
// persiste la venta — todo en una transacción. Cualquier fallo revierte la
// unidad completa sin efecto parcial.
//
// Si el insert choca con un sale_number existente se reintenta la
// transacción entera con un sufijo nuevo (el abort de Postgres invalida la
// tx en curso, no se puede reintentar adentro).
func (uc *SaleUseCase) CommitSale(ctx context.Context, actor Actor, in dto.CreateSaleRequest) (*entity.Sale, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: la venta debe tener al menos un ítem", domain.ErrInvalidInput)
	}
	if in.Subtotal == nil || in.Total == nil {
		return nil, fmt.Errorf("%w: subtotal y total son requeridos", domain.ErrInvalidInput)
	}
	if in.Discount.IsNegative() || in.Total.IsNegative() || in.Subtotal.IsNegative() {
		return nil, fmt.Errorf("%w: montos negativos", domain.ErrInvalidInput)
	}
	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = entity.PaymentCash
	}
	if !entity.IsValidPaymentMethod(paymentMethod) {
		return nil, fmt.Errorf("%w: método de pago desconocido", domain.ErrInvalidInput)
	}

	// Reconciliar subtotal con la suma de líneas (tolerancia de redondeo).
	// Total sigue siendo del caller: ahí vive el descuento manual.
	var lineSum decimal.Decimal
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return nil, fmt.Errorf("%w: cada línea requiere product_id y quantity >= 1", domain.ErrInvalidInput)
		}
		if item.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: unit_price no puede ser negativo", domain.ErrInvalidInput)
		}
		lineSum = lineSum.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if lineSum.Sub(*in.Subtotal).Abs().GreaterThan(subtotalTolerance) {
		return nil, fmt.Errorf("%w: subtotal %s no coincide con la suma de líneas %s",
			domain.ErrInvalidInput, in.Subtotal.StringFixed(2), lineSum.StringFixed(2))
	}

	var sale *entity.Sale
	for attempt := 0; attempt < saleNumberAttempts; attempt++ {
		now := time.Now()
		sale = uc.buildSale(actor, in, paymentMethod, now, attempt)

		err := uc.txRunner.Run(ctx, func(
			stockRepo repository.StockRepository,
			saleRepo repository.SaleRepository,
		) error {
			return uc.commitInTx(stockRepo, saleRepo, sale, now)
		})
		if err == nil {
			return sale, nil
		}
		if errors.Is(err, domain.ErrDuplicate) {
			// Colisión de sale_number: transacción nueva con otro sufijo
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("%w: no se pudo generar un número de venta único", domain.ErrConflict)
}

func (uc *SaleUseCase) buildSale(actor Actor, in dto.CreateSaleRequest, paymentMethod string, now time.Time, attempt int) *entity.Sale {
	saleID := uuid.New().String()
	items := make([]entity.SaleItem, 0, len(in.Items))
	for i, it := range in.Items {
		items = append(items, entity.SaleItem{
			ID:          uuid.New().String(),
			SaleID:      saleID,
			LineNo:      i + 1,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Size:        it.Size,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))),
		})
	}
	// El sufijo se desplaza un milisegundo por reintento: dentro del mismo
	// milisegundo de reloj, cada intento produce un número distinto.
	numberAt := now.Add(time.Duration(attempt) * time.Millisecond)
	return &entity.Sale{
		ID:            saleID,
		SaleNumber:    GenerateSaleNumber(actor.Location, numberAt),
		Location:      actor.Location,
		SoldBy:        actor.Username,
		Items:         items,
		Subtotal:      *in.Subtotal,
		Discount:      in.Discount,
		Total:         *in.Total,
		PaymentMethod: paymentMethod,
		Notes:         in.Notes,
		CreatedBy:     actor.Username,
		CreatedAt:     now,
	}
}

// commitInTx cuerpo transaccional del commit: valida todas las líneas bajo
// bloqueo de fila (fail-fast, sin efecto parcial), luego aplica los
// decrementos y persiste la venta. Las líneas que repiten producto se
// acumulan para bloquear cada fila una sola vez y validar la suma.
func (uc *SaleUseCase) commitInTx(
	stockRepo repository.StockRepository,
	saleRepo repository.SaleRepository,
	sale *entity.Sale,
	now time.Time,
) error {
	// Cantidad total requerida por producto, en orden de aparición
	required := make(map[string]int, len(sale.Items))
	order := make([]string, 0, len(sale.Items))
	byProduct := make(map[string]entity.SaleItem, len(sale.Items))
	for _, item := range sale.Items {
		if _, seen := required[item.ProductID]; !seen {
			order = append(order, item.ProductID)
			byProduct[item.ProductID] = item
		}
		required[item.ProductID] += item.Quantity
	}

	// 1) Bloquear y validar cada fila de stock referenciada
	entries := make(map[string]*entity.StockEntry, len(order))
	for _, productID := range order {
		entry, err := stockRepo.GetForUpdate(productID, sale.Location)
		if err != nil {
			return err
		}
		item := byProduct[productID]
		if entry == nil {
			return fmt.Errorf("%w: producto %s no está en el inventario de %s",
				domain.ErrNotFound, item.ProductName, sale.Location)
		}
		if entry.Quantity < required[productID] {
			return &domain.InsufficientStockError{
				ProductName: item.ProductName,
				Size:        item.Size,
				Available:   entry.Quantity,
				Requested:   required[productID],
			}
		}
		entries[productID] = entry
	}

	// 2) Descontar stock (actualización perpetua)
	for _, productID := range order {
		entry := entries[productID]
		entry.Quantity -= required[productID]
		entry.LastUpdated = now
		if err := stockRepo.Upsert(entry); err != nil {
			return err
		}
	}

	// 3) Persistir la venta (cabecera + líneas)
	return saleRepo.Create(sale)
}
