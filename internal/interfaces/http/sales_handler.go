package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/drafza/pos-api/internal/application/dto"
	"github.com/drafza/pos-api/internal/application/sales"
	"github.com/drafza/pos-api/internal/domain"
	"github.com/drafza/pos-api/internal/domain/entity"
)

// ReceiptGenerator genera el recibo PDF de una venta.
type ReceiptGenerator interface {
	GenerateReceipt(sale *entity.Sale) ([]byte, error)
}

// SalesHandler maneja ventas, anulaciones y reportes (protegido).
type SalesHandler struct {
	uc      *sales.SaleUseCase
	receipt ReceiptGenerator
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.SaleUseCase, receipt ReceiptGenerator) *SalesHandler {
	return &SalesHandler{uc: uc, receipt: receipt}
}

func actorFrom(c *fiber.Ctx) sales.Actor {
	return sales.Actor{
		ID:       GetUserID(c),
		Username: GetUsername(c),
		Location: GetLocation(c),
		Role:     GetRole(c),
	}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Valida el carrito, bloquea el stock de la ubicación y descuenta todas las líneas en una sola transacción.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Carrito, totales y método de pago"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CommitSale(c.Context(), actorFrom(c), in)
	if err != nil {
		var stockErr *domain.InsufficientStockError
		if errors.As(err, &stockErr) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: stockErr.Error()})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "no se pudo asignar número de venta, reintente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toSaleResponse(out))
}

// List godoc
// @Summary      Listar ventas de mi ubicación
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        end    query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        limit  query  int     false  "Límite"  default(100)
// @Success      200    {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	start, end, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	limit := c.QueryInt("limit", 0)
	list, err := h.uc.ListSales(c.Context(), actorFrom(c), start, end, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSaleResponse(s))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SalesHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetSale(c.Context(), actorFrom(c), id)
	if err != nil {
		return h.saleError(c, err)
	}
	return c.JSON(toSaleResponse(out))
}

// Receipt godoc
// @Summary      Recibo PDF de una venta
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SalesHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	sale, err := h.uc.GetSale(c.Context(), actorFrom(c), id)
	if err != nil {
		return h.saleError(c, err)
	}
	pdfBytes, err := h.receipt.GenerateReceipt(sale)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf("inline; filename=%s.pdf", sale.SaleNumber))
	return c.Send(pdfBytes)
}

// Void godoc
// @Summary      Anular venta (sólo admin)
// @Description  Restaura el stock de todas las líneas y borra la venta en una sola transacción.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SalesHandler) Void(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.VoidSale(c.Context(), actorFrom(c), id); err != nil {
		return h.saleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "venta anulada y stock restaurado"})
}

// Summary godoc
// @Summary      Resumen de ventas de un período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        end    query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200    {object}  dto.SalesSummaryResponse
// @Router       /api/sales/reports/summary [get]
func (h *SalesHandler) Summary(c *fiber.Ctx) error {
	start, end, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Summary(c.Context(), actorFrom(c), start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Today godoc
// @Summary      Ventas del día en curso
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TodayReportResponse
// @Router       /api/sales/reports/today [get]
func (h *SalesHandler) Today(c *fiber.Ctx) error {
	list, revenue, err := h.uc.Today(c.Context(), actorFrom(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := dto.TodayReportResponse{
		Sales:             make([]dto.SaleResponse, 0, len(list)),
		TotalRevenue:      revenue,
		TotalTransactions: len(list),
	}
	for _, s := range list {
		out.Sales = append(out.Sales, toSaleResponse(s))
	}
	return c.JSON(out)
}

// saleError mapea los errores de dominio de ventas a códigos HTTP.
func (h *SalesHandler) saleError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	}
	if errors.Is(err, domain.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// parseDateRange lee start/end (YYYY-MM-DD) de la query; end se extiende al
// final del día para que el rango sea inclusivo.
func parseDateRange(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	var start, end *time.Time
	if s := c.Query("start"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return nil, nil, errors.New("start inválido, formato YYYY-MM-DD")
		}
		start = &t
	}
	if s := c.Query("end"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return nil, nil, errors.New("end inválido, formato YYYY-MM-DD")
		}
		t = t.Add(24*time.Hour - time.Nanosecond)
		end = &t
	}
	return start, end, nil
}
