package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/drafza/pos-api/internal/domain"
	"github.com/drafza/pos-api/internal/domain/entity"
	"github.com/drafza/pos-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la cabecera de venta y sus líneas. Si el sale_number choca
// con el índice único devuelve domain.ErrDuplicate para que el coordinador
// reintente con un sufijo nuevo.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	ctx := context.Background()
	query := `
		INSERT INTO sales (id, sale_number, location, sold_by, subtotal, discount,
		                   total, payment_method, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.SaleNumber, sale.Location, sale.SoldBy, sale.Subtotal,
		sale.Discount, sale.Total, sale.PaymentMethod, sale.Notes,
		sale.CreatedBy, sale.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	itemQuery := `
		INSERT INTO sale_items (id, sale_id, line_no, product_id, product_name,
		                        size, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, item := range sale.Items {
		_, err := r.q.Exec(ctx, itemQuery,
			item.ID, item.SaleID, item.LineNo, item.ProductID, item.ProductName,
			item.Size, item.Quantity, item.UnitPrice, item.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID devuelve la venta con sus líneas, o (nil, nil) si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	ctx := context.Background()
	query := `
		SELECT id, sale_number, location, sold_by, subtotal, discount, total,
		       payment_method, notes, created_by, created_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.SaleNumber, &s.Location, &s.SoldBy, &s.Subtotal, &s.Discount,
		&s.Total, &s.PaymentMethod, &s.Notes, &s.CreatedBy, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	itemsBySale, err := r.loadItems(ctx, []string{s.ID})
	if err != nil {
		return nil, err
	}
	s.Items = itemsBySale[s.ID]
	return &s, nil
}

// Delete borra la venta; las líneas caen por ON DELETE CASCADE. Si la fila ya
// no existe (otra transacción la borró entre la lectura y este punto) devuelve
// ErrNotFound para que el llamador revierta lo que haya acumulado.
func (r *SaleRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve ventas con sus líneas, ordenadas por fecha descendente,
// aplicando los filtros del llamador.
func (r *SaleRepo) List(f repository.SaleFilter) ([]*entity.Sale, error) {
	ctx := context.Background()
	var (
		conds []string
		args  []interface{}
	)
	if f.Location != "" {
		args = append(args, f.Location)
		conds = append(conds, fmt.Sprintf("location = $%d", len(args)))
	}
	if f.Start != nil {
		args = append(args, *f.Start)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if f.End != nil {
		args = append(args, *f.End)
		conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	query := `
		SELECT id, sale_number, location, sold_by, subtotal, discount, total,
		       payment_method, notes, created_by, created_at
		FROM sales`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	var ids []string
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.SaleNumber, &s.Location, &s.SoldBy, &s.Subtotal, &s.Discount,
			&s.Total, &s.PaymentMethod, &s.Notes, &s.CreatedBy, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, &s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return sales, nil
	}

	itemsBySale, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, s := range sales {
		s.Items = itemsBySale[s.ID]
	}
	return sales, nil
}

// loadItems carga las líneas de un conjunto de ventas en una sola consulta.
func (r *SaleRepo) loadItems(ctx context.Context, saleIDs []string) (map[string][]entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, line_no, product_id, product_name, size, quantity,
		       unit_price, subtotal
		FROM sale_items
		WHERE sale_id = ANY($1)
		ORDER BY line_no`
	rows, err := r.q.Query(ctx, query, saleIDs)
	if err != nil {
		return nil, fmt.Errorf("load sale items: %w", err)
	}
	defer rows.Close()
	items := make(map[string][]entity.SaleItem)
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(
			&it.ID, &it.SaleID, &it.LineNo, &it.ProductID, &it.ProductName,
			&it.Size, &it.Quantity, &it.UnitPrice, &it.Subtotal,
		); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items[it.SaleID] = append(items[it.SaleID], it)
	}
	return items, rows.Err()
}
