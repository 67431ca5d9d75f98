package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/drafza/pos-api/internal/domain/entity"
	"github.com/drafza/pos-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene la fila de stock de un producto en una ubicación.
// Devuelve (nil, nil) si no existe: ausencia de fila ≠ stock cero.
func (r *StockRepo) Get(productID, location string) (*entity.StockEntry, error) {
	query := `
		SELECT product_id, location, quantity, last_updated
		FROM stock WHERE product_id = $1 AND location = $2`
	var s entity.StockEntry
	err := r.q.QueryRow(context.Background(), query, productID, location).Scan(
		&s.ProductID, &s.Location, &s.Quantity, &s.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene la fila y la bloquea para update (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(productID, location string) (*entity.StockEntry, error) {
	query := `
		SELECT product_id, location, quantity, last_updated
		FROM stock WHERE product_id = $1 AND location = $2
		FOR UPDATE`
	var s entity.StockEntry
	err := r.q.QueryRow(context.Background(), query, productID, location).Scan(
		&s.ProductID, &s.Location, &s.Quantity, &s.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad en stock (por producto y ubicación).
func (r *StockRepo) Upsert(stock *entity.StockEntry) error {
	query := `
		INSERT INTO stock (product_id, location, quantity, last_updated)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id, location)
		DO UPDATE SET quantity = EXCLUDED.quantity, last_updated = EXCLUDED.last_updated`
	_, err := r.q.Exec(context.Background(), query,
		stock.ProductID, stock.Location, stock.Quantity, stock.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// DeleteByProduct elimina todas las filas de stock de un producto (cascada del
// borrado de catálogo).
func (r *StockRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete stock by product: %w", err)
	}
	return nil
}

// ListByLocation devuelve el inventario de la ubicación con los datos del
// producto unidos, ordenado por tipo y nombre.
func (r *StockRepo) ListByLocation(location string) ([]*repository.StockWithProduct, error) {
	query := `
		SELECT s.product_id, p.name, p.type, p.category, p.size, p.price,
		       p.low_stock_threshold, s.location, s.quantity, s.last_updated
		FROM stock s
		JOIN products p ON p.id = s.product_id
		WHERE s.location = $1
		ORDER BY p.type, p.name`
	rows, err := r.q.Query(context.Background(), query, location)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*repository.StockWithProduct
	for rows.Next() {
		var row repository.StockWithProduct
		if err := rows.Scan(
			&row.ProductID, &row.Name, &row.Type, &row.Category, &row.Size, &row.Price,
			&row.LowStockThreshold, &row.Location, &row.Quantity, &row.LastUpdated,
		); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
