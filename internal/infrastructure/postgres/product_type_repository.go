package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/drafza/pos-api/internal/domain"
	"github.com/drafza/pos-api/internal/domain/entity"
	"github.com/drafza/pos-api/internal/domain/repository"
)

var _ repository.ProductTypeRepository = (*ProductTypeRepo)(nil)

// ProductTypeRepo implementación de ProductTypeRepository sobre PostgreSQL.
type ProductTypeRepo struct {
	q Querier
}

func NewProductTypeRepository(q Querier) *ProductTypeRepo {
	return &ProductTypeRepo{q: q}
}

func (r *ProductTypeRepo) Create(t *entity.ProductType) error {
	query := `INSERT INTO product_types (id, name, created_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, t.ID, t.Name, t.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product type: %w", err)
	}
	return nil
}

// GetByName devuelve (nil, nil) si el tipo no existe.
func (r *ProductTypeRepo) GetByName(name string) (*entity.ProductType, error) {
	query := `SELECT id, name, created_at FROM product_types WHERE name = $1`
	var t entity.ProductType
	err := r.q.QueryRow(context.Background(), query, name).Scan(&t.ID, &t.Name, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product type: %w", err)
	}
	return &t, nil
}

func (r *ProductTypeRepo) List() ([]*entity.ProductType, error) {
	query := `SELECT id, name, created_at FROM product_types ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list product types: %w", err)
	}
	defer rows.Close()
	var types []*entity.ProductType
	for rows.Next() {
		var t entity.ProductType
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product type: %w", err)
		}
		types = append(types, &t)
	}
	return types, rows.Err()
}

func (r *ProductTypeRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM product_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
