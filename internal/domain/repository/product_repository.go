package repository

import "github.com/drafza/pos-api/internal/domain/entity"

// ProductRepository puerto de persistencia del catálogo compartido.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// List devuelve el catálogo completo ordenado por tipo y nombre.
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}

// ProductTypeRepository puerto del registro de tipos de prenda.
type ProductTypeRepository interface {
	Create(t *entity.ProductType) error
	GetByName(name string) (*entity.ProductType, error)
	List() ([]*entity.ProductType, error)
	Delete(id string) error
}
