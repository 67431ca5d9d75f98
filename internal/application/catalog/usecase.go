package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/drafza/pos-api/internal/application/dto"
	"github.com/drafza/pos-api/internal/domain"
	"github.com/drafza/pos-api/internal/domain/entity"
	"github.com/drafza/pos-api/internal/domain/repository"
)

// DefaultLowStockThreshold umbral de reposición por defecto.
const DefaultLowStockThreshold = 5

// CatalogUseCase CRUD del catálogo compartido de productos y del registro de
// tipos de prenda. El alta de producto hace fan-out de filas de stock (una
// por ubicación, en cero) y el borrado las elimina en cascada.
type CatalogUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	typeRepo    repository.ProductTypeRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(txRunner TxRunner, productRepo repository.ProductRepository, typeRepo repository.ProductTypeRepository) *CatalogUseCase {
	return &CatalogUseCase{txRunner: txRunner, productRepo: productRepo, typeRepo: typeRepo}
}

// CreateProduct crea el producto y una fila de stock en cero por cada
// ubicación conocida, todo en una transacción. Las tallas 2XL/3XL reciben
// el recargo sobre el precio base.
func (uc *CatalogUseCase) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Name == "" || in.Type == "" || in.Category == "" || in.Size == "" {
		return nil, fmt.Errorf("%w: name, type, category y size son requeridos", domain.ErrInvalidInput)
	}
	if in.Category != entity.CategoryAdult && in.Category != entity.CategoryKids {
		return nil, fmt.Errorf("%w: category debe ser Adult o Kids", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}

	price := in.Price
	if entity.IsPlusSize(in.Size) {
		price = price.Add(entity.PlusSizeSurcharge)
	}
	threshold := in.LowStockThreshold
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}

	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Type:              in.Type,
		Category:          in.Category,
		Size:              in.Size,
		Price:             price,
		LowStockThreshold: threshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err := uc.txRunner.RunCatalog(ctx, func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		for _, loc := range entity.Locations {
			entry := &entity.StockEntry{
				ProductID:   product.ID,
				Location:    loc,
				Quantity:    0,
				LastUpdated: now,
			}
			if err := stockRepo.Upsert(entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct obtiene un producto por ID.
func (uc *CatalogUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// ListProducts lista el catálogo completo ordenado por tipo y nombre.
func (uc *CatalogUseCase) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.List()
}

// UpdateProduct actualiza campos del producto (parcial). El recargo de talla
// no se reaplica: el precio enviado se toma como final.
func (uc *CatalogUseCase) UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Type != nil {
		p.Type = *in.Type
	}
	if in.Category != nil {
		if *in.Category != entity.CategoryAdult && *in.Category != entity.CategoryKids {
			return nil, fmt.Errorf("%w: category debe ser Adult o Kids", domain.ErrInvalidInput)
		}
		p.Category = *in.Category
	}
	if in.Size != nil {
		p.Size = *in.Size
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
		}
		p.Price = *in.Price
	}
	if in.LowStockThreshold != nil {
		if *in.LowStockThreshold < 0 {
			return nil, fmt.Errorf("%w: low_stock_threshold no puede ser negativo", domain.ErrInvalidInput)
		}
		p.LowStockThreshold = *in.LowStockThreshold
	}
	p.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProduct elimina el producto y todas sus filas de stock, en una
// transacción. Las ventas históricas conservan su snapshot desnormalizado.
func (uc *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.RunCatalog(ctx, func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
	) error {
		if err := stockRepo.DeleteByProduct(id); err != nil {
			return err
		}
		return productRepo.Delete(id)
	})
}

// ListTypes lista los tipos de prenda registrados.
func (uc *CatalogUseCase) ListTypes(ctx context.Context) ([]*entity.ProductType, error) {
	return uc.typeRepo.List()
}

// AddType registra un tipo de prenda nuevo (nombre único).
func (uc *CatalogUseCase) AddType(ctx context.Context, name string) (*entity.ProductType, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: nombre de tipo requerido", domain.ErrInvalidInput)
	}
	existing, err := uc.typeRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	t := &entity.ProductType{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := uc.typeRepo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteType elimina un tipo de prenda por ID.
func (uc *CatalogUseCase) DeleteType(ctx context.Context, id string) error {
	return uc.typeRepo.Delete(id)
}
