package repository

import (
	"context"

	"github.com/jhoicas/Cafeteria-api/internal/domain/entity"
)

// ProductFilter filtros del catálogo.
type ProductFilter struct {
	Category  string
	Available *bool
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByIDs búsqueda en lote; los ids inexistentes simplemente no aparecen.
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
}
