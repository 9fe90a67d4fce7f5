package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cafeteria-api/internal/application/dto"
	"github.com/jhoicas/Cafeteria-api/internal/domain"
	"github.com/jhoicas/Cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/Cafeteria-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo. El núcleo de pedidos solo lee precio y disponibilidad.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. Disponible por defecto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if err := validateProduct(name, in.Category, in.Price); err != nil {
		return nil, err
	}
	available := true
	if in.Available != nil {
		available = *in.Available
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Available:   available,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, domain.Persistence("crear producto", err)
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence("obtener producto", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update aplica los campos presentes (precio, disponibilidad, nombre...).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence("obtener producto", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Available != nil {
		product.Available = *in.Available
	}
	if err := validateProduct(product.Name, product.Category, product.Price); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, domain.Persistence("actualizar producto", err)
	}
	return toProductResponse(product), nil
}

// Deactivate baja lógica: el producto queda no disponible y deja de aceptarse en pedidos nuevos.
// Las líneas de pedidos anteriores lo siguen referenciando, por eso no se borra la fila.
func (uc *ProductUseCase) Deactivate(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence("obtener producto", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.Available {
		product.Available = false
		product.UpdatedAt = time.Now()
		if err := uc.repo.Update(ctx, product); err != nil {
			return nil, domain.Persistence("desactivar producto", err)
		}
	}
	return toProductResponse(product), nil
}

// List lista el catálogo; categoria y disponible son filtros opcionales.
func (uc *ProductUseCase) List(ctx context.Context, in dto.ProductFilterRequest) ([]dto.ProductResponse, error) {
	filter := repository.ProductFilter{}
	if in.Category != "" {
		if !entity.IsValidCategory(in.Category) {
			return nil, domain.Validation("categoria", "categoría desconocida")
		}
		filter.Category = in.Category
	}
	switch in.Available {
	case "":
	case "true", "false":
		v := in.Available == "true"
		filter.Available = &v
	default:
		return nil, domain.Validation("disponible", "debe ser true o false")
	}

	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, domain.Persistence("listar productos", err)
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

func validateProduct(name, category string, price decimal.Decimal) error {
	if n := len([]rune(name)); n < 3 || n > 100 {
		return domain.Validation("nombre", "debe tener entre 3 y 100 caracteres")
	}
	if !entity.IsValidCategory(category) {
		return domain.Validation("categoria", "debe ser una de: "+strings.Join(entity.ProductCategories, ", "))
	}
	if !price.IsPositive() {
		return domain.Validation("precio", "debe ser mayor que cero")
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Available:   p.Available,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
