package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"nombre" validate:"required,min=3,max=100"`
	Description string          `json:"descripcion" validate:"max=500"`
	Price       decimal.Decimal `json:"precio" validate:"gt=0"`
	Category    string          `json:"categoria" validate:"required,oneof=bebida_caliente bebida_fria alimento postre snack"`
	Available   *bool           `json:"disponible"`
}

// UpdateProductRequest actualización parcial: solo se aplican los campos presentes.
type UpdateProductRequest struct {
	Name        *string          `json:"nombre" validate:"omitempty,min=3,max=100"`
	Description *string          `json:"descripcion" validate:"omitempty,max=500"`
	Price       *decimal.Decimal `json:"precio"`
	Category    *string          `json:"categoria" validate:"omitempty,oneof=bebida_caliente bebida_fria alimento postre snack"`
	Available   *bool            `json:"disponible"`
}

// ProductFilterRequest query de GET /api/productos.
type ProductFilterRequest struct {
	Category  string `query:"categoria"`
	Available string `query:"disponible"` // "true" | "false" | ""
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio"`
	Category    string          `json:"categoria"`
	Available   bool            `json:"disponible"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
