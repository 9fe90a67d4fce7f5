package repository

import (
	"context"

	"github.com/jhoicas/Cafeteria-api/internal/domain/entity"
)

// UserFilter filtros del listado de usuarios. Campos vacíos no filtran.
type UserFilter struct {
	Role   string
	Active *bool
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create devuelve domain.ErrConflict si el email ya existe.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Update reescribe email, hash, nombre, rol y activo. Email duplicado -> domain.ErrConflict;
	// id inexistente -> domain.ErrNotFound.
	Update(ctx context.Context, user *entity.User) error
	// List ordenado por nombre.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, error)
}
