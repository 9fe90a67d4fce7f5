package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Cafeteria-api/internal/application/dto"
	"github.com/jhoicas/Cafeteria-api/internal/domain"
	"github.com/jhoicas/Cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/Cafeteria-api/internal/domain/repository"
)

const minPasswordLen = 8

// UserUseCase gestión de usuarios del personal.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Actor usuario autenticado que ejecuta la operación.
type Actor struct {
	UserID string
	Role   string
}

// List usuarios ordenados por nombre, filtrados por rol y/o estado.
func (uc *UserUseCase) List(ctx context.Context, in dto.UserFilterRequest) ([]dto.UserResponse, error) {
	filter := repository.UserFilter{}
	if in.Role != "" {
		if !entity.IsValidRole(in.Role) {
			return nil, domain.Validation("rol", "rol desconocido")
		}
		filter.Role = in.Role
	}
	switch in.Active {
	case "":
	case "true", "false":
		v := in.Active == "true"
		filter.Active = &v
	default:
		return nil, domain.Validation("activo", "debe ser true o false")
	}

	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, domain.Persistence("listar usuarios", err)
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *entityToUserResponse(u))
	}
	return items, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// Create hashea password con bcrypt y persiste un usuario activo.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return nil, domain.Validation("email", "requerido")
	}
	if len(in.Password) < minPasswordLen {
		return nil, domain.Validation("password", "mínimo 8 caracteres")
	}
	role := in.Role
	if role == "" {
		role = entity.RoleBarista
	}
	if !entity.IsValidRole(role) {
		return nil, domain.Validation("rol", "rol desconocido")
	}
	if err := uc.ensureEmailFree(ctx, email, ""); err != nil {
		return nil, err
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = email
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, domain.Persistence("crear usuario", err)
	}
	return entityToUserResponse(user), nil
}

// Update cambia nombre, email, rol, estado y opcionalmente la contraseña.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if email == "" {
			return nil, domain.Validation("email", "requerido")
		}
		if email != user.Email {
			if err := uc.ensureEmailFree(ctx, email, user.ID); err != nil {
				return nil, err
			}
		}
		user.Email = email
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.Validation("nombre", "requerido")
		}
		user.Name = name
	}
	if in.Role != nil {
		if !entity.IsValidRole(*in.Role) {
			return nil, domain.Validation("rol", "rol desconocido")
		}
		user.Role = *in.Role
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	if in.Password != nil {
		if len(*in.Password) < minPasswordLen {
			return nil, domain.Validation("password", "mínimo 8 caracteres")
		}
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, domain.Persistence("actualizar usuario", err)
	}
	return entityToUserResponse(user), nil
}

// ChangePassword solo el admin o el propio usuario pueden cambiar la contraseña.
func (uc *UserUseCase) ChangePassword(ctx context.Context, actor Actor, id, password string) error {
	if actor.Role != entity.RoleAdmin && actor.UserID != id {
		return domain.ErrForbidden
	}
	if len(password) < minPasswordLen {
		return domain.Validation("password", "mínimo 8 caracteres")
	}
	user, err := uc.find(ctx, id)
	if err != nil {
		return err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return domain.Persistence("actualizar usuario", err)
	}
	return nil
}

// SetActive activa o desactiva un usuario. Un admin no puede desactivarse a sí mismo.
func (uc *UserUseCase) SetActive(ctx context.Context, actor Actor, id string, active bool) (*dto.UserResponse, error) {
	if !active && actor.UserID == id {
		return nil, domain.Validation("activo", "no puedes desactivar tu propio usuario")
	}
	user, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Active != active {
		user.Active = active
		user.UpdatedAt = time.Now()
		if err := uc.repo.Update(ctx, user); err != nil {
			return nil, domain.Persistence("actualizar usuario", err)
		}
	}
	return entityToUserResponse(user), nil
}

func (uc *UserUseCase) find(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence("obtener usuario", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// ensureEmailFree devuelve ErrConflict si el email pertenece a otro usuario distinto de selfID.
func (uc *UserUseCase) ensureEmailFree(ctx context.Context, email, selfID string) error {
	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return domain.Persistence("obtener usuario", err)
	}
	if existing != nil && existing.ID != selfID {
		return domain.ErrConflict
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
