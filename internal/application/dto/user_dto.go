package dto

import "time"

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"nombre"`
	Role      string    `json:"rol"`
	Active    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateUserRequest alta de un usuario del personal. Rol barista por defecto.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"nombre" validate:"omitempty,max=100"`
	Role     string `json:"rol" validate:"omitempty,oneof=admin barista cocina mesero"`
}

// UpdateUserRequest actualización parcial; campos nil se conservan.
type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Name     *string `json:"nombre" validate:"omitempty,min=1,max=100"`
	Role     *string `json:"rol" validate:"omitempty,oneof=admin barista cocina mesero"`
	Active   *bool   `json:"activo"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}

// ChangePasswordRequest nueva contraseña.
type ChangePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// SetActiveRequest activa o desactiva un usuario.
type SetActiveRequest struct {
	Active *bool `json:"activo" validate:"required"`
}

// UserFilterRequest filtros del listado (query).
type UserFilterRequest struct {
	Role   string `query:"rol"`
	Active string `query:"activo"` // "true" | "false" | ""
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token firmado y usuario autenticado.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"usuario"`
}
