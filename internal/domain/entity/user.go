package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleBarista = "barista"
	RoleCocina  = "cocina"
	RoleMesero  = "mesero"
)

// Roles lista de roles asignables.
var Roles = []string{RoleAdmin, RoleBarista, RoleCocina, RoleMesero}

// IsValidRole indica si r es un rol conocido.
func IsValidRole(r string) bool { return contains(Roles, r) }

// User representa un usuario del personal.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt
	Name         string
	Role         string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
