// seeduser crea un usuario del personal (por ejemplo el primer admin) con la misma validación del API.
//
// Uso: go run ./cmd/seeduser -email admin@cafe.mx -password 's3cr3t0!' -nombre Admin -rol admin
// También lee SEED_EMAIL, SEED_PASSWORD, SEED_NOMBRE y SEED_ROL si no se pasan flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/Cafeteria-api/internal/application/dto"
	"github.com/jhoicas/Cafeteria-api/internal/application/usecase"
	"github.com/jhoicas/Cafeteria-api/internal/domain"
	"github.com/jhoicas/Cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/Cafeteria-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Cafeteria-api/pkg/config"
)

func main() {
	email := flag.String("email", os.Getenv("SEED_EMAIL"), "email del usuario")
	password := flag.String("password", os.Getenv("SEED_PASSWORD"), "contraseña (mínimo 8 caracteres)")
	name := flag.String("nombre", os.Getenv("SEED_NOMBRE"), "nombre visible")
	role := flag.String("rol", envOr("SEED_ROL", entity.RoleAdmin), "admin | barista | cocina | mesero")
	migrate := flag.Bool("migrate", false, "aplicar el esquema antes de crear el usuario")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if *migrate || cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			fmt.Fprintf(os.Stderr, "Migraciones: %v\n", err)
			os.Exit(1)
		}
	}

	uc := usecase.NewUserUseCase(postgres.NewUserRepository(pool))
	user, err := uc.Create(ctx, dto.CreateUserRequest{
		Email:    *email,
		Password: *password,
		Name:     *name,
		Role:     *role,
	})
	switch {
	case errors.Is(err, domain.ErrConflict):
		fmt.Fprintf(os.Stderr, "Ya existe un usuario con email %s\n", *email)
		os.Exit(2)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Crear usuario: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Usuario creado: %s (%s) rol=%s\n", user.Email, user.ID, user.Role)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
