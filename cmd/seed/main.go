// seed puebla la tabla de usuarios con las tres cuentas fijas de operación
// (una por persona, atada a su ubicación). Borra los usuarios existentes y
// los vuelve a crear.
//
// Uso: go run ./cmd/seed
// La contraseña sale de SEED_PASSWORD; tiene un valor por defecto para
// entornos de desarrollo.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/drafza/pos-api/internal/domain/entity"
	"github.com/drafza/pos-api/internal/infrastructure/postgres"
	"github.com/drafza/pos-api/pkg/config"
)

type seedUser struct {
	username    string
	displayName string
	location    string
	role        string
}

var seedUsers = []seedUser{
	{username: "drafza1", displayName: "PKNS Bazaar", location: entity.LocationPKNS, role: entity.RoleAdmin},
	{username: "drafza2", displayName: "Kipmall Bangi Gateway", location: entity.LocationKipmall, role: entity.RoleStaff},
	{username: "drafza3", displayName: "Backup Account", location: entity.LocationSpare, role: entity.RoleStaff},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "Akmal123"
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hash de contraseña: %v\n", err)
		os.Exit(1)
	}

	repo := postgres.NewUserRepository(pool)
	if err := repo.DeleteAll(); err != nil {
		fmt.Fprintf(os.Stderr, "Limpiar usuarios: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	for _, su := range seedUsers {
		u := &entity.User{
			ID:           uuid.NewString(),
			Username:     su.username,
			PasswordHash: string(hash),
			DisplayName:  su.displayName,
			Location:     su.location,
			Role:         su.role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := repo.Create(u); err != nil {
			fmt.Fprintf(os.Stderr, "Crear usuario %s: %v\n", su.username, err)
			os.Exit(1)
		}
		fmt.Printf("Usuario creado: %s (%s, %s)\n", su.username, su.location, su.role)
	}
	fmt.Println("Seed completado.")
}
