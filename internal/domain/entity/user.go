package entity

import "time"

// Roles de usuario.
const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// User una cuenta de vendedor atada a una ubicación. No hay registro
// self-service: las cuentas se crean con el seeder (cmd/seed).
type User struct {
	ID           string
	Username     string
	PasswordHash string
	DisplayName  string
	Location     string
	Role         string // staff | admin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
