package repository

import "github.com/drafza/pos-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	// DeleteAll limpia la tabla; usado sólo por el seeder.
	DeleteAll() error
}
