package repository

import (
	"context"

	"github.com/jhoicas/Despachos-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia de usuarios.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// FindByUsername devuelve nil sin error si el usuario no existe.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
