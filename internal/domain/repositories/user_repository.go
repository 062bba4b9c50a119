package repositories

import (
	"context"

	"github.com/campusinsider/campus-insider/internal/domain/entities"
)

// UserRepository defines account persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
}
