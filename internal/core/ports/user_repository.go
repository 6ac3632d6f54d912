package ports

import (
	"context"

	"github.com/pizzanow/ordering-system/internal/core/domain"
)

// UserRepository defines the interface for user account persistence.
// Username uniqueness is enforced atomically by the storage layer; Create
// returns domain.ErrUserExists when the constraint is violated and leaves no
// partial state behind.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
