package ports

import (
	"context"

	"github.com/pizzanow/ordering-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login returns a signed bearer token on success. Unknown username and
	// wrong password are indistinguishable: both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
	// UserByUsername resolves the account behind an already-verified token subject.
	UserByUsername(ctx context.Context, username string) (*domain.User, error)
}
