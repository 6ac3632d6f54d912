package ports

import (
	"context"

	"github.com/pizzanow/ordering-system/internal/core/domain"
)

// OrderRepository defines persistence operations for orders. The ledger is
// append-only: orders are inserted and read, never mutated here.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
}
