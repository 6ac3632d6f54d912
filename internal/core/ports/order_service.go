package ports

import (
	"context"

	"github.com/pizzanow/ordering-system/internal/core/domain"
)

// CreateOrderInput carries all data needed to record a new order.
// IdempotencyKey is optional; when it matches a previously seen key the
// original order is returned instead of inserting a second row.
type CreateOrderInput struct {
	UserID         int64
	Item           string
	Quantity       int
	IdempotencyKey string
}

// OrderResult is returned by the service after recording an order.
type OrderResult struct {
	Order *domain.Order
	// AlreadyExisted is true when the Idempotency-Key matched an existing order.
	AlreadyExisted bool
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderResult, error)
	ListOrders(ctx context.Context, userID int64) ([]domain.Order, error)
}
