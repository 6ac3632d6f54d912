package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pizzanow/ordering-system/internal/core/domain"
	"github.com/pizzanow/ordering-system/internal/core/ports"
)

// IdempotencyStore abstracts the replay cache (Redis) used for the
// Idempotency-Key header on order creation.
type IdempotencyStore interface {
	// Get returns the order id recorded for key, and whether the key was seen.
	Get(ctx context.Context, key string) (int64, bool, error)
	Set(ctx context.Context, key string, orderID int64) error
}

// OrderService records purchase orders.
type OrderService struct {
	repo   ports.OrderRepository
	idem   IdempotencyStore
	logger zerolog.Logger
}

// NewOrderService returns an OrderService. idem may be nil, in which case
// Idempotency-Key headers are ignored and every request inserts a row.
func NewOrderService(repo ports.OrderRepository, idem IdempotencyStore, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, idem: idem, logger: logger}
}

// CreateOrder records a new order with status "pending". The referenced user
// id is not checked for existence, the item is free text, and the quantity is
// taken as-is, zero or negative included. Intake is deliberately permissive;
// the repeated Idempotency-Key replay is the one short-circuit.
func (s *OrderService) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*ports.OrderResult, error) {
	if input.IdempotencyKey != "" && s.idem != nil {
		if id, seen, err := s.idem.Get(ctx, input.IdempotencyKey); err != nil {
			s.logger.Warn().Err(err).Msg("idempotency lookup failed, creating anyway")
		} else if seen {
			existing, err := s.repo.FindByID(ctx, id)
			if err == nil {
				s.logger.Info().Str("idempotency_key", input.IdempotencyKey).Int64("order_id", existing.ID).Msg("idempotent replay")
				return &ports.OrderResult{Order: existing, AlreadyExisted: true}, nil
			}
			s.logger.Warn().Err(err).Int64("order_id", id).Msg("replay target missing, creating anyway")
		}
	}

	created, err := s.repo.Create(ctx, &domain.Order{
		UserID:   input.UserID,
		Item:     input.Item,
		Quantity: input.Quantity,
		Status:   domain.StatusPending,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	if input.IdempotencyKey != "" && s.idem != nil {
		if err := s.idem.Set(ctx, input.IdempotencyKey, created.ID); err != nil {
			s.logger.Warn().Err(err).Msg("failed to record idempotency key")
		}
	}

	s.logger.Info().Int64("order_id", created.ID).Int64("user_id", created.UserID).Str("item", created.Item).Msg("order created")

	return &ports.OrderResult{Order: created}, nil
}

// ListOrders returns the user's orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}
