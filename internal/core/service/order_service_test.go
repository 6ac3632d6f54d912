package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pizzanow/ordering-system/internal/core/domain"
	"github.com/pizzanow/ordering-system/internal/core/ports"
)

type stubOrderRepo struct {
	orders []domain.Order
	nextID int64
}

func (r *stubOrderRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	r.nextID++
	created := *order
	created.ID = r.nextID
	r.orders = append(r.orders, created)
	return &created, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id int64) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			clone := o
			return &clone, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) ListByUser(_ context.Context, userID int64) ([]domain.Order, error) {
	var out []domain.Order
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].UserID == userID {
			out = append(out, r.orders[i])
		}
	}
	return out, nil
}

type stubIdemStore struct {
	seen map[string]int64
	err  error
}

func newStubIdemStore() *stubIdemStore {
	return &stubIdemStore{seen: make(map[string]int64)}
}

func (s *stubIdemStore) Get(_ context.Context, key string) (int64, bool, error) {
	if s.err != nil {
		return 0, false, s.err
	}
	id, ok := s.seen[key]
	return id, ok, nil
}

func (s *stubIdemStore) Set(_ context.Context, key string, orderID int64) error {
	if s.err != nil {
		return s.err
	}
	s.seen[key] = orderID
	return nil
}

func TestOrderService_CreateOrder(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo, nil, zerolog.Nop())

	result, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		UserID:   1,
		Item:     "Margherita",
		Quantity: 2,
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	o := result.Order
	if o.Status != domain.StatusPending {
		t.Fatalf("expected status pending, got %q", o.Status)
	}
	if o.UserID != 1 || o.Item != "Margherita" || o.Quantity != 2 {
		t.Fatalf("input not echoed back: %+v", o)
	}
	if result.AlreadyExisted {
		t.Fatalf("fresh order reported as replay")
	}
}

func TestOrderService_CreateOrder_NoValidation(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo, nil, zerolog.Nop())

	// Nonexistent user, empty item, negative quantity: all accepted.
	result, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		UserID:   9999,
		Item:     "",
		Quantity: -3,
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if result.Order.Quantity != -3 {
		t.Fatalf("quantity altered: %d", result.Order.Quantity)
	}
	if result.Order.Status != domain.StatusPending {
		t.Fatalf("expected status pending, got %q", result.Order.Status)
	}
}

func TestOrderService_CreateOrder_IdempotentReplay(t *testing.T) {
	repo := &stubOrderRepo{}
	idem := newStubIdemStore()
	svc := NewOrderService(repo, idem, zerolog.Nop())

	input := ports.CreateOrderInput{UserID: 1, Item: "Diavola", Quantity: 1, IdempotencyKey: "req-42"}

	first, err := svc.CreateOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("first CreateOrder: %v", err)
	}

	second, err := svc.CreateOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("second CreateOrder: %v", err)
	}
	if !second.AlreadyExisted {
		t.Fatalf("expected replay on repeated key")
	}
	if second.Order.ID != first.Order.ID {
		t.Fatalf("replay returned a different order: %d vs %d", second.Order.ID, first.Order.ID)
	}
	if len(repo.orders) != 1 {
		t.Fatalf("repeated key inserted %d rows", len(repo.orders))
	}
}

func TestOrderService_CreateOrder_IdempotencyStoreDown(t *testing.T) {
	repo := &stubOrderRepo{}
	idem := newStubIdemStore()
	idem.err = errors.New("redis unavailable")
	svc := NewOrderService(repo, idem, zerolog.Nop())

	// A broken replay cache must not block order intake.
	result, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		UserID: 1, Item: "Capricciosa", Quantity: 1, IdempotencyKey: "req-7",
	})
	if err != nil {
		t.Fatalf("CreateOrder with failing store: %v", err)
	}
	if result.AlreadyExisted {
		t.Fatalf("unexpected replay")
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo, nil, zerolog.Nop())

	_, _ = svc.CreateOrder(context.Background(), ports.CreateOrderInput{UserID: 1, Item: "Margherita", Quantity: 1})
	_, _ = svc.CreateOrder(context.Background(), ports.CreateOrderInput{UserID: 2, Item: "Quattro Formaggi", Quantity: 1})
	_, _ = svc.CreateOrder(context.Background(), ports.CreateOrderInput{UserID: 1, Item: "Diavola", Quantity: 2})

	orders, err := svc.ListOrders(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].Item != "Diavola" {
		t.Fatalf("expected newest first, got %q", orders[0].Item)
	}
}
