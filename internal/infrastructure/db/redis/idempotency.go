package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore maps an Idempotency-Key to the id of the order it created.
// Keys expire after idempotencyTTL; a replay past that window simply creates
// a fresh order. Key format: idem:<key>
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Get returns the order id recorded for key, and whether the key was seen.
func (s *IdempotencyStore) Get(ctx context.Context, key string) (int64, bool, error) {
	id, err := s.client.Get(ctx, s.key(key)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("idempotency get: %w", err)
	}
	return id, true, nil
}

// Set records the order id created under key.
func (s *IdempotencyStore) Set(ctx context.Context, key string, orderID int64) error {
	return s.client.Set(ctx, s.key(key), orderID, idempotencyTTL).Err()
}

func (s *IdempotencyStore) key(key string) string {
	return "idem:" + key
}
