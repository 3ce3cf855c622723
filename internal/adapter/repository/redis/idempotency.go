package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/gobank/internal/usecase"
)

var _ usecase.IdempotencyStore = (*IdempotencyStore)(nil)

const defaultPrefix = "gobank:idempotency:"

// IdempotencyStore implements usecase.IdempotencyStore using Redis. A key is
// claimed with a pending marker while its request runs and then holds the
// response body until it expires.
type IdempotencyStore struct {
	client *redis.Client
	prefix string
}

// NewIdempotencyStore creates a new IdempotencyStore.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		prefix: defaultPrefix,
	}
}

// CheckAndSet claims key. It returns false when the caller now owns the key
// and true with the stored value when another request already claimed it.
// A nil response claims the key with usecase.IdempotencyPending.
func (s *IdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	value := response
	if value == nil {
		value = []byte(usecase.IdempotencyPending)
	}

	// The second pass covers a key that expired between SETNX and GET.
	for range 2 {
		claimed, err := s.client.SetNX(ctx, s.prefix+key, value, ttl).Result()
		if err != nil {
			return false, nil, fmt.Errorf("claim idempotency key %q: %w", key, err)
		}
		if claimed {
			return false, nil, nil
		}

		existing, err := s.client.Get(ctx, s.prefix+key).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return false, nil, fmt.Errorf("read idempotency key %q: %w", key, err)
		}
		return true, existing, nil
	}

	return false, nil, fmt.Errorf("claim idempotency key %q: key keeps expiring", key)
}

// Update stores the final response for key.
func (s *IdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.prefix+key, response, ttl).Err(); err != nil {
		return fmt.Errorf("store idempotency key %q: %w", key, err)
	}
	return nil
}

// Release drops a claim so the request can be retried, used when the
// request failed and its response should not be replayed.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("release idempotency key %q: %w", key, err)
	}
	return nil
}
