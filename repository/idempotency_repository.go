package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// IdempotencyGuard tracks gateway payment ids that already completed
// checkout, so a replayed callback is rejected instead of re-reserving stock.
type IdempotencyGuard interface {
	Seen(ctx context.Context, paymentID string) (bool, error)
	Mark(ctx context.Context, paymentID, paymentRecordID string) error
}

// IdempotencyStore implements IdempotencyGuard over Redis.
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{client: client, ttl: ttl}
}

var _ IdempotencyGuard = (*IdempotencyStore)(nil)

func (s *IdempotencyStore) key(paymentID string) string {
	return "idem:checkout:" + paymentID
}

// Seen reports whether the payment id was already processed.
func (s *IdempotencyStore) Seen(ctx context.Context, paymentID string) (bool, error) {
	_, err := s.client.Get(ctx, s.key(paymentID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Mark records the payment id with the payment record it produced.
func (s *IdempotencyStore) Mark(ctx context.Context, paymentID, paymentRecordID string) error {
	return s.client.Set(ctx, s.key(paymentID), paymentRecordID, s.ttl).Err()
}
