package wizardstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/glamsuite/salon-scheduler/internal/domain/booking"
)

// Store holds booking wizard sessions in redis with a TTL, plus a per-wizard
// submission lock so a rapid double submit cannot run two mutations at once.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(id string) string {
	return fmt.Sprintf("wizard:%s", id)
}

func lockKey(id string) string {
	return fmt.Sprintf("wizard:lock:%s", id)
}

func (s *Store) Get(ctx context.Context, id string) (*booking.Wizard, error) {
	val, err := s.client.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get wizard from redis: %w", err)
	}

	var w booking.Wizard
	if err := json.Unmarshal([]byte(val), &w); err != nil {
		return nil, fmt.Errorf("unmarshal wizard: %w", err)
	}
	return &w, nil
}

func (s *Store) Save(ctx context.Context, w *booking.Wizard) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("marshal wizard: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(w.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("set wizard in redis: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("delete wizard from redis: %w", err)
	}
	return nil
}

// TryLock acquires the single-flight lock for a wizard. Returns false when a
// submission is already in flight. The lock expires on its own so a crashed
// request cannot wedge the session.
func (s *Store) TryLock(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, lockKey(id), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire wizard lock: %w", err)
	}
	return ok, nil
}

func (s *Store) Unlock(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, lockKey(id)).Err(); err != nil {
		return fmt.Errorf("release wizard lock: %w", err)
	}
	return nil
}
