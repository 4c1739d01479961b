// Package redisstore keeps the cart snapshot in a single Redis key, for
// kiosk deployments where several terminals share one storage backend.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Manuelsilva1/Library/internal/cart/domain"
)

const opTimeout = 3 * time.Second

type Store struct {
	rdb *redis.Client
	key string
}

// NewStore binds the slot to one key, usually scoped by session or terminal
// id, e.g. "cart:pos:3".
func NewStore(rdb *redis.Client, key string) *Store {
	return &Store{rdb: rdb, key: key}
}

func (s *Store) Load() ([]domain.LineItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	raw, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", s.key, err)
	}

	var items []domain.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", s.key, err)
	}

	return items, nil
}

func (s *Store) Save(items []domain.LineItem) error {
	if items == nil {
		items = []domain.LineItem{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := s.rdb.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}

	return nil
}

func (s *Store) Discard() error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", s.key, err)
	}

	return nil
}
