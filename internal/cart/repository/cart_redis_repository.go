package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"tiffin/internal/domain"
	"tiffin/internal/dto"
)

const (
	keyPrefix = "tiffin:cart:"

	// Carts survive reloads but not forever; abandoned carts expire.
	cartTTL = 7 * 24 * time.Hour
)

type RedisCartRepository struct {
	client *redis.Client
}

func NewRedisCartRepository(client *redis.Client) *RedisCartRepository {
	return &RedisCartRepository{client: client}
}

func (r *RedisCartRepository) Load(ctx context.Context, key string) (*domain.Cart, error) {
	data, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading cart: %w", err)
	}

	var record dto.CartRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decoding cart record: %w", err)
	}

	return record.ToDomain(), nil
}

func (r *RedisCartRepository) Save(ctx context.Context, key string, cart *domain.Cart) error {
	record := dto.CartRecordFromDomain(cart)
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding cart record: %w", err)
	}

	if err := r.client.Set(ctx, keyPrefix+key, data, cartTTL).Err(); err != nil {
		return fmt.Errorf("saving cart: %w", err)
	}
	return nil
}

func (r *RedisCartRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("deleting cart: %w", err)
	}
	return nil
}
