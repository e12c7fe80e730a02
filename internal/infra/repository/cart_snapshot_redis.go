package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// redis版。同じ固定キーに同じJSONテキストを保存する。
type CartSnapshotRedisRepository struct {
	client *redis.Client
}

// DI
func NewCartSnapshotRedisRepository(client *redis.Client) *CartSnapshotRedisRepository {
	return &CartSnapshotRedisRepository{client: client}
}

func (r *CartSnapshotRedisRepository) Load(ctx context.Context) ([]model.CartItem, error) {
	raw, err := r.client.Get(ctx, snapshotKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, repo.ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}

	var items []model.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("parse cart snapshot: %w", err)
	}
	return items, nil
}

func (r *CartSnapshotRedisRepository) Save(ctx context.Context, items []model.CartItem) error {
	if items == nil {
		items = []model.CartItem{}
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}

	//TTL無し。明示的なクリアまで残す
	return r.client.Set(ctx, snapshotKey, string(payload), 0).Err()
}
