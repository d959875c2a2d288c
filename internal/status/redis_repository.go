package status

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *redis.Client
	key    string
}

func NewRedisRepository(client *redis.Client, prefix string) Repository {
	key := "status_checks"
	if prefix != "" {
		key = prefix + ":" + key
	}
	return &redisRepository{client: client, key: key}
}

func (r *redisRepository) Create(ctx context.Context, sc *StatusCheck) error {
	doc, err := json.Marshal(sc)
	if err != nil {
		return fmt.Errorf("encode status check: %w", err)
	}
	return r.client.RPush(ctx, r.key, doc).Err()
}

func (r *redisRepository) List(ctx context.Context, limit int) ([]StatusCheck, error) {
	docs, err := r.client.LRange(ctx, r.key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	checks := make([]StatusCheck, 0, len(docs))
	for _, doc := range docs {
		var sc StatusCheck
		if err := json.Unmarshal([]byte(doc), &sc); err != nil {
			return nil, fmt.Errorf("decode status check: %w", err)
		}
		checks = append(checks, sc)
	}
	return checks, nil
}
