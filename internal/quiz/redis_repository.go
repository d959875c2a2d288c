package quiz

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

// NewRedisRepository stores each quiz as a JSON document appended to a list.
func NewRedisRepository(client *redis.Client, prefix string) QuizRepository {
	return &redisRepository{client: client, key: ListKey(prefix)}
}

func ListKey(prefix string) string {
	if prefix == "" {
		return "quizzes"
	}
	return prefix + ":quizzes"
}

func (r *redisRepository) Create(ctx context.Context, q *Quiz) error {
	doc, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("encode quiz: %w", err)
	}
	return r.client.RPush(ctx, r.key, doc).Err()
}
