package quiz

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type QuizContainer struct {
	Repo QuizRepository
}

func NewQuizContainer(db *gorm.DB) *QuizContainer {
	return &QuizContainer{
		Repo: NewRepository(db),
	}
}

func NewRedisQuizContainer(client *redis.Client, prefix string) *QuizContainer {
	return &QuizContainer{
		Repo: NewRedisRepository(client, prefix),
	}
}
