package status

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type StatusContainer struct {
	Handler *Handler
}

func NewStatusContainer(db *gorm.DB) *StatusContainer {
	return newContainer(NewRepository(db))
}

func NewRedisStatusContainer(client *redis.Client, prefix string) *StatusContainer {
	return newContainer(NewRedisRepository(client, prefix))
}

func newContainer(repo Repository) *StatusContainer {
	service := NewService(repo)
	return &StatusContainer{
		Handler: NewHandler(service),
	}
}
