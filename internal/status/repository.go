package status

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, sc *StatusCheck) error
	List(ctx context.Context, limit int) ([]StatusCheck, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&StatusCheck{})
}

func (r *repository) Create(ctx context.Context, sc *StatusCheck) error {
	return r.db.WithContext(ctx).Create(sc).Error
}

func (r *repository) List(ctx context.Context, limit int) ([]StatusCheck, error) {
	checks := []StatusCheck{}
	if err := r.db.WithContext(ctx).Limit(limit).Find(&checks).Error; err != nil {
		return nil, err
	}
	return checks, nil
}
