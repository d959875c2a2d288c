package quiz

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// QuizRepository is append-only: quizzes are written once and never updated.
type QuizRepository interface {
	Create(ctx context.Context, q *Quiz) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&quizRecord{})
}

func (r *quizRepository) Create(ctx context.Context, q *Quiz) error {
	rec, err := toRecord(q)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func toRecord(q *Quiz) (*quizRecord, error) {
	questions, err := json.Marshal(q.Questions)
	if err != nil {
		return nil, fmt.Errorf("encode questions: %w", err)
	}
	return &quizRecord{
		ID:             q.ID,
		Title:          q.Title,
		Type:           string(q.Type),
		Questions:      questions,
		TotalQuestions: q.TotalQuestions,
	}, nil
}
