package aiquiz

import (
	"context"

	"github.com/saulo-duarte/quizforge-lambda/internal/quiz"
)

type AIQuizContainer struct {
	Handler *Handler
	Service Service
}

func NewAIQuizContainer(ctx context.Context, cfg GeminiConfig, repo quiz.QuizRepository, opts NormalizeOptions) (*AIQuizContainer, error) {
	provider, err := NewGeminiProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	service := NewService(provider, repo, opts)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
		Service: service,
	}, nil
}
