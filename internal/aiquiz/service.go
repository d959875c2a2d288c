package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/quizforge-lambda/internal/config"
	"github.com/saulo-duarte/quizforge-lambda/internal/quiz"
	"github.com/sirupsen/logrus"
)

type Service interface {
	GenerateQuiz(ctx context.Context, req GenerateQuizRequest) (*quiz.Quiz, error)
}

type service struct {
	provider Provider
	repo     quiz.QuizRepository
	opts     NormalizeOptions
}

func NewService(provider Provider, repo quiz.QuizRepository, opts NormalizeOptions) Service {
	return &service{provider: provider, repo: repo, opts: opts}
}

func ValidateRequest(req GenerateQuizRequest) error {
	if strings.TrimSpace(req.Topic) == "" {
		return &ValidationError{Detail: "Topic is required"}
	}
	if !req.QuestionType.IsValid() {
		return &ValidationError{Detail: "Invalid question type"}
	}
	if req.NumQuestions < MinQuestions || req.NumQuestions > MaxQuestions {
		return &ValidationError{Detail: fmt.Sprintf("Number of questions must be between %d and %d", MinQuestions, MaxQuestions)}
	}
	return nil
}

func (s *service) GenerateQuiz(ctx context.Context, req GenerateQuizRequest) (*quiz.Quiz, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"question_type": req.QuestionType,
		"num_questions": req.NumQuestions,
	})

	if err := ValidateRequest(req); err != nil {
		log.WithError(err).Warn("Rejected quiz request")
		return nil, err
	}

	raw, err := s.provider.SendPrompt(ctx, systemPrompt, BuildUserPrompt(req))
	if err != nil {
		return nil, err
	}

	questions, err := Normalize(raw, req.QuestionType, s.opts)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) && perr.Detail == detailInvalidJSON {
			log.WithError(err).Errorf("Model returned invalid JSON. Raw response:\n%s", raw)
		} else {
			log.WithError(err).Error("Model response does not match the quiz schema")
		}
		return nil, err
	}

	if len(questions) == 0 {
		log.Warn("Model returned no questions")
		return nil, ErrNoQuestions
	}
	if len(questions) > req.NumQuestions {
		questions = questions[:req.NumQuestions]
	}

	qz := quiz.New(req.Topic, req.QuestionType, questions)

	if err := s.repo.Create(ctx, qz); err != nil {
		log.WithError(err).Error("Failed to store quiz")
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	log.WithFields(logrus.Fields{
		"quiz_id":         qz.ID,
		"total_questions": qz.TotalQuestions,
	}).Info("Quiz generated")
	return qz, nil
}
