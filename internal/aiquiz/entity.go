package aiquiz

import "github.com/saulo-duarte/quizforge-lambda/internal/quiz"

const (
	MinQuestions = 1
	MaxQuestions = 15
)

type GenerateQuizRequest struct {
	Topic        string            `json:"topic"`
	QuestionType quiz.QuestionType `json:"question_type"`
	NumQuestions int               `json:"num_questions"`
}

type GenerateQuizResponse struct {
	Success bool       `json:"success"`
	Quiz    *quiz.Quiz `json:"quiz"`
	Error   *string    `json:"error"`
}
