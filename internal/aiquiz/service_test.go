package aiquiz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quizforge-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizforge-lambda/internal/quiz"
)

func newTestService(provider *fakeProvider, repo *fakeRepo) aiquiz.Service {
	return aiquiz.NewService(provider, repo, aiquiz.NormalizeOptions{})
}

func TestGenerateQuizValidation(t *testing.T) {
	cases := []struct {
		name   string
		req    aiquiz.GenerateQuizRequest
		detail string
	}{
		{"BlankTopic", aiquiz.GenerateQuizRequest{Topic: "   ", QuestionType: quiz.TypeMCQ, NumQuestions: 3}, "Topic is required"},
		{"UnknownType", aiquiz.GenerateQuizRequest{Topic: "Math", QuestionType: "essay", NumQuestions: 3}, "Invalid question type"},
		{"ZeroQuestions", aiquiz.GenerateQuizRequest{Topic: "Math", QuestionType: quiz.TypeMCQ, NumQuestions: 0}, "Number of questions must be between 1 and 15"},
		{"SixteenQuestions", aiquiz.GenerateQuizRequest{Topic: "Math", QuestionType: quiz.TypeMCQ, NumQuestions: 16}, "Number of questions must be between 1 and 15"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := &fakeProvider{response: mcqPayload}
			repo := &fakeRepo{}

			_, err := newTestService(provider, repo).GenerateQuiz(context.Background(), tc.req)

			var verr *aiquiz.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.detail, verr.Detail)
			assert.Equal(t, 0, provider.Calls())
			assert.Empty(t, repo.created)
		})
	}
}

func TestGenerateQuizBoundaries(t *testing.T) {
	for _, n := range []int{1, 15} {
		provider := &fakeProvider{response: mcqPayload}
		_, err := newTestService(provider, &fakeRepo{}).GenerateQuiz(context.Background(), aiquiz.GenerateQuizRequest{
			Topic: "Math", QuestionType: quiz.TypeMCQ, NumQuestions: n,
		})
		assert.NoError(t, err, n)
		assert.Equal(t, 1, provider.Calls(), n)
	}
}

func TestGenerateQuizHappyPath(t *testing.T) {
	provider := &fakeProvider{response: mcqPayload}
	repo := &fakeRepo{}

	qz, err := newTestService(provider, repo).GenerateQuiz(context.Background(), aiquiz.GenerateQuizRequest{
		Topic: "Photosynthesis", QuestionType: quiz.TypeMCQ, NumQuestions: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, "Photosynthesis Quiz", qz.Title)
	assert.Equal(t, quiz.TypeMCQ, qz.Type)
	require.Len(t, qz.Questions, 3)
	assert.Equal(t, 3, qz.TotalQuestions)
	for i, q := range qz.Questions {
		assert.Equal(t, i+1, q.ID)
		assert.Len(t, q.Options, 4)
		idx, ok := q.Correct.Index()
		assert.True(t, ok)
		assert.GreaterOrEqual(t, idx, 0)
		assert.LessOrEqual(t, idx, 3)
	}

	require.Len(t, repo.created, 1)
	assert.Same(t, qz, repo.created[0])
	assert.Contains(t, provider.user, "Photosynthesis")
	assert.Equal(t, aiquiz.SystemPrompt(), provider.system)
}

func TestGenerateQuizTruncates(t *testing.T) {
	for requested, want := range map[int]int{1: 1, 2: 2, 3: 3, 10: 3} {
		provider := &fakeProvider{response: mcqPayload}
		qz, err := newTestService(provider, &fakeRepo{}).GenerateQuiz(context.Background(), aiquiz.GenerateQuizRequest{
			Topic: "Photosynthesis", QuestionType: quiz.TypeMCQ, NumQuestions: requested,
		})
		require.NoError(t, err)
		assert.Len(t, qz.Questions, want, "requested %d", requested)
		assert.Equal(t, len(qz.Questions), qz.TotalQuestions)
	}
}

func TestGenerateQuizFailures(t *testing.T) {
	req := aiquiz.GenerateQuizRequest{Topic: "Photosynthesis", QuestionType: quiz.TypeMCQ, NumQuestions: 3}

	t.Run("MissingAPIKey", func(t *testing.T) {
		repo := &fakeRepo{}
		_, err := newTestService(&fakeProvider{err: aiquiz.ErrMissingAPIKey}, repo).GenerateQuiz(context.Background(), req)
		assert.ErrorIs(t, err, aiquiz.ErrMissingAPIKey)
		assert.Empty(t, repo.created)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		repo := &fakeRepo{}
		_, err := newTestService(&fakeProvider{response: "Sorry, I can't help."}, repo).GenerateQuiz(context.Background(), req)
		var perr *aiquiz.ParseError
		assert.ErrorAs(t, err, &perr)
		assert.Empty(t, repo.created)
	})

	t.Run("NoQuestions", func(t *testing.T) {
		repo := &fakeRepo{}
		_, err := newTestService(&fakeProvider{response: `{"questions": []}`}, repo).GenerateQuiz(context.Background(), req)
		assert.ErrorIs(t, err, aiquiz.ErrNoQuestions)
		assert.Empty(t, repo.created)
	})

	t.Run("Storage", func(t *testing.T) {
		repo := &fakeRepo{err: errors.New("connection refused")}
		_, err := newTestService(&fakeProvider{response: mcqPayload}, repo).GenerateQuiz(context.Background(), req)
		assert.ErrorIs(t, err, aiquiz.ErrStorage)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestGeminiProviderWithoutKey(t *testing.T) {
	provider, err := aiquiz.NewGeminiProvider(context.Background(), aiquiz.GeminiConfig{Model: "gemini-2.0-flash"})
	require.NoError(t, err)

	_, err = provider.SendPrompt(context.Background(), "system", "user")
	assert.ErrorIs(t, err, aiquiz.ErrMissingAPIKey)
}
