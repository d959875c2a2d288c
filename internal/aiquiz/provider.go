package aiquiz

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/quizforge-lambda/internal/config"
	"google.golang.org/genai"
)

// Provider sends one stateless prompt to the model and returns its raw text.
type Provider interface {
	SendPrompt(ctx context.Context, system, user string) (string, error)
}

type GeminiConfig struct {
	APIKey    string
	Model     string
	MaxTokens int32
}

type geminiProvider struct {
	client *genai.Client
	cfg    GeminiConfig
}

// NewGeminiProvider never fails on a missing API key: the service keeps
// starting and every generation request reports ErrMissingAPIKey instead.
func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return &geminiProvider{cfg: cfg}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiProvider{client: client, cfg: cfg}, nil
}

func (p *geminiProvider) SendPrompt(ctx context.Context, system, user string) (string, error) {
	log := config.WithContext(ctx)

	if p.client == nil {
		return "", ErrMissingAPIKey
	}

	result, err := p.client.Models.GenerateContent(
		ctx,
		p.cfg.Model,
		genai.Text(user),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			MaxOutputTokens:   p.cfg.MaxTokens,
			ResponseMIMEType:  "application/json",
		},
	)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	raw := result.Text()
	log.WithField("model", p.cfg.Model).Debugf("Gemini raw response:\n%s", raw)
	return raw, nil
}
