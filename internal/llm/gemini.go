package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"bizval-service/internal/common/logger"
)

var (
	ErrModelTimeout = errors.New("MODEL_TIMEOUT")
	ErrModelFailed  = errors.New("MODEL_CALL_FAILED")
)

// Config holds the Gemini client settings.
type Config struct {
	APIKey     string
	Model      string
	Timeout    time.Duration
	MaxRetries int
}

// GeminiGenerator implements Generator on top of the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	config Config
	logger logger.Logger
}

func NewGeminiGenerator(ctx context.Context, config Config, log logger.Logger) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(config.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiGenerator{
		client: client,
		config: config,
		logger: log.WithFields(map[string]interface{}{"model": config.Model}),
	}, nil
}

// GenerateText sends one prompt and returns the concatenated text parts of
// the first reply. Transport failures are retried with exponential backoff
// inside the per-call deadline.
func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	model := g.client.GenerativeModel(g.config.Model)

	var resp *genai.GenerateContentResponse
	var lastErr error

	for attempt := 0; attempt <= g.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", contextError(ctx)
			}
		}

		resp, lastErr = model.GenerateContent(ctx, genai.Text(prompt))
		if lastErr == nil {
			break
		}

		if ctx.Err() != nil {
			return "", contextError(ctx)
		}

		g.logger.Warn("model call failed, retrying", map[string]interface{}{
			"attempt": attempt + 1,
			"error":   lastErr.Error(),
		})
	}

	if lastErr != nil {
		if ctx.Err() != nil {
			return "", contextError(ctx)
		}
		return "", fmt.Errorf("%w: %v", ErrModelFailed, lastErr)
	}

	text := extractText(resp)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty reply", ErrModelFailed)
	}

	return text, nil
}

// contextError maps context termination onto the caller-facing error: only a
// deadline expiry is a model timeout; a cancelled parent (client disconnect)
// propagates unchanged so logs attribute it correctly.
func contextError(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrModelTimeout
	}
	return ctx.Err()
}

// Close releases the underlying API client.
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

// extractText concatenates the text parts of every candidate.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}
	return strings.TrimSpace(b.String())
}
