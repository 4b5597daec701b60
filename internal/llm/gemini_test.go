package llm

import (
	"context"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
)

func TestContextError(t *testing.T) {
	t.Run("deadline expiry maps to model timeout", func(t *testing.T) {
		ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Hour))
		defer cancel()
		<-ctx.Done()

		assert.ErrorIs(t, contextError(ctx), ErrModelTimeout)
	})

	t.Run("cancellation propagates unchanged", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		<-ctx.Done()

		err := contextError(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, ErrModelTimeout)
	})
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name     string
		resp     *genai.GenerateContentResponse
		expected string
	}{
		{
			name:     "nil response",
			resp:     nil,
			expected: "",
		},
		{
			name:     "no candidates",
			resp:     &genai.GenerateContentResponse{},
			expected: "",
		},
		{
			name: "single text part",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"a":1}`)}}},
				},
			},
			expected: `{"a":1}`,
		},
		{
			name: "multiple parts concatenated",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{Parts: []genai.Part{
						genai.Text(`{"a":`),
						genai.Text(`1}`),
					}}},
				},
			},
			expected: `{"a":1}`,
		},
		{
			name: "nil candidate and content skipped",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					nil,
					{Content: nil},
					{Content: &genai.Content{Parts: []genai.Part{genai.Text("  ok  ")}}},
				},
			},
			expected: "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractText(tt.resp))
		})
	}
}
