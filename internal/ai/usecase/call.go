package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"atomic-scheduler/internal/ai"
	"atomic-scheduler/pkg/perplexity"
)

// completeJSON runs one chat completion and unmarshals the reply into
// out. A non-empty return value classifies the failure; the caller is
// expected to synthesize fallback content for any of them.
func (uc *implUseCase) completeJSON(ctx context.Context, systemPrompt, userPrompt string, out any) ai.FallbackReason {
	if uc.llm == nil {
		return ai.FallbackNotConfigured
	}

	resp, err := uc.llm.ChatCompletion(ctx, &perplexity.Request{
		Model: uc.model,
		Messages: []perplexity.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.2,
		MaxTokens:   2048,
	})
	if err != nil {
		uc.l.Warnf(ctx, "ai.completeJSON ChatCompletion: %v", err)
		return ai.FallbackAPIError
	}
	if len(resp.Choices) == 0 {
		uc.l.Warnf(ctx, "ai.completeJSON: empty choices")
		return ai.FallbackBadPayload
	}

	payload := stripFences(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		uc.l.Warnf(ctx, "ai.completeJSON unmarshal: %v", err)
		return ai.FallbackBadPayload
	}
	return ai.FallbackNone
}

// stripFences removes a surrounding markdown code fence from an LLM
// reply. Models wrap JSON in ```json fences regardless of instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
