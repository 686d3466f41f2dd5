package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sashabaranov/go-openai"
)

// OpenAIAnalyzer calls the OpenAI chat-completions API in JSON mode.
type OpenAIAnalyzer struct {
	client *openai.Client
	model  string
}

func NewOpenAIAnalyzer(apiKey, model string) (*OpenAIAnalyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}
	slog.Info("initializing OpenAI analyzer", "model", model)
	return &OpenAIAnalyzer{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

func (a *OpenAIAnalyzer) Analyze(ctx context.Context, text string) (*Result, error) {
	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: Prompt(text)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.3,
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("openai call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices")
	}

	result, err := Parse([]byte(resp.Choices[0].Message.Content))
	if err != nil {
		return nil, err
	}
	slog.Debug("document analysis completed", "finish_reason", resp.Choices[0].FinishReason)
	return result, nil
}
