package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/srikar0313/TechPulse/internal/news"
)

type openaiProvider struct {
	client    *openai.Client
	model     string
	batchSize int
}

func newOpenAIProvider(apiKey, model string, batchSize int) *openaiProvider {
	return &openaiProvider{
		client:    openai.NewClient(apiKey),
		model:     model,
		batchSize: batchSize,
	}
}

func (o *openaiProvider) Generate(ctx context.Context) ([]news.Raw, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(o.batchSize)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty openai response")
	}
	return decodeBatch(resp.Choices[0].Message.Content)
}
