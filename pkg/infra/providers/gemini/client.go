package gemini

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kforum/moderation/pkg/infra/providers"
	"google.golang.org/genai"
)

const defaultModel = "gemini-1.5-flash"

type client struct {
	clientPool *sync.Map
}

func NewGeminiClient() providers.Client {
	return &client{
		clientPool: &sync.Map{},
	}
}

func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	if config.Credentials.ApiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	genaiClient, err := c.getOrCreateClient(ctx, config.Credentials.ApiKey)
	if err != nil {
		return nil, err
	}

	model := config.Model
	if model == "" {
		model = defaultModel
	}

	var generateConfig *genai.GenerateContentConfig
	if config.SystemPrompt != "" {
		generateConfig = &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: config.SystemPrompt}},
				Role:  "system",
			},
		}
	}

	result, err := genaiClient.Models.GenerateContent(ctx, model, genai.Text(prompt), generateConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	responseText := result.Text()
	if responseText == "" {
		return nil, fmt.Errorf("no completions returned")
	}

	completionResp := &providers.CompletionResponse{
		ID:       fmt.Sprintf("gemini-%d", time.Now().UnixNano()),
		Model:    model,
		Response: responseText,
	}
	if result.UsageMetadata != nil {
		completionResp.Usage = providers.Usage{
			PromptTokens:     int(result.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(result.UsageMetadata.TotalTokenCount),
		}
	}

	return completionResp, nil
}

func (c *client) getOrCreateClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if clientVal, ok := c.clientPool.Load(apiKey); ok {
		if genaiClient, ok := clientVal.(*genai.Client); ok {
			return genaiClient, nil
		}
	}
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	c.clientPool.Store(apiKey, genaiClient)
	return genaiClient, nil
}
