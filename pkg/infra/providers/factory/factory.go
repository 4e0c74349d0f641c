package factory

import (
	"fmt"

	"github.com/kforum/moderation/pkg/infra/providers"
	"github.com/kforum/moderation/pkg/infra/providers/anthropic"
	"github.com/kforum/moderation/pkg/infra/providers/gemini"
	"github.com/kforum/moderation/pkg/infra/providers/openai"
)

const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

//go:generate mockery --name=ProviderLocator --dir=. --output=./mocks --filename=provider_locator_mock.go --case=underscore --with-expecter

type ProviderLocator interface {
	Get(provider string) (providers.Client, error)
}

type providerLocator struct{}

func NewProviderLocator() ProviderLocator {
	return &providerLocator{}
}

func (f *providerLocator) Get(provider string) (providers.Client, error) {
	switch provider {
	case ProviderGemini:
		return gemini.NewGeminiClient(), nil
	case ProviderOpenAI:
		return openai.NewOpenaiClient(), nil
	case ProviderAnthropic:
		return anthropic.NewAnthropicClient(), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
