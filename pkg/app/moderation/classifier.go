package moderation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/kforum/moderation/pkg/infra/breaker"
	"github.com/kforum/moderation/pkg/infra/prometheus"
	"github.com/kforum/moderation/pkg/infra/providers"
	"github.com/sirupsen/logrus"

	domain "github.com/kforum/moderation/pkg/domain/moderation"
)

const (
	defaultClassifierTimeout = 10 * time.Second
	breakerResetTimeout      = 30 * time.Second
	breakerMaxFailures       = 5
)

//go:generate mockery --name=Classifier --dir=. --output=./mocks --filename=classifier_mock.go --case=underscore --with-expecter

// Classifier is the external toxicity classifier adapter. Every failure is
// one of the typed errors in pkg/domain/moderation; callers never see a raw
// transport or decoding error.
type Classifier interface {
	Classify(ctx context.Context, text string) (*ClassifierResult, error)
}

// ClassifierResult is the normalized remote response.
type ClassifierResult struct {
	Status         string
	ToxicityScore  float64
	Languages      []string
	OffensiveTerms []string
	Reason         string
}

type ClassifierConfig struct {
	Provider    string        `mapstructure:"provider"`
	ApiKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
}

type providerClassifier struct {
	logger  *logrus.Logger
	client  providers.Client
	breaker breaker.CircuitBreaker
	config  ClassifierConfig
}

func NewClassifier(logger *logrus.Logger, client providers.Client, config ClassifierConfig) Classifier {
	if config.Timeout <= 0 {
		config.Timeout = defaultClassifierTimeout
	}
	return &providerClassifier{
		logger:  logger,
		client:  client,
		breaker: breaker.NewCircuitBreaker("classifier_"+config.Provider, breakerResetTimeout, breakerMaxFailures),
		config:  config,
	}
}

func (c *providerClassifier) Classify(ctx context.Context, text string) (*ClassifierResult, error) {
	if c.config.ApiKey == "" {
		return nil, &domain.ConfigurationError{Provider: c.config.Provider}
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	providerConfig := &providers.Config{
		Credentials:  providers.Credentials{ApiKey: c.config.ApiKey},
		Model:        c.config.Model,
		MaxTokens:    c.config.MaxTokens,
		Temperature:  c.config.Temperature,
		SystemPrompt: systemInstruction,
	}

	started := time.Now()
	var completion *providers.CompletionResponse
	err := c.breaker.Execute(func() error {
		var askErr error
		completion, askErr = c.client.Ask(ctx, providerConfig, fmt.Sprintf("Input:\n%q", text))
		return askErr
	})
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	prometheus.ClassifierLatency.WithLabelValues(c.config.Provider, outcome).
		Observe(float64(time.Since(started).Milliseconds()))
	if err != nil {
		c.logger.WithError(err).WithField("provider", c.config.Provider).Warn("classifier call failed")
		return nil, &domain.TransportError{Provider: c.config.Provider, Err: err}
	}

	result, err := decodeClassifierResponse(completion.Response)
	if err != nil {
		c.logger.WithError(err).WithField("provider", c.config.Provider).Warn("classifier response rejected")
		return nil, &domain.ParseError{Provider: c.config.Provider, Raw: completion.Response, Err: err}
	}

	c.logger.WithFields(logrus.Fields{
		"provider": c.config.Provider,
		"status":   result.Status,
		"score":    result.ToxicityScore,
		"tokens":   completion.Usage.TotalTokens,
	}).Debug("classifier verdict received")

	return result, nil
}

// rawClassifierResponse accepts both field spellings the remote contract
// allows: status|is_unsafe and toxicity_score|confidence.
type rawClassifierResponse struct {
	Status         string   `json:"status"`
	IsUnsafe       *bool    `json:"isUnsafe"`
	ToxicityScore  *float64 `json:"toxicity_score"`
	Confidence     *float64 `json:"confidence"`
	Languages      []string `json:"languages_detected"`
	OffensiveTerms []string `json:"offensive_terms_detected"`
	Reason         string   `json:"reason"`
}

// decodeClassifierResponse strips incidental markdown fences and performs a
// strict decode-or-fail: no downstream code ever sees a partially valid
// structure.
func decodeClassifierResponse(payload string) (*ClassifierResult, error) {
	cleaned := stripCodeFences(payload)

	var raw rawClassifierResponse
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("not a JSON object: %w", err)
	}

	if raw.Status == "" && raw.IsUnsafe == nil {
		return nil, fmt.Errorf("missing status field")
	}

	score := raw.ToxicityScore
	if score == nil {
		score = raw.Confidence
	}
	if score == nil {
		return nil, fmt.Errorf("missing toxicity score")
	}
	if *score < 0 || *score > 1 {
		return nil, fmt.Errorf("toxicity score %v out of range", *score)
	}

	status := strings.ToUpper(strings.TrimSpace(raw.Status))
	if status == "" {
		if *raw.IsUnsafe {
			status = "FLAGGED"
		} else {
			status = "APPROVED"
		}
	}

	return &ClassifierResult{
		Status:         status,
		ToxicityScore:  *score,
		Languages:      raw.Languages,
		OffensiveTerms: raw.OffensiveTerms,
		Reason:         raw.Reason,
	}, nil
}

func stripCodeFences(payload string) string {
	cleaned := strings.TrimSpace(payload)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
