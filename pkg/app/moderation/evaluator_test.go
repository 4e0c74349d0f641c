package moderation_test

import (
	"context"
	"testing"

	"github.com/kforum/moderation/pkg/app/moderation"
	"github.com/kforum/moderation/pkg/app/moderation/mocks"
	domain "github.com/kforum/moderation/pkg/domain/moderation"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newEvaluator(classifier moderation.Classifier) moderation.Evaluator {
	logger := logrus.New()
	filter := moderation.NewTermFilter([]string{"bhenchod", "chutiya"})
	return moderation.NewEvaluator(logger, filter, classifier)
}

func TestEvaluator_LocalFilterShortCircuits(t *testing.T) {
	classifier := new(mocks.Classifier)
	evaluator := newEvaluator(classifier)

	verdict := evaluator.Evaluate(context.Background(), "you chutiya")

	assert.True(t, verdict.IsUnsafe)
	assert.Equal(t, 1.0, verdict.Confidence)
	assert.Equal(t, domain.SourceLocalFilter, verdict.Source)
	classifier.AssertNotCalled(t, "Classify")
}

func TestEvaluator_SafeBelowHoldThreshold(t *testing.T) {
	classifier := new(mocks.Classifier)
	classifier.On("Classify", mock.Anything, mock.Anything).
		Return(&moderation.ClassifierResult{Status: "APPROVED", ToxicityScore: 0.49, Languages: []string{"en"}}, nil)

	verdict := newEvaluator(classifier).Evaluate(context.Background(), "a civil post")

	assert.False(t, verdict.IsUnsafe)
	assert.Equal(t, 0.49, verdict.Confidence)
	assert.Equal(t, domain.SourceExternalClassifier, verdict.Source)
	assert.Equal(t, "en", verdict.Language)
	assert.Equal(t, domain.StringList{"approved"}, verdict.Categories)
}

func TestEvaluator_UnsafeAtHoldThreshold(t *testing.T) {
	classifier := new(mocks.Classifier)
	classifier.On("Classify", mock.Anything, mock.Anything).
		Return(&moderation.ClassifierResult{Status: "FLAGGED", ToxicityScore: domain.HoldThreshold}, nil)

	verdict := newEvaluator(classifier).Evaluate(context.Background(), "a borderline post")

	assert.True(t, verdict.IsUnsafe)
	assert.Equal(t, domain.HoldThreshold, verdict.Confidence)
	assert.Equal(t, domain.StringList{"flagged"}, verdict.Categories)
}

func TestEvaluator_ConfigurationErrorFailsOpen(t *testing.T) {
	classifier := new(mocks.Classifier)
	classifier.On("Classify", mock.Anything, mock.Anything).
		Return(nil, &domain.ConfigurationError{Provider: "gemini"})

	verdict := newEvaluator(classifier).Evaluate(context.Background(), "any text")

	assert.False(t, verdict.IsUnsafe)
	assert.Equal(t, 0.0, verdict.Confidence)
	assert.Equal(t, domain.SourceFailsafe, verdict.Source)
}

func TestEvaluator_TransportErrorFailsSafeToReview(t *testing.T) {
	classifier := new(mocks.Classifier)
	classifier.On("Classify", mock.Anything, mock.Anything).
		Return(nil, &domain.TransportError{Provider: "gemini"})

	verdict := newEvaluator(classifier).Evaluate(context.Background(), "any text")

	assert.True(t, verdict.IsUnsafe)
	assert.Equal(t, 0.0, verdict.Confidence)
	assert.Equal(t, domain.SourceFailsafe, verdict.Source)
	assert.Equal(t, "service unavailable", verdict.Reason)
}

func TestEvaluator_ParseErrorFailsSafeToReview(t *testing.T) {
	classifier := new(mocks.Classifier)
	classifier.On("Classify", mock.Anything, mock.Anything).
		Return(nil, &domain.ParseError{Provider: "gemini", Raw: "garbage"})

	verdict := newEvaluator(classifier).Evaluate(context.Background(), "any text")

	assert.True(t, verdict.IsUnsafe)
	assert.Equal(t, domain.SourceFailsafe, verdict.Source)
}

func TestEvaluator_TrimsInputBeforeFiltering(t *testing.T) {
	classifier := new(mocks.Classifier)
	evaluator := newEvaluator(classifier)

	verdict := evaluator.Evaluate(context.Background(), "   bhenchod   ")

	assert.True(t, verdict.IsUnsafe)
	assert.Equal(t, domain.SourceLocalFilter, verdict.Source)
}

func TestEvaluator_UnknownLanguageWhenNoneDetected(t *testing.T) {
	classifier := new(mocks.Classifier)
	classifier.On("Classify", mock.Anything, mock.Anything).
		Return(&moderation.ClassifierResult{Status: "APPROVED", ToxicityScore: 0.1}, nil)

	verdict := newEvaluator(classifier).Evaluate(context.Background(), "short")

	assert.Equal(t, domain.LanguageUnknown, verdict.Language)
}
