package moderation

import (
	"context"
	"strings"

	"github.com/kforum/moderation/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"

	domain "github.com/kforum/moderation/pkg/domain/moderation"
)

//go:generate mockery --name=Evaluator --dir=. --output=./mocks --filename=evaluator_mock.go --case=underscore --with-expecter

// Evaluator is the moderation decision engine. It always terminates with a
// verdict: every classifier failure mode is absorbed into a FAILSAFE verdict
// with explicit provenance, never surfaced as an error.
type Evaluator interface {
	Evaluate(ctx context.Context, text string) domain.Verdict
}

type evaluator struct {
	logger     *logrus.Logger
	filter     *TermFilter
	classifier Classifier
}

func NewEvaluator(logger *logrus.Logger, filter *TermFilter, classifier Classifier) Evaluator {
	return &evaluator{
		logger:     logger,
		filter:     filter,
		classifier: classifier,
	}
}

func (e *evaluator) Evaluate(ctx context.Context, text string) domain.Verdict {
	// Lower-casing happens inside the filter; the caller keeps the original
	// casing for storage.
	normalized := strings.TrimSpace(text)

	if verdict, matched := e.filter.Check(normalized); matched {
		e.logger.WithField("term", strings.Join(verdict.FlaggedTerms, ",")).
			Info("submission blocked by local filter")
		return e.record(verdict)
	}

	result, err := e.classifier.Classify(ctx, normalized)
	if err != nil {
		return e.record(e.failsafeVerdict(err))
	}

	// The classifier's decision band doubles as the verdict's category tag.
	categories := domain.StringList{}
	if result.Status != "" {
		categories = domain.StringList{strings.ToLower(result.Status)}
	}

	verdict := domain.Verdict{
		IsUnsafe:     result.ToxicityScore >= domain.HoldThreshold,
		Confidence:   result.ToxicityScore,
		Categories:   categories,
		FlaggedTerms: domain.StringList(result.OffensiveTerms),
		Language:     firstLanguage(result.Languages),
		Source:       domain.SourceExternalClassifier,
		Reason:       result.Reason,
	}
	return e.record(verdict)
}

// failsafeVerdict maps the classifier error taxonomy onto a default verdict:
// a missing credential fails open (moderation disabled beats a dead forum),
// transport and parse failures fail safe to human review.
func (e *evaluator) failsafeVerdict(err error) domain.Verdict {
	if domain.IsConfigurationError(err) {
		e.logger.WithError(err).Warn("no classifier credential, publishing without moderation")
		return domain.Verdict{
			IsUnsafe:     false,
			Confidence:   0,
			Categories:   domain.StringList{},
			FlaggedTerms: domain.StringList{},
			Language:     domain.LanguageUnknown,
			Source:       domain.SourceFailsafe,
			Reason:       "moderation skipped (no credential)",
		}
	}

	e.logger.WithError(err).Warn("classifier unavailable, holding for review")
	return domain.Verdict{
		IsUnsafe:     true,
		Confidence:   0,
		Categories:   domain.StringList{},
		FlaggedTerms: domain.StringList{},
		Language:     domain.LanguageUnknown,
		Source:       domain.SourceFailsafe,
		Reason:       "service unavailable",
	}
}

func (e *evaluator) record(verdict domain.Verdict) domain.Verdict {
	unsafeLabel := "safe"
	if verdict.IsUnsafe {
		unsafeLabel = "unsafe"
	}
	prometheus.ModerationVerdictTotal.WithLabelValues(string(verdict.Source), unsafeLabel).Inc()
	return verdict
}

func firstLanguage(languages []string) string {
	if len(languages) == 0 {
		return domain.LanguageUnknown
	}
	return languages[0]
}
