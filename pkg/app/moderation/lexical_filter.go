package moderation

import (
	"strings"

	domain "github.com/kforum/moderation/pkg/domain/moderation"
)

// TermFilter is the deterministic local filter: a fixed, ordered term list
// matched by case-insensitive substring. It only ever fires positively; a
// miss means "no opinion", never "safe".
type TermFilter struct {
	terms []string
}

func NewTermFilter(terms []string) *TermFilter {
	if len(terms) == 0 {
		terms = DefaultTerms
	}
	lowered := make([]string, len(terms))
	for i, term := range terms {
		lowered[i] = strings.ToLower(term)
	}
	return &TermFilter{terms: lowered}
}

// Check scans the text against the list in order. The first hit wins and
// short-circuits the rest of the pipeline.
func (f *TermFilter) Check(text string) (domain.Verdict, bool) {
	lowered := strings.ToLower(text)
	for _, term := range f.terms {
		if strings.Contains(lowered, term) {
			return domain.Verdict{
				IsUnsafe:     true,
				Confidence:   1.0,
				Categories:   domain.StringList{"local_filter"},
				FlaggedTerms: domain.StringList{term},
				Language:     domain.LanguageUnknown,
				Source:       domain.SourceLocalFilter,
				Reason:       "matched local term list",
			}, true
		}
	}
	return domain.Verdict{}, false
}
