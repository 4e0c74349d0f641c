package post

import "github.com/kforum/moderation/pkg/domain/moderation"

// Status is the canonical publication state of a post or comment.
type Status string

const (
	StatusPublished     Status = "PUBLISHED"
	StatusPendingReview Status = "PENDING_REVIEW"
	StatusRejected      Status = "REJECTED"
)

// LegacyStatus is the pre-state-field status representation. Rows written
// before Status existed carry only this field, so it is kept in sync on
// every transition.
type LegacyStatus string

const (
	LegacyApproved LegacyStatus = "approved"
	LegacyFlagged  LegacyStatus = "flagged"
)

// ReportThreshold is the number of distinct reporters that moves a
// published post back into review.
const ReportThreshold = 5

// Mirror derives the legacy status from the canonical one. The two are
// always written together in the same transaction.
func Mirror(status Status) LegacyStatus {
	if status == StatusPublished {
		return LegacyApproved
	}
	return LegacyFlagged
}

// StateForVerdict maps an initial moderation verdict onto the publication
// state assigned at creation. Rejection is reserved for the highest
// confidence band; everything else unsafe is held for human review.
func StateForVerdict(v moderation.Verdict) Status {
	if !v.IsUnsafe {
		return StatusPublished
	}
	if v.Source == moderation.SourceExternalClassifier && v.Confidence >= moderation.RejectThreshold {
		return StatusRejected
	}
	return StatusPendingReview
}

// ApplyVerdict sets both status representations from the initial verdict.
func (p *Post) ApplyVerdict(v moderation.Verdict) {
	p.Moderation = v
	p.Status = StateForVerdict(v)
	p.LegacyStatus = Mirror(p.Status)
}

// ShouldHoldOnReport decides the report-accumulation transition. It is a
// pure function of the current state and the counter; the repository is
// responsible for evaluating it inside the same transaction that
// incremented the counter.
func ShouldHoldOnReport(current Status, reportCount int) bool {
	return current == StatusPublished && reportCount >= ReportThreshold
}
