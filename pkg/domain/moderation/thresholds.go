package moderation

// Decision thresholds over the classifier's toxicity score. Named so they
// can be tuned without touching control flow.
const (
	// HoldThreshold is the lowest score treated as unsafe; anything below
	// publishes immediately.
	HoldThreshold = 0.50
	// RejectThreshold is the lowest score rejected outright instead of
	// being held for human review.
	RejectThreshold = 0.70
)
