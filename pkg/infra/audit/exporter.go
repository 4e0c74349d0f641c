package audit

import (
	"context"
	"time"
)

// Event is one moderation outcome, published for offline audit. Provenance
// (Source) is always present so consumers can tell a classifier decision
// from a failsafe default.
type Event struct {
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Status     string    `json:"status"`
	Source     string    `json:"source"`
	IsUnsafe   bool      `json:"is_unsafe"`
	Confidence float64   `json:"confidence"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

//go:generate mockery --name=Exporter --dir=. --output=./mocks --filename=exporter_mock.go --case=underscore --with-expecter

type Exporter interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type noopExporter struct{}

// NewNoopExporter is used when audit export is disabled in config.
func NewNoopExporter() Exporter {
	return &noopExporter{}
}

func (*noopExporter) Publish(ctx context.Context, event Event) error {
	return nil
}

func (*noopExporter) Close() error {
	return nil
}
