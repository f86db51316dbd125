package internal

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ErrPublish marks errors raised while writing a snapshot to the store.
var ErrPublish = errors.New("snapshot publish failed")

// PublishAck confirms a snapshot was written.
type PublishAck struct {
	Key        string
	CapturedAt time.Time
}

// Publisher writes fleet snapshots to the shared store.
type Publisher interface {
	Publish(ctx context.Context, queues []QueueStatus, summary Summary, metadata map[string]string) (PublishAck, error)
}

// PublisherImpl builds snapshots and writes them under SnapshotKey.
type PublisherImpl struct {
	store SnapshotStore
	now   func() time.Time
}

// NewPublisher constructs a publisher stamping snapshots with the wall clock.
func NewPublisher(store SnapshotStore) *PublisherImpl {
	return &PublisherImpl{store: store, now: time.Now}
}

// Publish replaces the stored snapshot in one write. Failures are returned
// marked with ErrPublish and are not retried.
func (p *PublisherImpl) Publish(ctx context.Context, queues []QueueStatus, summary Summary, metadata map[string]string) (PublishAck, error) {
	ctx, span := startSpan(ctx, "dlq.publish", attribute.String("dlq.snapshot_key", SnapshotKey))
	defer span.End()

	snapshot := FleetSnapshot{
		CapturedAt: p.now().UTC(),
		Queues:     queues,
		Summary:    summary,
		Metadata:   copyMetadata(metadata),
	}

	if err := p.store.Write(ctx, SnapshotKey, snapshot); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "publish failed")
		return PublishAck{}, errors.Mark(errors.Wrapf(err, "failed to publish snapshot to %s", SnapshotKey), ErrPublish)
	}

	slog.Info("snapshot published",
		slog.String("key", SnapshotKey),
		slog.Time("captured_at", snapshot.CapturedAt),
		slog.Int("total_queues", summary.TotalQueues),
	)
	return PublishAck{Key: SnapshotKey, CapturedAt: snapshot.CapturedAt}, nil
}

func copyMetadata(metadata map[string]string) map[string]string {
	if len(metadata) == 0 {
		return nil
	}
	out := make(map[string]string, len(metadata))
	for k, v := range metadata {
		out[k] = v
	}
	return out
}
