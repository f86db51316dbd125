package internal

import (
	"context"
	"sync"
)

// SnapshotStore is the shared store snapshots are published to. A Write
// replaces the value under key as one unit; readers never see part of it.
type SnapshotStore interface {
	Write(ctx context.Context, key string, snapshot FleetSnapshot) error
	Read(ctx context.Context, key string) (FleetSnapshot, bool, error)
	Subscribe(ctx context.Context, key string, onChange func(SnapshotEvent)) (Subscription, error)
	Close() error
}

// SnapshotEvent is delivered to subscribers. Exactly one of Snapshot and Err
// is meaningful.
type SnapshotEvent struct {
	Snapshot FleetSnapshot
	Err      error
}

// Subscription stops delivery of snapshot events. Cancel may be called any
// number of times.
type Subscription interface {
	Cancel()
}

// cancelFunc adapts a function to Subscription, running it at most once.
type cancelFunc struct {
	once sync.Once
	fn   func()
}

func newSubscription(fn func()) *cancelFunc {
	return &cancelFunc{fn: fn}
}

func (c *cancelFunc) Cancel() {
	c.once.Do(c.fn)
}
