package internal

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
)

// PebbleStoreOptions configures the local snapshot store.
type PebbleStoreOptions struct {
	// DataDir is the path to the Pebble database directory.
	DataDir string
	// SyncWrites forces a WAL fsync on every write. Otherwise Pebble
	// group-commits syncs within a few milliseconds.
	SyncWrites bool
	// PebbleOptions allows advanced tuning of Pebble. If nil, defaults are used.
	PebbleOptions *pebble.Options
}

// PebbleSnapshotStore keeps snapshots in an embedded Pebble database and
// notifies subscribers in-process after every write.
type PebbleSnapshotStore struct {
	db        *pebble.DB
	writeSync bool

	wg          sync.WaitGroup
	mu          sync.Mutex
	closed      bool
	nextID      uint64
	subscribers map[uint64]*pebbleSubscriber
}

type pebbleSubscriber struct {
	key    string
	notify chan struct{}
	done   chan struct{}
}

// OpenPebbleSnapshotStore creates or opens the database in opts.DataDir.
func OpenPebbleSnapshotStore(opts PebbleStoreOptions) (*PebbleSnapshotStore, error) {
	if opts.DataDir == "" {
		return nil, errors.New("pebble: DataDir is required")
	}

	po := opts.PebbleOptions
	if po == nil {
		po = &pebble.Options{}
	}
	if !opts.SyncWrites {
		po.WALMinSyncInterval = func() time.Duration { return 5 * time.Millisecond }
	}

	db, err := pebble.Open(opts.DataDir, po)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open pebble database at %s", opts.DataDir)
	}

	return &PebbleSnapshotStore{
		db:          db,
		writeSync:   opts.SyncWrites,
		subscribers: make(map[uint64]*pebbleSubscriber),
	}, nil
}

// Write replaces the snapshot under key with a single committed batch.
func (s *PebbleSnapshotStore) Write(ctx context.Context, key string, snapshot FleetSnapshot) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "write aborted")
	}
	value, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	b := s.db.NewBatch()
	defer b.Close()
	if err := b.Set([]byte(key), value, nil); err != nil {
		return errors.Wrapf(err, "failed to stage snapshot %s", key)
	}

	syncMode := pebble.NoSync
	if s.writeSync {
		syncMode = pebble.Sync
	}
	if err := b.Commit(syncMode); err != nil {
		return errors.Wrapf(err, "failed to commit snapshot %s", key)
	}

	s.notify(key)
	return nil
}

// Read returns the snapshot under key. The boolean is false when no snapshot
// has been written yet.
func (s *PebbleSnapshotStore) Read(ctx context.Context, key string) (FleetSnapshot, bool, error) {
	if err := ctx.Err(); err != nil {
		return FleetSnapshot{}, false, errors.Wrap(err, "read aborted")
	}

	value, closer, err := s.db.Get([]byte(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return FleetSnapshot{}, false, nil
		}
		return FleetSnapshot{}, false, errors.Wrapf(err, "failed to read snapshot %s", key)
	}
	buf := append([]byte(nil), value...)
	if err := closer.Close(); err != nil {
		slog.Debug("failed to release pebble value", slog.Any("error", err))
	}

	snapshot, err := decodeSnapshot(buf)
	if err != nil {
		return FleetSnapshot{}, false, err
	}
	return snapshot, true, nil
}

// Subscribe calls onChange with the current snapshot, if any, and then after
// every write to key. Bursts of writes are coalesced; the latest value is
// always delivered. Delivery stops when ctx is done or the subscription is
// cancelled.
func (s *PebbleSnapshotStore) Subscribe(ctx context.Context, key string, onChange func(SnapshotEvent)) (Subscription, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, errors.New("pebble snapshot store is closed")
	}
	id := s.nextID
	s.nextID++
	sub := &pebbleSubscriber{
		key:    key,
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	// Queue the initial read before the subscriber is visible to Write, so
	// the buffer is guaranteed to have room.
	sub.notify <- struct{}{}
	s.subscribers[id] = sub
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		for {
			select {
			case <-ctx.Done():
				s.unsubscribe(id)
				return
			case <-sub.done:
				return
			case <-sub.notify:
				select {
				case <-sub.done:
					return
				default:
				}
				snapshot, ok, err := s.Read(ctx, key)
				if ctx.Err() != nil {
					s.unsubscribe(id)
					return
				}
				switch {
				case err != nil:
					onChange(SnapshotEvent{Err: err})
				case ok:
					onChange(SnapshotEvent{Snapshot: snapshot})
				}
			}
		}
	}()

	return newSubscription(func() { s.unsubscribe(id) }), nil
}

func (s *PebbleSnapshotStore) notify(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.subscribers {
		if sub.key != key {
			continue
		}
		select {
		case sub.notify <- struct{}{}:
		default:
		}
	}
}

func (s *PebbleSnapshotStore) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sub, ok := s.subscribers[id]; ok {
		close(sub.done)
		delete(s.subscribers, id)
	}
}

// Close stops all subscriptions and closes the database.
func (s *PebbleSnapshotStore) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	for id, sub := range s.subscribers {
		close(sub.done)
		delete(s.subscribers, id)
	}
	s.mu.Unlock()
	s.wg.Wait()

	if err := s.db.Close(); err != nil {
		return errors.Wrap(err, "failed to close pebble database")
	}
	return nil
}
