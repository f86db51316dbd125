package internal

import (
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cockroachdb/errors"
)

type dynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// snapshotItem is the DynamoDB representation of one stored snapshot.
type snapshotItem struct {
	Key        string `dynamodbav:"pk"`
	Payload    string `dynamodbav:"payload"`
	CapturedAt string `dynamodbav:"capturedAt"`
}

// DynamoDBSnapshotStore keeps each snapshot as a single DynamoDB item. A
// PutItem replaces the whole item, so readers see either the old or the new
// snapshot. Subscriptions poll with consistent reads.
type DynamoDBSnapshotStore struct {
	client       dynamoDBAPI
	table        string
	pollInterval time.Duration

	mu   sync.Mutex
	subs map[*pollSubscription]struct{}
}

type pollSubscription struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// NewDynamoDBSnapshotStore constructs a store backed by table.
func NewDynamoDBSnapshotStore(client dynamoDBAPI, table string, pollInterval time.Duration) *DynamoDBSnapshotStore {
	if pollInterval <= 0 {
		pollInterval = 5 * time.Second
	}
	return &DynamoDBSnapshotStore{
		client:       client,
		table:        table,
		pollInterval: pollInterval,
		subs:         make(map[*pollSubscription]struct{}),
	}
}

// Write replaces the item for key with the encoded snapshot.
func (s *DynamoDBSnapshotStore) Write(ctx context.Context, key string, snapshot FleetSnapshot) error {
	payload, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	item, err := attributevalue.MarshalMap(snapshotItem{
		Key:        key,
		Payload:    string(payload),
		CapturedAt: snapshot.CapturedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return errors.Wrap(err, "failed to marshal snapshot item")
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return errors.Wrap(err, "failed to call PutItem API")
	}
	return nil
}

// Read fetches the snapshot for key with a strongly consistent read.
func (s *DynamoDBSnapshotStore) Read(ctx context.Context, key string) (FleetSnapshot, bool, error) {
	item, ok, err := s.getItem(ctx, key)
	if err != nil || !ok {
		return FleetSnapshot{}, false, err
	}

	snapshot, err := decodeSnapshot([]byte(item.Payload))
	if err != nil {
		return FleetSnapshot{}, false, err
	}
	return snapshot, true, nil
}

func (s *DynamoDBSnapshotStore) getItem(ctx context.Context, key string) (snapshotItem, bool, error) {
	resp, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return snapshotItem{}, false, errors.Wrap(err, "failed to call GetItem API")
	}
	if len(resp.Item) == 0 {
		return snapshotItem{}, false, nil
	}

	var item snapshotItem
	if err := attributevalue.UnmarshalMap(resp.Item, &item); err != nil {
		return snapshotItem{}, false, errors.Wrap(err, "failed to unmarshal snapshot item")
	}
	return item, true, nil
}

// Subscribe polls key every poll interval, calling onChange with the first
// snapshot found and then whenever its capture time changes. Poll failures
// are delivered as error events and polling continues.
func (s *DynamoDBSnapshotStore) Subscribe(ctx context.Context, key string, onChange func(SnapshotEvent)) (Subscription, error) {
	pollCtx, cancel := context.WithCancel(ctx)
	sub := &pollSubscription{cancel: cancel, done: make(chan struct{})}

	s.mu.Lock()
	s.subs[sub] = struct{}{}
	s.mu.Unlock()

	go func() {
		defer close(sub.done)
		ticker := time.NewTicker(s.pollInterval)
		defer ticker.Stop()

		var lastSeen string
		for {
			item, ok, err := s.getItem(pollCtx, key)
			if pollCtx.Err() != nil {
				return
			}
			switch {
			case err != nil:
				onChange(SnapshotEvent{Err: err})
			case ok && item.CapturedAt != lastSeen:
				snapshot, err := decodeSnapshot([]byte(item.Payload))
				if err != nil {
					onChange(SnapshotEvent{Err: err})
					break
				}
				lastSeen = item.CapturedAt
				onChange(SnapshotEvent{Snapshot: snapshot})
			}

			select {
			case <-pollCtx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return newSubscription(func() {
		cancel()
		s.mu.Lock()
		delete(s.subs, sub)
		s.mu.Unlock()
	}), nil
}

// Close cancels all polling subscriptions.
func (s *DynamoDBSnapshotStore) Close() error {
	s.mu.Lock()
	subs := make([]*pollSubscription, 0, len(s.subs))
	for sub := range s.subs {
		subs = append(subs, sub)
	}
	s.subs = make(map[*pollSubscription]struct{})
	s.mu.Unlock()

	for _, sub := range subs {
		sub.cancel()
		<-sub.done
	}
	return nil
}
