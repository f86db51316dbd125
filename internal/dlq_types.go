package internal

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
)

// SnapshotKey is the store key every published snapshot replaces.
const SnapshotKey = "dlq-monitoring/latest"

// QueueState is the health state of one scanned queue.
type QueueState string

const (
	// QueueStateActive means the queue was resolved and its attributes were read.
	QueueStateActive QueueState = "ACTIVE"
	// QueueStateNotFound means no queue matched the configured name.
	QueueStateNotFound QueueState = "NOT_FOUND"
	// QueueStateError means the queue was resolved but its attributes could not be read.
	QueueStateError QueueState = "ERROR"
)

// unavailableTimestamp is how a missing upstream timestamp is serialised.
const unavailableTimestamp = "N/A"

// Timestamp is an optional UTC instant. The zero value means the upstream
// service did not report one.
type Timestamp struct {
	time.Time
}

// NewTimestamp returns t in UTC, or the unavailable marker for the zero time.
func NewTimestamp(t time.Time) Timestamp {
	if t.IsZero() {
		return Timestamp{}
	}
	return Timestamp{Time: t.UTC()}
}

// Available reports whether the timestamp holds a real instant.
func (t Timestamp) Available() bool {
	return !t.IsZero()
}

func (t Timestamp) String() string {
	if !t.Available() {
		return unavailableTimestamp
	}
	return t.Time.Format(time.RFC3339)
}

// MarshalJSON encodes the instant as RFC 3339, or "N/A" when unavailable.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts RFC 3339 strings and the "N/A" marker.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "timestamp must be a JSON string")
	}
	if raw == "" || raw == unavailableTimestamp {
		*t = Timestamp{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return errors.Wrapf(err, "invalid timestamp %q", raw)
	}
	*t = NewTimestamp(parsed)
	return nil
}

// QueueMetrics holds the attributes of an active queue. Counts the upstream
// service omitted are zero.
type QueueMetrics struct {
	MessagesVisible    int64     `json:"messagesVisible"`
	MessagesNotVisible int64     `json:"messagesNotVisible"`
	MessagesDelayed    int64     `json:"messagesDelayed"`
	CreatedAt          Timestamp `json:"createdAt"`
	ModifiedAt         Timestamp `json:"modifiedAt"`
	QueueArn           string    `json:"queueArn"`
}

// QueueStatus is the outcome of scanning one configured queue name.
// QueueMetrics is non-nil exactly when State is QueueStateActive.
type QueueStatus struct {
	QueueName string     `json:"queueName"`
	State     QueueState `json:"state"`
	QueueURL  string     `json:"queueUrl,omitempty"`
	Message   string     `json:"message,omitempty"`
	*QueueMetrics
}

// Active reports whether the queue was read successfully.
func (s QueueStatus) Active() bool {
	return s.State == QueueStateActive && s.QueueMetrics != nil
}

// HasMessages reports whether an active queue holds visible messages.
func (s QueueStatus) HasMessages() bool {
	return s.Active() && s.MessagesVisible > 0
}

// Summary holds fleet-wide counters derived from a list of queue statuses.
type Summary struct {
	TotalQueues        int   `json:"totalQueues"`
	ActiveQueues       int   `json:"activeQueues"`
	ErrorQueues        int   `json:"errorQueues"`
	QueuesWithMessages int   `json:"queuesWithMessages"`
	TotalMessages      int64 `json:"totalMessages"`
	TotalNotVisible    int64 `json:"totalNotVisible"`
	TotalDelayed       int64 `json:"totalDelayed"`
}

// FleetSnapshot is the single artifact published after every scan cycle.
type FleetSnapshot struct {
	CapturedAt time.Time         `json:"capturedAt"`
	Queues     []QueueStatus     `json:"queues"`
	Summary    Summary           `json:"summary"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// FilterWithMessages returns the active queues that hold visible messages,
// in snapshot order.
func (f FleetSnapshot) FilterWithMessages() []QueueStatus {
	queues := make([]QueueStatus, 0, len(f.Queues))
	for _, q := range f.Queues {
		if q.HasMessages() {
			queues = append(queues, q)
		}
	}
	return queues
}

// encodeSnapshot serialises a snapshot as the single value stored under a key.
func encodeSnapshot(snapshot FleetSnapshot) ([]byte, error) {
	b, err := json.Marshal(snapshot)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode snapshot")
	}
	return b, nil
}

func decodeSnapshot(data []byte) (FleetSnapshot, error) {
	var snapshot FleetSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return FleetSnapshot{}, errors.Wrap(err, "failed to decode snapshot")
	}
	return snapshot, nil
}
