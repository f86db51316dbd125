package internal

import "fmt"

const fetchFailedMessage = "Failed to retrieve queue attributes"

// Classify turns the outcome of resolving and reading one queue into its
// status. Any resolve error means the queue is not found; fetchErr is only
// consulted once the queue resolved.
func Classify(queueName, queueURL string, resolveErr error, metrics QueueMetrics, fetchErr error) QueueStatus {
	if resolveErr != nil || queueURL == "" {
		return QueueStatus{
			QueueName: queueName,
			State:     QueueStateNotFound,
			Message:   fmt.Sprintf("Queue '%s' not found", queueName),
		}
	}

	if fetchErr != nil {
		return QueueStatus{
			QueueName: queueName,
			State:     QueueStateError,
			Message:   fetchFailedMessage,
		}
	}

	m := metrics
	return QueueStatus{
		QueueName:    queueName,
		State:        QueueStateActive,
		QueueURL:     queueURL,
		QueueMetrics: &m,
	}
}
