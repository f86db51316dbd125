package internal

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const cancelledMessage = "Scan cancelled before queue was checked"

// Scanner checks every configured queue and returns one status per name.
type Scanner interface {
	Scan(ctx context.Context, queueNames []string) []QueueStatus
}

// ScannerOptions tunes how a scan is run.
type ScannerOptions struct {
	// Concurrency bounds the number of queues checked at once. 1 scans sequentially.
	Concurrency int
	// FetchAttempts is how many times attribute reads are tried per queue.
	FetchAttempts int
	// RetryBackoff is multiplied by the attempt number between fetch attempts.
	RetryBackoff time.Duration
}

// ScannerImpl runs resolve, fetch and classify for each queue name.
type ScannerImpl struct {
	repo          SqsRepository
	concurrency   int
	fetchAttempts int
	retryBackoff  time.Duration
}

// NewScanner constructs a scanner with defaults applied to zero options.
func NewScanner(repo SqsRepository, opts ScannerOptions) *ScannerImpl {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	if opts.FetchAttempts <= 0 {
		opts.FetchAttempts = 1
	}
	if opts.RetryBackoff < 0 {
		opts.RetryBackoff = 0
	}

	return &ScannerImpl{
		repo:          repo,
		concurrency:   opts.Concurrency,
		fetchAttempts: opts.FetchAttempts,
		retryBackoff:  opts.RetryBackoff,
	}
}

// Scan checks queueNames with at most Concurrency queues in flight. The result
// has the same length and order as queueNames whatever fails. Once ctx is
// done, queues not yet started are reported as ERROR.
func (s *ScannerImpl) Scan(ctx context.Context, queueNames []string) []QueueStatus {
	ctx, span := startSpan(ctx, "dlq.scan", attribute.Int("dlq.queue_count", len(queueNames)))
	defer span.End()

	results := make([]QueueStatus, len(queueNames))
	workers := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup

	for i, name := range queueNames {
		if ctx.Err() != nil {
			results[i] = cancelledStatus(name)
			continue
		}

		select {
		case workers <- struct{}{}:
		case <-ctx.Done():
			results[i] = cancelledStatus(name)
			continue
		}
		if ctx.Err() != nil {
			<-workers
			results[i] = cancelledStatus(name)
			continue
		}

		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			defer func() { <-workers }()
			results[i] = s.scanQueue(ctx, name)
		}(i, name)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		span.SetStatus(codes.Error, "scan cancelled")
		slog.Warn("scan cancelled; unchecked queues reported as errors", slog.Any("error", err))
	}

	return results
}

func (s *ScannerImpl) scanQueue(ctx context.Context, queueName string) QueueStatus {
	ctx, span := startSpan(ctx, "dlq.scan_queue", attribute.String("dlq.queue_name", queueName))
	defer span.End()

	queueURL, err := s.repo.ResolveQueueURL(ctx, queueName)
	if err != nil {
		if ctx.Err() != nil {
			return cancelledStatus(queueName)
		}
		slog.Info("queue not found", slog.String("queue_name", queueName), slog.Any("error", err))
		status := Classify(queueName, "", err, QueueMetrics{}, nil)
		span.SetAttributes(attribute.String("dlq.state", string(status.State)))
		return status
	}

	metrics, err := s.fetchWithRetry(ctx, queueURL)
	if err != nil {
		if ctx.Err() != nil {
			return cancelledStatus(queueName)
		}
		slog.Warn("failed to retrieve queue attributes",
			slog.String("queue_name", queueName),
			slog.String("queue_url", queueURL),
			slog.Any("error", err),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, fetchFailedMessage)
	}

	status := Classify(queueName, queueURL, nil, metrics, err)
	span.SetAttributes(attribute.String("dlq.state", string(status.State)))
	return status
}

func (s *ScannerImpl) fetchWithRetry(ctx context.Context, queueURL string) (QueueMetrics, error) {
	var (
		metrics QueueMetrics
		err     error
	)
	for attempt := 1; attempt <= s.fetchAttempts; attempt++ {
		metrics, err = s.repo.GetQueueMetrics(ctx, queueURL)
		if err == nil || attempt == s.fetchAttempts {
			break
		}

		slog.Debug("retrying queue attribute read",
			slog.String("queue_url", queueURL),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)
		timer := time.NewTimer(s.retryBackoff * time.Duration(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return QueueMetrics{}, err
		case <-timer.C:
		}
	}
	return metrics, err
}

func cancelledStatus(queueName string) QueueStatus {
	return QueueStatus{
		QueueName: queueName,
		State:     QueueStateError,
		Message:   cancelledMessage,
	}
}
