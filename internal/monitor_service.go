package internal

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// CycleOptions controls one monitoring cycle.
type CycleOptions struct {
	// Publish writes the snapshot to the shared store.
	Publish bool
	// Source names what triggered the cycle (cli, server, lambda).
	Source string
	// Command is the invocation recorded in snapshot metadata.
	Command string
}

// CycleResult is everything one monitoring cycle produced.
type CycleResult struct {
	ScanID  string
	Queues  []QueueStatus
	Summary Summary
	// Ack is nil unless the snapshot was published.
	Ack *PublishAck
}

// MonitorService runs scan, aggregate and publish as one cycle.
type MonitorService interface {
	RunCycle(ctx context.Context, opts CycleOptions) (CycleResult, error)
}

// MonitorServiceImpl wires the scanner to the publisher for a fixed queue list.
type MonitorServiceImpl struct {
	scanner    Scanner
	publisher  Publisher
	emitter    MetricsEmitter
	printer    *ReportPrinter
	queueNames []string
	region     string
	newID      func() string
}

// NewMonitorService constructs a service. publisher may be nil when cycles
// never publish.
func NewMonitorService(scanner Scanner, publisher Publisher, queueNames []string, region string) *MonitorServiceImpl {
	return &MonitorServiceImpl{
		scanner:    scanner,
		publisher:  publisher,
		queueNames: append([]string(nil), queueNames...),
		region:     region,
		newID:      func() string { return uuid.NewString() },
	}
}

// WithEmitter sends every cycle's counters to e.
func (s *MonitorServiceImpl) WithEmitter(e MetricsEmitter) *MonitorServiceImpl {
	s.emitter = e
	return s
}

// WithPrinter writes per-queue lines and the report for every cycle.
func (s *MonitorServiceImpl) WithPrinter(p *ReportPrinter) *MonitorServiceImpl {
	s.printer = p
	return s
}

// RunCycle scans every configured queue and, if asked, publishes the
// snapshot. Individual queue failures never fail the cycle; a publish failure
// does. Metrics emission failures are only logged.
func (s *MonitorServiceImpl) RunCycle(ctx context.Context, opts CycleOptions) (CycleResult, error) {
	scanID := s.newID()
	ctx, span := startSpan(ctx, "dlq.cycle",
		attribute.String("dlq.scan_id", scanID),
		attribute.Bool("dlq.publish", opts.Publish),
	)
	defer span.End()

	if opts.Publish && s.publisher == nil {
		return CycleResult{}, errors.New("publishing requested but no snapshot store is configured")
	}

	slog.Info("scanning dead letter queues", slog.String("scan_id", scanID), slog.Int("queue_count", len(s.queueNames)))

	queues := s.scanner.Scan(ctx, s.queueNames)
	summary := Aggregate(queues)
	result := CycleResult{ScanID: scanID, Queues: queues, Summary: summary}

	if s.printer != nil {
		s.printer.PrintQueues(queues)
		s.printer.PrintReport(queues, summary)
	}

	// The scan outcome is still worth reporting when ctx expired mid-scan.
	reportCtx := context.WithoutCancel(ctx)

	if s.emitter != nil {
		if err := s.emitter.EmitSnapshot(reportCtx, queues, summary); err != nil {
			slog.Warn("failed to emit fleet metrics", slog.String("scan_id", scanID), slog.Any("error", err))
		}
	}

	if !opts.Publish {
		return result, nil
	}

	ack, err := s.publisher.Publish(reportCtx, queues, summary, s.metadata(scanID, opts))
	if err != nil {
		return result, err
	}
	result.Ack = &ack
	return result, nil
}

func (s *MonitorServiceImpl) metadata(scanID string, opts CycleOptions) map[string]string {
	metadata := map[string]string{
		"region":   s.region,
		"dlqNames": strings.Join(s.queueNames, ","),
		"scanId":   scanID,
	}
	if opts.Source != "" {
		metadata["source"] = opts.Source
	}
	if opts.Command != "" {
		metadata["command"] = opts.Command
	}
	return metadata
}
