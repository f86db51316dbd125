package internal

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/aws/smithy-go"
	"github.com/cockroachdb/errors"
)

// ErrQueueNotFound is returned when no queue matches a configured name.
var ErrQueueNotFound = errors.New("queue not found")

// listQueuesPageSize is the largest page ListQueues accepts. SQS only returns
// a NextToken when MaxResults is set.
const listQueuesPageSize int32 = 1000

// queueMetricAttributes is the fixed attribute set read for every queue.
var queueMetricAttributes = []types.QueueAttributeName{
	types.QueueAttributeNameApproximateNumberOfMessages,
	types.QueueAttributeNameApproximateNumberOfMessagesNotVisible,
	types.QueueAttributeNameApproximateNumberOfMessagesDelayed,
	types.QueueAttributeNameCreatedTimestamp,
	types.QueueAttributeNameLastModifiedTimestamp,
	types.QueueAttributeNameQueueArn,
}

type sqsAPI interface {
	ListQueues(ctx context.Context, params *sqs.ListQueuesInput, optFns ...func(*sqs.Options)) (*sqs.ListQueuesOutput, error)
	GetQueueAttributes(ctx context.Context, params *sqs.GetQueueAttributesInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueAttributesOutput, error)
}

// SqsRepository resolves queue names and reads queue attributes from SQS.
type SqsRepository interface {
	ResolveQueueURL(ctx context.Context, queueName string) (string, error)
	GetQueueMetrics(ctx context.Context, queueURL string) (QueueMetrics, error)
}

// SqsRepositoryImpl uses the AWS SDK to talk to SQS.
type SqsRepositoryImpl struct {
	sqsClient sqsAPI
}

// FetchError reports a failed attribute read. Code holds the SQS error code
// when the service returned one.
type FetchError struct {
	QueueURL string
	Code     string
	Err      error
}

func (e *FetchError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("failed to read attributes of %s (%s): %v", e.QueueURL, e.Code, e.Err)
	}
	return fmt.Sprintf("failed to read attributes of %s: %v", e.QueueURL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewSqsRepository constructs a repository instance.
func NewSqsRepository(c sqsAPI) SqsRepository {
	return &SqsRepositoryImpl{sqsClient: c}
}

// ResolveQueueURL finds the URL of the queue called queueName. When nothing
// matches, or the listing itself fails, the error is marked with
// ErrQueueNotFound.
func (s *SqsRepositoryImpl) ResolveQueueURL(ctx context.Context, queueName string) (string, error) {
	if strings.TrimSpace(queueName) == "" {
		return "", errors.Mark(errors.New("queue name is empty"), ErrQueueNotFound)
	}

	input := &sqs.ListQueuesInput{
		QueueNamePrefix: aws.String(queueName),
		MaxResults:      aws.Int32(listQueuesPageSize),
	}

	var candidates []string
	for {
		resp, err := s.sqsClient.ListQueues(ctx, input)
		if err != nil {
			slog.Warn("failed to list queues", slog.String("queue_name", queueName), slog.Any("error", err))
			return "", errors.Mark(errors.Wrap(err, "failed to call ListQueues API"), ErrQueueNotFound)
		}
		candidates = append(candidates, resp.QueueUrls...)

		if resp.NextToken == nil {
			break
		}
		input.NextToken = resp.NextToken
	}

	if url, ok := matchQueueURL(queueName, candidates); ok {
		return url, nil
	}

	return "", errors.Wrapf(ErrQueueNotFound, "no queue named %q", queueName)
}

// matchQueueURL prefers the URL whose last path segment is exactly the queue
// name, so "orders-dlq" wins over "orders-dlq-v2" when both are listed.
// Otherwise it takes the first segment containing the full name, which
// resolves "orders-dlq" to "orders-dlq.fifo".
func matchQueueURL(queueName string, urls []string) (string, bool) {
	for _, url := range urls {
		if queueNameFromURL(url) == queueName {
			return url, true
		}
	}
	for _, url := range urls {
		if strings.Contains(queueNameFromURL(url), queueName) {
			return url, true
		}
	}
	return "", false
}

func queueNameFromURL(queueURL string) string {
	if idx := strings.LastIndex(queueURL, "/"); idx >= 0 {
		return queueURL[idx+1:]
	}
	return queueURL
}

// GetQueueMetrics reads the metric attributes of a resolved queue.
func (s *SqsRepositoryImpl) GetQueueMetrics(ctx context.Context, queueURL string) (QueueMetrics, error) {
	resp, err := s.sqsClient.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl:       aws.String(queueURL),
		AttributeNames: queueMetricAttributes,
	})
	if err != nil {
		fetchErr := &FetchError{QueueURL: queueURL, Err: errors.Wrap(err, "failed to call GetQueueAttributes API")}
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			fetchErr.Code = apiErr.ErrorCode()
		}
		return QueueMetrics{}, fetchErr
	}

	return buildQueueMetrics(resp.Attributes), nil
}

// buildQueueMetrics normalises raw attributes. Missing counts become zero and
// missing timestamps become unavailable.
func buildQueueMetrics(attributes map[string]string) QueueMetrics {
	return QueueMetrics{
		MessagesVisible:    parseInt64(attributes[string(types.QueueAttributeNameApproximateNumberOfMessages)]),
		MessagesNotVisible: parseInt64(attributes[string(types.QueueAttributeNameApproximateNumberOfMessagesNotVisible)]),
		MessagesDelayed:    parseInt64(attributes[string(types.QueueAttributeNameApproximateNumberOfMessagesDelayed)]),
		CreatedAt:          NewTimestamp(parseUnixTime(attributes[string(types.QueueAttributeNameCreatedTimestamp)])),
		ModifiedAt:         NewTimestamp(parseUnixTime(attributes[string(types.QueueAttributeNameLastModifiedTimestamp)])),
		QueueArn:           attributes[string(types.QueueAttributeNameQueueArn)],
	}
}

// parseInt64 converts optional numeric attributes safely.
func parseInt64(raw string) int64 {
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		slog.Debug("failed to parse integer", slog.String("value", raw), slog.Any("error", err))
		return 0
	}
	if value < 0 {
		return 0
	}

	return value
}

// parseUnixTime converts seconds since epoch to time.Time. Zero means unset.
func parseUnixTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		slog.Debug("failed to parse timestamp", slog.String("value", raw), slog.Any("error", err))
		return time.Time{}
	}
	if value <= 0 {
		return time.Time{}
	}

	return time.Unix(value, 0).UTC()
}
