package internal

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/cockroachdb/errors"
)

// maxMetricDataPerCall is the PutMetricData batch limit.
const maxMetricDataPerCall = 1000

type cloudWatchAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// MetricsEmitter records fleet counters in a metrics backend.
type MetricsEmitter interface {
	EmitSnapshot(ctx context.Context, queues []QueueStatus, summary Summary) error
}

// CloudWatchEmitter publishes summary counters and per-queue depth as custom
// CloudWatch metrics.
type CloudWatchEmitter struct {
	client    cloudWatchAPI
	namespace string
	dims      []types.Dimension
	now       func() time.Time
}

// NewCloudWatchEmitter constructs an emitter tagging every datum with region.
func NewCloudWatchEmitter(client cloudWatchAPI, namespace, region string) *CloudWatchEmitter {
	return &CloudWatchEmitter{
		client:    client,
		namespace: namespace,
		dims: []types.Dimension{
			{Name: aws.String("Region"), Value: aws.String(region)},
		},
		now: time.Now,
	}
}

// EmitSnapshot sends the seven summary counters plus DLQMessagesVisible for
// every active queue.
func (c *CloudWatchEmitter) EmitSnapshot(ctx context.Context, queues []QueueStatus, summary Summary) error {
	timestamp := aws.Time(c.now())

	data := []types.MetricDatum{
		c.count("TotalQueues", float64(summary.TotalQueues), timestamp),
		c.count("ActiveQueues", float64(summary.ActiveQueues), timestamp),
		c.count("ErrorQueues", float64(summary.ErrorQueues), timestamp),
		c.count("QueuesWithMessages", float64(summary.QueuesWithMessages), timestamp),
		c.count("TotalMessages", float64(summary.TotalMessages), timestamp),
		c.count("TotalNotVisible", float64(summary.TotalNotVisible), timestamp),
		c.count("TotalDelayed", float64(summary.TotalDelayed), timestamp),
	}

	for _, q := range queues {
		if !q.Active() {
			continue
		}
		datum := c.count("DLQMessagesVisible", float64(q.MessagesVisible), timestamp)
		datum.Dimensions = append(append([]types.Dimension{}, c.dims...), types.Dimension{
			Name:  aws.String("QueueName"),
			Value: aws.String(q.QueueName),
		})
		data = append(data, datum)
	}

	for i := 0; i < len(data); i += maxMetricDataPerCall {
		end := min(i+maxMetricDataPerCall, len(data))

		_, err := c.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
			Namespace:  aws.String(c.namespace),
			MetricData: data[i:end],
		})
		if err != nil {
			return errors.Wrap(err, "failed to call PutMetricData API")
		}
	}

	return nil
}

func (c *CloudWatchEmitter) count(name string, value float64, timestamp *time.Time) types.MetricDatum {
	return types.MetricDatum{
		MetricName: aws.String(name),
		Value:      aws.Float64(value),
		Unit:       types.StandardUnitCount,
		Timestamp:  timestamp,
		Dimensions: c.dims,
	}
}
