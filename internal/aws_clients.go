package internal

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/cockroachdb/errors"
)

// ErrMissingCredentials is returned when no usable AWS credentials are found.
var ErrMissingCredentials = errors.New("AWS credentials not found")

type stsAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// LoadAWSConfig resolves region, profile and credentials for every client.
func LoadAWSConfig(ctx context.Context, c AWSConfig) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if c.Region != "" {
		opts = append(opts, config.WithRegion(c.Region))
	}
	if c.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(c.Profile))
	}
	if c.MaxRetries > 0 {
		opts = append(opts, config.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(retry.NewStandard(), c.MaxRetries)
		}))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, errors.Wrap(err, "failed to load AWS configuration")
	}
	return cfg, nil
}

const credentialsHint = "set AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY, or configure a profile in ~/.aws/credentials"

// VerifyCredentials checks that credentials resolve before any scanning.
// Against a custom SQS endpoint (ElasticMQ, LocalStack) only the local
// credential chain is checked, since the emulator accepts dummy keys that
// STS would reject.
func VerifyCredentials(ctx context.Context, c AWSConfig, creds aws.CredentialsProvider, client stsAPI) error {
	if err := CheckLocalCredentials(ctx, creds); err != nil {
		return err
	}
	if c.SQSEndpoint != "" {
		return nil
	}
	return ValidateCredentials(ctx, client)
}

// CheckLocalCredentials resolves credentials from the configured chain
// without calling any AWS endpoint.
func CheckLocalCredentials(ctx context.Context, creds aws.CredentialsProvider) error {
	if creds == nil {
		return errors.Mark(errors.WithHint(errors.New("no credential provider configured"), credentialsHint), ErrMissingCredentials)
	}
	value, err := creds.Retrieve(ctx)
	if err != nil {
		return errors.Mark(errors.WithHint(errors.Wrap(err, "failed to retrieve AWS credentials"), credentialsHint), ErrMissingCredentials)
	}
	if !value.HasKeys() {
		return errors.Mark(errors.WithHint(errors.New("credential provider returned no keys"), credentialsHint), ErrMissingCredentials)
	}
	return nil
}

// ValidateCredentials fails fast with ErrMissingCredentials before any
// scanning when the caller identity cannot be established.
func ValidateCredentials(ctx context.Context, client stsAPI) error {
	resp, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return errors.Mark(
			errors.WithHint(errors.Wrap(err, "failed to call GetCallerIdentity API"), credentialsHint),
			ErrMissingCredentials)
	}
	if resp.Account == nil || resp.Arn == nil {
		return errors.Mark(errors.New("GetCallerIdentity returned no identity"), ErrMissingCredentials)
	}
	return nil
}

// NewSTSClient builds the client used for credential validation.
func NewSTSClient(cfg aws.Config) *sts.Client {
	return sts.NewFromConfig(cfg)
}

// NewSQSClient builds an SQS client, pointing it at endpoint when set (for
// local emulators such as ElasticMQ or LocalStack).
func NewSQSClient(cfg aws.Config, endpoint string) *sqs.Client {
	return sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

// NewCloudWatchClient builds the client used by CloudWatchEmitter.
func NewCloudWatchClient(cfg aws.Config) *cloudwatch.Client {
	return cloudwatch.NewFromConfig(cfg)
}

// OpenSnapshotStore opens the backend selected in c.
func OpenSnapshotStore(c StoreConfig, awsCfg aws.Config) (SnapshotStore, error) {
	switch c.Backend {
	case StoreBackendDynamoDB:
		return NewDynamoDBSnapshotStore(dynamodb.NewFromConfig(awsCfg), c.DynamoDBTable, c.PollInterval), nil
	case StoreBackendPebble:
		store, err := OpenPebbleSnapshotStore(PebbleStoreOptions{DataDir: c.PebbleDir})
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, errors.Newf("unknown store backend %q", c.Backend)
	}
}
