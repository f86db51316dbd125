package internal

import (
	"log/slog"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Store backends.
const (
	StoreBackendPebble   = "pebble"
	StoreBackendDynamoDB = "dynamodb"
)

// Config is the full runtime configuration.
type Config struct {
	QueueNames []string      `mapstructure:"queue_names"`
	AWS        AWSConfig     `mapstructure:"aws"`
	Scan       ScanConfig    `mapstructure:"scan"`
	Store      StoreConfig   `mapstructure:"store"`
	Metrics    MetricsConfig `mapstructure:"metrics"`
	Server     ServerConfig  `mapstructure:"server"`
	Tracing    TracingConfig `mapstructure:"tracing"`
	LogLevel   string        `mapstructure:"log_level"`
}

// AWSConfig holds connection settings shared by every AWS client.
type AWSConfig struct {
	Region      string `mapstructure:"region"`
	Profile     string `mapstructure:"profile"`
	SQSEndpoint string `mapstructure:"sqs_endpoint"`
	MaxRetries  int    `mapstructure:"max_retries"`
}

// ScanConfig tunes the fleet scanner.
type ScanConfig struct {
	Concurrency   int           `mapstructure:"concurrency"`
	Timeout       time.Duration `mapstructure:"timeout"`
	FetchAttempts int           `mapstructure:"fetch_attempts"`
	RetryBackoff  time.Duration `mapstructure:"retry_backoff"`
}

// StoreConfig selects and configures the snapshot store.
type StoreConfig struct {
	Backend       string        `mapstructure:"backend"`
	PebbleDir     string        `mapstructure:"pebble_dir"`
	DynamoDBTable string        `mapstructure:"dynamodb_table"`
	PollInterval  time.Duration `mapstructure:"poll_interval"`
}

// MetricsConfig enables CloudWatch metrics when Namespace is set.
type MetricsConfig struct {
	CloudWatchNamespace string `mapstructure:"cloudwatch_namespace"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr     string        `mapstructure:"addr"`
	Interval time.Duration `mapstructure:"interval"`
}

// TracingConfig selects the OpenTelemetry exporter.
type TracingConfig struct {
	Exporter string `mapstructure:"exporter"`
	Endpoint string `mapstructure:"endpoint"`
}

// SetConfigDefaults registers default values on v.
func SetConfigDefaults(v *viper.Viper) {
	// Keys without a meaningful default are still registered so that
	// Unmarshal picks them up from the environment.
	v.SetDefault("queue_names", []string{})
	v.SetDefault("aws.profile", "")
	v.SetDefault("aws.sqs_endpoint", "")
	v.SetDefault("store.dynamodb_table", "")
	v.SetDefault("metrics.cloudwatch_namespace", "")
	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("aws.region", "eu-west-1")
	v.SetDefault("aws.max_retries", 3)
	v.SetDefault("scan.concurrency", 4)
	v.SetDefault("scan.timeout", 2*time.Minute)
	v.SetDefault("scan.fetch_attempts", 1)
	v.SetDefault("scan.retry_backoff", 500*time.Millisecond)
	v.SetDefault("store.backend", StoreBackendPebble)
	v.SetDefault("store.pebble_dir", "./data/snapshots")
	v.SetDefault("store.poll_interval", 5*time.Second)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.interval", 5*time.Minute)
	v.SetDefault("log_level", "info")
	v.SetDefault("tracing.exporter", "none")
}

// LoadConfig reads configFile (or dlq-monitor.yaml in the working directory
// when configFile is empty) and environment overrides into a validated Config.
// Environment variables use the DLQ_MONITOR_ prefix; AWS_REGION and
// AWS_SQS_ENDPOINT are honoured as well.
func LoadConfig(v *viper.Viper, configFile string) (Config, error) {
	SetConfigDefaults(v)

	v.SetEnvPrefix("DLQ_MONITOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("aws.region", "DLQ_MONITOR_AWS_REGION", "AWS_REGION"); err != nil {
		return Config{}, errors.Wrap(err, "failed to bind aws.region")
	}
	if err := v.BindEnv("aws.sqs_endpoint", "DLQ_MONITOR_AWS_SQS_ENDPOINT", "AWS_SQS_ENDPOINT"); err != nil {
		return Config{}, errors.Wrap(err, "failed to bind aws.sqs_endpoint")
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
	} else {
		v.SetConfigName("dlq-monitor")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, errors.Wrap(err, "failed to read config file")
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode configuration")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate normalises the queue list and rejects unusable settings.
func (c *Config) Validate() error {
	names := make([]string, 0, len(c.QueueNames))
	for _, name := range c.QueueNames {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return errors.New("no queue names configured: set queue_names in the config file or DLQ_MONITOR_QUEUE_NAMES")
	}
	c.QueueNames = names

	if c.Scan.Concurrency < 1 {
		return errors.Newf("scan.concurrency must be at least 1, got %d", c.Scan.Concurrency)
	}
	if c.Scan.FetchAttempts < 1 {
		return errors.Newf("scan.fetch_attempts must be at least 1, got %d", c.Scan.FetchAttempts)
	}

	switch c.Store.Backend {
	case StoreBackendPebble:
		if c.Store.PebbleDir == "" {
			return errors.New("store.pebble_dir is required for the pebble backend")
		}
	case StoreBackendDynamoDB:
		if c.Store.DynamoDBTable == "" {
			return errors.New("store.dynamodb_table is required for the dynamodb backend")
		}
	default:
		return errors.Newf("unknown store.backend %q (want %s or %s)", c.Store.Backend, StoreBackendPebble, StoreBackendDynamoDB)
	}

	return nil
}

// ParseLogLevel maps a config level name to a slog level, defaulting to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
