package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/shigaichi/dlq-monitor/internal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	v       = viper.New()
	cfgFile string
	noColor bool
	cfg     internal.Config
)

var rootCmd = &cobra.Command{
	Use:   "dlq-monitor",
	Short: "Monitor AWS SQS dead letter queues",
	Long: `dlq-monitor checks a configured list of SQS dead letter queues, reports
their depth and health, and can publish the result as one snapshot to a
shared store (key dlq-monitoring/latest) for dashboards to subscribe to.

Environment:
  AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, AWS_REGION (default eu-west-1)
  AWS_SQS_ENDPOINT              custom SQS endpoint (ElasticMQ, LocalStack)
  DLQ_MONITOR_QUEUE_NAMES       comma separated queue names
  DLQ_MONITOR_<KEY>             any config key, dots replaced by underscores`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := internal.LoadConfig(v, cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded

		logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: internal.ParseLogLevel(cfg.LogLevel)}))
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./dlq-monitor.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	_ = v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newWatchCommand())
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		cancel()
		os.Exit(1)
	}
}

func invocation() string {
	return strings.Join(os.Args, " ")
}
