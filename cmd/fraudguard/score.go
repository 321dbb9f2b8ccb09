package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/application/usecase"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/port"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/service"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/infrastructure/messaging"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/infrastructure/metrics"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/presentation/batch"
	pkgkafka "github.com/meghana-anupoju/trustguard-securities-fraudguard/pkg/kafka"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/pkg/observability"
)

func newScoreCmd(env *runtimeEnv) *cobra.Command {
	var (
		inputFile string
		workers   int
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score newline-delimited JSON requests from INPUT_FILE or stdin.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("input") {
				env.cfg.InputFile = inputFile
			}
			if cmd.Flags().Changed("workers") {
				if workers < 1 {
					return fmt.Errorf("--workers must be positive, got %d", workers)
				}
				env.cfg.Workers = workers
			}
			return runScore(cmd, env)
		},
	}

	cmd.Flags().StringVar(&inputFile, "input", "", "request file; overrides INPUT_FILE (default stdin)")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent evaluations; overrides WORKERS")
	return cmd
}

func runScore(cmd *cobra.Command, env *runtimeEnv) error {
	ctx := cmd.Context()
	cfg, logger := env.cfg, env.logger

	reg, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName:       "fraudguard",
		RuntimeCollectors: cfg.MetricsTextfile != "",
	})
	if err != nil {
		return fmt.Errorf("failed to init metrics: %w", err)
	}
	recorder, err := metrics.NewPrometheusRecorder(reg)
	if err != nil {
		return err
	}

	// Wire infrastructure adapters.
	var publisher port.EventPublisher = messaging.NewLogPublisher(logger)
	if kc := cfg.Kafka(); kc.Enabled() {
		producer := pkgkafka.NewProducer(kc)
		defer func() {
			if err := producer.Close(); err != nil {
				logger.Error("kafka producer close error", slog.String("error", err.Error()))
			}
		}()
		publisher = messaging.NewKafkaPublisher(producer, cfg.AlertTopic, logger)
		logger.Info("publishing alerts to kafka",
			slog.Any("brokers", kc.Brokers),
			slog.String("topic", cfg.AlertTopic),
		)
	}

	// Wire domain services and use cases.
	scorer := service.NewRiskScorer(env.rules.Actions, cfg.IndicatorPolicy)
	evaluate := usecase.NewEvaluateRisk(env.rules.RuleSet, scorer, publisher, recorder, cfg.Alerts, logger)

	in := cmd.InOrStdin()
	if cfg.InputFile != "" {
		f, err := os.Open(cfg.InputFile)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	stats, runErr := batch.NewRunner(evaluate, cfg.Workers, logger).Run(ctx, in, cmd.OutOrStdout())

	logger.Info("batch complete",
		slog.Int64("processed", stats.Processed),
		slog.Int64("succeeded", stats.Succeeded),
		slog.Int64("failed", stats.Failed),
	)

	if cfg.MetricsTextfile != "" {
		if err := observability.WriteTextfile(cfg.MetricsTextfile, reg); err != nil {
			logger.Error("failed to write metrics", slog.String("error", err.Error()))
		}
	}

	if runErr != nil {
		return fmt.Errorf("batch aborted: %w", runErr)
	}
	return nil
}
