package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/valueobject"
	pkgkafka "github.com/meghana-anupoju/trustguard-securities-fraudguard/pkg/kafka"
)

// Config holds all configuration for the fraudguard batch scorer.
type Config struct {
	// RulesFile is a YAML or JSON rules document; empty means the embedded default.
	RulesFile string
	// InputFile holds newline-delimited JSON requests; empty means stdin.
	InputFile string
	// MetricsTextfile, when set, receives a Prometheus text dump at exit.
	MetricsTextfile string

	AlertTopic  string
	Environment string
	LogLevel    string
	LogFormat   string

	KafkaBrokers []string

	KafkaWriteTimeout time.Duration

	// Workers bounds concurrent evaluations in a batch run.
	Workers int

	IndicatorPolicy valueobject.IndicatorPolicy
	Alerts          valueobject.AlertSettings
}

// Load reads configuration from environment variables with sensible
// defaults. Empty variables count as unset.
func Load() (*Config, error) {
	policy, err := valueobject.IndicatorPolicyFromString(getEnv("INDICATOR_POLICY", "strict"))
	if err != nil {
		return nil, fmt.Errorf("INDICATOR_POLICY: %w", err)
	}
	high, err := getEnvBool("ALERT_HIGH_RISK", true)
	if err != nil {
		return nil, err
	}
	medium, err := getEnvBool("ALERT_MEDIUM_RISK", true)
	if err != nil {
		return nil, err
	}
	workers, err := strconv.Atoi(getEnv("WORKERS", strconv.Itoa(runtime.NumCPU())))
	if err != nil || workers < 1 {
		return nil, fmt.Errorf("WORKERS: must be a positive integer, got %q", os.Getenv("WORKERS"))
	}
	timeout, err := time.ParseDuration(getEnv("KAFKA_WRITE_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("KAFKA_WRITE_TIMEOUT: %w", err)
	}

	return &Config{
		RulesFile:         getEnv("RULES_FILE", ""),
		InputFile:         getEnv("INPUT_FILE", ""),
		MetricsTextfile:   getEnv("METRICS_TEXTFILE", ""),
		AlertTopic:        getEnv("ALERT_TOPIC", "fraudguard.alerts"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
		KafkaBrokers:      splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaWriteTimeout: timeout,
		Workers:           workers,
		IndicatorPolicy:   policy,
		Alerts:            valueobject.AlertSettings{HighRisk: high, MediumRisk: medium},
	}, nil
}

// Kafka returns the producer configuration.
func (c *Config) Kafka() pkgkafka.Config {
	return pkgkafka.Config{
		ClientID:     "fraudguard-" + c.Environment,
		Brokers:      c.KafkaBrokers,
		WriteTimeout: c.KafkaWriteTimeout,
	}
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
