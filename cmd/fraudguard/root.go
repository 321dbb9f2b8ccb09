package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/valueobject"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/infrastructure/config"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/infrastructure/rulesconfig"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/pkg/observability"
)

// runtimeEnv is what every subcommand needs once flags and environment are resolved.
type runtimeEnv struct {
	cfg    *config.Config
	logger *slog.Logger
	rules  *rulesconfig.Rules
}

type rootFlags struct {
	rulesFile string
	policy    string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	env := &runtimeEnv{}

	cmd := &cobra.Command{
		Use:   "fraudguard",
		Short: "Weighted risk scoring for securities-market fraud signals.",
		Long: `fraudguard scores observed fraud indicators against a configurable rules
document and maps the result to a risk tier and response actions.

Configuration comes from the environment (RULES_FILE, INDICATOR_POLICY,
LOG_LEVEL, KAFKA_BROKERS, ...); flags override it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return env.load(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.rulesFile, "rules", "", "rules document (YAML or JSON); overrides RULES_FILE")
	cmd.PersistentFlags().StringVar(&flags.policy, "policy", "", "indicator policy, strict or lenient; overrides INDICATOR_POLICY")

	cmd.AddCommand(newScoreCmd(env), newCatalogCmd(env))
	return cmd
}

func (e *runtimeEnv) load(cmd *cobra.Command, flags rootFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("rules") {
		cfg.RulesFile = flags.rulesFile
	}
	if cmd.Flags().Changed("policy") {
		policy, err := valueobject.IndicatorPolicyFromString(flags.policy)
		if err != nil {
			return fmt.Errorf("--policy: %w", err)
		}
		cfg.IndicatorPolicy = policy
	}

	logger := observability.InitLogger(observability.LogConfig{
		Output: cmd.ErrOrStderr(),
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	rules, err := rulesconfig.Load(cfg.RulesFile)
	if err != nil {
		logger.Error("failed to load rules", slog.String("rules_file", cfg.RulesFile), slog.String("error", err.Error()))
		return fmt.Errorf("failed to load rules: %w", err)
	}

	summary := rules.Catalog.Summary(rules.RuleSet.Len())
	logger.Info("rules loaded",
		slog.String("rules_file", cfg.RulesFile),
		slog.String("environment", cfg.Environment),
		slog.String("indicator_policy", cfg.IndicatorPolicy.String()),
		slog.Any("categories", rules.RuleSet.Names()),
		slog.Int("fraud_types", summary.FraudTypes),
		slog.Int("detection_technologies", summary.DetectionTechnologies),
		slog.Int("regulatory_areas", summary.RegulatoryAreas),
	)

	e.cfg = cfg
	e.logger = logger
	e.rules = rules
	return nil
}
