package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/application/usecase"
)

func newCatalogCmd(env *runtimeEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the loaded scoring categories, response actions and reference catalog as JSON.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp := usecase.NewDescribeCatalog(env.rules.RuleSet, env.rules.Catalog, env.rules.Actions).Execute()
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}
}
