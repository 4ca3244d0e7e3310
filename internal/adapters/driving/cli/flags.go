package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/burrowdb/internal/core/domain"
)

// addSettingsFlags registers the benchmark parameter flags on cmd.
func addSettingsFlags(cmd *cobra.Command) {
	defaults := domain.DefaultBenchmarkSettings()
	cmd.Flags().String("sizes", domain.FormatSizes(defaults.Sizes), "comma separated dataset sizes")
	cmd.Flags().IntP("queries", "q", defaults.Queries, "queries per engine per size")
	cmd.Flags().Uint64("seed", defaults.Seed, "generator seed")
	cmd.Flags().Bool("retract-stale", defaults.RetractStale, "remove stale index entries on re-insert")
}

// applySettingsFlags copies explicitly set flags onto settings.
func applySettingsFlags(cmd *cobra.Command, settings *domain.BenchmarkSettings) error {
	flags := cmd.Flags()
	if flags.Changed("sizes") {
		raw, _ := flags.GetString("sizes")
		sizes, err := domain.ParseSizes(raw)
		if err != nil {
			return err
		}
		settings.Sizes = sizes
	}
	if flags.Changed("queries") {
		settings.Queries, _ = flags.GetInt("queries")
	}
	if flags.Changed("seed") {
		settings.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("retract-stale") {
		settings.RetractStale, _ = flags.GetBool("retract-stale")
	}
	return nil
}
