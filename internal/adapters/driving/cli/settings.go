package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/burrowdb/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage benchmark defaults",
	Long: `View and persist the parameters "burrow bench" uses when no flags
are given.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Persist benchmark defaults",
	Long: `Persist one or more benchmark defaults. Only the flags given are
changed, e.g.

  burrow settings set --sizes 100,1000 --queries 500`,
	Args: cobra.NoArgs,
	RunE: runSettingsSet,
}

func init() {
	addSettingsFlags(settingsSetCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Println("[Benchmark]")
	cmd.Printf("  Sizes: %s\n", domain.FormatSizes(settings.Sizes))
	cmd.Printf("  Queries: %d\n", settings.Queries)
	cmd.Printf("  Seed: %d\n", settings.Seed)
	cmd.Printf("  Retract stale entries: %t\n", settings.RetractStale)
	return nil
}

func runSettingsSet(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if err := applySettingsFlags(cmd, settings); err != nil {
		return err
	}
	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Settings saved.")
	return nil
}
