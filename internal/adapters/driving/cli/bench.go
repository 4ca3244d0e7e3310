package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/burrowdb/internal/adapters/driving/report"
	"github.com/custodia-labs/burrowdb/internal/core/domain"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
)

var (
	benchFormat string
	benchWatch  bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the storage benchmark",
	Long: `Generate the same synthetic dataset into both engines at every size,
run the query mix and compare total time and estimated memory.

Flags override the values stored with "burrow settings set".
With --watch the benchmark runs again whenever the config file changes.`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	addSettingsFlags(benchCmd)
	benchCmd.Flags().StringVarP(&benchFormat, "format", "f", formatText, "output format: text or json")
	benchCmd.Flags().BoolVarP(&benchWatch, "watch", "w", false, "re-run when the config file changes")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, _ []string) error {
	if benchmarkService == nil {
		return errors.New("benchmark service not configured")
	}
	if benchFormat != formatText && benchFormat != formatJSON {
		return fmt.Errorf("unknown format %q: %w", benchFormat, domain.ErrInvalidInput)
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if err := runBenchOnce(cmd, settings); err != nil {
		return err
	}
	if !benchWatch {
		return nil
	}
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	err = settingsService.Watch(cmd.Context(), func(updated *domain.BenchmarkSettings) {
		cmd.Println()
		cmd.Println("Configuration changed, re-running.")
		if err := runBenchOnce(cmd, updated); err != nil {
			cmd.PrintErrf("Error: %v\n", err)
		}
	})
	if errors.Is(err, domain.ErrNotImplemented) {
		return errors.New("--watch needs a config file")
	}
	return err
}

// runBenchOnce applies flag overrides, runs and renders one report.
func runBenchOnce(cmd *cobra.Command, settings *domain.BenchmarkSettings) error {
	if err := applySettingsFlags(cmd, settings); err != nil {
		return err
	}

	result, err := benchmarkService.Run(cmd.Context(), *settings)
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}

	if benchFormat == formatJSON {
		return report.RenderJSON(cmd.OutOrStdout(), result)
	}
	return report.NewTextRenderer(cmd.OutOrStdout(), nil).Render(result)
}

// loadSettings returns the stored settings, or defaults when no
// settings service is configured.
func loadSettings() (*domain.BenchmarkSettings, error) {
	if settingsService == nil {
		defaults := domain.DefaultBenchmarkSettings()
		return &defaults, nil
	}
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}
