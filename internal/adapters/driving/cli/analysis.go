package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/burrowdb/internal/adapters/driving/report"
	"github.com/custodia-labs/burrowdb/internal/core/domain"
)

var analysisCmd = &cobra.Command{
	Use:   "analysis",
	Short: "Print the document vs relational trade-off summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return report.NewTextRenderer(cmd.OutOrStdout(), nil).RenderAnalysis(domain.TradeoffAnalysis())
	},
}

func init() {
	rootCmd.AddCommand(analysisCmd)
}
