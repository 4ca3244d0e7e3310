package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/burrowdb/internal/adapters/driving/repl"
	"github.com/custodia-labs/burrowdb/internal/adapters/driving/tui"
	"github.com/custodia-labs/burrowdb/internal/logger"
)

var shellTUI bool

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the key-value shell",
	Long: `Start a line-oriented key-value shell reading from stdin.

Commands: PUT <key> <value> | GET <key> | LIST | HELP | EXIT

With --tui and a terminal on stdin the shell runs full screen.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	shellCmd.Flags().BoolVar(&shellTUI, "tui", false, "run the full-screen shell")
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, _ []string) error {
	if kvService == nil {
		return errors.New("kv service not configured")
	}

	in := cmd.InOrStdin()
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}

	if shellTUI {
		if interactive {
			return tui.Run(cmd.Context(), kvService, in, cmd.OutOrStdout())
		}
		logger.Warn("--tui needs a terminal on stdin, using line mode")
	}

	return repl.New(kvService, cmd.OutOrStdout()).Run(cmd.Context(), in, interactive)
}
