package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build of burrow",
	Long: `Print the burrow version, the Go toolchain and platform it was built
for, and the source revision when the binary was built from a checkout.
Benchmark timings are only comparable between identical builds.`,
	Run: func(cmd *cobra.Command, _ []string) {
		info, _ := debug.ReadBuildInfo()
		cmd.Println(versionLine(info))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// versionLine renders e.g. "burrow version v1.2.0 go1.22.1 linux/amd64 (3f2c9ab1e0d4)".
func versionLine(info *debug.BuildInfo) string {
	line := fmt.Sprintf("burrow version %s %s %s/%s", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if rev := revision(info); rev != "" {
		line += " (" + rev + ")"
	}
	return line
}

// revision returns the short VCS revision recorded by the go tool,
// marked when the tree was dirty.
func revision(info *debug.BuildInfo) string {
	if info == nil {
		return ""
	}
	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if rev != "" && dirty {
		rev += "-dirty"
	}
	return rev
}
