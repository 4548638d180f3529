// copyhist: clipboard history recorder.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.klb.dev/copyhist/internal/logging"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "copyhist",
		Short: "Record and search clipboard history",
		Long: `copyhist watches the system clipboard and durably records every
distinct text value copied to it, then serves the history back.

Run "copyhist monitor" in the background to start recording. Use
"copyhist list" to browse, "copyhist copy <id>" to put an old clip back on
the clipboard, "copyhist export" for CSV, and "copyhist clear" to wipe.

Config file search order (first found wins):
  /etc/copyhist/copyhist.toml
  $HOME/.config/copyhist/copyhist.toml
  path supplied via --config

All flags can be set via COPYHIST_<FLAG> env vars or config-file keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newMonitorCmd(),
		newListCmd(),
		newCopyCmd(),
		newExportCmd(),
		newClearCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("copyhist %s\n", Version)
		},
	}
}

// resolveLogging sets up the global slog logger after flags are parsed.
func resolveLogging(interactive bool, formatStr, levelStr string) {
	format := logging.ParseFormat(formatStr)
	level := logging.ParseLevel(levelStr)
	if levelStr == "" {
		if interactive {
			level = logging.ParseLevel("debug")
		} else {
			level = logging.ParseLevel("info")
		}
	}
	logging.Setup(format, level)
}
