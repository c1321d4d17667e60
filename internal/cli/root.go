package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pingrid/internal/errors"
)

// configFlag holds the --config persistent flag value.
var configFlag string

// rootCmd is the monitor itself; pingrid has no "watch" subcommand.
var rootCmd = &cobra.Command{
	Use:   "pingrid [target]",
	Short: "Live ping monitor that paints latency as a scrolling grid",
	Long: `pingrid pings one target on a fixed cadence and draws every probe as a
colored cell in a scrolling grid, one glyph per probe, newest at the
bottom. The grid survives terminal resizes, falls back to plain text
when output is piped, and closes with ping-style statistics.

Keys while monitoring:
  q / Ctrl+C  Quit
  c           Clear the grid and reset statistics

Examples:
  pingrid                      Monitor the configured target
  pingrid 192.168.1.1          Monitor a specific host
  pingrid nas --interval 5s    Probe an SSH config alias every 5s
  pingrid -c 100 8.8.8.8       Stop after 100 probes`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          watchCommand,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"config file (default: .pingrid.yaml search path)")
}

// Config returns the explicit config path from --config, if any.
func Config() string {
	return configFlag
}

// Execute runs the root command and exits the process on failure.
// Structured errors print their own formatting; ExitErrors carry a
// bare status code and stay silent.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if code, ok := errors.GetExitCode(err); ok {
			os.Exit(code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
