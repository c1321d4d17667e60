package cli

import (
	"os"

	"github.com/spf13/cobra"

	"pingrid/internal/errors"
)

// Command-specific flags
var (
	watchIntervalFlag  string
	watchTimeoutFlag   string
	watchCountFlag     int
	watchBeepFlag      bool
	watchColorFlag     string
	initTargetFlag     string
	initForce          bool
	initNonInteractive bool
)

// initCmd creates a new .pingrid.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .pingrid.yaml configuration",
	Long: `Initialize a new pingrid configuration file.

Creates a .pingrid.yaml file in the current directory, asks which
target to monitor and how often, and checks reachability once before
saving.

Examples:
  pingrid init
  pingrid init --target 192.168.1.1
  pingrid init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initTargetFlag, initForce, initNonInteractive)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for pingrid.

Examples:
  # Bash
  pingrid completion bash > /etc/bash_completion.d/pingrid

  # Zsh
  pingrid completion zsh > "${fpath[1]}/_pingrid"

  # Fish
  pingrid completion fish > ~/.config/fish/completions/pingrid.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrExec,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// Monitor flags live on the root command; running pingrid is
	// monitoring.
	rootCmd.Flags().StringVarP(&watchIntervalFlag, "interval", "i", "", "probe cadence (e.g., 1s, 500ms)")
	rootCmd.Flags().StringVarP(&watchTimeoutFlag, "timeout", "t", "", "per-probe timeout (e.g., 2s)")
	rootCmd.Flags().IntVarP(&watchCountFlag, "count", "c", 0, "stop after this many probes (0 runs until interrupted)")
	rootCmd.Flags().BoolVarP(&watchBeepFlag, "beep", "b", false, "ring the terminal bell on lost probes")
	rootCmd.Flags().StringVar(&watchColorFlag, "color", "", "color mode: auto, always, or never")

	// init command flags
	initCmd.Flags().StringVar(&initTargetFlag, "target", "", "pre-specify the target to monitor")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "skip prompts, use defaults")

	// Register all commands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
