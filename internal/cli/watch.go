package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pingrid/internal/config"
	"pingrid/internal/monitor"
	"pingrid/internal/target"
	"pingrid/internal/ui"
)

// watchCommand merges config and flags, then hands the run to the
// monitor. It works with or without a config file; pingrid monitors
// something useful out of the box.
func watchCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return err
	}

	if len(args) == 1 {
		cfg.Target = args[0]
	}
	if err := applyWatchFlags(cmd, cfg); err != nil {
		return err
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	applyColorMode(cfg.Output.Color)

	host, display := resolveTarget(cfg)

	mon, err := monitor.New(monitor.Options{
		Target:        host,
		DisplayTarget: display,
		Interval:      cfg.Interval,
		Timeout:       cfg.Timeout,
		Count:         cfg.Count,
		Beep:          cfg.Beep,
	})
	if err != nil {
		return err
	}

	runErr := mon.Run(context.Background())

	// The closing summary prints even when the run exits nonzero; the
	// numbers are the part worth keeping.
	if sum := mon.Summary(); sum.Sent > 0 {
		fmt.Println(monitor.FormatSummary(display, sum, mon.RTTs()))
	}

	return runErr
}

// applyWatchFlags overlays explicitly-set flags onto the loaded config.
// Flags the user never touched leave the file's values alone.
func applyWatchFlags(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("interval") {
		interval, err := ParseInterval(watchIntervalFlag)
		if err != nil {
			return err
		}
		cfg.Interval = interval
	}
	if cmd.Flags().Changed("timeout") {
		timeout, err := ParseTimeout(watchTimeoutFlag)
		if err != nil {
			return err
		}
		cfg.Timeout = timeout
	}
	if cmd.Flags().Changed("count") {
		cfg.Count = watchCountFlag
	}
	if cmd.Flags().Changed("beep") {
		cfg.Beep = watchBeepFlag
	}
	if cmd.Flags().Changed("color") {
		cfg.Output.Color = watchColorFlag
	}
	return nil
}

// resolveTarget runs the configured target through ~/.ssh/config when
// enabled. The display form keeps the alias visible next to what is
// actually pinged.
func resolveTarget(cfg *config.Config) (host, display string) {
	host = cfg.Target
	display = host
	if !cfg.SSHConfig {
		return host, display
	}
	if resolved, ok := target.NewResolver().Resolve(host); ok {
		display = fmt.Sprintf("%s (%s)", host, resolved)
		host = resolved
	}
	return host, display
}

// applyColorMode translates the color mode into profile overrides.
// "auto" leaves lipgloss's own detection alone.
func applyColorMode(mode string) {
	switch mode {
	case "always":
		ui.ForceColors()
	case "never":
		ui.DisableColors()
	}
}
