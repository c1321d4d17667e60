package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"pingrid/internal/config"
	"pingrid/internal/errors"
	"pingrid/internal/probe"
	"pingrid/internal/target"
	"pingrid/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Target         string // Pre-specified target
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
}

// Init creates a new .pingrid.yaml configuration file.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()

	if opts.NonInteractive {
		if opts.Target != "" {
			cfg.Target = opts.Target
		}
	} else {
		targetInput := opts.Target
		if targetInput == "" {
			targetInput = config.DefaultTarget
		}
		intervalInput := config.DefaultInterval.String()
		beep := false

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Target to monitor").
					Description("Hostname, IP address, or SSH config alias").
					Placeholder(config.DefaultTarget).
					Value(&targetInput).
					Validate(validateTargetInput),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Probe interval").
					Description("How often to ping (e.g., 1s, 500ms, 5s)").
					Placeholder(config.DefaultInterval.String()).
					Value(&intervalInput).
					Validate(validateIntervalInput),
			),
			huh.NewGroup(
				huh.NewConfirm().
					Title("Ring the terminal bell on lost probes?").
					Value(&beep),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --non-interactive")
		}

		cfg.Target = strings.TrimSpace(targetInput)
		if interval, err := time.ParseDuration(strings.TrimSpace(intervalInput)); err == nil {
			cfg.Interval = interval
		}
		cfg.Beep = beep
	}

	// Reachability check. Non-interactive runs skip it: there is no
	// prompt to fall back on, and a config for a currently-down host
	// is still a valid thing to want.
	if opts.NonInteractive {
		ui.PrintWarning("Skipping reachability check in non-interactive mode")
	} else if err := checkReachable(cfg); err != nil {
		return err
	}

	data, err := buildConfigYAML(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Println("Next steps:")
	fmt.Println("  pingrid            - Monitor the configured target")
	fmt.Println("  pingrid <host>     - Monitor a different target")
	fmt.Println("  pingrid --beep     - Ring the bell on lost probes")

	return nil
}

// checkReachable sends one probe at the configured target and, when it
// fails, asks whether to save anyway.
func checkReachable(cfg *config.Config) error {
	host := cfg.Target
	if cfg.SSHConfig {
		if resolved, ok := target.NewResolver().Resolve(host); ok {
			host = resolved
		}
	}

	fmt.Println()
	spinner := ui.NewSpinner("Probing " + host)
	spinner.Start()

	res := probe.New(cfg.Timeout).Ping(context.Background(), host)
	if res.Success {
		spinner.Success()
		fmt.Println()
		return nil
	}
	spinner.Fail()

	reason := res.ErrorMessage
	if reason == "" {
		reason = "no reply"
	}
	fmt.Printf("\n%s Probe to '%s' failed: %s\n\n", ui.SymbolFail, host, reason)

	var saveAnyway bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save config anyway? (Watching a down host is half the point)").
				Value(&saveAnyway),
		),
	)
	if err := form.Run(); err != nil || !saveAnyway {
		return errors.New(errors.ErrProbe,
			fmt.Sprintf("Probe to '%s' failed: %s", host, reason),
			"Check the target name, or rerun init with a different one.")
	}
	return nil
}

// validateTargetInput is the form validator for the target prompt.
func validateTargetInput(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("target is required")
	}
	if strings.ContainsAny(s, " \t") {
		return fmt.Errorf("target cannot contain whitespace")
	}
	return nil
}

// validateIntervalInput is the form validator for the interval prompt.
// Empty input keeps the default.
func validateIntervalInput(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("use a duration like 1s or 500ms")
	}
	if d < config.MinInterval {
		return fmt.Errorf("minimum interval is %s", config.MinInterval)
	}
	return nil
}

// fileConfig is the YAML shape init writes to disk. Durations become
// strings so the file reads "1s", not a nanosecond count.
type fileConfig struct {
	Version   int    `yaml:"version"`
	Target    string `yaml:"target"`
	Interval  string `yaml:"interval"`
	Timeout   string `yaml:"timeout"`
	Count     int    `yaml:"count"`
	Beep      bool   `yaml:"beep"`
	SSHConfig bool   `yaml:"ssh_config"`
	Output    struct {
		Color string `yaml:"color"`
	} `yaml:"output"`
}

// buildConfigYAML renders the annotated YAML document init writes.
func buildConfigYAML(cfg *config.Config) ([]byte, error) {
	fc := fileConfig{
		Version:   cfg.Version,
		Target:    cfg.Target,
		Interval:  cfg.Interval.String(),
		Timeout:   cfg.Timeout.String(),
		Count:     cfg.Count,
		Beep:      cfg.Beep,
		SSHConfig: cfg.SSHConfig,
	}
	fc.Output.Color = cfg.Output.Color

	data, err := yaml.Marshal(fc)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# pingrid configuration
# Run 'pingrid' to monitor the target below.

`
	return append([]byte(header), data...), nil
}

// initCommand is the implementation called by the cobra command.
func initCommand(targetFlag string, force, nonInteractive bool) error {
	return Init(InitOptions{
		Target:         targetFlag,
		Overwrite:      force,
		NonInteractive: nonInteractive,
	})
}
