package config

import (
	"fmt"
	"strings"

	"pingrid/internal/errors"
)

// Validate checks the config for errors and returns structured error
// messages. It runs after defaults and flag overrides have been merged,
// so every field is expected to hold a usable value.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but pingrid only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab a newer pingrid build, or drop the version field to use the current schema.")
	}

	if strings.TrimSpace(cfg.Target) == "" {
		return errors.New(errors.ErrConfig,
			"No target configured",
			"Pass a target ('pingrid 8.8.8.8') or set one with 'pingrid init'.")
	}
	if strings.ContainsAny(cfg.Target, " \t\n") {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Target '%s' contains whitespace", cfg.Target),
			"Use a single hostname, IP address, or SSH config alias.")
	}

	if cfg.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Interval %s is too fast", cfg.Interval),
			fmt.Sprintf("Minimum interval is %s - quicker than that mostly measures process spawn time.", MinInterval))
	}

	if cfg.Timeout <= 0 {
		return errors.New(errors.ErrConfig,
			"Timeout can't be zero or negative - that doesn't make sense",
			"Try something like 2s.")
	}

	if cfg.Count < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Count %d is negative", cfg.Count),
			"Use 0 to run until interrupted, or a positive number of probes.")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Check the 'output' section in your .pingrid.yaml.")
	}

	return nil
}

// validateOutput checks output configuration.
func validateOutput(out OutputConfig) error {
	validColors := map[string]bool{"auto": true, "always": true, "never": true, "": true}
	if !validColors[out.Color] {
		return fmt.Errorf("output.color '%s' isn't valid - use 'auto', 'always', or 'never'", out.Color)
	}
	return nil
}
