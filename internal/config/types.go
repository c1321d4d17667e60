package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Defaults used when neither the config file nor a flag supplies a
// value.
const (
	DefaultTarget   = "8.8.8.8"
	DefaultInterval = time.Second
	DefaultTimeout  = 2 * time.Second
)

// MinInterval is the fastest allowed probe cadence. Anything quicker
// just measures the ping subprocess spawn time.
const MinInterval = 100 * time.Millisecond

// Config represents the complete .pingrid.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Target is the host to ping: an IP, a hostname, or an SSH config
	// alias when ssh_config is enabled.
	Target string `yaml:"target" mapstructure:"target"`

	// Interval is the probe cadence.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Timeout is how long a single probe waits for a reply.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Count stops the run after this many probes. Zero runs until
	// interrupted.
	Count int `yaml:"count" mapstructure:"count"`

	// Beep rings the terminal bell when a probe is lost.
	Beep bool `yaml:"beep" mapstructure:"beep"`

	// SSHConfig resolves the target through ~/.ssh/config host aliases.
	SSHConfig bool `yaml:"ssh_config" mapstructure:"ssh_config"`

	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:   CurrentConfigVersion,
		Target:    DefaultTarget,
		Interval:  DefaultInterval,
		Timeout:   DefaultTimeout,
		Count:     0,
		Beep:      false,
		SSHConfig: true,
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
