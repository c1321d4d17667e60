// Package cli implements the pingrid command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to workflow functions for the actual work:
//
//	pingrid [target]  - Monitor a target (the root command is the monitor)
//	pingrid init      - Create a .pingrid.yaml config
//	pingrid version   - Print version information
//	pingrid completion- Generate shell completion scripts
//
// # Flag Handling
//
// The monitor's flags (--interval, --timeout, --count, --beep, --color)
// live on the root command. Values merge in a fixed order: defaults,
// then the config file, then explicitly-set flags, with the positional
// target argument overriding the configured one. Only flags the user
// actually set override the file; defaults never clobber it.
//
// # Target Resolution
//
// When ssh_config is enabled (the default), the target runs through
// ~/.ssh/config host aliases before pinging, so "pingrid nas" probes
// whatever HostName the alias points at. The display keeps both names
// visible.
package cli
