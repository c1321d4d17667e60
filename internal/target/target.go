// Package target turns what the user typed into what the prober pings.
// A name that matches a concrete Host alias in the SSH config resolves
// to that alias's HostName, so `pingrid mini` reaches the same machine
// `ssh mini` would. IP literals and unmatched names pass through
// untouched.
package target

import (
	"bytes"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/kevinburke/ssh_config"

	"pingrid/internal/logger"
)

// Resolver looks up targets against one SSH config file.
type Resolver struct {
	path string
	log  logger.Logger
}

// NewResolver creates a resolver over ~/.ssh/config.
func NewResolver() *Resolver {
	return NewResolverFile(filepath.Join(homeDir(), ".ssh", "config"))
}

// NewResolverFile creates a resolver over the given config file. Tests
// point this at fixtures.
func NewResolverFile(path string) *Resolver {
	return &Resolver{
		path: path,
		log:  logger.NewEnvLogger("[target]"),
	}
}

// SetLogger replaces the resolver's logger.
func (r *Resolver) SetLogger(l logger.Logger) {
	r.log = l
}

// Resolve maps name to the HostName its SSH config alias points at.
// The boolean reports whether a resolution happened; when it is false
// the returned name is the input unchanged. A missing or unreadable
// config is not an error, just a passthrough.
func (r *Resolver) Resolve(name string) (string, bool) {
	if name == "" || net.ParseIP(name) != nil {
		return name, false
	}

	cfg, err := r.decode()
	if err != nil || cfg == nil {
		return name, false
	}

	if !hasConcreteAlias(cfg, name) {
		return name, false
	}

	hostname, err := cfg.Get(name, "HostName")
	if err != nil || hostname == "" || hostname == name {
		return name, false
	}

	r.log.Debug("resolved %q to %q via %s", name, hostname, r.path)
	return hostname, true
}

// decode reads and parses the SSH config. Content is truncated at the
// first Match directive: the ssh_config library cannot parse Match
// blocks, and aliases defined before one still resolve.
func (r *Resolver) decode() (*ssh_config.Config, error) {
	content, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.Debug("ssh config unreadable: %v", err)
		}
		return nil, err
	}

	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(strings.ToLower(trimmed), "match ") {
			r.log.Debug("ssh config has a Match block at line %d; aliases after it are invisible", i+1)
			lines = lines[:i]
			break
		}
	}

	cfg, err := ssh_config.Decode(bytes.NewReader([]byte(strings.Join(lines, "\n"))))
	if err != nil {
		r.log.Debug("ssh config parse failed: %v", err)
		return nil, err
	}
	return cfg, nil
}

// hasConcreteAlias reports whether name appears as a literal (non
// wildcard) Host pattern. Without this check, a `Host *` block with a
// HostName would swallow every target.
func hasConcreteAlias(cfg *ssh_config.Config, name string) bool {
	for _, host := range cfg.Hosts {
		for _, pattern := range host.Patterns {
			alias := pattern.String()
			if strings.ContainsAny(alias, "*?") {
				continue
			}
			if alias == name {
				return true
			}
		}
	}
	return false
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return os.Getenv("HOME")
	}
	return home
}
