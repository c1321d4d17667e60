// Package probe sends single echo requests by shelling out to the system
// ping binary and normalizes each attempt into a Result. Shelling out
// avoids the raw-socket privileges a native ICMP implementation would
// need and inherits the platform's own ping behavior.
package probe

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"pingrid/internal/logger"
)

// DefaultTimeout bounds how long a single probe waits for a reply.
const DefaultTimeout = 2 * time.Second

// Result is one probe observation: whether a reply arrived and, when it
// did, the round-trip time.
type Result struct {
	Timestamp    time.Time
	Target       string
	Success      bool
	RTT          float64 // milliseconds, meaningful only when HasRTT
	HasRTT       bool
	ErrorMessage string
}

// Prober runs ping probes against a single target.
type Prober struct {
	timeout time.Duration
	log     logger.Logger
}

// New creates a Prober with the given per-probe timeout.
// Non-positive timeouts fall back to DefaultTimeout.
func New(timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Prober{
		timeout: timeout,
		log:     logger.NewEnvLogger("[probe]"),
	}
}

// SetLogger replaces the prober's logger.
func (p *Prober) SetLogger(l logger.Logger) {
	p.log = l
}

// Timeout returns the per-probe timeout.
func (p *Prober) Timeout() time.Duration {
	return p.timeout
}

// Ping sends one echo request to target and reports the outcome. It never
// returns an error: a probe that fails for any reason is still a valid
// observation and comes back as an unsuccessful Result.
func (p *Prober) Ping(ctx context.Context, target string) Result {
	result := Result{
		Timestamp: time.Now(),
		Target:    target,
	}

	// ping enforces its own reply timeout; the context cap is slightly
	// wider so a stuck DNS lookup cannot stall the loop.
	ctx, cancel := context.WithTimeout(ctx, p.timeout+time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "ping", pingArgs(target, p.timeout)...)
	output, err := cmd.CombinedOutput()

	if err != nil {
		reason := categorizeFailure(string(output), err)
		if ctx.Err() != nil {
			reason = FailTimeout
		}
		result.ErrorMessage = reason.String()
		p.log.Debug("probe %s failed: %s (%v)", target, reason, err)
		return result
	}

	result.Success = true
	if rtt, ok := parseRTT(string(output)); ok {
		result.RTT = rtt
		result.HasRTT = true
	} else {
		// A reply we cannot time carries no latency information.
		result.ErrorMessage = "reply had no parseable time"
		p.log.Debug("probe %s: no rtt in output: %q", target, string(output))
	}
	return result
}

// pingArgs returns the platform-specific arguments for a single probe.
func pingArgs(target string, timeout time.Duration) []string {
	if runtime.GOOS == "windows" {
		return []string{"-n", "1", "-w", strconv.Itoa(int(timeout.Milliseconds())), target}
	}
	// -W takes whole seconds on Linux; round up so sub-second timeouts
	// do not become an infinite wait.
	secs := int((timeout + time.Second - 1) / time.Second)
	return []string{"-c", "1", "-W", strconv.Itoa(secs), target}
}

// FailReason categorizes why a probe failed.
type FailReason int

const (
	FailUnknown FailReason = iota
	FailTimeout
	FailUnknownHost
	FailUnreachable
	FailPermission
	FailNotFound
)

// String returns a human-readable description of the failure reason.
func (r FailReason) String() string {
	switch r {
	case FailTimeout:
		return "request timed out"
	case FailUnknownHost:
		return "unknown host"
	case FailUnreachable:
		return "network unreachable"
	case FailPermission:
		return "permission denied"
	case FailNotFound:
		return "ping command not found"
	default:
		return "probe failed"
	}
}

// categorizeFailure converts ping's combined output and exit error into
// a FailReason.
func categorizeFailure(output string, err error) FailReason {
	if err == nil {
		return FailUnknown
	}

	if errors.Is(err, exec.ErrNotFound) {
		return FailNotFound
	}

	combined := strings.ToLower(output + " " + err.Error())

	if strings.Contains(combined, "unknown host") ||
		strings.Contains(combined, "name or service not known") ||
		strings.Contains(combined, "cannot resolve") ||
		strings.Contains(combined, "temporary failure in name resolution") {
		return FailUnknownHost
	}

	if strings.Contains(combined, "network is unreachable") ||
		strings.Contains(combined, "no route to host") ||
		strings.Contains(combined, "host unreachable") {
		return FailUnreachable
	}

	if strings.Contains(combined, "operation not permitted") ||
		strings.Contains(combined, "permission denied") {
		return FailPermission
	}

	if strings.Contains(combined, "100% packet loss") ||
		strings.Contains(combined, "timed out") ||
		strings.Contains(combined, "timeout") {
		return FailTimeout
	}

	// ping exits 1 when the host simply sent no reply in the wait window.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return FailTimeout
	}

	return FailUnknown
}
