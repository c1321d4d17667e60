// Package alert turns lost probes into terminal bells.
package alert

import (
	"github.com/muesli/termenv"

	"pingrid/internal/classify"
	"pingrid/internal/probe"
)

// terminal is the slice of the terminal session the beeper writes
// through.
type terminal interface {
	WriteString(string) error
}

// Beeper emits one bell per probe that classifies as failed. The bell
// rides the same output stream as the display; callers enable it only
// on live terminals so redirected output never collects BEL bytes.
type Beeper struct {
	term    terminal
	enabled bool
}

// NewBeeper creates a beeper. When enabled is false every call is a
// no-op, so callers never need to branch.
func NewBeeper(t terminal, enabled bool) *Beeper {
	return &Beeper{term: t, enabled: enabled}
}

// Enabled reports whether the beeper makes noise.
func (b *Beeper) Enabled() bool {
	return b != nil && b.enabled
}

// Sample inspects one probe result and beeps if it classifies as
// failed. Write errors are ignored; a lost bell is not worth stopping
// the monitor over.
func (b *Beeper) Sample(r probe.Result) {
	if !b.Enabled() {
		return
	}
	if classify.Classify(r) != classify.Failed {
		return
	}
	_ = b.term.WriteString(string(termenv.BEL))
}
