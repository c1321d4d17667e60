// Package monitor runs the probe loop for one target and owns the
// display for the lifetime of the run. It wires the prober, the
// statistics tracker, the beeper, and the renderer together behind a
// single-goroutine event loop, so none of those parts need locks.
package monitor

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pingrid/internal/alert"
	"pingrid/internal/errors"
	"pingrid/internal/logger"
	"pingrid/internal/probe"
	"pingrid/internal/render"
	"pingrid/internal/stats"
	"pingrid/internal/term"
)

// Options configures a monitor run.
type Options struct {
	// Target is the host the prober actually pings.
	Target string

	// DisplayTarget is what the header shows. It differs from Target
	// when an SSH config alias was resolved. Empty falls back to
	// Target.
	DisplayTarget string

	// Interval is the probe cadence.
	Interval time.Duration

	// Timeout is how long a single probe waits for a reply.
	Timeout time.Duration

	// Count stops the run after this many probes. Zero runs until
	// interrupted.
	Count int

	// Beep rings the terminal bell on every lost probe.
	Beep bool
}

// prober is the slice of probe.Prober the loop needs. Tests swap in
// deterministic fakes.
type prober interface {
	Ping(ctx context.Context, target string) probe.Result
}

// sizer reports terminal dimensions. Satisfied by *term.Session; the
// Windows resize watcher polls it.
type sizer interface {
	Size() (width, height int)
}

// Monitor drives one run: probe on a ticker, classify, paint, repeat
// until the count is reached or the user quits.
type Monitor struct {
	opts     Options
	session  *term.Session
	renderer *render.Renderer
	tracker  *stats.Tracker
	beeper   *alert.Beeper
	prober   prober
	keysIn   *os.File
	log      logger.Logger

	// Whole-run totals. The tracker resets with the display on 'c';
	// the probe budget and the exit status keep counting.
	sent     int
	received int
}

// New creates a monitor bound to the real terminal: display on stdout,
// keys from stdin.
func New(opts Options) (*Monitor, error) {
	m, err := NewWithSession(opts, term.NewSession(os.Stdout))
	if err != nil {
		return nil, err
	}
	m.keysIn = os.Stdin
	return m, nil
}

// NewWithSession creates a monitor over an explicit terminal session.
// Captured output and tests come through here; no key watcher is
// attached.
func NewWithSession(opts Options, session *term.Session) (*Monitor, error) {
	display := opts.DisplayTarget
	if display == "" {
		display = opts.Target
	}

	renderer, err := render.New(session, display, opts.Interval)
	if err != nil {
		return nil, err
	}

	// Bells only make sense on a live terminal; redirected output
	// should never collect BEL bytes.
	beep := opts.Beep && session.IsInteractive()

	return &Monitor{
		opts:     opts,
		session:  session,
		renderer: renderer,
		tracker:  stats.NewTracker(),
		beeper:   alert.NewBeeper(session, beep),
		prober:   probe.New(opts.Timeout),
		log:      logger.NewEnvLogger("[monitor]"),
	}, nil
}

// SetLogger replaces the monitor's logger and the renderer's.
func (m *Monitor) SetLogger(l logger.Logger) {
	m.log = l
	m.renderer.SetLogger(l)
}

// Summary returns the statistics collected so far.
func (m *Monitor) Summary() stats.Summary {
	return m.tracker.Summary()
}

// RTTs returns the round-trip times of every successful probe, oldest
// first.
func (m *Monitor) RTTs() []float64 {
	return m.tracker.RTTs()
}

// Run executes the probe loop until the context is canceled, the user
// quits, or the configured count is reached. It restores the terminal
// on every exit path, errors included.
func (m *Monitor) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if m.session.IsInteractive() {
		if err := m.session.EnterAltScreen(); err != nil {
			return err
		}
		if err := m.session.HideCursor(); err != nil {
			m.session.Restore()
			return err
		}
	}
	defer m.session.Restore()

	if err := m.renderer.Init(); err != nil {
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	// Raw key input only makes sense when the display is interactive.
	// With output piped, stdin keeps its normal line discipline and
	// interruption comes through signals.
	var keys <-chan byte
	stopKeys := func() {}
	if m.session.IsInteractive() {
		keys, stopKeys = watchKeys(m.keysIn, m.log)
	}
	defer stopKeys()

	var resized <-chan struct{}
	if m.session.IsInteractive() {
		resized = watchResize(ctx, m.session, m.log)
	}

	ticker := time.NewTicker(m.opts.Interval)
	defer ticker.Stop()

	// Immediate first probe; the ticker covers the rest.
	done, err := m.step(ctx)
	if err != nil {
		return err
	}
	if done {
		return m.finish()
	}

	for {
		select {
		case <-ctx.Done():
			return m.finish()
		case <-sigCh:
			return m.finish()
		case b := <-keys:
			quit, err := m.handleKey(b)
			if err != nil {
				return err
			}
			if quit {
				return m.finish()
			}
		case <-resized:
			if err := m.renderer.Resize(); err != nil {
				return err
			}
		case <-ticker.C:
			done, err := m.step(ctx)
			if err != nil {
				return err
			}
			if done {
				return m.finish()
			}
		}
	}
}

// step runs one probe and paints the result. It reports done when a
// finite run has sent its last probe.
func (m *Monitor) step(ctx context.Context) (bool, error) {
	res := m.prober.Ping(ctx, m.opts.Target)
	m.sent++
	if res.Success {
		m.received++
	}
	m.tracker.Add(res)
	m.beeper.Sample(res)

	sum := m.tracker.Summary()
	if err := m.renderer.AddResult(res, sum); err != nil {
		return false, err
	}

	return m.opts.Count > 0 && m.sent >= m.opts.Count, nil
}

// handleKey reacts to one raw input byte. In raw mode Ctrl-C arrives
// here as a byte, not as SIGINT.
func (m *Monitor) handleKey(b byte) (quit bool, err error) {
	switch b {
	case 'q', 'Q', keyCtrlC:
		return true, nil
	case 'c':
		// Clears the display window only; the run totals keep counting.
		m.tracker.Reset()
		if err := m.renderer.Clear(); err != nil {
			return false, err
		}
	}
	return false, nil
}

// finish decides the exit status. A finite run that completed without a
// single reply exits nonzero, the way ping does, so scripts can gate on
// reachability.
func (m *Monitor) finish() error {
	if m.opts.Count > 0 && m.sent >= m.opts.Count && m.received == 0 {
		return errors.NewExitError(1)
	}
	return nil
}
