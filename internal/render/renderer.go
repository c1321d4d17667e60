// Package render paints probe results into the terminal. Each result
// becomes one colored glyph in a grid that fills left to right, top to
// bottom; once the grid is full the renderer scrolls the grid region and
// keeps painting along the bottom row, so the display reads as a
// continuous mosaic of the most recent probes.
//
// A renderer runs in one of two modes, chosen once at construction. On
// interactive outputs it addresses single cells with cursor positioning
// and confines scrolling to the grid rows with a scroll region. On
// everything else (pipes, CI logs) it falls back to writing a complete
// plain-text frame per update and never positions the cursor.
package render

import (
	"strings"
	"time"

	"pingrid/internal/history"
	"pingrid/internal/logger"
	"pingrid/internal/probe"
	"pingrid/internal/stats"
	"pingrid/internal/term"
)

// Screen layout, top to bottom: title, legend, grid, latest probe,
// statistics. The grid rows between header and footer form the scroll
// region.
const (
	headerRows = 2
	footerRows = 2
)

// Terminal is the slice of the terminal session the renderer drives.
// Tests substitute a fake; production wires term.Session.
type Terminal interface {
	WriteString(string) error
	Size() (width, height int)
	IsInteractive() bool
}

// Renderer owns the ring history and the screen it projects onto.
// It is not safe for concurrent use; the monitor loop serializes all
// calls, so no paint ever observes a resize midway.
type Renderer struct {
	term        Terminal
	ring        *history.Ring
	target      string
	interval    time.Duration
	interactive bool
	width       int
	height      int
	last        probe.Result
	hasLast     bool
	summary     stats.Summary
	log         logger.Logger
}

// New creates a renderer sized to the terminal's current dimensions.
// The display mode is latched here from the session's interactivity and
// never re-evaluated; a session does not flip modes mid-run.
func New(t Terminal, target string, interval time.Duration) (*Renderer, error) {
	w, h := t.Size()
	gw, gh := gridDims(w, h)
	ring, err := history.New(gw, gh)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		term:        t,
		ring:        ring,
		target:      target,
		interval:    interval,
		interactive: t.IsInteractive(),
		width:       w,
		height:      h,
		log:         logger.NewEnvLogger("[render]"),
	}, nil
}

// SetLogger replaces the renderer's logger.
func (r *Renderer) SetLogger(l logger.Logger) {
	r.log = l
}

// gridDims derives the grid geometry from terminal dimensions: full
// width, height minus the header and footer rows. Degenerate terminals
// still get a 1x1 grid so the monitor keeps running.
func gridDims(termWidth, termHeight int) (width, height int) {
	width = termWidth
	if width < 1 {
		width = 1
	}
	height = termHeight - headerRows - footerRows
	if height < 1 {
		height = 1
	}
	return width, height
}

// Grid row bounds in 1-indexed terminal coordinates.
func (r *Renderer) gridTop() int    { return headerRows + 1 }
func (r *Renderer) gridBottom() int { return headerRows + r.ring.Height() }
func (r *Renderer) latestRow() int  { return r.gridBottom() + 1 }
func (r *Renderer) statsRow() int   { return r.gridBottom() + 2 }

// Init paints the initial screen: clear, title, legend, and the scroll
// region bounded to the grid rows. In fallback mode it does nothing;
// every update there carries its own complete frame.
func (r *Renderer) Init() error {
	if !r.interactive {
		return nil
	}
	var b strings.Builder
	b.WriteString(term.ClearScreen())
	b.WriteString(term.CursorPosition(1, 1))
	b.WriteString(r.titleLine())
	b.WriteString(term.CursorPosition(2, 1))
	b.WriteString(legendLine())
	b.WriteString(term.SetScrollRegion(r.gridTop(), r.gridBottom()))
	b.WriteString(term.CursorPosition(r.gridTop(), 1))
	return r.term.WriteString(b.String())
}

// AddResult records one probe result and updates the display: a single
// cell paint plus footer repaint when interactive, a full frame
// otherwise. A write failure aborts immediately and is fatal to the
// render loop; the dot is already in the ring either way.
func (r *Renderer) AddResult(res probe.Result, sum stats.Summary) error {
	dot, n := r.ring.Append(res)
	r.last = res
	r.hasLast = true
	r.summary = sum

	if !r.interactive {
		return r.writeFrame()
	}
	if err := r.paintCell(dot.Rendered, n); err != nil {
		return err
	}
	return r.paintFooter()
}

// paintCell emits the minimal sequence to place the dot for write count
// n: absolute addressing while the grid is filling, a one-line scroll
// when a write starts a new pass over a recycled row, plain bottom-row
// addressing for the writes that continue that pass.
func (r *Renderer) paintCell(rendered string, n uint64) error {
	col, row, wrapped := r.ring.PositionFor(n)
	var b strings.Builder
	switch {
	case n <= uint64(r.ring.Capacity()):
		b.WriteString(term.CursorPosition(r.gridTop()+row, col+1))
	case wrapped:
		b.WriteString(term.ScrollUp(1))
		b.WriteString(term.CursorPosition(r.gridBottom(), 1))
	default:
		b.WriteString(term.CursorPosition(r.gridBottom(), col+1))
	}
	b.WriteString(rendered)
	return r.term.WriteString(b.String())
}

// paintFooter rewrites the latest-probe and statistics lines in place.
// The footer sits below the scroll region, so these moves never disturb
// the grid.
func (r *Renderer) paintFooter() error {
	var b strings.Builder
	b.WriteString(term.CursorPosition(r.latestRow(), 1))
	b.WriteString(term.ClearLine())
	if r.hasLast {
		b.WriteString(latestLine(r.last))
	}
	b.WriteString(term.CursorPosition(r.statsRow(), 1))
	b.WriteString(term.ClearLine())
	b.WriteString(statsLine(r.summary))
	return r.term.WriteString(b.String())
}

// Resize re-lays the display onto the terminal's new dimensions: the
// ring keeps as many of its most recent dots as fit, the screen is
// rebuilt from scratch, and the kept dots replay through the same paint
// path as live updates. Replay preserves the dots' relative order only;
// the original write counts are not reconstructed, so a grid that had
// wrapped comes back compacted to the top. A notification that arrives
// without an actual size change is a no-op.
func (r *Renderer) Resize() error {
	if !r.interactive {
		return nil
	}
	w, h := r.term.Size()
	if w == r.width && h == r.height {
		return nil
	}

	gw, gh := gridDims(w, h)
	if err := r.ring.Resize(gw, gh); err != nil {
		return err
	}
	r.width = w
	r.height = h
	r.log.Debug("resized to %dx%d (grid %dx%d, %d dots kept)", w, h, gw, gh, r.ring.Count())

	if err := r.Init(); err != nil {
		return err
	}
	for i, dot := range r.ring.Snapshot() {
		if err := r.paintCell(dot.Rendered, uint64(i+1)); err != nil {
			return err
		}
	}
	if r.hasLast {
		return r.paintFooter()
	}
	return nil
}

// Clear empties the ring and rebuilds an empty screen. The footer
// clears with it; stale statistics over an empty grid would lie. The
// caller resets its own counters alongside.
func (r *Renderer) Clear() error {
	r.ring.Clear()
	r.last = probe.Result{}
	r.hasLast = false
	r.summary = stats.Summary{}
	if !r.interactive {
		return nil
	}
	return r.Init()
}
