package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pingrid/internal/probe"
	"pingrid/internal/stats"
)

func init() {
	// Cell assertions compare exact bytes; force the colorless profile
	// so rendered dots are bare glyphs regardless of the test terminal.
	lipgloss.SetColorProfile(termenv.Ascii)
}

// fakeTerm implements Terminal over a buffer with adjustable dimensions,
// standing in for term.Session.
type fakeTerm struct {
	buf         bytes.Buffer
	width       int
	height      int
	interactive bool
	failErr     error
}

func (f *fakeTerm) WriteString(s string) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.buf.WriteString(s)
	return nil
}

func (f *fakeTerm) Size() (int, int)    { return f.width, f.height }
func (f *fakeTerm) IsInteractive() bool { return f.interactive }

// take drains and returns everything written since the last call.
func (f *fakeTerm) take() string {
	s := f.buf.String()
	f.buf.Reset()
	return s
}

// isGridRow reports whether a frame line is purely dot glyphs, which
// distinguishes grid rows from the legend.
func isGridRow(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("▁▃▅▆█✗", r) {
			return false
		}
	}
	return true
}

// newGridRenderer builds a renderer whose grid is exactly gw x gh cells
// by sizing the fake terminal around the header and footer rows.
func newGridRenderer(t *testing.T, gw, gh int, interactive bool) (*Renderer, *fakeTerm) {
	t.Helper()
	ft := &fakeTerm{width: gw, height: gh + headerRows + footerRows, interactive: interactive}
	r, err := New(ft, "8.8.8.8", time.Second)
	require.NoError(t, err)
	return r, ft
}

func reply(rtt float64) probe.Result {
	return probe.Result{
		Timestamp: time.Date(2025, 3, 9, 14, 2, 33, 0, time.UTC),
		Target:    "8.8.8.8",
		Success:   true,
		RTT:       rtt,
		HasRTT:    true,
	}
}

func lost() probe.Result {
	return probe.Result{
		Timestamp:    time.Date(2025, 3, 9, 14, 2, 33, 0, time.UTC),
		Target:       "8.8.8.8",
		ErrorMessage: "request timed out",
	}
}

func cursorTo(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row, col)
}

func TestNew_GridSizedFromTerminal(t *testing.T) {
	ft := &fakeTerm{width: 80, height: 24, interactive: true}

	r, err := New(ft, "8.8.8.8", time.Second)

	require.NoError(t, err)
	assert.Equal(t, 80, r.ring.Width())
	assert.Equal(t, 20, r.ring.Height(), "grid height is terminal height minus header and footer")
}

func TestNew_TinyTerminalStillGetsAGrid(t *testing.T) {
	// A 3-row terminal cannot fit header+grid+footer; the grid clamps
	// to one row rather than failing.
	ft := &fakeTerm{width: 5, height: 3, interactive: true}

	r, err := New(ft, "8.8.8.8", time.Second)

	require.NoError(t, err)
	assert.Equal(t, 5, r.ring.Width())
	assert.Equal(t, 1, r.ring.Height())
}

func TestInit_PaintsHeaderAndScrollRegion(t *testing.T) {
	r, ft := newGridRenderer(t, 80, 20, true)

	require.NoError(t, r.Init())

	out := ft.take()
	assert.Contains(t, out, "\x1b[2J", "init clears the screen")
	assert.Contains(t, out, cursorTo(1, 1)+"pingrid | 8.8.8.8 | every 1s")
	assert.Contains(t, out, cursorTo(2, 1), "legend paints on row 2")
	assert.Contains(t, out, "\x1b[3;22r", "scroll region bounds the grid rows")
	assert.Contains(t, out, "lost", "legend names the failure glyph")
}

func TestInit_FallbackEmitsNothing(t *testing.T) {
	r, ft := newGridRenderer(t, 80, 20, false)

	require.NoError(t, r.Init())

	assert.Empty(t, ft.take())
}

func TestAddResult_FillPhasePaintsRowMajor(t *testing.T) {
	r, ft := newGridRenderer(t, 3, 2, true)
	require.NoError(t, r.Init())
	ft.take()

	// Grid rows sit at terminal rows 3 and 4.
	wantMoves := []string{
		cursorTo(3, 1), cursorTo(3, 2), cursorTo(3, 3),
		cursorTo(4, 1), cursorTo(4, 2), cursorTo(4, 3),
	}

	tracker := stats.NewTracker()
	for i, want := range wantMoves {
		res := reply(10)
		tracker.Add(res)
		require.NoError(t, r.AddResult(res, tracker.Summary()))

		out := ft.take()
		assert.Contains(t, out, want+"▁", "sample %d paints its own cell", i+1)
		assert.NotContains(t, out, "\x1b[1S", "no scrolling while the grid is filling")
		assert.NotContains(t, out, "\x1b[2J", "no full clears on the incremental path")
	}
}

// The end-to-end wraparound scenario: a 3x2 grid, eight samples. The
// first six fill the grid row-major, the seventh scrolls and paints
// bottom-left, the eighth continues the bottom row without scrolling,
// and the ring retains samples three through eight.
func TestAddResult_WraparoundScenario(t *testing.T) {
	r, ft := newGridRenderer(t, 3, 2, true)
	require.NoError(t, r.Init())

	tracker := stats.NewTracker()
	add := func(rtt float64) string {
		ft.take()
		res := reply(rtt)
		tracker.Add(res)
		require.NoError(t, r.AddResult(res, tracker.Summary()))
		return ft.take()
	}

	for _, rtt := range []float64{10, 60, 150, 300, 600} {
		add(rtt)
	}
	sixth := add(10)
	assert.Contains(t, sixth, cursorTo(4, 3), "sixth sample fills the last cell")
	assert.NotContains(t, sixth, "\x1b[1S")

	seventh := add(60)
	assert.Contains(t, seventh, "\x1b[1S", "seventh sample scrolls the grid")
	assert.Contains(t, seventh, cursorTo(4, 1)+"▃", "then paints bottom row, column 1")

	eighth := add(150)
	assert.NotContains(t, eighth, "\x1b[1S", "mid-row continuation does not scroll")
	assert.Contains(t, eighth, cursorTo(4, 2)+"▅", "eighth paints bottom row, column 2")

	snap := r.ring.Snapshot()
	require.Len(t, snap, 6)
	got := make([]float64, len(snap))
	for i, d := range snap {
		got[i] = d.Sample.RTT
	}
	assert.Equal(t, []float64{150, 300, 600, 10, 60, 150}, got, "ring keeps samples 3..8")
}

func TestAddResult_ScrollStaysOncePerRow(t *testing.T) {
	r, ft := newGridRenderer(t, 3, 2, true)
	require.NoError(t, r.Init())

	tracker := stats.NewTracker()
	scrolls := 0
	for i := 0; i < 12; i++ {
		ft.take()
		res := reply(10)
		tracker.Add(res)
		require.NoError(t, r.AddResult(res, tracker.Summary()))
		if strings.Contains(ft.take(), "\x1b[1S") {
			scrolls++
		}
	}

	// Twelve writes into a six-cell grid: rows recycle at writes 7 and 10.
	assert.Equal(t, 2, scrolls)
}

func TestAddResult_RepaintsFooterInPlace(t *testing.T) {
	r, ft := newGridRenderer(t, 3, 2, true)
	require.NoError(t, r.Init())
	ft.take()

	tracker := stats.NewTracker()
	res := reply(42)
	tracker.Add(res)
	require.NoError(t, r.AddResult(res, tracker.Summary()))

	out := ft.take()
	// Latest line on row 5, stats on row 6, each overwritten after a
	// clear-line, never via scrolling.
	assert.Contains(t, out, cursorTo(5, 1)+"\x1b[K")
	assert.Contains(t, out, "42.0 ms")
	assert.Contains(t, out, cursorTo(6, 1)+"\x1b[K")
	assert.Contains(t, out, "sent 1 | recv 1 | loss 0.0%")
	assert.Contains(t, out, "min/avg/max 42.0/42.0/42.0 ms")
}

func TestAddResult_LostProbeFooter(t *testing.T) {
	r, ft := newGridRenderer(t, 3, 2, true)
	require.NoError(t, r.Init())
	ft.take()

	tracker := stats.NewTracker()
	res := lost()
	tracker.Add(res)
	require.NoError(t, r.AddResult(res, tracker.Summary()))

	out := ft.take()
	assert.Contains(t, out, "request timed out")
	assert.Contains(t, out, "sent 1 | recv 0 | loss 100.0%")
	assert.NotContains(t, out, "min/avg/max", "no latency summary before the first timed reply")
}

func TestFallback_FullFramePerUpdate(t *testing.T) {
	r, ft := newGridRenderer(t, 3, 2, false)
	require.NoError(t, r.Init())

	tracker := stats.NewTracker()
	for i := 0; i < 5; i++ {
		res := reply(10)
		tracker.Add(res)
		require.NoError(t, r.AddResult(res, tracker.Summary()))
	}

	out := ft.take()
	assert.NotContains(t, out, "\x1b[", "fallback mode never emits control sequences")
	assert.Equal(t, 5, strings.Count(out, "pingrid | 8.8.8.8"), "each update carries a complete frame")
	assert.Contains(t, out, "sent 5 | recv 5")

	// The last frame wraps five dots into grid-width rows: 3 then 2.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	var gridLines []string
	for _, l := range lines {
		if isGridRow(l) {
			gridLines = append(gridLines, l)
		}
	}
	require.NotEmpty(t, gridLines)
	last2 := gridLines[len(gridLines)-2:]
	assert.Equal(t, []string{"▁▁▁", "▁▁"}, last2)
}

func TestFallback_ModeLatchedAtConstruction(t *testing.T) {
	ft := &fakeTerm{width: 10, height: 6, interactive: false}
	r, err := New(ft, "8.8.8.8", time.Second)
	require.NoError(t, err)

	// Flipping the session's interactivity later must not flip the
	// renderer's mode.
	ft.interactive = true
	tracker := stats.NewTracker()
	res := reply(10)
	tracker.Add(res)
	require.NoError(t, r.AddResult(res, tracker.Summary()))

	assert.NotContains(t, ft.take(), "\x1b[")
}

func TestResize_ReplaysRetainedDots(t *testing.T) {
	r, ft := newGridRenderer(t, 3, 2, true)
	require.NoError(t, r.Init())

	tracker := stats.NewTracker()
	for _, rtt := range []float64{10, 60, 150, 300, 600, 10, 60, 150} {
		res := reply(rtt)
		tracker.Add(res)
		require.NoError(t, r.AddResult(res, tracker.Summary()))
	}
	ft.take()

	// Shrink to a 2x2 grid: the four most recent dots survive.
	ft.width = 2
	ft.height = 2 + headerRows + footerRows
	require.NoError(t, r.Resize())

	assert.Equal(t, 2, r.ring.Width())
	assert.Equal(t, 2, r.ring.Height())
	assert.Equal(t, 4, r.ring.Count())

	out := ft.take()
	assert.Contains(t, out, "\x1b[2J", "resize rebuilds the screen")
	assert.Contains(t, out, "\x1b[3;4r", "scroll region follows the new grid bounds")
	// Replay walks the same fill path as live updates: row-major from
	// the top, no scrolling since the kept dots fit the new capacity.
	for _, move := range []string{cursorTo(3, 1), cursorTo(3, 2), cursorTo(4, 1), cursorTo(4, 2)} {
		assert.Contains(t, out, move)
	}
	assert.NotContains(t, out, "\x1b[1S")
	assert.Contains(t, out, "sent 8", "footer comes back after replay")
}

func TestResize_SameSizeIsNoOp(t *testing.T) {
	r, ft := newGridRenderer(t, 3, 2, true)
	require.NoError(t, r.Init())
	ft.take()

	require.NoError(t, r.Resize())

	assert.Empty(t, ft.take(), "a resize event without a size change paints nothing")
}

func TestResize_EmptyHistory(t *testing.T) {
	r, ft := newGridRenderer(t, 3, 2, true)
	require.NoError(t, r.Init())
	ft.take()

	ft.width = 5
	require.NoError(t, r.Resize())

	out := ft.take()
	assert.Contains(t, out, "\x1b[2J", "the screen still re-inits")
	assert.NotContains(t, out, cursorTo(3, 1)+"▁", "nothing to replay")
}

func TestResize_FallbackIsNoOp(t *testing.T) {
	r, ft := newGridRenderer(t, 3, 2, false)

	ft.width = 7
	require.NoError(t, r.Resize())

	assert.Empty(t, ft.take())
	assert.Equal(t, 3, r.ring.Width(), "fallback dimensions stay fixed")
}

func TestClear_EmptiesRingAndRepaints(t *testing.T) {
	r, ft := newGridRenderer(t, 3, 2, true)
	require.NoError(t, r.Init())

	tracker := stats.NewTracker()
	for i := 0; i < 4; i++ {
		res := reply(10)
		tracker.Add(res)
		require.NoError(t, r.AddResult(res, tracker.Summary()))
	}
	ft.take()

	require.NoError(t, r.Clear())

	assert.Equal(t, 0, r.ring.Count())
	out := ft.take()
	assert.Contains(t, out, "\x1b[2J")
	assert.Contains(t, out, "pingrid | 8.8.8.8", "header repaints over the empty grid")
}

func TestClear_ThenRefillMatchesFreshRenderer(t *testing.T) {
	r, ft := newGridRenderer(t, 3, 2, true)
	require.NoError(t, r.Init())

	tracker := stats.NewTracker()
	for i := 0; i < 8; i++ {
		res := reply(10)
		tracker.Add(res)
		require.NoError(t, r.AddResult(res, tracker.Summary()))
	}
	require.NoError(t, r.Clear())
	tracker.Reset()
	ft.take()

	// After a clear the paint sequence restarts from the top-left cell,
	// exactly like a fresh session.
	res := reply(10)
	tracker.Add(res)
	require.NoError(t, r.AddResult(res, tracker.Summary()))
	assert.Contains(t, ft.take(), cursorTo(3, 1)+"▁")
}

func TestAddResult_WriteFailureIsFatal(t *testing.T) {
	r, ft := newGridRenderer(t, 3, 2, true)
	require.NoError(t, r.Init())

	ft.failErr = io.ErrClosedPipe
	tracker := stats.NewTracker()
	res := reply(10)
	tracker.Add(res)

	err := r.AddResult(res, tracker.Summary())

	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrClosedPipe)
	assert.Equal(t, 1, r.ring.Count(), "the dot is recorded even when the paint fails")
}
