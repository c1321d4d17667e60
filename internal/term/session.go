package term

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	xterm "golang.org/x/term"

	"pingrid/internal/errors"
	"pingrid/internal/logger"
)

// Fallback dimensions used when the output cannot report a size.
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

// Session owns one output stream and the display state attached to it:
// whether the alternate screen is active and whether the cursor is
// hidden. The toggles are idempotent, so Restore can run on every exit
// path without double-emitting sequences.
//
// Sessions are driven from a single goroutine; they hold no locks.
type Session struct {
	out          io.Writer
	fd           int
	interactive  bool
	width        int // fixed dimensions for writer-backed sessions
	height       int
	altScreen    bool
	cursorHidden bool
	log          logger.Logger
}

// NewSession creates a session for the given file, typically os.Stdout.
// Interactivity and dimensions are detected from the file descriptor.
func NewSession(f *os.File) *Session {
	fd := int(f.Fd())
	return &Session{
		out:         f,
		fd:          fd,
		interactive: xterm.IsTerminal(fd),
		log:         logger.NewEnvLogger("[term]"),
	}
}

// NewSessionWriter creates a session over an arbitrary writer with fixed
// dimensions and a forced interactivity mode. Captured output and tests
// use this; there is no file descriptor to interrogate.
func NewSessionWriter(w io.Writer, width, height int, interactive bool) *Session {
	return &Session{
		out:         w,
		fd:          -1,
		interactive: interactive,
		width:       width,
		height:      height,
		log:         logger.Noop(),
	}
}

// SetLogger replaces the session's logger.
func (s *Session) SetLogger(l logger.Logger) {
	s.log = l
}

// IsInteractive reports whether the output supports cursor addressing.
func (s *Session) IsInteractive() bool {
	return s.interactive
}

// Size returns the terminal dimensions in cells. When the output cannot
// report a size (redirected to a file, for instance) it falls back to
// 80x24 so layout math always has something to work with.
func (s *Session) Size() (width, height int) {
	if s.fd >= 0 {
		if w, h, err := xterm.GetSize(s.fd); err == nil && w > 0 && h > 0 {
			return w, h
		}
	}
	if s.width > 0 && s.height > 0 {
		return s.width, s.height
	}
	return FallbackWidth, FallbackHeight
}

// WriteString writes raw bytes to the output. All display writes funnel
// through here so a broken stream surfaces as one error kind.
func (s *Session) WriteString(seq string) error {
	if _, err := io.WriteString(s.out, seq); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerm,
			"Terminal write failed",
			"The output stream is closed or broken; the display cannot continue")
	}
	return nil
}

// EnterAltScreen switches to the alternate screen buffer. It does
// nothing on non-interactive outputs or when already active.
func (s *Session) EnterAltScreen() error {
	if !s.interactive || s.altScreen {
		return nil
	}
	if err := s.WriteString(termenv.CSI + termenv.AltScreenSeq); err != nil {
		return err
	}
	s.altScreen = true
	return nil
}

// ExitAltScreen returns to the normal screen buffer. It does nothing
// when the alternate screen is not active.
func (s *Session) ExitAltScreen() error {
	if !s.interactive || !s.altScreen {
		return nil
	}
	if err := s.WriteString(termenv.CSI + termenv.ExitAltScreenSeq); err != nil {
		return err
	}
	s.altScreen = false
	return nil
}

// HideCursor makes the cursor invisible. It does nothing on
// non-interactive outputs or when already hidden.
func (s *Session) HideCursor() error {
	if !s.interactive || s.cursorHidden {
		return nil
	}
	if err := s.WriteString(termenv.CSI + termenv.HideCursorSeq); err != nil {
		return err
	}
	s.cursorHidden = true
	return nil
}

// ShowCursor makes the cursor visible again. It does nothing when the
// cursor is not hidden.
func (s *Session) ShowCursor() error {
	if !s.interactive || !s.cursorHidden {
		return nil
	}
	if err := s.WriteString(termenv.CSI + termenv.ShowCursorSeq); err != nil {
		return err
	}
	s.cursorHidden = false
	return nil
}

// Restore unwinds every display mode this session turned on: scroll
// region, cursor visibility, alternate screen. It is safe to call more
// than once and on every exit path, including signal-driven ones. Write
// failures are logged and otherwise ignored; there is nothing more to
// do with a terminal we cannot write to.
func (s *Session) Restore() {
	if !s.interactive {
		return
	}
	if !s.altScreen && !s.cursorHidden {
		return
	}

	// Reset the scroll region while the alternate screen is still
	// active, then unwind the toggles in reverse order of entry.
	if err := s.WriteString(ResetScrollRegion()); err != nil {
		s.log.Debug("restore: reset scroll region: %v", err)
	}
	if err := s.ShowCursor(); err != nil {
		s.log.Debug("restore: show cursor: %v", err)
	}
	if err := s.ExitAltScreen(); err != nil {
		s.log.Debug("restore: exit alt screen: %v", err)
	}
}
