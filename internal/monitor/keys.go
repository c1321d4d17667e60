package monitor

import (
	"os"
	"sync"

	xterm "golang.org/x/term"

	"pingrid/internal/logger"
)

// keyCtrlC is what Ctrl-C reads as once the terminal is raw and ISIG
// is off.
const keyCtrlC = 0x03

// watchKeys switches the input to raw mode and streams single bytes on
// the returned channel. The stop function restores the terminal state;
// it is safe to call more than once.
//
// When the input is nil, not a terminal, or cannot go raw, the channel
// is nil: receiving from it blocks forever, which is exactly what the
// event loop wants.
func watchKeys(in *os.File, log logger.Logger) (<-chan byte, func()) {
	if in == nil {
		return nil, func() {}
	}

	fd := int(in.Fd())
	if !xterm.IsTerminal(fd) {
		return nil, func() {}
	}

	oldState, err := xterm.MakeRaw(fd)
	if err != nil {
		log.Debug("raw mode unavailable: %v", err)
		return nil, func() {}
	}

	keys := make(chan byte, 8)
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := in.Read(buf)
			if err != nil {
				return
			}
			if n == 0 {
				continue
			}
			select {
			case keys <- buf[0]:
			default:
				// The loop is behind; dropping a keypress beats
				// blocking the reader.
			}
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			if err := xterm.Restore(fd, oldState); err != nil {
				log.Debug("restore input state: %v", err)
			}
		})
	}
	return keys, stop
}
