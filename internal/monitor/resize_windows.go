//go:build windows

package monitor

import (
	"context"
	"time"

	"pingrid/internal/logger"
)

// watchResize polls the terminal size once a second and delivers a tick
// when it changes. Windows has no SIGWINCH; the console API would need
// a dedicated event reader, and a one-second poll is plenty for a
// display that repaints on every probe anyway.
func watchResize(ctx context.Context, s sizer, log logger.Logger) <-chan struct{} {
	resized := make(chan struct{}, 1)

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		width, height := s.Size()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w, h := s.Size()
				if w == width && h == height {
					continue
				}
				log.Debug("terminal resized %dx%d -> %dx%d", width, height, w, h)
				width, height = w, h
				select {
				case resized <- struct{}{}:
				default:
				}
			}
		}
	}()

	return resized
}
