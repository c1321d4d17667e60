//go:build !windows

package monitor

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pingrid/internal/logger"
)

// watchResize delivers a tick whenever the terminal reports a new size.
// The single buffered slot coalesces bursts of SIGWINCH from a live
// drag into one repaint with the final dimensions.
func watchResize(ctx context.Context, _ sizer, _ logger.Logger) <-chan struct{} {
	resized := make(chan struct{}, 1)

	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)

	go func() {
		defer signal.Stop(winch)
		for {
			select {
			case <-ctx.Done():
				return
			case <-winch:
				select {
				case resized <- struct{}{}:
				default:
				}
			}
		}
	}()

	return resized
}
