// Package history keeps the classified probe results that are currently
// on screen. The buffer is a fixed-capacity ring laid out on a
// width×height grid: writes walk the grid left to right, top to bottom,
// and once every cell has been used they recycle the slot of the oldest
// dot. Consumers translate write counts into grid coordinates with
// PositionFor, so the ring itself never touches the terminal.
package history

import (
	"fmt"

	"pingrid/internal/classify"
	"pingrid/internal/errors"
	"pingrid/internal/probe"
)

// Ring is the bounded store of classified dots for one grid geometry.
// It is not safe for concurrent use; the monitor loop serializes access.
type Ring struct {
	dots   []classify.Dot
	width  int
	height int
	writes uint64
}

// New creates a ring for a width×height grid. Both dimensions must be
// at least 1; invalid geometry is an error, never silently adjusted.
func New(width, height int) (*Ring, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New(errors.ErrDimensions,
			fmt.Sprintf("Invalid grid dimensions %dx%d", width, height),
			"Width and height must both be at least 1")
	}
	return &Ring{
		dots:   make([]classify.Dot, width*height),
		width:  width,
		height: height,
	}, nil
}

// Width returns the grid width in cells.
func (r *Ring) Width() int { return r.width }

// Height returns the grid height in rows.
func (r *Ring) Height() int { return r.height }

// Capacity returns the total number of cells.
func (r *Ring) Capacity() int { return len(r.dots) }

// Count returns how many dots are currently retained.
func (r *Ring) Count() int {
	if r.writes >= uint64(len(r.dots)) {
		return len(r.dots)
	}
	return int(r.writes)
}

// Append classifies a probe result, stores the dot (recycling the oldest
// slot once the ring is full), and returns the dot together with its
// 1-based write count.
func (r *Ring) Append(sample probe.Result) (classify.Dot, uint64) {
	dot := classify.Render(sample)
	r.dots[r.writes%uint64(len(r.dots))] = dot
	r.writes++
	return dot, r.writes
}

// PositionFor maps a write count n (1-based, n >= 1) to grid
// coordinates. col and row are 0-based. wrapped reports that this write
// recycled a slot and starts a new pass across the top row, which is
// exactly when n exceeds capacity and lands in column zero.
func (r *Ring) PositionFor(n uint64) (col, row int, wrapped bool) {
	w := uint64(r.width)
	h := uint64(r.height)
	col = int((n - 1) % w)
	row = int(((n - 1) / w) % h)
	wrapped = n > uint64(len(r.dots)) && col == 0
	return col, row, wrapped
}

// Snapshot returns the retained dots oldest-first. The slice is freshly
// allocated; callers may keep it across later writes.
func (r *Ring) Snapshot() []classify.Dot {
	count := r.Count()
	out := make([]classify.Dot, count)

	capacity := len(r.dots)
	start := 0
	if r.writes > uint64(capacity) {
		start = int(r.writes % uint64(capacity))
	}
	for i := 0; i < count; i++ {
		out[i] = r.dots[(start+i)%capacity]
	}
	return out
}

// Resize re-lays the ring onto a new grid geometry. The most recent dots
// that fit the new capacity are kept in their original relative order
// and renumbered from write count 1; everything older is dropped. The
// same geometry rules as New apply.
func (r *Ring) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New(errors.ErrDimensions,
			fmt.Sprintf("Invalid grid dimensions %dx%d", width, height),
			"Width and height must both be at least 1")
	}

	keep := r.Snapshot()
	newCap := width * height
	if len(keep) > newCap {
		keep = keep[len(keep)-newCap:]
	}

	r.dots = make([]classify.Dot, newCap)
	r.width = width
	r.height = height
	r.writes = 0
	for _, dot := range keep {
		r.dots[r.writes] = dot
		r.writes++
	}
	return nil
}

// Clear empties the ring. Old cell contents are not zeroed; they become
// unreachable because the write count restarts.
func (r *Ring) Clear() {
	r.writes = 0
}
