// Package stats aggregates probe results into the running counters the
// footer and the end-of-run summary display.
package stats

import "pingrid/internal/probe"

// maxRTTHistory bounds the retained per-sample times. Aggregates cover
// the whole session; the raw values only feed the summary sparkline, so
// a recent window is enough even for runs that last days.
const maxRTTHistory = 512

// Tracker accumulates counts and round-trip extremes for one monitoring
// session. It is not safe for concurrent use; the monitor loop owns it.
type Tracker struct {
	sent     int
	received int
	rttCount int
	min      float64
	max      float64
	sum      float64
	rtts     []float64
	last     probe.Result
	hasLast  bool
}

// Summary is a point-in-time view of the tracker.
type Summary struct {
	Sent        int
	Received    int
	Lost        int
	LossPercent float64
	Min         float64 // milliseconds
	Avg         float64
	Max         float64
	HasLatency  bool // false until at least one timed reply arrived
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Add records one probe result. Replies count as received whether or not
// their time could be parsed; only timed replies feed the latency stats.
func (t *Tracker) Add(r probe.Result) {
	t.sent++
	t.last = r
	t.hasLast = true

	if r.Success {
		t.received++
	}
	if !r.HasRTT {
		return
	}

	if t.rttCount == 0 || r.RTT < t.min {
		t.min = r.RTT
	}
	if t.rttCount == 0 || r.RTT > t.max {
		t.max = r.RTT
	}
	t.sum += r.RTT
	t.rttCount++

	t.rtts = append(t.rtts, r.RTT)
	if len(t.rtts) > maxRTTHistory {
		copy(t.rtts, t.rtts[len(t.rtts)-maxRTTHistory:])
		t.rtts = t.rtts[:maxRTTHistory]
	}
}

// Summary returns the current aggregate view.
func (t *Tracker) Summary() Summary {
	s := Summary{
		Sent:     t.sent,
		Received: t.received,
		Lost:     t.sent - t.received,
	}
	if t.sent > 0 {
		s.LossPercent = float64(s.Lost) / float64(t.sent) * 100
	}
	if t.rttCount > 0 {
		s.HasLatency = true
		s.Min = t.min
		s.Max = t.max
		s.Avg = t.sum / float64(t.rttCount)
	}
	return s
}

// Last returns the most recently recorded result. The boolean reports
// whether anything has been recorded since the last reset.
func (t *Tracker) Last() (probe.Result, bool) {
	return t.last, t.hasLast
}

// RTTs returns every recorded round-trip time in arrival order, for
// sparkline rendering. The slice is freshly allocated.
func (t *Tracker) RTTs() []float64 {
	out := make([]float64, len(t.rtts))
	copy(out, t.rtts)
	return out
}

// Reset drops all recorded state, returning the tracker to empty.
func (t *Tracker) Reset() {
	*t = Tracker{}
}
