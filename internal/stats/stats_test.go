package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pingrid/internal/probe"
)

func reply(rtt float64) probe.Result {
	return probe.Result{Success: true, RTT: rtt, HasRTT: true}
}

func lost() probe.Result {
	return probe.Result{Success: false, ErrorMessage: "request timed out"}
}

func TestTracker_Empty(t *testing.T) {
	tr := NewTracker()
	s := tr.Summary()

	assert.Equal(t, 0, s.Sent)
	assert.Equal(t, 0, s.Received)
	assert.Equal(t, 0, s.Lost)
	assert.Equal(t, float64(0), s.LossPercent)
	assert.False(t, s.HasLatency)

	_, ok := tr.Last()
	assert.False(t, ok)
}

func TestTracker_Aggregates(t *testing.T) {
	tr := NewTracker()

	tr.Add(reply(20))
	tr.Add(reply(40))
	tr.Add(lost())
	tr.Add(reply(60))

	s := tr.Summary()

	assert.Equal(t, 4, s.Sent)
	assert.Equal(t, 3, s.Received)
	assert.Equal(t, 1, s.Lost)
	assert.InDelta(t, 25.0, s.LossPercent, 0.001)

	require.True(t, s.HasLatency)
	assert.InDelta(t, 20.0, s.Min, 0.001)
	assert.InDelta(t, 60.0, s.Max, 0.001)
	assert.InDelta(t, 40.0, s.Avg, 0.001)
}

func TestTracker_AllLost(t *testing.T) {
	tr := NewTracker()

	tr.Add(lost())
	tr.Add(lost())

	s := tr.Summary()

	assert.Equal(t, 2, s.Sent)
	assert.Equal(t, 0, s.Received)
	assert.InDelta(t, 100.0, s.LossPercent, 0.001)
	assert.False(t, s.HasLatency, "no timed replies means no latency stats")
}

func TestTracker_ReplyWithoutTime(t *testing.T) {
	tr := NewTracker()

	// A reply arrived but its time could not be parsed: it counts as
	// received, yet contributes nothing to the latency aggregates.
	tr.Add(probe.Result{Success: true, HasRTT: false})

	s := tr.Summary()

	assert.Equal(t, 1, s.Received)
	assert.Equal(t, 0, s.Lost)
	assert.False(t, s.HasLatency)
}

func TestTracker_SingleReply(t *testing.T) {
	tr := NewTracker()
	tr.Add(reply(33.3))

	s := tr.Summary()

	assert.InDelta(t, 33.3, s.Min, 0.001)
	assert.InDelta(t, 33.3, s.Max, 0.001)
	assert.InDelta(t, 33.3, s.Avg, 0.001)
}

func TestTracker_Last(t *testing.T) {
	tr := NewTracker()

	tr.Add(reply(10))
	tr.Add(lost())

	last, ok := tr.Last()
	require.True(t, ok)
	assert.False(t, last.Success)
	assert.Equal(t, "request timed out", last.ErrorMessage)
}

func TestTracker_RTTs(t *testing.T) {
	tr := NewTracker()

	tr.Add(reply(10))
	tr.Add(lost())
	tr.Add(reply(30))

	rtts := tr.RTTs()
	assert.Equal(t, []float64{10, 30}, rtts, "lost probes have no round-trip time")

	// Returned slice is a copy.
	rtts[0] = 999
	assert.Equal(t, []float64{10, 30}, tr.RTTs())
}

func TestTracker_RTTHistoryBounded(t *testing.T) {
	tr := NewTracker()

	for i := 0; i < maxRTTHistory+100; i++ {
		tr.Add(reply(float64(i)))
	}

	rtts := tr.RTTs()
	require.Len(t, rtts, maxRTTHistory)
	// The retained window is the most recent one.
	assert.Equal(t, float64(100), rtts[0])
	assert.Equal(t, float64(maxRTTHistory+99), rtts[len(rtts)-1])

	// Aggregates still cover the whole session.
	assert.Equal(t, maxRTTHistory+100, tr.Summary().Sent)
	assert.InDelta(t, 0.0, tr.Summary().Min, 0.001)
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker()

	tr.Add(reply(10))
	tr.Add(lost())
	tr.Reset()

	s := tr.Summary()
	assert.Equal(t, 0, s.Sent)
	assert.False(t, s.HasLatency)
	assert.Empty(t, tr.RTTs())

	_, ok := tr.Last()
	assert.False(t, ok)
}

func TestTracker_LossPercentPrecision(t *testing.T) {
	tr := NewTracker()

	for i := 0; i < 11; i++ {
		tr.Add(reply(10))
	}
	tr.Add(lost())

	s := tr.Summary()
	assert.InDelta(t, 100.0/12.0, s.LossPercent, 0.001)
}
