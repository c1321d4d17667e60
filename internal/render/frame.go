package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pingrid/internal/classify"
	"pingrid/internal/probe"
	"pingrid/internal/stats"
	"pingrid/internal/ui"
)

// titleLine renders the header: the program name, the target, and the
// probe cadence.
func (r *Renderer) titleLine() string {
	name := lipgloss.NewStyle().Foreground(ui.ColorInfo).Bold(true).Render("pingrid")
	rest := ui.MutedStyle().Render(fmt.Sprintf(" | %s | every %s", r.target, r.interval))
	return name + rest
}

// legendLine maps each glyph to the latency band it stands for.
func legendLine() string {
	entries := []struct {
		cat   classify.Category
		label string
	}{
		{classify.Excellent, fmt.Sprintf("<%.0fms", classify.ExcellentBelow)},
		{classify.Good, fmt.Sprintf("<%.0fms", classify.GoodBelow)},
		{classify.Fair, fmt.Sprintf("<%.0fms", classify.FairBelow)},
		{classify.Poor, fmt.Sprintf("<%.0fms", classify.PoorBelow)},
		{classify.VeryPoor, fmt.Sprintf("≥%.0fms", classify.PoorBelow)},
		{classify.Failed, "lost"},
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.cat.Style().Render(e.cat.Glyph())+" "+e.label)
	}
	return strings.Join(parts, "  ")
}

// latestLine describes the most recent probe: a timestamp plus either
// the round-trip time (painted in its category color) or the failure
// reason.
func latestLine(res probe.Result) string {
	ts := res.Timestamp.Format("15:04:05")
	if res.Success && res.HasRTT {
		cat := classify.Classify(res)
		rtt := cat.Style().Render(fmt.Sprintf("%.1f ms", res.RTT))
		return fmt.Sprintf("%s %s  %s", ui.SuccessStyle().Render(ui.SymbolSuccess), ts, rtt)
	}
	reason := res.ErrorMessage
	if reason == "" {
		reason = "no reply"
	}
	return fmt.Sprintf("%s %s  %s", ui.ErrorStyle().Render(ui.SymbolFail), ts, reason)
}

// statsLine summarizes the session counters on one line.
func statsLine(sum stats.Summary) string {
	loss := fmt.Sprintf("%.1f%%", sum.LossPercent)
	if sum.Lost > 0 {
		loss = ui.ErrorStyle().Render(loss)
	} else {
		loss = ui.SuccessStyle().Render(loss)
	}
	line := fmt.Sprintf("sent %d | recv %d | loss %s", sum.Sent, sum.Received, loss)
	if sum.HasLatency {
		line += fmt.Sprintf(" | min/avg/max %.1f/%.1f/%.1f ms", sum.Min, sum.Avg, sum.Max)
	}
	return line
}

// writeFrame emits one complete plain-text frame for outputs without
// cursor addressing: header, the retained dots wrapped into grid-width
// rows, and the footer lines. No absolute positioning, ever; frames
// just follow one another down the stream.
func (r *Renderer) writeFrame() error {
	var b strings.Builder
	b.WriteString(r.titleLine())
	b.WriteString("\n")
	b.WriteString(legendLine())
	b.WriteString("\n")

	dots := r.ring.Snapshot()
	width := r.ring.Width()
	for i := 0; i < len(dots); i += width {
		end := i + width
		if end > len(dots) {
			end = len(dots)
		}
		for _, dot := range dots[i:end] {
			b.WriteString(dot.Rendered)
		}
		b.WriteString("\n")
	}

	if r.hasLast {
		b.WriteString(latestLine(r.last))
		b.WriteString("\n")
	}
	b.WriteString(statsLine(r.summary))
	b.WriteString("\n\n")
	return r.term.WriteString(b.String())
}
