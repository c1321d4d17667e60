// Package classify buckets probe results into latency categories and
// binds each category to the glyph and color it paints with.
//
// The category ladder is ordered from best to worst. Lost probes and
// replies without a parseable time always land in Failed, so the grid
// never shows a reply it cannot honestly place.
package classify

import (
	"github.com/charmbracelet/lipgloss"

	"pingrid/internal/probe"
	"pingrid/internal/ui"
)

// Latency thresholds in milliseconds. A round-trip time strictly below a
// threshold belongs to that category; a time exactly on the boundary
// falls into the slower one.
const (
	ExcellentBelow = 50.0
	GoodBelow      = 100.0
	FairBelow      = 200.0
	PoorBelow      = 500.0
)

// Category is one rung of the latency ladder.
type Category int

const (
	Excellent Category = iota
	Good
	Fair
	Poor
	VeryPoor
	Failed
)

// categories in ladder order, for legends and iteration.
var categories = []Category{Excellent, Good, Fair, Poor, VeryPoor, Failed}

// Categories returns every category from best to worst.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// String returns the category name.
func (c Category) String() string {
	switch c {
	case Excellent:
		return "excellent"
	case Good:
		return "good"
	case Fair:
		return "fair"
	case Poor:
		return "poor"
	case VeryPoor:
		return "very poor"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Glyph returns the cell character for the category. Latency categories
// climb the block ramp; lost probes get a distinct mark.
func (c Category) Glyph() string {
	switch c {
	case Excellent:
		return "▁"
	case Good:
		return "▃"
	case Fair:
		return "▅"
	case Poor:
		return "▆"
	case VeryPoor:
		return "█"
	case Failed:
		return "✗"
	default:
		return "?"
	}
}

// Color returns the ANSI palette color for the category.
func (c Category) Color() lipgloss.Color {
	switch c {
	case Excellent:
		return ui.ColorSuccess
	case Good:
		return ui.ColorInfo
	case Fair:
		return ui.ColorWarning
	case Poor:
		return ui.ColorPoor
	case VeryPoor:
		return ui.ColorError
	case Failed:
		return ui.ColorFailed
	default:
		return ui.ColorMuted
	}
}

// Style returns a lipgloss style that paints in the category color.
func (c Category) Style() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c.Color())
}

// Classify places one probe result on the ladder. A probe that failed,
// or succeeded without a measurable round-trip time, is Failed.
func Classify(r probe.Result) Category {
	if !r.Success || !r.HasRTT {
		return Failed
	}
	return ForLatency(r.RTT)
}

// ForLatency places a bare round-trip time in milliseconds on the
// ladder. It never returns Failed; absence of a time is the caller's
// signal for that.
func ForLatency(ms float64) Category {
	switch {
	case ms < ExcellentBelow:
		return Excellent
	case ms < GoodBelow:
		return Good
	case ms < FairBelow:
		return Fair
	case ms < PoorBelow:
		return Poor
	default:
		return VeryPoor
	}
}

// Dot is a classified probe result ready to paint: the bare glyph, the
// same glyph with its color applied, and the sample it came from.
type Dot struct {
	Glyph    string
	Rendered string
	Category Category
	Sample   probe.Result
}

// Render classifies a probe result and produces its Dot.
func Render(r probe.Result) Dot {
	c := Classify(r)
	glyph := c.Glyph()
	return Dot{
		Glyph:    glyph,
		Rendered: c.Style().Render(glyph),
		Category: c,
		Sample:   r,
	}
}
