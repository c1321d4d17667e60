package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pingrid/internal/stats"
	"pingrid/internal/ui"
)

// sparklineWidth caps the closing latency sparkline.
const sparklineWidth = 60

// FormatSummary renders the closing statistics block printed after the
// display is torn down, in the shape ping users already know. It ends
// without a trailing newline; the caller decides how to print it.
func FormatSummary(target string, sum stats.Summary, rtts []float64) string {
	var sb strings.Builder

	sb.WriteString(ui.MutedStyle().Render(fmt.Sprintf("--- %s ping statistics ---", target)))
	sb.WriteString("\n")

	lossStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	if sum.Lost > 0 {
		lossStyle = lipgloss.NewStyle().Foreground(ui.ColorError)
	}
	probeWord := "probes"
	if sum.Sent == 1 {
		probeWord = "probe"
	}
	sb.WriteString(fmt.Sprintf("%d %s sent, %d received, %s",
		sum.Sent, probeWord, sum.Received,
		lossStyle.Render(fmt.Sprintf("%.1f%% loss", sum.LossPercent))))

	if sum.HasLatency {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("round-trip min/avg/max %.1f/%.1f/%.1f ms",
			sum.Min, sum.Avg, sum.Max))
	}

	if spark := ui.RenderSparkline(rtts, sparklineWidth, ui.ColorInfo); spark != "" {
		sb.WriteString("\n")
		sb.WriteString(ui.MutedStyle().Render("latency  "))
		sb.WriteString(spark)
	}

	return sb.String()
}
