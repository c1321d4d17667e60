// Package ui provides terminal UI components for pingrid's CLI output.
//
// The package includes the spinner, sparkline rendering, and styled text
// output using the Lip Gloss library for consistent terminal styling
// across all commands. The live monitoring grid does not live here; it
// has its own renderer that paints cells directly.
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)      - Excellent latency, successful operations
//	ColorInfo      (cyan)       - Good latency, informational messages
//	ColorWarning   (yellow)     - Fair latency, warnings and skipped items
//	ColorPoor      (magenta)    - Poor latency
//	ColorError     (red)        - Very poor latency, failures
//	ColorFailed    (bright red) - Lost probes
//	ColorMuted     (gray)       - Secondary text, timing info
//	ColorSecondary (blue)       - In-progress indicators
//
// Use DisableColors() for monochrome output (--color never) and
// ForceColors() to keep colors when piping (--color always).
//
// # Symbols
//
// Unicode symbols provide visual status indicators:
//
//	SymbolSuccess  (checkmark)  - Step completed successfully
//	SymbolFail     (X)          - Step failed, probe lost
//	SymbolWarning  (warning)    - Non-fatal problem
//	SymbolPending  (circle)     - Step not yet started
//	SymbolComplete (filled)     - Step done (alternative)
//	SymbolSkipped  (slashed)    - Step skipped
//
// # Spinner Usage
//
// The Spinner type provides an animated indicator for operations:
//
//	s := ui.NewSpinner("Testing reachability")
//	s.Start()
//	// ... do work ...
//	s.Success() // or s.Fail() or s.Skip()
//
// The spinner handles terminal output, clearing lines, and timing display.
//
// # Sparklines
//
// RenderSparkline turns a series of round-trip times into a compact
// block-character graph for the end-of-run summary:
//
//	ui.RenderSparkline(rtts, 40, color)  // ▁▂▃▅█▅▃▂▁
package ui
