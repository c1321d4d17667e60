package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Step completed successfully
	SymbolFail     = "✗" // Step failed, or a probe was lost
	SymbolWarning  = "⚠" // Something non-fatal needs attention
	SymbolPending  = "○" // Step not yet started
	SymbolComplete = "●" // Step done (alternative to success)
	SymbolSkipped  = "⊘" // Step skipped
)
