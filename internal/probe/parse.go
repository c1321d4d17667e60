package probe

import (
	"regexp"
	"strconv"
)

// rttPatterns match the reply time in ping output across platforms:
// Linux/macOS per-reply lines ("time=23.4 ms"), Windows replies
// ("time=23ms", "time<1ms"), and the BSD summary line as a fallback.
var rttPatterns = []*regexp.Regexp{
	regexp.MustCompile(`time[=<]([0-9.]+)\s*ms`),
	regexp.MustCompile(`round-trip min/avg/max = [0-9.]+/([0-9.]+)/`),
}

// parseRTT extracts the round-trip time in milliseconds from raw ping
// output. The boolean reports whether a time was found.
func parseRTT(output string) (float64, bool) {
	for _, re := range rttPatterns {
		matches := re.FindStringSubmatch(output)
		if len(matches) > 1 {
			if rtt, err := strconv.ParseFloat(matches[1], 64); err == nil {
				return rtt, true
			}
		}
	}
	return 0, false
}
