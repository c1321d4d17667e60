package cli

import (
	"fmt"
	"time"

	"pingrid/internal/errors"
)

// ParseInterval parses the --interval flag into a duration.
// Returns zero for an empty flag, meaning "not set".
func ParseInterval(flag string) (time.Duration, error) {
	if flag == "" {
		return 0, nil
	}

	duration, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid interval", flag),
			"Try something like 1s, 500ms, or 5s.")
	}
	return duration, nil
}

// ParseTimeout parses the --timeout flag into a duration.
// Returns zero for an empty flag, meaning "not set".
func ParseTimeout(flag string) (time.Duration, error) {
	if flag == "" {
		return 0, nil
	}

	duration, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid timeout", flag),
			"Try something like 2s or 5s.")
	}
	return duration, nil
}
