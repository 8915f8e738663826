package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DurationOrDefault parses a duration string and falls back to defaultValue
// when value is empty. A bare integer is read as seconds, matching the unit
// of test.config.timeout in skill descriptors.
func DurationOrDefault(value string, defaultValue time.Duration) (time.Duration, error) {
	candidate := strings.TrimSpace(value)
	if candidate == "" {
		return defaultValue, nil
	}

	if secs, err := strconv.Atoi(candidate); err == nil {
		if secs < 0 {
			return 0, fmt.Errorf("duration %q must not be negative", candidate)
		}
		return time.Duration(secs) * time.Second, nil
	}

	d, err := time.ParseDuration(candidate)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", candidate, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("duration %q must not be negative", candidate)
	}
	return d, nil
}
