package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTime converts a clock-style time string into total seconds.
// Accepted shapes are "SS", "MM:SS" and "HH:MM:SS", where each
// component may be fractional ("1:30.5").
func ParseTime(input string) (float64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty time string", ErrInvalidFormat)
	}

	parts := strings.Split(trimmed, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q has too many components", ErrInvalidFormat, input)
	}

	values := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: non-numeric component %q in %q", ErrInvalidFormat, part, input)
		}
		values[i] = v
	}

	switch len(values) {
	case 1:
		return values[0], nil
	case 2:
		return values[0]*60 + values[1], nil
	default:
		return values[0]*3600 + values[1]*60 + values[2], nil
	}
}
