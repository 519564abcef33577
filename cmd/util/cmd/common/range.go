package common

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFromTo parses an inclusive height range, such as 1000-2000.
func ParseFromTo(fromTo string) (from, to uint64, err error) {
	parts := strings.Split(fromTo, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid format: expected 'from-to', got '%s'", fromTo)
	}

	from, err = strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid 'from' value: %w", err)
	}

	to, err = strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid 'to' value: %w", err)
	}

	if from > to {
		return 0, 0, fmt.Errorf("'from' value (%d) must be less than or equal to 'to' value (%d)", from, to)
	}

	return from, to, nil
}
