package config

import (
	"strconv"
	"strings"
	"time"
)

// ParseTimestamp parses a timestamp value (unix seconds or RFC3339).
// An empty input yields the zero time.
func ParseTimestamp(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, nil
	}

	if isNumeric(input) {
		val, err := strconv.ParseInt(input, 10, 64)
		if err != nil {
			return time.Time{}, err
		}
		return time.Unix(val, 0).UTC(), nil
	}

	return time.Parse(time.RFC3339, input)
}

func isNumeric(input string) bool {
	for _, r := range input {
		if r < '0' || r > '9' {
			return false
		}
	}
	return input != ""
}
