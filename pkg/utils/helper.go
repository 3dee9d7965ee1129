package utils

import (
	"strconv"
	"strings"
)

// ParseInt reads a positive integer query value, falling back to defaultValue
func ParseInt(value string, defaultValue int) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || result < 1 {
		return defaultValue
	}
	return result
}

// SplitFullName splits "Jane Mary Doe" into "Jane" and "Mary Doe".
func SplitFullName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
