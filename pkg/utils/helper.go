package utils

import (
	"strconv"
)

// ParseInt converts string to int with default value.
// Negative values fall back to the default, zero is allowed
// (skip=0 is the first page).
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 0 {
		return defaultValue
	}

	return result
}
