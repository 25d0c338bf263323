package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseID converts a path or form value to a positive record id.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	return id, nil
}

// StringPtr returns nil for blank input so optional columns store NULL.
func StringPtr(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

// StringValue dereferences an optional column.
func StringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// ParseBool reads an HTML checkbox value.
func ParseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "y", "yes", "on", "true", "1":
		return true
	}
	return false
}
