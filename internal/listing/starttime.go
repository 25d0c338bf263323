package listing

import (
	"fmt"
	"strings"
	"time"
)

// ParseError reports a show start time that could not be decoded.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid start time %q", e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }

var startTimeLayouts = []string{
	time.RFC3339Nano,
	DisplayLayout,
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseStartTime decodes a show start time. Values without a zone are read
// as UTC.
func ParseStartTime(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	var lastErr error
	for _, layout := range startTimeLayouts {
		t, err := time.Parse(layout, trimmed)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, &ParseError{Value: value, Err: lastErr}
}

// FormatStartTime renders t in UTC with DisplayLayout, the zone zoneless
// input is parsed in, so a time reads back as it was entered.
func FormatStartTime(t time.Time) string {
	return t.UTC().Format(DisplayLayout)
}
