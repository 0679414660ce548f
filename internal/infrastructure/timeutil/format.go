package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Layouts accepted for provider timestamps. Providers send the airport's
// local wall-clock time, usually without an offset.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02T15:04",
}

// ParseTimestamp parses a provider timestamp, keeping its wall-clock fields.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatTime formats a time as HH:MM (24-hour, zero-padded).
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// isoDurationRegex matches the day/time subset of ISO 8601 durations
// that flight providers emit, e.g. "PT5H30M" or "P1DT2H".
var isoDurationRegex = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// ParseISODuration converts an ISO 8601 duration into whole minutes.
// Seconds are truncated.
func ParseISODuration(value string) (int, error) {
	m := isoDurationRegex.FindStringSubmatch(value)
	if m == nil || value == "P" || value == "PT" {
		return 0, fmt.Errorf("invalid ISO 8601 duration %q", value)
	}

	part := func(s string) int {
		if s == "" {
			return 0
		}
		n, _ := strconv.Atoi(s)
		return n
	}

	days, hours, minutes := part(m[1]), part(m[2]), part(m[3])
	return days*24*60 + hours*60 + minutes, nil
}
