package checklist

import (
	"fmt"
	"time"
)

var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// ParseTimestamp accepts the datetime-local formats sent by the capture form.
func ParseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// TotalDuration returns the whole seconds between dateIn and dateOut.
// Unparsable input or a date-out before date-in yields zero.
func TotalDuration(dateIn, dateOut string) int64 {
	in, err := ParseTimestamp(dateIn)
	if err != nil {
		return 0
	}
	out, err := ParseTimestamp(dateOut)
	if err != nil {
		return 0
	}
	if out.Before(in) {
		return 0
	}
	return int64(out.Sub(in) / time.Second)
}

// FormatDuration renders seconds as HH:MM:SS; hours are not capped at 24.
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}
