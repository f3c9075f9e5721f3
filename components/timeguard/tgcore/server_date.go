package tgcore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/open-control-systems/clock-guard/components/status"
)

// ServerDateLayout is the wire format of the time server "date" field:
// yyyy-MM-dd hh:mm:ss AM/PM, 12-hour clock.
const ServerDateLayout = "2006-01-02 03:04:05 PM"

// ServerDateField is the JSON field carrying the server date.
const ServerDateField = "date"

// FormatServerDate formats t in loc the way the time server does.
func FormatServerDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(ServerDateLayout)
}

// ParseServerDate strictly parses the server date in loc.
func ParseServerDate(value string, loc *time.Location) (time.Time, error) {
	ts, err := time.ParseInLocation(ServerDateLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid server date: value=%q: %v: %w",
			value, err, status.StatusInvalidState)
	}

	return ts, nil
}

// DecodeServerDate extracts and parses the date from the time server reply.
func DecodeServerDate(body []byte, loc *time.Location) (time.Time, error) {
	if len(body) == 0 {
		return time.Time{}, fmt.Errorf("empty server reply: %w", status.StatusNoData)
	}

	var js map[string]any
	if err := json.Unmarshal(body, &js); err != nil {
		return time.Time{}, fmt.Errorf("server reply isn't a JSON object: %v: %w",
			err, status.StatusInvalidState)
	}

	field, ok := js[ServerDateField]
	if !ok {
		return time.Time{}, fmt.Errorf("server reply misses %q field: %w",
			ServerDateField, status.StatusInvalidState)
	}

	value, ok := field.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid type for %q field: %w",
			ServerDateField, status.StatusInvalidState)
	}

	return ParseServerDate(value, loc)
}
