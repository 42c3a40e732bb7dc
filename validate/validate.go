// Package validate contains the pure field parsers used by the dialog state
// machine. Each validator turns one raw text field into a typed value or
// rejects it with a sentinel error. Malformed input is a normal, expected
// outcome signaled via the error return; no validator panics.
package validate

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Ilya-36/planbot/core"
)

var (
	// ErrInvalidDateFormat rejects anything but a real YYYY-MM-DD date.
	ErrInvalidDateFormat = fmt.Errorf("invalid date format, expected YYYY-MM-DD")
	// ErrInvalidTimeFormat rejects anything but HH:MM-HH:MM with both halves
	// in 24-hour range.
	ErrInvalidTimeFormat = fmt.Errorf("invalid time format, expected HH:MM-HH:MM")
	// ErrInvalidIDFormat rejects non-decimal record ids.
	ErrInvalidIDFormat = fmt.Errorf("invalid id, expected a decimal number")
	// ErrEmptyText rejects empty or whitespace-only required text.
	ErrEmptyText = fmt.Errorf("text must not be empty")
)

const clockLayout = "15:04"

// Date parses a calendar date in YYYY-MM-DD form. Impossible dates (month
// 13, day 32) fail the same way as malformed strings.
func Date(raw string) (time.Time, error) {
	d, err := time.Parse(core.DateLayout, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return d, nil
}

// TimeRange parses HH:MM-HH:MM. Both halves must independently be valid
// 24-hour wall-clock times. Start < end is deliberately not enforced,
// matching the system's historical permissive behavior; callers that need
// ordering must check it themselves.
func TimeRange(raw string) (core.TimeRange, error) {
	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return core.TimeRange{}, ErrInvalidTimeFormat
	}
	start, err := clock(parts[0])
	if err != nil {
		return core.TimeRange{}, err
	}
	end, err := clock(parts[1])
	if err != nil {
		return core.TimeRange{}, err
	}
	return core.TimeRange{Start: start, End: end}, nil
}

func clock(raw string) (core.TimeOfDay, error) {
	t, err := time.Parse(clockLayout, raw)
	if err != nil {
		return core.TimeOfDay{}, ErrInvalidTimeFormat
	}
	return core.TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// Participants splits a comma-separated identifier list, trimming the
// surrounding whitespace of each entry. Any resulting list is accepted, even
// when individual entries trim down to empty strings ("alice,,bob" keeps all
// three); rejecting those is a business rule this layer does not own.
func Participants(raw string) ([]string, error) {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out, nil
}

// ID parses a decimal record id. Surrounding whitespace is tolerated.
func ID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidIDFormat
	}
	return id, nil
}

// Text accepts any non-empty text, rejecting whitespace-only input.
func Text(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrEmptyText
	}
	return raw, nil
}

// OptionalText trims the input and accepts it even when empty.
func OptionalText(raw string) (string, error) {
	return strings.TrimSpace(raw), nil
}
