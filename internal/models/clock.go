package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockMinutes parses an "HH:MM" time-of-day into minutes since midnight.
func ClockMinutes(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}

// WindowMinutes returns end minus start for two "HH:MM" times.
// A non-positive result means the window is invalid.
func WindowMinutes(start, end string) (int, error) {
	s, err := ClockMinutes(start)
	if err != nil {
		return 0, err
	}
	e, err := ClockMinutes(end)
	if err != nil {
		return 0, err
	}
	return e - s, nil
}
