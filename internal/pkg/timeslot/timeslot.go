// Package timeslot models recurring weekly time slots as a weekday plus a
// half-open [start, end) range of minutes within the day. Times are kept as
// minute-of-day integers so comparisons never depend on locale or timezone.
package timeslot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hoangle/english-center/internal/pkg/apperrors"
)

// Weekday is a day of the week, stored lowercase the way the API speaks it.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists all weekdays in Monday-first order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday parses a weekday name (case-insensitive).
func ParseWeekday(s string) (Weekday, error) {
	w := Weekday(strings.ToLower(strings.TrimSpace(s)))
	for _, d := range Weekdays {
		if w == d {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: unknown weekday %q", apperrors.ErrValidationFailed, s)
}

// Index returns the Monday-based position of the weekday (monday=0 .. sunday=6).
func (w Weekday) Index() int {
	for i, d := range Weekdays {
		if w == d {
			return i
		}
	}
	return -1
}

// ParseClock converts a "HH:MM" wall-clock string to a minute-of-day value.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: clock time must be HH:MM, got %q", apperrors.ErrValidationFailed, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: invalid hour in %q", apperrors.ErrValidationFailed, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: invalid minute in %q", apperrors.ErrValidationFailed, s)
	}
	return hour*60 + minute, nil
}

// FormatClock renders a minute-of-day value as "HH:MM".
func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// Slot is a recurring weekly slot: a weekday plus a half-open minute range.
type Slot struct {
	Weekday Weekday
	Start   int // minute of day, inclusive
	End     int // minute of day, exclusive
}

// New builds a slot, rejecting empty or inverted ranges.
func New(weekday Weekday, start, end int) (Slot, error) {
	if weekday.Index() < 0 {
		return Slot{}, fmt.Errorf("%w: unknown weekday %q", apperrors.ErrValidationFailed, weekday)
	}
	if start < 0 || end > 24*60 {
		return Slot{}, fmt.Errorf("%w: slot must fall within a single day", apperrors.ErrInvalidTimeRange)
	}
	if start >= end {
		return Slot{}, fmt.Errorf("%w: %s >= %s", apperrors.ErrInvalidTimeRange, FormatClock(start), FormatClock(end))
	}
	return Slot{Weekday: weekday, Start: start, End: end}, nil
}

// Overlaps reports whether two slots intersect. Ranges are half-open, so a
// slot ending at 08:30 does not overlap one starting at 08:30.
func (s Slot) Overlaps(other Slot) bool {
	if s.Weekday != other.Weekday {
		return false
	}
	return s.Start < other.End && other.Start < s.End
}

// String renders the slot for logs and error messages.
func (s Slot) String() string {
	return fmt.Sprintf("%s %s-%s", s.Weekday, FormatClock(s.Start), FormatClock(s.End))
}
