package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidClock    = errors.New("invalid clock value")
	ErrInvalidInterval = errors.New("invalid time interval")
)

// Clock is a wall-clock time expressed as minutes since midnight
type Clock uint16

const minutesPerDay = 24 * 60

func NewClock(hour, minute int) (Clock, error) {
	if hour < 0 || hour >= 24 || minute < 0 || minute >= 60 {
		return 0, fmt.Errorf("%w: %02d:%02d", ErrInvalidClock, hour, minute)
	}
	return Clock(hour*60 + minute), nil
}

// Parses a clock in the "HH:MM" format (a single-digit hour is accepted)
func ParseClock(value string) (Clock, error) {
	hourStr, minuteStr, ok := strings.Cut(strings.TrimSpace(value), ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil || len(minuteStr) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}

	return NewClock(hour, minute)
}

func (clock Clock) Hour() int   { return int(clock) / 60 }
func (clock Clock) Minute() int { return int(clock) % 60 }

func (clock Clock) String() string {
	return fmt.Sprintf("%02d:%02d", clock.Hour(), clock.Minute())
}

// TimeInterval is a half-open [Start, End) range within a single day
type TimeInterval struct {
	Start Clock
	End   Clock
}

func NewTimeInterval(start, end Clock) (TimeInterval, error) {
	if start >= end || end > minutesPerDay {
		return TimeInterval{}, fmt.Errorf("%w: %v-%v", ErrInvalidInterval, start, end)
	}
	return TimeInterval{Start: start, End: end}, nil
}

// Parses an interval in the "HH:MM-HH:MM" format
func ParseTimeInterval(value string) (TimeInterval, error) {
	startStr, endStr, ok := strings.Cut(value, "-")
	if !ok {
		return TimeInterval{}, fmt.Errorf("%w: %q", ErrInvalidInterval, value)
	}

	start, err := ParseClock(startStr)
	if err != nil {
		return TimeInterval{}, fmt.Errorf("%w: %w", ErrInvalidInterval, err)
	}
	end, err := ParseClock(endStr)
	if err != nil {
		return TimeInterval{}, fmt.Errorf("%w: %w", ErrInvalidInterval, err)
	}

	return NewTimeInterval(start, end)
}

// MustTimeInterval is like ParseTimeInterval but panics on malformed input. Intended for tests and literals
func MustTimeInterval(value string) TimeInterval {
	interval, err := ParseTimeInterval(value)
	if err != nil {
		panic(err)
	}
	return interval
}

// Touching endpoints do not overlap
func (interval TimeInterval) Overlaps(other TimeInterval) bool {
	return !(interval.End <= other.Start || other.End <= interval.Start)
}

func (interval TimeInterval) String() string {
	return fmt.Sprintf("%v-%v", interval.Start, interval.End)
}
