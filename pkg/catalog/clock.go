package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a time of day in minutes since midnight.
type Clock int

var (
	layouts12 = []string{
		"03:04 PM", "3:04 PM", "03:04PM", "3:04PM",
		"03:04:05 PM", "3:04:05 PM",
	}
	layouts24 = []string{"15:04", "15:04:05"}
)

// ParseClock parses a start or end time of a meeting. The 12-hour format
// with a meridiem marker is tried first, then the 24-hour format.
// Spreadsheet day fractions ("0.5625") are accepted as well, since some
// workbooks keep times as raw numbers.
func ParseClock(s string) (Clock, error) {
	raw := s
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, ".", "")
	if s == "" {
		return 0, fmt.Errorf("empty time value")
	}

	for _, l := range layouts12 {
		if t, err := time.Parse(l, s); err == nil {
			return fromTime(t), nil
		}
	}
	for _, l := range layouts24 {
		if t, err := time.Parse(l, s); err == nil {
			return fromTime(t), nil
		}
	}

	if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil &&
		f >= 0 && f < 1 && strings.Contains(raw, ".") {
		return Clock(f*24*60 + 0.5), nil
	}

	return 0, fmt.Errorf("cannot parse time %q", raw)
}

func fromTime(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

// Hour returns the hour component.
func (c Clock) Hour() int { return int(c) / 60 }

// Minute returns the minute component.
func (c Clock) Minute() int { return int(c) % 60 }

// String renders the clock as HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// SQL renders the clock as HH:MM:SS, the way times are stored.
func (c Clock) SQL() string {
	return c.String() + ":00"
}

// MustParseClock is ParseClock for literals known to be valid.
func MustParseClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}
