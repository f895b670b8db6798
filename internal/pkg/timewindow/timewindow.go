// Package timewindow is the single boundary between schedule clock strings and
// wall-clock instants. Schedule times are stored as UTC time-of-day ("HH:MM");
// every comparison against "now" goes through At so the UTC-to-local conversion
// happens exactly once.
package timewindow

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// At materializes a UTC time-of-day clock string on the calendar day of day,
// returned in loc. Accepts "HH:MM" and "HH:MM:SS".
func At(day time.Time, clockUTC string, loc *time.Location) (time.Time, error) {
	hh, mm, ss, err := parseClock(clockUTC)
	if err != nil {
		return time.Time{}, err
	}
	t := time.Date(day.Year(), day.Month(), day.Day(), hh, mm, ss, 0, time.UTC)
	return t.In(loc), nil
}

// WithinClockInWindow reports whether now falls inside [startUTC, endUTC] on
// the given day. A nil bound is unset and passes by default: missing schedule
// configuration never blocks an action on its own.
func WithinClockInWindow(now, day time.Time, startUTC, endUTC *string, loc *time.Location) (bool, error) {
	if startUTC != nil {
		start, err := At(day, *startUTC, loc)
		if err != nil {
			return false, fmt.Errorf("invalid window start %q: %w", *startUTC, err)
		}
		if now.Before(start) {
			return false, nil
		}
	}
	if endUTC != nil {
		end, err := At(day, *endUTC, loc)
		if err != nil {
			return false, fmt.Errorf("invalid window end %q: %w", *endUTC, err)
		}
		if now.After(end) {
			return false, nil
		}
	}
	return true, nil
}

// IsLate reports whether now is past the check-in deadline. Equality to the
// deadline still counts as on time. A nil deadline never flags late.
func IsLate(now, day time.Time, deadlineUTC *string, loc *time.Location) (bool, error) {
	if deadlineUTC == nil {
		return false, nil
	}
	deadline, err := At(day, *deadlineUTC, loc)
	if err != nil {
		return false, fmt.Errorf("invalid check-in deadline %q: %w", *deadlineUTC, err)
	}
	return now.After(deadline), nil
}

// IsEarlyLeave reports whether a clock-out at now lands strictly before the
// scheduled checkout start. A nil checkout start never flags early leave.
func IsEarlyLeave(now, day time.Time, checkoutStartUTC *string, loc *time.Location) (bool, error) {
	if checkoutStartUTC == nil {
		return false, nil
	}
	start, err := At(day, *checkoutStartUTC, loc)
	if err != nil {
		return false, fmt.Errorf("invalid checkout start %q: %w", *checkoutStartUTC, err)
	}
	return now.Before(start), nil
}

func parseClock(s string) (hh, mm, ss int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("clock %q must be HH:MM or HH:MM:SS", s)
	}

	hh, err = strconv.Atoi(parts[0])
	if err != nil || hh < 0 || hh > 23 {
		return 0, 0, 0, fmt.Errorf("clock %q has invalid hour", s)
	}
	mm, err = strconv.Atoi(parts[1])
	if err != nil || mm < 0 || mm > 59 {
		return 0, 0, 0, fmt.Errorf("clock %q has invalid minute", s)
	}
	if len(parts) == 3 {
		ss, err = strconv.Atoi(parts[2])
		if err != nil || ss < 0 || ss > 59 {
			return 0, 0, 0, fmt.Errorf("clock %q has invalid second", s)
		}
	}
	return hh, mm, ss, nil
}
