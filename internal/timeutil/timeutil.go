// Package timeutil provides minute-of-day arithmetic and timezone-correct
// wall-clock extraction used by the availability engine and the grid.
package timeutil

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors.
var (
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")
)

// SlotMinutes is the booking grid resolution.
const SlotMinutes = 30

// MinutesPerDay is the number of minutes in a day.
const MinutesPerDay = 24 * 60

// TimeToMinutes parses a 24-hour "HH:MM" string into minutes since midnight.
// The input must be zero-padded. "HH:MM:SS" suffixes (as delivered by the
// working-hours backend) are accepted and the seconds ignored.
func TimeToMinutes(s string) (int, error) {
	if len(s) < 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	h, ok1 := twoDigits(s[0], s[1])
	m, ok2 := twoDigits(s[3], s[4])
	if !ok1 || !ok2 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	// "24:00" is accepted as the exclusive end-of-day boundary used by
	// working-hour intervals ending at midnight.
	if h > 23 && !(h == 24 && m == 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return h*60 + m, nil
}

// MinutesToTime converts minutes since midnight to zero-padded "HH:MM".
// Values outside [0, 1440) are clamped rather than rejected.
func MinutesToTime(m int) string {
	if m < 0 {
		m = 0
	}
	if m >= MinutesPerDay {
		m = MinutesPerDay - 1
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// WireTime renders minutes since midnight as "HH:MM:SS" for the
// working-hours wire document. The end-of-day boundary renders as
// "24:00:00" rather than clamping to 23:59.
func WireTime(m int) string {
	if m >= MinutesPerDay {
		return "24:00:00"
	}
	return MinutesToTime(m) + ":00"
}

// LocalHourMinute extracts the wall-clock hour and minute of an absolute
// instant in the given zone, independent of the host's local zone. The
// backend returns UTC instants, so this must stay correct across DST
// transitions.
func LocalHourMinute(t time.Time, loc *time.Location) (hour, minute int) {
	local := t.In(loc)
	return local.Hour(), local.Minute()
}

// LocalClockMinutes returns the wall-clock minute-of-day of an absolute
// instant in the given zone.
func LocalClockMinutes(t time.Time, loc *time.Location) int {
	h, m := LocalHourMinute(t, loc)
	return h*60 + m
}

// LocalDateKey returns the YYYY-MM-DD date of an absolute instant in the
// given zone, used to group meetings by day.
func LocalDateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// SnapToGrid snaps a raw minute position to the 30-minute grid line at or
// below it, clamped to [0, 1440]. Raw minute 47 snaps to 30, not 60.
// Per-operation bounds (interval fully inside the day, minimum width) are
// enforced by the caller after snapping.
func SnapToGrid(m int) int {
	if m < 0 {
		return 0
	}
	snapped := (m / SlotMinutes) * SlotMinutes
	if snapped > MinutesPerDay {
		snapped = MinutesPerDay
	}
	return snapped
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}
