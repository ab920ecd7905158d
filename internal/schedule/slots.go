// Package schedule implements the availability engine: which 30-minute
// slots of a room's day are bookable given its working hours and existing
// meetings, plus the coarse occupancy classification for the week grid.
package schedule

import (
	"fmt"
	"time"

	"roomboard/internal/room"
	"roomboard/internal/timeutil"
)

// Booking window: candidate slots run from 07:00 to 22:00 on a 30-minute
// grid. 22:00 only ever appears as an end time, so the last bookable start
// is 21:30.
const (
	firstSlotMinutes = 7 * 60
	lastSlotMinutes  = 22 * 60
)

// Candidates returns the fixed sequence of 30-minute-aligned times of day
// from 07:00 up to and including 22:00, as minutes since midnight. It is a
// pure function, recomputed per call.
func Candidates() []int {
	var out []int
	for m := firstSlotMinutes; m <= lastSlotMinutes; m += timeutil.SlotMinutes {
		out = append(out, m)
	}
	return out
}

// DaySchedule bundles everything the engine needs for one room on one
// calendar date: the room's working hours (nil when the backend has no
// document), the weekday of the target date, the meetings already booked
// for that room on that date, and the display zone for interpreting the
// meetings' absolute instants.
type DaySchedule struct {
	Hours    *room.WorkingHours
	Day      room.DayOfWeek
	Meetings []room.Meeting
	Zone     *time.Location
}

// restricted reports whether working hours restrict this schedule at all.
// A room with no document is unrestricted; a room whose document has
// intervals on other days but none on this weekday is closed all day.
func (d DaySchedule) restricted() bool {
	return !d.Hours.Empty()
}

// withinHours reports whether the minute-of-day m is bookable under the
// working-hour rules.
func (d DaySchedule) withinHours(m int) bool {
	if !d.restricted() {
		return true
	}
	ivs := d.Hours.Day(d.Day)
	if len(ivs) == 0 {
		return false // closed all day
	}
	for _, iv := range ivs {
		if iv.Contains(m) {
			return true
		}
	}
	return false
}

// meetingClock returns a meeting's start and end as wall-clock minutes of
// day in the schedule zone. The date component is deliberately discarded:
// slot occupancy compares times of day only, so a meeting crossing
// midnight is not specially handled.
func (d DaySchedule) meetingClock(m room.Meeting) (start, end int) {
	return timeutil.LocalClockMinutes(m.Start, d.Zone), timeutil.LocalClockMinutes(m.End, d.Zone)
}

// AvailableStartTimes returns every bookable start slot in ascending
// order, as "HH:MM". A slot is rejected when it falls outside the room's
// working hours for the weekday, or inside [start, end) of any existing
// meeting by wall-clock comparison. An unavailable day yields an empty
// result, not an error.
func (d DaySchedule) AvailableStartTimes() []string {
	var out []string
	for _, slot := range Candidates() {
		if slot >= lastSlotMinutes {
			continue // 22:00 can only close a booking, never open one
		}
		if !d.withinHours(slot) {
			continue
		}
		if d.occupiedAt(slot) {
			continue
		}
		out = append(out, timeutil.MinutesToTime(slot))
	}
	return out
}

func (d DaySchedule) occupiedAt(slot int) bool {
	for _, m := range d.Meetings {
		start, end := d.meetingClock(m)
		if slot >= start && slot < end {
			return true
		}
	}
	return false
}

// AvailableEndTimes returns the valid end slots for a booking starting at
// chosenStart ("HH:MM"), as a contiguous ascending prefix. The upper bound
// is the end of the working-hour interval containing the start (22:00 when
// no restriction applies). Candidates stop at the first one whose range
// [chosenStart, candidate) overlaps a meeting: a free region past an
// occupied slot is never offered.
func (d DaySchedule) AvailableEndTimes(chosenStart string) ([]string, error) {
	start, err := timeutil.TimeToMinutes(chosenStart)
	if err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}

	bound := lastSlotMinutes
	if d.restricted() {
		for _, iv := range d.Hours.Day(d.Day) {
			if iv.Contains(start) {
				bound = iv.End
				break
			}
		}
	}

	var out []string
	for _, cand := range Candidates() {
		if cand <= start {
			continue
		}
		if cand > bound {
			break
		}
		if d.rangeBlocked(start, cand) {
			break
		}
		out = append(out, timeutil.MinutesToTime(cand))
	}
	return out, nil
}

func (d DaySchedule) rangeBlocked(start, end int) bool {
	for _, m := range d.Meetings {
		mStart, mEnd := d.meetingClock(m)
		if !(end <= mStart || start >= mEnd) {
			return true
		}
	}
	return false
}

// MeetingsOn filters meetings down to the ones for the named room on the
// given local calendar date (YYYY-MM-DD in the schedule zone).
func MeetingsOn(meetings []room.Meeting, displayName, dateKey string, zone *time.Location) []room.Meeting {
	var out []room.Meeting
	for _, m := range meetings {
		if m.Room != displayName {
			continue
		}
		if timeutil.LocalDateKey(m.Start, zone) != dateKey {
			continue
		}
		out = append(out, m)
	}
	return out
}
