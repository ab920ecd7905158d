package room

import (
	"fmt"

	"roomboard/internal/timeutil"
)

// Default interval appended by AddInterval, 08:00-17:00.
const (
	defaultIntervalStart = 8 * 60
	defaultIntervalEnd   = 17 * 60
)

// MinIntervalMinutes is the narrowest a working-hour interval may get: one
// booking slot.
const MinIntervalMinutes = timeutil.SlotMinutes

// Interval is a half-open [Start, End) range of minutes within one day.
// Invariant: End > Start, 0 <= Start, End <= 1440.
type Interval struct {
	Start int
	End   int
}

// Duration returns the interval length in minutes.
func (iv Interval) Duration() int {
	return iv.End - iv.Start
}

// Contains reports whether the minute-of-day m falls inside the interval.
func (iv Interval) Contains(m int) bool {
	return m >= iv.Start && m < iv.End
}

// Overlaps reports whether the interval overlaps the half-open range
// [start, end).
func (iv Interval) Overlaps(start, end int) bool {
	return iv.Start < end && iv.End > start
}

func (iv Interval) String() string {
	end := timeutil.MinutesToTime(iv.End)
	if iv.End >= timeutil.MinutesPerDay {
		end = "24:00"
	}
	return fmt.Sprintf("%s - %s", timeutil.MinutesToTime(iv.Start), end)
}

// Edge identifies which interval boundary a resize moves.
type Edge int

const (
	EdgeStart Edge = iota
	EdgeEnd
)

// WorkingHours holds the per-weekday open intervals of one room. Interval
// order within a day is insertion order (left-to-right in the editor), not
// necessarily sorted, and overlapping intervals are tolerated: the editor
// lets admins drag blocks across each other and the engine must cope.
type WorkingHours struct {
	days map[DayOfWeek][]Interval
}

// NewWorkingHours returns an empty working-hours document: every day open,
// no restriction, until intervals are added.
func NewWorkingHours() *WorkingHours {
	return &WorkingHours{days: make(map[DayOfWeek][]Interval)}
}

// Day returns the intervals configured for the given weekday. The returned
// slice is the live backing store; callers must not mutate it.
func (wh *WorkingHours) Day(day DayOfWeek) []Interval {
	if wh == nil {
		return nil
	}
	return wh.days[day]
}

// Empty reports whether no day has any interval configured. An empty
// document imposes no booking restriction, which is different from a day
// with zero intervals while other days have some: that day is closed.
func (wh *WorkingHours) Empty() bool {
	if wh == nil {
		return true
	}
	for _, ivs := range wh.days {
		if len(ivs) > 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy, used by the editor to keep an undoable
// snapshot per edit session.
func (wh *WorkingHours) Clone() *WorkingHours {
	if wh == nil {
		return nil
	}
	out := NewWorkingHours()
	for day, ivs := range wh.days {
		out.days[day] = append([]Interval(nil), ivs...)
	}
	return out
}

// Add appends an interval to the given day.
func (wh *WorkingHours) Add(day DayOfWeek, iv Interval) error {
	if !day.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownDay, day)
	}
	wh.days[day] = append(wh.days[day], iv)
	return nil
}

// AddDefault appends the default 08:00-17:00 interval to the given day.
// There is no limit on interval count per day.
func (wh *WorkingHours) AddDefault(day DayOfWeek) error {
	return wh.Add(day, Interval{Start: defaultIntervalStart, End: defaultIntervalEnd})
}

// Move repositions an interval to a new start, preserving its duration.
// The new start is snapped to the 30-minute grid, then clamped so the
// interval stays fully within the day.
func (wh *WorkingHours) Move(day DayOfWeek, index, newStart int) error {
	iv, err := wh.at(day, index)
	if err != nil {
		return err
	}
	dur := iv.Duration()
	start := timeutil.SnapToGrid(newStart)
	if start+dur > timeutil.MinutesPerDay {
		start = timeutil.MinutesPerDay - dur
	}
	if start < 0 {
		start = 0
	}
	wh.days[day][index] = Interval{Start: start, End: start + dur}
	return nil
}

// Resize moves one edge of an interval. The raw boundary is snapped to the
// 30-minute grid first, then the moved edge is clamped so the interval keeps
// its one-slot minimum width and stays within the day.
func (wh *WorkingHours) Resize(day DayOfWeek, index int, edge Edge, newBoundary int) error {
	iv, err := wh.at(day, index)
	if err != nil {
		return err
	}
	b := timeutil.SnapToGrid(newBoundary)
	switch edge {
	case EdgeStart:
		if b > iv.End-MinIntervalMinutes {
			b = iv.End - MinIntervalMinutes
		}
		if b < 0 {
			b = 0
		}
		iv.Start = b
	case EdgeEnd:
		if b < iv.Start+MinIntervalMinutes {
			b = iv.Start + MinIntervalMinutes
		}
		if b > timeutil.MinutesPerDay {
			b = timeutil.MinutesPerDay
		}
		iv.End = b
	}
	wh.days[day][index] = iv
	return nil
}

// Delete removes an interval from the given day.
func (wh *WorkingHours) Delete(day DayOfWeek, index int) error {
	if _, err := wh.at(day, index); err != nil {
		return err
	}
	wh.days[day] = append(wh.days[day][:index], wh.days[day][index+1:]...)
	return nil
}

func (wh *WorkingHours) at(day DayOfWeek, index int) (Interval, error) {
	if !day.Valid() {
		return Interval{}, fmt.Errorf("%w: %q", ErrUnknownDay, day)
	}
	ivs := wh.days[day]
	if index < 0 || index >= len(ivs) {
		return Interval{}, fmt.Errorf("%w: %s[%d]", ErrIntervalNotFound, day, index)
	}
	return ivs[index], nil
}

// Room-level mutation wrappers. Every edit goes through these so that
// read-only rooms reject mutations with ErrRoomReadOnly instead of silently
// dropping them.

func (r *Room) editable() error {
	if !r.Editable {
		return fmt.Errorf("%w: %s", ErrRoomReadOnly, r.DisplayName)
	}
	if r.Hours == nil {
		r.Hours = NewWorkingHours()
	}
	return nil
}

// AddInterval appends the default interval to day, rejecting read-only rooms.
func (r *Room) AddInterval(day DayOfWeek) error {
	if err := r.editable(); err != nil {
		return err
	}
	return r.Hours.AddDefault(day)
}

// MoveInterval repositions an interval, rejecting read-only rooms.
func (r *Room) MoveInterval(day DayOfWeek, index, newStart int) error {
	if err := r.editable(); err != nil {
		return err
	}
	return r.Hours.Move(day, index, newStart)
}

// ResizeInterval moves one interval edge, rejecting read-only rooms.
func (r *Room) ResizeInterval(day DayOfWeek, index int, edge Edge, newBoundary int) error {
	if err := r.editable(); err != nil {
		return err
	}
	return r.Hours.Resize(day, index, edge, newBoundary)
}

// DeleteInterval removes an interval, rejecting read-only rooms.
func (r *Room) DeleteInterval(day DayOfWeek, index int) error {
	if err := r.editable(); err != nil {
		return err
	}
	return r.Hours.Delete(day, index)
}
