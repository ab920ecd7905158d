package schedule

import (
	"time"

	"roomboard/internal/room"
	"roomboard/internal/timeutil"
)

// Status is the coarse occupancy category shown in the week grid.
type Status string

const (
	StatusFree    Status = "free"
	StatusPartial Status = "partial"
	StatusBusy    Status = "busy"
	StatusClosed  Status = "closed"
)

// busyThresholdHours is the day-level cut between partial and busy.
const busyThresholdHours = 4.0

// DayPart splits a day into morning, afternoon and evening windows for the
// per-cell breakdown.
type DayPart int

const (
	Morning DayPart = iota
	Afternoon
	Evening
)

// partWindows are the [start, end) hour bounds of each day part.
var partWindows = [3]struct{ startHour, endHour int }{
	{0, 12},
	{12, 18},
	{18, 24},
}

func (p DayPart) String() string {
	switch p {
	case Morning:
		return "morning"
	case Afternoon:
		return "afternoon"
	case Evening:
		return "evening"
	default:
		return "unknown"
	}
}

// PartOccupancy describes one day part of a cell.
type PartOccupancy struct {
	Count int  // meetings starting in this part
	Open  bool // working hours cover any portion of the window
}

// Status maps the part to its display class: closed beats everything, then
// the count decides free, partial (exactly one meeting) or busy.
func (p PartOccupancy) Status() Status {
	switch {
	case !p.Open:
		return StatusClosed
	case p.Count == 0:
		return StatusFree
	case p.Count == 1:
		return StatusPartial
	default:
		return StatusBusy
	}
}

// DayOccupancy aggregates one room's day for the grid.
type DayOccupancy struct {
	Status     Status
	Meetings   int
	TotalHours float64
	Parts      [3]PartOccupancy
}

// ClassifyDay sums meeting durations and buckets meetings into day parts
// for one room on one date. Meetings must already be filtered to the
// (room, date) pair, e.g. via MeetingsOn. Day parts are bucketed by the
// local wall-clock start hour only, minutes ignored; total hours are
// fractional. A part with no working-hours coverage is closed regardless
// of its meeting count.
func ClassifyDay(hours *room.WorkingHours, day room.DayOfWeek, meetings []room.Meeting, zone *time.Location) DayOccupancy {
	occ := DayOccupancy{Meetings: len(meetings)}

	for _, m := range meetings {
		occ.TotalHours += m.Duration().Hours()
		startHour, _ := timeutil.LocalHourMinute(m.Start, zone)
		for i, w := range partWindows {
			if startHour >= w.startHour && startHour < w.endHour {
				occ.Parts[i].Count++
				break
			}
		}
	}

	switch {
	case occ.TotalHours == 0:
		occ.Status = StatusFree
	case occ.TotalHours < busyThresholdHours:
		occ.Status = StatusPartial
	default:
		occ.Status = StatusBusy
	}

	for i, w := range partWindows {
		occ.Parts[i].Open = partOpen(hours, day, w.startHour, w.endHour)
	}
	return occ
}

// partOpen reports whether the room's working hours cover any portion of
// the [startHour, endHour) window on the given weekday. No document at all
// means no restriction: every part is open.
func partOpen(hours *room.WorkingHours, day room.DayOfWeek, startHour, endHour int) bool {
	if hours.Empty() {
		return true
	}
	ivs := hours.Day(day)
	if len(ivs) == 0 {
		return false
	}
	for _, iv := range ivs {
		if iv.Overlaps(startHour*60, endHour*60) {
			return true
		}
	}
	return false
}
