package tui

import (
	"time"

	"roomboard/internal/room"
	"roomboard/internal/schedule"
)

// DayCell is one room-by-date cell of the week grid.
type DayCell struct {
	Occupancy schedule.DayOccupancy
	Pending   bool // at least one meeting still awaiting approval
	DateKey   string
}

// WeekRow is one room's seven cells.
type WeekRow struct {
	Room  *room.Room
	Cells [7]DayCell
}

// BuildWeek classifies every room against every date of the week starting
// at weekStart (a Sunday).
func BuildWeek(rooms []*room.Room, meetings []room.Meeting, weekStart time.Time, zone *time.Location) []WeekRow {
	rows := make([]WeekRow, 0, len(rooms))
	for _, r := range rooms {
		row := WeekRow{Room: r}
		for d := 0; d < 7; d++ {
			date := weekStart.AddDate(0, 0, d)
			key := date.Format("2006-01-02")
			booked := schedule.MeetingsOn(meetings, r.DisplayName, key, zone)
			day := room.DayOf(date.Weekday())

			cell := DayCell{
				Occupancy: schedule.ClassifyDay(r.Hours, day, booked, zone),
				DateKey:   key,
			}
			for _, mtg := range booked {
				if mtg.Pending() {
					cell.Pending = true
					break
				}
			}
			row.Cells[d] = cell
		}
		rows = append(rows, row)
	}
	return rows
}

// cellStatus is the display class of a whole cell: a day whose every part
// is outside working hours shows as closed regardless of its meeting load.
func cellStatus(c DayCell) schedule.Status {
	for _, p := range c.Occupancy.Parts {
		if p.Open {
			return c.Occupancy.Status
		}
	}
	return schedule.StatusClosed
}

// partGlyph renders one day part: closed is a dash, free a dot, otherwise
// the meeting count (capped at 9).
func partGlyph(p schedule.PartOccupancy) string {
	switch p.Status() {
	case schedule.StatusClosed:
		return "-"
	case schedule.StatusFree:
		return "·"
	default:
		if p.Count > 9 {
			return "+"
		}
		return string(rune('0' + p.Count))
	}
}

// statusGlyph is the single-character summary for a whole day.
func statusGlyph(s schedule.Status) string {
	switch s {
	case schedule.StatusFree:
		return "✓"
	case schedule.StatusPartial:
		return "~"
	case schedule.StatusBusy:
		return "✗"
	default:
		return "-"
	}
}
