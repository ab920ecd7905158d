package tui

import (
	"net/url"
	"sort"
	"time"

	"roomboard/internal/room"
	"roomboard/internal/schedule"
)

// dayScheduleAt builds the slot engine input for one room and one grid
// column, with the room's meetings for that date sorted by start.
func (m Model) dayScheduleAt(r *room.Room, dayIdx int) schedule.DaySchedule {
	date := m.weekStart.AddDate(0, 0, dayIdx)
	return dayScheduleFor(r, date, m.meetings, m.zone)
}

func dayScheduleFor(r *room.Room, date time.Time, meetings []room.Meeting, zone *time.Location) schedule.DaySchedule {
	key := date.Format("2006-01-02")
	booked := schedule.MeetingsOn(meetings, r.DisplayName, key, zone)
	sort.Slice(booked, func(i, j int) bool {
		return booked[i].Start.Before(booked[j].Start)
	})
	return schedule.DaySchedule{
		Hours:    r.Hours,
		Day:      room.DayOf(date.Weekday()),
		Meetings: booked,
		Zone:     zone,
	}
}

// bookingURL builds a shareable link that opens the booking page with the
// room and date preselected.
func bookingURL(baseURL, roomName, dateKey string) string {
	q := url.Values{}
	q.Set("room", roomName)
	q.Set("date", dateKey)
	return baseURL + "/book?" + q.Encode()
}
