package room

import (
	"fmt"

	"roomboard/internal/timeutil"
)

// WireTimeZoneName is the fixed zone name the calendar backend expects on
// saved working-hours documents.
const WireTimeZoneName = "W. Europe Standard Time"

// WireDocument is the working-hours wire shape exchanged with the backend:
//
//	{ timeSlots: [ {daysOfWeek:[...], startTime:"HH:MM:SS", endTime:"HH:MM:SS"} ],
//	  timeZone: {name: "..."} }
//
// Incoming documents may list several days sharing one interval; outgoing
// documents always carry one entry per (day, interval) pair.
type WireDocument struct {
	TimeSlots []WireTimeSlot `json:"timeSlots"`
	TimeZone  WireTimeZone   `json:"timeZone"`
}

// WireTimeSlot is one open interval applied to one or more days.
type WireTimeSlot struct {
	DaysOfWeek []DayOfWeek `json:"daysOfWeek"`
	StartTime  string      `json:"startTime"`
	EndTime    string      `json:"endTime"`
}

// WireTimeZone names the zone the wire times are expressed in.
type WireTimeZone struct {
	Name string `json:"name"`
}

// ParseWorkingHours converts a wire document into the in-memory model.
// Entries with unknown day keys are skipped; malformed times fail the whole
// parse rather than being silently coerced.
func ParseWorkingHours(doc *WireDocument) (*WorkingHours, error) {
	if doc == nil {
		return nil, nil
	}
	wh := NewWorkingHours()
	for _, slot := range doc.TimeSlots {
		start, err := timeutil.TimeToMinutes(slot.StartTime)
		if err != nil {
			return nil, fmt.Errorf("working-hours start: %w", err)
		}
		end, err := timeutil.TimeToMinutes(slot.EndTime)
		if err != nil {
			return nil, fmt.Errorf("working-hours end: %w", err)
		}
		if end <= start {
			continue
		}
		for _, day := range slot.DaysOfWeek {
			if !day.Valid() {
				continue
			}
			wh.days[day] = append(wh.days[day], Interval{Start: start, End: end})
		}
	}
	return wh, nil
}

// WireDocument flattens the working hours into the save shape: one time
// slot per (day, interval) pair in display day order, tagged with the fixed
// backend zone name. A whole-document replace, no incremental diff.
func (wh *WorkingHours) WireDocument() *WireDocument {
	doc := &WireDocument{
		TimeSlots: []WireTimeSlot{},
		TimeZone:  WireTimeZone{Name: WireTimeZoneName},
	}
	if wh == nil {
		return doc
	}
	for _, day := range Days {
		for _, iv := range wh.days[day] {
			doc.TimeSlots = append(doc.TimeSlots, WireTimeSlot{
				DaysOfWeek: []DayOfWeek{day},
				StartTime:  timeutil.WireTime(iv.Start),
				EndTime:    timeutil.WireTime(iv.End),
			})
		}
	}
	return doc
}
