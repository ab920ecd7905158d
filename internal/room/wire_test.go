package room

import (
	"encoding/json"
	"errors"
	"testing"

	"roomboard/internal/timeutil"
)

func TestParseWorkingHours(t *testing.T) {
	doc := &WireDocument{
		TimeSlots: []WireTimeSlot{
			{
				// One entry may apply to several days.
				DaysOfWeek: []DayOfWeek{Monday, Tuesday},
				StartTime:  "08:00:00",
				EndTime:    "17:00:00",
			},
			{
				DaysOfWeek: []DayOfWeek{Monday},
				StartTime:  "18:00:00",
				EndTime:    "20:00:00",
			},
			{
				// Unknown day keys are skipped, not fatal.
				DaysOfWeek: []DayOfWeek{"funday"},
				StartTime:  "08:00:00",
				EndTime:    "09:00:00",
			},
		},
		TimeZone: WireTimeZone{Name: WireTimeZoneName},
	}

	wh, err := ParseWorkingHours(doc)
	if err != nil {
		t.Fatalf("ParseWorkingHours: %v", err)
	}

	mon := wh.Day(Monday)
	if len(mon) != 2 {
		t.Fatalf("monday intervals = %v, want 2", mon)
	}
	if mon[0] != (Interval{Start: 480, End: 1020}) || mon[1] != (Interval{Start: 1080, End: 1200}) {
		t.Errorf("monday intervals = %v", mon)
	}
	if len(wh.Day(Tuesday)) != 1 {
		t.Errorf("tuesday intervals = %v, want 1", wh.Day(Tuesday))
	}
	if len(wh.Day(Wednesday)) != 0 {
		t.Errorf("wednesday should be empty")
	}
}

func TestParseWorkingHoursNil(t *testing.T) {
	wh, err := ParseWorkingHours(nil)
	if err != nil {
		t.Fatalf("ParseWorkingHours(nil): %v", err)
	}
	if wh != nil {
		t.Errorf("expected nil model for missing document")
	}
}

func TestParseWorkingHoursMalformedTime(t *testing.T) {
	doc := &WireDocument{
		TimeSlots: []WireTimeSlot{
			{DaysOfWeek: []DayOfWeek{Monday}, StartTime: "eight", EndTime: "17:00:00"},
		},
	}
	if _, err := ParseWorkingHours(doc); !errors.Is(err, timeutil.ErrInvalidTimeFormat) {
		t.Errorf("expected ErrInvalidTimeFormat, got %v", err)
	}
}

func TestWireDocumentOneEntryPerDayInterval(t *testing.T) {
	wh := NewWorkingHours()
	_ = wh.Add(Monday, Interval{Start: 480, End: 720})
	_ = wh.Add(Monday, Interval{Start: 780, End: 1020})
	_ = wh.Add(Saturday, Interval{Start: 600, End: 840})

	doc := wh.WireDocument()

	if len(doc.TimeSlots) != 3 {
		t.Fatalf("timeSlots = %d, want 3", len(doc.TimeSlots))
	}
	for _, slot := range doc.TimeSlots {
		if len(slot.DaysOfWeek) != 1 {
			t.Errorf("save entries must carry exactly one day, got %v", slot.DaysOfWeek)
		}
	}
	if doc.TimeSlots[0].StartTime != "08:00:00" || doc.TimeSlots[0].EndTime != "12:00:00" {
		t.Errorf("first slot = %+v", doc.TimeSlots[0])
	}
	if doc.TimeZone.Name != "W. Europe Standard Time" {
		t.Errorf("timeZone = %q", doc.TimeZone.Name)
	}
	// Saturday sorts after Monday in display order.
	last := doc.TimeSlots[2]
	if last.DaysOfWeek[0] != Saturday {
		t.Errorf("expected saturday last, got %v", last.DaysOfWeek)
	}
}

func TestWireDocumentJSONShape(t *testing.T) {
	wh := NewWorkingHours()
	_ = wh.Add(Monday, Interval{Start: 480, End: 1020})

	b, err := json.Marshal(wh.WireDocument())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"timeSlots":[{"daysOfWeek":["monday"],"startTime":"08:00:00","endTime":"17:00:00"}],"timeZone":{"name":"W. Europe Standard Time"}}`
	if string(b) != want {
		t.Errorf("wire JSON = %s\nwant      %s", b, want)
	}
}

func TestWireRoundTrip(t *testing.T) {
	wh := NewWorkingHours()
	_ = wh.Add(Wednesday, Interval{Start: 0, End: 30})
	_ = wh.Add(Wednesday, Interval{Start: 1380, End: 1440})

	parsed, err := ParseWorkingHours(wh.WireDocument())
	if err != nil {
		t.Fatalf("round trip parse: %v", err)
	}
	got := parsed.Day(Wednesday)
	if len(got) != 2 || got[0] != (Interval{0, 30}) || got[1] != (Interval{1380, 1440}) {
		t.Errorf("round trip = %v", got)
	}
}

func TestMeetingPending(t *testing.T) {
	tests := []struct {
		name string
		m    Meeting
		want bool
	}{
		{name: "organizer never pending", m: Meeting{IsOrganizer: true, ResponseStatus: ResponseNone}, want: false},
		{name: "invited no response", m: Meeting{ResponseStatus: ResponseNone}, want: true},
		{name: "invited tentative", m: Meeting{ResponseStatus: ResponseTentative}, want: true},
		{name: "invited accepted", m: Meeting{ResponseStatus: ResponseAccepted}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Pending(); got != tt.want {
				t.Errorf("Pending() = %v, want %v", got, tt.want)
			}
		})
	}
}
