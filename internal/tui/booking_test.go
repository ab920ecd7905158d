package tui

import (
	"testing"
	"time"

	"roomboard/internal/room"
)

func TestDayScheduleFor_FiltersAndSorts(t *testing.T) {
	zone := amsterdam(t)
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, zone)
	tuesday := monday.AddDate(0, 0, 1)

	r := &room.Room{Email: "aurora@example.org", DisplayName: "Aurora", Editable: true}

	late := meetingOn(t, zone, "late", monday, 15, 16)
	early := meetingOn(t, zone, "early", monday, 9, 10)
	otherDay := meetingOn(t, zone, "other-day", tuesday, 9, 10)
	otherRoom := meetingOn(t, zone, "other-room", monday, 9, 10)
	otherRoom.Room = "Nova"

	sched := dayScheduleFor(r, monday, []room.Meeting{late, otherDay, early, otherRoom}, zone)

	if len(sched.Meetings) != 2 {
		t.Fatalf("expected 2 meetings, got %d", len(sched.Meetings))
	}
	if sched.Meetings[0].Subject != "early" || sched.Meetings[1].Subject != "late" {
		t.Errorf("meetings not sorted by start: %s, %s",
			sched.Meetings[0].Subject, sched.Meetings[1].Subject)
	}
	if sched.Day != room.Monday {
		t.Errorf("expected monday, got %s", sched.Day)
	}
}

func TestBookingURL(t *testing.T) {
	got := bookingURL("https://rooms.example.org/arcrooms", "Aurora 4.02", "2025-01-06")
	want := "https://rooms.example.org/arcrooms/book?date=2025-01-06&room=Aurora+4.02"
	if got != want {
		t.Errorf("bookingURL = %q, want %q", got, want)
	}
}
