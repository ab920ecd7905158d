package ui

import (
	"testing"
	"time"

	"roomboard/internal/room"
	"roomboard/internal/schedule"
)

func TestStatusSymbol(t *testing.T) {
	tests := []struct {
		status schedule.Status
		want   string
	}{
		{schedule.StatusFree, "✓"},
		{schedule.StatusPartial, "~"},
		{schedule.StatusBusy, "✗"},
		{schedule.StatusClosed, "-"},
		{schedule.Status("bogus"), "?"},
	}
	for _, tt := range tests {
		if got := statusSymbol(tt.status); got != tt.want {
			t.Errorf("statusSymbol(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestOccupancyCell(t *testing.T) {
	occ := schedule.DayOccupancy{
		Parts: [3]schedule.PartOccupancy{
			{Open: true, Count: 0},
			{Open: true, Count: 2},
			{Open: false},
		},
	}
	if got := occupancyCell(occ); got != "·2-" {
		t.Errorf("occupancyCell = %q, want %q", got, "·2-")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0m"},
		{30 * time.Minute, "30m"},
		{time.Hour, "1h"},
		{90 * time.Minute, "1h30m"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Aurora 4.02", 20); got != "Aurora 4.02" {
		t.Errorf("short string changed: %q", got)
	}
	if got := truncate("The Really Long Room Name", 10); got != "The Reall…" {
		t.Errorf("truncate = %q", got)
	}
}

func TestFindRoom(t *testing.T) {
	rooms := []*room.Room{
		{Email: "board@example.org", DisplayName: "Boardroom"},
		{Email: "aurora@example.org", DisplayName: "Aurora 4.02"},
	}

	r, err := findRoom(rooms, "aurora 4.02")
	if err != nil || r.Email != "aurora@example.org" {
		t.Fatalf("exact name match failed: %v, %v", r, err)
	}
	r, err = findRoom(rooms, "board@example.org")
	if err != nil || r.DisplayName != "Boardroom" {
		t.Fatalf("email match failed: %v, %v", r, err)
	}
	r, err = findRoom(rooms, "aurora")
	if err != nil || r.DisplayName != "Aurora 4.02" {
		t.Fatalf("substring match failed: %v, %v", r, err)
	}
	if _, err = findRoom(rooms, "basement"); err == nil {
		t.Error("expected an error for an unknown room")
	}
}

func TestMatchMeeting(t *testing.T) {
	zone, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		t.Fatal(err)
	}
	at := func(hour int) time.Time {
		return time.Date(2025, 1, 6, hour, 0, 0, 0, zone)
	}
	all := []room.Meeting{
		{ID: "m1", Room: "Boardroom", Start: at(9), End: at(10), Subject: "Standup"},
		{ID: "m2", Room: "Boardroom", Start: at(11), End: at(12), Subject: "Design sync"},
		{ID: "m3", Room: "Boardroom", Start: at(14), End: at(15), Subject: "Design review"},
	}

	m, err := matchMeeting(all, "Boardroom", "m2", "2025-01-06", zone)
	if err != nil || m.Subject != "Design sync" {
		t.Fatalf("id match failed: %v, %v", m, err)
	}
	m, err = matchMeeting(all, "Boardroom", "standup", "2025-01-06", zone)
	if err != nil || m.ID != "m1" {
		t.Fatalf("subject match failed: %v, %v", m, err)
	}
	if _, err = matchMeeting(all, "Boardroom", "design", "2025-01-06", zone); err == nil {
		t.Error("expected an ambiguity error for two matching subjects")
	}
	if _, err = matchMeeting(all, "Boardroom", "retro", "2025-01-06", zone); err == nil {
		t.Error("expected an error for no match")
	}
}

func TestApplyIntervalSet(t *testing.T) {
	r := &room.Room{DisplayName: "Boardroom", Editable: true}
	if err := r.AddInterval(room.Monday); err != nil {
		t.Fatal(err)
	}

	if err := applyIntervalSet(r, "monday:0=09:00-18:00"); err != nil {
		t.Fatal(err)
	}
	got := r.Hours.Day(room.Monday)[0]
	if got.Start != 540 || got.End != 1080 {
		t.Errorf("interval = %+v, want 540-1080", got)
	}

	// Target range entirely before the current one.
	if err := applyIntervalSet(r, "monday:0=06:00-07:00"); err != nil {
		t.Fatal(err)
	}
	got = r.Hours.Day(room.Monday)[0]
	if got.Start != 360 || got.End != 420 {
		t.Errorf("interval = %+v, want 360-420", got)
	}

	if err := applyIntervalSet(r, "monday:0=10:00-09:00"); err == nil {
		t.Error("expected an error for end before start")
	}
	if err := applyIntervalSet(r, "monday:5=09:00-10:00"); err == nil {
		t.Error("expected an error for a missing interval")
	}
}
