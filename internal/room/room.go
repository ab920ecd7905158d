// Package room defines the core domain types for roomboard: rooms, their
// per-weekday working hours, and meetings read from the calendar backend.
package room

import (
	"errors"
	"time"
)

// Domain errors.
var (
	ErrRoomReadOnly     = errors.New("room is read-only")
	ErrUnknownDay       = errors.New("unknown day of week")
	ErrIntervalNotFound = errors.New("working-hour interval not found")
)

// DayOfWeek is the stable lowercase key used by the working-hours backend
// ("sunday" .. "saturday").
type DayOfWeek string

const (
	Sunday    DayOfWeek = "sunday"
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
)

// Days lists all weekdays in display order, Sunday first, matching the
// timeline editor rows.
var Days = [7]DayOfWeek{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// DayOf maps a time.Weekday to its working-hours key.
func DayOf(w time.Weekday) DayOfWeek {
	return Days[int(w)]
}

// Valid reports whether d is one of the seven known day keys.
func (d DayOfWeek) Valid() bool {
	for _, known := range Days {
		if d == known {
			return true
		}
	}
	return false
}

// Room is a bookable meeting room from the directory service.
// Editable=false marks rooms whose working hours the current user may not
// change; mutation attempts must be rejected, not silently dropped.
type Room struct {
	Email       string
	DisplayName string
	Editable    bool
	Hours       *WorkingHours // nil when the backend has no document
}

// ResponseStatus values the calendar backend reports for the room attendee.
const (
	ResponseNone      = "none"
	ResponseAccepted  = "accepted"
	ResponseTentative = "tentativelyAccepted"
	ResponseDeclined  = "declined"
)

// Meeting is an immutable snapshot of a calendar event. Start and End are
// absolute instants; all wall-clock interpretation happens through a named
// zone, never the host's local zone.
type Meeting struct {
	ID             string
	Room           string // display name, as the meetings API keys them
	Start          time.Time
	End            time.Time
	Subject        string
	Organizer      string
	OrganizerEmail string
	IsOrganizer    bool // true when the room itself organized the event
	ResponseStatus string
}

// Pending reports whether the meeting is still waiting for approval by the
// room's delegate: invited meetings the room has not accepted yet.
func (m Meeting) Pending() bool {
	if m.IsOrganizer {
		return false
	}
	return m.ResponseStatus == ResponseNone || m.ResponseStatus == ResponseTentative
}

// Duration returns the meeting length.
func (m Meeting) Duration() time.Duration {
	return m.End.Sub(m.Start)
}
