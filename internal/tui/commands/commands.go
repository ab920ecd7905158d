// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"roomboard/internal/api"
	"roomboard/internal/room"
	"roomboard/internal/store"
)

// DashboardLoadedMsg is sent when the room directory, working hours and
// meetings are ready.
type DashboardLoadedMsg struct {
	Rooms     []*room.Room
	Meetings  []room.Meeting
	FetchedAt time.Time
	FromCache bool // true when the backend was unreachable and the snapshot was used
}

// HoursSavedMsg is sent after a working-hours save pass.
type HoursSavedMsg struct {
	Report api.SaveReport
	Err    error // non-nil when the pass aborted
}

// BookedMsg is sent when a booking request was accepted.
type BookedMsg struct {
	Request api.BookingRequest
}

// CancelledMsg is sent when a meeting was cancelled.
type CancelledMsg struct {
	Subject string
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// RefreshTickMsg fires on the periodic refresh cadence.
type RefreshTickMsg struct{}

// LoadDashboard fetches the room directory, all working hours and the
// meeting list, then caches the result. When the directory fetch fails and
// a cache is available, the last snapshot is served instead.
func LoadDashboard(client *api.Client, cache *store.SQLite) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		rooms, err := client.Rooms(ctx)
		if err != nil {
			if cache != nil {
				if snap, cacheErr := cache.LoadSnapshot(ctx); cacheErr == nil {
					return DashboardLoadedMsg{
						Rooms:     snap.Rooms,
						FetchedAt: snap.FetchedAt,
						FromCache: true,
					}
				}
			}
			return ErrMsg{Err: err}
		}

		client.FetchAllWorkingHours(ctx, rooms)

		meetings, err := client.Meetings(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}

		if cache != nil {
			// Cache failures are not fatal; the live data is already here.
			_ = cache.SaveSnapshot(ctx, rooms)
		}

		return DashboardLoadedMsg{
			Rooms:     rooms,
			Meetings:  meetings,
			FetchedAt: time.Now(),
		}
	}
}

// SaveHours writes the working hours of the given rooms back to the
// backend, sequentially, skipping read-only rooms.
func SaveHours(client *api.Client, rooms []*room.Room) tea.Cmd {
	return func() tea.Msg {
		report, err := client.SaveAllWorkingHours(context.Background(), rooms)
		return HoursSavedMsg{Report: report, Err: err}
	}
}

// Book submits a booking request.
func Book(client *api.Client, req api.BookingRequest) tea.Cmd {
	return func() tea.Msg {
		if err := client.RequestMeeting(context.Background(), req); err != nil {
			return ErrMsg{Err: err}
		}
		return BookedMsg{Request: req}
	}
}

// Cancel removes a meeting from the room's calendar.
func Cancel(client *api.Client, meeting room.Meeting) tea.Cmd {
	return func() tea.Msg {
		if err := client.CancelMeeting(context.Background(), meeting.ID, meeting.Room); err != nil {
			return ErrMsg{Err: err}
		}
		return CancelledMsg{Subject: meeting.Subject}
	}
}
