package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"roomboard/internal/api"
	"roomboard/internal/dateutil"
	"roomboard/internal/room"
	"roomboard/internal/schedule"
	"roomboard/internal/timeutil"
)

func (a *App) bookCmd() *cobra.Command {
	var (
		roomName string
		date     string
		start    string
		end      string
		subject  string
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Request a meeting in a room",
		Long: `Request a meeting. The slot is validated against the room's working
hours and existing bookings before the request is sent; the backend
may still leave the meeting pending until a delegate approves it.`,
		Example: `  roomboard book --room="Aurora 4.02" --date=tomorrow --start=09:30 --end=10:30 --subject="Design review"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if subject == "" {
				return fmt.Errorf("--subject is required")
			}

			zone := a.config.Zone()
			day, err := dateutil.ParseRelativeDate(date, dateutil.Today(zone))
			if err != nil {
				return err
			}
			if day.Before(dateutil.Today(zone)) {
				return dateutil.ErrDateInPast
			}

			rooms, err := a.loadDirectory(cmd.Context())
			if err != nil {
				return err
			}
			r, err := findRoom(rooms, roomName)
			if err != nil {
				return err
			}

			all, err := a.api().Meetings(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching meetings: %w", err)
			}

			dateKey := timeutil.LocalDateKey(day, zone)
			ds := schedule.DaySchedule{
				Hours:    r.Hours,
				Day:      room.DayOf(day.Weekday()),
				Meetings: schedule.MeetingsOn(all, r.DisplayName, dateKey, zone),
				Zone:     zone,
			}
			if !contains(ds.AvailableStartTimes(), start) {
				return fmt.Errorf("%s is not an available start time (try: roomboard slots %q %s)", start, r.DisplayName, dateKey)
			}
			ends, err := ds.AvailableEndTimes(start)
			if err != nil {
				return err
			}
			if !contains(ends, end) {
				return fmt.Errorf("%s is not a reachable end time from %s", end, start)
			}

			req := api.BookingRequest{
				Room:      r.DisplayName,
				Date:      dateKey,
				StartTime: start,
				EndTime:   end,
				Subject:   subject,
				Notes:     notes,
			}
			if err := a.api().RequestMeeting(cmd.Context(), req); err != nil {
				return fmt.Errorf("requesting meeting: %w", err)
			}

			fmt.Printf("Requested %q in %s on %s %s-%s.\n", subject, r.DisplayName, dateKey, start, end)
			fmt.Println(formatMuted("The booking may stay pending until the room's delegate approves it."))
			return nil
		},
	}

	cmd.Flags().StringVar(&roomName, "room", "", "Room name or email (required)")
	cmd.Flags().StringVar(&date, "date", "today", "Meeting date (date or relative expression)")
	cmd.Flags().StringVar(&start, "start", "", "Start time, HH:MM on the half hour (required)")
	cmd.Flags().StringVar(&end, "end", "", "End time, HH:MM on the half hour (required)")
	cmd.Flags().StringVar(&subject, "subject", "", "Meeting subject (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "Optional notes for the delegate")
	_ = cmd.MarkFlagRequired("room")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
