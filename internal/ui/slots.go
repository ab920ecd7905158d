package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"roomboard/internal/dateutil"
	"roomboard/internal/room"
	"roomboard/internal/schedule"
	"roomboard/internal/timeutil"
)

func (a *App) slotsCmd() *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "slots <room> <date>",
		Short: "Show bookable time slots for a room",
		Long: `Show the available 30-minute start times for a room on a date.

With --start, shows the end times reachable from that start instead:
the contiguous free stretch, bounded by the next booking and the room's
working hours.`,
		Example: `  roomboard slots "Aurora 4.02" tomorrow
  roomboard slots board@example.org 2025-01-15 --start=09:30`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone := a.config.Zone()
			day, err := dateutil.ParseRelativeDate(args[1], dateutil.Today(zone))
			if err != nil {
				return err
			}

			rooms, err := a.loadDirectory(cmd.Context())
			if err != nil {
				return err
			}
			r, err := findRoom(rooms, args[0])
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

			if start != "" {
				ends, err := ds.AvailableEndTimes(start)
				if err != nil {
					return err
				}
				if len(ends) == 0 {
					fmt.Printf("No end times available from %s.\n", start)
					return nil
				}
				fmt.Printf("End times from %s on %s:\n", start, dateKey)
				fmt.Println("  " + strings.Join(ends, "  "))
				return nil
			}

			starts := ds.AvailableStartTimes()
			if len(starts) == 0 {
				fmt.Printf("%s is fully booked on %s.\n", r.DisplayName, dateKey)
				return nil
			}
			fmt.Printf("Start times for %s on %s:\n", r.DisplayName, dateKey)
			fmt.Println("  " + strings.Join(starts, "  "))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Show end times for this start (HH:MM)")
	return cmd
}
