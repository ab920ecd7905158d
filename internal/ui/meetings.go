package ui

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"roomboard/internal/dateutil"
	"roomboard/internal/room"
	"roomboard/internal/schedule"
	"roomboard/internal/timeutil"
)

func (a *App) meetingsCmd() *cobra.Command {
	var (
		roomName string
		date     string
	)

	cmd := &cobra.Command{
		Use:   "meetings",
		Short: "List meetings for a day",
		Long: `List the meetings booked on a day, across all rooms or one room.

A "*" marks meetings still awaiting approval by the room's delegate.`,
		Example: `  roomboard meetings
  roomboard meetings --date=tomorrow
  roomboard meetings --room="Aurora 4.02" --date=2025-01-15`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			zone := a.config.Zone()
			day, err := dateutil.ParseRelativeDate(date, dateutil.Today(zone))
			if err != nil {
				return err
			}
			dateKey := timeutil.LocalDateKey(day, zone)

			rooms, err := a.loadDirectory(cmd.Context())
			if err != nil {
				return err
			}
			if roomName != "" {
				r, err := findRoom(rooms, roomName)
				if err != nil {
					return err
				}
				rooms = []*room.Room{r}
			}

			all, err := a.api().Meetings(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching meetings: %w", err)
			}

			fmt.Println(formatHeader(fmt.Sprintf("Meetings on %s", day.Format("Monday, 2 January 2006"))))
			found := 0
			for _, r := range rooms {
				booked := schedule.MeetingsOn(all, r.DisplayName, dateKey, zone)
				if len(booked) == 0 {
					continue
				}
				sort.Slice(booked, func(i, j int) bool { return booked[i].Start.Before(booked[j].Start) })

				fmt.Printf("\n%s\n", formatHeader(r.DisplayName))
				for _, m := range booked {
					printMeetingRow(m, zone, false)
					found++
				}
			}
			if found == 0 {
				fmt.Println("\nNo meetings booked.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&roomName, "room", "", "Limit to one room (name or email)")
	cmd.Flags().StringVar(&date, "date", "today", "Day to show (date or relative expression)")
	return cmd
}
