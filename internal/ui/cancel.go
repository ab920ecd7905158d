package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"roomboard/internal/dateutil"
	"roomboard/internal/room"
	"roomboard/internal/schedule"
	"roomboard/internal/timeutil"
)

func (a *App) cancelCmd() *cobra.Command {
	var (
		roomName string
		date     string
		yes      bool
	)

	cmd := &cobra.Command{
		Use:   "cancel <subject-or-id>",
		Short: "Cancel a meeting",
		Long: `Cancel a meeting by its id, or by subject within a room and date.

Matching by subject requires --room; --date narrows the search (defaults
to today). Asks for confirmation unless --yes is given.`,
		Example: `  roomboard cancel "Design review" --room="Aurora 4.02"
  roomboard cancel AAMkAd... --room="Aurora 4.02" --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if roomName == "" {
				return fmt.Errorf("--room is required")
			}

			zone := a.config.Zone()
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

			day, err := dateutil.ParseRelativeDate(date, dateutil.Today(zone))
			if err != nil {
				return err
			}

			target, err := matchMeeting(all, r.DisplayName, args[0], timeutil.LocalDateKey(day, zone), zone)
			if err != nil {
				return err
			}

			fmt.Printf("Cancel %q in %s at %s?\n", target.Subject, target.Room, clockRange(*target, zone))
			if !yes && !promptYesNo("Proceed") {
				fmt.Println("Aborted.")
				return nil
			}

			if err := a.api().CancelMeeting(cmd.Context(), target.ID, target.Room); err != nil {
				return fmt.Errorf("cancelling meeting: %w", err)
			}
			fmt.Printf("Cancelled %q.\n", target.Subject)
			return nil
		},
	}

	cmd.Flags().StringVar(&roomName, "room", "", "Room name or email (required)")
	cmd.Flags().StringVar(&date, "date", "today", "Day to search when matching by subject")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}

// matchMeeting finds a meeting by exact id, falling back to a subject match
// on the given room and date. Ambiguous subjects are an error.
func matchMeeting(all []room.Meeting, displayName, needle, dateKey string, zone *time.Location) (*room.Meeting, error) {
	for i := range all {
		if all[i].ID == needle {
			return &all[i], nil
		}
	}

	booked := schedule.MeetingsOn(all, displayName, dateKey, zone)
	lowered := strings.ToLower(needle)
	var matches []room.Meeting
	for _, m := range booked {
		if strings.Contains(strings.ToLower(m.Subject), lowered) {
			matches = append(matches, m)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no meeting matches %q in %s on %s", needle, displayName, dateKey)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("%d meetings match %q; cancel by id instead", len(matches), needle)
	}
}
