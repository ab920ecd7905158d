package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"roomboard/internal/room"
)

// loadDirectory fetches the room directory and attaches working hours.
func (a *App) loadDirectory(ctx context.Context) ([]*room.Room, error) {
	rooms, err := a.api().Rooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching rooms: %w", err)
	}
	a.api().FetchAllWorkingHours(ctx, rooms)
	return rooms, nil
}

// findRoom matches a room by display name or email, case-insensitively.
func findRoom(rooms []*room.Room, nameOrEmail string) (*room.Room, error) {
	needle := strings.ToLower(nameOrEmail)
	for _, r := range rooms {
		if strings.ToLower(r.DisplayName) == needle || strings.ToLower(r.Email) == needle {
			return r, nil
		}
	}
	for _, r := range rooms {
		if strings.Contains(strings.ToLower(r.DisplayName), needle) {
			return r, nil
		}
	}
	return nil, fmt.Errorf("no room matches %q", nameOrEmail)
}

func (a *App) roomsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rooms",
		Short: "List the bookable rooms",
		Long: `List all rooms from the directory with their working-hours status.

Rooms marked read-only cannot have their working hours edited.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rooms, err := a.loadDirectory(cmd.Context())
			if err != nil {
				return err
			}
			if len(rooms) == 0 {
				fmt.Println("No rooms found.")
				return nil
			}

			fmt.Println(formatHeader(fmt.Sprintf("%-24s %-32s %s", "Room", "Email", "Hours")))
			for _, r := range rooms {
				hours := "always open"
				if r.Hours != nil && !r.Hours.Empty() {
					hours = "restricted"
				}
				if !r.Editable {
					hours += formatMuted(" (read-only)")
				}
				fmt.Printf("%-24s %-32s %s\n", truncate(r.DisplayName, 24), r.Email, hours)
			}
			return nil
		},
	}
}
