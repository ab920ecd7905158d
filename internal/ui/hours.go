package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"roomboard/internal/room"
	"roomboard/internal/timeutil"
)

func (a *App) hoursCmd() *cobra.Command {
	var (
		add string
		del string
		set string
	)

	cmd := &cobra.Command{
		Use:   "hours <room>",
		Short: "Show or edit a room's working hours",
		Long: `Show a room's weekly working hours, or edit them.

A room with no working-hours document is bookable around the clock.
Edits are rejected for read-only rooms. Interval boundaries snap to the
30-minute grid.`,
		Example: `  roomboard hours "Aurora 4.02"
  roomboard hours "Aurora 4.02" --add=monday
  roomboard hours "Aurora 4.02" --delete=monday:0
  roomboard hours "Aurora 4.02" --set=monday:0=09:00-18:00`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rooms, err := a.loadDirectory(cmd.Context())
			if err != nil {
				return err
			}
			r, err := findRoom(rooms, args[0])
			if err != nil {
				return err
			}

			edited := false
			if add != "" {
				day := room.DayOfWeek(strings.ToLower(add))
				if err := r.AddInterval(day); err != nil {
					return err
				}
				edited = true
			}
			if del != "" {
				day, index, err := parseDayIndex(del)
				if err != nil {
					return err
				}
				if err := r.DeleteInterval(day, index); err != nil {
					return err
				}
				edited = true
			}
			if set != "" {
				if err := applyIntervalSet(r, set); err != nil {
					return err
				}
				edited = true
			}

			if edited {
				if err := a.api().SaveWorkingHours(cmd.Context(), r.Email, r.Hours.WireDocument()); err != nil {
					return fmt.Errorf("saving working hours: %w", err)
				}
				fmt.Printf("Saved working hours for %s.\n\n", r.DisplayName)
			}

			printHours(r)
			return nil
		},
	}

	cmd.Flags().StringVar(&add, "add", "", "Add a default 08:00-17:00 interval on a weekday")
	cmd.Flags().StringVar(&del, "delete", "", "Delete an interval, day:index (e.g. monday:0)")
	cmd.Flags().StringVar(&set, "set", "", "Set an interval's range, day:index=HH:MM-HH:MM")
	return cmd
}

func printHours(r *room.Room) {
	title := r.DisplayName
	if !r.Editable {
		title += formatMuted(" (read-only)")
	}
	fmt.Println(formatHeader(title))

	if r.Hours == nil || r.Hours.Empty() {
		fmt.Println("  No working hours set; bookable around the clock.")
		return
	}
	for _, day := range room.Days {
		ivs := r.Hours.Day(day)
		if len(ivs) == 0 {
			fmt.Printf("  %-10s %s\n", day, formatClosed("closed"))
			continue
		}
		parts := make([]string, 0, len(ivs))
		for i, iv := range ivs {
			parts = append(parts, fmt.Sprintf("[%d] %s", i, iv.String()))
		}
		fmt.Printf("  %-10s %s\n", day, strings.Join(parts, "  "))
	}
}

// parseDayIndex splits a "day:index" reference.
func parseDayIndex(s string) (room.DayOfWeek, int, error) {
	day, idx, ok := strings.Cut(s, ":")
	if !ok {
		return "", 0, fmt.Errorf("expected day:index, got %q", s)
	}
	index, err := strconv.Atoi(idx)
	if err != nil {
		return "", 0, fmt.Errorf("invalid interval index %q", idx)
	}
	return room.DayOfWeek(strings.ToLower(day)), index, nil
}

// applyIntervalSet resizes both edges of an interval to the given range,
// e.g. "monday:0=09:00-18:00".
func applyIntervalSet(r *room.Room, spec string) error {
	ref, rng, ok := strings.Cut(spec, "=")
	if !ok {
		return fmt.Errorf("expected day:index=HH:MM-HH:MM, got %q", spec)
	}
	day, index, err := parseDayIndex(ref)
	if err != nil {
		return err
	}
	startStr, endStr, ok := strings.Cut(rng, "-")
	if !ok {
		return fmt.Errorf("expected HH:MM-HH:MM, got %q", rng)
	}
	start, err := timeutil.TimeToMinutes(startStr)
	if err != nil {
		return err
	}
	end, err := timeutil.TimeToMinutes(endStr)
	if err != nil {
		return err
	}

	start = timeutil.SnapToGrid(start)
	end = timeutil.SnapToGrid(end)
	if end <= start {
		return fmt.Errorf("end %s is not after start %s", endStr, startStr)
	}

	ivs := r.Hours.Day(day)
	if index < 0 || index >= len(ivs) {
		return fmt.Errorf("%w: %s[%d]", room.ErrIntervalNotFound, day, index)
	}

	// Resize clamps each edge against the other, so move the outward edge
	// first to keep both targets reachable.
	current := ivs[index]
	if end > current.Start {
		if err := r.ResizeInterval(day, index, room.EdgeEnd, end); err != nil {
			return err
		}
		return r.ResizeInterval(day, index, room.EdgeStart, start)
	}
	if err := r.ResizeInterval(day, index, room.EdgeStart, start); err != nil {
		return err
	}
	return r.ResizeInterval(day, index, room.EdgeEnd, end)
}
