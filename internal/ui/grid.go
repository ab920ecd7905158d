package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"roomboard/internal/dateutil"
	"roomboard/internal/schedule"
	"roomboard/internal/tui"
)

func (a *App) gridCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the weekly availability grid",
		Long: `Print a Sunday-through-Saturday availability grid for every room.

Each cell shows three day parts (morning, afternoon, evening):
"·" free, "-" closed, a digit for the meeting count. A "*" marks a day
with a booking still awaiting approval.`,
		Example: `  roomboard grid
  roomboard grid --date=next-week
  roomboard grid --date=2025-01-15`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			zone := a.config.Zone()
			anchor, err := dateutil.ParseRelativeDate(date, dateutil.Today(zone))
			if err != nil {
				return err
			}
			weekStart := dateutil.WeekStart(anchor)

			rooms, err := a.loadDirectory(cmd.Context())
			if err != nil {
				return err
			}
			meetings, err := a.api().Meetings(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching meetings: %w", err)
			}

			rows := tui.BuildWeek(rooms, meetings, weekStart, zone)

			// Day header: "Sun 5  Mon 6 ..."
			header := fmt.Sprintf("%-20s", "")
			for d := 0; d < 7; d++ {
				day := weekStart.AddDate(0, 0, d)
				header += fmt.Sprintf(" %-6s", day.Format("Mon 2"))
			}
			fmt.Println(formatHeader(header))

			for _, row := range rows {
				line := fmt.Sprintf("%-20s", truncate(row.Room.DisplayName, 20))
				for _, cell := range row.Cells {
					text := occupancyCell(cell.Occupancy)
					if cell.Pending {
						text += "*"
					} else {
						text += " "
					}
					line += " " + formatStatus(dayStatus(cell.Occupancy), fmt.Sprintf("%-6s", text))
				}
				fmt.Println(line)
			}

			fmt.Println(formatMuted("\n· free  n meetings  - closed  * pending"))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "today", "Week to show (date, today, tomorrow, next-week, weekday name)")
	return cmd
}

// dayStatus collapses a day to one status for coloring. A day whose every
// part is closed reads as closed even with zero booked hours.
func dayStatus(occ schedule.DayOccupancy) schedule.Status {
	for _, p := range occ.Parts {
		if p.Open {
			return occ.Status
		}
	}
	return schedule.StatusClosed
}
