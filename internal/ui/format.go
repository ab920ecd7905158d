package ui

import (
	"fmt"
	"time"

	"roomboard/internal/room"
	"roomboard/internal/schedule"
	"roomboard/internal/timeutil"
)

// statusSymbol returns the one-character indicator for an availability status.
func statusSymbol(s schedule.Status) string {
	switch s {
	case schedule.StatusFree:
		return "✓"
	case schedule.StatusPartial:
		return "~"
	case schedule.StatusBusy:
		return "✗"
	case schedule.StatusClosed:
		return "-"
	default:
		return "?"
	}
}

// formatStatus colors a string according to an availability status.
func formatStatus(s schedule.Status, text string) string {
	switch s {
	case schedule.StatusFree:
		return formatFree(text)
	case schedule.StatusPartial:
		return formatPartial(text)
	case schedule.StatusBusy:
		return formatBusy(text)
	default:
		return formatClosed(text)
	}
}

// occupancyCell renders a day's three parts as a compact glyph triple,
// e.g. "·2-" for a free morning, two afternoon meetings and a closed evening.
func occupancyCell(occ schedule.DayOccupancy) string {
	cell := ""
	for _, part := range occ.Parts {
		cell += partGlyph(part)
	}
	return cell
}

// partGlyph renders one day part: "-" closed, "·" free, the meeting count
// otherwise ("+" past nine).
func partGlyph(p schedule.PartOccupancy) string {
	switch {
	case !p.Open:
		return "-"
	case p.Count == 0:
		return "·"
	case p.Count > 9:
		return "+"
	default:
		return fmt.Sprintf("%d", p.Count)
	}
}

// clockRange formats a meeting's wall-clock range in the given zone.
func clockRange(m room.Meeting, zone *time.Location) string {
	sh, sm := timeutil.LocalHourMinute(m.Start, zone)
	eh, em := timeutil.LocalHourMinute(m.End, zone)
	return fmt.Sprintf("%02d:%02d-%02d:%02d", sh, sm, eh, em)
}

// printMeetingRow prints one meeting line for list output.
func printMeetingRow(m room.Meeting, zone *time.Location, showRoom bool) {
	marker := " "
	if m.Pending() {
		marker = formatPending("*")
	}

	subject := m.Subject
	if subject == "" {
		subject = "(no subject)"
	}

	if showRoom {
		fmt.Printf("  %s %s  %-22s %s", marker, clockRange(m, zone), m.Room, subject)
	} else {
		fmt.Printf("  %s %s  %s", marker, clockRange(m, zone), subject)
	}
	if m.Organizer != "" {
		fmt.Printf("  %s", formatMuted("("+m.Organizer+")"))
	}
	fmt.Println()
}

// FormatDuration formats a duration as a compact hours-and-minutes string.
func FormatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
