package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"roomboard/internal/room"
	"roomboard/internal/timeutil"
)

// View renders the TUI.
func (m Model) View() string {
	if len(m.rooms) == 0 {
		if m.loading {
			return "Loading..."
		}
		if m.err != nil {
			return fmt.Sprintf("Error: %v\n\nPress r to retry, q to quit.", m.err)
		}
		return "No rooms found.\n\nPress r to retry, q to quit."
	}

	var body string
	switch m.mode {
	case ModeDay, ModeConfirmCancel:
		body = m.renderDayPanel()
	case ModeBook:
		body = m.renderBookPanel()
	case ModeHours:
		body = m.renderHoursPanel()
	default:
		body = m.renderGrid()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	weekEnd := m.weekStart.AddDate(0, 0, 6)
	sub := fmt.Sprintf("%s - %s · %s",
		m.weekStart.Format("Jan 2"), weekEnd.Format("Jan 2, 2006"), m.config.Schedule.TimeZone)
	if m.fromCache {
		sub += " · cached"
	}
	if m.loading {
		sub += " · refreshing"
	}
	title := m.styles.TitleStyle.Render("roomboard")
	return title + "  " + m.styles.SubtitleStyle.Render(sub)
}

func (m Model) renderGrid() string {
	today := time.Now().In(m.zone).Format("2006-01-02")
	rows := BuildWeek(m.rooms, m.meetings, m.weekStart, m.zone)

	var b strings.Builder

	// Header row
	b.WriteString(m.styles.RoomStyle.Render(""))
	for d := 0; d < 7; d++ {
		date := m.weekStart.AddDate(0, 0, d)
		label := date.Format("Mon 2")
		style := m.styles.DayHeaderStyle
		if date.Format("2006-01-02") == today {
			style = m.styles.TodayStyle
		}
		b.WriteString(style.Render(label))
	}
	b.WriteString("\n")

	for i, row := range rows {
		name := row.Room.DisplayName
		if len(name) > roomColWidth-2 {
			name = name[:roomColWidth-3] + "…"
		}
		nameStyle := m.styles.RoomStyle
		if !row.Room.Editable {
			nameStyle = m.styles.ReadOnlyStyle
		}
		b.WriteString(nameStyle.Render(name))

		for d, cell := range row.Cells {
			text := partGlyph(cell.Occupancy.Parts[0]) + " " +
				partGlyph(cell.Occupancy.Parts[1]) + " " +
				partGlyph(cell.Occupancy.Parts[2])
			if cell.Pending {
				text += "*"
			} else {
				text += " "
			}

			style := m.styles.statusStyle(cellStatus(cell))
			if i == m.cursor.Room && d == m.cursor.Day {
				style = style.Background(m.styles.palette.BgSelection).Bold(true)
			}
			b.WriteString(style.Render(text))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderDayPanel() string {
	r := m.cursorRoom()
	if r == nil {
		return ""
	}
	date := m.cursorDate()

	var b strings.Builder
	b.WriteString(m.styles.PanelTitleStyle.Render(
		fmt.Sprintf("%s · %s", r.DisplayName, date.Format("Monday, Jan 2"))))
	b.WriteString("\n\n")

	if len(m.dayMeetings) == 0 {
		b.WriteString(m.styles.MutedStyle.Render("No meetings."))
		b.WriteString("\n")
	}
	for i, mtg := range m.dayMeetings {
		line := fmt.Sprintf("%s-%s  %s",
			clockLabel(mtg.Start, m.zone), clockLabel(mtg.End, m.zone), mtg.Subject)
		if mtg.Organizer != "" {
			line += m.styles.MutedStyle.Render("  (" + mtg.Organizer + ")")
		}
		if mtg.Pending() {
			line += m.styles.PendingStyle.Render("  pending")
		}
		if i == m.daySelected {
			line = m.styles.SelectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	sched := m.dayScheduleAt(r, m.cursor.Day)
	starts := sched.AvailableStartTimes()
	b.WriteString("\n")
	if len(starts) == 0 {
		b.WriteString(m.styles.MutedStyle.Render("No free slots."))
	} else {
		shown := starts
		if len(shown) > 8 {
			shown = shown[:8]
		}
		label := "Free from: " + strings.Join(shown, " ")
		if len(starts) > 8 {
			label += fmt.Sprintf(" (+%d more)", len(starts)-8)
		}
		b.WriteString(m.styles.MutedStyle.Render(label))
	}
	b.WriteString("\n")

	if m.mode == ModeConfirmCancel && m.confirmMeeting != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.WarningStyle.Render(
			fmt.Sprintf("Cancel %q? (y/n)", m.confirmMeeting.Subject)))
		b.WriteString("\n")
	}

	return m.styles.PanelStyle.Render(b.String())
}

func (m Model) renderBookPanel() string {
	r := m.cursorRoom()
	if r == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.PanelTitleStyle.Render(
		fmt.Sprintf("Book %s · %s", r.DisplayName, m.cursorDate().Format("Monday, Jan 2"))))
	b.WriteString("\n\n")

	b.WriteString(m.renderOptionField("Start", m.startOptions, m.formStart, m.formFocus == fieldStart))
	b.WriteString("\n")
	b.WriteString(m.renderOptionField("End", m.endOptions, m.formEnd, m.formFocus == fieldEnd))
	b.WriteString("\n")
	b.WriteString(m.renderInputField("Subject", m.formSubject.View(), m.formFocus == fieldSubject))
	b.WriteString("\n")
	b.WriteString(m.renderInputField("Notes", m.formNotes.View(), m.formFocus == fieldNotes))
	b.WriteString("\n")

	return m.styles.PanelStyle.Render(b.String())
}

func (m Model) renderOptionField(label string, options []string, selected int, focused bool) string {
	labelStyle := m.styles.FieldLabelStyle
	if focused {
		labelStyle = labelStyle.Foreground(m.styles.palette.Accent)
	}

	value := "-"
	if selected >= 0 && selected < len(options) {
		value = options[selected]
	}
	rendered := m.styles.FieldValueStyle.Render(value)
	if focused {
		rendered = m.styles.FieldFocusStyle.Render(" " + value + " ")
		rendered += m.styles.MutedStyle.Render(fmt.Sprintf("  (%d/%d, h/l to change)", selected+1, len(options)))
	}
	return labelStyle.Render(label) + rendered
}

func (m Model) renderInputField(label, input string, focused bool) string {
	labelStyle := m.styles.FieldLabelStyle
	if focused {
		labelStyle = labelStyle.Foreground(m.styles.palette.Accent)
	}
	return labelStyle.Render(label) + input
}

func (m Model) renderHoursPanel() string {
	if m.editRoom == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.PanelTitleStyle.Render("Working hours · " + m.editRoom.DisplayName))
	b.WriteString("\n\n")

	// Day tabs
	for i, day := range room.Days {
		name := string(day)
		label := strings.ToUpper(name[:1]) + name[1:3]
		if i == m.editDay {
			b.WriteString(m.styles.FieldFocusStyle.Render(" " + label + " "))
		} else {
			b.WriteString(m.styles.MutedStyle.Render(" " + label + " "))
		}
	}
	b.WriteString("\n\n")

	day := room.Days[m.editDay]
	intervals := m.editRoom.Hours.Day(day)
	if len(intervals) == 0 {
		b.WriteString(m.styles.MutedStyle.Render("Closed all day. Press a to add 08:00-17:00."))
		b.WriteString("\n")
	}
	for i, iv := range intervals {
		line := iv.String()
		if i == m.editIdx {
			line = m.styles.SelectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderTimeline(intervals))
	b.WriteString("\n")

	return m.styles.PanelStyle.Render(b.String())
}

// renderTimeline draws the selected day as a 48-slot bar, one cell per
// half hour, with the selected interval highlighted.
func (m Model) renderTimeline(intervals []room.Interval) string {
	cells := make([]int, timeutil.MinutesPerDay/timeutil.SlotMinutes) // 0 closed, 1 open, 2 selected
	for i, iv := range intervals {
		mark := 1
		if i == m.editIdx {
			mark = 2
		}
		for s := iv.Start / timeutil.SlotMinutes; s < (iv.End+timeutil.SlotMinutes-1)/timeutil.SlotMinutes && s < len(cells); s++ {
			cells[s] = mark
		}
	}

	var bar strings.Builder
	for _, c := range cells {
		switch c {
		case 2:
			bar.WriteString(m.styles.FieldFocusStyle.Render("█"))
		case 1:
			bar.WriteString(m.styles.FreeStyle.Width(1).Render("█"))
		default:
			bar.WriteString(m.styles.MutedStyle.Render("░"))
		}
	}

	axis := "00          06          12          18          24"
	return bar.String() + "\n" + m.styles.MutedStyle.Render(axis)
}

func (m Model) renderFooter() string {
	legend := m.styles.HelpStyle.Render("· free  n meetings  - closed  * pending")

	var help string
	switch m.mode {
	case ModeDay:
		help = "j/k select · b book · x cancel meeting · y copy link · esc back"
	case ModeConfirmCancel:
		help = "y confirm · n back"
	case ModeBook:
		help = "tab fields · h/l change slot · enter next/submit · esc cancel"
	case ModeHours:
		help = "h/l day · j/k interval · a add · x delete · H/L move · [/] start · ,/. end · enter save · esc discard"
	default:
		help = "hjkl move · [/] week · t today · enter day · b book · e hours · y copy link · r refresh · q quit"
	}

	lines := []string{legend, m.styles.HelpStyle.Render(help)}
	if m.statusMsg != "" {
		lines = append(lines, m.styles.StatusStyle.Render(m.statusMsg))
	}
	return "\n" + strings.Join(lines, "\n")
}

// clockLabel formats an instant as wall-clock HH:MM in the display zone.
func clockLabel(t time.Time, zone *time.Location) string {
	h, min := timeutil.LocalHourMinute(t, zone)
	return fmt.Sprintf("%02d:%02d", h, min)
}
