package tui

import (
	"github.com/charmbracelet/lipgloss"

	"roomboard/internal/schedule"
	"roomboard/internal/tui/theme"
)

// Column widths for the week grid.
const (
	roomColWidth = 22
	dayColWidth  = 9
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	TitleStyle     lipgloss.Style
	SubtitleStyle  lipgloss.Style
	DayHeaderStyle lipgloss.Style
	TodayStyle     lipgloss.Style
	RoomStyle      lipgloss.Style
	ReadOnlyStyle  lipgloss.Style

	FreeStyle    lipgloss.Style
	PartialStyle lipgloss.Style
	BusyStyle    lipgloss.Style
	ClosedStyle  lipgloss.Style
	PendingStyle lipgloss.Style
	CursorStyle  lipgloss.Style

	PanelStyle      lipgloss.Style
	PanelTitleStyle lipgloss.Style
	FieldLabelStyle lipgloss.Style
	FieldValueStyle lipgloss.Style
	FieldFocusStyle lipgloss.Style
	SelectedStyle   lipgloss.Style
	MutedStyle      lipgloss.Style
	WarningStyle    lipgloss.Style

	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)

	s := &Styles{palette: p}

	s.TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	s.SubtitleStyle = lipgloss.NewStyle().Foreground(p.FgMuted)
	s.DayHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Fg).Width(dayColWidth).Align(lipgloss.Center)
	s.TodayStyle = s.DayHeaderStyle.Foreground(p.TextOnAccent).Background(p.Accent)
	s.RoomStyle = lipgloss.NewStyle().Foreground(p.Fg).Width(roomColWidth)
	s.ReadOnlyStyle = lipgloss.NewStyle().Foreground(p.FgMuted).Width(roomColWidth)

	cell := lipgloss.NewStyle().Width(dayColWidth).Align(lipgloss.Center)
	s.FreeStyle = cell.Foreground(p.Free)
	s.PartialStyle = cell.Foreground(p.Partial)
	s.BusyStyle = cell.Foreground(p.Busy)
	s.ClosedStyle = cell.Foreground(p.FgMuted)
	s.PendingStyle = lipgloss.NewStyle().Foreground(p.Pending)
	s.CursorStyle = cell.Background(p.BgSelection).Bold(true)

	s.PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(1, 2)
	s.PanelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	s.FieldLabelStyle = lipgloss.NewStyle().Foreground(p.FgMuted).Width(10)
	s.FieldValueStyle = lipgloss.NewStyle().Foreground(p.Fg)
	s.FieldFocusStyle = lipgloss.NewStyle().Foreground(p.TextOnAccent).Background(p.Accent)
	s.SelectedStyle = lipgloss.NewStyle().Background(p.BgSelection)
	s.MutedStyle = lipgloss.NewStyle().Foreground(p.FgMuted)
	s.WarningStyle = lipgloss.NewStyle().Foreground(p.Warning)

	s.StatusStyle = lipgloss.NewStyle().Foreground(p.Warning)
	s.HelpStyle = lipgloss.NewStyle().Foreground(p.FgMuted)

	return s
}

// statusStyle maps an occupancy status to its cell style.
func (s *Styles) statusStyle(st schedule.Status) lipgloss.Style {
	switch st {
	case schedule.StatusFree:
		return s.FreeStyle
	case schedule.StatusPartial:
		return s.PartialStyle
	case schedule.StatusBusy:
		return s.BusyStyle
	default:
		return s.ClosedStyle
	}
}
