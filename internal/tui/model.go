// Package tui provides the terminal dashboard for roomboard.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"roomboard/internal/api"
	"roomboard/internal/config"
	"roomboard/internal/dateutil"
	"roomboard/internal/room"
	"roomboard/internal/schedule"
	"roomboard/internal/store"
	"roomboard/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeDay         // Day detail: the meeting list for one room and date
	ModeBook        // Booking form
	ModeHours       // Working-hours timeline editor
	ModeConfirmCancel
)

// Position is the cursor in the week grid.
type Position struct {
	Room int // row index into rooms
	Day  int // 0=Sunday .. 6=Saturday
}

// Booking form field indices.
const (
	fieldStart = iota
	fieldEnd
	fieldSubject
	fieldNotes
	fieldCount
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	client *api.Client
	cache  *store.SQLite
	config *config.Config
	zone   *time.Location

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Data
	rooms     []*room.Room
	meetings  []room.Meeting
	fetchedAt time.Time
	fromCache bool

	// State
	weekStart time.Time // Sunday of the displayed week
	cursor    Position
	mode      Mode
	loading   bool

	// Day detail state
	dayMeetings []room.Meeting
	daySelected int

	// Booking form state
	formStart    int // index into startOptions
	formEnd      int // index into endOptions
	formFocus    int
	formSubject  textinput.Model
	formNotes    textinput.Model
	startOptions []string
	endOptions   []string

	// Hours editor state
	editRoom *room.Room // clone of the room under edit
	editDay  int        // 0=Sunday .. 6=Saturday
	editIdx  int        // selected interval on the day
	editor   *schedule.Editor

	// Cancel confirmation
	confirmMeeting *room.Meeting

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string
	statusTime time.Time

	// Error state
	err error
}

// New creates a new TUI model.
func New(client *api.Client, cache *store.SQLite, cfg *config.Config) *Model {
	subject := textinput.New()
	subject.Placeholder = "Subject"
	subject.CharLimit = 120
	subject.Width = 40

	notes := textinput.New()
	notes.Placeholder = "Notes (optional)"
	notes.CharLimit = 240
	notes.Width = 40

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("frappe")
	}
	styles := NewStyles(t)

	zone := cfg.Zone()
	now := time.Now().In(zone)

	return &Model{
		client:      client,
		cache:       cache,
		config:      cfg,
		zone:        zone,
		theme:       t,
		styles:      styles,
		weekStart:   dateutil.WeekStart(now),
		cursor:      Position{Day: int(now.Weekday())},
		mode:        ModeNormal,
		loading:     true,
		formSubject: subject,
		formNotes:   notes,
	}
}

// Init kicks off the initial load and the refresh ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadCmd(m.client, m.cache),
		refreshTick(m.config.RefreshInterval()),
	)
}

// cursorDate returns the calendar date under the cursor.
func (m Model) cursorDate() time.Time {
	return m.weekStart.AddDate(0, 0, m.cursor.Day)
}

// cursorRoom returns the room under the cursor, or nil when the directory
// is empty.
func (m Model) cursorRoom() *room.Room {
	if m.cursor.Room < 0 || m.cursor.Room >= len(m.rooms) {
		return nil
	}
	return m.rooms[m.cursor.Room]
}

// Run starts the TUI.
func Run(client *api.Client, cache *store.SQLite, cfg *config.Config) error {
	return RunWithDebug(client, cache, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(client *api.Client, cache *store.SQLite, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(client, cache, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
