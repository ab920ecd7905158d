package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"roomboard/internal/api"
	"roomboard/internal/store"
	"roomboard/internal/tui/commands"
)

func loadCmd(client *api.Client, cache *store.SQLite) tea.Cmd {
	return commands.LoadDashboard(client, cache)
}

func refreshTick(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg {
		return commands.RefreshTickMsg{}
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.DashboardLoadedMsg:
		m.rooms = msg.Rooms
		m.meetings = msg.Meetings
		m.fetchedAt = msg.FetchedAt
		m.fromCache = msg.FromCache
		m.loading = false
		m.err = nil
		if m.cursor.Room >= len(m.rooms) {
			m.cursor.Room = 0
		}
		if msg.FromCache {
			m.statusMsg = fmt.Sprintf("Backend unreachable, showing snapshot from %s",
				msg.FetchedAt.In(m.zone).Format("Jan 2 15:04"))
			m.statusTime = time.Now().Add(5 * time.Second)
		}
		return m, nil

	case commands.HoursSavedMsg:
		m.mode = ModeNormal
		m.editRoom = nil
		m.editor = nil
		if msg.Err != nil {
			m.statusMsg = fmt.Sprintf("%s: %v", msg.Report, msg.Err)
		} else {
			m.statusMsg = msg.Report.String()
		}
		m.statusTime = time.Now().Add(5 * time.Second)
		m.loading = true
		return m, loadCmd(m.client, m.cache)

	case commands.BookedMsg:
		m.mode = ModeNormal
		m.resetBookingForm()
		m.statusMsg = fmt.Sprintf("Booked %s on %s %s-%s",
			msg.Request.Room, msg.Request.Date, msg.Request.StartTime, msg.Request.EndTime)
		m.statusTime = time.Now().Add(5 * time.Second)
		m.loading = true
		return m, loadCmd(m.client, m.cache)

	case commands.CancelledMsg:
		m.mode = ModeNormal
		m.confirmMeeting = nil
		m.statusMsg = fmt.Sprintf("Cancelled: %s", msg.Subject)
		m.statusTime = time.Now().Add(5 * time.Second)
		m.loading = true
		return m, loadCmd(m.client, m.cache)

	case commands.ErrMsg:
		m.err = msg.Err
		m.loading = false
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(5 * time.Second)
		LogError("update", msg.Err)
		return m, nil

	case commands.RefreshTickMsg:
		next := refreshTick(m.config.RefreshInterval())
		// Never reload under an open editor or form; a refresh would
		// clobber in-progress edits.
		if m.mode != ModeNormal || m.loading {
			return m, next
		}
		m.loading = true
		return m, tea.Batch(loadCmd(m.client, m.cache), next)

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Route everything else (cursor blink) to the focused form input.
	if m.mode == ModeBook {
		var cmd tea.Cmd
		switch m.formFocus {
		case fieldSubject:
			m.formSubject, cmd = m.formSubject.Update(msg)
		case fieldNotes:
			m.formNotes, cmd = m.formNotes.Update(msg)
		}
		return m, cmd
	}

	return m, nil
}

func (m *Model) resetBookingForm() {
	m.formStart = 0
	m.formEnd = 0
	m.formFocus = fieldStart
	m.formSubject.SetValue("")
	m.formSubject.Blur()
	m.formNotes.SetValue("")
	m.formNotes.Blur()
	m.startOptions = nil
	m.endOptions = nil
}
