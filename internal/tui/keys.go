package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"roomboard/internal/api"
	"roomboard/internal/dateutil"
	"roomboard/internal/room"
	"roomboard/internal/schedule"
	"roomboard/internal/timeutil"
	"roomboard/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeDay:
		return m.handleDayKeys(msg)
	case ModeBook:
		return m.handleBookKeys(msg)
	case ModeHours:
		return m.handleHoursKeys(msg)
	case ModeConfirmCancel:
		return m.handleConfirmKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in the week grid.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Navigation
	case "h", "left":
		if m.cursor.Day > 0 {
			m.cursor.Day--
		} else {
			m.weekStart = m.weekStart.AddDate(0, 0, -7)
			m.cursor.Day = 6
		}
	case "l", "right":
		if m.cursor.Day < 6 {
			m.cursor.Day++
		} else {
			m.weekStart = m.weekStart.AddDate(0, 0, 7)
			m.cursor.Day = 0
		}
	case "j", "down":
		if m.cursor.Room < len(m.rooms)-1 {
			m.cursor.Room++
		}
	case "k", "up":
		if m.cursor.Room > 0 {
			m.cursor.Room--
		}

	// Week navigation
	case "H", "shift+left", "[":
		m.weekStart = m.weekStart.AddDate(0, 0, -7)
	case "L", "shift+right", "]":
		m.weekStart = m.weekStart.AddDate(0, 0, 7)
	case "t":
		now := time.Now().In(m.zone)
		m.weekStart = dateutil.WeekStart(now)
		m.cursor.Day = int(now.Weekday())

	// Actions
	case "r":
		m.loading = true
		return m, loadCmd(m.client, m.cache)

	case "enter":
		return m.openDayDetail()

	case "b":
		return m.openBookingForm()

	case "e":
		return m.openHoursEditor()

	case "y":
		return m.copyBookingLink()
	}

	return m, nil
}

// openDayDetail opens the meeting list for the cursor cell.
func (m Model) openDayDetail() (tea.Model, tea.Cmd) {
	r := m.cursorRoom()
	if r == nil {
		m.statusMsg = "No rooms loaded"
		return m, nil
	}
	sched := m.dayScheduleAt(r, m.cursor.Day)
	m.dayMeetings = sched.Meetings
	m.daySelected = 0
	m.mode = ModeDay
	LogModeChange(ModeNormal, ModeDay, "open_day_detail")
	return m, nil
}

// openBookingForm opens the booking form for the cursor cell.
func (m Model) openBookingForm() (tea.Model, tea.Cmd) {
	r := m.cursorRoom()
	if r == nil {
		m.statusMsg = "No rooms loaded"
		return m, nil
	}

	sched := m.dayScheduleAt(r, m.cursor.Day)
	starts := sched.AvailableStartTimes()
	if len(starts) == 0 {
		m.statusMsg = fmt.Sprintf("No free slots in %s on %s",
			r.DisplayName, m.cursorDate().Format("Mon Jan 2"))
		return m, nil
	}

	ends, err := sched.AvailableEndTimes(starts[0])
	if err != nil {
		m.statusMsg = fmt.Sprintf("Error: %v", err)
		return m, nil
	}

	m.startOptions = starts
	m.endOptions = ends
	m.formStart = 0
	m.formEnd = 0
	m.formFocus = fieldStart
	m.formSubject.SetValue("")
	m.formNotes.SetValue("")
	m.mode = ModeBook
	LogModeChange(ModeNormal, ModeBook, "open_booking_form")
	return m, nil
}

// openHoursEditor opens the working-hours timeline for the cursor room.
func (m Model) openHoursEditor() (tea.Model, tea.Cmd) {
	r := m.cursorRoom()
	if r == nil {
		m.statusMsg = "No rooms loaded"
		return m, nil
	}
	if !r.Editable {
		m.statusMsg = fmt.Sprintf("%s is read-only", r.DisplayName)
		return m, nil
	}

	hours := room.NewWorkingHours()
	if r.Hours != nil {
		hours = r.Hours.Clone()
	}
	m.editRoom = &room.Room{
		Email:       r.Email,
		DisplayName: r.DisplayName,
		Editable:    r.Editable,
		Hours:       hours,
	}
	m.editor = schedule.NewEditor()
	m.editDay = m.cursor.Day
	m.editIdx = 0
	m.mode = ModeHours
	LogModeChange(ModeNormal, ModeHours, "open_hours_editor")
	return m, nil
}

// copyBookingLink puts a prefilled booking URL on the clipboard.
func (m Model) copyBookingLink() (tea.Model, tea.Cmd) {
	r := m.cursorRoom()
	if r == nil {
		m.statusMsg = "No rooms loaded"
		return m, nil
	}
	url := bookingURL(m.config.API.BaseURL, r.DisplayName, m.cursorDate().Format("2006-01-02"))
	if err := clipboard.WriteAll(url); err != nil {
		m.statusMsg = fmt.Sprintf("Copy failed: %v", err)
		return m, nil
	}
	m.statusMsg = fmt.Sprintf("Copied booking link for %s", r.DisplayName)
	return m, nil
}

// handleDayKeys handles keys in the day detail list.
func (m Model) handleDayKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		m.mode = ModeNormal
		m.dayMeetings = nil
		return m, nil

	case "j", "down":
		if m.daySelected < len(m.dayMeetings)-1 {
			m.daySelected++
		}
	case "k", "up":
		if m.daySelected > 0 {
			m.daySelected--
		}

	case "b":
		m.mode = ModeNormal
		return m.openBookingForm()

	case "y":
		return m.copyBookingLink()

	case "x":
		if m.daySelected >= 0 && m.daySelected < len(m.dayMeetings) {
			meeting := m.dayMeetings[m.daySelected]
			m.confirmMeeting = &meeting
			m.mode = ModeConfirmCancel
		}
	}
	return m, nil
}

// handleConfirmKeys handles the cancel confirmation.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n":
		m.confirmMeeting = nil
		m.mode = ModeDay
		return m, nil

	case "enter", "y":
		if m.confirmMeeting != nil {
			meeting := *m.confirmMeeting
			return m, commands.Cancel(m.client, meeting)
		}
		m.mode = ModeDay
	}
	return m, nil
}

// handleBookKeys handles keys in the booking form.
func (m Model) handleBookKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.resetBookingForm()
		m.mode = ModeNormal
		return m, nil

	case "tab", "shift+tab":
		delta := 1
		if msg.String() == "shift+tab" {
			delta = fieldCount - 1
		}
		m.setFormFocus((m.formFocus + delta) % fieldCount)
		if m.formFocus == fieldSubject || m.formFocus == fieldNotes {
			return m, textinput.Blink
		}
		return m, nil

	case "enter":
		if m.formFocus < fieldNotes {
			m.setFormFocus(m.formFocus + 1)
			if m.formFocus == fieldSubject {
				return m, textinput.Blink
			}
			return m, nil
		}
		return m.submitBooking()
	}

	// Option fields: left/right cycle the slot choices.
	if m.formFocus == fieldStart || m.formFocus == fieldEnd {
		switch msg.String() {
		case "left", "h":
			return m.cycleOption(-1)
		case "right", "l":
			return m.cycleOption(1)
		}
		return m, nil
	}

	// Text fields
	var cmd tea.Cmd
	switch m.formFocus {
	case fieldSubject:
		m.formSubject, cmd = m.formSubject.Update(msg)
	case fieldNotes:
		m.formNotes, cmd = m.formNotes.Update(msg)
	}
	return m, cmd
}

func (m *Model) setFormFocus(focus int) {
	m.formFocus = focus
	if focus == fieldSubject {
		m.formSubject.Focus()
	} else {
		m.formSubject.Blur()
	}
	if focus == fieldNotes {
		m.formNotes.Focus()
	} else {
		m.formNotes.Blur()
	}
}

// cycleOption moves the focused option field and keeps the end options in
// sync with the chosen start.
func (m Model) cycleOption(delta int) (tea.Model, tea.Cmd) {
	if m.formFocus == fieldStart {
		next := m.formStart + delta
		if next < 0 || next >= len(m.startOptions) {
			return m, nil
		}
		m.formStart = next

		r := m.cursorRoom()
		if r == nil {
			return m, nil
		}
		sched := m.dayScheduleAt(r, m.cursor.Day)
		ends, err := sched.AvailableEndTimes(m.startOptions[m.formStart])
		if err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", err)
			return m, nil
		}
		m.endOptions = ends
		m.formEnd = 0
		return m, nil
	}

	next := m.formEnd + delta
	if next < 0 || next >= len(m.endOptions) {
		return m, nil
	}
	m.formEnd = next
	return m, nil
}

// submitBooking validates the form and fires the booking request.
func (m Model) submitBooking() (tea.Model, tea.Cmd) {
	r := m.cursorRoom()
	if r == nil {
		return m, nil
	}

	subject := strings.TrimSpace(m.formSubject.Value())
	if subject == "" {
		m.statusMsg = "Subject is required"
		return m, nil
	}
	if m.formStart >= len(m.startOptions) || m.formEnd >= len(m.endOptions) {
		m.statusMsg = "Pick a start and end time"
		return m, nil
	}

	req := api.BookingRequest{
		Room:      r.DisplayName,
		Date:      m.cursorDate().Format("2006-01-02"),
		StartTime: m.startOptions[m.formStart],
		EndTime:   m.endOptions[m.formEnd],
		Subject:   subject,
		Notes:     strings.TrimSpace(m.formNotes.Value()),
	}
	m.statusMsg = "Booking..."
	return m, commands.Book(m.client, req)
}

// handleHoursKeys handles keys in the working-hours timeline editor.
func (m Model) handleHoursKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	day := room.Days[m.editDay]
	intervals := m.editRoom.Hours.Day(day)

	switch msg.String() {
	case "esc":
		m.editRoom = nil
		m.editor = nil
		m.mode = ModeNormal
		m.statusMsg = "Changes discarded"
		LogModeChange(ModeHours, ModeNormal, "hours_discarded")
		return m, nil

	case "enter":
		m.statusMsg = "Saving..."
		return m, commands.SaveHours(m.client, []*room.Room{m.editRoom})

	// Day and interval selection
	case "h", "left":
		if m.editDay > 0 {
			m.editDay--
			m.editIdx = 0
		}
	case "l", "right":
		if m.editDay < 6 {
			m.editDay++
			m.editIdx = 0
		}
	case "j", "down":
		if m.editIdx < len(intervals)-1 {
			m.editIdx++
		}
	case "k", "up":
		if m.editIdx > 0 {
			m.editIdx--
		}

	// Interval mutations
	case "a":
		if err := m.editRoom.AddInterval(day); err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", err)
			return m, nil
		}
		m.editIdx = len(m.editRoom.Hours.Day(day)) - 1
		m.statusMsg = "Added 08:00-17:00"

	case "x":
		if len(intervals) == 0 {
			m.statusMsg = "No interval to delete"
			return m, nil
		}
		if err := m.editRoom.DeleteInterval(day, m.editIdx); err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", err)
			return m, nil
		}
		if m.editIdx > 0 {
			m.editIdx--
		}
		m.statusMsg = "Deleted interval"

	case "H":
		return m.nudgeInterval(dragMove, room.EdgeStart, -timeutil.SlotMinutes)
	case "L":
		return m.nudgeInterval(dragMove, room.EdgeStart, timeutil.SlotMinutes)
	case "[":
		return m.nudgeInterval(dragResize, room.EdgeStart, -timeutil.SlotMinutes)
	case "]":
		return m.nudgeInterval(dragResize, room.EdgeStart, timeutil.SlotMinutes)
	case ",":
		return m.nudgeInterval(dragResize, room.EdgeEnd, -timeutil.SlotMinutes)
	case ".":
		return m.nudgeInterval(dragResize, room.EdgeEnd, timeutil.SlotMinutes)
	}

	return m, nil
}

type nudgeKind int

const (
	dragMove nudgeKind = iota
	dragResize
)

// nudgeInterval runs a one-step drag or resize session on the selected
// interval.
func (m Model) nudgeInterval(kind nudgeKind, edge room.Edge, delta int) (tea.Model, tea.Cmd) {
	day := room.Days[m.editDay]
	if len(m.editRoom.Hours.Day(day)) == 0 {
		m.statusMsg = "No interval selected"
		return m, nil
	}

	var (
		sess *schedule.Session
		err  error
	)
	if kind == dragMove {
		sess, err = m.editor.BeginDrag(m.editRoom, day, m.editIdx)
	} else {
		sess, err = m.editor.BeginResize(m.editRoom, day, m.editIdx, edge)
	}
	if err != nil {
		m.statusMsg = fmt.Sprintf("Error: %v", err)
		return m, nil
	}
	defer sess.End()

	if err := sess.Update(delta); err != nil {
		m.statusMsg = fmt.Sprintf("Error: %v", err)
		return m, nil
	}
	m.statusMsg = sess.Interval().String()
	return m, nil
}
